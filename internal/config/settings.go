package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Settings is the user-editable config file, stored as YAML under the XDG
// config dir. Zero values fall back to defaults at load time.
type Settings struct {
	// Theme selects the lipgloss theme by name.
	Theme string `yaml:"theme"`

	// CurrencySymbol prefixes every rendered amount.
	CurrencySymbol string `yaml:"currency_symbol"`

	// AssistEndpoint is the budget-text classification service URL. Empty
	// disables the feature.
	AssistEndpoint string `yaml:"assist_endpoint"`

	// FontURL overrides the report font source.
	FontURL string `yaml:"font_url"`
}

// DefaultSettings returns the values used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Theme:          "default",
		CurrencySymbol: "$",
		FontURL:        ReportFontURL,
	}
}

// SettingsPath returns the config file location under the XDG config dir.
func SettingsPath() string {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, AppName, "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", AppName, "config.yaml")
	}
	return filepath.Join(home, ".config", AppName, "config.yaml")
}

// LoadSettings reads the YAML settings file, layering it over defaults. A
// missing file is not an error. A sidecar .env next to the config file is
// loaded (best effort) so the assist credential can live outside YAML.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	if s.Theme == "" {
		s.Theme = "default"
	}
	if s.CurrencySymbol == "" {
		s.CurrencySymbol = "$"
	}
	if s.FontURL == "" {
		s.FontURL = ReportFontURL
	}
	return s, nil
}

// SaveSettings writes the settings file, creating parent dirs as needed.
func SaveSettings(path string, s Settings) error {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// AssistAPIKey returns the classification credential from the environment.
func AssistAPIKey() string {
	return strings.TrimSpace(os.Getenv(AssistAPIKeyEnv))
}
