// Package export writes and reads the snapshot formats: the JSON snapshot
// that round-trips the full application state, the CSV summary, and the PDF
// report.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/clubkitty/internal/config"
	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/util"
)

// WriteSnapshot writes the JSON snapshot to the reports directory and
// returns the file path.
func WriteSnapshot(data models.AppData) (string, error) {
	if data.LastUpdated.IsZero() {
		data.LastUpdated = time.Now().UTC()
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}

	dir := filepath.Join(util.ReportsDir(config.AppName), "exports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("clubkitty_export_%s.json", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// ImportError is a user-visible import rejection. The existing state is
// untouched whenever one is returned.
type ImportError struct {
	Reason string
}

func (e *ImportError) Error() string {
	return "import rejected: " + e.Reason
}

// ReadSnapshot parses and validates a snapshot file. Validation checks the
// four required top-level fields before anything is applied, so a rejected
// import never partially lands. A config in the legacy shape (month entries
// without session lists) is discarded and replaced with a fresh one.
func ReadSnapshot(path string) (models.AppData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.AppData{}, fmt.Errorf("read snapshot: %w", err)
	}
	return ParseSnapshot(raw)
}

// ParseSnapshot validates and decodes snapshot bytes.
func ParseSnapshot(raw []byte) (models.AppData, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return models.AppData{}, &ImportError{Reason: "file is not valid JSON"}
	}
	for _, field := range []string{"events", "incomeSources", "carryOver", "badmintonConfig"} {
		if _, ok := top[field]; !ok {
			return models.AppData{}, &ImportError{Reason: "missing required field " + field}
		}
	}
	var carry float64
	if err := json.Unmarshal(top["carryOver"], &carry); err != nil {
		return models.AppData{}, &ImportError{Reason: "carryOver is not a number"}
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.AppData{}, &ImportError{Reason: "malformed snapshot: " + err.Error()}
	}

	if legacyBadmintonShape(top["badmintonConfig"]) {
		data.BadmintonConfig = models.NewBadmintonConfig()
	} else {
		data.BadmintonConfig = data.BadmintonConfig.Normalize()
	}
	for i := range data.IncomeSources {
		data.IncomeSources[i] = data.IncomeSources[i].Normalize()
	}
	if data.Events == nil {
		data.Events = []models.EventExpense{}
	}
	if data.IncomeSources == nil {
		data.IncomeSources = []models.IncomeSource{}
	}
	if data.CentralTasks == nil {
		data.CentralTasks = []models.EventTask{}
	}
	return data, nil
}

// legacyBadmintonShape reports whether any month entry lacks the sessions
// field. The old calculator stored a flat hours figure; there is no partial
// migration from it.
func legacyBadmintonShape(raw json.RawMessage) bool {
	var months map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &months); err != nil {
		return true
	}
	for _, entry := range months {
		if _, ok := entry["sessions"]; !ok {
			return true
		}
	}
	return false
}
