package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/clubkitty/internal/config"
	"github.com/akyairhashvil/clubkitty/internal/state"
	"github.com/akyairhashvil/clubkitty/internal/store"
	"github.com/akyairhashvil/clubkitty/internal/tui"
	"github.com/akyairhashvil/clubkitty/internal/util"
)

func main() {
	dataRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataRoot, 0o755)

	// Log to a file so output never corrupts the terminal UI.
	logCloser := util.SetupLogging(filepath.Join(dataRoot, config.AppName+".log"))
	defer logCloser.Close()

	ctx := context.Background()
	st, err := store.Open(ctx, filepath.Join(dataRoot, config.DBFileName))
	if err != nil {
		fmt.Printf("Could not open the database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	data, populated, err := st.Load(ctx)
	if err != nil {
		fmt.Printf("Could not load saved data: %v\n", err)
		os.Exit(1)
	}
	var appState state.AppState
	if populated {
		appState = state.FromData(data)
	} else {
		appState = state.Seed()
		util.LogError("seeding initial data", st.Save(ctx, appState.Data))
	}

	settings, err := config.LoadSettings(config.SettingsPath())
	if err != nil {
		util.LogError("loading settings", err)
	}

	model := tui.NewMainModel(st, appState, settings)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
