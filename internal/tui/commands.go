package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/clubkitty/internal/assist"
	"github.com/akyairhashvil/clubkitty/internal/export"
	"github.com/akyairhashvil/clubkitty/internal/models"
)

// --- Messages ---

// ExportDoneMsg reports the outcome of an export command.
type ExportDoneMsg struct {
	Kind string
	Path string
	Err  error
}

// ImportDoneMsg carries a parsed snapshot or the rejection.
type ImportDoneMsg struct {
	Data models.AppData
	Err  error
}

// AssistResultMsg carries a classification suggestion, if one came back.
type AssistResultMsg struct {
	Suggestion *assist.Suggestion
	OK         bool
}

// --- Commands ---
// Exports run off the Update loop so input stays live; each command closes
// over a snapshot taken at invocation, so later edits cannot bleed in.

func exportSnapshotCmd(data models.AppData) tea.Cmd {
	return func() tea.Msg {
		path, err := export.WriteSnapshot(data)
		return ExportDoneMsg{Kind: "JSON", Path: path, Err: err}
	}
}

func exportCSVCmd(data models.AppData) tea.Cmd {
	return func() tea.Msg {
		path, err := export.WriteCSV(data)
		return ExportDoneMsg{Kind: "CSV", Path: path, Err: err}
	}
}

func exportPDFCmd(data models.AppData, symbol, fontURL string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.WritePDF(data, symbol, fontURL)
		return ExportDoneMsg{Kind: "PDF", Path: path, Err: err}
	}
}

func importSnapshotCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := export.ReadSnapshot(path)
		return ImportDoneMsg{Data: data, Err: err}
	}
}

func assistCmd(client *assist.Client, text string) tea.Cmd {
	return func() tea.Msg {
		suggestion, ok := client.Extract(context.Background(), text)
		return AssistResultMsg{Suggestion: suggestion, OK: ok}
	}
}
