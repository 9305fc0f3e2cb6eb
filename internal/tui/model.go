// Package tui implements the terminal interface: a root model switching
// between the summary dashboard, the income grid, the events list, the
// task boards and the badminton calculator.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/clubkitty/internal/assist"
	"github.com/akyairhashvil/clubkitty/internal/config"
	"github.com/akyairhashvil/clubkitty/internal/state"
)

// ViewMode defines which full-screen view is active.
type ViewMode int

const (
	ViewSummary ViewMode = iota
	ViewIncome
	ViewEvents
	ViewBoard
	ViewBadminton
)

// ViewState tracks cursor focus and scroll positions across the views.
type ViewState struct {
	incomeRow    int
	incomeCol    int
	eventIdx     int
	monthIdx     int
	sessionIdx   int
	focusedCol   int
	focusedTask  int
	taskScroll   map[int]int
	eventScroll  int
	incomeScroll int
}

func newViewState() *ViewState {
	return &ViewState{taskScroll: make(map[int]int)}
}

// MainModel is the root bubbletea model.
type MainModel struct {
	store    Store
	state    state.AppState
	settings config.Settings
	theme    Theme
	assist   *assist.Client

	mode       ViewMode
	boardOwner state.Owner
	view       *ViewState
	modal      *ModalManager
	inputs     *InputState

	spinner spinner.Model
	busy    bool
	status  string

	width  int
	height int
}

func NewMainModel(st Store, appState state.AppState, settings config.Settings) MainModel {
	SetTheme(settings.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return MainModel{
		store:    st,
		state:    appState,
		settings: settings,
		theme:    CurrentTheme,
		assist:   assist.New(settings.AssistEndpoint, config.AssistAPIKey()),
		mode:     ViewSummary,
		view:     newViewState(),
		modal:    newModalManager(),
		inputs:   newInputState(),
		spinner:  sp,
	}
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

// persist schedules a background save of the current state.
func (m *MainModel) persist() {
	m.store.SaveAsync(m.state.Data)
}

// applyTheme switches theme and records the choice in settings.
func (m *MainModel) applyTheme(name string) {
	SetTheme(name)
	m.theme = CurrentTheme
	m.settings.Theme = name
	if err := config.SaveSettings(config.SettingsPath(), m.settings); err != nil {
		m.status = "Theme applied, but saving settings failed"
	}
}
