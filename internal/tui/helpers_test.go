package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/clubkitty/internal/config"
	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/state"
	"github.com/akyairhashvil/clubkitty/internal/testutil"
)

// MockStore records persistence calls without touching a database. Async
// saves are recorded synchronously so tests stay deterministic.
type MockStore struct {
	mu         sync.Mutex
	saves      []models.AppData
	asyncSaves []models.AppData
	saveErr    error
}

func newMockStore() *MockStore {
	return &MockStore{}
}

func (s *MockStore) Save(ctx context.Context, data models.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, data)
	return s.saveErr
}

func (s *MockStore) SaveAsync(data models.AppData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asyncSaves = append(s.asyncSaves, data)
}

func (s *MockStore) asyncSaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.asyncSaves)
}

func setupTestModel(t *testing.T) (MainModel, *MockStore) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	task := testutil.NewTask().
		WithTitle("Book hall").
		WithChecklist("Call venue", "Pay deposit").
		Build()
	event := testutil.NewEvent().
		WithName("Summer Tournament").
		WithMonth(models.MonthJul).
		WithAmount("250").
		WithActual("230").
		WithTask(task).
		Build()

	appState := state.FromData(models.AppData{
		Events: []models.EventExpense{event},
		IncomeSources: []models.IncomeSource{
			testutil.NewIncomeSource().
				WithName("Membership dues").
				WithAmount(models.MonthJan, "100").
				Build(),
		},
		CentralTasks:    []models.EventTask{testutil.NewTask().WithTitle("Renew insurance").Build()},
		CarryOver:       models.ParseAmount("50"),
		BadmintonConfig: models.NewBadmintonConfig(),
	})

	mock := newMockStore()
	m := NewMainModel(mock, appState, config.DefaultSettings())
	return m, mock
}

func press(t *testing.T, m MainModel, msg tea.Msg) MainModel {
	t.Helper()
	model, _ := m.Update(msg)
	return model.(MainModel)
}

func pressKey(t *testing.T, m MainModel, key string) MainModel {
	t.Helper()
	switch key {
	case "enter":
		return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	case "tab":
		return press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	case "shift+tab":
		return press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	case "space":
		return press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	case "up":
		return press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		return press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	case "left":
		return press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	case "right":
		return press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	default:
		return press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}
}

func typeText(t *testing.T, m MainModel, text string) MainModel {
	t.Helper()
	return press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}
