package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/clubkitty/internal/assist"
	"github.com/akyairhashvil/clubkitty/internal/export"
	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/state"
	"github.com/shopspring/decimal"
)

func TestCreateEventFlow(t *testing.T) {
	m, mock := setupTestModel(t)

	m = pressKey(t, m, "3")
	m = pressKey(t, m, "a")
	if !m.modal.Is(ModalEventEdit) {
		t.Fatalf("expected event modal")
	}
	m = typeText(t, m, "Quiz Night")
	m = pressKey(t, m, "tab")
	m = typeText(t, m, "80")
	// Skip actual, land on the month picker.
	m = pressKey(t, m, "tab")
	m = pressKey(t, m, "tab")
	m = pressKey(t, m, "right")
	m = pressKey(t, m, "tab")
	m = pressKey(t, m, "right")
	m = pressKey(t, m, "enter")

	events := m.state.Data.Events
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	added := events[1]
	if added.Name != "Quiz Night" || added.Amount.String() != "80" {
		t.Fatalf("unexpected event: %+v", added)
	}
	if added.Month != models.MonthFeb {
		t.Fatalf("expected month picker to land on Feb, got %s", added.Month)
	}
	if added.Category != models.CategoryEquipment {
		t.Fatalf("expected category picker to cycle from other to equipment, got %s", added.Category)
	}
	if added.ActualAmount != nil {
		t.Fatalf("blank actual must stay unset")
	}
	if mock.asyncSaveCount() == 0 {
		t.Fatalf("expected a background save")
	}
}

func TestEditEventRecordsActual(t *testing.T) {
	m, _ := setupTestModel(t)

	m = pressKey(t, m, "3")
	m = pressKey(t, m, "e")
	st, ok := m.modal.EventEditState()
	if !ok || st.EventID == "" {
		t.Fatalf("expected edit modal seeded with event id")
	}
	if m.inputs.name.Value() != "Summer Tournament" {
		t.Fatalf("expected seeded name, got %q", m.inputs.name.Value())
	}

	m = pressKey(t, m, "tab")
	m = pressKey(t, m, "tab")
	m.inputs.actual.SetValue("")
	m = typeText(t, m, "199.50")
	m = pressKey(t, m, "enter")

	ev := m.state.Data.Events[0]
	if ev.ActualAmount == nil || ev.ActualAmount.String() != "199.5" {
		t.Fatalf("expected actual 199.5, got %v", ev.ActualAmount)
	}
}

func TestDeleteEventKeepsLinkedTasksDangling(t *testing.T) {
	m, _ := setupTestModel(t)

	linked := m.state.Data.Events[0].ID
	m.state = m.state.WithTasks(state.Central, []models.EventTask{
		func() models.EventTask {
			task := models.NewEventTask("Liaise", "", "", "")
			task.LinkedEventID = linked
			return task
		}(),
	})

	m = pressKey(t, m, "3")
	m = pressKey(t, m, "d")
	m = pressKey(t, m, "y")
	if len(m.state.Data.Events) != 0 {
		t.Fatalf("expected event deleted")
	}
	central := m.state.TasksFor(state.Central)
	if central[0].LinkedEventID != linked {
		t.Fatalf("weak link must survive the event deletion")
	}
}

func TestIncomeCellEdit(t *testing.T) {
	m, _ := setupTestModel(t)

	m = pressKey(t, m, "2")
	m = pressKey(t, m, "right")
	m = pressKey(t, m, "enter")
	st, ok := m.modal.CellEditState()
	if !ok {
		t.Fatalf("expected cell edit modal")
	}
	if st.Month != models.MonthFeb {
		t.Fatalf("expected Feb cell, got %s", st.Month)
	}
	m.inputs.amount.SetValue("")
	m = typeText(t, m, "42")
	m = pressKey(t, m, "enter")

	src := m.state.Data.IncomeSources[0]
	if src.Amounts[models.MonthFeb].String() != "42" {
		t.Fatalf("expected 42 in Feb, got %s", src.Amounts[models.MonthFeb])
	}
}

func TestCarryOverEdit(t *testing.T) {
	m, _ := setupTestModel(t)

	m = pressKey(t, m, "2")
	m = pressKey(t, m, "o")
	m.inputs.amount.SetValue("")
	m = typeText(t, m, "75.25")
	m = pressKey(t, m, "enter")

	if m.state.Data.CarryOver.String() != "75.25" {
		t.Fatalf("expected carry-over 75.25, got %s", m.state.Data.CarryOver)
	}
}

func TestAddAndRenameIncomeSource(t *testing.T) {
	m, _ := setupTestModel(t)

	m = pressKey(t, m, "2")
	m = pressKey(t, m, "a")
	m = typeText(t, m, "Sponsorship")
	m = pressKey(t, m, "enter")
	if len(m.state.Data.IncomeSources) != 2 {
		t.Fatalf("expected 2 sources")
	}

	m = pressKey(t, m, "down")
	m = pressKey(t, m, "r")
	m.inputs.name.SetValue("")
	m = typeText(t, m, "Local Sponsorship")
	m = pressKey(t, m, "enter")
	if m.state.Data.IncomeSources[1].Name != "Local Sponsorship" {
		t.Fatalf("rename did not land: %+v", m.state.Data.IncomeSources[1])
	}
}

func TestBadmintonToggleAndSession(t *testing.T) {
	m, _ := setupTestModel(t)

	m = pressKey(t, m, "5")
	m = pressKey(t, m, "down")
	m = pressKey(t, m, "down") // March
	m = pressKey(t, m, "space")
	if !m.state.Data.BadmintonConfig[models.MonthMar].IsSelected {
		t.Fatalf("expected March selected")
	}

	m = pressKey(t, m, "a")
	if !m.modal.Is(ModalSessionEdit) {
		t.Fatalf("expected session modal")
	}
	m = typeText(t, m, "7.50")
	m = pressKey(t, m, "tab")
	m = typeText(t, m, "2")
	m = pressKey(t, m, "tab")
	m = typeText(t, m, "2")
	m = pressKey(t, m, "enter")

	plan := m.state.Data.BadmintonConfig[models.MonthMar]
	if len(plan.Sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(plan.Sessions))
	}
	if plan.Sessions[0].Cost().String() != "30" {
		t.Fatalf("expected session cost 30, got %s", plan.Sessions[0].Cost())
	}

	// Deselecting keeps the sessions around.
	m = pressKey(t, m, "space")
	plan = m.state.Data.BadmintonConfig[models.MonthMar]
	if plan.IsSelected || len(plan.Sessions) != 1 {
		t.Fatalf("deselect must keep sessions: %+v", plan)
	}
}

func TestExportKeysSetBusyState(t *testing.T) {
	m, _ := setupTestModel(t)

	for _, key := range []string{"J", "C", "P"} {
		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		next := model.(MainModel)
		if !next.busy {
			t.Fatalf("key %q should set busy", key)
		}
		if cmd == nil {
			t.Fatalf("key %q should return a command", key)
		}
	}
}

func TestExportDoneClearsBusy(t *testing.T) {
	m, _ := setupTestModel(t)
	m.busy = true

	m = press(t, m, ExportDoneMsg{Kind: "CSV", Path: "/tmp/out.csv"})
	if m.busy {
		t.Fatalf("expected busy cleared")
	}
	if !strings.Contains(m.status, "/tmp/out.csv") {
		t.Fatalf("expected path in status, got %q", m.status)
	}

	m.busy = true
	m = press(t, m, ExportDoneMsg{Kind: "PDF", Err: errors.New("disk full")})
	if !strings.Contains(m.status, "disk full") {
		t.Fatalf("expected error in status, got %q", m.status)
	}
}

func TestImportRejectionLeavesStateUntouched(t *testing.T) {
	m, _ := setupTestModel(t)
	before := len(m.state.Data.Events)

	m = press(t, m, ImportDoneMsg{Err: &export.ImportError{Reason: "missing required field carryOver"}})
	if len(m.state.Data.Events) != before {
		t.Fatalf("rejected import must not change state")
	}
	if !strings.Contains(m.status, "carryOver") {
		t.Fatalf("expected rejection reason in status, got %q", m.status)
	}
}

func TestImportSuccessReplacesState(t *testing.T) {
	m, mock := setupTestModel(t)

	m = press(t, m, ImportDoneMsg{Data: models.AppData{
		Events:          []models.EventExpense{},
		IncomeSources:   []models.IncomeSource{},
		CarryOver:       models.ParseAmount("999"),
		BadmintonConfig: models.NewBadmintonConfig(),
	}})
	if m.state.Data.CarryOver.String() != "999" {
		t.Fatalf("expected imported carry-over, got %s", m.state.Data.CarryOver)
	}
	if len(m.state.Data.Events) != 0 {
		t.Fatalf("import is wholesale replace")
	}
	if mock.asyncSaveCount() == 0 {
		t.Fatalf("imported state must be persisted")
	}
}

func TestAssistSuggestionOpensEventModal(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, AssistResultMsg{OK: true, Suggestion: &assist.Suggestion{
		Name:     "Hall hire",
		Amount:   decimal.RequireFromString("120"),
		Month:    models.MonthMar,
		Category: models.CategoryVenue,
	}})
	st, ok := m.modal.EventEditState()
	if !ok {
		t.Fatalf("expected event modal from suggestion")
	}
	if st.EventID != "" {
		t.Fatalf("suggestion must open the create form")
	}
	if m.inputs.name.Value() != "Hall hire" || st.Month != models.MonthMar || st.Category != models.CategoryVenue {
		t.Fatalf("suggestion not seeded: %q %s %s", m.inputs.name.Value(), st.Month, st.Category)
	}

	m = press(t, m, AssistResultMsg{OK: false})
	if m.status == "" {
		t.Fatalf("expected a status message for a failed suggestion")
	}
}
