package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/clubkitty/internal/board"
	"github.com/akyairhashvil/clubkitty/internal/export"
	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/state"
	"github.com/akyairhashvil/clubkitty/internal/util"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ExportDoneMsg:
		m.busy = false
		if msg.Err != nil {
			m.status = fmt.Sprintf("%s export failed: %v", msg.Kind, msg.Err)
		} else {
			m.status = fmt.Sprintf("%s export written to %s", msg.Kind, msg.Path)
		}
		return m, nil

	case ImportDoneMsg:
		m.busy = false
		if msg.Err != nil {
			var importErr *export.ImportError
			if errors.As(msg.Err, &importErr) {
				m.status = importErr.Error()
			} else {
				m.status = fmt.Sprintf("Import failed: %v", msg.Err)
			}
			return m, nil
		}
		m.state = state.FromData(msg.Data)
		m.view = newViewState()
		m.persist()
		m.status = "Import complete"
		return m, nil

	case AssistResultMsg:
		m.busy = false
		if !msg.OK {
			m.status = "Assist gave no usable suggestion"
			return m, nil
		}
		m.openEventModalFromSuggestion(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.modal.IsOpen() {
			return m.updateModal(msg)
		}
		return m.updateView(msg)
	}

	return m, nil
}

// quit does a final synchronous save before exiting.
func (m MainModel) quit() (tea.Model, tea.Cmd) {
	if err := m.store.Save(context.Background(), m.state.Data); err != nil {
		util.LogError("final save", err)
	}
	return m, tea.Quit
}

func (m MainModel) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// On the board, digits toggle checklist items instead of switching views.
	if m.mode != ViewBoard {
		switch msg.String() {
		case "1":
			m.mode = ViewSummary
			return m, nil
		case "2":
			m.mode = ViewIncome
			return m, nil
		case "3":
			m.mode = ViewEvents
			return m, nil
		case "4":
			m.mode = ViewBoard
			m.boardOwner = state.Central
			m.view.focusedCol = 0
			m.view.focusedTask = 0
			return m, nil
		case "5":
			m.mode = ViewBadminton
			return m, nil
		}
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "J":
		m.busy = true
		m.status = "Exporting JSON..."
		return m, tea.Batch(m.spinner.Tick, exportSnapshotCmd(m.state.Clone().Data))
	case "C":
		m.busy = true
		m.status = "Exporting CSV..."
		return m, tea.Batch(m.spinner.Tick, exportCSVCmd(m.state.Clone().Data))
	case "P":
		m.busy = true
		m.status = "Exporting PDF..."
		return m, tea.Batch(m.spinner.Tick, exportPDFCmd(m.state.Clone().Data, m.settings.CurrencySymbol, m.settings.FontURL))
	case "I":
		m.inputs.resetAll()
		m.inputs.path.Focus()
		m.modal.Open(&ImportState{})
		return m, nil
	case "A":
		if !m.assist.Configured() {
			m.status = "Assist is not configured; set endpoint and key first"
			return m, nil
		}
		m.inputs.resetAll()
		m.inputs.assist.Focus()
		m.modal.Open(&AssistState{})
		return m, nil
	case "T":
		m.modal.Open(&ThemeState{Cursor: themeIndex(m.settings.Theme)})
		return m, nil
	}

	switch m.mode {
	case ViewIncome:
		return m.updateIncomeView(msg)
	case ViewEvents:
		return m.updateEventsView(msg)
	case ViewBoard:
		return m.updateBoardView(msg)
	case ViewBadminton:
		return m.updateBadmintonView(msg)
	}
	return m, nil
}

func themeIndex(name string) int {
	for i, n := range ThemeNames() {
		if n == name {
			return i
		}
	}
	return 0
}

// --- Income grid ---

func (m MainModel) updateIncomeView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sources := m.state.Data.IncomeSources

	switch msg.String() {
	case "up", "k":
		if m.view.incomeRow > 0 {
			m.view.incomeRow--
		}
	case "down", "j":
		if m.view.incomeRow < len(sources)-1 {
			m.view.incomeRow++
		}
	case "left", "h":
		if m.view.incomeCol > 0 {
			m.view.incomeCol--
		}
	case "right", "l":
		if m.view.incomeCol < len(models.MonthOrder)-1 {
			m.view.incomeCol++
		}
	case "enter":
		if src, ok := m.focusedIncomeSource(); ok {
			month := models.MonthOrder[m.view.incomeCol]
			m.inputs.resetAll()
			m.inputs.amount.SetValue(src.Amounts[month].String())
			m.inputs.amount.Focus()
			m.modal.Open(&CellEditState{SourceID: src.ID, Month: month})
		}
	case "a":
		m.inputs.resetAll()
		m.inputs.name.Focus()
		m.modal.Open(&IncomeCreateState{})
	case "r":
		if src, ok := m.focusedIncomeSource(); ok {
			m.inputs.resetAll()
			m.inputs.name.SetValue(src.Name)
			m.inputs.name.Focus()
			m.modal.Open(&IncomeRenameState{SourceID: src.ID})
		}
	case "d":
		if src, ok := m.focusedIncomeSource(); ok {
			m.modal.Open(&IncomeDeleteState{SourceID: src.ID, Name: src.Name})
		}
	case "o":
		m.inputs.resetAll()
		m.inputs.amount.SetValue(m.state.Data.CarryOver.String())
		m.inputs.amount.Focus()
		m.modal.Open(&CarryOverState{})
	}
	return m, nil
}

func (m MainModel) focusedIncomeSource() (models.IncomeSource, bool) {
	sources := m.state.Data.IncomeSources
	if len(sources) == 0 || m.view.incomeRow >= len(sources) {
		return models.IncomeSource{}, false
	}
	return sources[m.view.incomeRow], true
}

// --- Events list ---

func (m MainModel) updateEventsView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	events := m.state.Data.Events

	switch msg.String() {
	case "up", "k":
		if m.view.eventIdx > 0 {
			m.view.eventIdx--
		}
	case "down", "j":
		if m.view.eventIdx < len(events)-1 {
			m.view.eventIdx++
		}
	case "enter":
		if ev, ok := m.focusedEvent(); ok {
			m.mode = ViewBoard
			m.boardOwner = state.Owner{EventID: ev.ID}
			m.view.focusedCol = 0
			m.view.focusedTask = 0
		}
	case "a":
		m.openEventModal("")
	case "e":
		if ev, ok := m.focusedEvent(); ok {
			m.openEventModal(ev.ID)
		}
	case "d":
		if ev, ok := m.focusedEvent(); ok {
			m.modal.Open(&EventDeleteState{EventID: ev.ID, Name: ev.Name})
		}
	}
	return m, nil
}

func (m MainModel) focusedEvent() (models.EventExpense, bool) {
	events := m.state.Data.Events
	if len(events) == 0 || m.view.eventIdx >= len(events) {
		return models.EventExpense{}, false
	}
	return events[m.view.eventIdx], true
}

// openEventModal opens the event editor, seeded from the event when id is
// non-empty.
func (m *MainModel) openEventModal(id string) {
	m.inputs.resetAll()
	st := &EventEditState{EventID: id, Month: models.MonthJan, Category: models.CategoryOther}
	if id != "" {
		if ev, ok := m.state.FindEvent(id); ok {
			m.inputs.name.SetValue(ev.Name)
			m.inputs.amount.SetValue(ev.Amount.String())
			if ev.ActualAmount != nil {
				m.inputs.actual.SetValue(ev.ActualAmount.String())
			}
			m.inputs.note.SetValue(ev.Note)
			st.Month = ev.Month
			st.Category = ev.Category
		}
	}
	m.inputs.name.Focus()
	m.modal.Open(st)
}

func (m *MainModel) openEventModalFromSuggestion(msg AssistResultMsg) {
	m.inputs.resetAll()
	m.inputs.name.SetValue(msg.Suggestion.Name)
	m.inputs.amount.SetValue(msg.Suggestion.Amount.String())
	m.inputs.name.Focus()
	m.modal.Open(&EventEditState{Month: msg.Suggestion.Month, Category: msg.Suggestion.Category})
	m.status = "Review the suggested event, then confirm"
	m.mode = ViewEvents
}

// --- Task board ---

func (m MainModel) updateBoardView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.state.TasksFor(m.boardOwner)
	column := m.focusedColumn(tasks)

	switch msg.String() {
	case "esc":
		if m.boardOwner.EventID != "" {
			m.mode = ViewEvents
		} else {
			m.mode = ViewSummary
		}
	case "left", "h":
		if m.view.focusedCol > 0 {
			m.view.focusedCol--
			m.view.focusedTask = 0
		}
	case "right", "l":
		if m.view.focusedCol < len(models.TaskStatuses)-1 {
			m.view.focusedCol++
			m.view.focusedTask = 0
		}
	case "up", "k":
		if m.view.focusedTask > 0 {
			m.view.focusedTask--
		}
	case "down", "j":
		if m.view.focusedTask < len(column)-1 {
			m.view.focusedTask++
		}
	case "H":
		if task, ok := m.focusedBoardTask(); ok && m.view.focusedCol > 0 {
			target := models.TaskStatuses[m.view.focusedCol-1]
			m.state = m.state.MoveTask(m.boardOwner, task.ID, target)
			m.view.focusedCol--
			m.view.focusedTask = 0
			m.persist()
		}
	case "L":
		if task, ok := m.focusedBoardTask(); ok && m.view.focusedCol < len(models.TaskStatuses)-1 {
			target := models.TaskStatuses[m.view.focusedCol+1]
			m.state = m.state.MoveTask(m.boardOwner, task.ID, target)
			m.view.focusedCol++
			m.view.focusedTask = 0
			m.persist()
		}
	case "a":
		m.inputs.resetAll()
		m.inputs.title.Focus()
		m.modal.Open(&TaskCreateState{Owner: m.boardOwner})
	case "e":
		if task, ok := m.focusedBoardTask(); ok {
			m.openTaskEditModal(task)
		}
	case "d":
		if task, ok := m.focusedBoardTask(); ok {
			m.modal.Open(&TaskDeleteState{Owner: m.boardOwner, TaskID: task.ID, Title: task.Title})
		}
	default:
		// Digits toggle the focused task's checklist items directly.
		if len(msg.String()) == 1 && msg.String() >= "1" && msg.String() <= "9" {
			if task, ok := m.focusedBoardTask(); ok {
				idx := int(msg.String()[0] - '1')
				if idx < len(task.Checklist) {
					m.state = m.state.ToggleChecklistItem(m.boardOwner, task.ID, task.Checklist[idx].ID)
					m.persist()
				}
			}
		}
	}
	return m, nil
}

func (m MainModel) focusedColumn(tasks []models.EventTask) []models.EventTask {
	status := models.TaskStatuses[m.view.focusedCol]
	out := make([]models.EventTask, 0)
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

func (m MainModel) focusedBoardTask() (models.EventTask, bool) {
	column := m.focusedColumn(m.state.TasksFor(m.boardOwner))
	if len(column) == 0 || m.view.focusedTask >= len(column) {
		return models.EventTask{}, false
	}
	return column[m.view.focusedTask], true
}

// --- Badminton calculator ---

func (m MainModel) updateBadmintonView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	month := models.MonthOrder[m.view.monthIdx]
	plan := m.state.Data.BadmintonConfig[month]

	switch msg.String() {
	case "up", "k":
		if m.view.monthIdx > 0 {
			m.view.monthIdx--
			m.view.sessionIdx = 0
		}
	case "down", "j":
		if m.view.monthIdx < len(models.MonthOrder)-1 {
			m.view.monthIdx++
			m.view.sessionIdx = 0
		}
	case " ":
		m.state = m.state.ToggleBadmintonMonth(month)
		m.persist()
	case "left", "h":
		if m.view.sessionIdx > 0 {
			m.view.sessionIdx--
		}
	case "right", "l":
		if m.view.sessionIdx < len(plan.Sessions)-1 {
			m.view.sessionIdx++
		}
	case "a":
		m.inputs.resetAll()
		m.inputs.amount.Focus()
		m.modal.Open(&SessionEditState{Month: month})
	case "e":
		if len(plan.Sessions) > 0 && m.view.sessionIdx < len(plan.Sessions) {
			s := plan.Sessions[m.view.sessionIdx]
			m.inputs.resetAll()
			m.inputs.amount.SetValue(s.HourlyRate.String())
			m.inputs.courts.SetValue(fmt.Sprintf("%d", s.Courts))
			m.inputs.hours.SetValue(s.Hours.String())
			m.inputs.amount.Focus()
			m.modal.Open(&SessionEditState{Month: month, SessionID: s.ID})
		}
	case "d":
		if len(plan.Sessions) > 0 && m.view.sessionIdx < len(plan.Sessions) {
			m.state = m.state.RemoveBadmintonSession(month, plan.Sessions[m.view.sessionIdx].ID)
			if m.view.sessionIdx > 0 {
				m.view.sessionIdx--
			}
			m.persist()
		}
	}
	return m, nil
}

func (m *MainModel) openTaskEditModal(task models.EventTask) {
	m.inputs.resetAll()
	m.inputs.title.SetValue(task.Title)
	m.inputs.description.SetValue(task.Description)
	m.inputs.assignee.SetValue(task.Assignee)
	m.inputs.amount.SetValue(task.Budget.String())
	m.inputs.title.Focus()
	m.modal.Open(&TaskEditState{
		Owner:  m.boardOwner,
		TaskID: task.ID,
		Buffer: board.NewEditBuffer(task),
	})
}
