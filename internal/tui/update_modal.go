package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/akyairhashvil/clubkitty/internal/models"
)

func (m MainModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.modal.Close()
		m.inputs.resetAll()
		return m, nil
	}

	switch m.modal.ActiveModal() {
	case ModalTaskCreate:
		return m.updateTaskCreateModal(msg)
	case ModalTaskEdit:
		return m.updateTaskEditModal(msg)
	case ModalTaskDelete:
		return m.updateTaskDeleteModal(msg)
	case ModalEventEdit:
		return m.updateEventEditModal(msg)
	case ModalEventDelete:
		return m.updateEventDeleteModal(msg)
	case ModalIncomeCreate:
		return m.updateIncomeCreateModal(msg)
	case ModalIncomeRename:
		return m.updateIncomeRenameModal(msg)
	case ModalIncomeDelete:
		return m.updateIncomeDeleteModal(msg)
	case ModalCellEdit:
		return m.updateCellEditModal(msg)
	case ModalCarryOver:
		return m.updateCarryOverModal(msg)
	case ModalSessionEdit:
		return m.updateSessionEditModal(msg)
	case ModalImport:
		return m.updateImportModal(msg)
	case ModalAssist:
		return m.updateAssistModal(msg)
	case ModalTheme:
		return m.updateThemeModal(msg)
	}
	return m, nil
}

func (m *MainModel) closeModal() {
	m.modal.Close()
	m.inputs.resetAll()
}

// focusTaskField maps a field index to its input for the create/edit forms.
func (m *MainModel) focusTaskField(field int) {
	m.inputs.blurAll()
	switch field {
	case 0:
		m.inputs.title.Focus()
	case 1:
		m.inputs.description.Focus()
	case 2:
		m.inputs.assignee.Focus()
	case 3:
		m.inputs.amount.Focus()
	case 4:
		m.inputs.checklist.Focus()
	}
}

func (m MainModel) updateTaskCreateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st, _ := m.modal.TaskCreateState()

	switch msg.Type {
	case tea.KeyTab:
		st.Field = (st.Field + 1) % 4
		m.focusTaskField(st.Field)
		return m, nil
	case tea.KeyShiftTab:
		st.Field = (st.Field + 3) % 4
		m.focusTaskField(st.Field)
		return m, nil
	case tea.KeyEnter:
		next, ok := m.state.AddTask(st.Owner,
			m.inputs.title.Value(),
			m.inputs.description.Value(),
			m.inputs.assignee.Value(),
			m.inputs.amount.Value())
		if !ok {
			m.status = "Task title is required"
			return m, nil
		}
		m.state = next
		m.persist()
		m.closeModal()
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m MainModel) updateTaskEditModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st, _ := m.modal.TaskEditState()

	// Field 5 is the staged checklist list: inputs are blurred and keys
	// act on the item under the cursor.
	if st.Field == 5 {
		switch msg.String() {
		case "tab":
			st.Field = 6
		case "shift+tab":
			st.Field = 4
			m.focusTaskField(4)
		case "up", "k":
			if st.ItemCursor > 0 {
				st.ItemCursor--
			}
		case "down", "j":
			if st.ItemCursor < len(st.Buffer.Checklist)-1 {
				st.ItemCursor++
			}
		case " ":
			if st.ItemCursor < len(st.Buffer.Checklist) {
				st.Buffer.ToggleChecklistItem(st.Buffer.Checklist[st.ItemCursor].ID)
			}
		case "x":
			if st.ItemCursor < len(st.Buffer.Checklist) {
				st.Buffer.RemoveChecklistItem(st.Buffer.Checklist[st.ItemCursor].ID)
				if st.ItemCursor > 0 {
					st.ItemCursor--
				}
			}
		case "enter":
			return m.applyTaskEdit(st)
		}
		return m, nil
	}

	// Field 6 picks the linked event, cycling through none plus every event.
	if st.Field == 6 {
		switch msg.String() {
		case "tab":
			st.Field = 0
			m.focusTaskField(0)
		case "shift+tab":
			st.Field = 5
		case "left", "h":
			st.Buffer.LinkedEventID = cycleEventLink(m.state.Data.Events, st.Buffer.LinkedEventID, -1)
		case "right", "l":
			st.Buffer.LinkedEventID = cycleEventLink(m.state.Data.Events, st.Buffer.LinkedEventID, 1)
		case "enter":
			return m.applyTaskEdit(st)
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyTab:
		st.Field = (st.Field + 1) % 7
		if st.Field >= 5 {
			m.inputs.blurAll()
		} else {
			m.focusTaskField(st.Field)
		}
		return m, nil
	case tea.KeyShiftTab:
		st.Field = (st.Field + 6) % 7
		if st.Field >= 5 {
			m.inputs.blurAll()
		} else {
			m.focusTaskField(st.Field)
		}
		return m, nil
	case tea.KeyEnter:
		if st.Field == 4 {
			text := strings.TrimSpace(m.inputs.checklist.Value())
			if text != "" {
				st.Buffer.AddChecklistItem(text)
				m.inputs.checklist.SetValue("")
			}
			return m, nil
		}
		return m.applyTaskEdit(st)
	}
	return m.updateFocusedInput(msg)
}

// applyTaskEdit commits the staged buffer in one shot.
func (m MainModel) applyTaskEdit(st *TaskEditState) (tea.Model, tea.Cmd) {
	st.Buffer.Title = m.inputs.title.Value()
	st.Buffer.Description = m.inputs.description.Value()
	st.Buffer.Assignee = m.inputs.assignee.Value()
	st.Buffer.BudgetText = m.inputs.amount.Value()
	m.state = m.state.EditTask(st.Owner, st.TaskID, st.Buffer)
	m.persist()
	m.closeModal()
	return m, nil
}

func (m MainModel) updateTaskDeleteModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st, _ := m.modal.TaskDeleteState()
	switch msg.String() {
	case "y", "Y":
		m.state = m.state.DeleteTask(st.Owner, st.TaskID)
		m.view.focusedTask = 0
		m.persist()
		m.closeModal()
	case "n", "N":
		m.closeModal()
	}
	return m, nil
}

func (m *MainModel) focusEventField(field int) {
	m.inputs.blurAll()
	switch field {
	case 0:
		m.inputs.name.Focus()
	case 1:
		m.inputs.amount.Focus()
	case 2:
		m.inputs.actual.Focus()
	case 5:
		m.inputs.note.Focus()
	}
}

func (m MainModel) updateEventEditModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st, _ := m.modal.EventEditState()

	switch msg.Type {
	case tea.KeyTab:
		st.Field = (st.Field + 1) % 6
		m.focusEventField(st.Field)
		return m, nil
	case tea.KeyShiftTab:
		st.Field = (st.Field + 5) % 6
		m.focusEventField(st.Field)
		return m, nil
	case tea.KeyLeft, tea.KeyRight:
		step := 1
		if msg.Type == tea.KeyLeft {
			step = -1
		}
		switch st.Field {
		case 3:
			st.Month = cycleMonth(st.Month, step)
			return m, nil
		case 4:
			st.Category = cycleCategory(st.Category, step)
			return m, nil
		}
	case tea.KeyEnter:
		return m.applyEventEdit(st)
	}
	return m.updateFocusedInput(msg)
}

func (m MainModel) applyEventEdit(st *EventEditState) (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.inputs.name.Value())
	if name == "" {
		m.status = "Event name is required"
		return m, nil
	}
	amount := models.ParseAmount(m.inputs.amount.Value())
	actual := parseOptionalAmount(m.inputs.actual.Value())
	note := m.inputs.note.Value()

	if st.EventID == "" {
		ev := models.NewEventExpense(name, st.Month, amount, st.Category)
		ev.ActualAmount = actual
		ev.Note = note
		m.state = m.state.AddEvent(ev)
	} else {
		m.state = m.state.UpdateEvent(st.EventID, func(ev *models.EventExpense) {
			ev.Name = name
			ev.Month = st.Month
			ev.Amount = amount
			ev.ActualAmount = actual
			ev.Category = st.Category
			ev.Note = note
		})
	}
	m.persist()
	m.closeModal()
	return m, nil
}

// parseOptionalAmount keeps "no actual recorded" distinct from zero.
func parseOptionalAmount(s string) *decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v := models.ParseAmount(s)
	return &v
}

func cycleMonth(current models.MonthKey, step int) models.MonthKey {
	idx := 0
	for i, mk := range models.MonthOrder {
		if mk == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(models.MonthOrder)) % len(models.MonthOrder)
	return models.MonthOrder[idx]
}

// cycleEventLink steps through the link choices: no link, then every event
// in list order.
func cycleEventLink(events []models.EventExpense, current string, step int) string {
	ids := make([]string, 0, len(events)+1)
	ids = append(ids, "")
	for _, ev := range events {
		ids = append(ids, ev.ID)
	}
	idx := 0
	for i, id := range ids {
		if id == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(ids)) % len(ids)
	return ids[idx]
}

func cycleCategory(current models.EventCategory, step int) models.EventCategory {
	idx := 0
	for i, c := range models.EventCategories {
		if c == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(models.EventCategories)) % len(models.EventCategories)
	return models.EventCategories[idx]
}

func (m MainModel) updateEventDeleteModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st, _ := m.modal.EventDeleteState()
	switch msg.String() {
	case "y", "Y":
		m.state = m.state.DeleteEvent(st.EventID)
		if m.view.eventIdx > 0 {
			m.view.eventIdx--
		}
		m.persist()
		m.closeModal()
	case "n", "N":
		m.closeModal()
	}
	return m, nil
}

func (m MainModel) updateIncomeCreateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.inputs.name.Value())
		if name == "" {
			m.status = "Source name is required"
			return m, nil
		}
		m.state = m.state.AddIncomeSource(name)
		m.persist()
		m.closeModal()
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m MainModel) updateIncomeRenameModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st, _ := m.modal.IncomeRenameState()
	if msg.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.inputs.name.Value())
		if name == "" {
			m.status = "Source name is required"
			return m, nil
		}
		for _, src := range m.state.Data.IncomeSources {
			if src.ID == st.SourceID {
				m.state = m.state.RenameIncomeSource(st.SourceID, name, src.Kind, src.Owner)
				break
			}
		}
		m.persist()
		m.closeModal()
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m MainModel) updateIncomeDeleteModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st, _ := m.modal.IncomeDeleteState()
	switch msg.String() {
	case "y", "Y":
		m.state = m.state.DeleteIncomeSource(st.SourceID)
		if m.view.incomeRow > 0 {
			m.view.incomeRow--
		}
		m.persist()
		m.closeModal()
	case "n", "N":
		m.closeModal()
	}
	return m, nil
}

func (m MainModel) updateCellEditModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st, _ := m.modal.CellEditState()
	if msg.Type == tea.KeyEnter {
		amount := models.ParseAmount(m.inputs.amount.Value())
		m.state = m.state.SetIncomeCell(st.SourceID, st.Month, amount)
		m.persist()
		m.closeModal()
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m MainModel) updateCarryOverModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.state = m.state.SetCarryOver(models.ParseAmount(m.inputs.amount.Value()))
		m.persist()
		m.closeModal()
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m *MainModel) focusSessionField(field int) {
	m.inputs.blurAll()
	switch field {
	case 0:
		m.inputs.amount.Focus()
	case 1:
		m.inputs.courts.Focus()
	case 2:
		m.inputs.hours.Focus()
	}
}

func (m MainModel) updateSessionEditModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st, _ := m.modal.SessionEditState()

	switch msg.Type {
	case tea.KeyTab:
		st.Field = (st.Field + 1) % 3
		m.focusSessionField(st.Field)
		return m, nil
	case tea.KeyShiftTab:
		st.Field = (st.Field + 2) % 3
		m.focusSessionField(st.Field)
		return m, nil
	case tea.KeyEnter:
		rate := models.ParseAmount(m.inputs.amount.Value())
		courts, err := strconv.Atoi(strings.TrimSpace(m.inputs.courts.Value()))
		if err != nil || courts < 0 {
			courts = 0
		}
		hours := models.ParseAmount(m.inputs.hours.Value())

		if st.SessionID == "" {
			m.state = m.state.AddBadmintonSession(st.Month, models.NewSession(rate, courts, hours))
		} else {
			session := models.Session{ID: st.SessionID, HourlyRate: rate, Courts: courts, Hours: hours}
			m.state = m.state.UpdateBadmintonSession(st.Month, session)
		}
		m.persist()
		m.closeModal()
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m MainModel) updateImportModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		path := strings.TrimSpace(m.inputs.path.Value())
		if path == "" {
			m.status = "Enter a snapshot path"
			return m, nil
		}
		m.closeModal()
		m.busy = true
		m.status = "Importing..."
		return m, tea.Batch(m.spinner.Tick, importSnapshotCmd(path))
	}
	return m.updateFocusedInput(msg)
}

func (m MainModel) updateAssistModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		text := strings.TrimSpace(m.inputs.assist.Value())
		if text == "" {
			m.status = "Describe the expense first"
			return m, nil
		}
		m.closeModal()
		m.busy = true
		m.status = "Asking for a suggestion..."
		return m, tea.Batch(m.spinner.Tick, assistCmd(m.assist, text))
	}
	return m.updateFocusedInput(msg)
}

func (m MainModel) updateThemeModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st, _ := m.modal.ThemeState()
	names := ThemeNames()
	switch msg.String() {
	case "up", "k":
		if st.Cursor > 0 {
			st.Cursor--
		}
	case "down", "j":
		if st.Cursor < len(names)-1 {
			st.Cursor++
		}
	case "enter":
		m.applyTheme(names[st.Cursor])
		m.closeModal()
	}
	return m, nil
}

// updateFocusedInput forwards the key to every input; only the focused one
// reacts.
func (m MainModel) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	for _, in := range []*textinput.Model{
		&m.inputs.title, &m.inputs.description, &m.inputs.assignee,
		&m.inputs.amount, &m.inputs.actual, &m.inputs.name, &m.inputs.note,
		&m.inputs.checklist, &m.inputs.path, &m.inputs.assist,
		&m.inputs.courts, &m.inputs.hours,
	} {
		if in.Focused() {
			*in, cmd = in.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}
