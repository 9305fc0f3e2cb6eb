package tui

import (
	"fmt"
	"strings"
)

func (m MainModel) renderModal() string {
	switch m.modal.ActiveModal() {
	case ModalTaskCreate:
		return m.renderTaskCreateModal()
	case ModalTaskEdit:
		return m.renderTaskEditModal()
	case ModalTaskDelete:
		st, _ := m.modal.TaskDeleteState()
		return m.renderConfirm(fmt.Sprintf("Delete task %q?", st.Title))
	case ModalEventEdit:
		return m.renderEventEditModal()
	case ModalEventDelete:
		st, _ := m.modal.EventDeleteState()
		return m.renderConfirm(fmt.Sprintf("Delete event %q and its board?", st.Name))
	case ModalIncomeCreate:
		return m.renderInputModal("New Income Source", m.inputs.name.View())
	case ModalIncomeRename:
		return m.renderInputModal("Rename Income Source", m.inputs.name.View())
	case ModalIncomeDelete:
		st, _ := m.modal.IncomeDeleteState()
		return m.renderConfirm(fmt.Sprintf("Delete income source %q?", st.Name))
	case ModalCellEdit:
		st, _ := m.modal.CellEditState()
		return m.renderInputModal("Amount for "+st.Month.Label(), m.inputs.amount.View())
	case ModalCarryOver:
		return m.renderInputModal("Carry-over From Last Season", m.inputs.amount.View())
	case ModalSessionEdit:
		return m.renderSessionModal()
	case ModalImport:
		return m.renderInputModal("Import Snapshot", m.inputs.path.View()+"\n"+
			m.theme.Warning.Render("This replaces all current data."))
	case ModalAssist:
		return m.renderInputModal("Describe an Expense", m.inputs.assist.View())
	case ModalTheme:
		return m.renderThemeModal()
	}
	return ""
}

func (m MainModel) renderInputModal(title, body string) string {
	content := m.theme.Highlight.Render(title) + "\n" + body + "\n" +
		m.theme.Dim.Render("enter confirm | esc cancel")
	return m.theme.Input.Render(content)
}

func (m MainModel) renderConfirm(question string) string {
	content := m.theme.Warning.Render(question) + "\n" +
		m.theme.Dim.Render("y confirm | n cancel")
	return m.theme.Input.Render(content)
}

func (m MainModel) renderTaskCreateModal() string {
	body := strings.Join([]string{
		"Title:       " + m.inputs.title.View(),
		"Description: " + m.inputs.description.View(),
		"Assignee:    " + m.inputs.assignee.View(),
		"Budget:      " + m.inputs.amount.View(),
	}, "\n")
	return m.renderInputModal("New Task", body+"\n"+m.theme.Dim.Render("tab next field"))
}

func (m MainModel) renderTaskEditModal() string {
	st, _ := m.modal.TaskEditState()

	var checklist []string
	for i, item := range st.Buffer.Checklist {
		mark := "[ ]"
		style := m.theme.Item
		if item.Completed {
			mark = "[x]"
			style = m.theme.DoneItem
		}
		line := fmt.Sprintf("  %s %s", mark, item.Text)
		if st.Field == 5 && i == st.ItemCursor {
			line = ">" + line[1:]
			style = m.theme.Focused
		}
		checklist = append(checklist, style.Render(line))
	}
	if len(checklist) == 0 {
		checklist = append(checklist, m.theme.Dim.Render("  (no checklist items)"))
	}

	link := "none"
	if st.Buffer.LinkedEventID != "" {
		link = "(missing event)"
		if ev, ok := m.state.FindEvent(st.Buffer.LinkedEventID); ok {
			link = ev.Name
		}
	}
	if st.Field == 6 {
		link = m.theme.Focused.Render("< " + link + " >")
	}

	body := strings.Join([]string{
		"Title:       " + m.inputs.title.View(),
		"Description: " + m.inputs.description.View(),
		"Assignee:    " + m.inputs.assignee.View(),
		"Budget:      " + m.inputs.amount.View(),
		"Add item:    " + m.inputs.checklist.View(),
		strings.Join(checklist, "\n"),
		"Linked event: " + link,
	}, "\n")

	help := "tab next field | enter save"
	switch st.Field {
	case 5:
		help = "space toggle | x remove | enter save | tab back"
	case 6:
		help = "left/right pick event | enter save"
	}
	return m.renderInputModal("Edit Task", body+"\n"+m.theme.Dim.Render(help))
}

func (m MainModel) renderEventEditModal() string {
	st, _ := m.modal.EventEditState()

	pick := func(field int, value string) string {
		if st.Field == field {
			return m.theme.Focused.Render("< " + value + " >")
		}
		return value
	}

	title := "New Event"
	if st.EventID != "" {
		title = "Edit Event"
	}
	body := strings.Join([]string{
		"Name:     " + m.inputs.name.View(),
		"Planned:  " + m.inputs.amount.View(),
		"Actual:   " + m.inputs.actual.View(),
		"Month:    " + pick(3, st.Month.Label()),
		"Category: " + pick(4, st.Category.Label()),
		"Note:     " + m.inputs.note.View(),
	}, "\n")
	return m.renderInputModal(title, body+"\n"+m.theme.Dim.Render("tab next field | left/right pick"))
}

func (m MainModel) renderSessionModal() string {
	st, _ := m.modal.SessionEditState()
	title := "New Session for " + st.Month.Label()
	if st.SessionID != "" {
		title = "Edit Session for " + st.Month.Label()
	}
	body := strings.Join([]string{
		"Hourly rate: " + m.inputs.amount.View(),
		"Courts:      " + m.inputs.courts.View(),
		"Hours:       " + m.inputs.hours.View(),
	}, "\n")
	return m.renderInputModal(title, body+"\n"+m.theme.Dim.Render("tab next field"))
}

func (m MainModel) renderThemeModal() string {
	st, _ := m.modal.ThemeState()
	var lines []string
	for i, name := range ThemeNames() {
		label := Themes[name].Name
		if i == st.Cursor {
			lines = append(lines, m.theme.Focused.Render("> "+label))
		} else {
			lines = append(lines, m.theme.Item.Render("  "+label))
		}
	}
	return m.renderInputModal("Theme", strings.Join(lines, "\n"))
}
