package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/clubkitty/internal/board"
	"github.com/akyairhashvil/clubkitty/internal/budget"
	"github.com/akyairhashvil/clubkitty/internal/config"
	"github.com/akyairhashvil/clubkitty/internal/models"
)

func (m MainModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.modal.IsOpen() {
		b.WriteString(m.renderModal())
	} else {
		switch m.mode {
		case ViewSummary:
			b.WriteString(m.renderSummary())
		case ViewIncome:
			b.WriteString(m.renderIncomeGrid())
		case ViewEvents:
			b.WriteString(m.renderEvents())
		case ViewBoard:
			b.WriteString(m.renderBoard())
		case ViewBadminton:
			b.WriteString(m.renderBadminton())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return m.theme.Base.Render(b.String())
}

func (m MainModel) renderHeader() string {
	s := budget.Summarize(m.state.Data)
	sym := m.settings.CurrencySymbol

	title := m.theme.Header.Render("ClubKitty")
	tabs := m.renderTabs()
	line := fmt.Sprintf("Budget %s  |  Planned %s  |  Balance %s",
		FormatMoney(sym, s.TotalBudget),
		FormatMoney(sym, s.GrandTotalPlanned),
		m.balanceStyle(s).Render(FormatMoney(sym, s.ProjectedBalance)))

	return lipgloss.JoinVertical(lipgloss.Left, title, tabs, m.theme.Dim.Render(line))
}

func (m MainModel) balanceStyle(s budget.Summary) lipgloss.Style {
	if s.ProjectedBalance.IsNegative() {
		return m.theme.Negative
	}
	return m.theme.Positive
}

func (m MainModel) renderTabs() string {
	labels := []string{"1 Summary", "2 Income", "3 Events", "4 Central Board", "5 Badminton"}
	active := int(m.mode)
	if m.mode == ViewBoard && m.boardOwner.EventID != "" {
		active = 2
	}
	parts := make([]string, len(labels))
	for i, label := range labels {
		if i == active {
			parts[i] = m.theme.Focused.Render("[" + label + "]")
		} else {
			parts[i] = m.theme.Dim.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

// --- Summary dashboard ---

func (m MainModel) renderSummary() string {
	s := budget.Summarize(m.state.Data)
	sym := m.settings.CurrencySymbol

	row := func(label string, value string) string {
		return fmt.Sprintf("  %-24s %s", label, value)
	}

	lines := []string{
		m.theme.Highlight.Render("Season Overview"),
		row("Carry-over", FormatMoney(sym, s.CarryOver)),
		row("Yearly income", FormatMoney(sym, s.YearlyIncome)),
		row("Total budget", FormatMoney(sym, s.TotalBudget)),
		"",
		row("Badminton cost", FormatMoney(sym, s.ActivityCost)),
		row("Planned events", FormatMoney(sym, s.PlannedExpense)),
		row("Grand total planned", FormatMoney(sym, s.GrandTotalPlanned)),
		row("Actual spent", FormatMoney(sym, s.ActualExpense)),
		"",
		row("Projected balance", m.balanceStyle(s).Render(FormatMoney(sym, s.ProjectedBalance))),
		row("Actual balance", FormatMoney(sym, s.ActualBalance)),
	}

	if s.Variance.SavingsCount > 0 || s.Variance.OverspendCount > 0 {
		lines = append(lines, "", m.theme.Highlight.Render("Variance"))
		if s.Variance.SavingsCount > 0 {
			lines = append(lines, row(
				fmt.Sprintf("Saved on %s", FormatCount(s.Variance.SavingsCount, "event", "events")),
				m.theme.Positive.Render(FormatMoney(sym, s.Variance.SavingsTotal))))
		}
		if s.Variance.OverspendCount > 0 {
			lines = append(lines, row(
				fmt.Sprintf("Over on %s", FormatCount(s.Variance.OverspendCount, "event", "events")),
				m.theme.Negative.Render(FormatMoney(sym, s.Variance.OverspendTotal))))
		}
	}

	return strings.Join(lines, "\n")
}

// --- Income grid ---

func (m MainModel) renderIncomeGrid() string {
	sources := m.state.Data.IncomeSources
	sym := m.settings.CurrencySymbol

	nameWidth := config.TargetTitleWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		nameWidth = config.MinTitleWidth
	}
	const cellWidth = 9

	// Window the month columns around the cursor when the grid is wider
	// than the terminal.
	visible := len(models.MonthOrder)
	if m.width > 0 {
		visible = (m.width - nameWidth - 4) / (cellWidth + 1)
		if visible < 1 {
			visible = 1
		}
		if visible > len(models.MonthOrder) {
			visible = len(models.MonthOrder)
		}
	}
	start := 0
	if m.view.incomeCol >= visible {
		start = m.view.incomeCol - visible + 1
	}
	end := start + visible
	if end > len(models.MonthOrder) {
		end = len(models.MonthOrder)
	}

	var lines []string
	header := pad("Source", nameWidth)
	for _, mk := range models.MonthOrder[start:end] {
		header += " " + pad(shortMonth(mk), cellWidth)
	}
	lines = append(lines, m.theme.Highlight.Render(header))

	for row, src := range sources {
		line := pad(ansi.Truncate(src.Name, nameWidth, config.TruncationSuffix), nameWidth)
		for col := start; col < end; col++ {
			cell := pad(FormatMoney(sym, src.Amounts[models.MonthOrder[col]]), cellWidth)
			if row == m.view.incomeRow && col == m.view.incomeCol {
				cell = m.theme.Focused.Render(cell)
			}
			line += " " + cell
		}
		total := budget.YearlyIncome([]models.IncomeSource{src})
		line += "  " + m.theme.Dim.Render(FormatMoney(sym, total))
		lines = append(lines, line)
	}
	if len(sources) == 0 {
		lines = append(lines, m.theme.Dim.Render("No income sources. Press 'a' to add one."))
	}

	lines = append(lines, "",
		fmt.Sprintf("Carry-over: %s   Yearly income: %s",
			FormatMoney(sym, m.state.Data.CarryOver),
			FormatMoney(sym, budget.YearlyIncome(sources))))

	return strings.Join(lines, "\n")
}

func shortMonth(mk models.MonthKey) string {
	label := mk.Label()
	if len(label) > 3 {
		label = label[:3]
	}
	if mk == models.MonthJanNext {
		label = "Jan+"
	}
	return label
}

func pad(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// --- Events list ---

func (m MainModel) renderEvents() string {
	events := m.state.Data.Events
	sym := m.settings.CurrencySymbol

	if len(events) == 0 {
		return m.theme.Dim.Render("No events planned. Press 'a' to add one, or 'A' for a suggestion.")
	}

	var lines []string
	for i, ev := range events {
		cursor := "  "
		style := m.theme.Item
		if i == m.view.eventIdx {
			cursor = "> "
			style = m.theme.Focused
		}
		counts := board.CountByStatus(ev.Tasks)
		tag := m.theme.CategoryStyle(string(ev.Category)).Render(ev.Category.Label())

		line := fmt.Sprintf("%s%s  %s  %s  %s",
			cursor,
			style.Render(pad(ansi.Truncate(ev.Name, config.TargetTitleWidth, config.TruncationSuffix), config.TargetTitleWidth)),
			pad(ev.Month.Label(), 9),
			pad(tag, 11),
			FormatMoney(sym, ev.Amount))
		if ev.ActualAmount != nil {
			line += m.theme.Dim.Render(fmt.Sprintf("  actual %s", FormatMoney(sym, *ev.ActualAmount)))
			if v, ok := budget.Variance(ev); ok {
				vs := m.theme.Positive
				if v.IsNegative() {
					vs = m.theme.Negative
				}
				line += "  " + vs.Render(FormatSigned(sym, v))
			}
		}
		if len(ev.Tasks) > 0 {
			line += m.theme.Dim.Render(fmt.Sprintf("  [%d/%d tasks done]", counts[models.StatusDone], len(ev.Tasks)))
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", m.theme.Dim.Render(
		fmt.Sprintf("Planned total: %s", FormatMoney(sym, budget.TotalPlannedExpense(events)))))
	return strings.Join(lines, "\n")
}

// --- Task board ---

func (m MainModel) renderBoard() string {
	tasks := m.state.TasksFor(m.boardOwner)
	sym := m.settings.CurrencySymbol
	title := "Central Board"
	var allocation string
	if m.boardOwner.EventID != "" {
		if ev, ok := m.state.FindEvent(m.boardOwner.EventID); ok {
			title = ev.Name
			remaining := budget.RemainingBudget(ev)
			if remaining.Sign() < 0 {
				allocation = m.theme.Warning.Render(fmt.Sprintf(
					"Over-allocated by %s", FormatMoney(sym, remaining.Neg())))
			} else {
				allocation = m.theme.Dim.Render(fmt.Sprintf(
					"Remaining budget %s of %s", FormatMoney(sym, remaining), FormatMoney(sym, ev.Amount)))
			}
		}
	}

	colWidth := config.MinColumnWidth
	if m.width > 0 {
		w := (m.width - 12) / len(models.TaskStatuses)
		if w > colWidth {
			colWidth = w
		}
	}

	colFrame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Dim.GetForeground()).
		Padding(0, 1).
		Width(colWidth)
	focusedFrame := colFrame.BorderForeground(m.theme.Border)

	cols := make([]string, 0, len(models.TaskStatuses))
	for colIdx, status := range models.TaskStatuses {
		column := board.TasksInStatus(tasks, status)
		header := m.theme.Header.Width(colWidth - 2).Render(
			fmt.Sprintf("%s (%d)", status.Label(), len(column)))

		var body []string
		visible := column
		offset := 0
		if len(column) > config.MaxVisibleTasks {
			if colIdx == m.view.focusedCol && m.view.focusedTask >= config.MaxVisibleTasks {
				offset = m.view.focusedTask - config.MaxVisibleTasks + 1
			}
			visible = column[offset:min(offset+config.MaxVisibleTasks, len(column))]
		}
		for i, task := range visible {
			line := ansi.Truncate(task.Title, colWidth-4, config.TruncationSuffix)
			style := m.theme.Item
			if task.Status == models.StatusDone {
				style = m.theme.DoneItem
			}
			if colIdx == m.view.focusedCol && i+offset == m.view.focusedTask {
				style = m.theme.Focused
				line = "> " + line
			} else {
				line = "  " + line
			}
			body = append(body, style.Render(line))
			if done, total := checklistProgress(task); total > 0 {
				body = append(body, m.theme.Dim.Render(fmt.Sprintf("    %d/%d items", done, total)))
			}
		}
		if len(body) == 0 {
			body = append(body, m.theme.Dim.Render("  (empty)"))
		}

		frame := colFrame
		if colIdx == m.view.focusedCol {
			frame = focusedFrame
		}
		cols = append(cols, frame.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, body...)...)))
	}

	out := []string{m.theme.Highlight.Render(title)}
	if allocation != "" {
		out = append(out, allocation)
	}
	out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	if detail := m.renderTaskDetail(); detail != "" {
		out = append(out, detail)
	}
	return strings.Join(out, "\n")
}

func checklistProgress(task models.EventTask) (done, total int) {
	for _, item := range task.Checklist {
		total++
		if item.Completed {
			done++
		}
	}
	return done, total
}

// renderTaskDetail shows the focused task below the board, with numbered
// checklist items so digits can toggle them.
func (m MainModel) renderTaskDetail() string {
	task, ok := m.focusedBoardTask()
	if !ok {
		return ""
	}
	sym := m.settings.CurrencySymbol

	lines := []string{
		m.theme.Focused.Render(task.Title) + m.theme.Dim.Render(
			fmt.Sprintf("  %s  %s", task.Assignee, FormatMoney(sym, task.Budget))),
	}
	if task.Description != "" {
		lines = append(lines, m.theme.Dim.Render(task.Description))
	}
	if task.LinkedEventID != "" {
		if linked, ok := board.ResolveLink(m.state.Data.Events, task); ok {
			lines = append(lines, m.theme.Dim.Render("Linked: "+linked.Name))
		} else {
			lines = append(lines, m.theme.Warning.Render("Linked event no longer exists"))
		}
	}
	for i, item := range task.Checklist {
		mark := "[ ]"
		style := m.theme.Item
		if item.Completed {
			mark = "[x]"
			style = m.theme.DoneItem
		}
		lines = append(lines, style.Render(fmt.Sprintf("  %d. %s %s", i+1, mark, item.Text)))
	}
	return strings.Join(lines, "\n")
}

// --- Badminton calculator ---

func (m MainModel) renderBadminton() string {
	cfg := m.state.Data.BadmintonConfig
	sym := m.settings.CurrencySymbol

	var lines []string
	lines = append(lines, m.theme.Highlight.Render("Badminton Sessions"))
	for i, mk := range models.MonthOrder {
		plan := cfg[mk]
		cursor := "  "
		style := m.theme.Item
		if i == m.view.monthIdx {
			cursor = "> "
			style = m.theme.Focused
		}
		mark := "[ ]"
		if plan.IsSelected {
			mark = "[x]"
		}
		cost := budget.MonthActivityCost(plan)
		line := fmt.Sprintf("%s%s %s  %s", cursor, mark, style.Render(pad(mk.Label(), 9)), pad(FormatMoney(sym, cost), 10))
		if !plan.IsSelected && len(plan.Sessions) > 0 {
			line += m.theme.Dim.Render(" (not counted)")
		}
		lines = append(lines, line)

		if i == m.view.monthIdx {
			for j, s := range plan.Sessions {
				marker := "   "
				style := m.theme.Dim
				if j == m.view.sessionIdx {
					marker = " * "
					style = m.theme.Focused
				}
				lines = append(lines, style.Render(fmt.Sprintf("   %s%s/h x %d courts x %sh = %s",
					marker, FormatMoney(sym, s.HourlyRate), s.Courts, s.Hours.String(), FormatMoney(sym, s.Cost()))))
			}
		}
	}

	lines = append(lines, "", fmt.Sprintf("Season total (selected months): %s",
		m.theme.Focused.Render(FormatMoney(sym, budget.RecurringActivityCost(cfg)))))
	return strings.Join(lines, "\n")
}

// --- Footer ---

func (m MainModel) renderFooter() string {
	if m.busy {
		return m.spinner.View() + " " + m.theme.Dim.Render(m.status)
	}
	if m.status != "" {
		return m.theme.Warning.Render(m.status)
	}
	return m.theme.Dim.Render(m.footerHelp())
}

func (m MainModel) footerHelp() string {
	common := "1-5 views | J/C/P export | I import | T theme | q quit"
	switch m.mode {
	case ViewIncome:
		return "arrows move | enter edit cell | a add | r rename | d delete | o carry-over | " + common
	case ViewEvents:
		return "enter board | a add | A assist | e edit | d delete | " + common
	case ViewBoard:
		return "arrows move | H/L shift task | a add | e edit | d delete | 1-9 toggle item | esc back"
	case ViewBadminton:
		return "space toggle month | a add session | e edit | d delete | " + common
	}
	return common
}
