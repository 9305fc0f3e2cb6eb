package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/clubkitty/internal/budget"
	"github.com/akyairhashvil/clubkitty/internal/config"
	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/util"
)

// WriteCSV writes the sectioned CSV summary to the reports directory and
// returns the file path.
func WriteCSV(data models.AppData) (string, error) {
	dir := filepath.Join(util.ReportsDir(config.AppName), "exports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("clubkitty_budget_%s.csv", time.Now().Format("20060102_150405")))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	writeCSVSections(w, data)
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, nil
}

func writeCSVSections(w *csv.Writer, data models.AppData) {
	s := budget.Summarize(data)

	// Summary metrics.
	w.Write([]string{"Summary"})
	w.Write([]string{"Metric", "Amount"})
	w.Write([]string{"Carry-over", money(s.CarryOver)})
	w.Write([]string{"Yearly income", money(s.YearlyIncome)})
	w.Write([]string{"Total budget", money(s.TotalBudget)})
	w.Write([]string{"Badminton cost", money(s.ActivityCost)})
	w.Write([]string{"Planned expense", money(s.PlannedExpense)})
	w.Write([]string{"Grand total planned", money(s.GrandTotalPlanned)})
	w.Write([]string{"Actual expense", money(s.ActualExpense)})
	w.Write([]string{"Projected balance", money(s.ProjectedBalance)})
	w.Write([]string{"Actual balance", money(s.ActualBalance)})
	w.Write([]string{"Savings (events under budget)", fmt.Sprintf("%s across %d", money(s.Variance.SavingsTotal), s.Variance.SavingsCount)})
	w.Write([]string{"Overspend (events over budget)", fmt.Sprintf("%s across %d", money(s.Variance.OverspendTotal), s.Variance.OverspendCount)})
	w.Write([]string{})

	// Income sources, one column per month bucket plus the annual total.
	w.Write([]string{"Income"})
	header := []string{"Source"}
	for _, m := range models.MonthOrder {
		header = append(header, m.Label())
	}
	header = append(header, "Annual Total")
	w.Write(header)
	for _, src := range data.IncomeSources {
		row := []string{src.Name}
		total := budget.YearlyIncome([]models.IncomeSource{src})
		for _, m := range models.MonthOrder {
			row = append(row, money(src.Amounts[m]))
		}
		row = append(row, money(total))
		w.Write(row)
	}
	w.Write([]string{})

	// Combined expense ledger in fixed month order: badminton lines first
	// within a month, then that month's events.
	w.Write([]string{"Expenses"})
	w.Write([]string{"Month", "Item", "Category", "Planned", "Actual", "Variance"})
	for _, m := range models.MonthOrder {
		plan := data.BadmintonConfig[m]
		if plan.IsSelected {
			cost := budget.MonthActivityCost(plan)
			w.Write([]string{m.Label(), "Badminton sessions", "recurring", money(cost), "", ""})
		}
		for _, e := range data.Events {
			if e.Month != m {
				continue
			}
			actual, variance := "", ""
			if e.ActualAmount != nil {
				actual = money(*e.ActualAmount)
			}
			if v, ok := budget.Variance(e); ok {
				variance = money(v)
			}
			w.Write([]string{m.Label(), e.Name, string(e.Category), money(e.Amount), actual, variance})
		}
	}
	w.Write([]string{})

	// Every task across every board, checklist inlined.
	w.Write([]string{"Tasks"})
	w.Write([]string{"Event", "Task", "Assignee", "Status", "Budget", "Checklist"})
	for _, e := range data.Events {
		for _, t := range e.Tasks {
			w.Write([]string{e.Name, t.Title, t.Assignee, t.Status.Label(), money(t.Budget), checklistInline(t.Checklist)})
		}
	}
	for _, t := range data.CentralTasks {
		w.Write([]string{"Central board", t.Title, t.Assignee, t.Status.Label(), money(t.Budget), checklistInline(t.Checklist)})
	}
}

// checklistInline renders a checklist as "[x] done item; [ ] open item".
func checklistInline(items []models.ChecklistItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		mark := "[ ]"
		if item.Completed {
			mark = "[x]"
		}
		parts = append(parts, mark+" "+item.Text)
	}
	return strings.Join(parts, "; ")
}
