package export

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/clubkitty/internal/budget"
	"github.com/akyairhashvil/clubkitty/internal/config"
	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/util"
)

// WritePDF renders the budget report to the reports directory and returns
// the file path. A missing unicode font downgrades the report to the core
// Arial font instead of failing the export.
func WritePDF(data models.AppData, symbol, fontURL string) (string, error) {
	dir := filepath.Join(util.ReportsDir(config.AppName), "exports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("clubkitty_budget_%s.pdf", time.Now().Format("20060102_150405")))

	pdf := fpdf.New("P", "mm", "A4", "")
	font := "Arial"
	if fontPath, err := ensureFont(fontURL); err != nil {
		util.LogError("report font unavailable, using core font", err)
	} else {
		pdf.AddUTF8Font("DejaVu", "", fontPath)
		font = "DejaVu"
	}

	pdf.AddPage()
	pdf.SetFont(font, "", 16)
	pdf.Cell(0, 10, "Club Budget Report")
	pdf.Ln(7)
	pdf.SetFont(font, "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2 Jan 2006 15:04")))
	pdf.Ln(12)

	writeSummarySection(pdf, font, symbol, data)
	writeIncomeSection(pdf, font, symbol, data)
	writeExpenseSection(pdf, font, symbol, data)
	writeTaskSection(pdf, font, symbol, data)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

func writeSummarySection(pdf *fpdf.Fpdf, font, symbol string, data models.AppData) {
	s := budget.Summarize(data)
	pdf.SetFont(font, "", 13)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(9)
	pdf.SetFont(font, "", 10)

	rows := []struct {
		label string
		value string
	}{
		{"Carry-over", symbol + money(s.CarryOver)},
		{"Yearly income", symbol + money(s.YearlyIncome)},
		{"Total budget", symbol + money(s.TotalBudget)},
		{"Badminton cost", symbol + money(s.ActivityCost)},
		{"Planned expense", symbol + money(s.PlannedExpense)},
		{"Grand total planned", symbol + money(s.GrandTotalPlanned)},
		{"Actual expense", symbol + money(s.ActualExpense)},
		{"Projected balance", symbol + money(s.ProjectedBalance)},
		{"Actual balance", symbol + money(s.ActualBalance)},
	}
	for _, r := range rows {
		pdf.Cell(70, 6, r.label)
		pdf.Cell(0, 6, r.value)
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func writeIncomeSection(pdf *fpdf.Fpdf, font, symbol string, data models.AppData) {
	pdf.SetFont(font, "", 13)
	pdf.Cell(0, 8, "Income Sources")
	pdf.Ln(9)
	pdf.SetFont(font, "", 10)

	if len(data.IncomeSources) == 0 {
		pdf.Cell(0, 6, "No income sources recorded.")
		pdf.Ln(8)
		return
	}
	for _, src := range data.IncomeSources {
		total := budget.YearlyIncome([]models.IncomeSource{src})
		pdf.Cell(90, 6, src.Name)
		pdf.Cell(0, 6, symbol+money(total))
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func writeExpenseSection(pdf *fpdf.Fpdf, font, symbol string, data models.AppData) {
	pdf.SetFont(font, "", 13)
	pdf.Cell(0, 8, "Planned Expenses")
	pdf.Ln(9)
	pdf.SetFont(font, "", 10)

	wrote := false
	for _, m := range models.MonthOrder {
		if plan := data.BadmintonConfig[m]; plan.IsSelected {
			cost := budget.MonthActivityCost(plan)
			pdf.Cell(30, 6, m.Label())
			pdf.Cell(90, 6, "Badminton sessions")
			pdf.Cell(0, 6, symbol+money(cost))
			pdf.Ln(6)
			wrote = true
		}
		for _, e := range data.Events {
			if e.Month != m {
				continue
			}
			line := symbol + money(e.Amount)
			if e.ActualAmount != nil {
				line += fmt.Sprintf("  (actual %s%s)", symbol, money(*e.ActualAmount))
			}
			pdf.Cell(30, 6, m.Label())
			pdf.Cell(90, 6, fmt.Sprintf("%s [%s]", e.Name, e.Category.Label()))
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
			wrote = true
		}
	}
	if !wrote {
		pdf.Cell(0, 6, "No expenses planned.")
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

// writeTaskSection lists every board's tasks. Skipped entirely when no
// board holds a task.
func writeTaskSection(pdf *fpdf.Fpdf, font, symbol string, data models.AppData) {
	hasTasks := len(data.CentralTasks) > 0
	for _, e := range data.Events {
		if len(e.Tasks) > 0 {
			hasTasks = true
		}
	}
	if !hasTasks {
		return
	}

	pdf.AddPage()
	pdf.SetFont(font, "", 13)
	pdf.Cell(0, 8, "Tasks")
	pdf.Ln(9)

	for _, e := range data.Events {
		if len(e.Tasks) == 0 {
			continue
		}
		writeTaskGroup(pdf, font, symbol, e.Name, e.Tasks)
	}
	if len(data.CentralTasks) > 0 {
		writeTaskGroup(pdf, font, symbol, "Central board", data.CentralTasks)
	}
}

func writeTaskGroup(pdf *fpdf.Fpdf, font, symbol, heading string, tasks []models.EventTask) {
	pdf.SetFont(font, "", 11)
	pdf.Cell(0, 7, heading)
	pdf.Ln(7)
	pdf.SetFont(font, "", 10)
	for _, t := range tasks {
		line := fmt.Sprintf("  %s  (%s, %s, %s%s)", t.Title, t.Status.Label(), t.Assignee, symbol, money(t.Budget))
		pdf.MultiCell(0, 6, line, "", "", false)
		for _, item := range t.Checklist {
			mark := "[ ]"
			if item.Completed {
				mark = "[x]"
			}
			pdf.MultiCell(0, 5, "      "+mark+" "+item.Text, "", "", false)
		}
	}
	pdf.Ln(3)
}

// ensureFont returns the cached unicode font path, downloading it on first
// use. Any failure leaves the cache untouched and reports the error.
func ensureFont(fontURL string) (string, error) {
	if fontURL == "" {
		return "", fmt.Errorf("no font url configured")
	}
	dir := util.DataDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, config.ReportFontFile)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(fontURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("font download failed: %s", resp.Status)
	}

	tmp, err := os.CreateTemp(dir, "font-*.ttf")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return path, nil
}
