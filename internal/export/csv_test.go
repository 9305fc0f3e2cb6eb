package export

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/akyairhashvil/clubkitty/internal/models"
)

func TestWriteCSVSections(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", t.TempDir())

	path, err := WriteCSV(sampleData())
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not parseable CSV: %v", err)
	}

	content := make([]string, 0, len(records))
	for _, rec := range records {
		content = append(content, strings.Join(rec, "|"))
	}
	joined := strings.Join(content, "\n")

	for _, section := range []string{"Summary", "Income", "Expenses", "Tasks"} {
		if !strings.Contains(joined, section) {
			t.Errorf("missing %s section", section)
		}
	}
	if !strings.Contains(joined, "Carry-over|75.25") {
		t.Error("summary missing carry-over amount")
	}
	if !strings.Contains(joined, "Badminton sessions") {
		t.Error("expense ledger missing recurring activity line")
	}
	if !strings.Contains(joined, "Summer Tournament") {
		t.Error("expense ledger missing event")
	}
	if !strings.Contains(joined, "[ ] Call venue; [ ] Pay deposit") {
		t.Error("task checklist not inlined")
	}
	if !strings.Contains(joined, "Central board|Renew insurance") {
		t.Error("central board tasks missing")
	}
}

func TestWriteCSVIncomeHasMonthColumns(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", t.TempDir())

	path, err := WriteCSV(sampleData())
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	var header, row []string
	for i, rec := range records {
		if len(rec) > 0 && rec[0] == "Source" {
			header = rec
			row = records[i+1]
			break
		}
	}
	if header == nil {
		t.Fatal("income header row not found")
	}
	// Source + 13 month buckets + annual total.
	if want := 1 + len(models.MonthOrder) + 1; len(header) != want {
		t.Fatalf("income header has %d columns, want %d", len(header), want)
	}
	if row[0] != "Membership dues" {
		t.Errorf("first income row is %q", row[0])
	}
	if row[len(row)-1] != "120.50" {
		t.Errorf("annual total = %q, want 120.50", row[len(row)-1])
	}
}

func TestChecklistInline(t *testing.T) {
	items := []models.ChecklistItem{
		{Text: "Order shuttles", Completed: true},
		{Text: "Collect fees"},
	}
	got := checklistInline(items)
	want := "[x] Order shuttles; [ ] Collect fees"
	if got != want {
		t.Errorf("checklistInline = %q, want %q", got, want)
	}
	if checklistInline(nil) != "" {
		t.Error("empty checklist should render empty")
	}
}
