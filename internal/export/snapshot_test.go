package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/testutil"
)

func sampleData() models.AppData {
	task := testutil.NewTask().
		WithTitle("Book hall").
		WithAssignee("Priya").
		WithBudget("40").
		WithStatus(models.StatusInProgress).
		WithChecklist("Call venue", "Pay deposit").
		Build()
	event := testutil.NewEvent().
		WithName("Summer Tournament").
		WithMonth(models.MonthJul).
		WithAmount("250").
		WithActual("230.50").
		WithCategory(models.CategoryVenue).
		WithNote("confirmed with committee").
		WithTask(task).
		Build()

	cfg := models.NewBadmintonConfig()
	plan := cfg[models.MonthMar]
	plan.IsSelected = true
	plan.Sessions = append(plan.Sessions, models.NewSession(models.ParseAmount("7.50"), 2, models.ParseAmount("2")))
	cfg[models.MonthMar] = plan

	return models.AppData{
		Events: []models.EventExpense{event},
		IncomeSources: []models.IncomeSource{
			testutil.NewIncomeSource().
				WithName("Membership dues").
				WithAmount(models.MonthJan, "120.50").
				Build(),
		},
		CentralTasks:    []models.EventTask{testutil.NewTask().WithTitle("Renew insurance").Build()},
		CarryOver:       models.ParseAmount("75.25"),
		BadmintonConfig: cfg,
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", t.TempDir())

	original := sampleData()
	path, err := WriteSnapshot(original)
	if err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	restored, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}

	original.LastUpdated = restored.LastUpdated
	want, _ := json.Marshal(original)
	got, _ := json.Marshal(restored)
	if string(want) != string(got) {
		t.Errorf("round trip changed data:\nwant %s\ngot  %s", want, got)
	}
}

func TestSnapshotAmountsAreJSONNumbers(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", t.TempDir())

	path, err := WriteSnapshot(sampleData())
	if err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"carryOver": 75.25`) {
		t.Errorf("carryOver not written as a bare number:\n%s", raw)
	}
	if strings.Contains(string(raw), `"120.50"`) || strings.Contains(string(raw), `"120.5"`) {
		t.Errorf("amounts written as quoted strings:\n%s", raw)
	}
}

func TestParseSnapshotRejectsMissingFields(t *testing.T) {
	for _, missing := range []string{"events", "incomeSources", "carryOver", "badmintonConfig"} {
		t.Run(missing, func(t *testing.T) {
			raw, _ := json.Marshal(sampleData())
			var top map[string]json.RawMessage
			json.Unmarshal(raw, &top)
			delete(top, missing)
			stripped, _ := json.Marshal(top)

			_, err := ParseSnapshot(stripped)
			var importErr *ImportError
			if !errors.As(err, &importErr) {
				t.Fatalf("expected ImportError, got %v", err)
			}
			if !strings.Contains(importErr.Reason, missing) {
				t.Errorf("reason %q does not name the missing field", importErr.Reason)
			}
		})
	}
}

func TestParseSnapshotRejectsNonNumericCarryOver(t *testing.T) {
	_, err := ParseSnapshot([]byte(`{"events":[],"incomeSources":[],"carryOver":"a lot","badmintonConfig":{}}`))
	var importErr *ImportError
	if !errors.As(err, &importErr) {
		t.Fatalf("expected ImportError, got %v", err)
	}
}

func TestParseSnapshotRejectsInvalidJSON(t *testing.T) {
	_, err := ParseSnapshot([]byte(`{not json`))
	var importErr *ImportError
	if !errors.As(err, &importErr) {
		t.Fatalf("expected ImportError, got %v", err)
	}
}

func TestParseSnapshotDiscardsLegacyCalculatorConfig(t *testing.T) {
	raw := []byte(`{
		"events": [],
		"incomeSources": [],
		"carryOver": 10,
		"badmintonConfig": {
			"mar": {"isSelected": true, "hoursPerMonth": 8}
		}
	}`)

	data, err := ParseSnapshot(raw)
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if len(data.BadmintonConfig) != len(models.MonthOrder) {
		t.Fatalf("expected fresh config with %d months, got %d", len(models.MonthOrder), len(data.BadmintonConfig))
	}
	for _, m := range models.MonthOrder {
		plan := data.BadmintonConfig[m]
		if plan.IsSelected || len(plan.Sessions) != 0 {
			t.Errorf("month %s not reset: %+v", m, plan)
		}
	}
}

func TestParseSnapshotNormalizesPartialConfig(t *testing.T) {
	raw := []byte(`{
		"events": [],
		"incomeSources": [],
		"carryOver": 0,
		"badmintonConfig": {
			"mar": {"isSelected": true, "sessions": []}
		}
	}`)

	data, err := ParseSnapshot(raw)
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if !data.BadmintonConfig[models.MonthMar].IsSelected {
		t.Error("selected month lost during normalization")
	}
	if len(data.BadmintonConfig) != len(models.MonthOrder) {
		t.Errorf("missing months not backfilled: have %d", len(data.BadmintonConfig))
	}
}

func TestReadSnapshotMissingFile(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var importErr *ImportError
	if errors.As(err, &importErr) {
		t.Error("missing file should be an I/O error, not a validation rejection")
	}
}
