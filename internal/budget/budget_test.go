package budget

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/testutil"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestYearlyIncomeEmpty(t *testing.T) {
	if got := YearlyIncome(nil); !got.IsZero() {
		t.Fatalf("YearlyIncome(nil) = %s, want 0", got)
	}
}

func TestYearlyIncomeSumsAllCells(t *testing.T) {
	a := testutil.NewIncomeSource().WithAmount(models.MonthJan, "100").WithAmount(models.MonthFeb, "100").Build()
	b := testutil.NewIncomeSource().WithAmount(models.MonthDec, "12.25").WithAmount(models.MonthJanNext, "0.75").Build()
	got := YearlyIncome([]models.IncomeSource{a, b})
	if !got.Equal(dec("213")) {
		t.Fatalf("YearlyIncome = %s, want 213", got)
	}
}

func TestYearlyIncomeZeroSourceIsNeutral(t *testing.T) {
	a := testutil.NewIncomeSource().WithAmount(models.MonthMar, "55").Build()
	before := YearlyIncome([]models.IncomeSource{a})
	after := YearlyIncome([]models.IncomeSource{a, models.NewIncomeSource("Empty")})
	if !before.Equal(after) {
		t.Fatalf("all-zero source changed total: %s -> %s", before, after)
	}
}

func TestTotalBudget(t *testing.T) {
	if got := TotalBudget(dec("50"), dec("200")); !got.Equal(dec("250")) {
		t.Fatalf("TotalBudget = %s, want 250", got)
	}
	// Empty income: total budget collapses to carry-over.
	if got := TotalBudget(dec("50"), YearlyIncome(nil)); !got.Equal(dec("50")) {
		t.Fatalf("TotalBudget with no income = %s, want 50", got)
	}
	if got := TotalBudget(decimal.Zero, dec("10")); !got.Equal(dec("10")) {
		t.Fatalf("TotalBudget with zero carry-over = %s, want 10", got)
	}
}

func TestRecurringActivityCostSelection(t *testing.T) {
	cfg := models.NewBadmintonConfig()
	sessions := []models.Session{
		models.NewSession(dec("7.5"), 2, dec("2")),
		models.NewSession(dec("7.5"), 2, dec("2")),
	}
	cfg[models.MonthMar] = models.MonthPlan{IsSelected: true, Sessions: sessions}
	cfg[models.MonthApr] = models.MonthPlan{IsSelected: false, Sessions: sessions}

	if got := RecurringActivityCost(cfg); !got.Equal(dec("60")) {
		t.Fatalf("RecurringActivityCost = %s, want 60 (March only)", got)
	}

	// Deselecting keeps the sessions; reselecting restores the same cost.
	plan := cfg[models.MonthMar]
	plan.IsSelected = false
	cfg[models.MonthMar] = plan
	if got := RecurringActivityCost(cfg); !got.IsZero() {
		t.Fatalf("cost after deselect = %s, want 0", got)
	}
	if len(cfg[models.MonthMar].Sessions) != 2 {
		t.Fatalf("deselect dropped session data")
	}
	plan.IsSelected = true
	cfg[models.MonthMar] = plan
	if got := RecurringActivityCost(cfg); !got.Equal(dec("60")) {
		t.Fatalf("cost after reselect = %s, want 60", got)
	}
}

func TestTotalActualExpenseAbsentIsZero(t *testing.T) {
	events := []models.EventExpense{
		testutil.NewEvent().WithAmount("300").WithActual("250").Build(),
		testutil.NewEvent().WithAmount("100").Build(),
	}
	if got := TotalActualExpense(events); !got.Equal(dec("250")) {
		t.Fatalf("TotalActualExpense = %s, want 250", got)
	}
}

func TestPerEventVariance(t *testing.T) {
	saved := testutil.NewEvent().WithAmount("300").WithActual("250").Build()
	over := testutil.NewEvent().WithAmount("100").WithActual("150").Build()
	noActual := testutil.NewEvent().WithAmount("40").Build()
	zeroActual := testutil.NewEvent().WithAmount("40").WithActual("0").Build()

	r := PerEventVariance([]models.EventExpense{saved, over, noActual, zeroActual})
	if r.SavingsCount != 1 || !r.SavingsTotal.Equal(dec("50")) {
		t.Fatalf("savings = %d/%s, want 1/50", r.SavingsCount, r.SavingsTotal)
	}
	if r.OverspendCount != 1 || !r.OverspendTotal.Equal(dec("50")) {
		t.Fatalf("overspend = %d/%s, want 1/50", r.OverspendCount, r.OverspendTotal)
	}

	total := TotalActualExpense([]models.EventExpense{saved, over})
	if !total.Equal(dec("400")) {
		t.Fatalf("actual over completed events = %s, want 400", total)
	}
}

func TestVarianceSingleEvent(t *testing.T) {
	e := testutil.NewEvent().WithAmount("300").WithActual("250").Build()
	v, ok := Variance(e)
	if !ok || !v.Equal(dec("50")) {
		t.Fatalf("Variance = %s/%v, want 50/true", v, ok)
	}
	if _, ok := Variance(testutil.NewEvent().WithAmount("10").Build()); ok {
		t.Fatalf("Variance without actual should report not-recorded")
	}
}

func TestRemainingBudgetMayGoNegative(t *testing.T) {
	e := testutil.NewEvent().WithAmount("100").
		WithTask(testutil.NewTask().WithBudget("70").Build()).
		WithTask(testutil.NewTask().WithBudget("50").Build()).
		Build()
	if got := RemainingBudget(e); !got.Equal(dec("-20")) {
		t.Fatalf("RemainingBudget = %s, want -20", got)
	}
}

func TestSummarizeScenario(t *testing.T) {
	source := testutil.NewIncomeSource().
		WithAmount(models.MonthJan, "100").
		WithAmount(models.MonthFeb, "100").
		Build()
	cfg := models.NewBadmintonConfig()
	cfg[models.MonthMar] = models.MonthPlan{IsSelected: true, Sessions: []models.Session{
		models.NewSession(dec("7.5"), 2, dec("2")),
		models.NewSession(dec("7.5"), 2, dec("2")),
	}}
	data := models.AppData{
		IncomeSources:   []models.IncomeSource{source},
		Events:          []models.EventExpense{testutil.NewEvent().WithAmount("90").Build()},
		CarryOver:       dec("50"),
		BadmintonConfig: cfg,
	}

	s := Summarize(data)
	if !s.YearlyIncome.Equal(dec("200")) {
		t.Fatalf("YearlyIncome = %s, want 200", s.YearlyIncome)
	}
	if !s.TotalBudget.Equal(dec("250")) {
		t.Fatalf("TotalBudget = %s, want 250", s.TotalBudget)
	}
	if !s.ActivityCost.Equal(dec("60")) {
		t.Fatalf("ActivityCost = %s, want 60", s.ActivityCost)
	}
	if !s.GrandTotalPlanned.Equal(dec("150")) {
		t.Fatalf("GrandTotalPlanned = %s, want 150", s.GrandTotalPlanned)
	}
	if !s.ProjectedBalance.Equal(dec("100")) {
		t.Fatalf("ProjectedBalance = %s, want 100", s.ProjectedBalance)
	}
	if !s.ActualBalance.Equal(dec("250")) {
		t.Fatalf("ActualBalance = %s, want 250 (no actuals recorded)", s.ActualBalance)
	}
}
