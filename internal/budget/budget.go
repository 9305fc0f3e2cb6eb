// Package budget derives summary figures from the club's collections. Every
// function here is pure: empty inputs yield zero, nothing errors, nothing
// mutates its arguments.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/akyairhashvil/clubkitty/internal/models"
)

// YearlyIncome sums every month cell across all sources.
func YearlyIncome(sources []models.IncomeSource) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sources {
		for _, m := range models.MonthOrder {
			total = total.Add(s.Amounts[m])
		}
	}
	return total
}

// TotalBudget is the carry-over from the previous period plus this period's
// income.
func TotalBudget(carryOver, yearlyIncome decimal.Decimal) decimal.Decimal {
	return carryOver.Add(yearlyIncome)
}

// RecurringActivityCost sums session costs for selected months only.
// Deselected months contribute nothing even when they still hold sessions.
func RecurringActivityCost(cfg models.BadmintonConfig) decimal.Decimal {
	total := decimal.Zero
	for _, m := range models.MonthOrder {
		plan, ok := cfg[m]
		if !ok || !plan.IsSelected {
			continue
		}
		for _, s := range plan.Sessions {
			total = total.Add(s.Cost())
		}
	}
	return total
}

// MonthActivityCost is the cost of one month's sessions regardless of
// selection, for display beside the checkbox.
func MonthActivityCost(plan models.MonthPlan) decimal.Decimal {
	total := decimal.Zero
	for _, s := range plan.Sessions {
		total = total.Add(s.Cost())
	}
	return total
}

// TotalPlannedExpense sums event planned amounts.
func TotalPlannedExpense(events []models.EventExpense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range events {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalActualExpense sums recorded actuals, treating absent as zero.
func TotalActualExpense(events []models.EventExpense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range events {
		if e.ActualAmount != nil {
			total = total.Add(*e.ActualAmount)
		}
	}
	return total
}

// VarianceReport accumulates per-event variance (planned minus actual;
// positive means under budget). Events with no recorded actual, or with an
// actual of exactly zero, are not counted either way: a zero actual is
// unrecorded spending, not a full saving.
type VarianceReport struct {
	SavingsTotal   decimal.Decimal
	SavingsCount   int
	OverspendTotal decimal.Decimal
	OverspendCount int
}

// PerEventVariance builds the variance report over all events.
func PerEventVariance(events []models.EventExpense) VarianceReport {
	r := VarianceReport{SavingsTotal: decimal.Zero, OverspendTotal: decimal.Zero}
	for _, e := range events {
		if e.ActualAmount == nil || e.ActualAmount.IsZero() {
			continue
		}
		v := e.Amount.Sub(*e.ActualAmount)
		switch {
		case v.IsPositive():
			r.SavingsTotal = r.SavingsTotal.Add(v)
			r.SavingsCount++
		case v.IsNegative():
			r.OverspendTotal = r.OverspendTotal.Add(v.Neg())
			r.OverspendCount++
		}
	}
	return r
}

// Variance returns one event's planned-minus-actual figure and whether an
// actual was recorded at all.
func Variance(e models.EventExpense) (decimal.Decimal, bool) {
	if e.ActualAmount == nil || e.ActualAmount.IsZero() {
		return decimal.Zero, false
	}
	return e.Amount.Sub(*e.ActualAmount), true
}

// AllocatedBudget sums the budgets of the tasks on one board.
func AllocatedBudget(tasks []models.EventTask) decimal.Decimal {
	total := decimal.Zero
	for _, t := range tasks {
		total = total.Add(t.Budget)
	}
	return total
}

// RemainingBudget is the event amount minus its task allocations. A negative
// result means the board is over-allocated; that is surfaced as a warning,
// never rejected.
func RemainingBudget(e models.EventExpense) decimal.Decimal {
	return e.Amount.Sub(AllocatedBudget(e.Tasks))
}

// Summary bundles the derived scalars consumed by the dashboard header and
// the exporters.
type Summary struct {
	YearlyIncome      decimal.Decimal
	CarryOver         decimal.Decimal
	TotalBudget       decimal.Decimal
	ActivityCost      decimal.Decimal
	PlannedExpense    decimal.Decimal
	ActualExpense     decimal.Decimal
	GrandTotalPlanned decimal.Decimal
	ProjectedBalance  decimal.Decimal
	ActualBalance     decimal.Decimal
	Variance          VarianceReport
}

// Summarize computes the full summary from the raw collections.
func Summarize(data models.AppData) Summary {
	income := YearlyIncome(data.IncomeSources)
	total := TotalBudget(data.CarryOver, income)
	activity := RecurringActivityCost(data.BadmintonConfig)
	planned := TotalPlannedExpense(data.Events)
	actual := TotalActualExpense(data.Events)
	grand := planned.Add(activity)
	return Summary{
		YearlyIncome:      income,
		CarryOver:         data.CarryOver,
		TotalBudget:       total,
		ActivityCost:      activity,
		PlannedExpense:    planned,
		ActualExpense:     actual,
		GrandTotalPlanned: grand,
		ProjectedBalance:  total.Sub(grand),
		ActualBalance:     total.Sub(actual),
		Variance:          PerEventVariance(data.Events),
	}
}
