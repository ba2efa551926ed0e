package model

import (
	"math"
	"time"
)

// TripSummary carries the derived, never-persisted view of a trip:
// budget usage, checklist completion and the per-category expense
// breakdown. It is recomputed from the trip document on every read.
type TripSummary struct {
	TripID         string                      `json:"tripId"`
	TotalExpenses  float64                     `json:"totalExpenses"`
	Budget         float64                     `json:"budget"`
	PercentUsed    int                         `json:"percentUsed"`
	ChecklistDone  int                         `json:"checklistDone"`
	ChecklistTotal int                         `json:"checklistTotal"`
	ByCategory     map[ExpenseCategory]float64 `json:"byCategory"`
	DurationDays   *int                        `json:"durationDays,omitempty"`
}

// Summarize computes the derived view for a trip
func Summarize(t *Trip) TripSummary {
	s := TripSummary{
		TripID:         t.ID,
		TotalExpenses:  TotalExpenses(t.Expenses),
		Budget:         t.Budget,
		ChecklistTotal: len(t.Checklist),
		ByCategory:     ExpensesByCategory(t.Expenses),
	}
	s.PercentUsed = PercentUsed(s.TotalExpenses, t.Budget)
	for _, item := range t.Checklist {
		if item.Done {
			s.ChecklistDone++
		}
	}
	if days, ok := DurationDays(t.StartDate, t.EndDate); ok {
		s.DurationDays = &days
	}
	return s
}

// TotalExpenses sums the amounts of all expenses
func TotalExpenses(expenses []Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// PercentUsed returns the budget share spent, rounded to the nearest
// whole percent. A zero budget yields 0 regardless of spend. The raw
// value may exceed 100 to signal overspend; clamping is presentation
// policy (see ClampPercent).
func PercentUsed(total, budget float64) int {
	if budget <= 0 {
		return 0
	}
	return int(math.Round(total / budget * 100))
}

// ClampPercent restricts a percentage to [0, 100] for progress-bar
// style rendering
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ExpensesByCategory sums amounts grouped by category. Every fixed
// category appears in the result, zero-valued when it has no entries.
func ExpensesByCategory(expenses []Expense) map[ExpenseCategory]float64 {
	out := make(map[ExpenseCategory]float64, len(ExpenseCategories))
	for _, c := range ExpenseCategories {
		out[c] = 0
	}
	for _, e := range expenses {
		out[e.Category] += e.Amount
	}
	return out
}

// DurationDays returns the whole-day span between the trip dates,
// clamped to a minimum of 0. The second return is false when either
// date is unset or unparseable.
func DurationDays(startDate, endDate string) (int, bool) {
	if startDate == "" || endDate == "" {
		return 0, false
	}
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return 0, false
	}
	days := int(math.Floor(end.Sub(start).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return days, true
}
