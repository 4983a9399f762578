package engine

import (
	"sort"

	"github.com/joshsymonds/neon-finance/internal/model"
)

// CategoryTotal is one slice of the month's expense breakdown.
type CategoryTotal struct {
	Category string
	Total    float64
}

// FlowPoint is one signed entry of the month's cash-flow series: income
// positive, expense negative.
type FlowPoint struct {
	Date        model.Date
	Description string
	Amount      float64
}

// MonthSummary aggregates one month of activity plus the standing overdue
// alert, which is computed over the whole history rather than the displayed
// month.
type MonthSummary struct {
	Categories   []CategoryTotal
	DailyFlow    []FlowPoint
	Income       float64
	Expense      float64
	Balance      float64
	OverdueCount int
}

// FilterMonth returns the transactions falling in the same calendar month as
// ref, preserving document order.
func FilterMonth(transactions []model.Transaction, ref model.Date) []model.Transaction {
	var out []model.Transaction
	for _, t := range transactions {
		if t.Date.SameMonth(ref) {
			out = append(out, t)
		}
	}
	return out
}

// ComputeMonthSummary aggregates monthTransactions (already scoped to one
// calendar month by the caller) into totals, a category breakdown, and a
// chronological flow series. The overdue count is taken from the full
// unfiltered set so the alert does not change as the user navigates months.
//
// Category order follows first occurrence in the input, which keeps chart
// legends stable across recomputation.
func ComputeMonthSummary(monthTransactions, allTransactions []model.Transaction, today model.Date) MonthSummary {
	s := MonthSummary{}

	categoryIndex := make(map[string]int)
	for _, t := range monthTransactions {
		switch t.Kind {
		case model.KindIncome:
			s.Income += t.Amount
			s.DailyFlow = append(s.DailyFlow, FlowPoint{Date: t.Date, Description: t.Description, Amount: t.Amount})
		case model.KindExpense:
			s.Expense += t.Amount
			s.DailyFlow = append(s.DailyFlow, FlowPoint{Date: t.Date, Description: t.Description, Amount: -t.Amount})
			idx, ok := categoryIndex[t.Category]
			if !ok {
				idx = len(s.Categories)
				categoryIndex[t.Category] = idx
				s.Categories = append(s.Categories, CategoryTotal{Category: t.Category})
			}
			s.Categories[idx].Total += t.Amount
		}
	}
	s.Balance = s.Income - s.Expense

	sort.SliceStable(s.DailyFlow, func(i, j int) bool {
		return s.DailyFlow[i].Date.Before(s.DailyFlow[j].Date)
	})

	for _, t := range allTransactions {
		if t.OverdueAt(today) {
			s.OverdueCount++
		}
	}

	return s
}
