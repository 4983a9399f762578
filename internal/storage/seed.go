package storage

import (
	"time"

	"github.com/joshsymonds/neon-finance/internal/model"
)

// Seed returns the document a fresh installation starts from: a few sample
// entries so the summary, card, and loan views have something to show before
// the user enters real data.
func Seed() model.Document {
	today := model.Today()
	carLastPayment := 1250.0

	return model.Document{
		Transactions: []model.Transaction{
			{ID: "seed-tx-1", Description: "Salary", Amount: 5000, Kind: model.KindIncome, Date: today, Category: "Salary", IsPaid: true},
			{ID: "seed-tx-2", Description: "Rent", Amount: 1200, Kind: model.KindExpense, Date: today, Category: "Housing", IsPaid: true},
			{ID: "seed-tx-3", Description: "Groceries", Amount: 450, Kind: model.KindExpense, Date: today.AddMonths(-1), Category: "Food", IsPaid: false},
		},
		Cards: []model.CreditCard{
			{ID: "seed-card-1", Name: "Nubank", Limit: 8000, ClosingDay: 5, DueDay: 12, Color: "#820AD1", BrandName: "Nubank"},
			{ID: "seed-card-2", Name: "Inter", Limit: 4500, ClosingDay: 10, DueDay: 17, Color: "#FF7A00", BrandName: "Inter"},
		},
		Loans: []model.Loan{
			{
				ID:                   "seed-loan-1",
				Name:                 "Car financing",
				TotalValue:           45000,
				StartDate:            model.NewDate(2023, time.January, 15),
				EndDate:              model.NewDate(2026, time.January, 15),
				MonthlyPayment:       1250,
				PaidInstallments:     10,
				TotalInstallments:    36,
				LastInstallmentValue: &carLastPayment,
			},
		},
		Investments: []model.Investment{
			{ID: "seed-inv-1", Name: "Treasury bonds", Type: "Fixed Income", AmountInvested: 10000, CurrentValue: 10500, Date: model.NewDate(2023, time.May, 1)},
		},
	}
}
