package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joshsymonds/neon-finance/internal/model"
)

func cardExpense(id, cardID string, date model.Date, amount float64, paid bool) model.Transaction {
	return model.Transaction{
		ID:          id,
		Description: "card charge",
		Amount:      amount,
		Kind:        model.KindExpense,
		Date:        date,
		Category:    "Shopping",
		CardID:      cardID,
		IsPaid:      paid,
	}
}

func TestComputeCardMetrics_InvoiceWindow(t *testing.T) {
	card := model.CreditCard{ID: "C1", Name: "Nubank", Limit: 8000, ClosingDay: 5, DueDay: 12}
	today := model.NewDate(2024, time.March, 10) // past the closing day

	transactions := []model.Transaction{
		// Period-start bound is exclusive: dated exactly on it stays out.
		cardExpense("t1", "C1", model.NewDate(2024, time.March, 5), 100, false),
		// First day inside the window.
		cardExpense("t2", "C1", model.NewDate(2024, time.March, 6), 200, false),
		// Closing date itself is inclusive.
		cardExpense("t3", "C1", model.NewDate(2024, time.April, 5), 300, false),
		// Past the closing date: next invoice.
		cardExpense("t4", "C1", model.NewDate(2024, time.April, 6), 400, false),
		// Other card, in window: ignored.
		cardExpense("t5", "C2", model.NewDate(2024, time.March, 20), 500, false),
		// Income on the card is not billed.
		{ID: "t6", Description: "refund", Amount: 50, Kind: model.KindIncome,
			Date: model.NewDate(2024, time.March, 20), CardID: "C1"},
	}

	metrics := ComputeCardMetrics(card, transactions, today)

	assert.Equal(t, model.NewDate(2024, time.April, 5), metrics.ClosingDate)
	assert.Equal(t, model.NewDate(2024, time.March, 5), metrics.PeriodStart)
	assert.Equal(t, 500.0, metrics.CurrentInvoiceTotal) // t2 + t3
	assert.Equal(t, model.NewDate(2024, time.April, 12), metrics.NextDueDate)
}

func TestComputeCardMetrics_BeforeClosingDay(t *testing.T) {
	card := model.CreditCard{ID: "C1", Name: "Inter", Limit: 4500, ClosingDay: 10, DueDay: 17}
	today := model.NewDate(2024, time.March, 9)

	metrics := ComputeCardMetrics(card, nil, today)

	// Still before the closing day, so the open invoice closes this month.
	assert.Equal(t, model.NewDate(2024, time.March, 10), metrics.ClosingDate)
	assert.Equal(t, model.NewDate(2024, time.February, 10), metrics.PeriodStart)
	assert.Equal(t, model.NewDate(2024, time.March, 17), metrics.NextDueDate)
}

func TestComputeCardMetrics_ClosingDayItself(t *testing.T) {
	card := model.CreditCard{ID: "C1", Name: "Inter", Limit: 4500, ClosingDay: 10, DueDay: 17}
	today := model.NewDate(2024, time.March, 10)

	// On the closing day the invoice has closed; the open one is next month's.
	metrics := ComputeCardMetrics(card, nil, today)
	assert.Equal(t, model.NewDate(2024, time.April, 10), metrics.ClosingDate)
}

func TestComputeCardMetrics_AvailableLimit(t *testing.T) {
	card := model.CreditCard{ID: "C1", Name: "Nubank", Limit: 1000, ClosingDay: 5, DueDay: 12}
	today := model.NewDate(2024, time.March, 1)

	transactions := []model.Transaction{
		// Unpaid charges from any period consume limit.
		cardExpense("t1", "C1", model.NewDate(2023, time.June, 1), 300, false),
		cardExpense("t2", "C1", model.NewDate(2024, time.February, 20), 400, false),
		// Paid charges release their share.
		cardExpense("t3", "C1", model.NewDate(2024, time.February, 21), 9999, true),
		// Other cards do not count.
		cardExpense("t4", "C2", model.NewDate(2024, time.February, 22), 100, false),
	}

	metrics := ComputeCardMetrics(card, transactions, today)
	assert.Equal(t, 300.0, metrics.AvailableLimit)
}

func TestComputeCardMetrics_AvailableLimitMayGoNegative(t *testing.T) {
	card := model.CreditCard{ID: "C1", Name: "Nubank", Limit: 500, ClosingDay: 5, DueDay: 12}
	today := model.NewDate(2024, time.March, 1)

	transactions := []model.Transaction{
		cardExpense("t1", "C1", model.NewDate(2024, time.February, 20), 800, false),
	}

	// The calculator reports the true figure; clamping is the display's job.
	metrics := ComputeCardMetrics(card, transactions, today)
	assert.Equal(t, -300.0, metrics.AvailableLimit)
}

func TestComputeCardMetrics_ClampsShortMonths(t *testing.T) {
	card := model.CreditCard{ID: "C1", Name: "Edge", Limit: 1000, ClosingDay: 31, DueDay: 31}
	today := model.NewDate(2024, time.February, 10)

	metrics := ComputeCardMetrics(card, nil, today)

	// February has no 31st; the closing date clamps to its last day.
	assert.Equal(t, model.NewDate(2024, time.February, 29), metrics.ClosingDate)
	assert.Equal(t, model.NewDate(2024, time.January, 29), metrics.PeriodStart)
	assert.Equal(t, model.NewDate(2024, time.February, 29), metrics.NextDueDate)
}
