package engine

import (
	"github.com/joshsymonds/neon-finance/internal/model"
)

// CardMetrics is the presentational view of a card's state. It is computed
// on demand and never persisted. AvailableLimit may be negative when
// outstanding debt exceeds the limit; display layers clamp it, the
// calculator does not.
type CardMetrics struct {
	PeriodStart         model.Date
	ClosingDate         model.Date
	NextDueDate         model.Date
	CurrentInvoiceTotal float64
	AvailableLimit      float64
}

// ComputeCardMetrics derives the currently-open invoice window, its total,
// the available limit, and the next due date for one card, evaluated at the
// given date.
//
// The open invoice closes on the card's closing day this month while today
// is still before that day, and next month once it has been reached. The
// invoice period spans one calendar month ending at the closing date: a
// transaction belongs to it when dated after the previous closing date
// (exclusive) and up to the current one (inclusive).
//
// The available limit is not scoped to the invoice window: it subtracts
// every unpaid expense ever charged to the card, so future installments and
// overdue bills keep consuming limit until they are settled.
func ComputeCardMetrics(card model.CreditCard, transactions []model.Transaction, today model.Date) CardMetrics {
	closingMonth := today
	if today.Day >= card.ClosingDay {
		closingMonth = today.AddMonths(1)
	}
	closing := closingMonth.WithDay(card.ClosingDay)
	periodStart := closing.AddMonths(-1)

	var invoiceTotal, unpaidTotal float64
	for _, t := range transactions {
		if !t.OnCard(card.ID) || t.Kind != model.KindExpense {
			continue
		}
		if t.Date.After(periodStart) && !t.Date.After(closing) {
			invoiceTotal += t.Amount
		}
		if !t.IsPaid {
			unpaidTotal += t.Amount
		}
	}

	return CardMetrics{
		PeriodStart:         periodStart,
		ClosingDate:         closing,
		NextDueDate:         closing.WithDay(card.DueDay),
		CurrentInvoiceTotal: invoiceTotal,
		AvailableLimit:      card.Limit - unpaidTotal,
	}
}
