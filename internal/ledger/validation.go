package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshsymonds/neon-finance/internal/model"
)

// Validation errors. A failed validation blocks the operation before any
// state change; the returned document is always the unmodified input.
var (
	ErrMissingID           = errors.New("id is required")
	ErrMissingDescription  = errors.New("description is required")
	ErrMissingName         = errors.New("name is required")
	ErrNonPositiveAmount   = errors.New("amount must be positive")
	ErrNonPositiveLimit    = errors.New("limit must be positive")
	ErrInvalidKind         = errors.New("kind must be income or expense")
	ErrInvalidDayOfMonth   = errors.New("day of month must be between 1 and 31")
	ErrMissingDate         = errors.New("date is required")
	ErrInvalidInstallments = errors.New("total installments must be at least 1")
	ErrInvalidPaidCount    = errors.New("paid installments must be between 0 and the total")
	ErrNegativeInvestment  = errors.New("invested amount cannot be negative")
)

func validateTransaction(tx model.Transaction) error {
	if strings.TrimSpace(tx.ID) == "" {
		return fmt.Errorf("transaction: %w", ErrMissingID)
	}
	if strings.TrimSpace(tx.Description) == "" {
		return fmt.Errorf("transaction: %w", ErrMissingDescription)
	}
	if tx.Amount <= 0 {
		return fmt.Errorf("transaction: %w", ErrNonPositiveAmount)
	}
	if tx.Kind != model.KindIncome && tx.Kind != model.KindExpense {
		return fmt.Errorf("transaction: %w", ErrInvalidKind)
	}
	if tx.Date.IsZero() {
		return fmt.Errorf("transaction: %w", ErrMissingDate)
	}
	return nil
}

func validateCard(card model.CreditCard) error {
	if strings.TrimSpace(card.ID) == "" {
		return fmt.Errorf("card: %w", ErrMissingID)
	}
	if strings.TrimSpace(card.Name) == "" {
		return fmt.Errorf("card: %w", ErrMissingName)
	}
	if card.Limit <= 0 {
		return fmt.Errorf("card: %w", ErrNonPositiveLimit)
	}
	if card.ClosingDay < 1 || card.ClosingDay > 31 {
		return fmt.Errorf("card closing day: %w", ErrInvalidDayOfMonth)
	}
	if card.DueDay < 1 || card.DueDay > 31 {
		return fmt.Errorf("card due day: %w", ErrInvalidDayOfMonth)
	}
	return nil
}

func validateLoan(loan model.Loan) error {
	if strings.TrimSpace(loan.ID) == "" {
		return fmt.Errorf("loan: %w", ErrMissingID)
	}
	if strings.TrimSpace(loan.Name) == "" {
		return fmt.Errorf("loan: %w", ErrMissingName)
	}
	if loan.MonthlyPayment <= 0 {
		return fmt.Errorf("loan monthly payment: %w", ErrNonPositiveAmount)
	}
	if loan.StartDate.IsZero() {
		return fmt.Errorf("loan start date: %w", ErrMissingDate)
	}
	if loan.TotalInstallments < 1 {
		return fmt.Errorf("loan: %w", ErrInvalidInstallments)
	}
	if loan.PaidInstallments < 0 || loan.PaidInstallments > loan.TotalInstallments {
		return fmt.Errorf("loan: %w", ErrInvalidPaidCount)
	}
	return nil
}

func validateInvestment(inv model.Investment) error {
	if strings.TrimSpace(inv.ID) == "" {
		return fmt.Errorf("investment: %w", ErrMissingID)
	}
	if strings.TrimSpace(inv.Name) == "" {
		return fmt.Errorf("investment: %w", ErrMissingName)
	}
	if inv.AmountInvested < 0 || inv.CurrentValue < 0 {
		return fmt.Errorf("investment: %w", ErrNegativeInvestment)
	}
	return nil
}
