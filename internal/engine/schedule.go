package engine

import (
	"errors"
	"fmt"

	"github.com/joshsymonds/neon-finance/internal/model"
)

// ErrInvalidInstallmentCount is returned for loans without at least one
// installment; an empty schedule is invalid input.
var ErrInvalidInstallmentCount = errors.New("loan requires at least 1 installment")

// GenerateLoanSchedule materializes a loan's full payment plan as expense
// transactions, one calendar month apart starting at the loan's start date.
// The final installment uses the loan's last-installment override when one
// is set. The first PaidInstallments entries are marked settled, matching
// the count the user supplied at creation.
//
// The schedule is generated exactly once, at loan creation; the mutation
// layer commits the loan and its schedule together and never regenerates it
// on edits.
func GenerateLoanSchedule(loan model.Loan, newID func() string) ([]model.Transaction, error) {
	if loan.TotalInstallments < 1 {
		return nil, ErrInvalidInstallmentCount
	}

	installments := make([]model.Transaction, 0, loan.TotalInstallments)
	for i := 0; i < loan.TotalInstallments; i++ {
		amount := loan.MonthlyPayment
		if i == loan.TotalInstallments-1 {
			amount = loan.FinalPayment()
		}
		installments = append(installments, model.Transaction{
			ID:          newID(),
			Description: fmt.Sprintf("%s (%d/%d)", loan.Name, i+1, loan.TotalInstallments),
			Amount:      amount,
			Kind:        model.KindExpense,
			Date:        loan.StartDate.AddMonths(i),
			Category:    model.CategoryFinancing,
			LoanID:      loan.ID,
			IsPaid:      i < loan.PaidInstallments,
		})
	}
	return installments, nil
}
