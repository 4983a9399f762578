package model

// Loan is an installment contract. Its payment schedule is materialized as
// transactions exactly once, when the loan is created; editing the loan
// afterwards never rewrites those transactions, so payment history survives
// edits. EndDate is the user's stated target and is not recomputed from the
// schedule.
type Loan struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	TotalValue           float64  `json:"totalValue"`
	StartDate            Date     `json:"startDate"`
	EndDate              Date     `json:"endDate"`
	MonthlyPayment       float64  `json:"monthlyPayment"`
	PaidInstallments     int      `json:"paidInstallments"`
	TotalInstallments    int      `json:"totalInstallments"`
	ImageURL             string   `json:"imageUrl,omitempty"`
	LastInstallmentValue *float64 `json:"lastInstallmentValue,omitempty"`
}

// FinalPayment returns the amount of the last installment: the override when
// present and non-zero, otherwise the regular monthly payment.
func (l Loan) FinalPayment() float64 {
	if l.LastInstallmentValue != nil && *l.LastInstallmentValue != 0 {
		return *l.LastInstallmentValue
	}
	return l.MonthlyPayment
}
