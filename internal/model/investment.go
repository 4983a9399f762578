package model

// Investment is a position or contribution, e.g. a bond purchase or a stock
// lot. Type is a free-form label ("Fixed Income", "Stocks", ...).
type Investment struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	AmountInvested float64 `json:"amountInvested"`
	CurrentValue   float64 `json:"currentValue"`
	Date           Date    `json:"date"`
}

// Gain returns the absolute return of the position.
func (i Investment) Gain() float64 {
	return i.CurrentValue - i.AmountInvested
}
