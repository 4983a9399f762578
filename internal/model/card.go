package model

// CreditCard is a billing account. ClosingDay and DueDay are day-of-month
// ordinals (1-31); months shorter than the ordinal clamp to their last day
// when a concrete date is projected.
type CreditCard struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Limit      float64 `json:"limit"`
	ClosingDay int     `json:"closingDay"`
	DueDay     int     `json:"dueDay"`
	Color      string  `json:"color"`
	BrandName  string  `json:"brandName"`
	BrandLogo  string  `json:"brandLogo,omitempty"`
}
