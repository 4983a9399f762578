// Package engine holds the derived-finance computations: recurrence
// expansion, loan installment schedules, credit card invoice metrics, and
// month summaries. Every function here is pure; callers supply the
// evaluation date and an id source, and nothing reads the clock or touches
// storage.
package engine

import (
	"errors"
	"fmt"

	"github.com/joshsymonds/neon-finance/internal/model"
)

// ErrInvalidRepeatCount is returned when expansion is requested with fewer
// than two months. A single occurrence goes through the plain upsert path,
// never through the expander.
var ErrInvalidRepeatCount = errors.New("recurrence requires at least 2 months")

// ExpandRecurring turns a template transaction into months dated instances,
// one calendar month apart starting at the template's own date. All
// instances share a freshly generated recurrence id. The first instance
// keeps the template's id and paid flag, so editing or settling "the first
// one" keeps addressing the entity the user created; later instances get
// fresh ids and start unpaid regardless of the template.
//
// Expansion is append-only: the caller adds the returned instances to the
// document as new entries.
func ExpandRecurring(template model.Transaction, months int, newID func() string) ([]model.Transaction, error) {
	if months < 2 {
		return nil, ErrInvalidRepeatCount
	}

	recurrenceID := newID()
	instances := make([]model.Transaction, 0, months)
	for i := 0; i < months; i++ {
		instance := template
		instance.Date = template.Date.AddMonths(i)
		instance.Description = fmt.Sprintf("%s (%d/%d)", template.Description, i+1, months)
		instance.RecurrenceID = recurrenceID
		if i > 0 {
			instance.ID = newID()
			instance.IsPaid = false
		}
		instances = append(instances, instance)
	}
	return instances, nil
}
