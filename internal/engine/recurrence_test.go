package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/neon-finance/internal/model"
)

// sequentialIDs returns an id source yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestExpandRecurring(t *testing.T) {
	template := model.Transaction{
		ID:          "T1",
		Description: "Gym membership",
		Amount:      99.90,
		Kind:        model.KindExpense,
		Date:        model.NewDate(2024, time.January, 15),
		Category:    "Health",
		IsPaid:      true,
	}

	instances, err := ExpandRecurring(template, 3, sequentialIDs())
	require.NoError(t, err)
	require.Len(t, instances, 3)

	// One fresh recurrence id shared by all instances.
	recurrenceID := instances[0].RecurrenceID
	assert.NotEmpty(t, recurrenceID)
	for _, instance := range instances {
		assert.Equal(t, recurrenceID, instance.RecurrenceID)
	}

	// Dates advance one calendar month at a time from the template.
	assert.Equal(t, model.NewDate(2024, time.January, 15), instances[0].Date)
	assert.Equal(t, model.NewDate(2024, time.February, 15), instances[1].Date)
	assert.Equal(t, model.NewDate(2024, time.March, 15), instances[2].Date)

	// Numbered descriptions.
	assert.Equal(t, "Gym membership (1/3)", instances[0].Description)
	assert.Equal(t, "Gym membership (2/3)", instances[1].Description)
	assert.Equal(t, "Gym membership (3/3)", instances[2].Description)

	// The first instance is the template entity; later ones are fresh and
	// unpaid no matter what the template said.
	assert.Equal(t, "T1", instances[0].ID)
	assert.True(t, instances[0].IsPaid)
	for _, instance := range instances[1:] {
		assert.NotEqual(t, "T1", instance.ID)
		assert.False(t, instance.IsPaid)
	}
	assert.NotEqual(t, instances[1].ID, instances[2].ID)
}

func TestExpandRecurring_EndOfMonthClamps(t *testing.T) {
	template := model.Transaction{
		ID:          "T1",
		Description: "Rent",
		Amount:      1200,
		Kind:        model.KindExpense,
		Date:        model.NewDate(2024, time.January, 31),
	}

	instances, err := ExpandRecurring(template, 4, sequentialIDs())
	require.NoError(t, err)

	assert.Equal(t, model.NewDate(2024, time.January, 31), instances[0].Date)
	assert.Equal(t, model.NewDate(2024, time.February, 29), instances[1].Date)
	assert.Equal(t, model.NewDate(2024, time.March, 31), instances[2].Date)
	assert.Equal(t, model.NewDate(2024, time.April, 30), instances[3].Date)
}

func TestExpandRecurring_RejectsTooFewMonths(t *testing.T) {
	template := model.Transaction{ID: "T1", Description: "One-off"}

	for _, months := range []int{1, 0, -3} {
		_, err := ExpandRecurring(template, months, sequentialIDs())
		assert.ErrorIs(t, err, ErrInvalidRepeatCount, "months=%d", months)
	}
}
