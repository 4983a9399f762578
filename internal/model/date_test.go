package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_AddMonths(t *testing.T) {
	tests := []struct {
		name string
		date Date
		n    int
		want Date
	}{
		{
			name: "plain increment",
			date: NewDate(2024, time.January, 15),
			n:    1,
			want: NewDate(2024, time.February, 15),
		},
		{
			name: "clamps Jan 31 to Feb 29 in a leap year",
			date: NewDate(2024, time.January, 31),
			n:    1,
			want: NewDate(2024, time.February, 29),
		},
		{
			name: "clamps Jan 31 to Feb 28 in a common year",
			date: NewDate(2023, time.January, 31),
			n:    1,
			want: NewDate(2023, time.February, 28),
		},
		{
			name: "crosses a year boundary",
			date: NewDate(2023, time.November, 10),
			n:    3,
			want: NewDate(2024, time.February, 10),
		},
		{
			name: "negative months",
			date: NewDate(2024, time.March, 31),
			n:    -1,
			want: NewDate(2024, time.February, 29),
		},
		{
			name: "zero months",
			date: NewDate(2024, time.March, 10),
			n:    0,
			want: NewDate(2024, time.March, 10),
		},
		{
			name: "many months does not drift",
			date: NewDate(2023, time.January, 31),
			n:    24,
			want: NewDate(2025, time.January, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.date.AddMonths(tt.n)
			if got != tt.want {
				t.Errorf("AddMonths(%d) = %s, want %s", tt.n, got, tt.want)
			}
		})
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, time.March, 5)
	b := NewDate(2024, time.March, 6)

	if !a.Before(b) {
		t.Errorf("expected %s before %s", a, b)
	}
	if b.Before(a) {
		t.Errorf("did not expect %s before %s", b, a)
	}
	if a.Compare(a) != 0 {
		t.Error("expected a date to compare equal to itself")
	}

	// Key comparison must agree with Compare for overdue logic.
	if (a.Key() < b.Key()) != a.Before(b) {
		t.Error("Key ordering disagrees with Compare")
	}
}

func TestDate_SameMonth(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want bool
	}{
		{"same month and year", NewDate(2024, time.March, 1), NewDate(2024, time.March, 31), true},
		{"same month different year", NewDate(2023, time.March, 10), NewDate(2024, time.March, 10), false},
		{"different month", NewDate(2024, time.March, 10), NewDate(2024, time.April, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.SameMonth(tt.b); got != tt.want {
				t.Errorf("SameMonth(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	in := NewDate(2024, time.March, 5)

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-03-05"` {
		t.Errorf("marshal = %s, want %q", data, "2024-03-05")
	}

	var out Date
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %s, want %s", out, in)
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &out); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDate_WithDay(t *testing.T) {
	d := NewDate(2024, time.February, 10)
	if got := d.WithDay(31); got != NewDate(2024, time.February, 29) {
		t.Errorf("WithDay(31) = %s, want 2024-02-29", got)
	}
	if got := d.WithDay(5); got != NewDate(2024, time.February, 5) {
		t.Errorf("WithDay(5) = %s, want 2024-02-05", got)
	}
}
