package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for calendar dates: ISO yyyy-mm-dd,
// no time or timezone component.
const dateLayout = "2006-01-02"

// Date is a calendar date. The embedded time.Time is always UTC midnight,
// so equality and ordering behave like plain date comparison.
type Date struct {
	time.Time
}

// NewDate builds a Date from a year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses an ISO yyyy-mm-dd string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String renders the date as yyyy-mm-dd.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// DaysSince returns the whole number of days from other to d.
// Negative when other is in the future relative to d.
func (d Date) DaysSince(other Date) int {
	return int(d.Sub(other.Time) / (24 * time.Hour))
}

// MonthStart returns the first day of d's month.
func (d Date) MonthStart() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// InRange reports whether d falls within [from, to] inclusive.
// A zero bound is open-ended.
func (d Date) InRange(from, to Date) bool {
	if !from.IsZero() && d.Before(from.Time) {
		return false
	}
	if !to.IsZero() && d.After(to.Time) {
		return false
	}
	return true
}

// MarshalJSON renders the date as a yyyy-mm-dd JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a yyyy-mm-dd JSON string. An empty string
// unmarshals to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
