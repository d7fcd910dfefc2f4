package model

import "time"

// DateLayout is the calendar date form used everywhere in the system.
// The form sorts lexicographically, so range checks are plain string
// comparisons.
const DateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form
type Date string

// DateOf truncates a timestamp to its calendar date
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Validate reports whether the date is a well-formed YYYY-MM-DD string
func (d Date) Validate() error {
	if d == "" {
		return ErrMissingDate
	}
	if _, err := time.Parse(DateLayout, string(d)); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// After reports whether d falls strictly after other
func (d Date) After(other Date) bool {
	return string(d) > string(other)
}
