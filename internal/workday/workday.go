// Package workday builds sequences of business days for rotation scheduling.
//
// Dates are calendar dates only: every value produced here is midnight UTC
// and no timezone conversion is ever applied.
//
// Key types and functions:
//   - [BuildWorkdays] produces the ordered day pool for a rotation run
//   - [NextWorkday] advances one business day, skipping the weekend
//   - [Pool] is a cursor over an immutable day sequence with pop-front semantics
//   - [ParseDate] validates the YYYY-MM-DD start date supplied by the user
package workday

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the accepted input format for start dates.
const DateLayout = "2006-01-02"

// DaysPerAssignment is the number of workdays each participant receives per rotation.
const DaysPerAssignment = 2

// ErrInvalidDate is returned by [ParseDate] when the input is not a valid
// YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("incorrect firstdate format, should be YYYY-MM-DD")

// ParseDate parses a YYYY-MM-DD string into a UTC midnight date.
//
// Both layout errors ("01/06/2020") and out-of-range values ("2020-13-01")
// return an error wrapping [ErrInvalidDate].
func ParseDate(s string) (time.Time, error) {
	day, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return day, nil
}

// IsBusinessDay reports whether day falls on Monday through Friday.
func IsBusinessDay(day time.Time) bool {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// NextWorkday returns the business day following day.
//
// A Friday advances three days to the following Monday; any other day
// advances by one. Callers starting on a weekend get the weekend day's
// successor, which is only guaranteed to be a business day from Sunday on.
func NextWorkday(day time.Time) time.Time {
	if day.Weekday() == time.Friday {
		return day.AddDate(0, 0, 3)
	}
	return day.AddDate(0, 0, 1)
}

// PoolSize returns the number of days needed to give every participant
// [DaysPerAssignment] days in each rotation.
func PoolSize(participants, rotations int) int {
	if participants <= 0 || rotations <= 0 {
		return 0
	}
	return DaysPerAssignment * participants * rotations
}

// BuildWorkdays returns the ordered day pool for a rotation run.
//
// The result holds exactly [PoolSize](participants, rotations) dates. The
// first element is always start, even when start is a weekend; each later
// element is [NextWorkday] of its predecessor. BuildWorkdays is a pure
// function of its inputs.
func BuildWorkdays(start time.Time, participants, rotations int) []time.Time {
	n := PoolSize(participants, rotations)
	days := make([]time.Time, 0, n)
	if n == 0 {
		return days
	}

	day := start
	days = append(days, day)
	for len(days) < n {
		day = NextWorkday(day)
		days = append(days, day)
	}
	return days
}
