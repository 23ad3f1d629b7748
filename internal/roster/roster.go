// Package roster defines the fixed, ordered set of rotation participants.
//
// A [Roster] is immutable once built. Its order is significant: the rotation
// assigner walks participants in exactly this order every cycle.
package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for roster construction.
var (
	// ErrEmptyRoster indicates a roster file with no participants.
	ErrEmptyRoster = errors.New("roster has no participants")

	// ErrDuplicateColumn indicates two participants share a board column id.
	ErrDuplicateColumn = errors.New("duplicate column id")

	// ErrUnknownWeekday indicates an avoid value that is not an English weekday.
	ErrUnknownWeekday = errors.New("unknown weekday")
)

// Participant is a single person in the rotation.
type Participant struct {
	// Name is the display name, used only for output.
	Name string

	// ColumnID is the board column the participant's cards are posted to.
	ColumnID string

	// Forbidden is the weekday the participant cannot start an assignment on.
	// Nil means no restriction.
	Forbidden *time.Weekday
}

// Avoids reports whether day falls on the participant's forbidden weekday.
func (p Participant) Avoids(day time.Time) bool {
	return p.Forbidden != nil && day.Weekday() == *p.Forbidden
}

// Roster is an ordered, immutable list of participants.
type Roster struct {
	participants []Participant
}

// New creates a [Roster] from participants, preserving order.
// The input slice is copied.
func New(participants ...Participant) Roster {
	cp := make([]Participant, len(participants))
	copy(cp, participants)
	return Roster{participants: cp}
}

// Len returns the number of participants.
func (r Roster) Len() int {
	return len(r.participants)
}

// Participants returns a copy of the participants in rotation order.
func (r Roster) Participants() []Participant {
	cp := make([]Participant, len(r.participants))
	copy(cp, r.participants)
	return cp
}

// Validate checks that the roster is non-empty and column ids are unique.
func (r Roster) Validate() error {
	if len(r.participants) == 0 {
		return ErrEmptyRoster
	}
	seen := make(map[string]string, len(r.participants))
	for _, p := range r.participants {
		if other, ok := seen[p.ColumnID]; ok {
			return fmt.Errorf("%w: %s used by %s and %s", ErrDuplicateColumn, p.ColumnID, other, p.Name)
		}
		seen[p.ColumnID] = p.Name
	}
	return nil
}

// Weekday returns a pointer to d, for use as [Participant.Forbidden].
func Weekday(d time.Weekday) *time.Weekday {
	return &d
}

// ParseWeekday converts an English weekday name or three-letter abbreviation
// (case-insensitive) into a forbidden weekday. An empty string yields nil.
func ParseWeekday(s string) (*time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return Weekday(d), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// Default returns the web-bugs rotation roster used when no roster file is
// configured.
func Default() Roster {
	return New(
		Participant{Name: "karl", ColumnID: "5301985", Forbidden: Weekday(time.Tuesday)},
		Participant{Name: "dennis", ColumnID: "5051659"},
		Participant{Name: "ksenia", ColumnID: "5051665"},
		Participant{Name: "thomas", ColumnID: "5051664"},
	)
}
