// Package rotation assigns rotation workdays to roster participants.
//
// The assigner walks the roster in order, repeatedly, consuming two days per
// participant from a [workday.Pool]. When the front day is a participant's
// forbidden weekday it is discarded (never reassigned) and the assignment
// starts from the next day.
//
// Assignment stops cleanly as soon as fewer than two days remain for the
// current participant, so a run that discarded days ends with a short final
// cycle rather than a fault.
package rotation

import (
	"time"

	"rotationcards/internal/roster"
	"rotationcards/internal/workday"
)

// Card is one participant's two-day assignment.
type Card struct {
	ParticipantName string
	ColumnID        string
	DayOne          time.Time
	DayTwo          time.Time
}

// Schedule is the full result of planning a rotation run.
type Schedule struct {
	// Start is the first day of the pool.
	Start time.Time

	// Rotations is the requested number of rotations.
	Rotations int

	// Cards are the assignments in the order they were produced.
	Cards []Card

	// Discarded holds days skipped because they fell on a participant's
	// forbidden weekday.
	Discarded []time.Time

	// Leftover holds days remaining in the pool when assignment stopped.
	Leftover []time.Time
}

// CreateRotationDays returns the rotation cards for r starting at start.
func CreateRotationDays(start time.Time, r roster.Roster, rotations int) []Card {
	return Plan(start, r, rotations).Cards
}

// Plan builds the day pool and assigns it to r, returning every card along
// with the days that went unassigned.
func Plan(start time.Time, r roster.Roster, rotations int) Schedule {
	pool := workday.NewPool(workday.BuildWorkdays(start, r.Len(), rotations))
	participants := r.Participants()

	s := Schedule{
		Start:     start,
		Rotations: rotations,
		Cards:     make([]Card, 0, len(participants)*max(rotations, 0)),
	}

	for pool.Len() >= workday.DaysPerAssignment {
		for _, p := range participants {
			card, discarded, ok := assign(pool, p)
			s.Discarded = append(s.Discarded, discarded...)
			if !ok {
				s.Leftover = pool.Remaining()
				return s
			}
			s.Cards = append(s.Cards, card)
		}
	}

	s.Leftover = pool.Remaining()
	return s
}

// assign takes the next two days for p, skipping any forbidden front day.
// ok is false when the pool cannot supply two days.
func assign(pool *workday.Pool, p roster.Participant) (card Card, discarded []time.Time, ok bool) {
	for {
		front, more := pool.Peek()
		if !more || !p.Avoids(front) {
			break
		}
		pool.Discard()
		discarded = append(discarded, front)
	}

	if pool.Len() < workday.DaysPerAssignment {
		return Card{}, discarded, false
	}

	dayOne, _ := pool.Pop()
	dayTwo, _ := pool.Pop()
	return Card{
		ParticipantName: p.Name,
		ColumnID:        p.ColumnID,
		DayOne:          dayOne,
		DayTwo:          dayTwo,
	}, discarded, true
}
