package workday

import "time"

// Pool is a consumable view over an ordered sequence of days.
//
// The underlying sequence is never mutated; consumption only advances a
// cursor. Len()+Consumed() always equals the size of the original sequence,
// and a day that has been popped or discarded is never returned again.
type Pool struct {
	days   []time.Time
	cursor int
}

// NewPool creates a [Pool] over a copy of days.
func NewPool(days []time.Time) *Pool {
	cp := make([]time.Time, len(days))
	copy(cp, days)
	return &Pool{days: cp}
}

// Len returns the number of days not yet consumed.
func (p *Pool) Len() int {
	return len(p.days) - p.cursor
}

// Consumed returns the number of days popped or discarded so far.
func (p *Pool) Consumed() int {
	return p.cursor
}

// Peek returns the front day without consuming it.
// ok is false when the pool is empty.
func (p *Pool) Peek() (day time.Time, ok bool) {
	if p.Len() == 0 {
		return time.Time{}, false
	}
	return p.days[p.cursor], true
}

// Pop returns the front day and removes it from the pool.
// ok is false when the pool is empty.
func (p *Pool) Pop() (day time.Time, ok bool) {
	day, ok = p.Peek()
	if ok {
		p.cursor++
	}
	return day, ok
}

// Discard drops the front day and reports whether one was dropped.
func (p *Pool) Discard() bool {
	_, ok := p.Pop()
	return ok
}

// Remaining returns a copy of the days not yet consumed.
func (p *Pool) Remaining() []time.Time {
	rest := make([]time.Time, p.Len())
	copy(rest, p.days[p.cursor:])
	return rest
}
