package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotationcards/internal/roster"
	"rotationcards/internal/workday"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func jan(d int) time.Time {
	return date(2020, time.January, d)
}

// assertNoSharedDays checks that no date is assigned to more than one card.
func assertNoSharedDays(t *testing.T, cards []Card) {
	t.Helper()
	seen := make(map[time.Time]int)
	for i, c := range cards {
		for _, d := range []time.Time{c.DayOne, c.DayTwo} {
			if prev, ok := seen[d]; ok {
				t.Errorf("date %s assigned to card %d and card %d", d.Format(workday.DateLayout), prev, i)
			}
			seen[d] = i
		}
	}
}

func TestCreateRotationDays_SingleParticipant(t *testing.T) {
	r := roster.New(roster.Participant{Name: "A", ColumnID: "1"})

	cards := CreateRotationDays(jan(6), r, 1)

	require.Len(t, cards, 1)
	assert.Equal(t, Card{ParticipantName: "A", ColumnID: "1", DayOne: jan(6), DayTwo: jan(7)}, cards[0])
}

func TestCreateRotationDays_DefaultRosterFromMonday(t *testing.T) {
	cards := CreateRotationDays(jan(6), roster.Default(), 2)

	expected := []struct {
		name   string
		dayOne time.Time
		dayTwo time.Time
	}{
		{"karl", jan(6), jan(7)},
		{"dennis", jan(8), jan(9)},
		{"ksenia", jan(10), jan(13)},
		{"thomas", jan(14), jan(15)},
		{"karl", jan(16), jan(17)},
		{"dennis", jan(20), jan(21)},
		{"ksenia", jan(22), jan(23)},
		{"thomas", jan(24), jan(27)},
	}

	require.Len(t, cards, len(expected))
	for i, e := range expected {
		assert.Equal(t, e.name, cards[i].ParticipantName, "card %d", i)
		assert.Equal(t, e.dayOne, cards[i].DayOne, "card %d day one", i)
		assert.Equal(t, e.dayTwo, cards[i].DayTwo, "card %d day two", i)
	}
	assertNoSharedDays(t, cards)
}

func TestCreateRotationDays_ForbiddenDayIsDiscarded(t *testing.T) {
	r := roster.New(roster.Participant{Name: "A", ColumnID: "1", Forbidden: roster.Weekday(time.Tuesday)})

	s := Plan(jan(7), r, 2)

	require.NotEmpty(t, s.Cards)
	assert.Equal(t, jan(8), s.Cards[0].DayOne)
	assert.Equal(t, jan(9), s.Cards[0].DayTwo)
	for _, c := range s.Cards {
		assert.NotEqual(t, jan(7), c.DayOne)
		assert.NotEqual(t, jan(7), c.DayTwo)
	}
	assert.Equal(t, []time.Time{jan(7)}, s.Discarded)
}

func TestPlan_StopsWhenFewerThanTwoDaysRemain(t *testing.T) {
	// Starting on a Tuesday makes karl discard the first day, so the final
	// participant of the last cycle is one day short.
	s := Plan(jan(7), roster.Default(), 2)

	require.Len(t, s.Cards, 7)
	assert.Equal(t, "ksenia", s.Cards[6].ParticipantName)
	assert.Equal(t, []time.Time{jan(7)}, s.Discarded)
	assert.Equal(t, []time.Time{jan(28)}, s.Leftover)

	pool := workday.PoolSize(roster.Default().Len(), 2)
	assert.Equal(t, pool, 2*len(s.Cards)+len(s.Discarded)+len(s.Leftover))
	assertNoSharedDays(t, s.Cards)
}

func TestPlan_Properties(t *testing.T) {
	rosters := map[string]roster.Roster{
		"default": roster.Default(),
		"all forbidden": roster.New(
			roster.Participant{Name: "mon", ColumnID: "1", Forbidden: roster.Weekday(time.Monday)},
			roster.Participant{Name: "wed", ColumnID: "2", Forbidden: roster.Weekday(time.Wednesday)},
			roster.Participant{Name: "fri", ColumnID: "3", Forbidden: roster.Weekday(time.Friday)},
		),
		"single": roster.New(roster.Participant{Name: "solo", ColumnID: "1", Forbidden: roster.Weekday(time.Thursday)}),
	}

	for name, r := range rosters {
		t.Run(name, func(t *testing.T) {
			for offset := 0; offset < 7; offset++ {
				start := jan(6).AddDate(0, 0, offset)
				for rotations := 1; rotations <= 4; rotations++ {
					s := Plan(start, r, rotations)

					assert.LessOrEqual(t, len(s.Cards), r.Len()*rotations)
					assertNoSharedDays(t, s.Cards)
					assert.Equal(t, workday.PoolSize(r.Len(), rotations),
						2*len(s.Cards)+len(s.Discarded)+len(s.Leftover))

					byColumn := make(map[string]roster.Participant)
					for _, p := range r.Participants() {
						byColumn[p.ColumnID] = p
					}
					for _, c := range s.Cards {
						assert.True(t, c.DayOne.Before(c.DayTwo))
						assert.False(t, byColumn[c.ColumnID].Avoids(c.DayOne),
							"%s starts on forbidden %s", c.ParticipantName, c.DayOne.Weekday())
					}
				}
			}
		})
	}
}

func TestPlan_RosterOrderEachCycle(t *testing.T) {
	r := roster.New(
		roster.Participant{Name: "x", ColumnID: "1"},
		roster.Participant{Name: "y", ColumnID: "2"},
	)

	cards := CreateRotationDays(jan(6), r, 3)

	require.Len(t, cards, 6)
	for i, c := range cards {
		want := "x"
		if i%2 == 1 {
			want = "y"
		}
		assert.Equal(t, want, c.ParticipantName)
	}
}

func TestPlan_EmptyInputs(t *testing.T) {
	assert.Empty(t, CreateRotationDays(jan(6), roster.New(), 2))
	assert.Empty(t, CreateRotationDays(jan(6), roster.Default(), 0))
}
