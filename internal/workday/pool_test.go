package workday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_PopOrder(t *testing.T) {
	days := BuildWorkdays(date(2020, time.January, 6), 1, 2)
	pool := NewPool(days)

	for i, want := range days {
		assert.Equal(t, len(days)-i, pool.Len())
		got, ok := pool.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, i+1, pool.Consumed())
	}

	_, ok := pool.Pop()
	assert.False(t, ok)
	_, ok = pool.Peek()
	assert.False(t, ok)
	assert.False(t, pool.Discard())
}

func TestPool_PeekDoesNotConsume(t *testing.T) {
	pool := NewPool(BuildWorkdays(date(2020, time.January, 6), 1, 1))

	first, ok := pool.Peek()
	require.True(t, ok)
	again, _ := pool.Peek()
	assert.Equal(t, first, again)
	assert.Equal(t, 2, pool.Len())
	assert.Equal(t, 0, pool.Consumed())
}

func TestPool_DiscardKeepsInvariant(t *testing.T) {
	days := BuildWorkdays(date(2020, time.January, 6), 2, 1)
	pool := NewPool(days)

	require.True(t, pool.Discard())
	assert.Equal(t, len(days), pool.Len()+pool.Consumed())
	assert.Equal(t, days[1:], pool.Remaining())
}

func TestPool_CopiesInput(t *testing.T) {
	days := BuildWorkdays(date(2020, time.January, 6), 1, 1)
	pool := NewPool(days)
	days[0] = date(1999, time.December, 31)

	got, _ := pool.Peek()
	assert.Equal(t, date(2020, time.January, 6), got)
}
