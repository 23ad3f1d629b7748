package publish

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotationcards/internal/board"
	"rotationcards/internal/rotation"
)

// mockCreator returns a scripted status or error per column id.
type mockCreator struct {
	statuses map[string]int
	errs     map[string]error
	calls    []string
}

func (m *mockCreator) CreateCard(ctx context.Context, card rotation.Card) (board.Result, error) {
	m.calls = append(m.calls, card.ColumnID)
	if err := m.errs[card.ColumnID]; err != nil {
		return board.Result{ColumnID: card.ColumnID}, err
	}
	code, ok := m.statuses[card.ColumnID]
	if !ok {
		code = http.StatusCreated
	}
	return board.Result{ColumnID: card.ColumnID, StatusCode: code}, nil
}

func cards(columns ...string) []rotation.Card {
	day := time.Date(2020, time.January, 6, 0, 0, 0, 0, time.UTC)
	out := make([]rotation.Card, 0, len(columns))
	for _, c := range columns {
		out = append(out, rotation.Card{ParticipantName: "p" + c, ColumnID: c, DayOne: day, DayTwo: day.AddDate(0, 0, 1)})
		day = day.AddDate(0, 0, 2)
	}
	return out
}

func TestExecutor_Execute(t *testing.T) {
	tests := []struct {
		name        string
		columns     []string
		statuses    map[string]int
		errs        map[string]error
		wantSummary Summary
		wantErr     bool
	}{
		{
			name:        "all created",
			columns:     []string{"1", "2", "3"},
			wantSummary: Summary{Total: 3, Created: 3},
		},
		{
			name:        "rejection does not stop publishing",
			columns:     []string{"1", "2", "3"},
			statuses:    map[string]int{"2": http.StatusUnauthorized},
			wantSummary: Summary{Total: 3, Created: 2, Rejected: 1},
		},
		{
			name:        "transport error is reported after all cards",
			columns:     []string{"1", "2", "3"},
			errs:        map[string]error{"1": errors.New("dial tcp: refused")},
			wantSummary: Summary{Total: 3, Created: 2, Errored: 1},
			wantErr:     true,
		},
		{
			name:        "no cards",
			wantSummary: Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &mockCreator{statuses: tt.statuses, errs: tt.errs}
			executor := NewExecutor(creator)

			summary, err := executor.Execute(context.Background(), cards(tt.columns...))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantSummary, summary)
			assert.Equal(t, tt.columns, creator.calls, "cards must be sent in order")
		})
	}
}

func TestExecutor_Callbacks(t *testing.T) {
	creator := &mockCreator{statuses: map[string]int{"b": http.StatusNotFound}}
	executor := NewExecutor(creator)

	var progress []int
	var codes []int
	executor.SetProgressCallback(func(index, total int, card rotation.Card) {
		assert.Equal(t, 2, total)
		progress = append(progress, index)
	})
	executor.SetResultCallback(func(card rotation.Card, result board.Result, err error) {
		require.NoError(t, err)
		codes = append(codes, result.StatusCode)
	})

	_, err := executor.Execute(context.Background(), cards("a", "b"))

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, progress)
	assert.Equal(t, []int{http.StatusCreated, http.StatusNotFound}, codes)
}

func TestExecutor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	creator := &mockCreator{}
	executor := NewExecutor(creator)
	executor.SetResultCallback(func(card rotation.Card, result board.Result, err error) {
		cancel()
	})

	summary, err := executor.Execute(ctx, cards("1", "2", "3"))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"1"}, creator.calls)
	assert.Equal(t, Summary{Total: 3, Created: 1, Cancelled: 2}, summary)
}
