// Package publish sends planned rotation cards to the board, one at a time.
//
// The [Executor] dispatches cards sequentially in the order they were
// planned. A rejected card (non-success status) is counted and publishing
// continues; a transport failure is recorded and publishing also continues.
// Nothing is retried and already-created cards are never rolled back.
//
// Key concepts:
//   - [CardCreator] is the board collaborator, satisfied by [board.Client]
//   - Progress and per-card results can be observed via callbacks
//   - [Summary] tallies the outcome of a run
package publish

import (
	"context"
	"errors"

	"rotationcards/internal/board"
	"rotationcards/internal/rotation"
)

// CardCreator is the interface for publishing a single card.
//
// The error return is reserved for failures to reach the board; a response
// of any status is reported through [board.Result].
type CardCreator interface {
	CreateCard(ctx context.Context, card rotation.Card) (board.Result, error)
}

// ProgressCallback is invoked before each card is sent.
// index is 1-based.
type ProgressCallback func(index, total int, card rotation.Card)

// ResultCallback is invoked after each card is sent, with the board result
// or the transport error.
type ResultCallback func(card rotation.Card, result board.Result, err error)

// Summary tallies a publishing run.
type Summary struct {
	Total     int
	Created   int
	Rejected  int
	Errored   int
	Cancelled int
}

// Executor publishes cards through a [CardCreator].
type Executor struct {
	creator          CardCreator
	progressCallback ProgressCallback
	resultCallback   ResultCallback
}

// NewExecutor creates an Executor that publishes through creator.
func NewExecutor(creator CardCreator) *Executor {
	return &Executor{creator: creator}
}

// SetProgressCallback configures an optional callback run before each card.
func (e *Executor) SetProgressCallback(cb ProgressCallback) {
	e.progressCallback = cb
}

// SetResultCallback configures an optional callback run after each card.
func (e *Executor) SetResultCallback(cb ResultCallback) {
	e.resultCallback = cb
}

// Execute publishes cards in order.
//
// Rejected cards do not produce an error. Transport errors are joined and
// returned after every card has been attempted. If ctx is cancelled, no
// further cards are sent and ctx.Err() is included in the returned error.
func (e *Executor) Execute(ctx context.Context, cards []rotation.Card) (Summary, error) {
	summary := Summary{Total: len(cards)}
	var errs []error

	for i, card := range cards {
		if err := ctx.Err(); err != nil {
			summary.Cancelled = len(cards) - i
			errs = append(errs, err)
			break
		}

		if e.progressCallback != nil {
			e.progressCallback(i+1, len(cards), card)
		}

		result, err := e.creator.CreateCard(ctx, card)
		switch {
		case err != nil:
			summary.Errored++
			errs = append(errs, err)
		case result.OK():
			summary.Created++
		default:
			summary.Rejected++
		}

		if e.resultCallback != nil {
			e.resultCallback(card, result, err)
		}
	}

	return summary, errors.Join(errs...)
}
