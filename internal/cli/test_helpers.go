package cli

import (
	"context"
	"net/http"

	"rotationcards/internal/board"
	"rotationcards/internal/rotation"
)

// MockBoard is a mock [BoardClient] for testing.
type MockBoard struct {
	// Created records every card passed to CreateCard, in order.
	Created []rotation.Card
	// StatusByColumn overrides the default 201 status for a column.
	StatusByColumn map[string]int
	// ErrByColumn makes CreateCard fail with a transport error for a column.
	ErrByColumn map[string]error

	// ColumnList is returned by Columns.
	ColumnList []board.Column
	// ColumnsErr is returned by Columns when set.
	ColumnsErr error
	// ProjectIDs records the project ids passed to Columns.
	ProjectIDs []string
}

func (m *MockBoard) CreateCard(ctx context.Context, card rotation.Card) (board.Result, error) {
	m.Created = append(m.Created, card)
	if err := m.ErrByColumn[card.ColumnID]; err != nil {
		return board.Result{ColumnID: card.ColumnID}, err
	}
	code := http.StatusCreated
	if c, ok := m.StatusByColumn[card.ColumnID]; ok {
		code = c
	}
	return board.Result{ColumnID: card.ColumnID, StatusCode: code, Status: http.StatusText(code)}, nil
}

func (m *MockBoard) Columns(ctx context.Context, projectID string) ([]board.Column, error) {
	m.ProjectIDs = append(m.ProjectIDs, projectID)
	if m.ColumnsErr != nil {
		return nil, m.ColumnsErr
	}
	return m.ColumnList, nil
}
