// Package board publishes rotation cards to a GitHub classic project board.
//
// Each [rotation.Card] becomes one note card in the participant's column,
// created with POST /projects/columns/:column_id/cards. Responses are not
// validated: a non-success status is reported in [Result] rather than
// returned as an error, and nothing is retried.
package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rotationcards/internal/config"
	"rotationcards/internal/rotation"
)

// PreviewAccept is the media type that enables the projects API preview.
const PreviewAccept = "application/vnd.github.inertia-preview+json"

// LabelLayout formats a card day, e.g. "Mon, Jan 06".
const LabelLayout = "Mon, Jan 02"

// FormatLabel returns the short label for a card day.
func FormatLabel(day time.Time) string {
	return day.Format(LabelLayout)
}

// FormatNote builds the checklist body of a rotation card.
func FormatNote(card rotation.Card) string {
	return fmt.Sprintf("* [ ] %s\n* [ ] %s", FormatLabel(card.DayOne), FormatLabel(card.DayTwo))
}

// Result is the outcome of publishing one card.
type Result struct {
	ColumnID   string
	StatusCode int
	Status     string
}

// OK reports whether the board accepted the card.
func (r Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Column is a project board column.
type Column struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type noteRequest struct {
	Note string `json:"note"`
}

// Client talks to the project board API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userAgent  string
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the configured API root.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a [Client] from board configuration.
func NewClient(cfg config.BoardConfig, opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c
}

// CreateCard posts card as a note to its participant's column.
//
// The returned error covers only failures to send the request; any HTTP
// response, including 4xx and 5xx, yields a nil error and its status in
// the [Result].
func (c *Client) CreateCard(ctx context.Context, card rotation.Card) (Result, error) {
	body, err := json.Marshal(noteRequest{Note: FormatNote(card)})
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode card: %w", err)
	}

	uri := fmt.Sprintf("%s/projects/columns/%s/cards", c.baseURL, card.ColumnID)
	resp, err := c.do(ctx, http.MethodPost, uri, bytes.NewReader(body))
	if err != nil {
		return Result{ColumnID: card.ColumnID}, fmt.Errorf("failed to create card in column %s: %w", card.ColumnID, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return Result{
		ColumnID:   card.ColumnID,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}, nil
}

// Columns lists the columns of a project, so their ids can be copied into a
// roster file.
func (c *Client) Columns(ctx context.Context, projectID string) ([]Column, error) {
	uri := fmt.Sprintf("%s/projects/%s/columns", c.baseURL, projectID)
	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to list columns: %s", resp.Status)
	}

	var columns []Column
	if err := json.NewDecoder(resp.Body).Decode(&columns); err != nil {
		return nil, fmt.Errorf("failed to decode columns: %w", err)
	}
	return columns, nil
}

func (c *Client) do(ctx context.Context, method, uri string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", PreviewAccept)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.httpClient.Do(req)
}
