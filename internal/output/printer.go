// Package output renders rotationcards progress and results to the terminal.
//
// All user-facing output goes through a [Printer], which writes to an
// io.Writer so tests can capture it with [NewPrinterWithWriter]. Styling is
// done with lipgloss; color is dropped automatically when the writer is not
// a terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"rotationcards/internal/board"
	"rotationcards/internal/publish"
	"rotationcards/internal/rotation"
)

// DefaultDateLayout is used when the printer is given an empty layout.
const DefaultDateLayout = "Mon, Jan 02"

// Printer writes styled output.
type Printer struct {
	out        io.Writer
	dateLayout string

	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	border  lipgloss.Style
}

// NewPrinter creates a [Printer] writing to stdout.
func NewPrinter() *Printer {
	return NewPrinterWithWriter(os.Stdout)
}

// NewPrinterWithWriter creates a [Printer] writing to w.
func NewPrinterWithWriter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		out:        w,
		dateLayout: DefaultDateLayout,
		title:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		muted:      r.NewStyle().Foreground(lipgloss.Color("8")),
		success:    r.NewStyle().Foreground(lipgloss.Color("10")),
		failure:    r.NewStyle().Foreground(lipgloss.Color("9")),
		border:     r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// SetDateLayout sets the time layout used for days in the schedule table.
func (p *Printer) SetDateLayout(layout string) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	p.dateLayout = layout
}

func (p *Printer) day(t time.Time) string {
	return t.Format(p.dateLayout)
}

// Start announces a run.
func (p *Printer) Start(firstDate time.Time, rotations, participants int) {
	fmt.Fprintln(p.out, p.title.Render(fmt.Sprintf("OK, making cards starting with %s", firstDate.Format("2006-01-02"))))
	fmt.Fprintln(p.out, p.muted.Render(fmt.Sprintf("%d participants × %d rotations", participants, rotations)))
}

// Schedule prints the planned cards as a table, followed by any days that
// were not assigned.
func (p *Printer) Schedule(s rotation.Schedule) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.border).
		Headers("#", "PARTICIPANT", "COLUMN", "DAY ONE", "DAY TWO")
	for i, c := range s.Cards {
		t.Row(strconv.Itoa(i+1), c.ParticipantName, c.ColumnID, p.day(c.DayOne), p.day(c.DayTwo))
	}
	fmt.Fprintln(p.out, t.Render())

	if len(s.Discarded) > 0 {
		fmt.Fprintln(p.out, p.muted.Render("Skipped (forbidden weekday): "+p.days(s.Discarded)))
	}
	if len(s.Leftover) > 0 {
		fmt.Fprintln(p.out, p.muted.Render("Unassigned (pool exhausted): "+p.days(s.Leftover)))
	}
}

func (p *Printer) days(days []time.Time) string {
	var s string
	for i, d := range days {
		if i > 0 {
			s += ", "
		}
		s += p.day(d)
	}
	return s
}

// CardProgress prints the card about to be sent.
func (p *Printer) CardProgress(index, total int, card rotation.Card) {
	fmt.Fprintf(p.out, "[%d/%d] %s (column %s)\n", index, total, card.ParticipantName, card.ColumnID)
}

// CardResult echoes the status code returned for a card, or the transport
// error if the request never completed.
func (p *Printer) CardResult(card rotation.Card, result board.Result, err error) {
	switch {
	case err != nil:
		fmt.Fprintln(p.out, p.failure.Render("✗ "+err.Error()))
	case result.OK():
		fmt.Fprintln(p.out, p.success.Render(strconv.Itoa(result.StatusCode)))
	default:
		fmt.Fprintln(p.out, p.failure.Render(strconv.Itoa(result.StatusCode)))
	}
}

// Summary prints the tally of a publishing run.
func (p *Printer) Summary(s publish.Summary) {
	line := fmt.Sprintf("Created: %d | Rejected: %d | Errored: %d", s.Created, s.Rejected, s.Errored)
	if s.Cancelled > 0 {
		line += fmt.Sprintf(" | Cancelled: %d", s.Cancelled)
	}
	if s.Created == s.Total {
		fmt.Fprintln(p.out, p.success.Render("✓ "+line))
		return
	}
	fmt.Fprintln(p.out, p.failure.Render("✗ "+line))
}

// Columns prints project columns as a table.
func (p *Printer) Columns(columns []board.Column) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.border).
		Headers("ID", "NAME")
	for _, c := range columns {
		t.Row(strconv.FormatInt(c.ID, 10), c.Name)
	}
	fmt.Fprintln(p.out, t.Render())
}

// Error prints an error line.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.out, p.failure.Render("Error: "+err.Error()))
}
