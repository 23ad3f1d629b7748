package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rotationcards/internal/publish"
	"rotationcards/internal/roster"
	"rotationcards/internal/rotation"
	"rotationcards/internal/workday"
)

// scheduleOptions are the flags shared by make-cards and plan.
type scheduleOptions struct {
	firstDate  string
	rotations  int
	rosterPath string
}

func (o *scheduleOptions) addFlags(cmd *cobra.Command, app *App) {
	cmd.Flags().StringVar(&o.firstDate, "firstdate", "", "The first weekday to start with. Format: YYYY-MM-DD")
	cmd.Flags().IntVar(&o.rotations, "rotations", app.Config.Rotations, "Number of times each participant is scheduled")
	cmd.Flags().StringVar(&o.rosterPath, "roster", "", "Roster YAML file (overrides the configured roster)")
	_ = cmd.MarkFlagRequired("firstdate")
}

// plan validates the flags and computes the schedule. Nothing is planned
// when the start date is malformed.
func (o *scheduleOptions) plan(app *App) (rotation.Schedule, error) {
	start, err := workday.ParseDate(o.firstDate)
	if err != nil {
		return rotation.Schedule{}, err
	}
	if o.rotations < 1 {
		return rotation.Schedule{}, fmt.Errorf("rotations must be at least 1, got %d", o.rotations)
	}

	r := app.Roster
	if o.rosterPath != "" {
		r, err = roster.Load(o.rosterPath)
		if err != nil {
			return rotation.Schedule{}, err
		}
	}
	if err := r.Validate(); err != nil {
		return rotation.Schedule{}, err
	}

	app.Printer.Start(start, o.rotations, r.Len())
	s := rotation.Plan(start, r, o.rotations)
	app.Printer.Schedule(s)
	return s, nil
}

func newMakeCardsCommand(app *App) *cobra.Command {
	opts := &scheduleOptions{}
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "make-cards --firstdate YYYY-MM-DD",
		Short: "Create rotation cards starting at a specific date",
		Long: `Create rotation cards starting at a specific date.

Each participant gets two business days per rotation. One card per
assignment is posted to the participant's board column and the status
code returned by the board is printed for every card. Rejected cards do
not stop the run.

Example:
  rotationcards make-cards --firstdate 2020-01-06`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.plan(app)
			if err != nil {
				app.Printer.Error(err)
				return exitWith(1, err)
			}
			if dryRun {
				return nil
			}

			executor := publish.NewExecutor(app.Board)
			executor.SetProgressCallback(app.Printer.CardProgress)
			executor.SetResultCallback(app.Printer.CardResult)

			summary, err := executor.Execute(cmd.Context(), s.Cards)
			app.Printer.Summary(summary)
			if err != nil {
				return exitWith(1, errors.New("some cards could not be sent"))
			}
			return nil
		},
	}

	opts.addFlags(cmd, app)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the schedule without creating cards")

	return cmd
}
