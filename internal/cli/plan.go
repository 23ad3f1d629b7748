package cli

import (
	"github.com/spf13/cobra"
)

func newPlanCommand(app *App) *cobra.Command {
	opts := &scheduleOptions{}

	cmd := &cobra.Command{
		Use:   "plan --firstdate YYYY-MM-DD",
		Short: "Print the rotation schedule without creating cards",
		Long: `Print the rotation schedule without contacting the board.

Equivalent to make-cards --dry-run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.plan(app); err != nil {
				app.Printer.Error(err)
				return exitWith(1, err)
			}
			return nil
		},
	}

	opts.addFlags(cmd, app)

	return cmd
}
