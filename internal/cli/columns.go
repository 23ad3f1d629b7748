package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newColumnsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the columns of the configured project",
		Long: `List the column ids and names of the configured project, for use as
column_id values in a roster file. The project is read from PROJECT_ID
or ROTATIONCARDS_PROJECT_ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := app.Config.Board.ProjectID
			if projectID == "" {
				err := errors.New("no project id configured")
				app.Printer.Error(err)
				return exitWith(1, err)
			}

			columns, err := app.Board.Columns(cmd.Context(), projectID)
			if err != nil {
				app.Printer.Error(err)
				return exitWith(1, err)
			}
			app.Printer.Columns(columns)
			return nil
		},
	}
}
