// Package cli implements the rotationcards command-line interface.
//
// Commands are built with Cobra around an [App] dependency container so
// tests can substitute the board client, roster and printer. Commands signal
// failure by returning an [ExitError]; only [Execute] calls os.Exit.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rotationcards/internal/board"
	"rotationcards/internal/config"
	"rotationcards/internal/output"
	"rotationcards/internal/publish"
	"rotationcards/internal/roster"
)

// BoardClient is the board collaborator used by the commands.
//
// [board.Client] is the production implementation.
type BoardClient interface {
	publish.CardCreator
	Columns(ctx context.Context, projectID string) ([]board.Column, error)
}

// App holds the dependencies shared by all commands.
type App struct {
	Config  *config.Config
	Roster  roster.Roster
	Board   BoardClient
	Printer *output.Printer
}

// NewApp wires production dependencies from cfg.
//
// The roster comes from cfg.RosterPath when set, otherwise [roster.Default].
func NewApp(cfg *config.Config) (*App, error) {
	r := roster.Default()
	if cfg.RosterPath != "" {
		loaded, err := roster.Load(cfg.RosterPath)
		if err != nil {
			return nil, err
		}
		r = loaded
	}

	printer := output.NewPrinter()
	printer.SetDateLayout(cfg.Output.DateLayout)

	return &App{
		Config:  cfg,
		Roster:  r,
		Board:   board.NewClient(cfg.Board),
		Printer: printer,
	}, nil
}

// NewRootCommand builds the command tree for app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rotationcards",
		Short: "Schedule a duty rotation and publish it as project board cards",
		Long: `rotationcards assigns two business days per participant per rotation,
skipping weekends and each participant's forbidden weekday, and creates
one card per assignment in the participant's project board column.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newMakeCardsCommand(app),
		newPlanCommand(app),
		newColumnsCommand(app),
	)

	return rootCmd
}

// ExecuteResult is the outcome of running the command tree.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// RunWithConfig runs the command tree against cfg using os.Args.
func RunWithConfig(cfg *config.Config) ExecuteResult {
	app, err := NewApp(cfg)
	if err != nil {
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return run(NewRootCommand(app))
}

func run(cmd *cobra.Command) ExecuteResult {
	if err := cmd.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{}
}

// Execute loads configuration, runs the CLI and exits the process with the
// resulting code.
func Execute() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := RunWithConfig(cfg)
	if result.Err != nil {
		if _, ok := IsExitError(result.Err); !ok {
			fmt.Fprintf(os.Stderr, "Error: %v\n", result.Err)
		}
	}
	os.Exit(result.ExitCode)
}
