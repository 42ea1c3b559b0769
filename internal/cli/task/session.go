package task

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/models"
)

// openTask opens the CLI and resolves the task named by arg. The returned
// close func must be called when err is nil.
func openTask(cmd *cobra.Command, formatter *cli.OutputFormatter, arg string) (*cli.CLI, models.Task, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil, models.Task{}, nil, err
	}
	closeCLI := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}

	if loadErr := cliInstance.App.LoadErr; loadErr != nil {
		closeCLI()
		return nil, models.Task{}, nil, formatter.Fail(loadErr)
	}

	id, err := cli.ResolveTaskID(cliInstance.App.Tasks, arg)
	if err != nil {
		closeCLI()
		return nil, models.Task{}, nil, formatter.Fail(err)
	}
	task, _ := cliInstance.App.Tasks.Get(id)
	return cliInstance, task, closeCLI, nil
}
