package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/cli/export"
	"github.com/thenoetrevino/jot/internal/cli/remind"
	"github.com/thenoetrevino/jot/internal/cli/task"
	"github.com/thenoetrevino/jot/internal/launcher"
	"github.com/thenoetrevino/jot/internal/logging"
)

// logFile is closed when Execute returns
var logFile io.Closer

var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "jot - A terminal task list",
	Long: `jot keeps a short list of tasks with categories, due dates, priorities
and an optional photo each.

Run without arguments to open the interactive list. The subcommands give
scripts the same operations.`,
	Args:          cli.ExactArgs(0),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging to file before anything else
		closer, err := logging.Init()
		if err != nil {
			// the CLI still works without a log file
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
			slog.SetDefault(logging.Discard())
			return nil
		}
		logFile = closer
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(export.ExportCmd())
	rootCmd.AddCommand(remind.RemindCmd())
	rootCmd.SetFlagErrorFunc(cli.FlagErrorFunc)
}

// Execute runs the command line. The returned error carries the exit code,
// see cli.ExitCode.
func Execute() error {
	defer func() {
		if logFile != nil {
			_ = logFile.Close()
		}
	}()
	return rootCmd.Execute()
}
