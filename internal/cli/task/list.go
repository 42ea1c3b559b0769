package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/cli/styles"
	"github.com/thenoetrevino/jot/internal/view"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List tasks, optionally filtered by category and sorted by due date.",
		Args:  cli.ExactArgs(0),
		RunE:  runList,
	}

	cli.AddViewFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	viewCfg, err := cli.ParseViewFlags(cmd)
	if err != nil {
		if fmtErr := formatter.Error("INVALID_FLAG", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitUsage, err)
	}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if loadErr := cliInstance.App.LoadErr; loadErr != nil {
		return formatter.Fail(loadErr)
	}

	rows := view.Project(cliInstance.App.Tasks.Tasks(), viewCfg)

	// Output in appropriate format
	if formatter.Quiet {
		for _, r := range rows {
			fmt.Println(r.Task.ID)
		}
		return nil
	}

	if formatter.JSON {
		tasks := make([]cli.TaskView, len(rows))
		for i, r := range rows {
			tasks[i] = cli.NewTaskView(r.Task)
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"filter":  viewCfg.Category,
			"sort":    viewCfg.Sort.String(),
			"tasks":   tasks,
		})
	}

	// Human-readable output
	if len(rows) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("%d tasks", len(rows))) +
		styles.SubtitleStyle.Render(fmt.Sprintf("  filter %s, sort %s", viewCfg.Category, viewCfg.Sort)))
	fmt.Println()
	for _, r := range rows {
		fmt.Println("  " + styles.RenderTaskLine(cli.ShortID(r.Task.ID), r.Task))
	}
	return nil
}
