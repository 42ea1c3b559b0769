package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/cli/styles"
	"github.com/thenoetrevino/jot/internal/view"
)

// PriorityCmd returns the task priority subcommand
func PriorityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority <id>",
		Short: "Cycle a task's priority",
		Long:  "Advance the priority one step: Normal -> High -> Low -> Normal.",
		Args:  cli.ExactArgs(1),
		RunE:  runPriority,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runPriority(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, task, closeCLI, err := openTask(cmd, formatter, args[0])
	if err != nil {
		return err
	}
	defer closeCLI()

	updated, err := cliInstance.App.Tasks.TogglePriority(ctx, task.ID)
	if err != nil {
		return formatter.Fail(err)
	}

	out := cli.NewTaskView(*updated)
	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}

	fmt.Printf("%s Task %s priority: %s\n",
		styles.SuccessStyle.Render("✓"),
		cli.ShortID(updated.ID),
		styles.BoldColoredText(string(updated.Priority), view.AccentColor(*updated)))
	return nil
}
