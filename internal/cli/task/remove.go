package task

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/cli/styles"
)

// RemoveCmd returns the task rm subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove a task",
		Long:    "Remove a task by ID (requires confirmation unless --force or --quiet).",
		Args:    cli.ExactArgs(1),
		RunE:    runRemove,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, task, closeCLI, err := openTask(cmd, formatter, args[0])
	if err != nil {
		return err
	}
	defer closeCLI()

	// Ask for confirmation unless force, quiet or json mode
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Printf("Remove task %s: '%s'? (y/N): ", cli.ShortID(task.ID), styles.CleanText(task.Text))
		var response string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	removed, err := cliInstance.App.Tasks.Delete(ctx, task.ID)
	if err != nil {
		return formatter.Fail(err)
	}

	// Output success
	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"task_id": removed.ID,
		})
	}

	fmt.Printf("%s Task %s removed\n", styles.SuccessStyle.Render("✓"), cli.ShortID(removed.ID))
	return nil
}
