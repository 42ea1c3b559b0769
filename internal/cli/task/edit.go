package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/cli/styles"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit a task. Only the flags you pass change; everything else is kept.

Examples:
  jot task edit 1a2b3c4d --text="Buy oat milk"
  jot task edit 1a2b3c4d --due=""          # clear the due date
  jot task edit 1a2b3c4d --remove-photo
`,
		Args: cli.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("text", "", "New task text (use - for stdin)")
	cmd.Flags().String("category", "", "New category: Work, Personal, Other")
	cmd.Flags().String("due", "", "New due date yyyy-mm-dd, empty to clear")
	cmd.Flags().String("category-color", "", "New category color")
	cmd.Flags().String("font-color", "", "New text color")
	cmd.Flags().String("photo", "", "Path to a replacement image (max 2 MiB)")
	cmd.Flags().Bool("remove-photo", false, "Remove the attached photo")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	flags := cmd.Flags()

	if flags.Changed("photo") && flags.Changed("remove-photo") {
		err := fmt.Errorf("--photo and --remove-photo cannot be combined")
		if fmtErr := formatter.Error("INVALID_FLAG", err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Exit(cli.ExitUsage, err)
	}

	if len(cli.ChangedFlags(cmd, "json", "quiet")) == 0 {
		err := fmt.Errorf("nothing to change: pass at least one of --text, --category, --due, --category-color, --font-color, --photo, --remove-photo")
		if fmtErr := formatter.Error("INVALID_FLAG", err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Exit(cli.ExitUsage, err)
	}

	cliInstance, task, closeCLI, err := openTask(cmd, formatter, args[0])
	if err != nil {
		return err
	}
	defer closeCLI()

	// start from the stored task so unset flags keep their value
	req := taskservice.UpdateTaskRequest{
		ID:            task.ID,
		Text:          task.Text,
		Category:      task.Category,
		CategoryColor: task.CategoryColor,
		FontColor:     task.FontColor,
		DueDate:       task.DueDate,
	}

	if flags.Changed("text") {
		text, _ := flags.GetString("text")
		if req.Text, err = readTextArg(cmd, text); err != nil {
			return formatter.Fail(err)
		}
	}
	if flags.Changed("category") {
		value, _ := flags.GetString("category")
		if req.Category, err = cli.ParseCategory(value); err != nil {
			return formatter.Fail(err)
		}
	}
	if flags.Changed("due") {
		value, _ := flags.GetString("due")
		req.DueDate = strings.TrimSpace(value)
	}
	if flags.Changed("category-color") {
		req.CategoryColor, _ = flags.GetString("category-color")
	}
	if flags.Changed("font-color") {
		req.FontColor, _ = flags.GetString("font-color")
	}
	if flags.Changed("photo") {
		path, _ := flags.GetString("photo")
		if req.Photo, err = taskservice.ReadPhoto(ctx, path); err != nil {
			return formatter.Fail(err)
		}
	}
	req.RemovePhoto, _ = flags.GetBool("remove-photo")

	updated, err := cliInstance.App.Tasks.Update(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	out := cli.NewTaskView(*updated)
	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}

	fmt.Printf("%s Task %s updated\n", styles.SuccessStyle.Render("✓"), cli.ShortID(updated.ID))
	fmt.Println("  " + styles.RenderTaskLine(cli.ShortID(updated.ID), *updated))
	return nil
}
