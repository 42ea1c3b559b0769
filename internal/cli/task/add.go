package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/cli/styles"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Long: `Add a task to the end of the list.

Examples:
  # Simple task, due today
  jot task add --text="Buy milk"

  # JSON output for scripts
  jot task add --text="Buy milk" --category=personal --json

  # Quiet mode for bash capture
  TASK_ID=$(jot task add --text="Write report" --due=2024-06-01 --quiet)

  # With a photo and no due date
  jot task add --text="Fix the shelf" --no-due --photo=~/shelf.jpg
`,
		Args: cli.ExactArgs(0),
		RunE: runAdd,
	}

	cmd.Flags().String("text", "", "Task text (required, use - for stdin)")
	if err := cmd.MarkFlagRequired("text"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().String("category", "Work", "Category: Work, Personal, Other")
	cmd.Flags().String("due", "", "Due date yyyy-mm-dd (defaults to today)")
	cmd.Flags().Bool("no-due", false, "Create the task without a due date")
	cmd.Flags().String("category-color", "", "Category color (defaults to the category preset)")
	cmd.Flags().String("font-color", "", "Text color (defaults to black)")
	cmd.Flags().String("photo", "", "Path to an image to attach (max 2 MiB)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	text, _ := cmd.Flags().GetString("text")
	categoryFlag, _ := cmd.Flags().GetString("category")
	due, _ := cmd.Flags().GetString("due")
	noDue, _ := cmd.Flags().GetBool("no-due")
	categoryColor, _ := cmd.Flags().GetString("category-color")
	fontColor, _ := cmd.Flags().GetString("font-color")
	photoPath, _ := cmd.Flags().GetString("photo")

	text, err := readTextArg(cmd, text)
	if err != nil {
		return formatter.Fail(err)
	}

	category, err := cli.ParseCategory(categoryFlag)
	if err != nil {
		return formatter.Fail(err)
	}

	req := taskservice.CreateTaskRequest{
		Text:          text,
		Category:      category,
		CategoryColor: categoryColor,
		FontColor:     fontColor,
		DueDate:       strings.TrimSpace(due),
		NoDueDate:     noDue,
	}

	if photoPath != "" {
		photo, err := taskservice.ReadPhoto(ctx, photoPath)
		if err != nil {
			return formatter.Fail(err)
		}
		req.Photo = photo
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

	// the store fell back to an empty list; creating now would overwrite the slot
	if loadErr := cliInstance.App.LoadErr; loadErr != nil {
		return formatter.Fail(loadErr)
	}

	task, err := cliInstance.App.Tasks.Create(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	out := cli.NewTaskView(*task)
	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}

	fmt.Printf("%s Task added (ID: %s)\n", styles.SuccessStyle.Render("✓"), task.ID)
	fmt.Println("  " + styles.RenderTaskLine(cli.ShortID(task.ID), *task))
	return nil
}
