package remind

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/reminder"
)

// RemindCmd returns the remind command
func RemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print a digest of tasks due today or overdue",
		Long: `Print the tasks due today or earlier.

With --once the digest is printed immediately. Otherwise jot keeps running
and prints it every day at --at (default: remind_at from the config).
`,
		Args: cli.ExactArgs(0),
		RunE: runRemind,
	}

	cmd.Flags().String("at", "", "Daily time HH:MM (defaults to remind_at from the config)")
	cmd.Flags().Bool("once", false, "Print the digest now and exit")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRemind(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	at, _ := cmd.Flags().GetString("at")
	once, _ := cmd.Flags().GetBool("once")

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

	if once {
		return printDigest(ctx, cliInstance, formatter)
	}

	if at == "" {
		at = cliInstance.App.Config.RemindAt
	}

	scheduler := reminder.NewScheduler(time.Local)
	id, err := scheduler.ScheduleDaily(at, func() {
		if err := printDigest(ctx, cliInstance, formatter); err != nil {
			slog.Error("Error printing reminder digest", "error", err)
		}
	})
	if err != nil {
		if fmtErr := formatter.Error("INVALID_FLAG", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitUsage, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Start()
	defer scheduler.Stop()

	if !formatter.Quiet && !formatter.JSON {
		fmt.Printf("Reminding daily at %s (next: %s). Press Ctrl+C to stop.\n",
			at, scheduler.Next(id).Format("2006-01-02 15:04"))
	}

	<-ctx.Done()
	return nil
}

// printDigest reloads the list so edits made since startup are included
func printDigest(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
	tasks, err := c.App.Tasks.Load(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	digest := reminder.BuildDigest(tasks, c.App.Now())

	if formatter.Quiet {
		for _, group := range [][]models.Task{digest.Overdue, digest.DueToday} {
			for _, t := range group {
				fmt.Println(t.ID)
			}
		}
		return nil
	}
	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":   true,
			"date":      digest.Date,
			"overdue":   views(digest.Overdue),
			"due_today": views(digest.DueToday),
		})
	}
	return digest.WriteText(os.Stdout)
}

func views(tasks []models.Task) []cli.TaskView {
	out := make([]cli.TaskView, len(tasks))
	for i, t := range tasks {
		out[i] = cli.NewTaskView(t)
	}
	return out
}
