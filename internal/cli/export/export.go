package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/cli/styles"
	exporter "github.com/thenoetrevino/jot/internal/export"
	"github.com/thenoetrevino/jot/internal/user"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks to HTML, PDF or JSON",
		Long: `Write the task list to a file, filtered and sorted like the list view.

Examples:
  jot export --format=html --out=tasks.html
  jot export --format=pdf --out=work.pdf --category=work --sort=asc
  jot export --format=json --out=-          # write to stdout
`,
		Args: cli.ExactArgs(0),
		RunE: runExport,
	}

	cmd.Flags().String("format", "html", "Output format: html, pdf, json")
	cmd.Flags().String("out", "", "Output file, - for stdout (required)")
	if err := cmd.MarkFlagRequired("out"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("title", "Tasks", "Document title")
	cmd.Flags().String("author", user.DisplayName(), "Author recorded in PDF exports")

	cli.AddViewFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	formatFlag, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")

	format, err := exporter.ParseFormat(formatFlag)
	if err != nil {
		return usageError(formatter, err)
	}
	viewCfg, err := cli.ParseViewFlags(cmd)
	if err != nil {
		return usageError(formatter, err)
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

	tasks := cliInstance.App.Tasks.Tasks()
	var buf bytes.Buffer
	err = exporter.Write(&buf, format, tasks, exporter.Options{
		Title:       title,
		Author:      strings.TrimSpace(author),
		View:        viewCfg,
		GeneratedAt: cliInstance.App.Now(),
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if out == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	// write beside the target and rename so a failed export never truncates it
	tmp, err := os.CreateTemp(filepath.Dir(out), ".jot-export-*")
	if err != nil {
		return formatter.Fail(fmt.Errorf("creating %s: %w", out, err))
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return formatter.Fail(fmt.Errorf("writing %s: %w", out, err))
	}
	if err := tmp.Close(); err != nil {
		return formatter.Fail(fmt.Errorf("writing %s: %w", out, err))
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return formatter.Fail(fmt.Errorf("writing %s: %w", out, err))
	}

	if formatter.Quiet {
		fmt.Println(out)
		return nil
	}
	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"format":  string(format),
			"path":    out,
			"bytes":   buf.Len(),
		})
	}

	fmt.Printf("%s Exported to %s (%s, %d bytes)\n", styles.SuccessStyle.Render("✓"), out, format, buf.Len())
	return nil
}

func usageError(formatter *cli.OutputFormatter, err error) error {
	if fmtErr := formatter.Error("INVALID_FLAG", err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return cli.Exit(cli.ExitUsage, err)
}
