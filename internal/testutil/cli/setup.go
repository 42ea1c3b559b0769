// Package cli runs cobra commands against a test App. It is separate from
// testutil so store tests can import testutil without pulling in the CLI.
package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jot/internal/app"
	clipkg "github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/testutil"
)

// SetupCLITest creates an App on a temporary database for CLI tests
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	return testutil.SetupTestApp(t)
}

// ExecuteCLICommand executes a CLI command with a test app instance
// This injects the app through the context so commands use the test database
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin contents
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, stdin string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := clipkg.WithApp(context.Background(), testApp)

	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetFlagErrorFunc(clipkg.FlagErrorFunc)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}
