package remind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/testutil"
	clitest "github.com/thenoetrevino/jot/internal/testutil/cli"
)

func TestRemindOnce_JSON(t *testing.T) {
	app := clitest.SetupCLITest(t)
	overdue := testutil.CreateTestTaskDue(t, app.Tasks, "late", models.CategoryWork, "2024-02-20")
	today := testutil.CreateTestTask(t, app.Tasks, "today", models.CategoryPersonal)
	testutil.CreateTestTaskDue(t, app.Tasks, "future", models.CategoryWork, "2024-04-01")
	testutil.CreateTestTaskDue(t, app.Tasks, "whenever", models.CategoryOther, "")

	output, err := clitest.ExecuteCLICommand(t, app, RemindCmd(), []string{"--once", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "2024-03-01", result["date"])

	late := result["overdue"].([]any)
	require.Len(t, late, 1)
	assert.Equal(t, string(overdue.ID), late[0].(map[string]any)["id"])

	due := result["due_today"].([]any)
	require.Len(t, due, 1)
	assert.Equal(t, string(today.ID), due[0].(map[string]any)["id"])
}

func TestRemindOnce_Quiet(t *testing.T) {
	app := clitest.SetupCLITest(t)
	overdue := testutil.CreateTestTaskDue(t, app.Tasks, "late", models.CategoryWork, "2024-01-05")
	today := testutil.CreateTestTask(t, app.Tasks, "today", models.CategoryWork)

	output, err := clitest.ExecuteCLICommand(t, app, RemindCmd(), []string{"--once", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{string(overdue.ID), string(today.ID)}, strings.Fields(output))
}

func TestRemindOnce_Text(t *testing.T) {
	app := clitest.SetupCLITest(t)
	testutil.CreateTestTask(t, app.Tasks, "water plants", models.CategoryPersonal)

	output, err := clitest.ExecuteCLICommand(t, app, RemindCmd(), []string{"--once"})
	require.NoError(t, err)
	assert.Contains(t, output, "water plants")
}

func TestRemind_BadTime(t *testing.T) {
	app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, RemindCmd(), []string{"--at", "25:99"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}
