package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/jot/internal/cli"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/testutil"
	clitest "github.com/thenoetrevino/jot/internal/testutil/cli"
)

func TestExport_HTMLFile(t *testing.T) {
	app := clitest.SetupCLITest(t)
	testutil.CreateTestTask(t, app.Tasks, "<b>bold</b> plan", models.CategoryWork)
	testutil.CreateTestTask(t, app.Tasks, "home chore", models.CategoryPersonal)
	out := filepath.Join(t.TempDir(), "tasks.html")

	output, err := clitest.ExecuteCLICommand(t, app, ExportCmd(),
		[]string{"--out", out, "--category", "work", "--title", "Work list", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "html", result["format"])
	assert.Equal(t, out, result["path"])

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "Work list")
	assert.Contains(t, page, "&lt;b&gt;bold&lt;&#47;b&gt; plan")
	assert.NotContains(t, page, "home chore")
}

func TestExport_JSONToStdout(t *testing.T) {
	app := clitest.SetupCLITest(t)
	testutil.CreateTestTaskDue(t, app.Tasks, "later", models.CategoryWork, "2024-05-01")
	testutil.CreateTestTaskDue(t, app.Tasks, "sooner", models.CategoryWork, "2024-04-01")

	output, err := clitest.ExecuteCLICommand(t, app, ExportCmd(),
		[]string{"--format", "json", "--out", "-", "--sort", "asc"})
	require.NoError(t, err)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal([]byte(output), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "sooner", tasks[0].Text)
	assert.Equal(t, "later", tasks[1].Text)
}

func TestExport_PDF(t *testing.T) {
	app := clitest.SetupCLITest(t)
	testutil.CreateTestTask(t, app.Tasks, "print me", models.CategoryOther)
	out := filepath.Join(t.TempDir(), "tasks.pdf")

	output, err := clitest.ExecuteCLICommand(t, app, ExportCmd(),
		[]string{"--format", "PDF", "--out", out, "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, out, strings.TrimSpace(output))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "not a PDF")
}

func TestExport_UsageErrors(t *testing.T) {
	app := clitest.SetupCLITest(t)
	out := filepath.Join(t.TempDir(), "x")

	_, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), []string{"--format", "docx", "--out", out})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, app, ExportCmd(), []string{"--out", out, "--sort", "up"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "nothing written on usage errors")
}

func TestExport_KeepsTargetOnFailure(t *testing.T) {
	app := clitest.SetupCLITest(t)
	out := filepath.Join(t.TempDir(), "missing-dir", "tasks.html")

	_, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), []string{"--out", out})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}
