package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/jot/internal/models"
	taskservice "github.com/thenoetrevino/jot/internal/services/task"
	"github.com/thenoetrevino/jot/internal/view"
)

// minIDPrefix is the shortest ID prefix accepted in place of a full ID
const minIDPrefix = 4

// AddViewFlags registers --category and --sort
func AddViewFlags(cmd *cobra.Command) {
	cmd.Flags().String("category", view.FilterAll, "Category filter: All, Work, Personal, Other")
	cmd.Flags().String("sort", "none", "Sort by due date: none, asc, desc")
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// FormatterFromFlags builds the formatter from --json and --quiet
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// ChangedFlags lists the flags given on the command line in name order,
// leaving out ignore
func ChangedFlags(cmd *cobra.Command, ignore ...string) []string {
	var names []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if !slices.Contains(ignore, f.Name) {
			names = append(names, f.Name)
		}
	})
	return names
}

// ParseViewFlags reads --category and --sort into a view config
func ParseViewFlags(cmd *cobra.Command) (view.Config, error) {
	category, _ := cmd.Flags().GetString("category")
	sortFlag, _ := cmd.Flags().GetString("sort")

	filter, err := ParseCategoryFilter(category)
	if err != nil {
		return view.Config{}, err
	}
	dir, ok := view.ParseSortDirection(strings.ToLower(strings.TrimSpace(sortFlag)))
	if !ok {
		return view.Config{}, fmt.Errorf("invalid sort '%s' (must be: none, asc, desc)", sortFlag)
	}
	return view.Config{Category: filter, Sort: dir}, nil
}

// ParseCategoryFilter accepts All (or empty) and the category names in any case
func ParseCategoryFilter(s string) (string, error) {
	if s = strings.TrimSpace(s); s == "" || strings.EqualFold(s, view.FilterAll) {
		return view.FilterAll, nil
	}
	c, err := models.ParseCategory(s)
	if err != nil {
		return "", fmt.Errorf("invalid category '%s' (must be: All, Work, Personal, Other)", s)
	}
	return string(c), nil
}

// ParseCategory maps a --category value onto a category
func ParseCategory(s string) (models.Category, error) {
	c, err := models.ParseCategory(s)
	if err != nil {
		return "", fmt.Errorf("%w: got '%s'", taskservice.ErrInvalidCategory, s)
	}
	return c, nil
}

// ResolveTaskID finds the task named by arg: a full ID or an unambiguous
// prefix of at least four characters
func ResolveTaskID(store *taskservice.Store, arg string) (models.TaskID, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", taskservice.ErrInvalidTaskID
	}
	if _, ok := store.Get(models.TaskID(arg)); ok {
		return models.TaskID(arg), nil
	}
	if len(arg) < minIDPrefix {
		return "", fmt.Errorf("%w: %s", taskservice.ErrTaskNotFound, arg)
	}

	var match models.TaskID
	for _, t := range store.Tasks() {
		if strings.HasPrefix(string(t.ID), arg) {
			if match != "" {
				return "", fmt.Errorf("%w: '%s' matches more than one task", taskservice.ErrInvalidTaskID, arg)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", taskservice.ErrTaskNotFound, arg)
	}
	return match, nil
}

// ShortID is the prefix shown in human-readable output
func ShortID(id models.TaskID) string {
	s := string(id)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// TaskView is the JSON shape of a task in CLI output. Photos are described,
// not embedded.
type TaskView struct {
	ID            string     `json:"id"`
	Text          string     `json:"text"`
	Category      string     `json:"category"`
	CategoryColor string     `json:"category_color"`
	FontColor     string     `json:"font_color"`
	DueDate       string     `json:"due_date,omitempty"`
	Priority      string     `json:"priority"`
	HasPhoto      bool       `json:"has_photo"`
	PhotoMIME     string     `json:"photo_mime,omitempty"`
	PhotoBytes    int        `json:"photo_bytes,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// GetID lets quiet mode print just the ID
func (v TaskView) GetID() string {
	return v.ID
}

// NewTaskView converts a task for output
func NewTaskView(t models.Task) TaskView {
	v := TaskView{
		ID:            string(t.ID),
		Text:          t.Text,
		Category:      string(t.Category),
		CategoryColor: t.CategoryColor,
		FontColor:     t.FontColor,
		DueDate:       t.DueDate,
		Priority:      string(t.Priority),
	}
	if t.Photo != nil {
		v.HasPhoto = true
		v.PhotoMIME = t.Photo.MIME
		v.PhotoBytes = t.Photo.Size()
	}
	if !t.CreatedAt.IsZero() {
		created := t.CreatedAt
		v.CreatedAt = &created
	}
	return v
}
