package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// EditRowProps configures the inline edit row
type EditRowProps struct {
	Edit  *state.EditState
	Width int
}

// RenderEditRow renders the edit controls in place of a display row. The
// category is picked with left/right, the other fields are text inputs.
func RenderEditRow(props EditRowProps) string {
	e := props.Edit
	lines := make([]string, 0, len(state.EditFields)+1)

	for _, f := range state.EditFields {
		label := SubtleStyle.Render(padLabel(f.Label()))
		if e.Focus() == f {
			label = FocusedLabelStyle.Render(padLabel(f.Label()))
		}

		var value string
		if f == state.FieldCategory {
			value = "< " + ChipStyle.Render(string(e.Category())) + " >"
		} else {
			value = e.FieldView(f)
		}
		lines = append(lines, label+" "+value)
	}
	if e.HasPhoto() {
		lines = append(lines, SubtleStyle.Render("current photo kept unless a new path or - is entered"))
	}
	lines = append(lines, SubtleStyle.Render("enter save · esc cancel · tab next field"))

	return EditRowStyle.
		Width(max(props.Width-2, 20)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func padLabel(s string) string {
	const w = 9
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
