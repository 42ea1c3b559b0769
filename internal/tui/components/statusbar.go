package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps configures the status bar
type StatusBarProps struct {
	Width   int
	Mode    string
	Filter  string
	Sort    string
	Count   int
	Pending bool // filter or sort change waiting on the debounce delay
	Help    string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: mode, filter, sort, count
// Right side: help hint
func RenderStatusBar(props StatusBarProps) string {
	left := " " + props.Mode + " │ " + props.Filter + " │ sort " + props.Sort + " │ " + plural(props.Count, "task")
	if props.Pending {
		left += " …"
	}
	right := props.Help + " "

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return StatusBarStyle.Render(left + strings.Repeat(" ", gapWidth) + right)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
