package view

import "strings"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"`", "&#96;",
	"=", "&#61;",
	"/", "&#47;",
)

// EscapeText makes s safe to place in markup text or a quoted attribute
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}
