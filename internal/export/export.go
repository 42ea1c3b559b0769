// Package export writes the task list to files outside the app: a static
// HTML page, a printable PDF or the raw JSON list.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/view"
)

// Format names an export target
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// Formats lists the supported formats
var Formats = []Format{FormatHTML, FormatPDF, FormatJSON}

// ParseFormat maps a flag value onto a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHTML, FormatPDF, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (must be: html, pdf, json)", s)
}

// Options shapes the exported document
type Options struct {
	Title       string
	Author      string      // PDF metadata and byline; empty omits it
	View        view.Config // EditID is ignored
	GeneratedAt time.Time
}

func (o Options) normalized() Options {
	if o.Title == "" {
		o.Title = "Tasks"
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
	o.View.EditID = ""
	return o
}

// Write renders tasks in format to w. The list is filtered and sorted the
// same way the app shows it.
func Write(w io.Writer, format Format, tasks []models.Task, opts Options) error {
	opts = opts.normalized()
	rows := view.Project(tasks, opts.View)

	switch format {
	case FormatHTML:
		return view.RenderHTML(w, rows, view.HTMLOptions{
			Title:       opts.Title,
			Config:      opts.View,
			GeneratedAt: opts.GeneratedAt,
		})
	case FormatPDF:
		return writePDF(w, rows, opts)
	case FormatJSON:
		return writeJSON(w, rows)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeJSON(w io.Writer, rows []view.Row) error {
	tasks := make([]models.Task, len(rows))
	for i, r := range rows {
		tasks[i] = r.Task
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	return nil
}
