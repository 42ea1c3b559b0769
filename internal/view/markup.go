package view

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/thenoetrevino/jot/internal/models"
)

// HTMLOptions controls the page around the rendered rows
type HTMLOptions struct {
	Title       string
	Config      Config
	GeneratedAt time.Time
}

type htmlRow struct {
	Row
	Accent     string
	DueLabel   string
	PhotoURL   string
	Categories []htmlOption
}

type htmlOption struct {
	Value    string
	Selected bool
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"esc": EscapeText,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{esc .Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
ul.tasks { list-style: none; padding: 0; }
li.task { border-left: 6px solid; padding: .5rem .75rem; margin-bottom: .5rem; background: #fafafa; }
.category { color: #fff; border-radius: 4px; padding: 0 .4rem; margin-right: .5rem; }
.due { color: #666; margin-right: .5rem; }
img.thumb { max-width: 80px; max-height: 80px; display: block; margin-top: .25rem; }
</style>
</head>
<body>
<h1>{{esc .Title}}</h1>
<p class="meta">Filter: {{esc .Filter}} &middot; Sort: {{esc .Sort}}{{if .Generated}} &middot; Generated {{esc .Generated}}{{end}}</p>
<ul class="tasks">
{{- range .Rows}}
{{- if .Editing}}
<li class="task editing" data-id="{{esc (print .Task.ID)}}" style="border-left-color: {{esc .Accent}}">
<select name="category">
{{- range .Categories}}<option value="{{esc .Value}}"{{if .Selected}} selected{{end}}>{{esc .Value}}</option>{{end -}}
</select>
<input type="color" name="categoryColor" value="{{esc .Task.CategoryColor}}">
<input type="date" name="dueDate" value="{{esc .Task.DueDate}}">
<input type="text" name="text" value="{{esc .Task.Text}}">
<input type="color" name="fontColor" value="{{esc .Task.FontColor}}">
<input type="file" name="photo" accept="image/*">
<button data-action="save">Save</button>
<button data-action="cancel">Cancel</button>
</li>
{{- else}}
<li class="task priority-{{esc (print .Task.Priority)}}" data-id="{{esc (print .Task.ID)}}" style="border-left-color: {{esc .Accent}}">
<span class="category" style="background-color: {{esc .Task.CategoryColor}}">{{esc (print .Task.Category)}}</span>
<span class="due">{{esc .DueLabel}}</span>
<span class="text" style="color: {{esc .Task.FontColor}}">{{esc .Task.Text}}</span>
{{- if .PhotoURL}}
<img class="thumb" src="{{esc .PhotoURL}}" alt="">
{{- end}}
<button data-action="edit">Edit</button>
<button data-action="priority">{{esc (print .Task.Priority)}}</button>
<button data-action="remove">Remove</button>
</li>
{{- end}}
{{- end}}
</ul>
</body>
</html>
`))

// RenderHTML writes a standalone page listing rows. All task supplied text
// and attribute values pass through EscapeText.
func RenderHTML(w io.Writer, rows []Row, opts HTMLOptions) error {
	title := opts.Title
	if title == "" {
		title = "Tasks"
	}
	filter := opts.Config.Category
	if filter == "" {
		filter = FilterAll
	}

	data := struct {
		Title     string
		Filter    string
		Sort      string
		Generated string
		Rows      []htmlRow
	}{
		Title:  title,
		Filter: filter,
		Sort:   opts.Config.Sort.String(),
		Rows:   make([]htmlRow, len(rows)),
	}
	if !opts.GeneratedAt.IsZero() {
		data.Generated = opts.GeneratedAt.Format(time.RFC1123)
	}

	for i, r := range rows {
		hr := htmlRow{
			Row:      r,
			Accent:   AccentColor(r.Task),
			DueLabel: DueLabel(r.Task),
		}
		if r.Task.Photo != nil {
			hr.PhotoURL = r.Task.Photo.DataURL()
		}
		if r.Editing {
			for _, c := range models.Categories {
				hr.Categories = append(hr.Categories, htmlOption{Value: string(c), Selected: c == r.Task.Category})
			}
		}
		data.Rows[i] = hr
	}

	var buf strings.Builder
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
