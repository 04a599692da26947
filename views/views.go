package views

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

const (
	displayLayout = "Mon, Jan 2 2006 at 3:04 PM"
	// EditLayout is how a reservation start time is shown in, and read back from, the edit form.
	EditLayout = "2006-01-02 3:04 pm"
)

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Local().Format(displayLayout)
		},
	}
}

// Load parses every page template. Templates are named after their file, e.g. "customer_list.html".
func Load() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(files, "templates/*.html")
}
