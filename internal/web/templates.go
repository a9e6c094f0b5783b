package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/example/roomportal/internal/schedule"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"home",
	"login",
	"register",
	"forgot",
	"reserve",
	"schedule",
	"dashboard",
	"my",
	"requests",
	"reject_confirm",
	"rooms",
	"room_edit",
	"room_delete",
	"users",
	"user_delete",
}

// parseTemplates builds one template set per page, each sharing the layout.
func parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"t": func(text map[string]string, key string) string {
			if value, ok := text[key]; ok {
				return value
			}
			return key
		},
		"clock": schedule.Clock,
	}

	layout, err := template.New("layout").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("web: clone layout for %s: %w", name, err)
		}
		page, err := clone.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("web: parse page %s: %w", name, err)
		}
		pages[name] = page
	}
	return pages, nil
}
