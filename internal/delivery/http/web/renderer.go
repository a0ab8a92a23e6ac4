package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"eventsplatform/internal/domain"
	"eventsplatform/internal/i18n"
)

//go:embed templates/*
var templateFS embed.FS

// pageTemplates are rendered inside layout.html; standaloneTemplates are
// complete documents of their own (the printable ticket).
var (
	pageTemplates       = []string{"events.html", "event_detail.html", "book.html", "tickets.html"}
	standaloneTemplates = []string{"ticket_print.html"}
)

var templateFuncs = template.FuncMap{
	"longDate": i18n.FormatLongDate,
	"weekday":  i18n.FormatWeekday,
	"clock":    i18n.FormatTime,
	"price":    i18n.FormatPrice,
	"cityCountry": func(l domain.Location) string {
		return l.CityCountry()
	},
}

// renderer holds the parsed page templates, loaded once at construction.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	pages := make(map[string]*template.Template, len(pageTemplates)+len(standaloneTemplates))
	for _, name := range pageTemplates {
		t, err := template.New("layout.html").Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	for _, name := range standaloneTemplates {
		t, err := template.New(name).Funcs(templateFuncs).
			ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &renderer{pages: pages}, nil
}

func (r *renderer) render(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	root := "layout.html"
	for _, s := range standaloneTemplates {
		if s == name {
			root = name
			break
		}
	}
	return t.ExecuteTemplate(w, root, data)
}
