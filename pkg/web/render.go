// Package web renders the server-side HTML pages. Templates are embedded in
// the binary and parsed once at startup; every page is rendered inside the
// shared layout.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates
var templatesFS embed.FS

// ViewData is the contract between handlers and templates: the page payload
// plus the generic notice/alert strings and per-field validation messages.
type ViewData struct {
	Title  string
	Notice string
	Alert  string
	Errors map[string]string
	Data   any
}

// Renderer holds the parsed template set, one entry per page, each page
// combined with the layout and shared partials.
type Renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"datetime": func(t time.Time) string { return t.Local().Format("2006-01-02 15:04") },
}

// NewRenderer parses all embedded templates. Returns an error on any parse
// failure so a broken template fails startup, not the first request.
func NewRenderer() (*Renderer, error) {
	pages := []string{
		"items/index",
		"items/show",
		"items/new",
		"items/edit",
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New("layout.html.tmpl").
			Funcs(templateFuncs).
			ParseFS(templatesFS,
				"templates/layout.html.tmpl",
				"templates/items/form.html.tmpl",
				"templates/"+page+".html.tmpl",
			)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render writes the named page with the given status. The page is rendered
// into a buffer first so a template failure never produces a half-written
// response body; the error is returned for the caller's 500 path instead.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *ViewData) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown template page: %s", page)
	}
	if data == nil {
		data = &ViewData{}
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html.tmpl", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}
