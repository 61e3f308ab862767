// Package views holds the server-rendered pages of the customer area.
package views

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/gin-gonic/gin/render"
)

const (
	DashboardPage = "dashboard.html"
	OrdersPage    = "orders.html"
)

var pages = []string{
	"templates/dashboard.html",
	"templates/orders.html",
}

// Renderer satisfies gin's HTMLRender. Each page is its own clone of the
// layout so every page can define "content".
type Renderer struct {
	tmpls map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	base := template.New("").Funcs(templateFuncs())
	base, err := base.ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	tmpls := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if clone, err = clone.ParseFS(templateFS, p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		tmpls[strings.TrimPrefix(p, "templates/")] = clone
	}
	return &Renderer{tmpls: tmpls}, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r.lookup(name),
		Name:     "layout",
		Data:     data,
	}
}

func (r *Renderer) lookup(name string) *template.Template {
	if t, ok := r.tmpls[name]; ok {
		return t
	}
	return notFound
}

var notFound = template.Must(template.New("layout").Parse("page not found"))

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"initials": func(first, last string) string {
			var b strings.Builder
			if first != "" {
				b.WriteString(strings.ToUpper(first[:1]))
			}
			if last != "" {
				b.WriteString(strings.ToUpper(last[:1]))
			}
			return b.String()
		},
	}
}
