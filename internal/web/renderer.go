package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Meta carries the fields every page shares with the layout. Nav controls
// whether the sidebar is shown; Active names the highlighted entry.
type Meta struct {
	Title  string
	Nav    bool
	Active string
}

// pages that render inside the shared layout.
var pageNames = []string{
	"login",
	"account",
	"coupon",
	"order",
	"dashboard",
}

// Renderer satisfies echo.Renderer. Each page template is parsed together
// with the layout once at startup; a bad template is a programming error and
// fails the boot.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"idr": domain.FormatIDR,
		"json": func(v any) (template.JS, error) {
			raw, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return template.JS(raw), nil
		},
		"inc": func(n int) int { return n + 1 },
		"dec": func(n int) int { return n - 1 },
		"pages": func(last int) []int {
			if last < 1 {
				last = 1
			}
			out := make([]int, last)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		))
	}
	return &Renderer{pages: pages}
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("web: unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
