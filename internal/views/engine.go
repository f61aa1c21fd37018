// Package views renders the portal pages. Engine implements fiber.Views so
// handlers can call c.Render.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/spec-kit/employee-portal/internal/format"
)

//go:embed templates
var templateFS embed.FS

// Page names accepted by Render.
const (
	PageList     = "list"
	PageForm     = "form"
	PageNotFound = "not_found"
	PageError    = "error"
)

// Engine holds one template set per page, each sharing the layout.
type Engine struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
}

// NewEngine returns an engine that parses templates on first Load or Render.
func NewEngine() *Engine {
	return &Engine{}
}

var funcs = template.FuncMap{
	"formatDate": format.FormatDate,
	"dict": func(pairs ...any) (map[string]any, error) {
		if len(pairs)%2 != 0 {
			return nil, fmt.Errorf("dict needs key/value pairs, got %d args", len(pairs))
		}
		m := make(map[string]any, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
			}
			m[key] = pairs[i+1]
		}
		return m, nil
	},
	"add": func(a, b int) int { return a + b },
}

// Load parses the embedded templates.
func (e *Engine) Load() error {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return err
	}

	set := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		t, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := t.ParseFS(templateFS, p); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		set[strings.TrimSuffix(path.Base(p), ".html")] = t
	}

	e.mu.Lock()
	e.templates = set
	e.mu.Unlock()
	return nil
}

// Render executes the named page inside the layout. Layout arguments are ignored.
func (e *Engine) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	e.mu.RLock()
	loaded := e.templates != nil
	e.mu.RUnlock()
	if !loaded {
		if err := e.Load(); err != nil {
			return err
		}
	}

	e.mu.RLock()
	t, ok := e.templates[name]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
