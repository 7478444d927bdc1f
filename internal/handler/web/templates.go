package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateCache holds parsed page templates
type TemplateCache struct {
	cache map[string]*template.Template
	mu    sync.RWMutex
	funcs template.FuncMap
}

func NewTemplateCache() (*TemplateCache, error) {
	tc := &TemplateCache{
		cache: make(map[string]*template.Template),
		funcs: make(template.FuncMap),
	}
	if err := tc.load(); err != nil {
		return nil, err
	}
	return tc, nil
}

// load parses all embedded page templates
func (tc *TemplateCache) load() error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.funcs["money"] = func(v float64) string {
		return fmt.Sprintf("$%g", v)
	}
	tc.funcs["seq"] = func(from, to int) []int {
		out := make([]int, 0, to-from+1)
		for i := from; i <= to; i++ {
			out = append(out, i)
		}
		return out
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return err
	}
	for _, file := range files {
		name := filepath.Base(file)
		tmpl, err := template.New(name).Funcs(tc.funcs).ParseFS(templateFS, file)
		if err != nil {
			slog.Error("Failed to parse template", "file", file, "error", err)
			return err
		}
		tc.cache[name] = tmpl
		slog.Debug("Cached template", "name", name)
	}
	return nil
}

func (tc *TemplateCache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.cache[name]
}
