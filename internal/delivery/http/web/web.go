// Package web renders the embedded HTML pages: the public payment form and
// the staff dashboard views.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
)

//go:embed templates/*
var templateFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// funcs are the helpers available to page templates.
var funcs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"fmtAmount": func(amount float64) string {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	},
}

// NewRenderer parses all embedded page templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named page with the given data as HTML.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return r.templates.ExecuteTemplate(w, name, data)
}
