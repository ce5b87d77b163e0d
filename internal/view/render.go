package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render writes the full HTML document for a page
func (r *Renderer) Render(w io.Writer, page Page) error {
	if err := r.templates.ExecuteTemplate(w, "layout", page); err != nil {
		return fmt.Errorf("render page %q: %w", page.Route.Page, err)
	}
	return nil
}
