package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/Akshat0071/portfolio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"imageOr": content.ImageOr,
	"lower":   strings.ToLower,
	"jsonld": func(doc []byte) template.JS {
		return template.JS(doc)
	},
	"delay": func(i int, step float64) string {
		return fmt.Sprintf("%.1fs", float64(i)*step)
	},
}

func parseTemplates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

func staticFiles() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
