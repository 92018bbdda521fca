package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

func ParseTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"contains": func(vs []string, v string) bool {
			for _, s := range vs {
				if s == v {
					return true
				}
			}
			return false
		},
	}).ParseFS(templatesFS, "templates/*.html")
}
