package api

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html.tmpl").Funcs(templateFuncs).ParseFS(templateFS, "templates/dashboard.html.tmpl"),
)
