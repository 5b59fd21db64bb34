// Package views holds the server-rendered screens. Templates and the
// stylesheet are embedded so the binary has no runtime file dependencies.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"transit/internal/domain"
	"transit/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page is the data every screen template receives. Data holds the
// screen-specific view model.
type Page struct {
	Title   string
	BackURL string
	Notice  *domain.Notice
	Data    any
}

var funcs = template.FuncMap{
	"rupees":    utils.FormatRupees,
	"humanDate": utils.HumanDate,
}

// Load parses every screen template.
func Load() (*template.Template, error) {
	return template.New("screens").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// MustLoad is Load for start-up code; the templates are compiled into the
// binary, so a failure here is a build defect.
func MustLoad() *template.Template {
	return template.Must(Load())
}

// Static serves the embedded stylesheet.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
