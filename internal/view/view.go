// Package view renders the landing page from embedded HTML templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"slices"
	"strings"

	"github.com/avtostrahovanie/landing/internal/content"
	"github.com/avtostrahovanie/landing/internal/estimator"
	"github.com/avtostrahovanie/landing/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// DefaultSection is highlighted when no known section is requested.
const DefaultSection = "home"

// View is the per-request state of the page. Nothing in it outlives the request.
type View struct {
	ActiveSection string

	Form      estimator.Form
	Quote     *model.Quote
	CalcError string

	Contact        model.ContactRequest
	ContactMissing []string
	ContactError   string
	Receipt        *model.ContactReceipt
}

// ShowResult reports whether the result panel is visible.
func (v View) ShowResult() bool {
	return v.Quote != nil
}

type pageData struct {
	View
	Page         *content.Page
	Regions      []estimator.Region
	CanonicalURL string
}

// Renderer executes the page template against a fixed copy of the content.
type Renderer struct {
	page         *content.Page
	tmpl         *template.Template
	static       http.Handler
	canonicalURL string
}

// New parses the embedded templates. baseURL is the public address of the page.
func New(page *content.Page, baseURL string) (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	return &Renderer{
		page:         page,
		tmpl:         tmpl,
		static:       http.StripPrefix("/static/", http.FileServer(http.FS(assets))),
		canonicalURL: strings.TrimRight(baseURL, "/") + "/",
	}, nil
}

// Render writes the full page. A failed render may leave partial output in w.
func (r *Renderer) Render(w io.Writer, v View) error {
	if !r.page.HasSection(v.ActiveSection) {
		v.ActiveSection = DefaultSection
	}

	data := pageData{View: v, Page: r.page, Regions: estimator.Regions, CanonicalURL: r.canonicalURL}
	if err := r.tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// Static serves the embedded stylesheet under /static/.
func (r *Renderer) Static() http.Handler {
	return r.static
}

var funcs = template.FuncMap{
	"premium": estimator.FormatPremium,
	"icon":    icon,
	"selected": func(value string, r estimator.Region) bool {
		parsed, err := estimator.ParseRegion(value)
		return err == nil && parsed == r
	},
	"missing": func(fields []string, name string) bool {
		return slices.Contains(fields, name)
	},
}

var icons = map[string]string{
	"shield":       "🛡",
	"shield-check": "✅",
	"users":        "👥",
	"award":        "🏆",
	"clock":        "🕒",
	"trending-up":  "📈",
	"zap":          "⚡",
	"headphones":   "🎧",
	"car":          "🚗",
	"umbrella":     "☂",
	"phone":        "📞",
	"mail":         "✉",
	"map-pin":      "📍",
}

func icon(name string) string {
	if s, ok := icons[name]; ok {
		return s
	}
	return "•"
}
