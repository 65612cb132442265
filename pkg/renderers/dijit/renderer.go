// Package dijit renders constructed forms as markup the Dojo toolkit's
// declarative parser picks up: each control carries a dojoType attribute
// plus the validation attributes the mixer computed, and the page footer
// requires exactly the modules the rendered widgets registered with the
// collector.
package dijit

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-dojoform/pkg/attrs"
	"github.com/goliatone/go-dojoform/pkg/collector"
	"github.com/goliatone/go-dojoform/pkg/config"
	"github.com/goliatone/go-dojoform/pkg/forms"
	"github.com/goliatone/go-dojoform/pkg/render"
	rendertemplate "github.com/goliatone/go-dojoform/pkg/render/template"
	"github.com/goliatone/go-dojoform/pkg/render/template/gotemplate"
)

// Option configures the renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	cfg              config.Config
	cfgSet           bool
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithConfig sets the toolkit configuration (version, base URL, theme).
func WithConfig(cfg config.Config) Option {
	return func(rc *rendererConfig) {
		rc.cfg = cfg
		rc.cfgSet = true
	}
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(rc *rendererConfig) {
		rc.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(rc *rendererConfig) {
		if path != "" {
			rc.templateFS = os.DirFS(path)
		}
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(rc *rendererConfig) {
		if renderer != nil {
			rc.templateRenderer = renderer
		}
	}
}

// Renderer implements render.Renderer for dijit-annotated HTML.
type Renderer struct {
	cfg       config.Config
	templates rendertemplate.TemplateRenderer
	sanitizer *bluemonday.Policy
}

// New constructs the dijit renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	rc := rendererConfig{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&rc)
	}
	if !rc.cfgSet {
		rc.cfg = config.Default()
	}
	if rc.templateFS == nil {
		rc.templateFS = TemplatesFS()
	}

	renderer := rc.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(rc.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("dijit renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		cfg:       rc.cfg,
		templates: renderer,
		sanitizer: bluemonday.StrictPolicy(),
	}, nil
}

func (r *Renderer) Name() string {
	return "dijit"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the form markup plus the stylesheet links and
// dojo.require block the page needs for the widgets actually used.
func (r *Renderer) Render(ctx context.Context, form *forms.Form, options render.Options) ([]byte, error) {
	if form == nil {
		return nil, fmt.Errorf("dijit renderer: form is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	col := options.Collector
	if col == nil {
		col = collector.FromContext(ctx)
	}
	if col == nil {
		col = collector.New()
	}

	// the enclosing declarative form needs its own module loaded
	col.Add("dijit.form.Form")

	var fieldsHTML []string
	for _, bound := range form.Fields {
		fieldsHTML = append(fieldsHTML, r.renderField(bound, options, col))
	}

	stylesheets := widgetStylesheets(form.Fields)
	themeClass, themeCSS := r.theme(options)

	data := map[string]any{
		"name":        form.Name,
		"theme_class": themeClass,
		"theme_css":   themeCSS,
		"stylesheets": stylesheets,
		"fields":      fieldsHTML,
		"requires":    col.Modules(),
	}

	output, err := r.templates.RenderTemplate("form", data)
	if err != nil {
		return nil, fmt.Errorf("dijit renderer: render form %q: %w", form.Name, err)
	}
	return []byte(output), nil
}

func (r *Renderer) renderField(bound forms.BoundField, options render.Options, col *collector.Collector) string {
	base := attrs.Bag{
		"name": bound.Field.Name,
		"id":   fieldID(bound),
	}
	bag := bound.RenderAttrs(base, col)

	// prompt messages reach the browser as attribute payloads; strip any
	// markup that rode along on the model's help text
	if prompt, ok := bag["promptMessage"].(string); ok {
		bag["promptMessage"] = strings.TrimSpace(r.sanitizer.Sanitize(prompt))
	}

	value := fieldValue(options.Values[bound.Field.Name], bound.Widget.ValueFormat)
	return fieldMarkup(bound, controlMarkup(bound, bag, value))
}

// widgetStylesheets aggregates the CSS dependencies of the widgets a form
// actually uses, first-seen order, duplicates suppressed.
func widgetStylesheets(fields []forms.BoundField) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, bound := range fields {
		for _, href := range bound.Widget.Stylesheets {
			if href == "" {
				continue
			}
			if _, exists := seen[href]; exists {
				continue
			}
			seen[href] = struct{}{}
			out = append(out, href)
		}
	}
	return out
}

func (r *Renderer) theme(options render.Options) (class, css string) {
	name := r.cfg.Theme
	css = r.cfg.ThemeCSS()
	if options.Theme != nil {
		if options.Theme.Theme != "" {
			name = options.Theme.Theme
			css = fmt.Sprintf("%s/dijit/themes/%s/%s.css", r.cfg.BaseURL, name, name)
		}
		if options.Theme.AssetURL != nil {
			if resolved := options.Theme.AssetURL(fmt.Sprintf("dijit/themes/%s/%s.css", name, name)); resolved != "" {
				css = resolved
			}
		}
	}
	return name, css
}
