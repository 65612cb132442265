// Package dojoform generates Dojo/Dijit forms from model field descriptors
// or OpenAPI component schemas. The Generator wires the default pipeline
// (schema → field mapper → attribute mixer → renderer) while leaving every
// stage open to injection.
package dojoform

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-dojoform/pkg/config"
	"github.com/goliatone/go-dojoform/pkg/fieldmap"
	"github.com/goliatone/go-dojoform/pkg/forms"
	"github.com/goliatone/go-dojoform/pkg/model"
	"github.com/goliatone/go-dojoform/pkg/render"
	"github.com/goliatone/go-dojoform/pkg/renderers/dijit"
	"github.com/goliatone/go-dojoform/pkg/renderers/preview"
	"github.com/goliatone/go-dojoform/pkg/schema"
	"github.com/goliatone/go-dojoform/pkg/widgets"
)

const defaultRendererName = "dijit"

// Option configures a Generator.
type Option func(*Generator)

// WithConfig sets the toolkit configuration (version, base URL, theme).
func WithConfig(cfg config.Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
		g.cfgSet = true
	}
}

// WithConfigFile loads the toolkit configuration from a YAML file.
func WithConfigFile(path string) Option {
	return func(g *Generator) {
		cfg, err := config.Load(path)
		if err != nil {
			g.initialiseErr = err
			return
		}
		g.cfg = cfg
		g.cfgSet = true
	}
}

// WithMapper overrides the field mapping rules.
func WithMapper(mapper *fieldmap.Mapper) Option {
	return func(g *Generator) {
		if mapper != nil {
			g.mapper = mapper
		}
	}
}

// WithWidgets overrides the widget registry.
func WithWidgets(registry *widgets.Registry) Option {
	return func(g *Generator) {
		if registry != nil {
			g.widgets = registry
		}
	}
}

// WithRegistry replaces the renderer registry wholesale. Callers keep the
// built-in renderers by registering on top of NewRegistry output instead.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		if registry != nil {
			g.registry = registry
			g.registrySpecified = true
		}
	}
}

// WithRenderer registers an additional renderer alongside the built-ins.
func WithRenderer(renderer render.Renderer) Option {
	return func(g *Generator) {
		g.extraRenderers = append(g.extraRenderers, renderer)
	}
}

// WithDefaultRenderer names the renderer used when a request leaves it blank.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.defaultRenderer = name
		}
	}
}

// Generator coordinates the pipeline from field descriptors to rendered
// output. Missing dependencies initialise to the built-in implementations so
// a single constructor call is enough to start.
type Generator struct {
	cfg               config.Config
	cfgSet            bool
	mapper            *fieldmap.Mapper
	widgets           *widgets.Registry
	registry          *render.Registry
	registrySpecified bool
	extraRenderers    []render.Renderer
	defaultRenderer   string
	loader            *schema.Loader
	initialiseErr     error
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if !g.cfgSet {
		g.cfg = config.Default()
	}
	if g.widgets == nil {
		g.widgets = widgets.DefaultRegistry(g.cfg)
	}
	if g.mapper == nil {
		g.mapper = fieldmap.NewMapper()
	}
	if g.loader == nil {
		g.loader = schema.NewLoader(schema.LoaderOptions{})
	}
	if g.registry == nil {
		g.registry = render.NewRegistry()
	}
	if !g.registrySpecified {
		htmlRenderer, err := dijit.New(dijit.WithConfig(g.cfg))
		if err != nil {
			g.initialiseErr = fmt.Errorf("dojoform: initialise dijit renderer: %w", err)
			return
		}
		g.registry.MustRegister(htmlRenderer)

		previewRenderer, err := preview.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("dojoform: initialise preview renderer: %w", err)
			return
		}
		g.registry.MustRegister(previewRenderer)
	}
	for _, renderer := range g.extraRenderers {
		if renderer == nil {
			continue
		}
		if err := g.registry.Register(renderer); err != nil {
			g.initialiseErr = fmt.Errorf("dojoform: register renderer: %w", err)
			return
		}
	}
	g.extraRenderers = nil
}

// Request describes the inputs required to generate a form.
type Request struct {
	// Fields supplies model field descriptors directly. Takes precedence
	// over schema-based sources.
	Fields []model.Field

	// SourcePath points at an OpenAPI document on disk. Used with Component.
	SourcePath string

	// Document allows callers to bypass the loader when they already hold a
	// parsed OpenAPI document. Used with Component.
	Document *openapi3.T

	// Component names the OpenAPI component schema to derive fields from.
	Component string

	// FormName overrides the generated form's name attribute. Defaults to
	// the component name, or "form" for direct field input.
	FormName string

	// Renderer names the renderer to use; blank falls back to the default.
	Renderer string

	// RenderOptions carries per-request values, an explicit module
	// collector, and theme overrides.
	RenderOptions render.Options
}

// Generate resolves the request's fields, binds them into a form, and
// renders it with the selected renderer.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("dojoform: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.initialiseErr; err != nil {
		return nil, err
	}

	form, err := g.BuildForm(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := g.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("dojoform: render output: %w", err)
	}
	return output, nil
}

// BuildForm resolves fields and binds them without rendering, for callers
// that drive a renderer themselves.
func (g *Generator) BuildForm(ctx context.Context, req Request) (*forms.Form, error) {
	if err := g.initialiseErr; err != nil {
		return nil, err
	}

	name := req.FormName
	fields := req.Fields

	if len(fields) == 0 {
		if req.Component == "" {
			return nil, errors.New("dojoform: fields or a schema component is required")
		}
		doc := req.Document
		if doc == nil {
			if req.SourcePath == "" {
				return nil, errors.New("dojoform: source path or document is required")
			}
			loaded, err := g.loader.LoadFile(ctx, req.SourcePath)
			if err != nil {
				return nil, fmt.Errorf("dojoform: load document: %w", err)
			}
			doc = loaded
		}
		formModel, err := schema.FormModel(ctx, doc, req.Component)
		if err != nil {
			return nil, err
		}
		fields = formModel.Fields
		if name == "" {
			name = formModel.Name
		}
	}

	if name == "" {
		name = "form"
	}

	form, err := forms.New(name, fields,
		forms.WithMapper(g.mapper),
		forms.WithWidgets(g.widgets),
		forms.WithConfig(g.cfg),
	)
	if err != nil {
		return nil, fmt.Errorf("dojoform: build form: %w", err)
	}
	return form, nil
}

func (g *Generator) rendererFor(name string) (render.Renderer, error) {
	target := name
	if target == "" {
		target = g.defaultRenderer
	}
	renderer, err := g.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("dojoform: renderer %q: %w", target, err)
	}
	return renderer, nil
}

// Generate is the package-level convenience entry point: one call from an
// OpenAPI document on disk to rendered output.
func Generate(ctx context.Context, sourcePath, component, rendererName string, options ...Option) ([]byte, error) {
	gen := New(options...)
	return gen.Generate(ctx, Request{
		SourcePath: sourcePath,
		Component:  component,
		Renderer:   rendererName,
	})
}
