// Package forms assembles renderable forms from model field descriptors.
// Every field is routed through the field mapper, its widget resolved against
// the widget registry, and its validation metadata bundled so the attribute
// mixer can translate it at render time. Fields no mapping rule covers fall
// back to a plain text box instead of failing, mirroring the permissive host
// behavior.
package forms

import (
	"fmt"

	"github.com/goliatone/go-dojoform/pkg/attrs"
	"github.com/goliatone/go-dojoform/pkg/collector"
	"github.com/goliatone/go-dojoform/pkg/config"
	"github.com/goliatone/go-dojoform/pkg/fieldmap"
	"github.com/goliatone/go-dojoform/pkg/model"
	"github.com/goliatone/go-dojoform/pkg/widgets"
)

// BoundField pairs a model field with the form field type and widget the
// mapper selected for it, plus the extra attribute bundle carried into
// rendering.
type BoundField struct {
	Field     model.Field
	FormField fieldmap.FormFieldType
	Widget    widgets.Descriptor
	Extra     attrs.Extra
	// Fallback marks fields no mapping rule covered.
	Fallback bool
}

// Hidden reports whether the bound field renders as a hidden input.
func (b BoundField) Hidden() bool {
	return b.Widget.InputType == "hidden"
}

// Label returns the field's display label, deriving one from the name when
// the descriptor carries none.
func (b BoundField) Label() string {
	if b.Field.Label != "" {
		return b.Field.Label
	}
	return model.DefaultLabeler(b.Field.Name)
}

// RenderAttrs computes the widget's render-time attribute bag: base
// attributes plus the mixed-in validation concerns. Module requirements are
// reported to col; pass nil to skip collection.
func (b BoundField) RenderAttrs(base attrs.Bag, col *collector.Collector) attrs.Bag {
	return attrs.Build(b.Widget, base, b.Extra, col)
}

// Form is a constructed set of bound fields ready for rendering.
type Form struct {
	Name   string
	Fields []BoundField
}

// Field returns the bound field with the given model field name.
func (f *Form) Field(name string) (BoundField, bool) {
	for _, bound := range f.Fields {
		if bound.Field.Name == name {
			return bound, true
		}
	}
	return BoundField{}, false
}

// Option customizes form construction.
type Option func(*builder)

// WithMapper replaces the default field mapper.
func WithMapper(mapper *fieldmap.Mapper) Option {
	return func(b *builder) {
		if mapper != nil {
			b.mapper = mapper
		}
	}
}

// WithWidgets replaces the widget registry used to resolve descriptors.
func WithWidgets(registry *widgets.Registry) Option {
	return func(b *builder) {
		if registry != nil {
			b.registry = registry
		}
	}
}

// WithConfig sets the toolkit configuration backing the default registry.
func WithConfig(cfg config.Config) Option {
	return func(b *builder) {
		b.cfg = cfg
		b.cfgSet = true
	}
}

type builder struct {
	mapper   *fieldmap.Mapper
	registry *widgets.Registry
	cfg      config.Config
	cfgSet   bool
}

func newBuilder(options []Option) *builder {
	b := &builder{}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	if b.mapper == nil {
		b.mapper = fieldmap.NewMapper()
	}
	if b.registry == nil {
		if !b.cfgSet {
			b.cfg = config.Default()
		}
		b.registry = widgets.DefaultRegistry(b.cfg)
	}
	return b
}

// New constructs a form by mapping every model field in order.
func New(name string, fields []model.Field, options ...Option) (*Form, error) {
	b := newBuilder(options)

	form := &Form{Name: name, Fields: make([]BoundField, 0, len(fields))}
	for _, field := range fields {
		bound, err := b.bind(field)
		if err != nil {
			return nil, fmt.Errorf("forms: field %q: %w", field.Name, err)
		}
		form.Fields = append(form.Fields, bound)
	}
	return form, nil
}

func (b *builder) bind(field model.Field) (BoundField, error) {
	mapping, matched := b.mapper.Select(field)
	if !matched {
		// no override: host-default construction, a plain text box
		mapping = fieldmap.Mapping{
			FormField: fieldmap.FormChar,
			Widget:    widgets.WidgetTextBox,
		}
	}

	widgetName := mapping.Widget
	if widgetName == "" {
		widgetName = fieldmap.DefaultWidgetFor(mapping.FormField)
	}
	desc, ok := b.registry.Descriptor(widgetName)
	if !ok {
		return BoundField{}, fmt.Errorf("widget %q not registered", widgetName)
	}

	extra := mapping.Extra
	if extra == nil {
		extra = extrasFor(field)
	}

	return BoundField{
		Field:     field,
		FormField: mapping.FormField,
		Widget:    desc,
		Extra:     extra,
		Fallback:  !matched,
	}, nil
}

// extrasFor bundles every validation concern the field carries. The
// attribute mixer's per-widget allow list decides which survive into markup.
func extrasFor(field model.Field) attrs.Extra {
	extra := attrs.Extra{widgets.ExtraRequired: field.Required()}
	if field.HelpText != "" {
		extra[widgets.ExtraHelpText] = field.HelpText
	}
	if field.MinValue != nil {
		extra[widgets.ExtraMinValue] = field.MinValue
	}
	if field.MaxValue != nil {
		extra[widgets.ExtraMaxValue] = field.MaxValue
	}
	if field.MaxLength > 0 {
		extra[widgets.ExtraMaxLength] = field.MaxLength
	}
	if field.DecimalPlaces > 0 {
		extra[widgets.ExtraDecimalPlaces] = field.DecimalPlaces
	}
	if field.Pattern != "" {
		extra[widgets.ExtraJSRegex] = field.Pattern
	}
	if field.Multiple {
		extra[widgets.ExtraMultiple] = true
	}
	return extra
}
