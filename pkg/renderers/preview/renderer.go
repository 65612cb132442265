// Package preview walks a constructed form as an interactive terminal
// session: one prompt per field, widget-appropriate prompt types, and the
// collected values serialized at the end. It exists so a form definition
// can be exercised without a browser or a Dojo runtime.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-dojoform/pkg/forms"
	"github.com/goliatone/go-dojoform/pkg/model"
	"github.com/goliatone/go-dojoform/pkg/render"
	"github.com/goliatone/go-dojoform/pkg/widgets"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits an application/json payload.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded.
	OutputFormatFormURLEncoded OutputFormat = "form"
)

// SubmitTransformer mutates collected values before serialization.
type SubmitTransformer func(map[string]any) (map[string]any, error)

// Option configures the preview renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithSubmitTransformer mutates collected values prior to serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}

// Renderer implements render.Renderer for terminal-driven preview sessions.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
}

// New constructs a preview renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       &surveyDriver{},
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "preview"
}

func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatFormURLEncoded {
		return "application/x-www-form-urlencoded"
	}
	return "application/json"
}

// Render prompts for every visible field in declaration order. Hidden fields
// pass their prefilled or default value through without a prompt.
func (r *Renderer) Render(ctx context.Context, form *forms.Form, options render.Options) ([]byte, error) {
	if form == nil {
		return nil, errors.New("preview: form is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("preview: prompt driver is nil")
	}

	values := make(map[string]any, len(form.Fields))
	for _, bound := range form.Fields {
		value, err := r.promptField(ctx, bound, options.Values)
		if err != nil {
			return nil, err
		}
		values[bound.Field.Name] = value
	}

	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("preview: submit transformer: %w", err)
		}
	}

	return r.serialize(values)
}

func (r *Renderer) promptField(ctx context.Context, bound forms.BoundField, prefilled map[string]any) (any, error) {
	name := bound.Field.Name
	if bound.Hidden() {
		if v, ok := prefilled[name]; ok {
			return v, nil
		}
		return bound.Field.Default, nil
	}

	if bound.Field.HasChoices() {
		return r.promptChoices(ctx, bound, prefilled[name])
	}

	kind := bound.Field.Kind
	switch {
	case kind.IsA(model.KindBoolean):
		return r.promptBoolean(ctx, bound, prefilled[name])
	case kind.IsA(model.KindInteger) || kind.IsA(model.KindFloat) || kind.IsA(model.KindDecimal):
		return r.promptNumber(ctx, bound, prefilled[name])
	case bound.Widget.Element == widgets.ElementTextarea, bound.Widget.Element == widgets.ElementDiv:
		return r.promptTextArea(ctx, bound, prefilled[name])
	case bound.Widget.InputType == "password":
		return r.driver.Password(ctx, InputConfig{
			Message:   promptLabel(bound),
			Help:      bound.Field.HelpText,
			Validator: stringValidator(bound.Field),
		})
	default:
		return r.driver.Input(ctx, InputConfig{
			Message:   promptLabel(bound),
			Default:   stringDefault(bound, prefilled[name]),
			Help:      bound.Field.HelpText,
			Validator: stringValidator(bound.Field),
		})
	}
}

func (r *Renderer) promptChoices(ctx context.Context, bound forms.BoundField, prefilled any) (any, error) {
	labels := make([]string, len(bound.Field.Choices))
	for i, choice := range bound.Field.Choices {
		labels[i] = choice.Label
		if labels[i] == "" {
			labels[i] = choice.Value
		}
	}

	cfg := SelectConfig{
		Message:      promptLabel(bound),
		Options:      labels,
		Help:         bound.Field.HelpText,
		DefaultIndex: choiceIndex(bound.Field.Choices, prefilled),
	}

	if bound.Widget.Multiple || bound.Field.Kind.IsA(model.KindManyToMany) {
		picked, err := r.driver.MultiSelect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(picked))
		for _, idx := range picked {
			if idx >= 0 && idx < len(bound.Field.Choices) {
				out = append(out, bound.Field.Choices[idx].Value)
			}
		}
		return out, nil
	}

	idx, err := r.driver.Select(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(bound.Field.Choices) {
		return "", nil
	}
	return bound.Field.Choices[idx].Value, nil
}

func (r *Renderer) promptBoolean(ctx context.Context, bound forms.BoundField, prefilled any) (any, error) {
	def, _ := prefilled.(bool)
	if prefilled == nil {
		def, _ = bound.Field.Default.(bool)
	}
	return r.driver.Confirm(ctx, ConfirmConfig{
		Message: promptLabel(bound),
		Default: def,
		Help:    bound.Field.HelpText,
	})
}

func (r *Renderer) promptNumber(ctx context.Context, bound forms.BoundField, prefilled any) (any, error) {
	integral := bound.Field.Kind.IsA(model.KindInteger)
	for {
		raw, err := r.driver.Input(ctx, InputConfig{
			Message: promptLabel(bound),
			Default: stringDefault(bound, prefilled),
			Help:    bound.Field.HelpText,
		})
		if err != nil {
			return nil, err
		}
		if raw == "" && !bound.Field.Required() {
			return nil, nil
		}
		value, err := parseNumber(raw, integral)
		if err != nil {
			if infoErr := r.driver.Info(ctx, fmt.Sprintf("%s: %v", bound.Field.Name, err)); infoErr != nil {
				return nil, infoErr
			}
			continue
		}
		if err := checkRange(value, bound.Field); err != nil {
			if infoErr := r.driver.Info(ctx, fmt.Sprintf("%s: %v", bound.Field.Name, err)); infoErr != nil {
				return nil, infoErr
			}
			continue
		}
		if integral {
			return int64(value), nil
		}
		return value, nil
	}
}

func (r *Renderer) promptTextArea(ctx context.Context, bound forms.BoundField, prefilled any) (any, error) {
	return r.driver.TextArea(ctx, TextAreaConfig{
		Message: promptLabel(bound),
		Default: stringDefault(bound, prefilled),
		Help:    bound.Field.HelpText,
	})
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	if r.outputFormat == OutputFormatFormURLEncoded {
		encoded := url.Values{}
		for key, value := range values {
			switch v := value.(type) {
			case nil:
			case []string:
				for _, item := range v {
					encoded.Add(key, item)
				}
			default:
				encoded.Set(key, fmt.Sprintf("%v", v))
			}
		}
		return []byte(encoded.Encode()), nil
	}
	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("preview: serialize values: %w", err)
	}
	return payload, nil
}

func promptLabel(bound forms.BoundField) string {
	label := bound.Label()
	if bound.Field.Required() {
		label += " *"
	}
	return label
}

func stringDefault(bound forms.BoundField, prefilled any) string {
	value := prefilled
	if value == nil {
		value = bound.Field.Default
	}
	if value == nil {
		return ""
	}
	if ts, ok := value.(time.Time); ok {
		switch bound.Widget.ValueFormat {
		case widgets.FormatDate:
			return ts.Format("2006-01-02")
		case widgets.FormatTime:
			return ts.Format("T15:04:05")
		case widgets.FormatDateTime:
			return ts.Format("2006-01-02T15:04:05")
		}
	}
	return fmt.Sprintf("%v", value)
}

func choiceIndex(choices []model.Choice, prefilled any) int {
	want, ok := prefilled.(string)
	if !ok {
		return 0
	}
	for i, choice := range choices {
		if choice.Value == want {
			return i
		}
	}
	return 0
}

// stringValidator enforces the same constraints the browser widgets would:
// presence, max length, and the field's regular expression when one is set.
func stringValidator(field model.Field) func(string) error {
	required := field.Required()
	maxLength := field.MaxLength
	pattern := field.Pattern
	return func(value string) error {
		if value == "" {
			if required {
				return errors.New("a value is required")
			}
			return nil
		}
		if maxLength > 0 && len(value) > maxLength {
			return fmt.Errorf("at most %d characters allowed", maxLength)
		}
		if pattern != "" {
			// widget patterns are anchored client-side; mirror that here
			if matched, err := matchAnchored(pattern, value); err == nil && !matched {
				return fmt.Errorf("value does not match pattern %s", pattern)
			}
		}
		return nil
	}
}

func matchAnchored(pattern, value string) (bool, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return false, err
	}
	return re.MatchString(value), nil
}

func parseNumber(raw string, integral bool) (float64, error) {
	if integral {
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return 0, errors.New("enter a whole number")
		}
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.New("enter a number")
	}
	return f, nil
}

func checkRange(value float64, field model.Field) error {
	if min, ok := toFloat(field.MinValue); ok && value < min {
		return fmt.Errorf("must be at least %v", field.MinValue)
	}
	if max, ok := toFloat(field.MaxValue); ok && value > max {
		return fmt.Errorf("must be at most %v", field.MaxValue)
	}
	return nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
