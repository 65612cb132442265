package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-dojoform/pkg/model"
)

// extensionNamespace is the vendor extension consulted for field overrides:
//
//	x-dojoform:
//	  kind: slug
//	  primaryKey: true
const extensionNamespace = "x-dojoform"

// FormModel converts a named component schema into a form model. Property
// order follows the schema's required list first, then the remaining
// properties alphabetically, which keeps output deterministic across runs.
func FormModel(ctx context.Context, doc *openapi3.T, component string) (model.FormModel, error) {
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}
	if doc == nil {
		return model.FormModel{}, errors.New("schema: document is nil")
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return model.FormModel{}, errors.New("schema: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return model.FormModel{}, fmt.Errorf("schema: component %q not found", component)
	}

	src := ref.Value
	fields, err := Fields(src)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("schema: component %q: %w", component, err)
	}

	return model.FormModel{
		Name:        component,
		Description: src.Description,
		Fields:      fields,
	}, nil
}

// Components lists the schema names available in the document, sorted.
func Components(doc *openapi3.T) []string {
	if doc == nil || doc.Components == nil {
		return nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fields converts an object schema's properties into model fields.
func Fields(src *openapi3.Schema) ([]model.Field, error) {
	if src == nil {
		return nil, errors.New("schema is nil")
	}
	if len(src.Properties) == 0 {
		return nil, errors.New("schema has no properties")
	}

	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}

	var names []string
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := requiredRank(src.Required, names[i]), requiredRank(src.Required, names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})

	fields := make([]model.Field, 0, len(names))
	for _, name := range names {
		property := src.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		field, err := fieldFrom(name, property.Value, required[name])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// requiredRank keeps required properties first, in declaration order.
func requiredRank(requiredList []string, name string) int {
	for i, entry := range requiredList {
		if entry == name {
			return i
		}
	}
	return len(requiredList)
}

func fieldFrom(name string, src *openapi3.Schema, required bool) (model.Field, error) {
	field := model.Field{
		Name:     name,
		Label:    src.Title,
		HelpText: src.Description,
		Blank:    !required,
		Default:  src.Default,
		Pattern:  src.Pattern,
		Editable: true,
	}

	kind, err := kindFrom(src)
	if err != nil {
		return model.Field{}, err
	}
	field.Kind = kind

	if kind == model.KindManyToMany {
		field.Multiple = true
	}

	enumSource := src
	if kind == model.KindManyToMany && src.Items != nil && src.Items.Value != nil {
		enumSource = src.Items.Value
	}
	for _, option := range enumSource.Enum {
		value := fmt.Sprintf("%v", option)
		field.Choices = append(field.Choices, model.Choice{Value: value})
	}

	if src.Min != nil {
		field.MinValue = *src.Min
	}
	if src.Max != nil {
		field.MaxValue = *src.Max
	}
	if src.MaxLength != nil {
		field.MaxLength = int(*src.MaxLength)
	}

	applyOverrides(&field, src.Extensions)
	return field, nil
}

// kindFrom maps a JSON schema type/format pair onto a field kind. The
// x-dojoform kind override, when present, wins over the inference.
func kindFrom(src *openapi3.Schema) (model.FieldKind, error) {
	var primary string
	if src.Type != nil {
		for _, entry := range src.Type.Slice() {
			if entry != "null" {
				primary = entry
				break
			}
		}
	}

	switch primary {
	case "string":
		return stringKind(src.Format), nil
	case "integer":
		if src.Min != nil && *src.Min >= 0 {
			return model.KindPositiveInteger, nil
		}
		return model.KindInteger, nil
	case "number":
		if src.Format == "decimal" {
			return model.KindDecimal, nil
		}
		return model.KindFloat, nil
	case "boolean":
		if src.Nullable || (src.Type != nil && src.Type.Includes("null")) {
			return model.KindNullBoolean, nil
		}
		return model.KindBoolean, nil
	case "array":
		return model.KindManyToMany, nil
	case "":
		if len(src.Enum) > 0 {
			return model.KindChar, nil
		}
		return "", errors.New("missing type")
	default:
		return "", fmt.Errorf("unsupported type %q", primary)
	}
}

func stringKind(format string) model.FieldKind {
	switch format {
	case "email", "idn-email":
		return model.KindEmail
	case "uri", "url":
		return model.KindURL
	case "date":
		return model.KindDate
	case "date-time":
		return model.KindDateTime
	case "time":
		return model.KindTime
	case "ipv4", "ipv6":
		return model.KindIPAddress
	case "binary", "byte":
		return model.KindFile
	case "textarea":
		return model.KindText
	default:
		return model.KindChar
	}
}

// applyOverrides merges the x-dojoform vendor extension into the field.
func applyOverrides(field *model.Field, extensions map[string]any) {
	raw, ok := extensions[extensionNamespace]
	if !ok {
		return
	}
	overrides, ok := raw.(map[string]any)
	if !ok {
		return
	}

	if kind, ok := overrides["kind"].(string); ok && kind != "" {
		field.Kind = model.FieldKind(strings.TrimSpace(kind))
	}
	if label, ok := overrides["label"].(string); ok && label != "" {
		field.Label = label
	}
	if pk, ok := overrides["primaryKey"].(bool); ok {
		field.PrimaryKey = pk
	}
	if editable, ok := overrides["editable"].(bool); ok {
		field.Editable = editable
	}
	if auto, ok := overrides["autoCreated"].(bool); ok {
		field.AutoCreated = auto
	}
	if places, ok := overrides["decimalPlaces"]; ok {
		switch v := places.(type) {
		case int:
			field.DecimalPlaces = v
		case float64:
			field.DecimalPlaces = int(v)
		}
	}
	if widget, ok := overrides["widget"].(string); ok && widget != "" {
		if field.Metadata == nil {
			field.Metadata = make(map[string]string)
		}
		field.Metadata["widget"] = widget
	}
}
