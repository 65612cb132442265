// Package fieldmap selects the form field type and default widget for a
// model field descriptor. Selection walks an ordered rule list top-down and
// stops at the first rule whose kind the field's kind is-a; a field matching
// no rule signals "no override" and the caller falls back to its own default
// construction. Rule order is load-bearing: a rule for a specialized kind
// must precede the rule for its base kind, otherwise the base rule shadows
// it (datetime before date, text before char, the positive integer variants
// before integer).
package fieldmap

import (
	"github.com/goliatone/go-dojoform/pkg/attrs"
	"github.com/goliatone/go-dojoform/pkg/model"
	"github.com/goliatone/go-dojoform/pkg/widgets"
)

// FormFieldType identifies the user-facing field abstraction a model field
// maps to.
type FormFieldType string

const (
	FormChar                FormFieldType = "CharField"
	FormInteger             FormFieldType = "IntegerField"
	FormFloat               FormFieldType = "FloatField"
	FormDecimal             FormFieldType = "DecimalField"
	FormBoolean             FormFieldType = "BooleanField"
	FormDate                FormFieldType = "DateField"
	FormTime                FormFieldType = "TimeField"
	FormDateTime            FormFieldType = "DateTimeField"
	FormEmail               FormFieldType = "EmailField"
	FormURL                 FormFieldType = "URLField"
	FormIPAddress           FormFieldType = "IPAddressField"
	FormSlug                FormFieldType = "SlugField"
	FormFile                FormFieldType = "FileField"
	FormImage               FormFieldType = "ImageField"
	FormFilePath            FormFieldType = "FilePathField"
	FormModelChoice         FormFieldType = "ModelChoiceField"
	FormModelMultipleChoice FormFieldType = "ModelMultipleChoiceField"
)

// Rule maps a model field kind onto a form field type with an optional
// widget override. The widget name refers to the widgets registry; an empty
// name means the form field type's default widget applies.
type Rule struct {
	Kind      model.FieldKind
	FormField FormFieldType
	Widget    string
}

// Mapping is the outcome of rule selection: the form field type, the widget
// to instantiate (empty means "form field default"), and the extra
// validation attributes that must flow into the attribute mixer for
// choice-capable widgets.
type Mapping struct {
	FormField FormFieldType
	Widget    string
	Extra     attrs.Extra
}

// DefaultRules returns the stock rule list. Specialized kinds sit before
// their base kinds; the char rule closes the list because most textual kinds
// specialize it.
func DefaultRules() []Rule {
	return []Rule{
		{Kind: model.KindCommaSeparatedInteger, FormField: FormChar},
		{Kind: model.KindDateTime, FormField: FormDateTime},
		{Kind: model.KindDate, FormField: FormDate},
		{Kind: model.KindDecimal, FormField: FormDecimal},
		{Kind: model.KindEmail, FormField: FormEmail},
		{Kind: model.KindFilePath, FormField: FormFilePath},
		{Kind: model.KindFloat, FormField: FormFloat},
		{Kind: model.KindForeignKey, FormField: FormModelChoice},
		{Kind: model.KindImage, FormField: FormImage},
		{Kind: model.KindFile, FormField: FormFile},
		{Kind: model.KindIPAddress, FormField: FormIPAddress},
		{Kind: model.KindManyToMany, FormField: FormModelMultipleChoice},
		{Kind: model.KindNullBoolean, FormField: FormChar},
		{Kind: model.KindBoolean, FormField: FormBoolean},
		{Kind: model.KindPositiveSmallInteger, FormField: FormInteger},
		{Kind: model.KindPositiveInteger, FormField: FormInteger},
		{Kind: model.KindSlug, FormField: FormSlug},
		{Kind: model.KindSmallInteger, FormField: FormInteger},
		{Kind: model.KindInteger, FormField: FormInteger},
		{Kind: model.KindTime, FormField: FormTime},
		{Kind: model.KindURL, FormField: FormURL},
		{Kind: model.KindText, FormField: FormChar, Widget: widgets.WidgetTextarea},
		{Kind: model.KindChar, FormField: FormChar},
	}
}

// defaultWidgets names the widget each form field type instantiates when the
// matched rule carries no override.
var defaultWidgets = map[FormFieldType]string{
	FormChar:                widgets.WidgetValidationTextBox,
	FormInteger:             widgets.WidgetNumber,
	FormFloat:               widgets.WidgetNumber,
	FormDecimal:             widgets.WidgetNumber,
	FormBoolean:             widgets.WidgetCheckbox,
	FormDate:                widgets.WidgetDate,
	FormTime:                widgets.WidgetTime,
	FormDateTime:            widgets.WidgetDateTime,
	FormEmail:               widgets.WidgetEmail,
	FormURL:                 widgets.WidgetURL,
	FormIPAddress:           widgets.WidgetIPAddress,
	FormSlug:                widgets.WidgetValidationTextBox,
	FormFile:                widgets.WidgetFile,
	FormImage:               widgets.WidgetFile,
	FormFilePath:            widgets.WidgetFilteringSelect,
	FormModelChoice:         widgets.WidgetFilteringSelect,
	FormModelMultipleChoice: widgets.WidgetMultiSelect,
}

// DefaultWidgetFor returns the stock widget for a form field type.
func DefaultWidgetFor(formField FormFieldType) string {
	return defaultWidgets[formField]
}

// Mapper resolves model fields against an ordered rule list.
type Mapper struct {
	rules []Rule
}

// NewMapper builds a mapper over the given rules; with none supplied the
// default list applies. Rules are evaluated in the order given.
func NewMapper(rules ...Rule) *Mapper {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Mapper{rules: rules}
}

// Select returns the mapping for the first rule matching the field's kind.
// The boolean result is false when no rule matches, which callers treat as
// "use the framework default" rather than an error.
//
// A field carrying choices always maps to the filtering select widget, with
// exactly the required and help_text concerns bundled for the attribute
// mixer; any widget named by the matched rule is ignored in that case.
func (m *Mapper) Select(field model.Field) (Mapping, bool) {
	for _, rule := range m.rules {
		if !field.Kind.IsA(rule.Kind) {
			continue
		}
		mapping := Mapping{
			FormField: rule.FormField,
			Widget:    rule.Widget,
		}
		if field.HasChoices() {
			mapping.Widget = widgets.WidgetFilteringSelect
			mapping.Extra = attrs.Extra{
				widgets.ExtraRequired: field.Required(),
				widgets.ExtraHelpText: field.HelpText,
			}
		}
		return mapping, true
	}
	return Mapping{}, false
}

// Rules exposes a copy of the mapper's rule list, mainly for diagnostics and
// ordering tests.
func (m *Mapper) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}
