package widgets

import "github.com/goliatone/go-dojoform/pkg/config"

// Validation concern names carried from a model field into widget attributes.
// These are the keys of attrs.Extra bundles and of the field-attr map.
const (
	ExtraRequired      = "required"
	ExtraHelpText      = "help_text"
	ExtraMinValue      = "min_value"
	ExtraMaxValue      = "max_value"
	ExtraMaxLength     = "max_length"
	ExtraDecimalPlaces = "decimal_places"
	ExtraJSRegex       = "js_regex"
	ExtraMultiple      = "multiple"
)

// Built-in widget identifiers exposed by DefaultRegistry.
const (
	WidgetTextBox            = "textbox"
	WidgetPassword           = "password"
	WidgetHidden             = "hidden"
	WidgetFile               = "file"
	WidgetTextarea           = "textarea"
	WidgetDate               = "date"
	WidgetTime               = "time"
	WidgetDateTime           = "datetime"
	WidgetCheckbox           = "checkbox"
	WidgetFilteringSelect    = "filtering-select"
	WidgetNullBooleanSelect  = "null-boolean-select"
	WidgetMultiSelect        = "multi-select"
	WidgetRadio              = "radio"
	WidgetCheckboxMultiple   = "checkbox-multiple"
	WidgetEditor             = "editor"
	WidgetHorizontalSlider   = "horizontal-slider"
	WidgetVerticalSlider     = "vertical-slider"
	WidgetValidationTextBox  = "validation-textbox"
	WidgetValidationPassword = "validation-password"
	WidgetEmail              = "email"
	WidgetIPAddress          = "ip-address"
	WidgetURL                = "url"
	WidgetNumber             = "number"
	WidgetRangeBound         = "range-bound"
	WidgetNumberSpinner      = "number-spinner"
	WidgetRating             = "rating"
	WidgetDateAnim           = "date-anim"
	WidgetDropDownSelect     = "dropdown-select"
	WidgetCheckedMultiSelect = "checked-multi-select"
)

var validationExtras = []string{ExtraRequired, ExtraHelpText, ExtraJSRegex, ExtraMaxLength}
var temporalExtras = []string{ExtraRequired, ExtraHelpText, ExtraMinValue, ExtraMaxValue}
var numericExtras = []string{ExtraMinValue, ExtraMaxValue, ExtraRequired, ExtraHelpText, ExtraDecimalPlaces}

// DefaultRegistry installs the dijit/dojox widget catalog. The configuration
// decides version-dependent module requires: toolkits before 1.3 load radio
// buttons through dijit.form.CheckBox, sliders through dijit.form.Slider, and
// expose the validation regex generators under dojox.regexp instead of
// dojox.validate.regexp.
func DefaultRegistry(cfg config.Config) *Registry {
	reg := NewRegistry()
	legacy := cfg.VersionBefore("1.3")

	regexFunc := func(name string) string {
		if legacy {
			return "dojox.regexp." + name
		}
		return "dojox.validate.regexp." + name
	}

	sliderRequire := ""
	if legacy {
		sliderRequire = "dijit.form.Slider"
	}

	reg.MustRegister(WidgetTextBox, Descriptor{
		DojoType:        "dijit.form.TextBox",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: []string{ExtraMaxLength},
	})
	reg.MustRegister(WidgetPassword, Descriptor{
		DojoType:        "dijit.form.TextBox",
		Element:         ElementInput,
		InputType:       "password",
		ValidExtraAttrs: []string{ExtraMaxLength},
	})
	// hidden inputs keep a dojoType so dijit.form.Form can read their values
	reg.MustRegister(WidgetHidden, Descriptor{
		DojoType:  "dijit.form.TextBox",
		Element:   ElementInput,
		InputType: "hidden",
	})
	reg.MustRegister(WidgetFile, Descriptor{
		DojoType:    "dojox.form.FileInput",
		Element:     ElementInput,
		InputType:   "file",
		Stylesheets: []string{cfg.AssetURL("dojox/form/resources/FileInput.css")},
	})
	reg.MustRegister(WidgetTextarea, Descriptor{
		DojoType: "dijit.form.Textarea",
		Element:  ElementTextarea,
	})
	reg.MustRegister(WidgetDate, Descriptor{
		DojoType:        "dijit.form.DateTextBox",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: temporalExtras,
		ValueFormat:     FormatDate,
	})
	reg.MustRegister(WidgetTime, Descriptor{
		DojoType:        "dijit.form.TimeTextBox",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: temporalExtras,
		ValueFormat:     FormatTime,
	})
	reg.MustRegister(WidgetDateTime, Descriptor{
		DojoType:        "dijit.form.DateTextBox",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: temporalExtras,
		ValueFormat:     FormatDateTime,
	})
	reg.MustRegister(WidgetCheckbox, Descriptor{
		DojoType:  "dijit.form.CheckBox",
		Element:   ElementInput,
		InputType: "checkbox",
	})
	reg.MustRegister(WidgetFilteringSelect, Descriptor{
		DojoType:        "dijit.form.FilteringSelect",
		Element:         ElementSelect,
		ValidExtraAttrs: []string{ExtraRequired, ExtraHelpText},
	})
	reg.MustRegister(WidgetNullBooleanSelect, Descriptor{
		DojoType: "dijit.form.FilteringSelect",
		Element:  ElementSelect,
	})
	reg.MustRegister(WidgetMultiSelect, Descriptor{
		DojoType: "dijit.form.MultiSelect",
		Element:  ElementSelect,
		Multiple: true,
	})
	radio := Descriptor{
		DojoType:  "dijit.form.RadioButton",
		Element:   ElementInput,
		InputType: "radio",
	}
	if legacy {
		radio.AltRequire = "dijit.form.CheckBox"
	}
	reg.MustRegister(WidgetRadio, radio)
	reg.MustRegister(WidgetCheckboxMultiple, Descriptor{
		DojoType:  "dijit.form.CheckBox",
		Element:   ElementInput,
		InputType: "checkbox",
		Multiple:  true,
	})
	// dijit.Editor renders in a div (see dijit/_editor/RichText.js)
	reg.MustRegister(WidgetEditor, Descriptor{
		DojoType: "dijit.Editor",
		Element:  ElementDiv,
	})
	reg.MustRegister(WidgetHorizontalSlider, Descriptor{
		DojoType:   "dijit.form.HorizontalSlider",
		AltRequire: sliderRequire,
		Element:    ElementInput,
		InputType:  "text",
	})
	reg.MustRegister(WidgetVerticalSlider, Descriptor{
		DojoType:   "dijit.form.VerticalSlider",
		AltRequire: sliderRequire,
		Element:    ElementInput,
		InputType:  "text",
	})
	reg.MustRegister(WidgetValidationTextBox, Descriptor{
		DojoType:        "dijit.form.ValidationTextBox",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: validationExtras,
	})
	reg.MustRegister(WidgetValidationPassword, Descriptor{
		DojoType:        "dijit.form.ValidationTextBox",
		Element:         ElementInput,
		InputType:       "password",
		ValidExtraAttrs: validationExtras,
	})
	reg.MustRegister(WidgetEmail, Descriptor{
		DojoType:        "dijit.form.ValidationTextBox",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: validationExtras,
		ExtraRequires:   []string{"dojox.validate.regexp"},
		RegexFunc:       regexFunc("emailAddress"),
	})
	reg.MustRegister(WidgetIPAddress, Descriptor{
		DojoType:        "dijit.form.ValidationTextBox",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: validationExtras,
		ExtraRequires:   []string{"dojox.validate.regexp"},
		RegexFunc:       regexFunc("ipAddress"),
	})
	reg.MustRegister(WidgetURL, Descriptor{
		DojoType:        "dijit.form.ValidationTextBox",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: validationExtras,
		ExtraRequires:   []string{"dojox.validate.regexp"},
		RegexFunc:       regexFunc("url"),
	})
	reg.MustRegister(WidgetNumber, Descriptor{
		DojoType:        "dijit.form.NumberTextBox",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: numericExtras,
	})
	reg.MustRegister(WidgetRangeBound, Descriptor{
		DojoType:        "dijit.form.RangeBoundTextBox",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: numericExtras,
	})
	reg.MustRegister(WidgetNumberSpinner, Descriptor{
		DojoType:        "dijit.form.NumberSpinner",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: numericExtras,
	})
	reg.MustRegister(WidgetRating, Descriptor{
		DojoType:        "dojox.form.Rating",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: []string{ExtraMaxValue},
		AttrMap:         map[string]string{ExtraMaxValue: "numStars"},
		Stylesheets:     []string{cfg.AssetURL("dojox/form/resources/Rating.css")},
	})
	reg.MustRegister(WidgetDateAnim, Descriptor{
		DojoType:        "dojox.form.DateTextBox",
		Element:         ElementInput,
		InputType:       "text",
		ValidExtraAttrs: temporalExtras,
		ValueFormat:     FormatDate,
		Stylesheets:     []string{cfg.AssetURL("dojox/widget/Calendar/Calendar.css")},
	})
	reg.MustRegister(WidgetDropDownSelect, Descriptor{
		DojoType:        "dojox.form.DropDownSelect",
		Element:         ElementSelect,
		ValidExtraAttrs: []string{ExtraRequired, ExtraHelpText},
		Stylesheets:     []string{cfg.AssetURL("dojox/form/resources/DropDownSelect.css")},
	})
	reg.MustRegister(WidgetCheckedMultiSelect, Descriptor{
		DojoType:        "dojox.form.CheckedMultiSelect",
		Element:         ElementSelect,
		Multiple:        true,
		ValidExtraAttrs: []string{ExtraRequired, ExtraHelpText},
		Stylesheets:     []string{cfg.AssetURL("dojox/form/resources/CheckedMultiSelect.css")},
	})

	return reg
}
