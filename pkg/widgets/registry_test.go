package widgets

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dojoform/pkg/config"
)

func TestDefaultRegistry_Catalog(t *testing.T) {
	reg := DefaultRegistry(config.Default())

	cases := []struct {
		name     string
		widget   string
		dojoType string
		extras   []string
	}{
		{
			name:     "textbox maps max_length only",
			widget:   WidgetTextBox,
			dojoType: "dijit.form.TextBox",
			extras:   []string{ExtraMaxLength},
		},
		{
			name:     "date accepts bounds and prompt",
			widget:   WidgetDate,
			dojoType: "dijit.form.DateTextBox",
			extras:   []string{ExtraRequired, ExtraHelpText, ExtraMinValue, ExtraMaxValue},
		},
		{
			name:     "filtering select accepts required and help text",
			widget:   WidgetFilteringSelect,
			dojoType: "dijit.form.FilteringSelect",
			extras:   []string{ExtraRequired, ExtraHelpText},
		},
		{
			name:     "number accepts numeric constraints",
			widget:   WidgetNumber,
			dojoType: "dijit.form.NumberTextBox",
			extras:   []string{ExtraMinValue, ExtraMaxValue, ExtraRequired, ExtraHelpText, ExtraDecimalPlaces},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			desc, ok := reg.Descriptor(tc.widget)
			if !ok {
				t.Fatalf("widget %q not registered", tc.widget)
			}
			if desc.DojoType != tc.dojoType {
				t.Fatalf("dojo type = %q, want %q", desc.DojoType, tc.dojoType)
			}
			if diff := cmp.Diff(tc.extras, desc.ValidExtraAttrs); diff != "" {
				t.Fatalf("valid extra attrs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaultRegistry_RatingOverridesAttrMap(t *testing.T) {
	reg := DefaultRegistry(config.Default())
	desc, ok := reg.Descriptor(WidgetRating)
	if !ok {
		t.Fatal("rating widget not registered")
	}
	if got := desc.AttrMap[ExtraMaxValue]; got != "numStars" {
		t.Fatalf("rating attr map for max_value = %q, want numStars", got)
	}
	if !desc.AcceptsExtraAttr(ExtraMaxValue) || desc.AcceptsExtraAttr(ExtraMinValue) {
		t.Fatalf("rating allow list wrong: %v", desc.ValidExtraAttrs)
	}
}

func TestDefaultRegistry_LegacyRequires(t *testing.T) {
	legacy := DefaultRegistry(config.Config{Version: "1.2", BaseURL: config.DefaultBaseURL})
	modern := DefaultRegistry(config.Default())

	radio, _ := legacy.Descriptor(WidgetRadio)
	if got := radio.Requires(); len(got) == 0 || got[0] != "dijit.form.CheckBox" {
		t.Fatalf("legacy radio requires %v, want dijit.form.CheckBox first", got)
	}
	radio, _ = modern.Descriptor(WidgetRadio)
	if got := radio.Requires(); len(got) == 0 || got[0] != "dijit.form.RadioButton" {
		t.Fatalf("modern radio requires %v, want dijit.form.RadioButton first", got)
	}

	email, _ := legacy.Descriptor(WidgetEmail)
	if email.RegexFunc != "dojox.regexp.emailAddress" {
		t.Fatalf("legacy email regex func = %q", email.RegexFunc)
	}
	email, _ = modern.Descriptor(WidgetEmail)
	if email.RegexFunc != "dojox.validate.regexp.emailAddress" {
		t.Fatalf("modern email regex func = %q", email.RegexFunc)
	}
	want := []string{"dijit.form.ValidationTextBox", "dojox.validate.regexp"}
	if diff := cmp.Diff(want, email.Requires()); diff != "" {
		t.Fatalf("email requires mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_CloneIsolation(t *testing.T) {
	reg := DefaultRegistry(config.Default())
	clone := reg.Clone()

	clone.MustRegister(WidgetTextBox, Descriptor{
		DojoType: "custom.TextBox",
		Element:  ElementInput,
	})

	original, _ := reg.Descriptor(WidgetTextBox)
	if original.DojoType != "dijit.form.TextBox" {
		t.Fatalf("clone mutation leaked into source registry: %q", original.DojoType)
	}
}

func TestRegistry_Stylesheets(t *testing.T) {
	reg := DefaultRegistry(config.Default())
	sheets := reg.Stylesheets([]string{WidgetRating, WidgetFile, WidgetRating, "unknown"})
	want := []string{
		config.Default().AssetURL("dojox/form/resources/Rating.css"),
		config.Default().AssetURL("dojox/form/resources/FileInput.css"),
	}
	if diff := cmp.Diff(want, sheets); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
}
