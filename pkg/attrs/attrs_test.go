package attrs

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dojoform/pkg/collector"
	"github.com/goliatone/go-dojoform/pkg/config"
	"github.com/goliatone/go-dojoform/pkg/widgets"
)

func descriptor(t *testing.T, name string) widgets.Descriptor {
	t.Helper()
	desc, ok := widgets.DefaultRegistry(config.Default()).Descriptor(name)
	if !ok {
		t.Fatalf("widget %q not registered", name)
	}
	return desc
}

func TestBuild_DottedPathMerge(t *testing.T) {
	desc := descriptor(t, widgets.WidgetNumber)
	extra := Extra{
		widgets.ExtraMinValue: 5,
		widgets.ExtraMaxValue: 10,
	}

	bag := Build(desc, nil, extra, nil)

	want := Bag{
		"dojoType": "dijit.form.NumberTextBox",
		"constraints": Bag{
			"min": 5,
			"max": 10,
		},
	}
	if diff := cmp.Diff(want, bag); diff != "" {
		t.Fatalf("bag mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_LeafFirstWriterWins(t *testing.T) {
	desc := descriptor(t, widgets.WidgetNumber)
	base := Bag{"constraints": Bag{"min": 1}}
	extra := Extra{widgets.ExtraMinValue: 5, widgets.ExtraMaxValue: 10}

	bag := Build(desc, base, extra, nil)

	constraints := bag["constraints"].(Bag)
	if got := constraints["min"]; got != 1 {
		t.Fatalf("existing leaf overwritten: min = %v, want 1", got)
	}
	if got := constraints["max"]; got != 10 {
		t.Fatalf("sibling leaf not merged: max = %v, want 10", got)
	}
}

func TestBuild_AllowListFiltersConcerns(t *testing.T) {
	desc := descriptor(t, widgets.WidgetTextBox)
	extra := Extra{
		widgets.ExtraMaxLength: 50,
		widgets.ExtraMinValue:  3,
		widgets.ExtraHelpText:  "ignored for plain text boxes",
	}

	bag := Build(desc, nil, extra, nil)

	if got := bag["maxlength"]; got != 50 {
		t.Fatalf("maxlength = %v, want 50", got)
	}
	if _, exists := bag["constraints"]; exists {
		t.Fatal("min_value leaked past the allow list")
	}
	if _, exists := bag["promptMessage"]; exists {
		t.Fatal("help_text leaked past the allow list")
	}
}

func TestBuild_MissingMappingsAreSkipped(t *testing.T) {
	desc := descriptor(t, widgets.WidgetDate)
	// no min_value in extras, and an unknown concern in the allow list must
	// both fall through without error
	desc.ValidExtraAttrs = append(desc.ValidExtraAttrs, "unmapped_concern")
	extra := Extra{
		widgets.ExtraMaxValue: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		"unmapped_concern":    "value",
	}

	bag := Build(desc, nil, extra, nil)

	constraints, ok := bag["constraints"].(Bag)
	if !ok {
		t.Fatalf("constraints missing: %v", bag)
	}
	if got := constraints["max"]; got != "2025-01-01" {
		t.Fatalf("max = %v, want 2025-01-01", got)
	}
	if _, exists := constraints["min"]; exists {
		t.Fatal("absent concern produced a leaf")
	}
}

func TestBuild_TemporalSerialization(t *testing.T) {
	stamp := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		widget string
		want   string
	}{
		{name: "pure date target", widget: widgets.WidgetDate, want: "2024-03-05"},
		{name: "pure time target", widget: widgets.WidgetTime, want: "T00:00:00"},
		{name: "combined target", widget: widgets.WidgetDateTime, want: "2024-03-05T00:00:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			desc := descriptor(t, tc.widget)
			bag := Build(desc, nil, Extra{widgets.ExtraMinValue: stamp}, nil)
			constraints := bag["constraints"].(Bag)
			if got := constraints["min"]; got != tc.want {
				t.Fatalf("serialized value = %v, want %q", got, tc.want)
			}
		})
	}
}

func TestBuild_BooleanTokens(t *testing.T) {
	desc := descriptor(t, widgets.WidgetFilteringSelect)
	base := Bag{"disabled": false, "nested": Bag{"flag": true}}
	extra := Extra{widgets.ExtraRequired: true}

	bag := Build(desc, base, extra, nil)

	if got := bag["required"]; got != "true" {
		t.Fatalf("required = %v (%T), want the token \"true\"", got, got)
	}
	if got := bag["disabled"]; got != "false" {
		t.Fatalf("disabled = %v, want the token \"false\"", got)
	}
	if got := bag["nested"].(Bag)["flag"]; got != "true" {
		t.Fatalf("nested flag = %v, want the token \"true\"", got)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	desc := descriptor(t, widgets.WidgetNumber)
	base := Bag{"name": "quantity"}
	extra := Extra{widgets.ExtraMinValue: 1, widgets.ExtraRequired: true}

	first := Build(desc, base, extra, nil)
	second := Build(desc, base, extra, nil)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated builds differ (-first +second):\n%s", diff)
	}
	if _, polluted := base["constraints"]; polluted {
		t.Fatal("base bag mutated by Build")
	}
}

func TestBuild_CollectsModules(t *testing.T) {
	col := collector.New()
	email := descriptor(t, widgets.WidgetEmail)
	text := descriptor(t, widgets.WidgetTextBox)

	Build(email, nil, nil, col)
	Build(text, nil, nil, col)
	Build(text, nil, nil, col)

	want := []string{
		"dijit.form.ValidationTextBox",
		"dojox.validate.regexp",
		"dijit.form.TextBox",
	}
	if diff := cmp.Diff(want, col.Modules()); diff != "" {
		t.Fatalf("collected modules mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_RegexFuncAttached(t *testing.T) {
	desc := descriptor(t, widgets.WidgetEmail)
	bag := Build(desc, nil, nil, nil)
	if got := bag["regExpGen"]; got != "dojox.validate.regexp.emailAddress" {
		t.Fatalf("regExpGen = %v", got)
	}
}
