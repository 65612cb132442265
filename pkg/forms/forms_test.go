package forms

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dojoform/pkg/attrs"
	"github.com/goliatone/go-dojoform/pkg/collector"
	"github.com/goliatone/go-dojoform/pkg/fieldmap"
	"github.com/goliatone/go-dojoform/pkg/model"
	"github.com/goliatone/go-dojoform/pkg/widgets"
)

func articleFields() []model.Field {
	return []model.Field{
		{Name: "title", Kind: model.KindChar, MaxLength: 120},
		{Name: "body", Kind: model.KindText, Blank: true},
		{Name: "pub_date", Kind: model.KindDateTime, HelpText: "Publication date"},
		{Name: "rating", Kind: model.KindPositiveInteger, MinValue: 0, MaxValue: 5, Blank: true},
		{Name: "status", Kind: model.KindChar, Choices: []model.Choice{
			{Value: "draft", Label: "Draft"},
			{Value: "live", Label: "Live"},
		}},
	}
}

func TestNew_BindsEveryField(t *testing.T) {
	form, err := New("article", articleFields())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(form.Fields) != 5 {
		t.Fatalf("bound %d fields, want 5", len(form.Fields))
	}

	title, _ := form.Field("title")
	if title.FormField != fieldmap.FormChar {
		t.Fatalf("title form field = %q", title.FormField)
	}
	if title.Widget.DojoType != "dijit.form.ValidationTextBox" {
		t.Fatalf("title widget = %q", title.Widget.DojoType)
	}
	if got := title.Extra[widgets.ExtraMaxLength]; got != 120 {
		t.Fatalf("title max_length extra = %v", got)
	}

	body, _ := form.Field("body")
	if body.Widget.Name != widgets.WidgetTextarea {
		t.Fatalf("body widget = %q, want the rule's textarea override", body.Widget.Name)
	}

	pubDate, _ := form.Field("pub_date")
	if pubDate.FormField != fieldmap.FormDateTime {
		t.Fatalf("pub_date form field = %q", pubDate.FormField)
	}
}

func TestNew_ChoiceFieldGetsSelectAndExactExtras(t *testing.T) {
	form, err := New("article", articleFields())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	status, _ := form.Field("status")
	if status.Widget.Name != widgets.WidgetFilteringSelect {
		t.Fatalf("status widget = %q", status.Widget.Name)
	}
	want := attrs.Extra{
		widgets.ExtraRequired: true,
		widgets.ExtraHelpText: "",
	}
	if diff := cmp.Diff(want, status.Extra); diff != "" {
		t.Fatalf("status extras mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_UnmappedKindFallsBack(t *testing.T) {
	form, err := New("odd", []model.Field{{Name: "geo", Kind: model.FieldKind("geometry")}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	geo := form.Fields[0]
	if !geo.Fallback {
		t.Fatal("expected fallback flag for unmapped kind")
	}
	if geo.Widget.Name != widgets.WidgetTextBox {
		t.Fatalf("fallback widget = %q", geo.Widget.Name)
	}
}

func TestNew_UnknownWidgetErrors(t *testing.T) {
	mapper := fieldmap.NewMapper(fieldmap.Rule{
		Kind:      model.KindChar,
		FormField: fieldmap.FormChar,
		Widget:    "not-registered",
	})
	_, err := New("broken", []model.Field{{Name: "title", Kind: model.KindChar}}, WithMapper(mapper))
	if err == nil {
		t.Fatal("expected error for unregistered widget")
	}
}

func TestRenderAttrs_FlowsThroughMixer(t *testing.T) {
	form, err := New("article", articleFields())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rating, _ := form.Field("rating")

	col := collector.New()
	bag := rating.RenderAttrs(attrs.Bag{"name": "rating"}, col)

	constraints, ok := bag["constraints"].(attrs.Bag)
	if !ok {
		t.Fatalf("constraints missing from bag: %v", bag)
	}
	if constraints["min"] != 0 || constraints["max"] != 5 {
		t.Fatalf("constraints = %v", constraints)
	}
	if got := bag["required"]; got != "false" {
		t.Fatalf("required = %v, want the false token", got)
	}
	if modules := col.Modules(); len(modules) == 0 || modules[0] != "dijit.form.NumberTextBox" {
		t.Fatalf("collected modules = %v", modules)
	}
}
