package fieldmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dojoform/pkg/model"
	"github.com/goliatone/go-dojoform/pkg/widgets"
)

func TestSelect_KindResolution(t *testing.T) {
	mapper := NewMapper()

	cases := []struct {
		name      string
		kind      model.FieldKind
		formField FormFieldType
		widget    string
	}{
		{name: "char", kind: model.KindChar, formField: FormChar},
		{name: "text gets the textarea widget", kind: model.KindText, formField: FormChar, widget: widgets.WidgetTextarea},
		{name: "email before char", kind: model.KindEmail, formField: FormEmail},
		{name: "slug before char", kind: model.KindSlug, formField: FormSlug},
		{name: "datetime before date", kind: model.KindDateTime, formField: FormDateTime},
		{name: "date", kind: model.KindDate, formField: FormDate},
		{name: "time", kind: model.KindTime, formField: FormTime},
		{name: "integer", kind: model.KindInteger, formField: FormInteger},
		{name: "positive small integer", kind: model.KindPositiveSmallInteger, formField: FormInteger},
		{name: "auto resolves through integer", kind: model.KindAuto, formField: FormInteger},
		{name: "decimal", kind: model.KindDecimal, formField: FormDecimal},
		{name: "null boolean maps to char", kind: model.KindNullBoolean, formField: FormChar},
		{name: "boolean", kind: model.KindBoolean, formField: FormBoolean},
		{name: "image before file", kind: model.KindImage, formField: FormImage},
		{name: "foreign key", kind: model.KindForeignKey, formField: FormModelChoice},
		{name: "one-to-one through foreign key", kind: model.KindOneToOne, formField: FormModelChoice},
		{name: "many-to-many", kind: model.KindManyToMany, formField: FormModelMultipleChoice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapping, ok := mapper.Select(model.Field{Name: "f", Kind: tc.kind})
			if !ok {
				t.Fatalf("kind %q did not match any rule", tc.kind)
			}
			if mapping.FormField != tc.formField {
				t.Fatalf("form field = %q, want %q", mapping.FormField, tc.formField)
			}
			if mapping.Widget != tc.widget {
				t.Fatalf("widget = %q, want %q", mapping.Widget, tc.widget)
			}
		})
	}
}

func TestSelect_UnknownKindSignalsNoOverride(t *testing.T) {
	mapper := NewMapper()
	if _, ok := mapper.Select(model.Field{Kind: model.FieldKind("geometry")}); ok {
		t.Fatal("unknown kind matched a rule")
	}
}

// Every rule for a specialized kind must precede the rule for the kind it
// specializes; otherwise the base rule captures the specialized fields first.
func TestDefaultRules_SpecializedBeforeBase(t *testing.T) {
	rules := DefaultRules()
	position := make(map[model.FieldKind]int, len(rules))
	for idx, rule := range rules {
		if _, seen := position[rule.Kind]; !seen {
			position[rule.Kind] = idx
		}
	}

	for kind, pos := range position {
		for parent := kind.Parent(); parent != ""; parent = parent.Parent() {
			parentPos, ok := position[parent]
			if !ok {
				continue
			}
			if parentPos < pos {
				t.Errorf("rule for %q (index %d) is shadowed by its base %q (index %d)", kind, pos, parent, parentPos)
			}
		}
	}
}

func TestSelect_OrderDecides(t *testing.T) {
	// with the base rule first, a datetime field resolves too generically
	misordered := NewMapper(
		Rule{Kind: model.KindDate, FormField: FormDate},
		Rule{Kind: model.KindDateTime, FormField: FormDateTime},
	)
	mapping, ok := misordered.Select(model.Field{Kind: model.KindDateTime})
	if !ok || mapping.FormField != FormDate {
		t.Fatalf("expected the misordered list to resolve datetime as %q, got %q", FormDate, mapping.FormField)
	}

	ordered := NewMapper(
		Rule{Kind: model.KindDateTime, FormField: FormDateTime},
		Rule{Kind: model.KindDate, FormField: FormDate},
	)
	mapping, ok = ordered.Select(model.Field{Kind: model.KindDateTime})
	if !ok || mapping.FormField != FormDateTime {
		t.Fatalf("ordered list resolved datetime as %q", mapping.FormField)
	}
}

func TestSelect_ChoicesAlwaysWinWidget(t *testing.T) {
	mapper := NewMapper()
	field := model.Field{
		Name:     "status",
		Kind:     model.KindText, // rule carries the textarea widget
		HelpText: "Publication status",
		Choices: []model.Choice{
			{Value: "draft", Label: "Draft"},
			{Value: "live", Label: "Live"},
		},
	}

	mapping, ok := mapper.Select(field)
	if !ok {
		t.Fatal("choice field did not match")
	}
	if mapping.Widget != widgets.WidgetFilteringSelect {
		t.Fatalf("widget = %q, want %q", mapping.Widget, widgets.WidgetFilteringSelect)
	}

	want := map[string]any{
		widgets.ExtraRequired: true,
		widgets.ExtraHelpText: "Publication status",
	}
	if diff := cmp.Diff(want, map[string]any(mapping.Extra)); diff != "" {
		t.Fatalf("choice extras mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect_ChoicesRespectBlank(t *testing.T) {
	mapper := NewMapper()
	field := model.Field{
		Name:    "category",
		Kind:    model.KindChar,
		Blank:   true,
		Choices: []model.Choice{{Value: "a"}},
	}

	mapping, _ := mapper.Select(field)
	if got := mapping.Extra[widgets.ExtraRequired]; got != false {
		t.Fatalf("required extra = %v, want false for blank field", got)
	}
}
