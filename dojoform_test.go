package dojoform

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-dojoform/pkg/config"
	"github.com/goliatone/go-dojoform/pkg/model"
	"github.com/goliatone/go-dojoform/pkg/schema"
)

var articleFields = []model.Field{
	{Name: "title", Kind: model.KindChar, MaxLength: 120},
	{Name: "body", Kind: model.KindText, Blank: true},
	{Name: "pub_date", Kind: model.KindDateTime},
}

func TestGenerate_FromFields(t *testing.T) {
	gen := New()

	output, err := gen.Generate(context.Background(), Request{
		Fields:   articleFields,
		FormName: "article",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	html := string(output)
	for _, want := range []string{
		`<form name="article"`,
		`dojoType="dijit.form.Form"`,
		`dojoType="dijit.form.ValidationTextBox"`,
		`dojo.require("dijit.form.DateTextBox");`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %s\n%s", want, html)
		}
	}
}

func TestGenerate_FromSchemaComponent(t *testing.T) {
	const doc = `
openapi: 3.0.3
info:
  title: Articles
  version: "1.0"
paths: {}
components:
  schemas:
    Article:
      type: object
      required: [title]
      properties:
        title:
          type: string
          maxLength: 120
        pub_date:
          type: string
          format: date
`
	loader := schema.NewLoader(schema.LoaderOptions{})
	parsed, err := loader.LoadData(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("LoadData: %v", err)
	}

	gen := New()
	output, err := gen.Generate(context.Background(), Request{
		Document:  parsed,
		Component: "Article",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, `<form name="Article"`) {
		t.Errorf("form name not derived from component:\n%s", html)
	}
	if !strings.Contains(html, `maxlength="120"`) {
		t.Errorf("schema max length not carried through:\n%s", html)
	}
}

func TestGenerate_UnknownRenderer(t *testing.T) {
	gen := New()

	_, err := gen.Generate(context.Background(), Request{
		Fields:   articleFields,
		Renderer: "carrier-pigeon",
	})
	if err == nil || !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestGenerate_RequiresFieldsOrComponent(t *testing.T) {
	gen := New()

	if _, err := gen.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error for empty request")
	}
}

func TestNew_ConfigDrivesTheme(t *testing.T) {
	cfg := config.Default()
	cfg.Theme = "tundra"
	gen := New(WithConfig(cfg))

	output, err := gen.Generate(context.Background(), Request{
		Fields:   articleFields,
		FormName: "article",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(string(output), `class="tundra"`) {
		t.Errorf("theme not applied:\n%s", output)
	}
}
