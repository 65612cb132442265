package collector

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdd_OrderAndDedup(t *testing.T) {
	col := New()
	col.Add("dijit.form.TextBox")
	col.Add("dijit.form.DateTextBox")
	col.Add("dijit.form.TextBox")
	col.Add("")
	col.Add("dojox.validate.regexp")

	want := []string{
		"dijit.form.TextBox",
		"dijit.form.DateTextBox",
		"dojox.validate.regexp",
	}
	if diff := cmp.Diff(want, col.Modules()); diff != "" {
		t.Fatalf("modules mismatch (-want +got):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	col := New()
	col.Add("dijit.form.CheckBox")
	col.Reset()
	if got := col.Modules(); got != nil {
		t.Fatalf("expected empty collector after reset, got %v", got)
	}
	col.Add("dijit.form.CheckBox")
	if len(col.Modules()) != 1 {
		t.Fatalf("collector unusable after reset")
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var col *Collector
	col.Add("dijit.form.TextBox")
	if got := col.Modules(); got != nil {
		t.Fatalf("nil collector returned modules: %v", got)
	}
	col.Reset()
}

func TestContextRoundTrip(t *testing.T) {
	col := New()
	ctx := NewContext(context.Background(), col)
	if got := FromContext(ctx); got != col {
		t.Fatalf("FromContext returned %v, want the attached collector", got)
	}
	if got := FromContext(context.Background()); got != nil {
		t.Fatalf("expected nil collector from bare context, got %v", got)
	}
}
