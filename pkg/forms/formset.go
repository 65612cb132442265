package forms

import (
	"fmt"

	"github.com/goliatone/go-dojoform/pkg/attrs"
	"github.com/goliatone/go-dojoform/pkg/fieldmap"
	"github.com/goliatone/go-dojoform/pkg/model"
	"github.com/goliatone/go-dojoform/pkg/widgets"
)

// FormSet holds the per-row forms of a repeated model form. Each row carries
// a hidden key field when the model's key cannot be edited directly; the
// hidden field always sits after the row's visible fields.
type FormSet struct {
	Prefix string
	Forms  []*Form
}

// NewFormSet builds rows of forms over the same field descriptors. When key
// is non-nil and not directly editable (not editable, auto-created, or a
// parent link), every row gets a hidden key field appended after the row's
// other fields.
func NewFormSet(prefix string, fields []model.Field, rows int, key *model.Field, options ...Option) (*FormSet, error) {
	if rows < 0 {
		return nil, fmt.Errorf("forms: formset %q: negative row count %d", prefix, rows)
	}
	b := newBuilder(options)

	set := &FormSet{Prefix: prefix, Forms: make([]*Form, 0, rows)}
	for row := 0; row < rows; row++ {
		form, err := buildRow(b, rowName(prefix, row), fields)
		if err != nil {
			return nil, err
		}
		if key != nil && needsHiddenKey(*key, fields) {
			form.Fields = append(form.Fields, hiddenKeyField(b, *key))
		}
		set.Forms = append(set.Forms, form)
	}
	return set, nil
}

// NewInlineFormSet builds rows for models edited inline under a parent
// record. On top of the hidden primary key every row receives a hidden
// foreign key field pointing at the parent, appended last.
func NewInlineFormSet(prefix string, fields []model.Field, rows int, key *model.Field, parentKey model.Field, options ...Option) (*FormSet, error) {
	set, err := NewFormSet(prefix, fields, rows, key, options...)
	if err != nil {
		return nil, err
	}
	b := newBuilder(options)
	for _, form := range set.Forms {
		form.Fields = append(form.Fields, hiddenKeyField(b, parentKey))
	}
	return set, nil
}

func buildRow(b *builder, name string, fields []model.Field) (*Form, error) {
	form := &Form{Name: name, Fields: make([]BoundField, 0, len(fields))}
	for _, field := range fields {
		bound, err := b.bind(field)
		if err != nil {
			return nil, fmt.Errorf("forms: formset row %q, field %q: %w", name, field.Name, err)
		}
		form.Fields = append(form.Fields, bound)
	}
	return form, nil
}

// needsHiddenKey decides whether the row needs a hidden key injected: either
// the key cannot be edited directly, or it is absent from the row's fields.
func needsHiddenKey(key model.Field, fields []model.Field) bool {
	if !keyIsEditable(key) {
		return true
	}
	for _, field := range fields {
		if field.Name == key.Name {
			return false
		}
	}
	return true
}

func keyIsEditable(key model.Field) bool {
	return key.Editable && !key.AutoCreated && !key.ParentLink
}

// hiddenKeyField binds a key descriptor to the hidden widget. Keys relate to
// records, so they carry the model-choice form field type; the row never
// requires them because new rows have no key yet.
func hiddenKeyField(b *builder, key model.Field) BoundField {
	desc, _ := b.registry.Descriptor(widgets.WidgetHidden)
	return BoundField{
		Field:     key,
		FormField: fieldmap.FormModelChoice,
		Widget:    desc,
		Extra:     attrs.Extra{widgets.ExtraRequired: false},
	}
}

func rowName(prefix string, row int) string {
	return fmt.Sprintf("%s-%d", prefix, row)
}
