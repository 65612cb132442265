package model

// FieldKind identifies the storage-side type of a model field descriptor.
type FieldKind string

const (
	KindAuto                  FieldKind = "auto"
	KindChar                  FieldKind = "char"
	KindText                  FieldKind = "text"
	KindSlug                  FieldKind = "slug"
	KindEmail                 FieldKind = "email"
	KindURL                   FieldKind = "url"
	KindIPAddress             FieldKind = "ip"
	KindCommaSeparatedInteger FieldKind = "csv-integer"
	KindInteger               FieldKind = "integer"
	KindSmallInteger          FieldKind = "small-integer"
	KindPositiveInteger       FieldKind = "positive-integer"
	KindPositiveSmallInteger  FieldKind = "positive-small-integer"
	KindFloat                 FieldKind = "float"
	KindDecimal               FieldKind = "decimal"
	KindBoolean               FieldKind = "boolean"
	KindNullBoolean           FieldKind = "null-boolean"
	KindDate                  FieldKind = "date"
	KindTime                  FieldKind = "time"
	KindDateTime              FieldKind = "datetime"
	KindFile                  FieldKind = "file"
	KindImage                 FieldKind = "image"
	KindFilePath              FieldKind = "filepath"
	KindForeignKey            FieldKind = "foreign-key"
	KindOneToOne              FieldKind = "one-to-one"
	KindManyToMany            FieldKind = "many-to-many"
)

// kindParents encodes the specialization relation between field kinds. A kind
// without an entry has no parent. The mapper relies on this table for its
// is-a matching, so rules registered for a base kind also catch the
// specialized ones.
var kindParents = map[FieldKind]FieldKind{
	KindText:                  KindChar,
	KindSlug:                  KindChar,
	KindEmail:                 KindChar,
	KindURL:                   KindChar,
	KindIPAddress:             KindChar,
	KindCommaSeparatedInteger: KindChar,
	KindFilePath:              KindChar,
	KindSmallInteger:          KindInteger,
	KindPositiveInteger:       KindInteger,
	KindPositiveSmallInteger:  KindSmallInteger,
	KindAuto:                  KindInteger,
	KindDateTime:              KindDate,
	KindImage:                 KindFile,
	KindOneToOne:              KindForeignKey,
	KindNullBoolean:           KindBoolean,
}

// IsA reports whether kind equals other or specializes it, walking the parent
// chain until the root.
func (k FieldKind) IsA(other FieldKind) bool {
	for current := k; current != ""; {
		if current == other {
			return true
		}
		parent, ok := kindParents[current]
		if !ok {
			return false
		}
		current = parent
	}
	return false
}

// Parent returns the kind this kind specializes, or "" at the root.
func (k FieldKind) Parent() FieldKind {
	return kindParents[k]
}

// Choice is a single selectable option carried by a model field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// Field is a model field descriptor: the storage-side metadata the mapper and
// the attribute mixer consume. Validation bounds use `any` so date fields can
// carry time.Time limits next to numeric ones.
type Field struct {
	Name          string            `json:"name"`
	Kind          FieldKind         `json:"kind"`
	Label         string            `json:"label,omitempty"`
	HelpText      string            `json:"helpText,omitempty"`
	Blank         bool              `json:"blank,omitempty"`
	Choices       []Choice          `json:"choices,omitempty"`
	MinValue      any               `json:"minValue,omitempty"`
	MaxValue      any               `json:"maxValue,omitempty"`
	MaxLength     int               `json:"maxLength,omitempty"`
	DecimalPlaces int               `json:"decimalPlaces,omitempty"`
	Pattern       string            `json:"pattern,omitempty"`
	Multiple      bool              `json:"multiple,omitempty"`
	Default       any               `json:"default,omitempty"`
	PrimaryKey    bool              `json:"primaryKey,omitempty"`
	Editable      bool              `json:"editable,omitempty"`
	AutoCreated   bool              `json:"autoCreated,omitempty"`
	ParentLink    bool              `json:"parentLink,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Required reports whether the field demands a value. Blank mirrors the
// storage layer's "may be left empty" flag, so required is its inverse.
func (f Field) Required() bool {
	return !f.Blank
}

// HasChoices reports whether the field restricts input to a fixed option set.
func (f Field) HasChoices() bool {
	return len(f.Choices) > 0
}

// FormModel groups the field descriptors a single form is built from.
type FormModel struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
