// Package model defines the model field descriptors the mapper and widget
// layers consume. A descriptor carries the storage-side kind of a field plus
// the validation metadata (required, bounds, lengths, patterns) that the
// attribute mixer later forwards into widget render attributes. Kinds form an
// explicit specialization hierarchy (email is-a char, datetime is-a date,
// image is-a file) exposed through FieldKind.IsA, which is what rule matching
// in pkg/fieldmap is built on. The concrete types live in internal/model and
// are re-exported here.
package model
