package model

import internalmodel "github.com/goliatone/go-dojoform/internal/model"

// FieldKind re-exports the internal field-kind enumeration.
type FieldKind = internalmodel.FieldKind

const (
	KindAuto                  = internalmodel.KindAuto
	KindChar                  = internalmodel.KindChar
	KindText                  = internalmodel.KindText
	KindSlug                  = internalmodel.KindSlug
	KindEmail                 = internalmodel.KindEmail
	KindURL                   = internalmodel.KindURL
	KindIPAddress             = internalmodel.KindIPAddress
	KindCommaSeparatedInteger = internalmodel.KindCommaSeparatedInteger
	KindInteger               = internalmodel.KindInteger
	KindSmallInteger          = internalmodel.KindSmallInteger
	KindPositiveInteger       = internalmodel.KindPositiveInteger
	KindPositiveSmallInteger  = internalmodel.KindPositiveSmallInteger
	KindFloat                 = internalmodel.KindFloat
	KindDecimal               = internalmodel.KindDecimal
	KindBoolean               = internalmodel.KindBoolean
	KindNullBoolean           = internalmodel.KindNullBoolean
	KindDate                  = internalmodel.KindDate
	KindTime                  = internalmodel.KindTime
	KindDateTime              = internalmodel.KindDateTime
	KindFile                  = internalmodel.KindFile
	KindImage                 = internalmodel.KindImage
	KindFilePath              = internalmodel.KindFilePath
	KindForeignKey            = internalmodel.KindForeignKey
	KindOneToOne              = internalmodel.KindOneToOne
	KindManyToMany            = internalmodel.KindManyToMany
)

type Choice = internalmodel.Choice
type Field = internalmodel.Field
type FormModel = internalmodel.FormModel

// DefaultLabeler derives a display label from a field name.
var DefaultLabeler = internalmodel.DefaultLabeler
