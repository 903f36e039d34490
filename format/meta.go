package format

// MetaKind tags the variant held by a ColumnMeta.
type MetaKind uint8

const (
	MetaNone MetaKind = iota
	MetaDecimal
	MetaEnum
	MetaDateTime
	MetaText
)

// ColumnMeta is the tagged, optional parameterisation attached to a column
// descriptor. Only the field matching Kind is meaningful. Unknown or
// malformed meta bytes found on disk are tolerated: the descriptor parser
// (section.ParseColumnDescriptor) skips them using their length prefix and
// yields the None variant. Those bytes are not kept, so re-serialising such a
// descriptor writes None in their place; ColumnMeta's constructors only ever
// produce the five known variants.
type ColumnMeta struct {
	Kind MetaKind

	// Decimal
	Precision uint8
	Scale     uint8

	// Enum
	Mappings map[int64]string

	// DateTime
	Format string

	// Text
	TextEncoding string
}

// NoneMeta returns the zero-length None variant, the default for columns
// with no parameterisation.
func NoneMeta() ColumnMeta {
	return ColumnMeta{Kind: MetaNone}
}

// DecimalMeta returns a Decimal variant with the given precision and scale.
func DecimalMeta(precision, scale uint8) ColumnMeta {
	return ColumnMeta{Kind: MetaDecimal, Precision: precision, Scale: scale}
}

// EnumMeta returns an Enum variant with the given ordinal-to-label mapping.
func EnumMeta(mappings map[int64]string) ColumnMeta {
	return ColumnMeta{Kind: MetaEnum, Mappings: mappings}
}

// DateTimeMeta returns a DateTime variant carrying a display format string.
func DateTimeMeta(format string) ColumnMeta {
	return ColumnMeta{Kind: MetaDateTime, Format: format}
}

// TextMeta returns a Text variant carrying a text encoding name.
func TextMeta(encoding string) ColumnMeta {
	return ColumnMeta{Kind: MetaText, TextEncoding: encoding}
}
