package format

type (
	// Kind identifies the variant of a decoded Value.
	Kind uint8
	// PrimitiveKind identifies a coercion target for the generic accessor.
	PrimitiveKind uint8
	// CompressionType identifies a payload compression algorithm.
	CompressionType uint8
)

const (
	KindNull   Kind = iota // KindNull represents JSON null, and the lookup-miss sentinel.
	KindBool               // KindBool represents JSON true/false.
	KindNumber             // KindNumber represents a JSON number (ints and floats unified as float64).
	KindString             // KindString represents a JSON string.
	KindArray              // KindArray represents a JSON array.
	KindObject             // KindObject represents a JSON object with normalized keys.
)

const (
	PrimitiveBool   PrimitiveKind = iota // PrimitiveBool targets a boolean.
	PrimitiveInt                         // PrimitiveInt targets a 64-bit integer.
	PrimitiveDouble                      // PrimitiveDouble targets a 64-bit float.
	PrimitiveString                      // PrimitiveString targets a string.
	PrimitiveDate                        // PrimitiveDate targets a calendar timestamp.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

func (p PrimitiveKind) String() string {
	switch p {
	case PrimitiveBool:
		return "bool"
	case PrimitiveInt:
		return "int"
	case PrimitiveDouble:
		return "double"
	case PrimitiveString:
		return "string"
	case PrimitiveDate:
		return "date"
	default:
		return "unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
