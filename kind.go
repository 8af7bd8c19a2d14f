package keycase

// Kind classifies a JSON-like value into the closed variant set the
// transformer dispatches over. Only KindObject values have their keys
// rewritten; KindSequence values are walked element-wise; everything
// else passes through untouched.
type Kind int

const (
	//KindNull absent value (untyped nil)
	KindNull Kind = iota
	//KindPrimitive string, bool or any numeric value
	KindPrimitive
	//KindSequence []any
	KindSequence
	//KindObject map[string]any
	KindObject
	//KindForeign anything else: typed structs, typed maps, channels, funcs
	KindForeign
)

// KindOf returns the variant of a JSON-like value.
func KindOf(value any) Kind {
	switch value.(type) {
	case nil:
		return KindNull
	case map[string]any:
		return KindObject
	case []any:
		return KindSequence
	case string, bool,
		float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindPrimitive
	default:
		return KindForeign
	}
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindPrimitive:
		return "primitive"
	case KindSequence:
		return "sequence"
	case KindObject:
		return "object"
	default:
		return "foreign"
	}
}
