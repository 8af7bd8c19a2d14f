package json

import (
	"sort"

	"github.com/francoispqt/gojay"
)

var nullJSON = gojay.EmbeddedJSON("null")

func encodeValue(value any) ([]byte, error) {
	switch actual := value.(type) {
	case nil:
		return []byte("null"), nil
	case map[string]any:
		return gojay.MarshalJSONObject(object(actual))
	case []any:
		return gojay.MarshalJSONArray(sequence(actual))
	case gojay.EmbeddedJSON:
		return actual, nil
	default:
		return gojay.Marshal(actual)
	}
}

type object map[string]any

func (o object) IsNil() bool {
	return o == nil
}

func (o object) MarshalJSONObject(enc *gojay.Encoder) {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		addKey(enc, key, o[key])
	}
}

type sequence []any

func (s sequence) IsNil() bool {
	return s == nil
}

func (s sequence) MarshalJSONArray(enc *gojay.Encoder) {
	for _, element := range s {
		addElement(enc, element)
	}
}

func addKey(enc *gojay.Encoder, key string, value any) {
	switch actual := value.(type) {
	case nil:
		enc.AddEmbeddedJSONKey(key, &nullJSON)
	case map[string]any:
		enc.AddObjectKey(key, object(actual))
	case []any:
		enc.AddArrayKey(key, sequence(actual))
	case gojay.EmbeddedJSON:
		enc.AddEmbeddedJSONKey(key, &actual)
	default:
		enc.AddInterfaceKey(key, actual)
	}
}

func addElement(enc *gojay.Encoder, value any) {
	switch actual := value.(type) {
	case nil:
		enc.AddEmbeddedJSON(&nullJSON)
	case map[string]any:
		enc.AddObject(object(actual))
	case []any:
		enc.AddArray(sequence(actual))
	case gojay.EmbeddedJSON:
		enc.AddEmbeddedJSON(&actual)
	default:
		enc.AddInterface(actual)
	}
}
