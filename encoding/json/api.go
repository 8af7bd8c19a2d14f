// Package json pairs the key-case transformer with the wire codec: it
// decodes backend JSON (snake_case keys) into camelCase application values
// and encodes application values back to snake_case wire bytes.
package json

import (
	"github.com/francoispqt/gojay"
	"github.com/viant/keycase"
)

// Codec converts between wire bytes and application values in one step.
type Codec struct {
	transformer *keycase.Transformer
}

// New creates a codec; options configure the underlying transformer.
func New(opts ...keycase.Option) *Codec {
	return &Codec{transformer: keycase.New(opts...)}
}

// Unmarshal decodes wire JSON and deep-converts keys to camelCase.
func (c *Codec) Unmarshal(data []byte) (any, error) {
	var value any
	if err := gojay.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return c.transformer.ToCamel(value), nil
}

// Marshal deep-converts keys to snake_case and encodes wire JSON. Object
// keys are emitted in lexical order so output is deterministic.
func (c *Codec) Marshal(value any) ([]byte, error) {
	return encodeValue(c.transformer.ToSnake(value))
}

var defaultCodec = New()

// Unmarshal decodes with the default codec.
func Unmarshal(data []byte) (any, error) {
	return defaultCodec.Unmarshal(data)
}

// Marshal encodes with the default codec.
func Marshal(value any) ([]byte, error) {
	return defaultCodec.Marshal(value)
}
