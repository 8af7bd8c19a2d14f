// Package keycase converts JSON-like values between snake_case wire keys
// and camelCase application keys. Conversion is deep, allocation-fresh and
// bidirectional, with an exception table for names the mechanical rule
// cannot invert and a preserved-key rule for opaque payload containers.
package keycase
