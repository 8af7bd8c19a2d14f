package keycase

import (
	"strings"
	"unicode"
)

// CamelName converts a snake_case name to camelCase. An exact exception
// table match wins over the mechanical rule. The mechanical rule drops
// every underscore immediately followed by a lowercase letter and
// upper-cases that letter; all other characters are copied verbatim, so
// repeated underscores and trailing underscores survive unchanged.
func (t *Transformer) CamelName(name string) string {
	if mapped, ok := t.table.snakeToCamel[name]; ok {
		return mapped
	}
	return camelName(name)
}

// SnakeName converts a camelCase name to snake_case. An exact exception
// table match wins over the mechanical rule. The mechanical rule prefixes
// every uppercase letter with an underscore and lower-cases it, which
// means a leading uppercase letter yields a leading underscore
// ("Single" -> "_single"). Wire compatibility depends on that exact
// output, so it is kept as-is.
func (t *Transformer) SnakeName(name string) string {
	if mapped, ok := t.table.camelToSnake[name]; ok {
		return mapped
	}
	return snakeName(name)
}

func camelName(name string) string {
	if !strings.ContainsRune(name, '_') {
		return name
	}
	var result = strings.Builder{}
	result.Grow(len(name))
	runes := []rune(name)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '_' && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			result.WriteRune(unicode.ToUpper(runes[i+1]))
			i++
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

func snakeName(name string) string {
	hasUpper := false
	for _, r := range name {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return name
	}
	var result = strings.Builder{}
	result.Grow(len(name) + 3)
	for _, r := range name {
		if unicode.IsUpper(r) {
			result.WriteRune('_')
			result.WriteRune(unicode.ToLower(r))
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
