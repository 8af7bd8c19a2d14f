package keycase

import "fmt"

// Table holds the fixed exception vocabulary: camelCase names whose
// snake_case form is not the mechanical inverse. The reverse mapping is
// derived from the forward one at construction, never maintained by hand.
type Table struct {
	camelToSnake map[string]string
	snakeToCamel map[string]string
}

// NewTable creates a table from a camel->snake forward mapping and derives
// its inverse. Two camel names mapping to the same snake name make the
// inverse ambiguous and are rejected.
func NewTable(forward map[string]string) (*Table, error) {
	ret := &Table{
		camelToSnake: make(map[string]string, len(forward)),
		snakeToCamel: make(map[string]string, len(forward)),
	}
	for camel, snake := range forward {
		if prev, ok := ret.snakeToCamel[snake]; ok {
			return nil, fmt.Errorf("keycase: ambiguous table entry: %q and %q both map to %q", prev, camel, snake)
		}
		ret.camelToSnake[camel] = snake
		ret.snakeToCamel[snake] = camel
	}
	return ret, nil
}

// Snake returns the snake_case form of a camelCase exception entry.
func (t *Table) Snake(camel string) (string, bool) {
	snake, ok := t.camelToSnake[camel]
	return snake, ok
}

// Camel returns the camelCase form of a snake_case exception entry.
func (t *Table) Camel(snake string) (string, bool) {
	camel, ok := t.snakeToCamel[snake]
	return camel, ok
}

// Size returns the number of entries.
func (t *Table) Size() int {
	return len(t.camelToSnake)
}

// DefaultTable returns the platform vocabulary: SSO and SAML identifiers
// whose embedded acronyms defeat the mechanical rule in at least one
// direction.
func DefaultTable() *Table {
	ret, err := NewTable(map[string]string{
		"idpEntityId":    "idp_entity_id",
		"idpSSOUrl":      "idp_sso_url",
		"idpSLOUrl":      "idp_slo_url",
		"spEntityId":     "sp_entity_id",
		"spACSUrl":       "sp_acs_url",
		"spNameIDFormat": "sp_name_id_format",
	})
	if err != nil {
		panic(err)
	}
	return ret
}

var emptyTable = &Table{
	camelToSnake: map[string]string{},
	snakeToCamel: map[string]string{},
}
