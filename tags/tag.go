// Package tags derives case-conversion vocabulary from annotated struct
// types, so exception tables are declared next to the model instead of
// being hand-maintained.
package tags

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/parsly"
)

// TagName is the struct tag consulted during schema derivation.
const TagName = "keycase"

// Tag represents a parsed keycase struct tag.
type Tag struct {
	//Name explicit wire (snake_case) name, bypassing the mechanical rule
	Name string
	//Camel explicit application (camelCase) name, when the one derived
	//from the Go field name would be wrong (acronym-bearing fields)
	Camel string
	//Preserve marks the field as an opaque payload container
	Preserve bool
	//Ignore excludes the field from schema derivation
	Ignore bool
}

// Parse parses the keycase tag of a struct field.
func Parse(tag reflect.StructTag) (*Tag, error) {
	ret := &Tag{}
	encoded := tag.Get(TagName)
	if encoded == "" {
		return ret, nil
	}
	if encoded == "-" {
		ret.Ignore = true
		return ret, nil
	}
	cursor := parsly.NewCursor("", []byte(encoded), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		if key == "" {
			continue
		}
		if err := ret.update(key, value); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (t *Tag) update(key string, value string) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "camel":
		t.Camel = value
	case "preserve":
		t.Preserve = true
	case "ignore", "transient":
		t.Ignore = true
	default:
		return fmt.Errorf("unknown %v tag key %q", TagName, key)
	}
	return nil
}
