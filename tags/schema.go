package tags

import (
	"fmt"
	"reflect"

	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

// Schema holds the conversion vocabulary derived from an annotated struct
// type: the camel->snake exception map and an optional preserved key.
// Exceptions feed keycase.NewTable, Preserved feeds WithPreservedKey.
type Schema struct {
	Exceptions map[string]string
	Preserved  string
}

// SchemaOf derives a schema from a struct type or a pointer to one. Fields
// without an explicit camel override get their application name from the
// Go field name (lowerCamel). Only fields carrying a name override or a
// preserve marker contribute to the schema.
func SchemaOf(rType reflect.Type) (*Schema, error) {
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct, got %s", rType.Kind())
	}
	xStruct := xunsafe.NewStruct(rType)
	ret := &Schema{Exceptions: map[string]string{}}
	for i := range xStruct.Fields {
		aField := &xStruct.Fields[i]
		aTag, err := Parse(aField.Tag)
		if err != nil {
			return nil, fmt.Errorf("%v.%v: %w", rType.Name(), aField.Name, err)
		}
		if aTag.Ignore {
			continue
		}
		camelName := aTag.Camel
		if camelName == "" {
			caseFormat := text.DetectCaseFormat(aField.Name)
			camelName = caseFormat.Format(aField.Name, text.CaseFormatLowerCamel)
		}
		if aTag.Preserve {
			ret.Preserved = camelName
			continue
		}
		if aTag.Name != "" {
			ret.Exceptions[camelName] = aTag.Name
		}
	}
	return ret, nil
}
