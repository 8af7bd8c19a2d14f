package keycase

import (
	"github.com/viant/tagly/format/text"
)

// Rekey deep-converts keys between arbitrary case conventions. Unlike
// ToCamel/ToSnake it applies no exception table and no preserved key: the
// wire-compat snake/camel pair has contractual edge behavior the generic
// formatter does not reproduce, any other convention pair goes through
// here. Traversal rules are shared: fresh containers, untouched input,
// foreign values passed through.
func (t *Transformer) Rekey(value any, from, to text.CaseFormat) any {
	formatter := from.To(to)
	w := &walker{name: formatter.Format}
	if t.cycleGuard {
		w.visited = map[uintptr]bool{}
	}
	return w.walk(value)
}

// Rekey deep-converts with the default transformer.
func Rekey(value any, from, to text.CaseFormat) any {
	return defaultTransformer.Rekey(value, from, to)
}

// Detect reports the case convention of a sample of key names.
func Detect(names ...string) text.CaseFormat {
	return text.DetectCaseFormat(names...)
}
