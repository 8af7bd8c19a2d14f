package keycase

import "reflect"

// ToCamel deep-converts snake_case keys to camelCase. Objects and
// sequences are freshly allocated at every visited level; the input is
// never mutated. Nil and foreign values pass through unchanged.
func (t *Transformer) ToCamel(value any) any {
	w := &walker{name: t.CamelName}
	if t.cycleGuard {
		w.visited = map[uintptr]bool{}
	}
	return w.walk(value)
}

// ToSnake deep-converts camelCase keys to snake_case. A key equal to the
// preserved-key literal is copied under its original name and its value is
// excluded from the walk entirely, so opaque payloads reach the wire
// untouched.
func (t *Transformer) ToSnake(value any) any {
	w := &walker{name: t.SnakeName, preserved: t.preserved}
	if t.cycleGuard {
		w.visited = map[uintptr]bool{}
	}
	return w.walk(value)
}

type walker struct {
	name      func(string) string
	preserved string
	visited   map[uintptr]bool
}

func (w *walker) walk(value any) any {
	switch KindOf(value) {
	case KindObject:
		return w.walkObject(value.(map[string]any))
	case KindSequence:
		return w.walkSequence(value.([]any))
	default:
		return value
	}
}

func (w *walker) walkObject(object map[string]any) any {
	if w.visited != nil {
		ptr := reflect.ValueOf(object).Pointer()
		if w.visited[ptr] {
			return object
		}
		w.visited[ptr] = true
		defer delete(w.visited, ptr)
	}
	ret := make(map[string]any, len(object))
	for key, element := range object {
		if w.preserved != "" && key == w.preserved {
			ret[key] = element
			continue
		}
		ret[w.name(key)] = w.walk(element)
	}
	return ret
}

func (w *walker) walkSequence(sequence []any) any {
	if w.visited != nil && len(sequence) > 0 {
		ptr := reflect.ValueOf(sequence).Pointer()
		if w.visited[ptr] {
			return sequence
		}
		w.visited[ptr] = true
		defer delete(w.visited, ptr)
	}
	ret := make([]any, len(sequence))
	for i, element := range sequence {
		ret[i] = w.walk(element)
	}
	return ret
}
