package keycase

// PreservedKey is the default opaque payload container field. During
// camel->snake conversion its name and everything beneath it are copied
// to the output verbatim.
const PreservedKey = "requestBody"

// Transformer converts names and JSON-like structures between snake_case
// and camelCase. A transformer is immutable after construction and safe
// for concurrent use.
type Transformer struct {
	table      *Table
	preserved  string
	cycleGuard bool
}

//Option represents transformer option
type Option func(t *Transformer)

//Options represents transformer options
type Options []Option

//Apply applies options
func (o Options) Apply(t *Transformer) {
	for _, opt := range o {
		opt(t)
	}
}

// WithTable overrides the exception table.
func WithTable(table *Table) Option {
	return func(t *Transformer) {
		t.table = table
	}
}

// WithPreservedKey overrides the preserved-key literal. An empty name
// disables preservation.
func WithPreservedKey(name string) Option {
	return func(t *Transformer) {
		t.preserved = name
	}
}

// WithCycleGuard enables a visited-set guard so self-referential input
// terminates instead of overflowing the stack. Output for acyclic input
// is identical with or without the guard.
func WithCycleGuard() Option {
	return func(t *Transformer) {
		t.cycleGuard = true
	}
}

// New creates a transformer with the default exception table and
// preserved key unless options override them.
func New(opts ...Option) *Transformer {
	ret := &Transformer{
		table:     DefaultTable(),
		preserved: PreservedKey,
	}
	Options(opts).Apply(ret)
	if ret.table == nil {
		ret.table = emptyTable
	}
	return ret
}

var defaultTransformer = New()

// CamelName converts a snake_case name with the default transformer.
func CamelName(name string) string {
	return defaultTransformer.CamelName(name)
}

// SnakeName converts a camelCase name with the default transformer.
func SnakeName(name string) string {
	return defaultTransformer.SnakeName(name)
}

// ToCamel deep-converts with the default transformer.
func ToCamel(value any) any {
	return defaultTransformer.ToCamel(value)
}

// ToSnake deep-converts with the default transformer.
func ToSnake(value any) any {
	return defaultTransformer.ToSnake(value)
}
