package value

// Key is a single path segment: either a bare/quoted TOML key or an index
// into a dotted path. Equality and ordering, per original_source/src/value.rs,
// compare Name only — the span is carried purely for diagnostics.
type Key struct {
	Name string
	Span Span
}

// Equal reports whether two keys share the same name.
func (k Key) Equal(o Key) bool {
	return k.Name == o.Name
}
