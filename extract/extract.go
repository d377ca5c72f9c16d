// Package extract provides a minimal typed-extraction layer over a parsed
// document: pulling individual scalar/table/array values out of a
// value.Table by key with the right Go type, without the full
// Deserialize-framework/TableHelper machinery of original_source/src/de.rs
// and de_helpers.rs (explicitly out of scope — see SPEC_FULL.md).
package extract

import (
	"fmt"

	"github.com/tomlgo/tomlgo/internal/value"
)

// Expected builds a "wanted X, found Y" error for an item that doesn't have
// the shape a caller asked for, grounded on de_helpers.rs's expected().
func Expected(wanted string, got *value.Item) error {
	found := "nothing"
	if got != nil {
		found = got.Kind.String()
	}
	return fmt.Errorf("expected %s, found %s", wanted, found)
}

// String extracts a string field from t.
func String(t *value.Table, name string) (string, error) {
	it := t.Get(name)
	if it == nil {
		return "", fmt.Errorf("missing field %q", name)
	}
	s, ok := it.AsString()
	if !ok {
		return "", Expected("a string", it)
	}
	return s, nil
}

// Integer extracts an integer field from t.
func Integer(t *value.Table, name string) (int64, error) {
	it := t.Get(name)
	if it == nil {
		return 0, fmt.Errorf("missing field %q", name)
	}
	v, ok := it.AsInteger()
	if !ok {
		return 0, Expected("an integer", it)
	}
	return v, nil
}

// Float extracts a float field from t.
func Float(t *value.Table, name string) (float64, error) {
	it := t.Get(name)
	if it == nil {
		return 0, fmt.Errorf("missing field %q", name)
	}
	v, ok := it.AsFloat()
	if !ok {
		return 0, Expected("a float", it)
	}
	return v, nil
}

// Bool extracts a boolean field from t.
func Bool(t *value.Table, name string) (bool, error) {
	it := t.Get(name)
	if it == nil {
		return false, fmt.Errorf("missing field %q", name)
	}
	v, ok := it.AsBool()
	if !ok {
		return false, Expected("a boolean", it)
	}
	return v, nil
}

// Table extracts a subtable field from t.
func Table(t *value.Table, name string) (*value.Table, error) {
	it := t.Get(name)
	if it == nil {
		return nil, fmt.Errorf("missing field %q", name)
	}
	v, ok := it.AsTable()
	if !ok {
		return nil, Expected("a table", it)
	}
	return v, nil
}

// Array extracts an array field from t.
func Array(t *value.Table, name string) (*value.Array, error) {
	it := t.Get(name)
	if it == nil {
		return nil, fmt.Errorf("missing field %q", name)
	}
	v, ok := it.AsArray()
	if !ok {
		return nil, Expected("an array", it)
	}
	return v, nil
}

// RequiredSpanned extracts name via get and wraps its value with the span
// recorded on the item, so callers that need positional diagnostics (e.g.
// for re-emitting a tomlerr.Error pointed at a specific field) don't have to
// re-derive it. Grounded on original_source/src/de_helpers.rs's
// TableHelper::required_s, without any of the surrounding Deserialize
// machinery.
func RequiredSpanned[T any](t *value.Table, name string, get func(*value.Table, string) (T, error)) (value.Spanned[T], error) {
	v, err := get(t, name)
	if err != nil {
		return value.Spanned[T]{}, err
	}
	it := t.Get(name)
	return value.Spanned[T]{Value: v, Span: it.SpanNow()}, nil
}

// OptionalSpanned is RequiredSpanned's non-erroring counterpart for an
// absent key: it reports ok=false instead of an error when name is missing,
// but still propagates a type-mismatch error when the key is present with
// the wrong shape.
func OptionalSpanned[T any](t *value.Table, name string, get func(*value.Table, string) (T, error)) (value.Spanned[T], bool, error) {
	if !t.ContainsKey(name) {
		return value.Spanned[T]{}, false, nil
	}
	sp, err := RequiredSpanned(t, name, get)
	if err != nil {
		return value.Spanned[T]{}, false, err
	}
	return sp, true, nil
}
