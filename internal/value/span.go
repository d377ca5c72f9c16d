// Package value holds the in-memory tree produced by parsing a TOML
// document: Item, Array, Table, Key and the panic-free MaybeItem overlay.
package value

import "fmt"

// Span is a half-open byte range [Start, End) into the original source
// text. Every node in the parsed tree carries one.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan builds a Span, ported from original_source/src/span.rs.
func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// Len reports the number of bytes covered by the span.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// String implements fmt.Stringer for debugging/test failure output.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Spanned pairs a value with the span of source text it was decoded from.
// Grounded on original_source/src/span.rs's Spanned<T>; kept as a minimal
// building block for the typed-extraction layer (extract.RequiredSpanned),
// not as a general-purpose wrapper around every tree node.
type Spanned[T any] struct {
	Value T
	Span  Span
}
