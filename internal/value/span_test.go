package value

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestSpanLen(t *testing.T) {
	s := NewSpan(3, 10)
	qt.Assert(t, qt.Equals(s.Len(), uint32(7)))
}

func TestSpanString(t *testing.T) {
	s := NewSpan(3, 10)
	qt.Assert(t, qt.Equals(s.String(), "3..10"))
}

func TestSpannedCarriesValueAndSpan(t *testing.T) {
	sp := Spanned[int]{Value: 42, Span: NewSpan(1, 2)}
	qt.Assert(t, qt.Equals(sp.Value, 42))
	qt.Assert(t, qt.Equals(sp.Span.Start, uint32(1)))
}
