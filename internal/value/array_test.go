package value

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestArrayPushGrowsAndPreservesOrder(t *testing.T) {
	a := NewArray()
	for i := 0; i < 10; i++ {
		a.Push(Integer(int64(i), Span{}))
	}
	qt.Assert(t, qt.Equals(a.Len(), 10))
	for i := 0; i < 10; i++ {
		v, ok := a.Get(i).AsInteger()
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(v, int64(i)))
	}
	last := a.Last()
	v, _ := last.AsInteger()
	qt.Assert(t, qt.Equals(v, int64(9)))
}

func TestArrayWithSingle(t *testing.T) {
	a := NewArrayWithSingle(String("x", Span{}))
	qt.Assert(t, qt.Equals(a.Len(), 1))
	s, ok := a.Get(0).AsString()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(s, "x"))
}

func TestArrayGetOutOfRangeIsNil(t *testing.T) {
	a := NewArray()
	qt.Assert(t, qt.IsNil(a.Get(0)))
	qt.Assert(t, qt.IsNil(a.Last()))
}

func TestArrayExtendSpan(t *testing.T) {
	a := NewArray()
	a.Span = NewSpan(0, 5)
	a.ExtendSpan(3)
	qt.Assert(t, qt.Equals(a.Span.End, uint32(5)))
	a.ExtendSpan(9)
	qt.Assert(t, qt.Equals(a.Span.End, uint32(9)))
}
