package value

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestKindString(t *testing.T) {
	qt.Assert(t, qt.Equals(KindTable.String(), "table"))
	qt.Assert(t, qt.Equals(KindDateTime.String(), "datetime"))
	qt.Assert(t, qt.Equals(KindString.String(), "string"))
}

func TestTableItemSpanAndFlagAreLive(t *testing.T) {
	tbl := NewTable()
	it := TableItem(tbl, NewSpan(0, 1))
	qt.Assert(t, qt.IsFalse(it.IsFrozen()))

	tbl.Flag |= FlagFrozen
	tbl.Span = NewSpan(0, 50)

	// A table Item's Flags()/SpanNow() read through to the live *Table
	// rather than a snapshot taken at construction time.
	qt.Assert(t, qt.IsTrue(it.IsFrozen()))
	qt.Assert(t, qt.Equals(it.SpanNow().End, uint32(50)))
}

func TestArrayItemFlagsReadThrough(t *testing.T) {
	arr := NewArray()
	it := ArrayItem(arr, NewSpan(0, 1))
	qt.Assert(t, qt.IsFalse(it.IsArrayOfTables()))
	arr.Flag |= FlagArrayOfTables
	qt.Assert(t, qt.IsTrue(it.IsArrayOfTables()))
}

func TestAsAccessorsRejectWrongKind(t *testing.T) {
	it := Integer(42, Span{})
	_, ok := it.AsString()
	qt.Assert(t, qt.IsFalse(ok))
	v, ok := it.AsInteger()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, int64(42)))
}
