package value

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestTableInsertAndGet(t *testing.T) {
	tbl := NewTable()
	tbl.Insert(Key{Name: "a"}, Integer(1, Span{}))
	tbl.Insert(Key{Name: "b"}, Integer(2, Span{}))

	qt.Assert(t, qt.Equals(tbl.Len(), 2))
	v, ok := tbl.Get("a").AsInteger()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, int64(1)))
	qt.Assert(t, qt.IsNil(tbl.Get("missing")))
}

func TestTableCrossesIndexThreshold(t *testing.T) {
	tbl := NewTable()
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i, n := range names {
		tbl.Insert(Key{Name: n}, Integer(int64(i), Span{}))
	}
	qt.Assert(t, qt.Equals(tbl.Len(), len(names)))
	for i, n := range names {
		v, ok := tbl.Get(n).AsInteger()
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(v, int64(i)))
	}
}

func TestTableRemoveEntrySwapRemove(t *testing.T) {
	tbl := NewTable()
	tbl.Insert(Key{Name: "a"}, Integer(1, Span{}))
	tbl.Insert(Key{Name: "b"}, Integer(2, Span{}))
	tbl.Insert(Key{Name: "c"}, Integer(3, Span{}))

	_, val, ok := tbl.RemoveEntry("a")
	qt.Assert(t, qt.IsTrue(ok))
	v, _ := val.AsInteger()
	qt.Assert(t, qt.Equals(v, int64(1)))
	qt.Assert(t, qt.Equals(tbl.Len(), 2))
	qt.Assert(t, qt.IsFalse(tbl.ContainsKey("a")))
	qt.Assert(t, qt.IsTrue(tbl.ContainsKey("b")))
	qt.Assert(t, qt.IsTrue(tbl.ContainsKey("c")))
}

func TestTableSetHeaderFlagClearsImplicit(t *testing.T) {
	tbl := NewTable()
	tbl.Flag = FlagImplicit
	tbl.SetHeaderFlag()
	qt.Assert(t, qt.Equals(tbl.Flag&FlagHeader, FlagHeader))
	qt.Assert(t, qt.Equals(tbl.Flag&FlagImplicit, Flag(0)))
}

func TestTableKeysPreservesInsertionOrder(t *testing.T) {
	tbl := NewTable()
	tbl.Insert(Key{Name: "z"}, Integer(1, Span{}))
	tbl.Insert(Key{Name: "a"}, Integer(2, Span{}))
	tbl.Insert(Key{Name: "m"}, Integer(3, Span{}))

	var names []string
	for _, k := range tbl.Keys() {
		names = append(names, k.Name)
	}
	qt.Assert(t, qt.DeepEquals(names, []string{"z", "a", "m"}))
}
