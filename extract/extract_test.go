package extract

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/tomlgo/tomlgo/internal/value"
)

func buildTable() *value.Table {
	t := value.NewTable()
	t.Insert(value.Key{Name: "name"}, value.String("tom", value.Span{}))
	t.Insert(value.Key{Name: "age"}, value.Integer(37, value.NewSpan(5, 7)))
	t.Insert(value.Key{Name: "pi"}, value.Float(3.14, value.Span{}))
	t.Insert(value.Key{Name: "ok"}, value.Boolean(true, value.Span{}))
	sub := value.NewTable()
	sub.Insert(value.Key{Name: "x"}, value.Integer(1, value.Span{}))
	t.Insert(value.Key{Name: "sub"}, value.TableItem(sub, value.Span{}))
	arr := value.NewArray()
	arr.Push(value.Integer(1, value.Span{}))
	t.Insert(value.Key{Name: "list"}, value.ArrayItem(arr, value.Span{}))
	return t
}

func TestExtractScalars(t *testing.T) {
	tbl := buildTable()

	s, err := String(tbl, "name")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s, "tom"))

	n, err := Integer(tbl, "age")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n, int64(37)))

	f, err := Float(tbl, "pi")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f, 3.14))

	b, err := Bool(tbl, "ok")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(b))
}

func TestExtractTableAndArray(t *testing.T) {
	tbl := buildTable()

	sub, err := Table(tbl, "sub")
	qt.Assert(t, qt.IsNil(err))
	x, _ := sub.Get("x").AsInteger()
	qt.Assert(t, qt.Equals(x, int64(1)))

	arr, err := Array(tbl, "list")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(arr.Len(), 1))
}

func TestExtractMissingFieldError(t *testing.T) {
	tbl := buildTable()
	_, err := String(tbl, "missing")
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Error(), `missing field "missing"`))
}

func TestExtractWrongKindError(t *testing.T) {
	tbl := buildTable()
	_, err := Integer(tbl, "name")
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Error(), "expected an integer, found string"))
}

func TestRequiredSpannedCarriesItemSpan(t *testing.T) {
	tbl := buildTable()
	sp, err := RequiredSpanned(tbl, "age", Integer)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sp.Value, int64(37)))
	qt.Assert(t, qt.Equals(sp.Span.Start, uint32(5)))
}

func TestOptionalSpannedMissingIsNotError(t *testing.T) {
	tbl := buildTable()
	_, ok, err := OptionalSpanned(tbl, "missing", Integer)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(ok))
}

func TestOptionalSpannedWrongKindIsError(t *testing.T) {
	tbl := buildTable()
	_, _, err := OptionalSpanned(tbl, "name", Integer)
	qt.Assert(t, qt.IsNotNil(err))
}
