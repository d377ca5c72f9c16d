package tomlgo

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/tomlgo/tomlgo/internal/tomlerr"
)

func TestParseBasicKeyValues(t *testing.T) {
	doc, err := Parse([]byte("name = \"tom\"\nage = 37\npi = 3.25\nok = true\n"))
	qt.Assert(t, qt.IsNil(err))

	name, ok := doc.Get("name").AsString()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(name, "tom"))

	age, ok := doc.Get("age").AsInteger()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(age, int64(37)))

	pi, ok := doc.Get("pi").AsFloat()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(pi, 3.25))

	b, ok := doc.Get("ok").AsBool()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(b))
}

func TestParseDottedKeys(t *testing.T) {
	doc, err := Parse([]byte("a.b.c = 1\na.b.d = 2\n"))
	qt.Assert(t, qt.IsNil(err))

	v := doc.Index("a").Index("b").Index("c")
	qt.Assert(t, qt.IsTrue(v.IsSome()))
	it, _ := v.Get()
	n, _ := it.AsInteger()
	qt.Assert(t, qt.Equals(n, int64(1)))

	a, ok := doc.Get("a").AsTable()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(a.Get("b") != nil))
}

func TestParseTableHeaders(t *testing.T) {
	src := "[servers]\n\n[servers.alpha]\nip = \"10.0.0.1\"\n\n[servers.beta]\nip = \"10.0.0.2\"\n"
	doc, err := Parse([]byte(src))
	qt.Assert(t, qt.IsNil(err))

	ip := doc.Index("servers").Index("alpha").Index("ip")
	qt.Assert(t, qt.IsTrue(ip.IsSome()))
	it, _ := ip.Get()
	s, _ := it.AsString()
	qt.Assert(t, qt.Equals(s, "10.0.0.1"))
}

func TestParseArrayOfTables(t *testing.T) {
	src := "[[fruit]]\nname = \"apple\"\n\n[[fruit]]\nname = \"banana\"\n"
	doc, err := Parse([]byte(src))
	qt.Assert(t, qt.IsNil(err))

	arr, ok := doc.Get("fruit").AsArray()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(arr.Len(), 2))

	first, _ := arr.Get(0).AsTable()
	name, _ := first.Get("name").AsString()
	qt.Assert(t, qt.Equals(name, "apple"))

	second, _ := arr.Get(1).AsTable()
	name2, _ := second.Get("name").AsString()
	qt.Assert(t, qt.Equals(name2, "banana"))
}

func TestParseNestedArrayOfTables(t *testing.T) {
	src := "[[fruit]]\nname = \"apple\"\n\n[[fruit.variety]]\nname = \"red delicious\"\n\n[[fruit.variety]]\nname = \"granny smith\"\n\n[[fruit]]\nname = \"banana\"\n\n[[fruit.variety]]\nname = \"plantain\"\n"
	doc, err := Parse([]byte(src))
	qt.Assert(t, qt.IsNil(err))

	fruit, _ := doc.Get("fruit").AsArray()
	qt.Assert(t, qt.Equals(fruit.Len(), 2))

	apple, _ := fruit.Get(0).AsTable()
	varieties, _ := apple.Get("variety").AsArray()
	qt.Assert(t, qt.Equals(varieties.Len(), 2))
	v0, _ := varieties.Get(0).AsTable()
	n, _ := v0.Get("name").AsString()
	qt.Assert(t, qt.Equals(n, "red delicious"))
}

func TestParseInlineTableAndArray(t *testing.T) {
	src := "point = { x = 1, y = 2 }\nlist = [1, 2, 3]\n"
	doc, err := Parse([]byte(src))
	qt.Assert(t, qt.IsNil(err))

	pt, ok := doc.Get("point").AsTable()
	qt.Assert(t, qt.IsTrue(ok))
	x, _ := pt.Get("x").AsInteger()
	qt.Assert(t, qt.Equals(x, int64(1)))
	qt.Assert(t, qt.IsTrue(doc.Get("point").IsFrozen()))

	list, ok := doc.Get("list").AsArray()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(list.Len(), 3))
}

func TestParseInlineTableAllowsNewlinesAndComments(t *testing.T) {
	src := "point = {\n  x = 1, # x coord\n  y = 2,\n}\n"
	doc, err := Parse([]byte(src))
	qt.Assert(t, qt.IsNil(err))

	pt, ok := doc.Get("point").AsTable()
	qt.Assert(t, qt.IsTrue(ok))
	y, _ := pt.Get("y").AsInteger()
	qt.Assert(t, qt.Equals(y, int64(2)))
}

func TestParseStringEscapesAndMultiline(t *testing.T) {
	src := "s = \"a\\tb\\n\"\nml = \"\"\"\nfirst line\nsecond line\"\"\"\n"
	doc, err := Parse([]byte(src))
	qt.Assert(t, qt.IsNil(err))

	s, _ := doc.Get("s").AsString()
	qt.Assert(t, qt.Equals(s, "a\tb\n"))

	ml, _ := doc.Get("ml").AsString()
	qt.Assert(t, qt.Equals(ml, "first line\nsecond line"))
}

func TestParseLiteralString(t *testing.T) {
	doc, err := Parse([]byte(`path = 'C:\Users\nodejs'` + "\n"))
	qt.Assert(t, qt.IsNil(err))
	s, _ := doc.Get("path").AsString()
	qt.Assert(t, qt.Equals(s, `C:\Users\nodejs`))
}

func TestParseNumberFormats(t *testing.T) {
	src := "hex = 0xDEADBEEF\noct = 0o755\nbin = 0b1010\nbig = 1_000_000\nneg = -17\nfl = 6.02e23\n"
	doc, err := Parse([]byte(src))
	qt.Assert(t, qt.IsNil(err))

	hex, _ := doc.Get("hex").AsInteger()
	qt.Assert(t, qt.Equals(hex, int64(0xDEADBEEF)))

	oct, _ := doc.Get("oct").AsInteger()
	qt.Assert(t, qt.Equals(oct, int64(0o755)))

	bin, _ := doc.Get("bin").AsInteger()
	qt.Assert(t, qt.Equals(bin, int64(0b1010)))

	big, _ := doc.Get("big").AsInteger()
	qt.Assert(t, qt.Equals(big, int64(1000000)))

	neg, _ := doc.Get("neg").AsInteger()
	qt.Assert(t, qt.Equals(neg, int64(-17)))

	fl, _ := doc.Get("fl").AsFloat()
	qt.Assert(t, qt.Equals(fl, 6.02e23))
}

func TestParseDateTime(t *testing.T) {
	doc, err := Parse([]byte("dob = 1979-05-27T07:32:00Z\n"))
	qt.Assert(t, qt.IsNil(err))
	dt, ok := doc.Get("dob").AsDateTime()
	qt.Assert(t, qt.IsTrue(ok))
	date, _ := dt.Date()
	qt.Assert(t, qt.Equals(date.Year, uint16(1979)))
	tm, _ := dt.Time()
	qt.Assert(t, qt.Equals(tm.Hour, uint8(7)))
	off, ok := dt.Offset()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(off.Z))
}

func TestParseDateTimeOffsetNumeric(t *testing.T) {
	doc, err := Parse([]byte("ts = 1979-05-27T00:32:00-07:00\n"))
	qt.Assert(t, qt.IsNil(err))
	dt, ok := doc.Get("ts").AsDateTime()
	qt.Assert(t, qt.IsTrue(ok))
	off, ok := dt.Offset()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsFalse(off.Z))
	qt.Assert(t, qt.Equals(off.Minutes, int16(-7*60)))
}

func TestParseLocalDateTime(t *testing.T) {
	doc, err := Parse([]byte("ldt = 1979-05-27T07:32:00\n"))
	qt.Assert(t, qt.IsNil(err))
	dt, ok := doc.Get("ldt").AsDateTime()
	qt.Assert(t, qt.IsTrue(ok))
	_, ok = dt.Offset()
	qt.Assert(t, qt.IsFalse(ok))
	tm, ok := dt.Time()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(tm.Second, uint8(0)))
}

func TestParseLocalDate(t *testing.T) {
	doc, err := Parse([]byte("ld = 1979-05-27\n"))
	qt.Assert(t, qt.IsNil(err))
	dt, ok := doc.Get("ld").AsDateTime()
	qt.Assert(t, qt.IsTrue(ok))
	date, ok := dt.Date()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(date.Month, uint8(5)))
	_, ok = dt.Time()
	qt.Assert(t, qt.IsFalse(ok))
}

func TestParseLocalTime(t *testing.T) {
	doc, err := Parse([]byte("lt = 07:32:00\n"))
	qt.Assert(t, qt.IsNil(err))
	dt, ok := doc.Get("lt").AsDateTime()
	qt.Assert(t, qt.IsTrue(ok))
	_, ok = dt.Date()
	qt.Assert(t, qt.IsFalse(ok))
	tm, ok := dt.Time()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(tm.Minute, uint8(32)))
}

func TestParseDuplicateKeyIsError(t *testing.T) {
	_, err := Parse([]byte("a = 1\na = 2\n"))
	qt.Assert(t, qt.IsNotNil(err))
	te, ok := err.(*tomlerr.Error)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(te.Kind, tomlerr.DuplicateKey))
}

func TestParseDuplicateTableIsError(t *testing.T) {
	_, err := Parse([]byte("[a]\nx = 1\n[a]\ny = 2\n"))
	qt.Assert(t, qt.IsNotNil(err))
	te, ok := err.(*tomlerr.Error)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(te.Kind, tomlerr.DuplicateTable))
}

func TestParseRedefineTableAsArrayIsError(t *testing.T) {
	_, err := Parse([]byte("[a]\nx = 1\n[[a]]\ny = 2\n"))
	qt.Assert(t, qt.IsNotNil(err))
	te, ok := err.(*tomlerr.Error)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(te.Kind, tomlerr.RedefineAsArray))
}

func TestParseDottedKeyInvalidTypeIsError(t *testing.T) {
	_, err := Parse([]byte("a = 1\na.b = 2\n"))
	qt.Assert(t, qt.IsNotNil(err))
	te, ok := err.(*tomlerr.Error)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(te.Kind, tomlerr.DottedKeyInvalidType))
}

func TestParseMultilineStringAsKeyIsError(t *testing.T) {
	_, err := Parse([]byte("\"\"\"a\"\"\" = 1\n"))
	qt.Assert(t, qt.IsNotNil(err))
	te, ok := err.(*tomlerr.Error)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(te.Kind, tomlerr.MultilineStringKey))
}

func TestParseErrorResolvesLineAndColumn(t *testing.T) {
	src := []byte("a = 1\nb = 2\na = 3\n")
	_, err := Parse(src)
	qt.Assert(t, qt.IsNotNil(err))
	te, ok := err.(*tomlerr.Error)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(te.Line, 3))
}

func TestParseHeaderThenDottedKeyExtendsSameTable(t *testing.T) {
	src := "[a]\nb.c = 1\nb.d = 2\n"
	doc, err := Parse([]byte(src))
	qt.Assert(t, qt.IsNil(err))

	c := doc.Index("a").Index("b").Index("c")
	qt.Assert(t, qt.IsTrue(c.IsSome()))
	it, _ := c.Get()
	v, _ := it.AsInteger()
	qt.Assert(t, qt.Equals(v, int64(1)))
}

func TestParseEmptyDocument(t *testing.T) {
	doc, err := Parse([]byte(""))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(doc.Root.IsEmpty()))
}

func TestParseWithOptionsMaxDepthRejectsDeepNesting(t *testing.T) {
	src := "a = " + nestedArrays(5) + "\n"
	_, err := ParseWithOptions([]byte(src), Options{MaxDepth: 2})
	qt.Assert(t, qt.IsNotNil(err))
}

func nestedArrays(depth int) string {
	s := "0"
	for i := 0; i < depth; i++ {
		s = "[" + s + "]"
	}
	return s
}
