package value

import "github.com/tomlgo/tomlgo/internal/datetime"

// Kind discriminates the payload carried by an Item. Grounded on
// original_source/src/value.rs's Kind enum; the Go port keeps the exact
// string mapping documented there (Table -> "table", DateTime -> "datetime")
// rather than the swapped pair that appears in that file's as_str(), which
// reads like a copy-paste slip against its own Display impl for the sibling
// ErrorKind::Wanted messages.
type Kind uint8

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindDateTime
	KindArray
	KindTable
)

// String returns the TOML type name used in error messages such as
// ErrorKind.Wanted's "found" field.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindDateTime:
		return "datetime"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Flag carries the sub-state the original bit-packed Item squeezed into a
// spare 3 bits alongside its tag: whether an array is an array-of-tables,
// and whether a table came from a dotted-key assignment, an explicit
// [header], an implicit intermediate table, or is frozen (inline tables,
// once closed, reject further mutation). Flags only have meaning on
// KindTable/KindArray items.
type Flag uint8

const (
	FlagNone Flag = 0
	// FlagArrayOfTables marks an Array as an array-of-tables ([[name]])
	// rather than a plain bracketed array. The tables pushed into it carry
	// FlagHeader, not this flag.
	FlagArrayOfTables Flag = 1 << iota
	// FlagImplicit marks a table created as an unnamed intermediate on a
	// dotted header path (e.g. the "a" and "b" in [a.b.c]) before any
	// explicit header or key-value gives it its own identity.
	FlagImplicit
	// FlagDotted marks a table created by a dotted-key assignment
	// (a.b = 1) rather than a header.
	FlagDotted
	// FlagHeader marks a table that has been given an explicit [header].
	FlagHeader
	// FlagFrozen marks a table that rejects further mutation: inline tables
	// freeze as soon as their closing brace is consumed. Inline arrays are
	// not given this flag.
	FlagFrozen
)

// Item is the tagged-union node of the parsed tree. The Rust original packs
// this into a 24-byte bit-punned layout; a GC'd runtime cannot safely
// reinterpret raw bytes that hide pointers (Array/Table/string headers), so
// this is a plain discriminated struct instead, per the escape hatch spec.md
// documents: "Implementations that cannot safely rely on such reinterpretation
// ... should instead represent the tree as a tagged-union value node."
type Item struct {
	Kind Kind
	Span Span

	str      string
	int64Val int64
	floatVal float64
	boolVal  bool
	dt       datetime.DateTime
	arr      *Array
	tbl      *Table
}

// String builds a KindString item.
func String(s string, span Span) Item { return Item{Kind: KindString, Span: span, str: s} }

// Integer builds a KindInteger item.
func Integer(v int64, span Span) Item { return Item{Kind: KindInteger, Span: span, int64Val: v} }

// Float builds a KindFloat item.
func Float(v float64, span Span) Item { return Item{Kind: KindFloat, Span: span, floatVal: v} }

// Boolean builds a KindBoolean item.
func Boolean(v bool, span Span) Item { return Item{Kind: KindBoolean, Span: span, boolVal: v} }

// DateTimeItem builds a KindDateTime item.
func DateTimeItem(v datetime.DateTime, span Span) Item {
	return Item{Kind: KindDateTime, Span: span, dt: v}
}

// ArrayItem wraps an *Array as an Item. span seeds both the Item's own Span
// and a.Span; thereafter a.Span is the live value (extended in place as the
// array-of-tables gains entries) and this Item's Span field is not kept in
// sync — callers read a table/array Item's current span via SpanNow() rather
// than the Span field.
func ArrayItem(a *Array, span Span) Item {
	a.Span = span
	return Item{Kind: KindArray, Span: span, arr: a}
}

// TableItem wraps a *Table as an Item. See ArrayItem for the span-liveness
// note; the same applies to t.Span/t.Flag.
func TableItem(t *Table, span Span) Item {
	t.Span = span
	return Item{Kind: KindTable, Span: span, tbl: t}
}

// AsString returns the string payload and whether Kind == KindString.
func (it *Item) AsString() (string, bool) {
	if it.Kind != KindString {
		return "", false
	}
	return it.str, true
}

// AsInteger returns the integer payload and whether Kind == KindInteger.
func (it *Item) AsInteger() (int64, bool) {
	if it.Kind != KindInteger {
		return 0, false
	}
	return it.int64Val, true
}

// AsFloat returns the float payload and whether Kind == KindFloat.
func (it *Item) AsFloat() (float64, bool) {
	if it.Kind != KindFloat {
		return 0, false
	}
	return it.floatVal, true
}

// AsBool returns the bool payload and whether Kind == KindBoolean.
func (it *Item) AsBool() (bool, bool) {
	if it.Kind != KindBoolean {
		return false, false
	}
	return it.boolVal, true
}

// AsDateTime returns the datetime payload and whether Kind == KindDateTime.
func (it *Item) AsDateTime() (datetime.DateTime, bool) {
	if it.Kind != KindDateTime {
		return datetime.DateTime{}, false
	}
	return it.dt, true
}

// AsArray returns the backing *Array and whether Kind == KindArray.
func (it *Item) AsArray() (*Array, bool) {
	if it.Kind != KindArray {
		return nil, false
	}
	return it.arr, true
}

// AsTable returns the backing *Table and whether Kind == KindTable.
func (it *Item) AsTable() (*Table, bool) {
	if it.Kind != KindTable {
		return nil, false
	}
	return it.tbl, true
}

// Flags returns the live Flag bits for a table/array item, read from the
// underlying *Table/*Array rather than a cached copy, and FlagNone for
// scalar kinds.
func (it *Item) Flags() Flag {
	switch it.Kind {
	case KindTable:
		return it.tbl.Flag
	case KindArray:
		return it.arr.Flag
	default:
		return FlagNone
	}
}

// SpanNow returns the item's current span: for tables/arrays this is the
// live, possibly-extended Table.Span/Array.Span rather than the snapshot
// taken when the Item was constructed.
func (it *Item) SpanNow() Span {
	switch it.Kind {
	case KindTable:
		return it.tbl.Span
	case KindArray:
		return it.arr.Span
	default:
		return it.Span
	}
}

// IsFrozen reports whether a table/array item carries FlagFrozen (inline
// tables are frozen the moment their closing brace is read).
func (it *Item) IsFrozen() bool {
	return it.Flags()&FlagFrozen != 0
}

// IsTable reports whether the item is a table.
func (it *Item) IsTable() bool { return it.Kind == KindTable }

// IsArray reports whether the item is an array.
func (it *Item) IsArray() bool { return it.Kind == KindArray }

// HasHeaderBit reports whether a table item carries an explicit [header].
func (it *Item) HasHeaderBit() bool { return it.Flags()&FlagHeader != 0 }

// HasDottedBit reports whether a table item was created via a dotted key.
func (it *Item) HasDottedBit() bool { return it.Flags()&FlagDotted != 0 }

// IsArrayOfTables reports whether an array item is an array-of-tables.
func (it *Item) IsArrayOfTables() bool { return it.Flags()&FlagArrayOfTables != 0 }
