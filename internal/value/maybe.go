package value

// MaybeItem overlays an Item that may or may not exist, so that chained
// lookups such as doc.Index("a").Index("b").IndexN(3) never panic even when
// an intermediate key is missing or the wrong shape. A nil *Item inside
// represents "missing"; the Rust original achieves the same effect by
// returning a reference to a static NONE sentinel instead, a trick with no
// Go analogue (Go has no const/static place for a pointee to alias), so this
// port just holds a nil pointer directly.
type MaybeItem struct {
	item *Item
}

// Some wraps a present item.
func Some(it *Item) MaybeItem { return MaybeItem{item: it} }

// None is the absent overlay value.
func None() MaybeItem { return MaybeItem{} }

// IsSome reports whether the overlay wraps a present item.
func (m MaybeItem) IsSome() bool { return m.item != nil }

// Get returns the wrapped item and whether it is present.
func (m MaybeItem) Get() (*Item, bool) {
	return m.item, m.item != nil
}

// Index looks up name in the wrapped item if it is a table; any other case
// (missing, wrong kind) yields None, never a panic.
func (m MaybeItem) Index(name string) MaybeItem {
	if m.item == nil {
		return None()
	}
	tbl, ok := m.item.AsTable()
	if !ok {
		return None()
	}
	got := tbl.Get(name)
	if got == nil {
		return None()
	}
	return Some(got)
}

// IndexN looks up index i in the wrapped item if it is an array; any other
// case yields None.
func (m MaybeItem) IndexN(i int) MaybeItem {
	if m.item == nil {
		return None()
	}
	arr, ok := m.item.AsArray()
	if !ok {
		return None()
	}
	got := arr.Get(i)
	if got == nil {
		return None()
	}
	return Some(got)
}

// Index wraps it in a MaybeItem and looks up name, starting a panic-free
// chain from a plain Item.
func (it *Item) Index(name string) MaybeItem {
	return Some(it).Index(name)
}

// IndexN is the array-indexing counterpart of Index.
func (it *Item) IndexN(i int) MaybeItem {
	return Some(it).IndexN(i)
}
