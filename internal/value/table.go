package value

// minTableCap mirrors the original's MIN_CAP for a table's first allocation.
const minTableCap = 2

// indexedTableThreshold is the entry count at which Table switches from a
// linear scan over its key slice to a hash-assisted lookup. Below this,
// small tables (the overwhelming majority of real TOML documents) avoid the
// map allocation and hashing cost entirely; at and above it, lookups are
// amortized O(1). Grounded on original_source/src/table.rs's InnerTable.
const indexedTableThreshold = 6

type entry struct {
	key Key
	val Item
}

// Table is an ordered map from Key to Item. It keeps insertion order (for
// round-tripping and iteration) and lazily builds a hash index once it
// reaches indexedTableThreshold entries.
type Table struct {
	entries []entry
	index   map[string]int // name -> index into entries; nil below threshold
	Span    Span
	Flag    Flag
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Len reports the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// IsEmpty reports whether the table has no entries.
func (t *Table) IsEmpty() bool { return len(t.entries) == 0 }

// FirstKeySpanStart returns the span.Start of the table's first-inserted
// key. The table is known to have been created at a unique input position,
// so this value is stable for the table's lifetime and only meaningful once
// the table holds at least one entry.
func (t *Table) FirstKeySpanStart() (uint32, bool) {
	if len(t.entries) == 0 {
		return 0, false
	}
	return t.entries[0].key.Span.Start, true
}

func (t *Table) find(name string) int {
	if t.index != nil {
		if i, ok := t.index[name]; ok {
			return i
		}
		return -1
	}
	for i := range t.entries {
		if t.entries[i].key.Name == name {
			return i
		}
	}
	return -1
}

// ContainsKey reports whether name is present.
func (t *Table) ContainsKey(name string) bool {
	return t.find(name) >= 0
}

// Get returns a pointer to the item stored under name, or nil.
func (t *Table) Get(name string) *Item {
	i := t.find(name)
	if i < 0 {
		return nil
	}
	return &t.entries[i].val
}

// GetKey returns the stored Key (with its original span) for name.
func (t *Table) GetKey(name string) (Key, bool) {
	i := t.find(name)
	if i < 0 {
		return Key{}, false
	}
	return t.entries[i].key, true
}

// Insert adds a new entry. The caller is responsible for checking
// ContainsKey first; Insert does not overwrite — it always appends, matching
// the original's insert-only InnerTable (duplicate detection happens in the
// parser before Insert is ever called).
func (t *Table) Insert(key Key, val Item) {
	if len(t.entries) == 0 {
		t.entries = make([]entry, 0, minTableCap)
	} else if len(t.entries) == cap(t.entries) {
		grown := make([]entry, len(t.entries), cap(t.entries)*2)
		copy(grown, t.entries)
		t.entries = grown
	}
	t.entries = append(t.entries, entry{key: key, val: val})
	n := len(t.entries)

	switch {
	case n == indexedTableThreshold:
		t.bulkIndex()
	case t.index != nil:
		t.index[key.Name] = n - 1
	}
}

// bulkIndex builds the hash index the moment the table reaches
// indexedTableThreshold entries.
func (t *Table) bulkIndex() {
	t.index = make(map[string]int, len(t.entries)*2)
	for i, e := range t.entries {
		t.index[e.key.Name] = i
	}
}

// RemoveEntry removes and returns the entry for name via swap-remove,
// mirroring InnerTable::remove_entry. Swap-remove means iteration order is
// not preserved after a removal; callers that need order should avoid
// removing mid-iteration, which matches this tree's only consumer
// (extract.TableHelper-style consumption is out of scope for this module).
func (t *Table) RemoveEntry(name string) (Key, Item, bool) {
	i := t.find(name)
	if i < 0 {
		return Key{}, Item{}, false
	}
	e := t.entries[i]
	last := len(t.entries) - 1
	t.entries[i] = t.entries[last]
	t.entries = t.entries[:last]
	if t.index != nil {
		delete(t.index, name)
		if i != last {
			t.index[t.entries[i].key.Name] = i
		}
	}
	return e.key, e.val, true
}

// SetHeaderFlag marks the table as having received an explicit [header],
// clearing FlagImplicit (a table can start implicit and later be confirmed
// by its own header, e.g. "[a.b]\n[a]").
func (t *Table) SetHeaderFlag() {
	t.Flag |= FlagHeader
	t.Flag &^= FlagImplicit
}

// ExtendSpan widens the table's span to cover end.
func (t *Table) ExtendSpan(end uint32) {
	if end > t.Span.End {
		t.Span.End = end
	}
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []Key {
	keys := make([]Key, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.key
	}
	return keys
}

// Entries calls fn for every (key, item) pair in insertion order.
func (t *Table) Entries(fn func(Key, *Item)) {
	for i := range t.entries {
		fn(t.entries[i].key, &t.entries[i].val)
	}
}
