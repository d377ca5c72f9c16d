package value

import "golang.org/x/text/unicode/norm"

// NormalizeKeys rewrites every key name in the table to Unicode NFC form.
// TOML's grammar is silent on Unicode normalization of bare/quoted keys, so
// two keys that are visually identical but differ in combining-character
// order are, strictly, different keys. Callers that source keys from
// differently-normalized inputs (e.g. comparing a parsed document against
// keys typed by a user in a text field) can opt into NFC folding here rather
// than re-deriving it themselves; the parser itself never calls this.
func (t *Table) NormalizeKeys() {
	for i := range t.entries {
		t.entries[i].key.Name = norm.NFC.String(t.entries[i].key.Name)
	}
	if t.index != nil {
		t.bulkIndex()
	}
}
