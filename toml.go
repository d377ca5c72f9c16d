// Package tomlgo parses TOML v1.1 documents into a byte-span-preserving
// in-memory tree. It is the root facade over internal/parser; callers that
// need the full tree (rather than a handful of extracted fields) use
// Document, and extract/ for pulling individual values out of one.
package tomlgo

import (
	"github.com/tomlgo/tomlgo/internal/parser"
	"github.com/tomlgo/tomlgo/internal/tomlerr"
	"github.com/tomlgo/tomlgo/internal/value"
)

// Options configures a parse. The zero value is a valid, fully-default
// configuration.
type Options struct {
	// MaxDepth bounds inline-table/array nesting depth. Zero means a
	// built-in default.
	MaxDepth int
}

// Document is a parsed TOML document: its root table, plus the original
// source bytes (kept only so a returned Error can lazily resolve line/column
// information via Resolve).
type Document struct {
	Root *value.Table
	src  []byte
}

// Parse parses input as a TOML document.
func Parse(input []byte) (*Document, error) {
	return ParseWithOptions(input, Options{})
}

// ParseWithOptions parses input with explicit Options.
func ParseWithOptions(input []byte, opts Options) (*Document, error) {
	root, err := parser.Parse(input, parser.Options{MaxDepth: opts.MaxDepth})
	if err != nil {
		return nil, resolve(err, input)
	}
	return &Document{Root: root, src: input}, nil
}

// Resolve fills in Line/Col on a *tomlerr.Error returned by Parse, if e is
// one. Other error types are returned unchanged.
func Resolve(e error, src []byte) error {
	return resolve(e, src)
}

func resolve(err error, src []byte) error {
	if te, ok := err.(*tomlerr.Error); ok {
		te.Resolve(src)
		return te
	}
	return err
}

// Get looks up a top-level key in the document's root table.
func (d *Document) Get(name string) *value.Item {
	return d.Root.Get(name)
}

// Index starts a panic-free chained lookup from the document root, e.g.
// d.Index("a").Index("b").IndexN(0).
func (d *Document) Index(name string) value.MaybeItem {
	it := d.Root.Get(name)
	if it == nil {
		return value.None()
	}
	return value.Some(it)
}
