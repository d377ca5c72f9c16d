// Package parser implements the TOML document scanner/parser. It is built
// in the manner of a hand-written recursive-descent scanner — a byte cursor
// with peek/advance primitives in the style of the teacher's
// cue/scanner.Scanner — driven by TOML's grammar instead of CUE's, and
// ported closely from original_source/src/parser.rs.
package parser

import (
	"github.com/tomlgo/tomlgo/internal/arena"
	"github.com/tomlgo/tomlgo/internal/tomlerr"
	"github.com/tomlgo/tomlgo/internal/value"
)

// maxInputSize bounds the documents this parser accepts at 2^29 bytes
// (512MiB), the 29-bit offset width of the original's packed spans; Span
// endpoints here are plain uint32 values.
const maxInputSize = 1 << 29

// defaultMaxDepth caps nested inline-table/array recursion, per the
// concurrency/resource model: parsing is single-threaded and recursion is
// the only unbounded resource an adversarial document can grow.
const defaultMaxDepth = 128

// Options configures a parse. The zero value is a valid, fully-default
// configuration.
type Options struct {
	// MaxDepth bounds inline-table/array nesting depth. Zero means
	// defaultMaxDepth.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return defaultMaxDepth
	}
	return o.MaxDepth
}

// Parser holds scanning state for one document. It is not reusable across
// documents; construct a fresh Parser (via Parse) for each input.
type Parser struct {
	bytes  []byte
	cursor int

	arena      *arena.Arena
	scratch    *arena.Scratch // in-progress owned string content, nil between strings
	opts       Options
	depth      int
	firstError *tomlerr.Error

	root *value.Table
	ctx  []ctxFrame
}

// ctxFrame is the table currently being populated plus, when that table is
// itself an entry of an array-of-tables, the array whose span must be
// extended alongside it. Table/Array pointers are stable Go allocations, so
// unlike original_source/src/parser.rs's Ctx (which stores raw pointers into
// a tagged Value to survive reallocation under Rust's ownership model),
// this just holds the pointers directly.
type ctxFrame struct {
	tbl *value.Table
	arr *value.Array
}

func (p *Parser) currentTable() *value.Table {
	return p.ctx[len(p.ctx)-1].tbl
}

func (p *Parser) resetToRoot() {
	p.ctx = p.ctx[:0]
	p.ctx = append(p.ctx, ctxFrame{tbl: p.root})
}

func (p *Parser) pushTableCtx(tbl *value.Table, arr *value.Array) {
	p.ctx = append(p.ctx, ctxFrame{tbl: tbl, arr: arr})
}

// Parse parses input as a TOML document and returns its root table. On
// error it returns the first error encountered; TOML parsing is not
// designed to recover and continue after a syntax error.
func Parse(input []byte, opts Options) (*value.Table, error) {
	if len(input) > maxInputSize {
		return nil, &tomlerr.Error{Kind: tomlerr.FileTooLarge}
	}
	p := &Parser{
		bytes: input,
		arena: arena.New(),
		opts:  opts,
		root:  value.NewTable(),
	}
	if err := p.parseDocument(); err != nil {
		return nil, err
	}
	return p.root, nil
}

func (p *Parser) setError(start int, end *int, err tomlerr.Error) *tomlerr.Error {
	e := err
	e.Span = value.NewSpan(uint32(start), uint32(start))
	if end != nil {
		e.Span.End = uint32(*end)
	} else {
		e.Span.End = uint32(start)
	}
	if p.firstError == nil {
		p.firstError = &e
	}
	return &e
}

func span(s, e uint32) value.Span { return value.NewSpan(s, e) }
