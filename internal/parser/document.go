package parser

import (
	"github.com/tomlgo/tomlgo/internal/tomlerr"
)

// parseDocument drives the top-level document loop: whitespace/comments/
// blank lines are skipped between statements, each of which is either a
// table header ([name] / [[name]]) or a key-value pair.
func (p *Parser) parseDocument() error {
	p.resetToRoot()

	for {
		p.eatWhitespace()
		ok, err := p.eatComment()
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if p.eatNewline() {
			continue
		}

		b, ok := p.peekByte()
		switch {
		case !ok:
			return nil
		case b == '[':
			if err := p.processTableHeader(); err != nil {
				return err
			}
		case b == '\r':
			start := p.cursor
			return p.setError(start, nil, tomlerr.NewUnexpected('\r'))
		default:
			if err := p.processKeyValue(); err != nil {
				return err
			}
		}
	}
}

// processTableHeader parses one [a.b.c] or [[a.b.c]] header line and
// navigates (creating tables as needed) so that subsequent key-value lines
// populate the right table.
func (p *Parser) processTableHeader() error {
	headerStart := uint32(p.cursor)
	if err := p.expectByte('['); err != nil {
		return err
	}
	isArray := p.eatByte('[')

	p.resetToRoot()
	ctxBase := len(p.ctx)

	p.eatWhitespace()
	key, err := p.readTableKey()
	if err != nil {
		return err
	}
	for {
		p.eatWhitespace()
		if p.eatByte('.') {
			p.eatWhitespace()
			// header_end isn't known yet; implicit tables created here get
			// their span patched below once the closing bracket is read.
			if err := p.navigateHeaderIntermediate(key, headerStart, 0); err != nil {
				return err
			}
			key, err = p.readTableKey()
			if err != nil {
				return err
			}
			continue
		}
		break
	}

	p.eatWhitespace()
	if err := p.expectByte(']'); err != nil {
		return err
	}
	if isArray {
		if err := p.expectByte(']'); err != nil {
			return err
		}
	}

	p.eatWhitespace()
	commented, err := p.eatComment()
	if err != nil {
		return err
	}
	if !commented {
		if err := p.eatNewlineOrEOF(); err != nil {
			return err
		}
	}
	headerEnd := uint32(p.cursor)

	for _, frame := range p.ctx[ctxBase:] {
		if frame.tbl.Span.End == 0 {
			frame.tbl.Span.End = headerEnd
		}
	}

	if isArray {
		return p.navigateHeaderArrayFinal(key, headerStart, headerEnd)
	}
	return p.navigateHeaderTableFinal(key, headerStart, headerEnd)
}

// processKeyValue parses one `key = value` line (possibly with dotted key
// segments) and inserts it into the current table, extending that table's
// (and, if it is an array-of-tables entry, the array's) span to cover it.
func (p *Parser) processKeyValue() error {
	lineStart := uint32(p.cursor)
	tablePtr := p.currentTable()

	key, err := p.readTableKey()
	if err != nil {
		return err
	}
	p.eatWhitespace()

	for p.eatByte('.') {
		p.eatWhitespace()
		tablePtr, err = p.navigateDottedKey(tablePtr, key)
		if err != nil {
			return err
		}
		key, err = p.readTableKey()
		if err != nil {
			return err
		}
		p.eatWhitespace()
	}

	if err := p.expectByte('='); err != nil {
		return err
	}
	p.eatWhitespace()
	val, err := p.value()
	if err != nil {
		return err
	}
	lineEnd := uint32(p.cursor)

	p.eatWhitespace()
	commented, err := p.eatComment()
	if err != nil {
		return err
	}
	if !commented {
		if err := p.eatNewlineOrEOF(); err != nil {
			return err
		}
	}

	if err := p.insertValue(tablePtr, key, val); err != nil {
		return err
	}

	frame := p.ctx[len(p.ctx)-1]
	if lineStart < frame.tbl.Span.Start {
		frame.tbl.Span.Start = lineStart
	}
	frame.tbl.ExtendSpan(lineEnd)
	if frame.arr != nil {
		frame.arr.ExtendSpan(lineEnd)
	}
	return nil
}
