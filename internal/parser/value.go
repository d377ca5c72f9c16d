package parser

import (
	"github.com/tomlgo/tomlgo/internal/datetime"
	"github.com/tomlgo/tomlgo/internal/tomlerr"
	"github.com/tomlgo/tomlgo/internal/value"
)

// value parses one TOML value: a string, inline table, array, signed or
// bare number/boolean/special-float keylike token.
func (p *Parser) value() (value.Item, error) {
	at := p.cursor
	b, ok := p.peekByte()
	if !ok {
		return value.Item{}, p.setError(len(p.bytes), nil, tomlerr.NewUnexpectedEOF())
	}

	switch {
	case b == '"':
		p.advance()
		sp, val, _, err := p.readString(p.cursor-1, '"')
		if err != nil {
			return value.Item{}, err
		}
		return value.String(val, sp), nil

	case b == '\'':
		p.advance()
		sp, val, _, err := p.readString(p.cursor-1, '\'')
		if err != nil {
			return value.Item{}, err
		}
		return value.String(val, sp), nil

	case b == '{':
		start := uint32(p.cursor)
		p.advance()
		if p.depth >= p.opts.maxDepth() {
			return value.Item{}, p.setError(p.cursor, nil, tomlerr.NewCustom("exceeded maximum nesting depth"))
		}
		p.depth++
		tbl := value.NewTable()
		endSpan, err := p.inlineTableContents(tbl)
		p.depth--
		if err != nil {
			return value.Item{}, err
		}
		tbl.Flag |= value.FlagFrozen
		return value.TableItem(tbl, span(start, endSpan.End)), nil

	case b == '[':
		start := uint32(p.cursor)
		p.advance()
		if p.depth >= p.opts.maxDepth() {
			return value.Item{}, p.setError(p.cursor, nil, tomlerr.NewCustom("exceeded maximum nesting depth"))
		}
		p.depth++
		arr := value.NewArray()
		endSpan, err := p.arrayContents(arr)
		p.depth--
		if err != nil {
			return value.Item{}, err
		}
		return value.ArrayItem(arr, span(start, endSpan.End)), nil

	case b == '+':
		start := uint32(p.cursor)
		p.advance()
		return p.numberLeadingPlus(start)

	case isKeylikeByte(b):
		start := uint32(p.cursor)
		if dt, consumed, ok := p.tryDateTime(); ok {
			return value.DateTimeItem(dt, span(start, start+uint32(consumed))), nil
		}
		key := p.readKeylike()
		end := uint32(p.cursor)
		sp := span(start, end)

		switch key {
		case "true":
			return value.Boolean(true, sp), nil
		case "false":
			return value.Boolean(false, sp), nil
		case "inf", "nan":
			return p.number(start, end, key)
		default:
			c := rune(key[0])
			if c == '-' || (c >= '0' && c <= '9') {
				return p.number(start, end, key)
			}
			endInt := int(end)
			return value.Item{}, p.setError(at, &endInt, tomlerr.NewUnquotedString())
		}

	default:
		found, end := p.scanTokenDescAndEnd()
		return value.Item{}, p.setError(at, &end, tomlerr.NewWanted("a value", found))
	}
}

// tryDateTime speculatively matches a TOML date-time at the cursor.
// isKeylikeByte excludes ':', so a plain readKeylike can never cover a
// time-of-day or offset date-time; this instead finds the full run of
// keylike-or-colon bytes the token would otherwise claim and only accepts
// datetime.Munch's result if it consumes that entire run, so a bare key
// like "2023-01-01x" still falls through to the ordinary keylike/number
// handling instead of being mistaken for a truncated date.
func (p *Parser) tryDateTime() (datetime.DateTime, int, bool) {
	runLen := 0
	for {
		b, ok := p.peekByteAt(runLen)
		if !ok || !(isKeylikeByte(b) || b == ':') {
			break
		}
		runLen++
	}
	consumed, dt, ok := datetime.Munch(p.bytes[p.cursor:])
	if !ok || consumed != runLen {
		return datetime.DateTime{}, 0, false
	}
	p.cursor += consumed
	return dt, consumed, true
}

// inlineTableContents parses the body of an inline table, up to and
// including its closing '}'. TOML v1.1 permits newlines and comments inside
// inline tables, unlike v1.0.
func (p *Parser) inlineTableContents(out *value.Table) (value.Span, error) {
	if err := p.eatInlineTableWhitespace(); err != nil {
		return value.Span{}, err
	}
	if sp, ok := p.eatByteSpanned('}'); ok {
		return sp, nil
	}

	for {
		tablePtr := out
		key, err := p.readTableKey()
		if err != nil {
			return value.Span{}, err
		}
		if err := p.eatInlineTableWhitespace(); err != nil {
			return value.Span{}, err
		}
		for p.eatByte('.') {
			if err := p.eatInlineTableWhitespace(); err != nil {
				return value.Span{}, err
			}
			tablePtr, err = p.navigateDottedKey(tablePtr, key)
			if err != nil {
				return value.Span{}, err
			}
			key, err = p.readTableKey()
			if err != nil {
				return value.Span{}, err
			}
			if err := p.eatInlineTableWhitespace(); err != nil {
				return value.Span{}, err
			}
		}

		if err := p.expectByte('='); err != nil {
			return value.Span{}, err
		}
		if err := p.eatInlineTableWhitespace(); err != nil {
			return value.Span{}, err
		}
		val, err := p.value()
		if err != nil {
			return value.Span{}, err
		}
		if err := p.insertValue(tablePtr, key, val); err != nil {
			return value.Span{}, err
		}

		if err := p.eatInlineTableWhitespace(); err != nil {
			return value.Span{}, err
		}
		if sp, ok := p.eatByteSpanned('}'); ok {
			return sp, nil
		}
		if err := p.expectByte(','); err != nil {
			return value.Span{}, err
		}
		if err := p.eatInlineTableWhitespace(); err != nil {
			return value.Span{}, err
		}
		if sp, ok := p.eatByteSpanned('}'); ok {
			return sp, nil
		}
	}
}

func (p *Parser) arrayContents(out *value.Array) (value.Span, error) {
	for {
		if err := p.eatIntermediate(); err != nil {
			return value.Span{}, err
		}
		if sp, ok := p.eatByteSpanned(']'); ok {
			return sp, nil
		}
		val, err := p.value()
		if err != nil {
			return value.Span{}, err
		}
		out.Push(val)
		if err := p.eatIntermediate(); err != nil {
			return value.Span{}, err
		}
		if !p.eatByte(',') {
			break
		}
	}
	if err := p.eatIntermediate(); err != nil {
		return value.Span{}, err
	}
	return p.expectByteSpanned(']')
}

func (p *Parser) eatInlineTableWhitespace() error {
	for {
		p.eatWhitespace()
		if p.eatNewline() {
			continue
		}
		ok, err := p.eatComment()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

func (p *Parser) eatIntermediate() error {
	for {
		p.eatWhitespace()
		if p.eatNewline() {
			continue
		}
		ok, err := p.eatComment()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
