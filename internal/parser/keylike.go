package parser

import (
	"github.com/tomlgo/tomlgo/internal/tomlerr"
	"github.com/tomlgo/tomlgo/internal/value"
)

// readKeylike consumes a run of bare-key bytes (letters, digits, '_', '-')
// and returns it as a plain Go string slice of the source.
func (p *Parser) readKeylike() string {
	start := p.cursor
	for {
		b, ok := p.peekByte()
		if !ok || !isKeylikeByte(b) {
			break
		}
		p.advance()
	}
	return string(p.bytes[start:p.cursor])
}

// readTableKey reads one key segment: a bare keylike run, a basic string, or
// a literal string. Multi-line strings are rejected as keys.
func (p *Parser) readTableKey() (value.Key, error) {
	b, ok := p.peekByte()
	if !ok {
		return value.Key{}, p.setError(len(p.bytes), nil, tomlerr.NewWanted("a table key", "eof"))
	}
	switch {
	case b == '"':
		start := p.cursor
		p.advance()
		sp, val, multiline, err := p.readString(start, '"')
		if err != nil {
			return value.Key{}, err
		}
		if multiline {
			end := start + len(val)
			return value.Key{}, p.setError(start, &end, tomlerr.NewMultilineStringKey())
		}
		return value.Key{Name: val, Span: sp}, nil
	case b == '\'':
		start := p.cursor
		p.advance()
		sp, val, multiline, err := p.readString(start, '\'')
		if err != nil {
			return value.Key{}, err
		}
		if multiline {
			end := start + len(val)
			return value.Key{}, p.setError(start, &end, tomlerr.NewMultilineStringKey())
		}
		return value.Key{Name: val, Span: sp}, nil
	case isKeylikeByte(b):
		start := p.cursor
		k := p.readKeylike()
		return value.Key{Name: k, Span: span(uint32(start), uint32(p.cursor))}, nil
	default:
		start := p.cursor
		found, end := p.scanTokenDescAndEnd()
		return value.Key{}, p.setError(start, &end, tomlerr.NewWanted("a table key", found))
	}
}
