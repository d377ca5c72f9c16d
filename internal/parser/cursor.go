package parser

import (
	"github.com/tomlgo/tomlgo/internal/tomlerr"
	"github.com/tomlgo/tomlgo/internal/value"
)

func (p *Parser) peekByte() (byte, bool) {
	if p.cursor >= len(p.bytes) {
		return 0, false
	}
	return p.bytes[p.cursor], true
}

func (p *Parser) peekByteAt(offset int) (byte, bool) {
	i := p.cursor + offset
	if i < 0 || i >= len(p.bytes) {
		return 0, false
	}
	return p.bytes[i], true
}

func (p *Parser) advance() {
	p.cursor++
}

func (p *Parser) eatByte(b byte) bool {
	if c, ok := p.peekByte(); ok && c == b {
		p.cursor++
		return true
	}
	return false
}

// eatByteSpanned consumes b and reports the single-byte span it occupied.
func (p *Parser) eatByteSpanned(b byte) (value.Span, bool) {
	start := p.cursor
	if p.eatByte(b) {
		return span(uint32(start), uint32(p.cursor)), true
	}
	return value.Span{}, false
}

func (p *Parser) expectByte(b byte) error {
	if p.eatByte(b) {
		return nil
	}
	found, end := p.scanTokenDescAndEnd()
	return p.setError(p.cursor, &end, tomlerr.NewWanted(byteDescribe(b), found))
}

func (p *Parser) expectByteSpanned(b byte) (value.Span, error) {
	sp, ok := p.eatByteSpanned(b)
	if ok {
		return sp, nil
	}
	found, end := p.scanTokenDescAndEnd()
	return value.Span{}, p.setError(p.cursor, &end, tomlerr.NewWanted(byteDescribe(b), found))
}

// nextChar decodes the next UTF-8 rune, folding a CRLF pair into a single
// '\n', matching original_source/src/parser.rs's next_char.
func (p *Parser) nextChar() (int, rune, bool) {
	if p.cursor >= len(p.bytes) {
		return 0, 0, false
	}
	start := p.cursor
	b := p.bytes[p.cursor]
	if b == '\r' {
		if nb, ok := p.peekByteAt(1); ok && nb == '\n' {
			p.cursor += 2
			return start, '\n', true
		}
	}
	if b < 0x80 {
		p.cursor++
		return start, rune(b), true
	}
	r, w := decodeRuneUTF8(p.bytes[p.cursor:])
	p.cursor += w
	return start, r, true
}

func (p *Parser) eatWhitespace() {
	for {
		b, ok := p.peekByte()
		if !ok || (b != ' ' && b != '\t') {
			return
		}
		p.cursor++
	}
}

// eatComment consumes a '#'-introduced comment if present, reporting
// whether one was found. Control characters other than tab are rejected
// inside comments.
func (p *Parser) eatComment() (bool, error) {
	if !p.eatByte('#') {
		return false, nil
	}
	for {
		b, ok := p.peekByte()
		if !ok {
			return true, nil
		}
		if b == '\n' {
			return true, nil
		}
		if b == '\r' {
			if nb, ok2 := p.peekByteAt(1); ok2 && nb == '\n' {
				return true, nil
			}
		}
		if (b < 0x20 && b != 0x09) || b == 0x7F {
			start := p.cursor
			p.cursor++
			return true, p.setError(start, nil, tomlerr.NewUnexpected(rune(b)))
		}
		if b < 0x80 {
			p.cursor++
		} else {
			_, w := decodeRuneUTF8(p.bytes[p.cursor:])
			p.cursor += w
		}
	}
}

func (p *Parser) eatNewline() bool {
	if p.eatByte('\n') {
		return true
	}
	if b, ok := p.peekByte(); ok && b == '\r' {
		if nb, ok2 := p.peekByteAt(1); ok2 && nb == '\n' {
			p.cursor += 2
			return true
		}
	}
	return false
}

func (p *Parser) eatNewlineOrEOF() error {
	if _, ok := p.peekByte(); !ok {
		return nil
	}
	if p.eatNewline() {
		return nil
	}
	if ok, err := p.eatComment(); err != nil {
		return err
	} else if ok {
		return p.eatNewlineOrEOF()
	}
	found, end := p.scanTokenDescAndEnd()
	return p.setError(p.cursor, &end, tomlerr.NewWanted("newline", found))
}

// scanTokenDescAndEnd produces a human description of the next token for
// error messages ("wanted X, found Y"), plus the byte offset it ends at.
func (p *Parser) scanTokenDescAndEnd() (string, int) {
	start, r, ok := p.nextChar()
	if !ok {
		return "eof", p.cursor
	}
	_ = start
	return byteDescribeRune(r), p.cursor
}

func isKeylikeByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func byteDescribe(b byte) string {
	return byteDescribeRune(rune(b))
}

func byteDescribeRune(r rune) string {
	switch r {
	case '\n':
		return "newline"
	case '\t':
		return "tab"
	case '=':
		return "an equals"
	case '.':
		return "a period"
	case ',':
		return "a comma"
	case ':':
		return "a colon"
	case '}':
		return "a right brace"
	case '{':
		return "a left brace"
	case ']':
		return "a right bracket"
	case '[':
		return "a left bracket"
	case '"':
		return "a double quote"
	case '\'':
		return "a single quote"
	case '#':
		return "a pound sign"
	default:
		return "a character"
	}
}

// decodeRuneUTF8 is a minimal UTF-8 decoder so this package does not depend
// on unicode/utf8 for what is, in this grammar, an exceedingly rare path
// (only comments and string contents contain non-ASCII bytes).
func decodeRuneUTF8(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0xFFFD, 0
	}
	c0 := b[0]
	switch {
	case c0&0x80 == 0:
		return rune(c0), 1
	case c0&0xE0 == 0xC0 && len(b) >= 2:
		return rune(c0&0x1F)<<6 | rune(b[1]&0x3F), 2
	case c0&0xF0 == 0xE0 && len(b) >= 3:
		return rune(c0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
	case c0&0xF8 == 0xF0 && len(b) >= 4:
		return rune(c0&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4
	default:
		return 0xFFFD, 1
	}
}
