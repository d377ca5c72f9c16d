package parser

import (
	"unicode/utf8"

	"github.com/tomlgo/tomlgo/internal/tomlerr"
	"github.com/tomlgo/tomlgo/internal/value"
)

// startOwned begins copying string content into an arena-backed scratch
// buffer once an escape or line-ending fold forces the content to diverge
// from a plain slice of the source.
func (p *Parser) startOwned(contentStart, i int) {
	p.scratch = p.arena.NewScratch()
	p.scratch.Extend(p.bytes[contentStart:i])
}

// readString parses a quoted string whose opening delimiter sits at start;
// the caller has already consumed that delimiter, so p.cursor is start+1.
// It returns the string's span (covering only its content, excluding
// quotes), decoded text, and whether it was a multi-line string.
func (p *Parser) readString(start int, delim byte) (value.Span, string, bool, error) {
	multiline := false
	if p.eatByte(delim) {
		if p.eatByte(delim) {
			multiline = true
		} else {
			return span(uint32(start+1), uint32(start+1)), "", false, nil
		}
	}

	contentStart := p.cursor
	if multiline {
		if b, ok := p.peekByte(); ok && b == '\n' {
			p.advance()
			contentStart = p.cursor
		} else if ok && b == '\r' {
			if nb, ok2 := p.peekByteAt(1); ok2 && nb == '\n' {
				p.cursor += 2
				contentStart = p.cursor
			}
		}
	}

	return p.readStringLoop(start, contentStart, multiline, delim)
}

// skipStringPlain advances the cursor past bytes that need no special
// handling inside a string. Unlike original_source/src/parser.rs, which
// scans 8 bytes at a time via SWAR, this is a plain scalar loop: per
// spec.md's own design notes, a scalar loop is the right default for a Go
// port and SWAR bit tricks are only worth reaching for once profiling shows
// string scanning as a bottleneck.
func (p *Parser) skipStringPlain(delim byte) {
	for {
		b, ok := p.peekByte()
		if !ok || b == delim || b == '\\' || b == 0x7F || (b < 0x20 && b != 0x09) {
			return
		}
		p.cursor++
	}
}

func (p *Parser) readStringLoop(start, contentStart int, multiline bool, delim byte) (value.Span, string, bool, error) {
	owned := false

	for {
		plainStart := p.cursor
		p.skipStringPlain(delim)
		if owned && plainStart < p.cursor {
			p.scratch.Extend(p.bytes[plainStart:p.cursor])
		}

		i := p.cursor
		if i >= len(p.bytes) {
			return value.Span{}, "", false, p.setError(start, nil, tomlerr.NewUnterminatedString())
		}
		b := p.bytes[i]
		p.cursor = i + 1

		switch {
		case b == '\r':
			if p.eatByte('\n') {
				if !multiline {
					return value.Span{}, "", false, p.setError(i, nil, tomlerr.NewInvalidCharInString('\n'))
				}
				if owned {
					p.scratch.Push('\r')
					p.scratch.Push('\n')
				}
			} else {
				return value.Span{}, "", false, p.setError(i, nil, tomlerr.NewInvalidCharInString('\r'))
			}

		case b == '\n':
			if !multiline {
				return value.Span{}, "", false, p.setError(i, nil, tomlerr.NewInvalidCharInString('\n'))
			}
			if owned {
				p.scratch.Push('\n')
			}

		case b == delim:
			if multiline {
				if !p.eatByte(delim) {
					if owned {
						p.scratch.Push(delim)
					}
					continue
				}
				if !p.eatByte(delim) {
					if owned {
						p.scratch.Push(delim)
						p.scratch.Push(delim)
					}
					continue
				}
				extra := 0
				if p.eatByte(delim) {
					if owned {
						p.scratch.Push(delim)
					}
					extra++
				}
				if p.eatByte(delim) {
					if owned {
						p.scratch.Push(delim)
					}
					extra++
				}

				startOff := 3
				if start+3 < len(p.bytes) {
					switch p.bytes[start+3] {
					case '\n':
						startOff = 4
					case '\r':
						startOff = 5
					}
				}
				sp := span(uint32(start+startOff), uint32(p.cursor-3))
				val := p.finishString(owned, contentStart, i+extra)
				return sp, val, true, nil
			}

			sp := span(uint32(start+1), uint32(p.cursor-1))
			val := p.finishString(owned, contentStart, i)
			return sp, val, false, nil

		case b == '\\' && delim == '"':
			if !owned {
				p.startOwned(contentStart, i)
				owned = true
			}
			if err := p.readBasicEscape(start, multiline); err != nil {
				return value.Span{}, "", false, err
			}

		case b == 0x09 || (b >= 0x20 && b <= 0x7E) || b >= 0x80:
			if owned {
				p.scratch.Push(b)
			}

		default:
			return value.Span{}, "", false, p.setError(i, nil, tomlerr.NewInvalidCharInString(rune(b)))
		}
	}
}

func (p *Parser) finishString(owned bool, contentStart, end int) string {
	if owned {
		s := p.scratch.Commit()
		p.scratch = nil
		return s
	}
	return string(p.bytes[contentStart:end])
}

func (p *Parser) readBasicEscape(stringStart int, multi bool) error {
	i := p.cursor
	if i >= len(p.bytes) {
		return p.setError(stringStart, nil, tomlerr.NewUnterminatedString())
	}
	b := p.bytes[i]
	p.cursor = i + 1

	switch b {
	case '"':
		p.scratch.Push('"')
	case '\\':
		p.scratch.Push('\\')
	case 'b':
		p.scratch.Push(0x08)
	case 'f':
		p.scratch.Push(0x0C)
	case 'n':
		p.scratch.Push('\n')
	case 'r':
		p.scratch.Push('\r')
	case 't':
		p.scratch.Push('\t')
	case 'e':
		p.scratch.Push(0x1B)
	case 'u':
		ch, err := p.readHex(4, stringStart, i)
		if err != nil {
			return err
		}
		p.appendRune(ch)
	case 'U':
		ch, err := p.readHex(8, stringStart, i)
		if err != nil {
			return err
		}
		p.appendRune(ch)
	case 'x':
		ch, err := p.readHex(2, stringStart, i)
		if err != nil {
			return err
		}
		p.appendRune(ch)
	case ' ', '\t', '\n', '\r':
		if !multi {
			return p.setError(i, nil, tomlerr.NewInvalidEscape(rune(b)))
		}
		c := rune(b)
		if b == '\r' {
			if nb, ok := p.peekByte(); ok && nb == '\n' {
				p.advance()
				c = '\n'
			}
		}
		if c != '\n' {
			for {
				nb, ok := p.peekByte()
				switch {
				case ok && (nb == ' ' || nb == '\t'):
					p.advance()
				case ok && nb == '\n':
					p.advance()
					goto foldDone
				case ok && nb == '\r':
					if nb2, ok2 := p.peekByteAt(1); ok2 && nb2 == '\n' {
						p.cursor += 2
						goto foldDone
					}
					return p.setError(i, nil, tomlerr.NewInvalidEscape(c))
				default:
					return p.setError(i, nil, tomlerr.NewInvalidEscape(c))
				}
			}
		foldDone:
		}
		for {
			nb, ok := p.peekByte()
			switch {
			case ok && (nb == ' ' || nb == '\t' || nb == '\n'):
				p.advance()
			case ok && nb == '\r':
				if nb2, ok2 := p.peekByteAt(1); ok2 && nb2 == '\n' {
					p.cursor += 2
					continue
				}
				return nil
			default:
				return nil
			}
		}
	default:
		if b < 0x80 {
			return p.setError(i, nil, tomlerr.NewInvalidEscape(rune(b)))
		}
		p.cursor = i
		ei, ec, _ := p.nextChar()
		return p.setError(ei, nil, tomlerr.NewInvalidEscape(ec))
	}
	return nil
}

func (p *Parser) appendRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	p.scratch.Extend(buf[:n])
}

func (p *Parser) readHex(n int, stringStart, escapeStart int) (rune, error) {
	var val uint32
	for k := 0; k < n; k++ {
		if p.cursor >= len(p.bytes) {
			return 0, p.setError(stringStart, nil, tomlerr.NewUnterminatedString())
		}
		b := p.bytes[p.cursor]
		digit, ok := hexDigit(b)
		if !ok {
			if b < 0x80 {
				i := p.cursor
				p.cursor++
				return 0, p.setError(i, nil, tomlerr.NewInvalidHexEscape(rune(b)))
			}
			i, ch, _ := p.nextChar()
			return 0, p.setError(i, nil, tomlerr.NewInvalidHexEscape(ch))
		}
		val = val*16 + uint32(digit)
		p.cursor++
	}
	if val > utf8.MaxRune || (val >= 0xD800 && val <= 0xDFFF) {
		end := escapeStart + n
		return 0, p.setError(escapeStart, &end, tomlerr.NewInvalidEscapeValue(val))
	}
	return rune(val), nil
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
