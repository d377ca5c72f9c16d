package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/tomlgo/tomlgo/internal/tomlerr"
	"github.com/tomlgo/tomlgo/internal/value"
)

// number dispatches a keylike token already known to start a numeric or
// special float literal (inf/nan) to the right parse routine, based on its
// prefix. s is the raw source slice [start,end).
func (p *Parser) number(start, end uint32, s string) (value.Item, error) {
	switch {
	case strings.HasPrefix(s, "0x"):
		v, err := p.integer(s[2:], int(start)+2, 16)
		if err != nil {
			return value.Item{}, err
		}
		return value.Integer(v, span(start, end)), nil
	case strings.HasPrefix(s, "0o"):
		v, err := p.integer(s[2:], int(start)+2, 8)
		if err != nil {
			return value.Item{}, err
		}
		return value.Integer(v, span(start, end)), nil
	case strings.HasPrefix(s, "0b"):
		v, err := p.integer(s[2:], int(start)+2, 2)
		if err != nil {
			return value.Item{}, err
		}
		return value.Integer(v, span(start, end)), nil
	case strings.ContainsAny(s, "eE"):
		f, err := p.float(s, int(start), nil, 0)
		if err != nil {
			return value.Item{}, err
		}
		return value.Float(f, span(start, uint32(p.cursor))), nil
	}

	if p.eatByte('.') {
		at := p.cursor
		if b, ok := p.peekByte(); ok && isKeylikeByte(b) {
			afterStart := p.cursor
			after := p.readKeylike()
			f, err := p.float(s, int(start), &after, afterStart)
			if err != nil {
				return value.Item{}, err
			}
			return value.Float(f, span(start, uint32(p.cursor))), nil
		}
		endInt := int(end)
		return value.Item{}, p.setError(at, &endInt, tomlerr.NewInvalidNumber())
	}

	switch s {
	case "inf":
		return value.Float(math.Inf(1), span(start, end)), nil
	case "-inf":
		return value.Float(math.Inf(-1), span(start, end)), nil
	case "nan":
		return value.Float(math.NaN(), span(start, end)), nil
	case "-nan":
		return value.Float(math.Copysign(math.NaN(), -1), span(start, end)), nil
	}

	v, err := p.integer(s, int(start), 10)
	if err != nil {
		return value.Item{}, err
	}
	return value.Integer(v, span(start, end)), nil
}

func (p *Parser) numberLeadingPlus(plusStart uint32) (value.Item, error) {
	if b, ok := p.peekByte(); ok && isKeylikeByte(b) {
		s := p.readKeylike()
		end := uint32(p.cursor)
		return p.number(plusStart, end, s)
	}
	endInt := p.cursor
	return value.Item{}, p.setError(int(plusStart), &endInt, tomlerr.NewInvalidNumber())
}

// integer parses s (already known to contain only the digits/sign/
// underscores of an integer literal in the given radix, starting at byte
// offset sStart in the source) into an int64. For radix 10, a leading sign
// is permitted and leading zeros are rejected (except for the literal zero
// itself); for other radices leading zeros are permitted and no sign is
// allowed (the "0x"/"0o"/"0b" prefix already establishes positivity).
func (p *Parser) integer(s string, sStart, radix int) (int64, error) {
	allowSign := radix == 10
	allowLeadingZeros := radix != 10
	prefix, _, suffixStart, err := p.parseIntegerLiteral(s, sStart, allowSign, allowLeadingZeros, radix)
	if err != nil {
		return 0, err
	}
	if suffixStart != sStart+len(s) {
		end := sStart + len(s)
		return 0, p.setError(sStart, &end, tomlerr.NewInvalidNumber())
	}
	scratch := p.arena.NewScratch()
	if !scratch.PushStripUnderscores([]byte(strings.TrimPrefix(prefix, "+"))) {
		end := sStart + len(s)
		return 0, p.setError(sStart, &end, tomlerr.NewInvalidNumber())
	}
	v, convErr := strconv.ParseInt(scratch.Commit(), radix, 64)
	if convErr != nil {
		end := sStart + len(s)
		return 0, p.setError(sStart, &end, tomlerr.NewInvalidNumber())
	}
	return v, nil
}

// parseIntegerLiteral validates the shape of a (possibly signed) run of
// digits/underscores in the given radix and splits s into the valid prefix
// and whatever trailing bytes don't belong to it (e.g. the "e10" suffix of
// a float whose integral part was read as a bare keylike token). sStart is
// the byte offset of s[0] in the source, used only to place error spans.
func (p *Parser) parseIntegerLiteral(s string, sStart int, allowSign, allowLeadingZeros bool, radix int) (prefix string, prefixStart, suffixStart int, err error) {
	send := sStart + len(s)

	first := true
	firstZero := false
	underscore := false
	end := len(s)

	runes := []rune(s)
	byteOffset := 0
	for idx, c := range runes {
		at := byteOffset + sStart
		cw := len(string(c))
		if idx == 0 && (c == '+' || c == '-') && allowSign {
			first = false
			byteOffset += cw
			continue
		}
		if c == '0' && first {
			firstZero = true
		} else if isDigitRadix(c, radix) {
			if !first && firstZero && !allowLeadingZeros {
				return "", 0, 0, p.setError(at, &send, tomlerr.NewInvalidNumber())
			}
			underscore = false
		} else if c == '_' && first {
			return "", 0, 0, p.setError(at, &send, tomlerr.NewInvalidNumber())
		} else if c == '_' && !underscore {
			underscore = true
		} else {
			end = byteOffset
			break
		}
		first = false
		byteOffset += cw
	}
	if first || underscore {
		return "", 0, 0, p.setError(sStart, &send, tomlerr.NewInvalidNumber())
	}
	return s[:end], sStart, sStart + end, nil
}

func isDigitRadix(c rune, radix int) bool {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'z':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return false
	}
	return d < radix
}

// float parses s (a keylike token starting at sStart known to denote a
// float, having an 'e'/'E' exponent or a decimal point) into a float64.
// afterDecimal, if non-nil, is the keylike token read immediately after a
// '.' that followed s, starting at afterDecimalStart.
func (p *Parser) float(s string, sStart int, afterDecimal *string, afterDecimalStart int) (float64, error) {
	integral, _, suffixStart, err := p.parseIntegerLiteral(s, sStart, true, false, 10)
	if err != nil {
		return 0, err
	}
	suffix := s[suffixStart-sStart:]

	var fraction string
	haveFraction := false
	if afterDecimal != nil {
		if suffix != "" {
			end := sStart + len(s)
			return 0, p.setError(sStart, &end, tomlerr.NewInvalidNumber())
		}
		a, _, bStart, err := p.parseIntegerLiteral(*afterDecimal, afterDecimalStart, false, true, 10)
		if err != nil {
			return 0, err
		}
		fraction = a
		haveFraction = true
		suffix = (*afterDecimal)[bStart-afterDecimalStart:]
		suffixStart = bStart
	}

	var exponent string
	haveExponent := false
	if strings.HasPrefix(suffix, "e") || strings.HasPrefix(suffix, "E") {
		var a string
		var bStart int
		var bLen int
		if len(suffix) == 1 {
			p.eatByte('+')
			if bb, ok := p.peekByte(); ok && isKeylikeByte(bb) {
				nextStart := p.cursor
				next := p.readKeylike()
				var tailStart int
				a, _, tailStart, err = p.parseIntegerLiteral(next, nextStart, false, true, 10)
				if err != nil {
					return 0, err
				}
				bStart = tailStart
				bLen = len(next) - (tailStart - nextStart)
			} else {
				end := sStart + len(s)
				return 0, p.setError(sStart, &end, tomlerr.NewInvalidNumber())
			}
		} else {
			expStart := suffixStart + 1
			var tailStart int
			a, _, tailStart, err = p.parseIntegerLiteral(suffix[1:], expStart, true, true, 10)
			if err != nil {
				return 0, err
			}
			bStart = tailStart
			bLen = len(suffix[1:]) - (tailStart - expStart)
		}
		if bLen != 0 {
			end := sStart + len(s)
			return 0, p.setError(sStart, &end, tomlerr.NewInvalidNumber())
		}
		_ = bStart
		exponent = a
		haveExponent = true
	} else if suffix != "" {
		end := sStart + len(s)
		return 0, p.setError(sStart, &end, tomlerr.NewInvalidNumber())
	}

	end := sStart + len(s)
	scratch := p.arena.NewScratch()
	if !scratch.PushStripUnderscores([]byte(strings.TrimPrefix(integral, "+"))) {
		return 0, p.setError(sStart, &end, tomlerr.NewInvalidNumber())
	}
	if haveFraction {
		scratch.Push('.')
		if !scratch.PushStripUnderscores([]byte(fraction)) {
			return 0, p.setError(sStart, &end, tomlerr.NewInvalidNumber())
		}
	}
	if haveExponent {
		scratch.Push('E')
		if !scratch.PushStripUnderscores([]byte(exponent)) {
			return 0, p.setError(sStart, &end, tomlerr.NewInvalidNumber())
		}
	}
	n, convErr := strconv.ParseFloat(scratch.Commit(), 64)
	if convErr != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, p.setError(sStart, &end, tomlerr.NewInvalidNumber())
	}
	return n, nil
}
