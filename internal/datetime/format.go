package datetime

// Format renders dt as RFC 3339 text into a caller-supplied buffer of at
// least MaxFormatLen bytes and returns the written slice. Ported from
// original_source/src/time.rs's format: the original writes into a raw
// MaybeUninit buffer through unsafe pointer casts to avoid zero-initializing
// 40 bytes on every call; Go has no analogous unsafe escape hatch worth
// reaching for here; a plain []byte slice with positional writes is the
// idiomatic equivalent and the zero-init cost is negligible next to the
// decimal-digit math that follows.
func Format(dt DateTime, buf []byte) []byte {
	if len(buf) < MaxFormatLen {
		buf = make([]byte, MaxFormatLen)
	}
	pos := 0

	write2 := func(val uint8) {
		buf[pos] = '0' + val/10
		buf[pos+1] = '0' + val%10
		pos += 2
	}
	write4 := func(val uint16) {
		buf[pos] = '0' + byte(val/1000)
		buf[pos+1] = '0' + byte((val/100)%10)
		buf[pos+2] = '0' + byte((val/10)%10)
		buf[pos+3] = '0' + byte(val%10)
		pos += 4
	}
	writeFrac := func(nanos uint32, digitCount uint8) {
		val := nanos
		for i := 8; i >= 0; i-- {
			buf[pos+i] = '0' + byte(val%10)
			val /= 10
		}
		pos += int(digitCount)
	}

	if dt.flags&hasDate != 0 {
		write4(dt.date.Year)
		buf[pos] = '-'
		pos++
		write2(dt.date.Month)
		buf[pos] = '-'
		pos++
		write2(dt.date.Day)

		if dt.flags&hasTime != 0 {
			buf[pos] = 'T'
			pos++
		}
	}

	if dt.flags&hasTime != 0 {
		write2(dt.hour)
		buf[pos] = ':'
		pos++
		write2(dt.minute)
		buf[pos] = ':'
		pos++
		write2(dt.seconds)

		if dt.flags&hasSeconds != 0 {
			digitCount := (dt.flags >> nanoShift) & 0xF
			if digitCount > 0 {
				buf[pos] = '.'
				pos++
				writeFrac(dt.nanos, digitCount)
			}
		}

		switch dt.offsetMinutes {
		case offsetNone:
			// local time: no offset suffix
		case offsetZ:
			buf[pos] = 'Z'
			pos++
		default:
			sign := byte('+')
			abs := dt.offsetMinutes
			if abs < 0 {
				sign = '-'
				abs = -abs
			}
			buf[pos] = sign
			pos++
			write2(uint8(abs / 60))
			buf[pos] = ':'
			pos++
			write2(uint8(abs % 60))
		}
	}

	return buf[:pos]
}

// String renders dt using a freshly allocated buffer.
func (dt DateTime) String() string {
	return string(Format(dt, make([]byte, MaxFormatLen)))
}
