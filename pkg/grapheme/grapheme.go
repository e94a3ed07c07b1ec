// Package grapheme provides UTF-8 decoding and terminal column-width
// arithmetic for the line editor. The cursor is only ever allowed to rest on
// a grapheme boundary: a base codepoint plus any trailing combining marks.
// All functions are pure and never fail on malformed input; garbage bytes
// decode to the replacement character and resynchronize one byte at a time.
package grapheme

// Replacement is emitted for a malformed UTF-8 lead byte.
const Replacement = 0xFFFD

// Decode decodes one UTF-8 codepoint from the front of buf using the
// standard 1/2/3/4-byte lead patterns. It returns the codepoint and the
// number of bytes consumed. A malformed lead byte yields Replacement with
// length 1 so the caller resynchronizes on the next byte; a truncated
// sequence yields codepoint 0 with length 1.
func Decode(buf []byte) (cp rune, size int) {
	if len(buf) == 0 {
		return 0, 1
	}

	b := buf[0]

	switch {
	case b&0x80 == 0:
		return rune(b), 1
	case b&0xE0 == 0xC0:
		if len(buf) >= 2 {
			cp = rune(b&0x1F)<<6 | rune(buf[1]&0x3F)
			return cp, 2
		}
	case b&0xF0 == 0xE0:
		if len(buf) >= 3 {
			cp = rune(b&0x0F)<<12 | rune(buf[1]&0x3F)<<6 | rune(buf[2]&0x3F)
			return cp, 3
		}
	case b&0xF8 == 0xF0:
		if len(buf) >= 4 {
			cp = rune(b&0x07)<<18 | rune(buf[1]&0x3F)<<12 |
				rune(buf[2]&0x3F)<<6 | rune(buf[3]&0x3F)
			return cp, 4
		}
	default:
		return Replacement, 1
	}

	return 0, 1
}

// PrevCharLen returns the byte length of the single UTF-8 codepoint ending
// at pos, found by scanning back over continuation bytes (top two bits 10).
func PrevCharLen(buf []byte, pos int) int {
	end := pos
	for pos--; pos > 0 && buf[pos]&0xC0 == 0x80; pos-- {
	}
	if pos < 0 {
		pos = 0
	}
	return end - pos
}

// NextLen returns the byte length and display column width of the grapheme
// starting at pos: the codepoint at pos plus any immediately following
// combining marks. A combining mark with no preceding base decodes here as
// a zero-length, zero-width grapheme; callers must treat that as a no-op.
func NextLen(buf []byte, pos int) (length, cols int) {
	beg := pos
	cp, size := Decode(buf[pos:])

	if IsCombining(cp) {
		return 0, 0
	}

	cols = 1
	if IsWide(cp) {
		cols = 2
	}

	pos += size
	for pos < len(buf) {
		cp, size = Decode(buf[pos:])
		if !IsCombining(cp) {
			return pos - beg, cols
		}
		pos += size
	}

	return pos - beg, cols
}

// PrevLen returns the byte length and display column width of the grapheme
// ending at pos, scanning backward over combining marks until a base
// codepoint is found. A buffer prefix consisting only of combining marks
// yields length 0.
func PrevLen(buf []byte, pos int) (length, cols int) {
	end := pos

	for pos > 0 {
		size := PrevCharLen(buf, pos)
		pos -= size
		cp, _ := Decode(buf[pos : pos+size])

		if !IsCombining(cp) {
			cols = 1
			if IsWide(cp) {
				cols = 2
			}
			return end - pos, cols
		}
	}

	return 0, 0
}

// ColumnWidth sums grapheme column widths over buf[from:to] by repeated
// forward segmentation. It is used both to measure the whole line and to
// locate the cursor's terminal column.
func ColumnWidth(buf []byte, from, to int) int {
	width := 0
	for off := from; off < to; {
		length, cols := NextLen(buf[:to], off)
		if length == 0 {
			// Leading combining mark with no base; skip one byte so the
			// walk always terminates.
			_, size := Decode(buf[off:to])
			off += size
			continue
		}
		off += length
		width += cols
	}
	return width
}
