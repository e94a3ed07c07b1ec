package grapheme

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		cp   rune
		size int
	}{
		{"ascii", []byte("a"), 'a', 1},
		{"two byte", []byte("é"), 0xE9, 2},
		{"three byte euro", []byte{0xE2, 0x82, 0xAC}, 0x20AC, 3},
		{"four byte emoji", []byte{0xF0, 0x9F, 0x98, 0x80}, 0x1F600, 4},
		{"bad lead byte", []byte{0xFF, 'a'}, Replacement, 1},
		{"lone continuation", []byte{0x80}, Replacement, 1},
		{"truncated three byte", []byte{0xE2, 0x82}, 0, 1},
		{"empty", nil, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, size := Decode(tt.in)
			assert.Equal(t, tt.cp, cp)
			assert.Equal(t, tt.size, size)
		})
	}
}

// Decoding then advancing by the returned length must cover any well-formed
// buffer with no gaps or overlaps.
func TestDecodeCoversBuffer(t *testing.T) {
	buf := []byte("hällo, 世界 € 😀 éx")

	total := 0
	for pos := 0; pos < len(buf); {
		_, size := Decode(buf[pos:])
		if size < 1 {
			t.Fatalf("size %d at pos %d", size, pos)
		}
		pos += size
		total += size
	}

	if total != len(buf) {
		t.Errorf("covered %d bytes, want %d", total, len(buf))
	}
}

func TestNextPrevLenAreInverses(t *testing.T) {
	buf := []byte("a€é́世x̀́y")

	pos := 0
	var stops []int
	for pos < len(buf) {
		stops = append(stops, pos)
		length, _ := NextLen(buf, pos)
		if length == 0 {
			t.Fatalf("zero-length grapheme at pos %d", pos)
		}
		pos += length
	}

	// Walk back and check we land exactly on the forward stops.
	for i := len(stops) - 1; i >= 0; i-- {
		length, _ := PrevLen(buf, pos)
		pos -= length
		assert.Equal(t, stops[i], pos, "backward walk diverged")
	}
	assert.Equal(t, 0, pos)
}

func TestNextLenConsumesCombiningRun(t *testing.T) {
	// e + combining acute + combining grave, then x.
	buf := []byte("é̀x")

	length, cols := NextLen(buf, 0)
	assert.Equal(t, 5, length, "base plus two combining marks")
	assert.Equal(t, 1, cols)

	length, cols = NextLen(buf, 5)
	assert.Equal(t, 1, length)
	assert.Equal(t, 1, cols)
}

func TestNextLenCombiningWithoutBase(t *testing.T) {
	buf := []byte("́x")

	length, cols := NextLen(buf, 0)
	if length != 0 || cols != 0 {
		t.Errorf("got (%d, %d), want zero-width no-op", length, cols)
	}
}

func TestPrevLenOnlyCombiningPrefix(t *testing.T) {
	buf := []byte("́̀")

	length, cols := PrevLen(buf, len(buf))
	if length != 0 || cols != 0 {
		t.Errorf("got (%d, %d), want zero-width no-op", length, cols)
	}
}

func TestWideWidths(t *testing.T) {
	assert.Equal(t, 2, widthOf("世"))
	assert.Equal(t, 2, widthOf("😀"))
	assert.Equal(t, 1, widthOf("€"))
	assert.Equal(t, 1, widthOf("a"))
}

func widthOf(s string) int {
	_, cols := NextLen([]byte(s), 0)
	return cols
}

func TestColumnWidth(t *testing.T) {
	buf := []byte("ab世é́")

	assert.Equal(t, 0, ColumnWidth(buf, 0, 0))
	assert.Equal(t, 2, ColumnWidth(buf, 0, 2))
	assert.Equal(t, 4, ColumnWidth(buf, 0, 5))
	assert.Equal(t, 5, ColumnWidth(buf, 0, len(buf)))
}

func TestColumnWidthLeadingCombining(t *testing.T) {
	// A combining mark with no base must not hang or panic the measurement.
	buf := []byte("́ab")
	assert.Equal(t, 2, ColumnWidth(buf, 0, len(buf)))
}

// Cross-check the width tables against go-runewidth on ranges where the two
// models agree (runewidth treats some ambiguous codepoints differently, so
// only spot-check unambiguous ones).
func TestWidthTablesAgainstRunewidth(t *testing.T) {
	for _, cp := range []rune{'a', 'Z', '0', '~', 0xE9, 0x20AC} {
		assert.False(t, IsWide(cp), "U+%04X should be narrow", cp)
		assert.Equal(t, 1, runewidth.RuneWidth(cp), "oracle disagrees on U+%04X", cp)
	}

	for _, cp := range []rune{0x4E16, 0x754C, 0xAC00, 0xFF21, 0x1F600} {
		assert.True(t, IsWide(cp), "U+%04X should be wide", cp)
		assert.Equal(t, 2, runewidth.RuneWidth(cp), "oracle disagrees on U+%04X", cp)
	}

	for _, cp := range []rune{0x0301, 0x0300, 0x20D0, 0xFE0F} {
		assert.True(t, IsCombining(cp), "U+%04X should be combining", cp)
		assert.Equal(t, 0, runewidth.RuneWidth(cp), "oracle disagrees on U+%04X", cp)
	}
}

func TestTablesSortedAscending(t *testing.T) {
	prev := rune(-1)
	for _, r := range wideRanges {
		if r[0] > r[1] || r[0] <= prev {
			t.Fatalf("wide range %U out of order", r)
		}
		prev = r[1]
	}

	prev = -1
	for _, r := range combiningRanges {
		if r[0] > r[1] || r[0] <= prev {
			t.Fatalf("combining range %U out of order", r)
		}
		prev = r[1]
	}
}
