package grapheme

// Codepoint ranges that occupy two terminal columns, after the East Asian
// Wide and Fullwidth properties. Ranges are disjoint and sorted ascending
// so lookups can bail out as soon as a range starts past the codepoint.
var wideRanges = [][2]rune{
	{0x1100, 0x115F},   // Hangul Jamo leading consonants
	{0x2329, 0x232A},   // angle brackets
	{0x2E80, 0x303E},   // CJK radicals, Kangxi, CJK symbols
	{0x3041, 0x33FF},   // Hiragana .. CJK compatibility
	{0x3400, 0x4DBF},   // CJK extension A
	{0x4E00, 0x9FFF},   // CJK unified ideographs
	{0xA000, 0xA4CF},   // Yi syllables and radicals
	{0xA960, 0xA97F},   // Hangul Jamo extended-A
	{0xAC00, 0xD7A3},   // Hangul syllables
	{0xF900, 0xFAFF},   // CJK compatibility ideographs
	{0xFE10, 0xFE19},   // vertical forms
	{0xFE30, 0xFE52},   // CJK compatibility forms
	{0xFE54, 0xFE66},   // small form variants
	{0xFE68, 0xFE6B},   // small form variants
	{0xFF00, 0xFF60},   // fullwidth forms
	{0xFFE0, 0xFFE6},   // fullwidth signs
	{0x1B000, 0x1B001}, // Kana supplement
	{0x1F200, 0x1F251}, // enclosed ideographic supplement
	{0x1F300, 0x1F64F}, // pictographs, emoticons
	{0x1F900, 0x1F9FF}, // supplemental symbols and pictographs
	{0x20000, 0x2FFFD}, // CJK extension B and beyond
	{0x30000, 0x3FFFD}, // CJK extension G
}

// Zero-width combining mark ranges, sorted ascending for the same early-out
// as the wide table.
var combiningRanges = [][2]rune{
	{0x0300, 0x036F}, // combining diacritical marks
	{0x0483, 0x0489}, // Cyrillic combining marks
	{0x0591, 0x05BD}, // Hebrew points
	{0x05BF, 0x05BF},
	{0x05C1, 0x05C2},
	{0x05C4, 0x05C5},
	{0x05C7, 0x05C7},
	{0x0610, 0x061A}, // Arabic marks
	{0x064B, 0x065F},
	{0x0670, 0x0670},
	{0x06D6, 0x06DC},
	{0x06DF, 0x06E4},
	{0x06E7, 0x06E8},
	{0x06EA, 0x06ED},
	{0x0711, 0x0711}, // Syriac superscript alaph
	{0x0730, 0x074A}, // Syriac points
	{0x07A6, 0x07B0}, // Thaana points
	{0x07EB, 0x07F3}, // NKo marks
	{0x0816, 0x0819}, // Samaritan marks
	{0x081B, 0x0823},
	{0x0825, 0x0827},
	{0x0829, 0x082D},
	{0x0859, 0x085B}, // Mandaic marks
	{0x08E3, 0x0903}, // Arabic extended, Devanagari signs
	{0x093A, 0x093C},
	{0x093E, 0x094F}, // Devanagari vowel signs
	{0x0951, 0x0957},
	{0x0962, 0x0963},
	{0x0981, 0x0983}, // Bengali signs
	{0x09BC, 0x09BC},
	{0x09BE, 0x09C4},
	{0x09C7, 0x09C8},
	{0x09CB, 0x09CD},
	{0x09D7, 0x09D7},
	{0x09E2, 0x09E3},
	{0x0A01, 0x0A03}, // Gurmukhi signs
	{0x0A3C, 0x0A3C},
	{0x0A3E, 0x0A42},
	{0x0A47, 0x0A48},
	{0x0A4B, 0x0A4D},
	{0x0A51, 0x0A51},
	{0x0A70, 0x0A71},
	{0x0A75, 0x0A75},
	{0x0A81, 0x0A83}, // Gujarati signs
	{0x0ABC, 0x0ABC},
	{0x0ABE, 0x0AC5},
	{0x0AC7, 0x0AC9},
	{0x0ACB, 0x0ACD},
	{0x0AE2, 0x0AE3},
	{0x0B01, 0x0B03}, // Oriya signs
	{0x0B3C, 0x0B3C},
	{0x0B3E, 0x0B44},
	{0x0B47, 0x0B48},
	{0x0B4B, 0x0B4D},
	{0x0B56, 0x0B57},
	{0x0B62, 0x0B63},
	{0x0D01, 0x0D03}, // Malayalam signs
	{0x0D3E, 0x0D44},
	{0x0D46, 0x0D48},
	{0x0D4A, 0x0D4D},
	{0x0D57, 0x0D57},
	{0x0D62, 0x0D63},
	{0x0E31, 0x0E31}, // Thai marks
	{0x0E34, 0x0E3A},
	{0x0E47, 0x0E4E},
	{0x0EB1, 0x0EB1}, // Lao marks
	{0x0EB4, 0x0EB9},
	{0x0EBB, 0x0EBC},
	{0x0EC8, 0x0ECD},
	{0x0F18, 0x0F19}, // Tibetan marks
	{0x0F35, 0x0F35},
	{0x0F37, 0x0F37},
	{0x0F39, 0x0F39},
	{0x0F71, 0x0F84},
	{0x0F86, 0x0F87},
	{0x0F8D, 0x0F97},
	{0x0F99, 0x0FBC},
	{0x0FC6, 0x0FC6},
	{0x102B, 0x103E}, // Myanmar signs
	{0x1056, 0x1059},
	{0x105E, 0x1060},
	{0x1062, 0x1064},
	{0x1067, 0x106D},
	{0x1071, 0x1074},
	{0x1082, 0x108D},
	{0x108F, 0x108F},
	{0x109A, 0x109D},
	{0x135D, 0x135F}, // Ethiopic marks
	{0x1712, 0x1714}, // Tagalog marks
	{0x1732, 0x1734},
	{0x1752, 0x1753},
	{0x1772, 0x1773},
	{0x17B4, 0x17D3}, // Khmer signs
	{0x17DD, 0x17DD},
	{0x180B, 0x180D}, // Mongolian variation selectors
	{0x18A9, 0x18A9},
	{0x1920, 0x192B}, // Limbu signs
	{0x1930, 0x193B},
	{0x1A17, 0x1A1B}, // Buginese marks
	{0x1A55, 0x1A5E}, // Tai Tham signs
	{0x1A60, 0x1A7C},
	{0x1A7F, 0x1A7F},
	{0x1AB0, 0x1ABE}, // combining diacritics extended
	{0x1B00, 0x1B04}, // Balinese signs
	{0x1B34, 0x1B44},
	{0x1B6B, 0x1B73},
	{0x1B80, 0x1B82}, // Sundanese signs
	{0x1BA1, 0x1BAD},
	{0x1BE6, 0x1BF3}, // Batak signs
	{0x1C24, 0x1C37}, // Lepcha signs
	{0x1CD0, 0x1CD2}, // Vedic marks
	{0x1CD4, 0x1CE8},
	{0x1CED, 0x1CED},
	{0x1CF2, 0x1CF4},
	{0x1CF8, 0x1CF9},
	{0x1DC0, 0x1DFF}, // combining diacritics supplement
	{0x20D0, 0x20F0}, // combining marks for symbols
	{0x2CEF, 0x2CF1}, // Coptic marks
	{0x2D7F, 0x2D7F}, // Tifinagh joiner
	{0x2DE0, 0x2DFF}, // Cyrillic extended-A
	{0x302A, 0x302F}, // ideographic tone marks
	{0x3099, 0x309A}, // kana voicing marks
	{0xA66F, 0xA672}, // Cyrillic extended-B
	{0xA674, 0xA67D},
	{0xA69E, 0xA69F},
	{0xA6F0, 0xA6F1}, // Bamum marks
	{0xA802, 0xA802}, // Syloti Nagri signs
	{0xA806, 0xA806},
	{0xA80B, 0xA80B},
	{0xA823, 0xA827},
	{0xA880, 0xA881}, // Saurashtra signs
	{0xA8B4, 0xA8C4},
	{0xA8E0, 0xA8F1}, // Devanagari extended
	{0xA926, 0xA92D}, // Kayah Li tones
	{0xA947, 0xA953}, // Rejang signs
	{0xA980, 0xA983}, // Javanese signs
	{0xA9B3, 0xA9C0},
	{0xAA29, 0xAA36}, // Cham signs
	{0xAA43, 0xAA43},
	{0xAA4C, 0xAA4D},
	{0xAA7B, 0xAA7D}, // Myanmar extended-A
	{0xAAB0, 0xAAB0}, // Tai Viet marks
	{0xAAB2, 0xAAB4},
	{0xAAB7, 0xAAB8},
	{0xAABE, 0xAABF},
	{0xAAC1, 0xAAC1},
	{0xAAEB, 0xAAEF}, // Meetei Mayek extensions
	{0xAAF5, 0xAAF6},
	{0xABE3, 0xABEA}, // Meetei Mayek signs
	{0xABEC, 0xABED},
	{0xFB1E, 0xFB1E}, // Hebrew point judeo-spanish varika
	{0xFE00, 0xFE0F}, // variation selectors
	{0xFE20, 0xFE2F}, // combining half marks
	{0x101FD, 0x101FD},
	{0x10376, 0x1037A},
	{0x10A01, 0x10A03}, // Kharoshthi signs
	{0x10A05, 0x10A06},
	{0x10A0C, 0x10A0F},
	{0x10A38, 0x10A3A},
	{0x10A3F, 0x10A3F},
	{0x10AE5, 0x10AE6},
	{0x11000, 0x11002}, // Brahmi signs
	{0x11038, 0x11046},
	{0x1107F, 0x11082},
	{0x110B0, 0x110BA},
	{0x11100, 0x11102}, // Chakma signs
	{0x11127, 0x11134},
	{0x11173, 0x11173},
	{0x11180, 0x11182},
	{0x111B3, 0x111C0},
	{0x111CA, 0x111CC},
	{0x11300, 0x11303}, // Grantha signs
	{0x1133C, 0x1133C},
	{0x1133E, 0x11344},
	{0x11347, 0x11348},
	{0x1134B, 0x1134D},
	{0x11357, 0x11357},
	{0x11362, 0x11363},
	{0x11366, 0x1136C},
	{0x11370, 0x11374},
	{0x16AF0, 0x16AF4}, // Bassa Vah tones
	{0x16B30, 0x16B36}, // Pahawh Hmong marks
	{0x16F51, 0x16F7E}, // Miao signs
	{0x16F8F, 0x16F92},
	{0x1D165, 0x1D169}, // musical symbol combining marks
	{0x1D16D, 0x1D172},
	{0x1D17B, 0x1D182},
	{0x1D185, 0x1D18B},
	{0x1D1AA, 0x1D1AD},
	{0x1D242, 0x1D244},
	{0x1DA00, 0x1DA36}, // SignWriting marks
	{0x1DA3B, 0x1DA6C},
	{0x1DA75, 0x1DA75},
	{0x1DA84, 0x1DA84},
	{0x1DA9B, 0x1DA9F},
	{0x1DAA1, 0x1DAAF},
	{0x1E8D0, 0x1E8D6}, // Mende Kikakui tones
	{0xE0100, 0xE01EF}, // variation selectors supplement
}

// IsWide reports whether cp occupies two terminal columns.
func IsWide(cp rune) bool {
	for _, r := range wideRanges {
		// Sorted ascending: once a range starts past cp it cannot appear
		// in any later range either.
		if r[0] > cp {
			return false
		}
		if r[0] <= cp && cp <= r[1] {
			return true
		}
	}
	return false
}

// IsCombining reports whether cp is a zero-width combining mark.
func IsCombining(cp rune) bool {
	for _, r := range combiningRanges {
		if r[0] > cp {
			return false
		}
		if r[0] <= cp && cp <= r[1] {
			return true
		}
	}
	return false
}
