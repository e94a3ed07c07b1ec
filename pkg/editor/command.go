package editor

import "io"

// command is the enumerated edit operation produced by the raw-key
// classifier and the escape decoder and consumed by the session dispatch.
// Keeping decoding separate from effect application lets both be tested
// without a live terminal.
type command int

const (
	cmdNone command = iota
	cmdInsert
	cmdAccept
	cmdInterrupt
	cmdEOFOrDelete
	cmdMoveLeft
	cmdMoveRight
	cmdHome
	cmdEnd
	cmdWordStart
	cmdWordEnd
	cmdHistoryPrev
	cmdHistoryNext
	cmdDelete
	cmdBackspace
	cmdDeletePrevWord
	cmdDeleteNextWord
	cmdTranspose
	cmdKillLine
	cmdKillWholeLine
	cmdClearScreen
)

// classify maps a non-escape codepoint to a command. Codepoints with no
// control meaning classify as cmdInsert.
func classify(cp rune) command {
	switch cp {
	case keyEnter, keyLineFeed:
		return cmdAccept
	case keyCtrlC:
		return cmdInterrupt
	case keyCtrlD:
		// Forward-delete on a non-empty buffer, end-of-input on an empty
		// one; the dispatch decides which.
		return cmdEOFOrDelete
	case keyBackspace, keyCtrlH:
		return cmdBackspace
	case keyCtrlB:
		return cmdMoveLeft
	case keyCtrlF:
		return cmdMoveRight
	case keyCtrlA:
		return cmdHome
	case keyCtrlE:
		return cmdEnd
	case keyCtrlP:
		return cmdHistoryPrev
	case keyCtrlN:
		return cmdHistoryNext
	case keyCtrlT:
		return cmdTranspose
	case keyCtrlK:
		return cmdKillLine
	case keyCtrlU:
		return cmdKillWholeLine
	case keyCtrlL:
		return cmdClearScreen
	case keyCtrlW:
		return cmdDeletePrevWord
	default:
		return cmdInsert
	}
}

// decodeEscape consumes the bytes following an ESC and maps recognized
// sequences to commands. Any short read aborts the sequence silently: an
// incomplete escape is ignored, never escalated. Unrecognized sequences
// decode to cmdNone.
func decodeEscape(r io.Reader) command {
	var seq [3]byte

	if !readByte(r, &seq[0]) {
		return cmdNone
	}

	// ESC <char>: Alt-modified keys.
	if seq[0] != '[' && seq[0] != 'O' {
		switch seq[0] {
		case 'f':
			return cmdWordEnd
		case 'b':
			return cmdWordStart
		case 'd':
			return cmdDeleteNextWord
		}
		return cmdNone
	}

	if !readByte(r, &seq[1]) {
		return cmdNone
	}

	// ESC [ sequences.
	if seq[0] == '[' {
		if seq[1] >= '0' && seq[1] <= '9' {
			// Extended escape: one more byte.
			if !readByte(r, &seq[2]) {
				return cmdNone
			}
			if seq[2] == '~' && seq[1] == '3' {
				return cmdDelete // the Delete key
			}
			return cmdNone
		}

		switch seq[1] {
		case 'A':
			return cmdHistoryPrev
		case 'B':
			return cmdHistoryNext
		case 'C':
			return cmdMoveRight
		case 'D':
			return cmdMoveLeft
		case 'H', '1':
			return cmdHome
		case 'F', '4':
			return cmdEnd
		case 'd':
			return cmdDeleteNextWord
		}
		return cmdNone
	}

	// ESC O sequences.
	switch seq[1] {
	case 'H':
		return cmdHome
	case 'F':
		return cmdEnd
	}
	return cmdNone
}

func readByte(r io.Reader, dst *byte) bool {
	var buf [1]byte
	n, err := r.Read(buf[:])
	if err != nil || n == 0 {
		return false
	}
	*dst = buf[0]
	return true
}
