package editor

import (
	"fmt"
	"slices"

	"github.com/termkit/lineedit/pkg/grapheme"
)

// Every mutating operation below keeps the cursor on a grapheme boundary
// and ends by resynchronizing the display, except where noted.

// insert splices cbuf (one whole codepoint) in at the cursor. Appending at
// the end of a line that still fits the terminal writes the bytes straight
// through instead of repainting, which avoids flicker on the common typing
// path.
func (e *Editor) insert(cbuf []byte) error {
	if e.pos == len(e.buf) {
		e.buf = append(e.buf, cbuf...)
		e.pos += len(cbuf)

		width := e.promptColumns() + grapheme.ColumnWidth(e.buf, 0, len(e.buf))
		if width < e.cols {
			if _, err := e.term.Out().Write(cbuf); err != nil {
				return fmt.Errorf("write: %w", err)
			}
			return nil
		}
		return e.refresh()
	}

	e.buf = slices.Insert(e.buf, e.pos, cbuf...)
	e.pos += len(cbuf)
	return e.refresh()
}

// moveLeft shifts the cursor one grapheme toward the start.
func (e *Editor) moveLeft() error {
	if e.pos == 0 {
		return nil
	}
	length, _ := grapheme.PrevLen(e.buf, e.pos)
	e.pos -= length
	return e.refresh()
}

// moveRight shifts the cursor one grapheme toward the end.
func (e *Editor) moveRight() error {
	if e.pos == len(e.buf) {
		return nil
	}
	length, _ := grapheme.NextLen(e.buf, e.pos)
	e.pos += length
	return e.refresh()
}

// home jumps the cursor to the start of the line.
func (e *Editor) home() error {
	if e.pos == 0 {
		return nil
	}
	e.pos = 0
	return e.refresh()
}

// end jumps the cursor to the end of the line.
func (e *Editor) end() error {
	if e.pos == len(e.buf) {
		return nil
	}
	e.pos = len(e.buf)
	return e.refresh()
}

// wordEnd moves the cursor past any spaces under it, then to the end of
// the following word. Words are runs of non-space bytes.
func (e *Editor) wordEnd() error {
	if len(e.buf) == 0 || e.pos >= len(e.buf) {
		return nil
	}

	for e.pos < len(e.buf) && e.buf[e.pos] == ' ' {
		e.pos++
	}
	for e.pos < len(e.buf) && e.buf[e.pos] != ' ' {
		e.pos++
	}

	return e.refresh()
}

// wordStart moves the cursor back over any spaces before it, then to the
// start of the preceding word.
func (e *Editor) wordStart() error {
	if len(e.buf) == 0 || e.pos == 0 {
		return nil
	}

	for e.pos > 0 && e.buf[e.pos-1] == ' ' {
		e.pos--
	}
	for e.pos > 0 && e.buf[e.pos-1] != ' ' {
		e.pos--
	}

	return e.refresh()
}

// delete removes the grapheme at the cursor, the Delete-key behavior.
func (e *Editor) delete() error {
	if len(e.buf) == 0 || e.pos >= len(e.buf) {
		return nil
	}

	length, _ := grapheme.NextLen(e.buf, e.pos)
	if length == 0 {
		return nil
	}

	e.buf = slices.Delete(e.buf, e.pos, e.pos+length)
	return e.refresh()
}

// backspace removes the grapheme before the cursor.
func (e *Editor) backspace() error {
	if e.pos == 0 || len(e.buf) == 0 {
		return nil
	}

	length, _ := grapheme.PrevLen(e.buf, e.pos)
	if length == 0 {
		return nil
	}

	e.buf = slices.Delete(e.buf, e.pos-length, e.pos)
	e.pos -= length
	return e.refresh()
}

// deletePrevWord removes the spaces and word immediately before the
// cursor, leaving the cursor at the deletion point.
func (e *Editor) deletePrevWord() error {
	oldPos := e.pos

	for e.pos > 0 && e.buf[e.pos-1] == ' ' {
		e.pos--
	}
	for e.pos > 0 && e.buf[e.pos-1] != ' ' {
		e.pos--
	}

	e.buf = slices.Delete(e.buf, e.pos, oldPos)
	return e.refresh()
}

// deleteNextWord removes the spaces and word immediately after the cursor
// without moving it.
func (e *Editor) deleteNextWord() error {
	end := e.pos

	for end < len(e.buf) && e.buf[end] == ' ' {
		end++
	}
	for end < len(e.buf) && e.buf[end] != ' ' {
		end++
	}

	e.buf = slices.Delete(e.buf, e.pos, end)
	return e.refresh()
}

// transpose exchanges the grapheme before the cursor with the one at it,
// the Ctrl-T behavior. Graphemes longer than the 4-byte scratch buffer are
// left alone, as is a cursor at either extreme.
func (e *Editor) transpose() error {
	prevLen, _ := grapheme.PrevLen(e.buf, e.pos)
	nextLen, _ := grapheme.NextLen(e.buf, e.pos)

	if prevLen == 0 || nextLen == 0 || e.pos == len(e.buf) ||
		prevLen > 4 || nextLen > 4 {
		return nil
	}

	var aux [4]byte
	copy(aux[:], e.buf[e.pos-prevLen:e.pos])
	copy(e.buf[e.pos-prevLen:], e.buf[e.pos:e.pos+nextLen])
	copy(e.buf[e.pos-prevLen+nextLen:], aux[:prevLen])

	e.pos += nextLen - prevLen
	return e.refresh()
}

// killLine truncates the buffer at the cursor.
func (e *Editor) killLine() error {
	e.buf = e.buf[:e.pos]
	return e.refresh()
}

// killWholeLine clears the buffer entirely.
func (e *Editor) killWholeLine() error {
	e.buf = e.buf[:0]
	e.pos = 0
	return e.refresh()
}

// historyMove substitutes the edited line with the previous or next
// history entry. The entry being left is first overwritten with the
// current buffer so in-progress edits survive navigating away and back;
// moving past either end clamps the index and leaves the buffer alone.
func (e *Editor) historyMove(older bool) error {
	if e.hist.Len() <= 1 {
		return nil
	}

	// Snapshot the buffer into the entry we are leaving. When the live push
	// was suppressed by duplicate detection the top slot holds a committed
	// line, not the mirror, and must not be overwritten.
	if e.idx > 0 || e.livePushed {
		e.hist.ReplaceAt(e.hist.Len()-1-e.idx, string(e.buf))
	}

	if older {
		e.idx++
	} else {
		e.idx--
	}

	if e.idx < 0 {
		e.idx = 0
		return nil
	}
	if e.idx >= e.hist.Len() {
		e.idx = e.hist.Len() - 1
		return nil
	}

	entry := e.hist.At(e.hist.Len() - 1 - e.idx)
	e.buf = append(e.buf[:0], entry...)
	e.pos = len(e.buf)

	return e.refresh()
}
