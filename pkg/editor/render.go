package editor

import (
	"bytes"
	"fmt"

	"github.com/termkit/lineedit/pkg/grapheme"
)

// refresh repaints the edited line from buffer state. When the line is
// wider than the terminal, graphemes are trimmed off the visible start
// until the cursor fits after the prompt, then off the visible end until
// the tail fits. The whole repaint goes out in a single write: carriage
// return, prompt, visible slice, erase-to-end, cursor reposition.
func (e *Editor) refresh() error {
	promptCols := e.promptColumns()

	view := e.buf
	pos := e.pos

	// Scroll left until the cursor column fits on screen. A prompt as wide
	// as the terminal can never fit; once the cursor is at the view start
	// there is nothing left to trim.
	for promptCols+grapheme.ColumnWidth(view, 0, pos) >= e.cols {
		if len(view) == 0 || pos == 0 {
			break
		}
		length, _ := grapheme.NextLen(view, 0)
		if length == 0 {
			break
		}
		view = view[length:]
		pos -= length
	}

	// Then trim the tail if the remainder still overflows.
	for promptCols+grapheme.ColumnWidth(view, 0, len(view)) > e.cols {
		length, _ := grapheme.PrevLen(view, len(view))
		if length == 0 {
			break
		}
		view = view[:len(view)-length]
	}

	var out bytes.Buffer
	out.WriteByte('\r')
	out.WriteString(e.prompt)
	out.Write(view)
	out.WriteString("\x1b[0K")

	out.WriteByte('\r')
	if col := promptCols + grapheme.ColumnWidth(view, 0, pos); col > 0 {
		fmt.Fprintf(&out, "\x1b[%dC", col)
	}

	if _, err := e.term.Out().Write(out.Bytes()); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	return nil
}

// promptColumns measures the prompt's rendered width. ANSI sequences
// embedded in the prompt are excluded from the measurement, though they
// are still written literally when the prompt is printed.
func (e *Editor) promptColumns() int {
	prompt := []byte(e.prompt)

	visible := make([]byte, 0, len(prompt))
	for off := 0; off < len(prompt); {
		if length, ok := ansiEscape(prompt[off:]); ok {
			off += length
			continue
		}
		visible = append(visible, prompt[off])
		off++
	}

	return grapheme.ColumnWidth(visible, 0, len(visible))
}

// ansiEscape reports whether buf starts with a CSI escape sequence and, if
// so, its byte length. Accepted final bytes are A-K minus I, plus S, T,
// f and m; anything else is treated as visible text.
func ansiEscape(buf []byte) (int, bool) {
	if len(buf) <= 2 || buf[0] != 0x1b || buf[1] != '[' {
		return 0, false
	}

	for off := 2; off < len(buf); off++ {
		c := buf[off]
		if (c >= 'A' && c <= 'K' && c != 'I') ||
			c == 'S' || c == 'T' || c == 'f' || c == 'm' {
			return off + 1, true
		}
	}

	return 0, false
}
