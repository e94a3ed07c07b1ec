// Package terminal manages the raw-mode lifecycle and capability probing for
// the line editor: termios get/set, terminal-width discovery with an escape
// probe fallback, and detection of terminals that cannot handle basic escape
// sequences.
package terminal

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultColumns is assumed when every width probe fails.
const DefaultColumns = 80

// Terminals known to not understand basic VT100 escape sequences. Matched
// case-insensitively against $TERM; on a match the editor falls back to
// plain line input.
var badTerms = []string{"dumb", "cons25", "emacs"}

// Terminal owns the raw-mode state for one input/output descriptor pair.
// Input and output may differ; output is typically stderr so the edit line
// stays visible when stdout is redirected.
type Terminal struct {
	in  *os.File
	out *os.File

	rawMode bool
	saved   *termState
}

// New returns a Terminal over the given descriptor pair. No terminal state
// is touched until EnableRaw.
func New(in, out *os.File) *Terminal {
	return &Terminal{in: in, out: out}
}

// In returns the input file.
func (t *Terminal) In() *os.File { return t.in }

// Out returns the output file.
func (t *Terminal) Out() *os.File { return t.out }

// IsTerminal reports whether the input descriptor is an interactive
// terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd()))
}

// IsBadTerm reports whether $TERM names a terminal on the incompatible
// list.
func IsBadTerm() bool {
	name := os.Getenv("TERM")
	if name == "" {
		return false
	}
	for _, bad := range badTerms {
		if strings.EqualFold(name, bad) {
			return true
		}
	}
	return false
}

// EnableRaw puts the input terminal into raw mode, saving the prior
// settings for DisableRaw. It is idempotent. Canonical mode, echo, signal
// characters, CR/NL translation, parity, stripping and flow control are
// disabled; characters are 8 bit; reads return after exactly one byte with
// no timeout.
//
// x/term.MakeRaw is deliberately not used here: it also clears output
// post-processing, which would require every "\n" the host writes to become
// "\r\n". The editor needs the original linenoise flag set, which leaves
// output processing alone.
func (t *Terminal) EnableRaw() error {
	if t.rawMode {
		return nil
	}

	if !t.IsTerminal() {
		return fmt.Errorf("enable raw mode: %w", ErrNotTerminal)
	}

	saved, err := makeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}

	t.saved = saved
	t.rawMode = true

	return nil
}

// DisableRaw restores the settings captured by EnableRaw. It runs on
// cleanup paths where a failure cannot be usefully handled, so errors are
// swallowed; the raw-mode flag is only cleared when the restore actually
// succeeded.
func (t *Terminal) DisableRaw() {
	if !t.rawMode || t.saved == nil {
		return
	}
	if restore(int(t.in.Fd()), t.saved) == nil {
		t.rawMode = false
	}
}

// RawMode reports whether raw mode is currently active.
func (t *Terminal) RawMode() bool { return t.rawMode }

// Columns returns the terminal width. The window-size ioctl is the primary
// path; if it is unavailable or reports zero the terminal itself is probed
// by parking the cursor at the right margin and asking for its position.
// Returns DefaultColumns if every step fails.
func (t *Terminal) Columns() int {
	if w, _, err := term.GetSize(int(t.out.Fd())); err == nil && w > 0 {
		return w
	}

	// ioctl failed; query the terminal itself.
	start := t.CursorColumn()
	if start < 0 {
		return DefaultColumns
	}

	// Go to the right margin (the terminal clamps the move) and read the
	// resulting column as a width proxy.
	if _, err := t.out.WriteString("\x1b[999C"); err != nil {
		return DefaultColumns
	}
	cols := t.CursorColumn()
	if cols < 0 {
		return DefaultColumns
	}

	// Restore the cursor to where it was.
	if cols > start {
		fmt.Fprintf(t.out, "\x1b[%dD", cols-start)
	}

	return cols
}

// CursorColumn queries the cursor position with DSR (ESC [6n) and parses
// the ESC [ row ; col R reply. Returns -1 on any I/O or parse failure.
func (t *Terminal) CursorColumn() int {
	if _, err := t.out.WriteString("\x1b[6n"); err != nil {
		return -1
	}

	// Read the reply byte-by-byte into a bounded buffer up to the 'R'
	// terminator.
	var buf [32]byte
	i := 0
	for ; i < len(buf)-1; i++ {
		if _, err := t.in.Read(buf[i : i+1]); err != nil {
			break
		}
		if buf[i] == 'R' {
			break
		}
	}

	reply := string(buf[:i])
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return -1
	}

	var rows, cols int
	if _, err := fmt.Sscanf(reply[2:], "%d;%d", &rows, &cols); err != nil {
		return -1
	}

	return cols
}

// ClearScreen homes the cursor and erases the whole display.
func (t *Terminal) ClearScreen() error {
	_, err := t.out.WriteString("\x1b[H\x1b[2J")
	return err
}
