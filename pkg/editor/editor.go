// Package editor implements the interactive line-editing session: the
// editable buffer and its operations, the escape decoder, the renderer and
// the read-dispatch loop. It is the functional equivalent of a minimal
// linenoise embedded in a larger REPL.
package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/termkit/lineedit/pkg/grapheme"
	"github.com/termkit/lineedit/pkg/history"
	"github.com/termkit/lineedit/pkg/logging"
	"github.com/termkit/lineedit/pkg/terminal"
)

// ErrInterrupt is returned by ReadLine when the user presses Ctrl-C. It is
// a distinguishable, non-fatal condition; the caller decides whether to
// abandon the session or prompt again.
var ErrInterrupt = errors.New("interrupted")

// Editor owns one interactive reader: the editable buffer, the terminal
// raw-mode lifecycle and the history store. It is not safe for concurrent
// use; every operation runs from the single read-dispatch loop.
type Editor struct {
	term *terminal.Terminal
	hist *history.Store
	log  *logging.Logger

	prompt string
	buf    []byte
	pos    int // byte offset, always on a grapheme boundary
	cols   int
	idx    int // history navigation index, 0 = live entry

	badTerm    bool
	livePushed bool          // the live history entry was actually added
	reader     *bufio.Reader // non-raw fallback, lazily created
}

// Option configures an Editor.
type Option func(*options)

type options struct {
	in       *os.File
	out      *os.File
	capacity int
	logger   *logging.Logger
}

// WithInput sets the input terminal file. Default is stdin.
func WithInput(f *os.File) Option { return func(o *options) { o.in = f } }

// WithOutput sets the output terminal file. Default is stderr so the edit
// line stays visible when stdout is redirected.
func WithOutput(f *os.File) Option { return func(o *options) { o.out = f } }

// WithHistoryCapacity bounds the history store.
func WithHistoryCapacity(n int) Option { return func(o *options) { o.capacity = n } }

// WithLogger sets the trace logger.
func WithLogger(l *logging.Logger) Option { return func(o *options) { o.logger = l } }

// New returns an Editor over the configured descriptors. The history store
// persists across ReadLine calls until Close.
func New(opts ...Option) *Editor {
	o := options{
		in:  os.Stdin,
		out: os.Stderr,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.GetLogger()
	}

	return &Editor{
		term:    terminal.New(o.in, o.out),
		hist:    history.New(o.capacity),
		log:     o.logger,
		badTerm: terminal.IsBadTerm(),
	}
}

// ReadLine reads one line from the user, editing interactively when the
// input is a compatible terminal and falling back to a plain buffered read
// otherwise. The accepted line (without its newline) is recorded in
// history. Returns ErrInterrupt on Ctrl-C and io.EOF on Ctrl-D at an empty
// buffer.
func (e *Editor) ReadLine(prompt string) (string, error) {
	if !e.term.IsTerminal() || e.badTerm {
		e.log.Tracef("raw editing unavailable (tty=%v badTerm=%v), using plain read",
			e.term.IsTerminal(), e.badTerm)
		line, err := e.plainReadLine(prompt)
		if err != nil {
			return "", err
		}
		e.hist.Push(line)
		return line, nil
	}

	line, err := e.editRaw(prompt)
	if err != nil {
		return "", err
	}

	e.hist.Push(line)
	return line, nil
}

// editRaw brackets one edit session in raw mode. The restore is deferred so
// the user's terminal comes back even if the dispatch path panics; the
// trailing newline moves the cursor off the edited line on every way out.
func (e *Editor) editRaw(prompt string) (string, error) {
	if err := e.term.EnableRaw(); err != nil {
		return "", err
	}
	defer func() {
		e.term.DisableRaw()
		io.WriteString(e.term.Out(), "\n")
	}()

	return e.edit(prompt)
}

// Record seeds history with a line that did not come from a live edit
// session, e.g. one loaded from a persisted file by the host. The usual
// consecutive-duplicate suppression applies.
func (e *Editor) Record(line string) {
	e.hist.Push(line)
}

// History returns the stored lines, oldest first.
func (e *Editor) History() []string {
	return e.hist.Entries()
}

// Close restores the terminal if a session left it raw. Best-effort; never
// fails.
func (e *Editor) Close() {
	e.term.DisableRaw()
}

// edit runs the read-dispatch loop with the terminal already in raw mode.
func (e *Editor) edit(prompt string) (string, error) {
	e.prompt = prompt
	e.cols = e.term.Columns()
	e.idx = 0
	e.buf = e.buf[:0]
	e.pos = 0

	// The newest history entry mirrors the buffer being edited. It is
	// pushed here and removed again on every way out, so history only
	// keeps lines the caller actually accepted. Push deduplicates, so only
	// pop what was really added.
	before := e.hist.Len()
	e.hist.Push("")
	e.livePushed = e.hist.Len() > before
	defer func() {
		if e.livePushed {
			e.hist.Pop()
		}
	}()

	if _, err := io.WriteString(e.term.Out(), prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	for {
		cp, raw, err := readCode(e.term.In())
		if err != nil {
			return "", fmt.Errorf("read key: %w", err)
		}

		cmd := classify(cp)
		if cp == keyEscape {
			cmd = decodeEscape(e.term.In())
		}

		switch cmd {
		case cmdAccept:
			return string(e.buf), nil

		case cmdInterrupt:
			return "", ErrInterrupt

		case cmdEOFOrDelete:
			if len(e.buf) > 0 {
				if err := e.delete(); err != nil {
					return "", err
				}
				continue
			}
			return "", io.EOF

		case cmdInsert:
			if err := e.insert(raw); err != nil {
				return "", err
			}

		case cmdNone:
			// Unrecognized or incomplete sequence; ignored.
			e.log.Tracef("ignored escape sequence or unbound key %#x", cp)

		default:
			if err := e.apply(cmd); err != nil {
				return "", err
			}
		}
	}
}

// apply executes a cursor/buffer command and resynchronizes the display.
func (e *Editor) apply(cmd command) error {
	switch cmd {
	case cmdMoveLeft:
		return e.moveLeft()
	case cmdMoveRight:
		return e.moveRight()
	case cmdHome:
		return e.home()
	case cmdEnd:
		return e.end()
	case cmdWordStart:
		return e.wordStart()
	case cmdWordEnd:
		return e.wordEnd()
	case cmdHistoryPrev:
		return e.historyMove(true)
	case cmdHistoryNext:
		return e.historyMove(false)
	case cmdDelete:
		return e.delete()
	case cmdBackspace:
		return e.backspace()
	case cmdDeletePrevWord:
		return e.deletePrevWord()
	case cmdDeleteNextWord:
		return e.deleteNextWord()
	case cmdTranspose:
		return e.transpose()
	case cmdKillLine:
		return e.killLine()
	case cmdKillWholeLine:
		return e.killWholeLine()
	case cmdClearScreen:
		if err := e.term.ClearScreen(); err != nil {
			return fmt.Errorf("clear screen: %w", err)
		}
		return e.refresh()
	}
	return nil
}

// readCode reads one logical UTF-8 codepoint: a single byte, or a lead
// byte plus its continuation bytes. A malformed lead byte resolves locally
// to the replacement character so a corrupted byte stream can never abort
// editing. Reads block; a read error is surfaced as-is.
func readCode(r io.Reader) (cp rune, raw []byte, err error) {
	var buf [4]byte

	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, nil, err
	}

	n := 1
	b := buf[0]
	switch {
	case b&0x80 == 0:
	case b&0xE0 == 0xC0:
		n = 2
	case b&0xF0 == 0xE0:
		n = 3
	case b&0xF8 == 0xF0:
		n = 4
	default:
		return grapheme.Replacement, []byte("�"), nil
	}

	if n > 1 {
		if _, err := io.ReadFull(r, buf[1:n]); err != nil {
			return 0, nil, err
		}
	}

	cp, _ = grapheme.Decode(buf[:n])
	return cp, append([]byte(nil), buf[:n]...), nil
}

// plainReadLine is the non-raw fallback used when the input is not an
// interactive terminal or $TERM is on the incompatible list: print the
// prompt, read one line with ordinary line discipline.
func (e *Editor) plainReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(e.term.Out(), prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	if e.reader == nil {
		e.reader = bufio.NewReader(e.term.In())
	}

	line, err := e.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// A final unterminated line still counts.
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
