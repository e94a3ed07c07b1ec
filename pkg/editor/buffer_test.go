package editor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEditor wires an Editor to pipes and a fixed 80-column display so
// buffer operations can run without a terminal. The returned files inject
// input and drain rendered output.
func newTestEditor(t *testing.T) (e *Editor, input *os.File, output *os.File) {
	t.Helper()

	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	outR, outW, err := os.Pipe()
	require.NoError(t, err)

	t.Cleanup(func() {
		inR.Close()
		inW.Close()
		outR.Close()
		outW.Close()
	})

	e = New(WithInput(inR), WithOutput(outW))
	e.cols = 80
	e.prompt = "> "

	return e, inW, outR
}

func TestInsertAndBackspace(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("h")))
	require.NoError(t, e.insert([]byte("i")))
	assert.Equal(t, "hi", string(e.buf))
	assert.Equal(t, 2, e.pos)

	require.NoError(t, e.backspace())
	assert.Equal(t, "h", string(e.buf))
	assert.Equal(t, 1, e.pos)
}

func TestInsertMidBuffer(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("ac")))
	e.pos = 1
	require.NoError(t, e.insert([]byte("b")))

	assert.Equal(t, "abc", string(e.buf))
	assert.Equal(t, 2, e.pos)
}

// A multi-byte codepoint moves the cursor whole graphemes at a time; byte
// offsets inside the encoding are never cursor positions.
func TestEuroCursorMovement(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("€")))
	assert.Equal(t, 3, e.pos)

	require.NoError(t, e.home())
	assert.Equal(t, 0, e.pos)

	require.NoError(t, e.moveRight())
	assert.Equal(t, 3, e.pos)

	require.NoError(t, e.moveLeft())
	assert.Equal(t, 0, e.pos)
}

func TestMoveIsNoopAtExtremes(t *testing.T) {
	e, _, _ := newTestEditor(t)
	require.NoError(t, e.insert([]byte("x")))

	require.NoError(t, e.moveRight())
	assert.Equal(t, 1, e.pos)

	require.NoError(t, e.home())
	require.NoError(t, e.moveLeft())
	assert.Equal(t, 0, e.pos)
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("base")))
	e.pos = 2

	require.NoError(t, e.insert([]byte("€")))
	require.NoError(t, e.insert([]byte("x")))
	require.NoError(t, e.backspace())
	require.NoError(t, e.backspace())

	assert.Equal(t, "base", string(e.buf))
	assert.Equal(t, 2, e.pos)
}

func TestDeleteForward(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("a€b")))
	e.pos = 1

	require.NoError(t, e.delete())
	assert.Equal(t, "ab", string(e.buf))
	assert.Equal(t, 1, e.pos)

	// No-op at the end of the buffer.
	e.pos = len(e.buf)
	require.NoError(t, e.delete())
	assert.Equal(t, "ab", string(e.buf))
}

func TestBackspaceConsumesCombiningRun(t *testing.T) {
	e, _, _ := newTestEditor(t)

	// "e" plus combining acute: one grapheme, three bytes.
	require.NoError(t, e.insert([]byte("é")))
	require.NoError(t, e.backspace())

	assert.Empty(t, e.buf)
	assert.Equal(t, 0, e.pos)
}

func TestWordMovement(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("foo  bar baz")))
	require.NoError(t, e.home())

	require.NoError(t, e.wordEnd())
	assert.Equal(t, 3, e.pos)

	require.NoError(t, e.wordEnd())
	assert.Equal(t, 8, e.pos)

	require.NoError(t, e.wordStart())
	assert.Equal(t, 5, e.pos)

	require.NoError(t, e.wordStart())
	assert.Equal(t, 0, e.pos)
}

func TestDeletePrevWord(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("one two  ")))
	require.NoError(t, e.deletePrevWord())

	assert.Equal(t, "one ", string(e.buf))
	assert.Equal(t, 4, e.pos)
}

func TestDeleteNextWord(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("one  two three")))
	e.pos = 3

	require.NoError(t, e.deleteNextWord())
	assert.Equal(t, "one three", string(e.buf))
	assert.Equal(t, 3, e.pos)
}

func TestTranspose(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("ab€")))
	e.pos = 1 // between a and b

	require.NoError(t, e.transpose())
	assert.Equal(t, "ba€", string(e.buf))
	assert.Equal(t, 1, e.pos)

	// Swapping a narrow grapheme with a wide one adjusts the cursor by the
	// byte-length difference.
	e.pos = 2
	require.NoError(t, e.transpose())
	assert.Equal(t, "b€a", string(e.buf))
	assert.Equal(t, 4, e.pos)
}

func TestTransposeNoopAtEnd(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("ab")))
	require.NoError(t, e.transpose())

	assert.Equal(t, "ab", string(e.buf))
	assert.Equal(t, 2, e.pos)
}

func TestKillLine(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("keep drop")))
	e.pos = 4

	require.NoError(t, e.killLine())
	assert.Equal(t, "keep", string(e.buf))
	assert.Equal(t, 4, e.pos)
}

func TestKillWholeLine(t *testing.T) {
	e, _, _ := newTestEditor(t)

	require.NoError(t, e.insert([]byte("everything")))
	e.pos = 4

	require.NoError(t, e.killWholeLine())
	assert.Empty(t, e.buf)
	assert.Equal(t, 0, e.pos)
}

// Navigating all the way back and all the way forward again must land on
// the original live buffer, with in-progress edits preserved in the
// entries passed through.
func TestHistoryNavigationRoundTrip(t *testing.T) {
	e, _, _ := newTestEditor(t)

	for _, line := range []string{"alpha", "beta", "gamma"} {
		e.hist.Push(line)
	}
	e.hist.Push("") // the live entry
	e.livePushed = true
	require.NoError(t, e.insert([]byte("live")))

	n := e.hist.Len()
	for i := 0; i < n-1; i++ {
		require.NoError(t, e.historyMove(true))
	}
	assert.Equal(t, "alpha", string(e.buf))

	// One more press clamps at the oldest entry without changing the view.
	require.NoError(t, e.historyMove(true))
	assert.Equal(t, "alpha", string(e.buf))

	for i := 0; i < n-1; i++ {
		require.NoError(t, e.historyMove(false))
	}
	assert.Equal(t, "live", string(e.buf))
	assert.Equal(t, len("live"), e.pos)
}

func TestHistoryEditsSurviveNavigation(t *testing.T) {
	e, _, _ := newTestEditor(t)

	e.hist.Push("original")
	e.hist.Push("") // live entry
	e.livePushed = true

	require.NoError(t, e.historyMove(true))
	assert.Equal(t, "original", string(e.buf))

	// Edit the recalled entry, wander off it, then come back.
	require.NoError(t, e.insert([]byte("!")))
	require.NoError(t, e.historyMove(false))
	require.NoError(t, e.historyMove(true))

	assert.Equal(t, "original!", string(e.buf))
}

func TestHistoryMoveNoopWithSingleEntry(t *testing.T) {
	e, _, _ := newTestEditor(t)

	e.hist.Push("")
	require.NoError(t, e.insert([]byte("typing")))

	require.NoError(t, e.historyMove(true))
	assert.Equal(t, "typing", string(e.buf))
}
