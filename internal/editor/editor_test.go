package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariant asserts 0 <= cursor <= len(buffer).
func checkInvariant(t *testing.T, e *Editor) {
	t.Helper()
	require.GreaterOrEqual(t, e.Cursor(), 0)
	require.LessOrEqual(t, e.Cursor(), e.Len())
}

func typeString(e *Editor, s string) {
	for i := 0; i < len(s); i++ {
		e.Insert(s[i])
	}
}

func TestInsertAdvancesCursor(t *testing.T) {
	e := New()
	typeString(e, "echo")

	assert.Equal(t, "echo", e.String())
	assert.Equal(t, 4, e.Cursor())
}

func TestInsertInMiddle(t *testing.T) {
	e := New()
	typeString(e, "eco")
	e.MoveLeft()
	e.Insert('h')

	assert.Equal(t, "echo", e.String())
	assert.Equal(t, 3, e.Cursor())
}

func TestBackspace(t *testing.T) {
	e := New()
	typeString(e, "ab")
	e.Backspace()

	assert.Equal(t, "a", e.String())
	assert.Equal(t, 1, e.Cursor())

	e.Backspace()
	assert.Equal(t, "", e.String())

	// No-op at position 0.
	e.Backspace()
	assert.Equal(t, "", e.String())
	checkInvariant(t, e)
}

func TestDelete(t *testing.T) {
	e := New()
	typeString(e, "abc")
	e.MoveHome()
	e.Delete()

	assert.Equal(t, "bc", e.String())
	assert.Equal(t, 0, e.Cursor())

	// No-op at end.
	e.MoveEnd()
	e.Delete()
	assert.Equal(t, "bc", e.String())
	checkInvariant(t, e)
}

func TestMovementClampsAtBoundaries(t *testing.T) {
	e := New()
	typeString(e, "hi")

	e.MoveRight()
	assert.Equal(t, 2, e.Cursor())

	e.MoveHome()
	e.MoveLeft()
	assert.Equal(t, 0, e.Cursor())

	e.MoveEnd()
	assert.Equal(t, 2, e.Cursor())
	checkInvariant(t, e)
}

func TestClear(t *testing.T) {
	e := New()
	typeString(e, "echo hi")
	e.Clear()

	assert.Equal(t, "", e.String())
	assert.Equal(t, 0, e.Cursor())
}

func TestCursorInvariantUnderOperationSequences(t *testing.T) {
	// Deterministic pseudo-random walk over the operation set; the
	// cursor invariant must hold after every step.
	e := New()
	ops := []func(){
		func() { e.Insert('x') },
		func() { e.Backspace() },
		func() { e.Delete() },
		func() { e.MoveLeft() },
		func() { e.MoveRight() },
		func() { e.MoveHome() },
		func() { e.MoveEnd() },
		func() { e.Clear() },
	}

	seed := uint64(42)
	for i := 0; i < 5000; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		ops[seed%uint64(len(ops))]()
		checkInvariant(t, e)
	}
}

func TestWordAtCursor(t *testing.T) {
	tests := []struct {
		name      string
		buffer    string
		cursor    int
		wantStart int
		wantEnd   int
		wantWord  string
		wantOK    bool
	}{
		{
			name:   "empty buffer",
			buffer: "", cursor: 0,
			wantOK: false,
		},
		{
			name:   "cursor at end resolves trailing word",
			buffer: "echo hel", cursor: 8,
			wantStart: 5, wantEnd: 8, wantWord: "hel", wantOK: true,
		},
		{
			name:   "cursor inside word",
			buffer: "echo hello", cursor: 7,
			wantStart: 5, wantEnd: 10, wantWord: "hello", wantOK: true,
		},
		{
			name:   "cursor at start of buffer",
			buffer: "echo", cursor: 0,
			wantStart: 0, wantEnd: 4, wantWord: "echo", wantOK: true,
		},
		{
			name:   "cursor on whitespace between words",
			buffer: "a  b", cursor: 2,
			wantOK: false,
		},
		{
			name:   "cursor just after word boundary picks preceding word",
			buffer: "ab cd", cursor: 2,
			wantStart: 0, wantEnd: 2, wantWord: "ab", wantOK: true,
		},
		{
			name:   "whitespace-only buffer",
			buffer: "   ", cursor: 1,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			e.Set(tt.buffer)
			for e.Cursor() > tt.cursor {
				e.MoveLeft()
			}

			start, end, word, ok := e.WordAtCursor()
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.Equal(t, tt.wantWord, word)
		})
	}
}

func TestReplaceWord(t *testing.T) {
	e := New()
	e.Set("ec hi")
	start, end := 0, 2

	e.ReplaceWord(start, end, "echo")

	assert.Equal(t, "echo hi", e.String())
	assert.Equal(t, 4, e.Cursor())
	checkInvariant(t, e)
}

func TestReplaceWordShorterReplacement(t *testing.T) {
	e := New()
	e.Set("verbose x")

	e.ReplaceWord(0, 7, "v")

	assert.Equal(t, "v x", e.String())
	assert.Equal(t, 1, e.Cursor())
}

func TestHistoryNavigation(t *testing.T) {
	h := NewHistory()
	h.Add("first")
	h.Add("second")

	line, ok := h.Prev()
	require.True(t, ok)
	assert.Equal(t, "second", line)

	line, ok = h.Prev()
	require.True(t, ok)
	assert.Equal(t, "first", line)

	// Already at the oldest entry.
	_, ok = h.Prev()
	assert.False(t, ok)

	line, ok = h.Next()
	require.True(t, ok)
	assert.Equal(t, "second", line)

	// Forward past the newest restores the empty draft.
	line, ok = h.Next()
	require.True(t, ok)
	assert.Equal(t, "", line)

	_, ok = h.Next()
	assert.False(t, ok)
}

func TestHistorySkipsEmptyAndDuplicates(t *testing.T) {
	h := NewHistory()
	h.Add("ls")
	h.Add("")
	h.Add("ls")

	line, ok := h.Prev()
	require.True(t, ok)
	assert.Equal(t, "ls", line)

	_, ok = h.Prev()
	assert.False(t, ok)
}

func TestHistoryAddResetsNavigation(t *testing.T) {
	h := NewHistory()
	h.Add("one")
	h.Prev()
	h.Add("two")

	line, ok := h.Prev()
	require.True(t, ok)
	assert.Equal(t, "two", line)
}
