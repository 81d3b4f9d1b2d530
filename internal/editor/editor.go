// Package editor owns the in-progress input line: an editable byte
// buffer plus a cursor, and the session's in-memory history.
//
// Every mutating operation keeps the invariant 0 <= cursor <=
// len(buffer); calls at a boundary are no-ops rather than errors.
package editor

import (
	"strings"
)

// Editor is the line buffer under edit. It is the only mutator of the
// in-progress input line.
type Editor struct {
	buf    []byte
	cursor int
}

// New returns an empty Editor.
func New() *Editor {
	return &Editor{}
}

// String returns the current buffer contents.
func (e *Editor) String() string {
	return string(e.buf)
}

// Len returns the buffer length in bytes.
func (e *Editor) Len() int {
	return len(e.buf)
}

// Cursor returns the cursor offset into the buffer.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Clear empties the buffer and resets the cursor. Called at the start
// of each new line read.
func (e *Editor) Clear() {
	e.buf = e.buf[:0]
	e.cursor = 0
}

// Set replaces the whole buffer and puts the cursor at the end. Used
// by history navigation.
func (e *Editor) Set(s string) {
	e.buf = append(e.buf[:0], s...)
	e.cursor = len(e.buf)
}

// Insert inserts ch at the cursor; the cursor advances past it.
func (e *Editor) Insert(ch byte) {
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = ch
	e.cursor++
}

// Backspace removes the character before the cursor. No-op at the
// start of the buffer.
func (e *Editor) Backspace() {
	if e.cursor == 0 {
		return
	}
	e.cursor--
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
}

// Delete removes the character at the cursor. No-op at the end.
func (e *Editor) Delete() {
	if e.cursor >= len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
}

// MoveLeft moves the cursor one position left. No-op at the start.
func (e *Editor) MoveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveRight moves the cursor one position right. No-op at the end.
func (e *Editor) MoveRight() {
	if e.cursor < len(e.buf) {
		e.cursor++
	}
}

// MoveHome moves the cursor to the start of the buffer.
func (e *Editor) MoveHome() {
	e.cursor = 0
}

// MoveEnd moves the cursor past the last character.
func (e *Editor) MoveEnd() {
	e.cursor = len(e.buf)
}

// WordAtCursor returns the maximal run of non-whitespace characters
// the cursor is touching, as (start, end, text). The cursor is clamped
// to len-1 before the backward scan, so a cursor sitting just past the
// buffer still resolves to the trailing word. ok is false when the
// buffer is empty or the cursor touches only whitespace.
func (e *Editor) WordAtCursor() (start, end int, word string, ok bool) {
	if len(e.buf) == 0 {
		return 0, 0, "", false
	}

	start = e.cursor
	if start > len(e.buf)-1 {
		start = len(e.buf) - 1
	}
	end = e.cursor

	for start > 0 && !isSpace(e.buf[start-1]) {
		start--
	}
	for end < len(e.buf) && !isSpace(e.buf[end]) {
		end++
	}

	if start >= end {
		return 0, 0, "", false
	}
	return start, end, string(e.buf[start:end]), true
}

// ReplaceWord splices replacement over buf[start:end] and leaves the
// cursor just past the replacement.
func (e *Editor) ReplaceWord(start, end int, replacement string) {
	var b strings.Builder
	b.Grow(len(e.buf) - (end - start) + len(replacement))
	b.Write(e.buf[:start])
	b.WriteString(replacement)
	b.Write(e.buf[end:])
	e.buf = append(e.buf[:0], b.String()...)
	e.cursor = start + len(replacement)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r'
}
