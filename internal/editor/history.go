package editor

// History is the session's in-memory line history. Nothing is
// persisted; the list lives and dies with the process.
//
// Navigation walks from the newest entry backwards. Stepping forward
// past the newest entry yields the empty draft again.
type History struct {
	entries []string
	// pos counts steps back from the end; 0 means "not navigating".
	pos int
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// Add records a submitted line and resets navigation. Empty lines and
// consecutive duplicates are skipped.
func (h *History) Add(line string) {
	h.pos = 0
	if line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
}

// Prev steps one entry back and returns it. ok is false when already
// at the oldest entry, or when the history is empty.
func (h *History) Prev() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	return h.entries[len(h.entries)-h.pos], true
}

// Next steps one entry forward. Past the newest entry it returns the
// empty draft with ok=true once, then reports ok=false.
func (h *History) Next() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	if h.pos == 0 {
		return "", true
	}
	return h.entries[len(h.entries)-h.pos], true
}
