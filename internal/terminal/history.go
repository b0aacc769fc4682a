package terminal

// History keeps the ordered list of submitted commands and a recall cursor.
// The cursor is inactive between submissions; while active it always points
// at a valid entry.
type History struct {
	entries []string
	cursor  int // index into entries, -1 when inactive
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Push records a submitted command verbatim and deactivates the cursor.
func (h *History) Push(raw string) {
	h.entries = append(h.entries, raw)
	h.cursor = -1
}

// Prev moves the cursor one step toward the oldest entry, clamping at the
// first one, and returns the entry text. ok is false when history is empty.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next moves the cursor one step toward the newest entry. Moving past the
// newest entry deactivates the cursor and returns an empty string so the
// caller clears the input buffer. ok is false when the cursor is inactive,
// meaning the input buffer must be left alone.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor], true
	}
	h.cursor = -1
	return "", true
}

// Active reports whether the recall cursor is positioned on an entry.
func (h *History) Active() bool {
	return h.cursor != -1
}

// Len returns the number of recorded commands.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the recorded commands, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
