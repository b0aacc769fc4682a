package terminal

import (
	"strings"
	"time"
)

// LineKind classifies a transcript line.
type LineKind int

const (
	// LineInput echoes a command the user submitted.
	LineInput LineKind = iota
	// LineOutput is canned command output.
	LineOutput
	// LineError reports an unrecognized command.
	LineError
	// LineInfo is an informational message from the widget itself.
	LineInfo
)

// Line is a single transcript entry. Lines are immutable once their reveal
// has completed; only the in-flight output line grows.
type Line struct {
	Kind LineKind
	Text string
	Time time.Time
}

// Transcript is the append-only log of everything shown in the widget.
// The only non-append mutation is Reset, which replaces the whole log with a
// single informational line.
type Transcript struct {
	lines []Line
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds a line and returns its index.
func (t *Transcript) Append(kind LineKind, text string, now time.Time) int {
	t.lines = append(t.lines, Line{Kind: kind, Text: text, Time: now})
	return len(t.lines) - 1
}

// Extend appends a revealed token to the line at index i, inserting a
// separating space unless the line is still empty.
func (t *Transcript) Extend(i int, token string) {
	if i < 0 || i >= len(t.lines) {
		return
	}
	if t.lines[i].Text == "" {
		t.lines[i].Text = token
		return
	}
	t.lines[i].Text += " " + token
}

// Reset replaces the transcript with a single Info line.
func (t *Transcript) Reset(text string, now time.Time) {
	t.lines = []Line{{Kind: LineInfo, Text: text, Time: now}}
}

// Len returns the number of lines.
func (t *Transcript) Len() int {
	return len(t.lines)
}

// Line returns the line at index i.
func (t *Transcript) Line(i int) Line {
	return t.lines[i]
}

// Lines returns a copy of all lines in order.
func (t *Transcript) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	return out
}

// String renders the transcript as plain text, one entry per line.
// Used for the clipboard export.
func (t *Transcript) String() string {
	var b strings.Builder
	for _, l := range t.lines {
		if l.Kind == LineInput {
			b.WriteString("> ")
		}
		b.WriteString(l.Text)
		b.WriteString("\n")
	}
	return b.String()
}
