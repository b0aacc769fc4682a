// Package terminal implements the scripted Shuriken CLI playground: a
// terminal-style widget that matches typed commands against a fixed script
// and replays canned output with a word-by-word reveal.
package terminal

import (
	"strings"
	"time"
)

// Entry is one scripted command: a trigger string, the canned output it
// produces, and the delay between revealed words.
type Entry struct {
	Trigger     string
	Output      string
	RevealDelay time.Duration
}

// Script is an immutable, ordered command table. Entries are checked in
// declaration order and the first match wins; there is no longest-match
// policy, so more specific triggers must be registered first.
type Script struct {
	entries []Entry
}

// NewScript creates a script from the given entries. The slice is copied so
// callers cannot mutate the table afterwards.
func NewScript(entries ...Entry) *Script {
	s := &Script{entries: make([]Entry, len(entries))}
	copy(s.entries, entries)
	return s
}

// Entries returns a copy of the command table in declaration order.
func (s *Script) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Triggers returns the trigger strings in declaration order.
func (s *Script) Triggers() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Trigger
	}
	return out
}

// Normalize collapses runs of whitespace to single spaces and trims the ends.
// Matching operates on normalized input; history stores the raw string.
func Normalize(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// Match looks up the entry for the given raw input. Comparison is
// case-insensitive on normalized text; an entry matches when the input equals
// its trigger or extends it with a space (so "ui-kit setup --verbose" matches
// the "ui-kit setup" entry).
func (s *Script) Match(input string) (Entry, bool) {
	norm := strings.ToLower(Normalize(input))
	if norm == "" {
		return Entry{}, false
	}
	for _, e := range s.entries {
		trigger := strings.ToLower(Normalize(e.Trigger))
		if norm == trigger || strings.HasPrefix(norm, trigger+" ") {
			return e, true
		}
	}
	return Entry{}, false
}
