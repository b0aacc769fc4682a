package terminal

import "testing"

func TestHistory_RecallSequence(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Push("first")
	h.Push("second")
	h.Push("third")

	// Three recalls walk back to the oldest entry, a fourth stays clamped.
	want := []string{"third", "second", "first", "first"}
	for i, expect := range want {
		got, ok := h.Prev()
		if !ok {
			t.Fatalf("Prev #%d: unexpectedly empty", i+1)
		}
		if got != expect {
			t.Errorf("Prev #%d = %q, want %q", i+1, got, expect)
		}
	}
}

func TestHistory_NextDeactivatesPastNewest(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Push("a")
	h.Push("b")

	if _, ok := h.Prev(); !ok { // cursor on "b"
		t.Fatal("Prev failed")
	}
	if got, _ := h.Prev(); got != "a" {
		t.Fatalf("second Prev = %q, want a", got)
	}

	got, ok := h.Next()
	if !ok || got != "b" {
		t.Fatalf("Next = (%q, %v), want (b, true)", got, ok)
	}

	// Moving past the newest entry deactivates the cursor and clears the
	// buffer via the returned empty string.
	got, ok = h.Next()
	if !ok || got != "" {
		t.Fatalf("Next past newest = (%q, %v), want (\"\", true)", got, ok)
	}
	if h.Active() {
		t.Error("cursor should be inactive after walking past the newest entry")
	}

	// With an inactive cursor, Next is a no-op.
	if _, ok := h.Next(); ok {
		t.Error("Next with inactive cursor should report ok=false")
	}
}

func TestHistory_EmptyPrev(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	if _, ok := h.Prev(); ok {
		t.Error("Prev on empty history should report ok=false")
	}
}

func TestHistory_PushResetsCursor(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Push("one")
	if _, ok := h.Prev(); !ok {
		t.Fatal("Prev failed")
	}
	if !h.Active() {
		t.Fatal("cursor should be active after Prev")
	}

	h.Push("two")
	if h.Active() {
		t.Error("Push must deactivate the cursor")
	}
	if got, _ := h.Prev(); got != "two" {
		t.Errorf("Prev after Push = %q, want two", got)
	}
}

func TestHistory_StoresRawText(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Push("  UI-Kit   Setup  ")

	got, ok := h.Prev()
	if !ok {
		t.Fatal("Prev failed")
	}
	if got != "  UI-Kit   Setup  " {
		t.Errorf("history normalized the entry: %q", got)
	}
}
