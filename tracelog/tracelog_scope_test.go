package tracelog

import (
	"errors"
	"strings"
	"testing"
)

func TestPush_RejectsEmptyName(t *testing.T) {
	l, buf := newTestLogger()

	if l.Push("") {
		t.Fatalf("Push(\"\") should return false")
	}
	if l.Depth() != 0 {
		t.Fatalf("Push(\"\") should leave the stack unchanged, depth = %d", l.Depth())
	}
	if buf.Len() != 0 {
		t.Fatalf("Push(\"\") should emit nothing, got: %q", buf.String())
	}
}

func TestPush_EmitsBeginRecord(t *testing.T) {
	l, buf := newTestLogger()

	if !l.Push("f") {
		t.Fatalf("Push(\"f\") should return true")
	}
	if l.Depth() != 1 {
		t.Fatalf("depth after one push = %d, want 1", l.Depth())
	}
	if !strings.Contains(buf.String(), "BEGIN - f") {
		t.Fatalf("Push should emit a BEGIN record, got: %q", buf.String())
	}
}

func TestPop_ReturnsNewestFirst(t *testing.T) {
	l, buf := newTestLogger()
	l.Push("a")
	l.Push("b")
	buf.Reset()

	if got := l.Pop(); got != "b" {
		t.Fatalf("Pop() = %q, want %q", got, "b")
	}
	if !strings.Contains(buf.String(), "END - b") {
		t.Fatalf("Pop should emit an END record for the removed entry, got: %q", buf.String())
	}
	if top, err := l.Peek(); err != nil || top != "a" {
		t.Fatalf("Peek() after pop = (%q, %v), want (%q, nil)", top, err, "a")
	}
}

func TestPop_EmptyStack(t *testing.T) {
	l, buf := newTestLogger()

	if got := l.Pop(); got != "" {
		t.Fatalf("Pop() on empty stack = %q, want \"\"", got)
	}
	if buf.Len() != 0 {
		t.Fatalf("Pop() on empty stack should emit nothing, got: %q", buf.String())
	}
}

func TestPeek_DoesNotRemove(t *testing.T) {
	l, _ := newTestLogger()
	l.Push("handler")

	for i := 0; i < 3; i++ {
		top, err := l.Peek()
		if err != nil {
			t.Fatalf("Peek() returned error: %v", err)
		}
		if top != "handler" {
			t.Fatalf("Peek() = %q, want %q", top, "handler")
		}
	}
	if l.Depth() != 1 {
		t.Fatalf("Peek should not change the stack, depth = %d", l.Depth())
	}
}

func TestPeek_EmptyStack(t *testing.T) {
	l, _ := newTestLogger()

	top, err := l.Peek()
	if !errors.Is(err, ErrEmptyScope) {
		t.Fatalf("Peek() on empty stack should return ErrEmptyScope, got: %v", err)
	}
	if top != "" {
		t.Fatalf("Peek() on empty stack returned %q, want \"\"", top)
	}
}

func TestStackDump_ReverseOrder(t *testing.T) {
	l, buf := newTestLogger()
	l.Push("a")
	l.Push("b")
	buf.Reset()

	l.Error("boom")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{stackTraceBegin, "b", "a", stackTraceEnd}
	if len(lines) != len(want)+1 {
		t.Fatalf("expected message plus %d dump lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i+1] != w {
			t.Fatalf("dump line %d = %q, want %q", i, lines[i+1], w)
		}
	}
}

func TestStackDump_EmptyStack(t *testing.T) {
	l, buf := newTestLogger()

	l.Error("boom")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("empty-stack dump should be message plus two delimiters, got: %q", lines)
	}
	if lines[1] != stackTraceBegin || lines[2] != stackTraceEnd {
		t.Fatalf("expected bare delimiters, got: %q", lines[1:])
	}
}

func TestStackDump_FatalAlsoDumps(t *testing.T) {
	l, buf := newTestLogger()
	l.Push("init")
	buf.Reset()

	l.Fatal("dead")

	if !strings.Contains(buf.String(), stackTraceBegin) || !strings.Contains(buf.String(), "init") {
		t.Fatalf("Fatal should dump the scope stack, got: %q", buf.String())
	}
}

func TestStackDump_WarnDoesNot(t *testing.T) {
	l, buf := newTestLogger()
	l.Push("init")
	buf.Reset()

	l.Warn("careful")

	if strings.Contains(buf.String(), stackTraceBegin) {
		t.Fatalf("Warn should not dump the scope stack, got: %q", buf.String())
	}
}
