package logger

import (
	"fmt"
	"testing"
	"time"
)

func TestDeduplicator_CollapsesRepeats(t *testing.T) {
	var lines []string
	d := newDeduplicator(time.Hour)
	d.logf = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	d.record("cache miss")
	d.record("cache miss")
	d.record("cache miss")
	d.record("other message")

	// flush of the repeated line happens when the message changes
	if len(lines) != 1 || lines[0] != "cache miss (3)" {
		t.Fatalf("lines = %v", lines)
	}

	d.mu.Lock()
	d.flushLocked()
	d.mu.Unlock()

	if len(lines) != 2 || lines[1] != "other message" {
		t.Fatalf("lines = %v", lines)
	}
}

// Flush drains the package-wide deduplicator; the shutdown path relies on
// it so a buffered repeat count is not lost on exit.
func TestFlush_DrainsBufferedLine(t *testing.T) {
	var lines []string
	oldLogf := dedup.logf
	dedup.logf = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	defer func() {
		Flush()
		dedup.logf = oldLogf
	}()

	Dedup("connection refused to %s", "insight service")
	Dedup("connection refused to %s", "insight service")
	Flush()

	if len(lines) != 1 || lines[0] != "connection refused to insight service (2)" {
		t.Fatalf("lines = %v", lines)
	}

	// a second flush with nothing buffered is a no-op
	Flush()
	if len(lines) != 1 {
		t.Fatalf("empty flush emitted output: %v", lines)
	}
}

func TestDeduplicator_SingleLineUnchanged(t *testing.T) {
	var lines []string
	d := newDeduplicator(time.Hour)
	d.logf = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	d.record("once")
	d.record("twice")

	if len(lines) != 1 || lines[0] != "once" {
		t.Fatalf("lines = %v", lines)
	}
}
