package logger

import (
	"fmt"
	"log"
	"sync"
	"time"
)

var dedup = newDeduplicator(2 * time.Second)

// deduplicator collapses identical consecutive log lines into a single
// line with a repeat count, flushed after a quiet period.
type deduplicator struct {
	mu         sync.Mutex
	lastMsg    string
	count      int
	flushDelay time.Duration
	timer      *time.Timer
	logf       func(format string, args ...any)
}

func newDeduplicator(flushDelay time.Duration) *deduplicator {
	return &deduplicator{
		flushDelay: flushDelay,
		logf:       log.Printf,
	}
}

func (d *deduplicator) flushLocked() {
	if d.count == 0 {
		return
	}
	if d.count == 1 {
		d.logf("%s", d.lastMsg)
	} else {
		d.logf("%s (%d)", d.lastMsg, d.count)
	}
	d.count = 0
	d.lastMsg = ""
}

func (d *deduplicator) record(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if msg == d.lastMsg {
		d.count++
	} else {
		d.flushLocked()
		d.lastMsg = msg
		d.count = 1
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.flushDelay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.flushLocked()
	})
}

// Dedup logs through the process-wide deduplicator. Useful for messages
// that can repeat on every request, like insight fallback notices.
func Dedup(format string, args ...any) {
	dedup.record(fmt.Sprintf(format, args...))
}

// Flush forces any buffered line out immediately.
func Flush() {
	dedup.mu.Lock()
	defer dedup.mu.Unlock()
	if dedup.timer != nil {
		dedup.timer.Stop()
	}
	dedup.flushLocked()
}
