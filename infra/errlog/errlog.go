package errlog

import (
	"sync"

	"github.com/kahawa/coffee-balancing/entity"
)

// Log is a bounded, most-recent-first error log shared across report
// runs. Appends past the cap evict the oldest entry.
type Log struct {
	mu      sync.Mutex
	cap     int
	entries []entity.ReportError
}

func New(cap int) *Log {
	if cap <= 0 {
		cap = 1
	}
	return &Log{cap: cap}
}

func (l *Log) Append(e entity.ReportError) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]entity.ReportError{e}, l.entries...)
	if len(l.entries) > l.cap {
		l.entries = l.entries[:l.cap]
	}
}

// Recent returns a copy of the log, newest first.
func (l *Log) Recent() []entity.ReportError {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entity.ReportError, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
