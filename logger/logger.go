// Package logger provides a small ring-buffered log used by the sh4 core to
// record register-bank flips and FPSCR rounding-mode changes, which are
// useful for post-mortem inspection but too frequent to be plain errors.
//
// Entries are gated by a caller-supplied permission so that hot paths (the
// fetch/decode/execute loop) can unconditionally call Log/Logf without
// paying for formatting when logging is disabled.
package logger

import (
	"fmt"
	"io"
	"strings"
)

// Permission is implemented by callers that want to gate whether a log entry
// is recorded.
type Permission interface {
	AllowLogging() bool
}

// alwaysAllow is the zero-configuration Permission. Use Allow when there is
// no reason to gate the entry.
type alwaysAllow struct{}

func (alwaysAllow) AllowLogging() bool { return true }

// Allow is a convenience Permission that always records the entry.
var Allow = alwaysAllow{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.detail)
}

// Log is a ring-buffered, permission-gated log of entries.
type Log struct {
	entries []entry
	cap     int
	next    int
	count   int
}

// NewLogger creates a Log that retains at most capacity entries, discarding
// the oldest entry once full.
func NewLogger(capacity int) *Log {
	return &Log{
		entries: make([]entry, capacity),
		cap:     capacity,
	}
}

// Clear empties the log without changing its capacity.
func (l *Log) Clear() {
	l.next = 0
	l.count = 0
}

func (l *Log) push(tag string, detail string) {
	l.entries[l.next] = entry{tag: tag, detail: detail}
	l.next = (l.next + 1) % l.cap
	if l.count < l.cap {
		l.count++
	}
}

// detailString renders detail the way the central logger expects: errors use
// their Error() string, fmt.Stringer types use String(), and everything else
// falls back to the %v verb.
func detailString(detail interface{}) string {
	switch v := detail.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Log records detail under tag, provided perm allows it.
func (l *Log) Log(perm Permission, tag string, detail interface{}) {
	if !perm.AllowLogging() {
		return
	}
	l.push(tag, detailString(detail))
}

// Logf is Log with printf-style formatting of the detail.
func (l *Log) Logf(perm Permission, tag string, format string, args ...interface{}) {
	if !perm.AllowLogging() {
		return
	}
	l.push(tag, fmt.Sprintf(format, args...))
}

// iterate walks entries oldest-first.
func (l *Log) iterate(fn func(entry)) {
	start := (l.next - l.count + l.cap) % l.cap
	for i := 0; i < l.count; i++ {
		fn(l.entries[(start+i)%l.cap])
	}
}

// Write dumps every retained entry, oldest first, to w.
func (l *Log) Write(w io.Writer) {
	var s strings.Builder
	l.iterate(func(e entry) {
		s.WriteString(e.String())
	})
	io.WriteString(w, s.String())
}

// Tail writes at most n of the most recently recorded entries, oldest first.
func (l *Log) Tail(w io.Writer, n int) {
	if n > l.count {
		n = l.count
	}
	skip := l.count - n
	var s strings.Builder
	i := 0
	l.iterate(func(e entry) {
		if i >= skip {
			s.WriteString(e.String())
		}
		i++
	})
	io.WriteString(w, s.String())
}
