package render

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// LogEntry is a single formatted log record.
type LogEntry struct {
	Time    time.Time
	Level   slog.Level
	Message string
}

// LogBuffer is a thread-safe ring of recent log entries.
type LogBuffer struct {
	mu      sync.RWMutex
	entries []LogEntry
	next    int
	count   int
}

// NewLogBuffer creates a buffer holding up to size entries.
func NewLogBuffer(size int) *LogBuffer {
	return &LogBuffer{entries: make([]LogEntry, max(size, 1))}
}

// Add stores an entry, evicting the oldest one when full.
func (lb *LogBuffer) Add(entry LogEntry) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	lb.entries[lb.next] = entry
	lb.next = (lb.next + 1) % len(lb.entries)
	lb.count = min(lb.count+1, len(lb.entries))
}

// Recent returns up to n entries at or above level, newest first. A
// non-positive n returns every matching entry.
func (lb *LogBuffer) Recent(n int, level slog.Level) []LogEntry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	var out []LogEntry
	for i := 0; i < lb.count; i++ {
		e := lb.entries[(lb.next-1-i+len(lb.entries))%len(lb.entries)]
		if e.Level < level {
			continue
		}
		out = append(out, e)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}

// Len returns the number of stored entries.
func (lb *LogBuffer) Len() int {
	lb.mu.RLock()
	defer lb.mu.RUnlock()
	return lb.count
}

// LogBufferHandler is a slog.Handler that captures records into a LogBuffer
type LogBufferHandler struct {
	buffer *LogBuffer
	level  slog.Leveler
	prefix string // preformatted attrs from WithAttrs
	group  string
}

// NewLogBufferHandler creates a handler writing to buffer.
func NewLogBufferHandler(buffer *LogBuffer, level slog.Leveler) *LogBufferHandler {
	return &LogBufferHandler{buffer: buffer, level: level}
}

func (h *LogBufferHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *LogBufferHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(h.prefix)
	record.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&sb, a)
		return true
	})

	h.buffer.Add(LogEntry{
		Time:    record.Time,
		Level:   record.Level,
		Message: sb.String(),
	})
	return nil
}

func (h *LogBufferHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(h.prefix)
	for _, a := range attrs {
		h.writeAttr(&sb, a)
	}
	clone := *h
	clone.prefix = sb.String()
	return &clone
}

func (h *LogBufferHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.group + name + "."
	return &clone
}

func (h *LogBufferHandler) writeAttr(sb *strings.Builder, a slog.Attr) {
	fmt.Fprintf(sb, " %s%s=%v", h.group, a.Key, a.Value)
}

// FormatLogEntry formats an entry for a single display line.
func FormatLogEntry(entry LogEntry) string {
	return fmt.Sprintf("%s [%s] %s", entry.Time.Format("15:04:05"), LevelTag(entry.Level), entry.Message)
}

// LevelTag returns a three letter tag for a level.
func LevelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERR"
	case level >= slog.LevelWarn:
		return "WRN"
	case level >= slog.LevelInfo:
		return "INF"
	default:
		return "DBG"
	}
}
