// Package logbuf implements the bounded, most-recent-first log panel.
package logbuf

import (
	"sync"
	"time"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// DefaultCapacity is the number of entries the log panel keeps
const DefaultCapacity = 50

// TimeLayout formats entry timestamps as HH:MM
const TimeLayout = "15:04"

// Buffer keeps the newest entries first. When full, appending evicts the
// oldest entry regardless of how often it was read.
type Buffer struct {
	mu       sync.RWMutex
	entries  []types.LogEntry
	capacity int
}

// New creates a buffer; a non-positive capacity falls back to DefaultCapacity
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		entries:  make([]types.LogEntry, 0, capacity+1),
		capacity: capacity,
	}
}

// Append prepends an entry stamped with now and returns it
func (b *Buffer) Append(now time.Time, message string, severity types.Severity) types.LogEntry {
	if severity == "" {
		severity = types.SeverityInfo
	}
	entry := types.LogEntry{
		Time:     now.Format(TimeLayout),
		Message:  message,
		Severity: severity,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, types.LogEntry{})
	copy(b.entries[1:], b.entries)
	b.entries[0] = entry
	if len(b.entries) > b.capacity {
		b.entries = b.entries[:b.capacity]
	}
	return entry
}

// Entries returns a copy, newest first
func (b *Buffer) Entries() []types.LogEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]types.LogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

