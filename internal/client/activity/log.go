// Package activity keeps the console's append-only event feed: one
// human-readable line per user-visible event, newest first, with an optional
// structured payload. The feed is what the `log` command prints; every entry
// is also mirrored to the structured logger for offline diagnostics.
package activity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chandra/dmacli/internal/logging"
	"github.com/google/uuid"
)

// Entry is a single feed event.
type Entry struct {
	ID      uuid.UUID
	Time    time.Time
	Message string
	// Payload holds an indented JSON rendering of the event's data,
	// or "" when the event carries none.
	Payload string
}

// Log is the append-only, newest-first feed. It is unbounded until the user
// clears it. All access happens on the REPL goroutine, so no locking.
type Log struct {
	entries []Entry
	logger  logging.Logger
}

// nowFn is a test seam for entry timestamps.
var nowFn = time.Now

// New returns an empty feed that mirrors entries to logger.
func New(logger logging.Logger) *Log {
	return &Log{logger: logger}
}

// Add prepends an entry. payload may be nil; any other value is rendered as
// indented JSON (values that fail to marshal are silently dropped, the
// message still lands).
func (l *Log) Add(message string, payload any) {
	e := Entry{ID: uuid.New(), Time: nowFn(), Message: message}
	if payload != nil {
		if data, err := json.MarshalIndent(payload, "", "  "); err == nil {
			e.Payload = string(data)
		}
	}
	l.entries = append([]Entry{e}, l.entries...)

	if l.logger != nil {
		l.logger.Info(context.Background(), message, "entry_id", e.ID.String())
	}
}

// Entries returns a snapshot of the feed, newest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of entries currently held.
func (l *Log) Len() int { return len(l.entries) }

// Clear empties the feed.
func (l *Log) Clear() {
	l.entries = nil
}
