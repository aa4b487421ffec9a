package activity

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/chandra/dmacli/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_NewestFirst(t *testing.T) {
	l := New(nil)

	l.Add("first", nil)
	l.Add("second", nil)
	l.Add("third", nil)

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "first", entries[2].Message)
}

func TestAdd_PayloadRenderedAsJSON(t *testing.T) {
	l := New(nil)

	l.Add("created", map[string]any{"loanId": 7})

	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Payload, `"loanId": 7`)
	assert.NotEqual(t, uuid0, entries[0].ID.String())
	assert.False(t, entries[0].Time.IsZero())
}

const uuid0 = "00000000-0000-0000-0000-000000000000"

func TestAdd_NilPayloadLeavesPayloadEmpty(t *testing.T) {
	l := New(nil)
	l.Add("plain", nil)
	assert.Empty(t, l.Entries()[0].Payload)
}

func TestAdd_TimestampsUseSeam(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orig := nowFn
	nowFn = func() time.Time { return fixed }
	t.Cleanup(func() { nowFn = orig })

	l := New(nil)
	l.Add("x", nil)
	assert.Equal(t, fixed, l.Entries()[0].Time)
}

func TestClear_EmptiesFeed(t *testing.T) {
	l := New(nil)
	l.Add("a", nil)
	l.Add("b", nil)
	require.Equal(t, 2, l.Len())

	l.Clear()
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Entries())
}

func TestAdd_MirrorsToLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	l := New(logger)
	l.Add("logged in", nil)

	assert.Contains(t, buf.String(), "logged in")
	assert.Contains(t, buf.String(), "entry_id=")
}

func TestEntries_ReturnsCopy(t *testing.T) {
	l := New(nil)
	l.Add("a", nil)

	snap := l.Entries()
	snap[0].Message = "mutated"
	assert.Equal(t, "a", l.Entries()[0].Message)
}
