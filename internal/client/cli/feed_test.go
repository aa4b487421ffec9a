package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedTextNewestFirst(t *testing.T) {
	a := newTestApp(newFakeBackend(), &fakeSession{})
	a.feed.Add("first", nil)
	a.feed.Add("second", map[string]string{"loanId": "L1"})

	text := a.feedText()
	require.Less(t, strings.Index(text, "second"), strings.Index(text, "first"))
	assert.Contains(t, text, `"loanId": "L1"`)
}

func TestClearLog(t *testing.T) {
	silence(t)

	a := newTestApp(newFakeBackend(), &fakeSession{})
	a.feed.Add("something", nil)
	require.Equal(t, 1, a.feed.Len())

	require.NoError(t, a.ClearLog(context.Background()))
	assert.Zero(t, a.feed.Len())
	assert.Contains(t, a.feedText(), "No activity yet.")
}
