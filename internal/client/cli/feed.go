package cli

import (
	"context"
	"strings"
	"time"
)

// feedText formats the activity feed newest first: a timestamped line per
// entry, followed by the indented payload when one was captured.
func (a *App) feedText() string {
	entries := a.feed.Entries()
	if len(entries) == 0 {
		return dimStyle.Render("No activity yet.")
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(dimStyle.Render(e.Time.Format(time.RFC3339)))
		b.WriteString(" ")
		b.WriteString(e.Message)
		if e.Payload != "" {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render(e.Payload))
		}
	}
	return b.String()
}

// ShowLog prints the activity feed.
func (a *App) ShowLog(ctx context.Context) error {
	printlnFn(a.feedText())
	return nil
}

// ClearLog empties the activity feed.
func (a *App) ClearLog(ctx context.Context) error {
	a.feed.Clear()
	printlnFn("Activity feed cleared.")
	return nil
}
