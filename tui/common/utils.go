package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RelativeTime renders how long ago a comment was published.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "1 day ago"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}

// TruncateLine cuts a single line to the given display width, appending an
// ellipsis when anything was removed.
func TruncateLine(s string, width int) string {
	if width < 4 {
		width = 4
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width-1, "…")
}

// ClampLines wraps text to the given width and keeps at most maxLines lines.
func ClampLines(text string, width, maxLines int) string {
	if width < 12 {
		width = 12
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= maxLines {
		return wrapped
	}
	return strings.Join(lines[:maxLines], "\n") + "…"
}
