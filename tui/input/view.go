package input

import (
	"fmt"
	"strings"
	"time"

	"github.com/sonicboom719/comment-umpire/tui/common"
)

// View renders the URL prompt and the submission history.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Render("⚾ Comment Umpire")
	tagline := common.TaglineStyle.Render("<AI calls balls and strikes on YouTube comments>")
	b.WriteString(title + tagline + "\n\n")

	b.WriteString("  Paste a YouTube video URL:\n\n")
	b.WriteString("  " + m.input.View() + "\n\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("  %s Fetching video and comments...\n", m.spinner.View()))
	} else if m.err != nil {
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n")
	}

	if len(m.entries) > 0 && !m.loading {
		b.WriteString("\n  Recent videos:\n")
		now := time.Now()
		for i, e := range m.entries {
			label := e.Title
			if label == "" {
				label = e.URL
			}
			label = common.TruncateLine(label, max(m.width-16, 24))
			when := common.RelativeTime(time.UnixMilli(e.Timestamp), now)
			line := fmt.Sprintf("%s %s", label, common.TimestampStyle.Render(when))
			if i == m.cursor {
				b.WriteString("  > " + common.SuccessStyle.Render(line) + "\n")
			} else {
				b.WriteString("    " + line + "\n")
			}
		}
	}

	hints := "enter submit • ↑/↓ history • ctrl+d remove • ctrl+l clear • ctrl+c quit"
	b.WriteString(common.StatusBarStyle.Render("  " + hints))
	return b.String()
}
