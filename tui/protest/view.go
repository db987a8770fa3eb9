package protest

import (
	"strings"

	"github.com/sonicboom719/comment-umpire/domain"
	"github.com/sonicboom719/comment-umpire/tui/common"
)

// View renders the dialog: the conversation so far, the input box and a
// status line.
func (m Model) View() string {
	width := max(min(m.width-8, 74), 34)
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("Protest the call") + "\n\n")

	messages := m.proto.Messages()
	if len(messages) == 0 {
		b.WriteString(common.TimestampStyle.Render("The umpire is listening. Why was this call wrong?") + "\n")
	}
	for _, msg := range messages {
		bubble := common.UmpireBubbleStyle
		prefix := "⚾ "
		if msg.Role == domain.RoleUser {
			bubble = common.UserBubbleStyle
			prefix = "you "
		}
		b.WriteString(prefix + bubble.Render(common.ClampLines(msg.Content, width-8, 4)) + "\n")
	}
	b.WriteString("\n" + m.input.View() + "\n")

	switch {
	case m.proto.Sending():
		b.WriteString(m.spinner.View() + common.TimestampStyle.Render(" The umpire is reviewing the play..."))
	case m.isError:
		b.WriteString(common.ErrorStyle.Render(m.status))
	case m.status != "":
		b.WriteString(common.SuccessStyle.Render(m.status))
	default:
		b.WriteString(common.StatusBarStyle.Render("enter send • esc close"))
	}

	return common.DialogStyle.Width(width).Render(b.String())
}
