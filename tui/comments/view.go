package comments

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sonicboom719/comment-umpire/domain"
	"github.com/sonicboom719/comment-umpire/session"
	"github.com/sonicboom719/comment-umpire/tui/common"
)

func colored(c lipgloss.Color, s string) string {
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// verdictPaneLines is the height the verdict panel takes when visible,
// border included.
const verdictPaneLines = 10

// View renders the video header, the visible slice of the comment tree and,
// when a verdict exists, the verdict panel.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())

	rs := m.rows()
	if len(rs) == 0 {
		b.WriteString("\n  No comments on this video.\n")
	} else {
		snap := m.sess.Analysis().Snapshot()
		slots := m.listSlots()
		end := min(m.startIndex+slots, len(rs))
		for i := m.startIndex; i < end; i++ {
			b.WriteString(m.rowView(rs[i], i == m.cursor, snap))
		}
	}

	if snap := m.sess.Analysis().Snapshot(); snap.Result != nil {
		b.WriteString(m.verdictView(*snap.Result))
	}

	b.WriteString(m.statusView())
	return b.String()
}

func (m Model) headerView() string {
	video, ok := m.sess.Video()
	if !ok {
		return ""
	}
	title := common.VideoTitleStyle.Render(common.TruncateLine(video.Title, max(m.width-4, 24)))
	channel := common.ChannelStyle.Render(video.ChannelName)
	line := fmt.Sprintf(" %s  %s", title, channel)
	if total := m.sess.TotalComments(); total > 0 {
		line += common.StatsStyle.Render(fmt.Sprintf("  %d comments", total))
	}
	return line + "\n"
}

func (m Model) rowView(r row, selected bool, snap session.AnalysisState) string {
	width := max(m.width-6, 40)
	indent := ""
	if r.isReply {
		indent = common.ReplyMarkerStyle.Render(" └ ")
		width -= 3
	}

	author := common.AuthorStyle.Render(r.comment.Author)
	when := common.TimestampStyle.Render(common.RelativeTime(r.comment.PublishedAt, time.Now()))
	stats := common.StatsStyle.Render(fmt.Sprintf("👍 %d", r.comment.LikeCount))
	head := fmt.Sprintf("%s %s  %s", author, when, stats)

	if !r.isReply && r.comment.ReplyCount > 0 {
		marker := "▸"
		if m.sess.Replies().Expanded(r.comment.ID) {
			marker = "▾"
		}
		head += common.StatsStyle.Render(fmt.Sprintf("  %s %d replies", marker, r.comment.ReplyCount))
	}
	if m.loadingReplies[r.comment.ID] {
		head += " " + m.spinner.View()
	}
	switch {
	case snap.AnalyzingID == r.comment.ID:
		head += " " + m.spinner.View() + common.TimestampStyle.Render(" judging...")
	case snap.SelectedID == r.comment.ID && snap.Result != nil:
		if snap.Result.IsOut() {
			head += "  " + common.OutStyle.Render("OUT")
		} else {
			head += "  " + common.SafeStyle.Render("SAFE")
		}
	}

	text := common.ContentStyle.Render(common.TruncateLine(r.comment.Text, width))
	body := head + "\n" + text

	box := common.UnselectedStyle
	if selected {
		box = common.SelectedStyle
	}
	return indent + box.Width(width).Render(body) + "\n"
}

func (m Model) verdictView(res domain.AnalysisResult) string {
	width := max(m.width-6, 40)
	var lines []string

	call := common.SafeStyle.Render("SAFE")
	if res.IsOut() {
		call = common.OutStyle.Render("OUT")
	}
	var badges []string
	for _, c := range res.Category {
		badges = append(badges, common.CategoryStyle(c).Render(c))
	}
	lines = append(lines, call+"  "+strings.Join(badges, " "))

	if res.IsCounter && res.GrahamHierarchy != "" {
		level := res.GrahamHierarchy
		styled := common.TruncateLine(level, width-14)
		if d := common.GrahamDescription(level); d != "" {
			styled += common.TimestampStyle.Render(" (" + d + ")")
		}
		lines = append(lines, "反論レベル: "+colored(common.GrahamColor(level), styled))
	}
	if res.LogicalFallacy != "" && res.LogicalFallacy != "なし" {
		f := res.LogicalFallacy
		if d := common.FallacyDescription(f); d != "" {
			f += common.TimestampStyle.Render(" (" + d + ")")
		}
		lines = append(lines, "論理的誤謬: "+f)
	}
	if res.ValidityAssessment != "" {
		v := colored(common.ValidityColor(res.ValidityAssessment), res.ValidityAssessment)
		lines = append(lines, "妥当性: "+v)
	}
	if res.Explanation != "" {
		lines = append(lines, common.ClampLines(res.Explanation, width-2, 2))
	}
	if res.ValidityReason != "" {
		lines = append(lines, common.TimestampStyle.Render(common.ClampLines(res.ValidityReason, width-2, 1)))
	}

	return common.VerdictPaneStyle.Width(width).Render(strings.Join(lines, "\n")) + "\n"
}

func (m Model) statusView() string {
	if m.err != nil {
		return common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n"
	}
	var b strings.Builder
	if m.status != "" {
		b.WriteString(common.TimestampStyle.Render("  "+m.status) + "\n")
	}
	hints := "↑/↓ move • enter replies • u judge • p protest"
	if _, more := m.sess.Tree().Cursor(); more {
		if m.loadingMore {
			hints += " • " + m.spinner.View() + " loading more"
		} else {
			hints += " • m more comments"
		}
	} else if m.sess.Tree().RootCount() > 0 {
		hints += " • all comments shown"
	}
	hints += " • n new video • q quit"
	b.WriteString(common.StatusBarStyle.Render("  " + hints))
	return b.String()
}
