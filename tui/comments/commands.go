package comments

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchReplies materializes one parent's reply list through the cache. The
// cache instance is captured at issue time, so a completion that lands after
// a session reset writes into an orphaned cache and is then discarded by the
// generation check in Update.
func (m Model) fetchReplies(gen uint64, parentID string) tea.Cmd {
	replies := m.sess.Replies()
	return func() tea.Msg {
		_, err := replies.EnsureLoaded(context.Background(), parentID)
		return repliesLoadedMsg{Gen: gen, ParentID: parentID, Err: err}
	}
}

// fetchPage loads the next comment page for the current video.
func (m Model) fetchPage(gen uint64, seq int, videoID, pageToken string) tea.Cmd {
	svc := m.comments
	maxResults := m.maxResults
	return func() tea.Msg {
		page, total, err := svc.ListComments(context.Background(), videoID, pageToken, maxResults)
		return pageLoadedMsg{Gen: gen, ReqSeq: seq, Page: page, Total: total, Err: err}
	}
}

// startJudgment asks the umpire to judge the row's comment with its thread
// context. ErrJudgmentInFlight never reaches here; the key handler refuses
// while a judgment is pending.
func (m Model) startJudgment(gen uint64, r row) tea.Cmd {
	analysis := m.sess.Analysis()
	return func() tea.Msg {
		_, err := analysis.StartAnalysis(context.Background(), r.comment, r.parent, r.preceding)
		return judgmentMsg{Gen: gen, CommentID: r.comment.ID, Err: err}
	}
}
