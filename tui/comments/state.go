package comments

import (
	"github.com/sonicboom719/comment-umpire/domain"
)

// --- Messages ---

// NewVideoMsg asks the root to return to the URL prompt.
type NewVideoMsg struct{}

// OpenProtestMsg asks the root to open a protest dialog for the current
// verdict.
type OpenProtestMsg struct {
	CommentText string
	Result      domain.AnalysisResult
}

// repliesLoadedMsg is sent when a parent's reply fetch settles.
type repliesLoadedMsg struct {
	Gen      uint64
	ParentID string
	Err      error
}

// pageLoadedMsg is sent when a further comment page fetch settles.
type pageLoadedMsg struct {
	Gen    uint64
	ReqSeq int
	Page   domain.CommentPage
	Total  int
	Err    error
}

// judgmentMsg is sent when a judgment settles, success or not.
type judgmentMsg struct {
	Gen       uint64
	CommentID string
	Err       error
}

// --- Row building ---

// row is one selectable line of the browser: a root comment or a visible
// reply, carrying the thread context a judgment of it would need.
type row struct {
	comment   domain.Comment
	isReply   bool
	parent    *domain.Comment  // Set for replies
	preceding []domain.Comment // Replies before this one under the same parent
}

// rows flattens the tree into the currently visible sequence: every root in
// order, each followed by its cached replies while expanded.
func (m Model) rows() []row {
	var out []row
	replies := m.sess.Replies()
	for root := range m.sess.Tree().Roots() {
		out = append(out, row{comment: root})
		if !replies.Expanded(root.ID) {
			continue
		}
		list, ok := replies.Loaded(root.ID)
		if !ok {
			continue
		}
		parent := root
		for i, reply := range list {
			out = append(out, row{
				comment:   reply,
				isReply:   true,
				parent:    &parent,
				preceding: list[:i],
			})
		}
	}
	return out
}

// currentRow returns the row under the cursor.
func (m Model) currentRow() (row, bool) {
	rs := m.rows()
	if len(rs) == 0 || m.cursor < 0 || m.cursor >= len(rs) {
		return row{}, false
	}
	return rs[m.cursor], true
}

// findCommentText resolves a comment id to its text, searching the visible
// rows first and the tree store second.
func (m Model) findCommentText(id string) (string, bool) {
	for _, r := range m.rows() {
		if r.comment.ID == id {
			return r.comment.Text, true
		}
	}
	if c, ok := m.sess.Tree().Find(id); ok {
		return c.Text, true
	}
	return "", false
}
