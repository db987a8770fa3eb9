package comments

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sonicboom719/comment-umpire/app"
	"github.com/sonicboom719/comment-umpire/session"
	"github.com/sonicboom719/comment-umpire/tui/common"
)

// Model holds the state for the comment browser view. All comment, reply
// and verdict data lives in the session; the model only keeps cursor and
// transient loading state.
type Model struct {
	sess       *session.Session
	comments   app.CommentService
	maxResults int

	cursor         int
	startIndex     int
	loadingMore    bool
	loadingReplies map[string]bool
	err            error
	status         string
	reqSeq         int

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a comment browser over the given session.
func New(sess *session.Session, comments app.CommentService, maxResults int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))

	return Model{
		sess:           sess,
		comments:       comments,
		maxResults:     maxResults,
		loadingReplies: make(map[string]bool),
		keys:           common.DefaultKeyMap(),
		spinner:        s,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the comment browser.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case repliesLoadedMsg:
		if m.sess.Stale(msg.Gen) {
			return m, nil
		}
		delete(m.loadingReplies, msg.ParentID)
		if msg.Err != nil {
			// The entry stays unseeded; collapsing and expanding retries.
			m.status = "Failed to load replies. Expand again to retry."
		}
		return m, nil

	case pageLoadedMsg:
		if m.sess.Stale(msg.Gen) || msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loadingMore = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.sess.Tree().Append(msg.Page)
		m.sess.SeedBundledReplies(msg.Page)
		m.sess.SetTotalComments(msg.Total)
		return m, nil

	case judgmentMsg:
		if m.sess.Stale(msg.Gen) {
			return m, nil
		}
		if msg.Err != nil {
			m.status = "The umpire could not reach a verdict. Try again."
		} else {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m.toggleReplies()

	case key.Matches(msg, m.keys.Judge):
		return m.judgeSelected()

	case key.Matches(msg, m.keys.Protest):
		snap := m.sess.Analysis().Snapshot()
		if snap.Result == nil {
			return m, nil
		}
		text, ok := m.findCommentText(snap.SelectedID)
		if !ok {
			return m, nil
		}
		result := *snap.Result
		return m, func() tea.Msg {
			return OpenProtestMsg{CommentText: text, Result: result}
		}

	case key.Matches(msg, m.keys.LoadMore):
		return m.loadMore()

	case key.Matches(msg, m.keys.NewVideo):
		return m, func() tea.Msg { return NewVideoMsg{} }
	}

	return m, nil
}

func (m Model) toggleReplies() (Model, tea.Cmd) {
	r, ok := m.currentRow()
	if !ok || r.isReply {
		return m, nil
	}
	if r.comment.ReplyCount == 0 {
		if bundled, seeded := m.sess.Replies().Loaded(r.comment.ID); !seeded || len(bundled) == 0 {
			return m, nil
		}
	}

	replies := m.sess.Replies()
	expanded := replies.ToggleExpanded(r.comment.ID)
	if !expanded {
		m.ensureCursorVisible()
		return m, nil
	}
	if _, loaded := replies.Loaded(r.comment.ID); loaded || m.loadingReplies[r.comment.ID] {
		return m, nil
	}
	m.loadingReplies[r.comment.ID] = true
	return m, m.fetchReplies(m.sess.Generation(), r.comment.ID)
}

func (m Model) judgeSelected() (Model, tea.Cmd) {
	r, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	if m.sess.Analysis().Analyzing() {
		m.status = "A judgment is already in flight."
		return m, nil
	}
	m.status = ""
	return m, m.startJudgment(m.sess.Generation(), r)
}

func (m Model) loadMore() (Model, tea.Cmd) {
	video, ok := m.sess.Video()
	if !ok || m.loadingMore {
		return m, nil
	}
	token, more := m.sess.Tree().Cursor()
	if !more {
		return m, nil
	}
	m.loadingMore = true
	m.reqSeq++
	return m, m.fetchPage(m.sess.Generation(), m.reqSeq, video.VideoID, token)
}

func (m *Model) ensureCursorVisible() {
	total := len(m.rows())
	if total == 0 {
		m.cursor = 0
		m.startIndex = 0
		return
	}
	if m.cursor >= total {
		m.cursor = total - 1
	}
	slots := max(m.listSlots(), 1)
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
	}
	if m.cursor >= m.startIndex+slots {
		m.startIndex = m.cursor - slots + 1
	}
	if m.startIndex < 0 {
		m.startIndex = 0
	}
}

// listSlots is how many comment rows fit above the verdict pane and status
// bar. Each rendered row takes four lines.
func (m Model) listSlots() int {
	reserved := 6
	if m.sess.Analysis().Snapshot().Result != nil {
		reserved += verdictPaneLines
	}
	h := max(m.height-reserved, 8)
	return max(h/4, 2)
}
