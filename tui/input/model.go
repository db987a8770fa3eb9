package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sonicboom719/comment-umpire/app"
	"github.com/sonicboom719/comment-umpire/domain"
	"github.com/sonicboom719/comment-umpire/infra/history"
	"github.com/sonicboom719/comment-umpire/session"
	"github.com/sonicboom719/comment-umpire/tui/common"
)

// --- Messages ---

// DoneMsg is sent when a video and its first comment page are loaded and
// the app should switch to the comment browser.
type DoneMsg struct{}

type videoExtractedMsg struct {
	Gen  uint64
	URL  string
	Info domain.VideoInfo
	Err  error
}

type firstPageMsg struct {
	Gen   uint64
	Page  domain.CommentPage
	Total int
	Err   error
}

type historyLoadedMsg struct {
	Entries []history.Entry
}

// --- Model ---

// Model holds the state for the URL submission view.
type Model struct {
	video    app.VideoService
	comments app.CommentService
	sess     *session.Session
	history  *history.Store

	maxResults int
	input      textinput.Model
	entries    []history.Entry
	cursor     int // -1 while typing, otherwise index into entries
	loading    bool
	err        error
	keys       common.KeyMap
	spinner    spinner.Model
	width      int
	height     int
}

// New creates the URL input view with injected dependencies.
func New(video app.VideoService, comments app.CommentService, sess *session.Session, hist *history.Store, maxResults int) Model {
	ti := textinput.New()
	ti.Placeholder = "https://www.youtube.com/watch?v=..."
	ti.CharLimit = 300
	ti.Width = 68
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))

	return Model{
		video:      video,
		comments:   comments,
		sess:       sess,
		history:    hist,
		maxResults: maxResults,
		input:      ti,
		cursor:     -1,
		keys:       common.DefaultKeyMap(),
		spinner:    s,
	}
}

// Init loads the URL history and starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadHistory(), textinput.Blink, m.spinner.Tick)
}

// Update handles messages for the URL input view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case historyLoadedMsg:
		m.entries = msg.Entries
		if m.cursor >= len(m.entries) {
			m.cursor = -1
		}
		return m, nil

	case videoExtractedMsg:
		if m.sess.Stale(msg.Gen) {
			return m, nil
		}
		if msg.Err != nil {
			m.loading = false
			m.err = msg.Err
			return m, nil
		}
		m.sess.SetVideo(msg.Info)
		return m, tea.Batch(
			m.rememberURL(msg.URL, msg.Info.Title),
			m.fetchFirstPage(msg.Gen, msg.Info.VideoID),
		)

	case firstPageMsg:
		if m.sess.Stale(msg.Gen) {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.sess.Tree().Load(msg.Page)
		m.sess.SeedBundledReplies(msg.Page)
		m.sess.SetTotalComments(msg.Total)
		return m, func() tea.Msg { return DoneMsg{} }

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			if len(m.entries) > 0 && m.cursor > -1 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if len(m.entries) > 0 && m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.cursor = -1
			m.err = nil
			return m, nil

		case key.Matches(msg, m.keys.Remove):
			if m.cursor >= 0 && m.cursor < len(m.entries) {
				url := m.entries[m.cursor].URL
				m.cursor = -1
				return m, m.forgetURL(url)
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if len(m.entries) > 0 {
				m.cursor = -1
				return m, m.clearHistory()
			}
			return m, nil

		case msg.Type == tea.KeyEnter:
			return m.submit()
		}

		if m.cursor == -1 {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	url := m.input.Value()
	if m.cursor >= 0 && m.cursor < len(m.entries) {
		url = m.entries[m.cursor].URL
	}
	url = trimmed(url)
	if url == "" {
		return m, nil
	}

	m.loading = true
	m.err = nil
	m.cursor = -1
	m.input.SetValue(url)

	// Clear all per-video state before anything starts loading.
	m.sess.Reset()
	return m, m.extract(m.sess.Generation(), url)
}

// Loading reports whether a submission is in progress.
func (m Model) Loading() bool {
	return m.loading
}

// Typing reports whether key presses currently feed the text field, which
// means the root must not treat letters as shortcuts.
func (m Model) Typing() bool {
	return !m.loading
}
