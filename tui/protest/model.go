// Package protest renders the protest dialog: a short chat with the umpire
// arguing against one verdict. The conversation itself lives in a
// session.Protest created for this dialog and dropped when it closes.
package protest

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sonicboom719/comment-umpire/domain"
	"github.com/sonicboom719/comment-umpire/session"
	"github.com/sonicboom719/comment-umpire/tui/common"
)

// DoneMsg is sent when the dialog should close.
type DoneMsg struct{}

type turnDoneMsg struct {
	ID       string
	Msg      domain.ProtestMessage
	Replaced bool
	Err      error
}

// Model holds the state for one protest dialog.
type Model struct {
	proto *session.Protest

	input   textarea.Model
	status  string
	isError bool
	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New opens a dialog over a freshly created protest session.
func New(proto *session.Protest) Model {
	ta := textarea.New()
	ta.Placeholder = "State your case to the umpire..."
	ta.SetHeight(3)
	ta.SetWidth(60)
	ta.ShowLineNumbers = false
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA726"))

	return Model{
		proto:   proto,
		input:   ta,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the cursor blink and spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Update handles messages for the dialog.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(min(m.width-12, 70), 30))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case turnDoneMsg:
		if msg.ID != m.proto.ID() {
			return m, nil
		}
		if msg.Err != nil {
			m.isError = true
			m.status = "The umpire did not respond. Your protest is still on record, try again."
			return m, nil
		}
		m.isError = false
		if msg.Replaced {
			m.status = "Judgment overturned!"
		} else {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return DoneMsg{} }
		case msg.Type == tea.KeyEnter && !msg.Alt:
			return m.send()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) send() (Model, tea.Cmd) {
	if m.proto.Sending() {
		return m, nil
	}
	text := m.input.Value()
	m.input.Reset()
	m.status = ""
	m.isError = false

	proto := m.proto
	return m, func() tea.Msg {
		reply, err := proto.Send(context.Background(), text)
		if errors.Is(err, domain.ErrEmptyProtest) || errors.Is(err, domain.ErrProtestInFlight) {
			// Nothing was sent; the dialog just stays as it is.
			return nil
		}
		return turnDoneMsg{ID: proto.ID(), Msg: reply, Replaced: proto.Replaced(), Err: err}
	}
}
