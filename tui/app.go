package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sonicboom719/comment-umpire/app"
	"github.com/sonicboom719/comment-umpire/infra/history"
	"github.com/sonicboom719/comment-umpire/session"
	"github.com/sonicboom719/comment-umpire/tui/comments"
	"github.com/sonicboom719/comment-umpire/tui/common"
	"github.com/sonicboom719/comment-umpire/tui/input"
	"github.com/sonicboom719/comment-umpire/tui/protest"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Video      app.VideoService
	Comments   app.CommentService
	Session    *session.Session
	History    *history.Store
	MaxResults int
}

type activeView int

const (
	inputView activeView = iota
	commentsView
)

// App is the root Bubble Tea model. It routes between the URL prompt and the
// comment browser, with the protest dialog as an overlay on the browser.
type App struct {
	deps     Deps
	active   activeView
	input    input.Model
	comments comments.Model
	protest  protest.Model
	dialog   bool
	keys     common.KeyMap
	width    int
	height   int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: inputView,
		input:  input.New(deps.Video, deps.Comments, deps.Session, deps.History, deps.MaxResults),
		keys:   common.DefaultKeyMap(),
	}
}

// Init delegates to the URL prompt.
func (a App) Init() tea.Cmd {
	return a.input.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The URL prompt owns the keyboard while typing; everywhere else
		// quit works globally. The protest dialog closes itself on esc.
		if key.Matches(msg, a.keys.Quit) {
			if a.active == inputView && a.input.Typing() && msg.String() == "q" {
				break
			}
			if a.dialog && msg.String() == "q" {
				break
			}
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		// Remember the size so views created later start with it.
		a.width = msg.Width
		a.height = msg.Height
		switch {
		case a.dialog:
			a.protest, _ = a.protest.Update(msg)
		case a.active == inputView:
			a.input, _ = a.input.Update(msg)
		default:
			a.comments, _ = a.comments.Update(msg)
		}
		return a, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		switch {
		case a.dialog:
			a.protest, cmd = a.protest.Update(msg)
		case a.active == inputView:
			a.input, cmd = a.input.Update(msg)
		default:
			a.comments, cmd = a.comments.Update(msg)
		}
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case input.DoneMsg:
		a.active = commentsView
		a.comments = comments.New(a.deps.Session, a.deps.Comments, a.deps.MaxResults)
		a.comments, _ = a.comments.Update(a.sizeMsg())
		return a, a.comments.Init()

	case comments.NewVideoMsg:
		a.active = inputView
		a.input = input.New(a.deps.Video, a.deps.Comments, a.deps.Session, a.deps.History, a.deps.MaxResults)
		a.input, _ = a.input.Update(a.sizeMsg())
		return a, a.input.Init()

	case comments.OpenProtestMsg:
		a.dialog = true
		a.protest = protest.New(a.deps.Session.NewProtest(msg.CommentText, msg.Result))
		a.protest, _ = a.protest.Update(a.sizeMsg())
		return a, a.protest.Init()

	case protest.DoneMsg:
		// The protest session dies with its dialog. Restart the browser's
		// spinner; its tick chain stopped while the dialog held the ticks.
		a.dialog = false
		return a, a.comments.Init()
	}

	if a.dialog {
		updated, cmd := a.protest.Update(msg)
		a.protest = updated
		return a, cmd
	}

	switch a.active {
	case inputView:
		updated, cmd := a.input.Update(msg)
		a.input = updated
		return a, cmd
	case commentsView:
		updated, cmd := a.comments.Update(msg)
		a.comments = updated
		return a, cmd
	}

	return a, nil
}

func (a App) sizeMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: a.width, Height: a.height}
}

// View renders the active sub-model, with the protest dialog on top of the
// browser when open.
func (a App) View() string {
	if a.dialog {
		return a.protest.View()
	}
	switch a.active {
	case inputView:
		return a.input.View()
	case commentsView:
		return a.comments.View()
	}
	return ""
}
