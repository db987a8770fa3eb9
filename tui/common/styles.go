package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4CAF50")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true).
			MarginLeft(1)

	// VideoTitleStyle styles the loaded video's title in the header.
	VideoTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CAD3F5"))

	// ChannelStyle styles the channel name next to the video title.
	ChannelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7DC4E4"))

	// AuthorStyle styles the comment author name.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ContentStyle styles comment text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// StatsStyle styles like and reply counters.
	StatsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// SelectedStyle highlights the currently selected comment.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4CAF50")).
			Padding(0, 1)

	// UnselectedStyle gives unselected comments a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// ReplyMarkerStyle styles the indent marker in front of replies.
	ReplyMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#555555"))

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// SafeStyle styles a "safe" call.
	SafeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4CAF50")).
			Padding(0, 1)

	// OutStyle styles an "out" call.
	OutStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#F44336")).
			Padding(0, 1)

	// VerdictPaneStyle frames the verdict panel.
	VerdictPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#FFA726")).
				Padding(0, 1)

	// DialogStyle frames the protest dialog.
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFA726")).
			Padding(1, 2)

	// UserBubbleStyle styles the user's protest messages.
	UserBubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#3B82F6")).
			Padding(0, 1)

	// UmpireBubbleStyle styles the umpire's protest messages.
	UmpireBubbleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#333333")).
				Background(lipgloss.Color("#E0E0E0")).
				Padding(0, 1)
)
