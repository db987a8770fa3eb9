package input

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func (m Model) extract(gen uint64, url string) tea.Cmd {
	video := m.video
	return func() tea.Msg {
		info, err := video.Extract(context.Background(), url)
		return videoExtractedMsg{Gen: gen, URL: url, Info: info, Err: err}
	}
}

func (m Model) fetchFirstPage(gen uint64, videoID string) tea.Cmd {
	comments := m.comments
	maxResults := m.maxResults
	return func() tea.Msg {
		page, total, err := comments.ListComments(context.Background(), videoID, "", maxResults)
		return firstPageMsg{Gen: gen, Page: page, Total: total, Err: err}
	}
}

func (m Model) loadHistory() tea.Cmd {
	hist := m.history
	return func() tea.Msg {
		entries, err := hist.Load()
		if err != nil {
			return historyLoadedMsg{}
		}
		return historyLoadedMsg{Entries: entries}
	}
}

func (m Model) rememberURL(url, title string) tea.Cmd {
	hist := m.history
	return func() tea.Msg {
		_ = hist.Add(url, title)
		entries, _ := hist.Load()
		return historyLoadedMsg{Entries: entries}
	}
}

func (m Model) forgetURL(url string) tea.Cmd {
	hist := m.history
	return func() tea.Msg {
		_ = hist.Remove(url)
		entries, _ := hist.Load()
		return historyLoadedMsg{Entries: entries}
	}
}

func (m Model) clearHistory() tea.Cmd {
	hist := m.history
	return func() tea.Msg {
		_ = hist.Clear()
		return historyLoadedMsg{}
	}
}
