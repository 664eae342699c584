package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives the poll loop.
type tickMsg time.Time

// bookmarksChangedMsg reports that the bookmark file changed on disk.
type bookmarksChangedMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// watchCmd blocks on the bookmark watcher and re-arms itself through
// Update after every signal.
func (m *Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return bookmarksChangedMsg{}
	}
}
