package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/antoniofonseca/keepactive-msteams/internal/activitylog"
)

// statusTick drives the one-second status refresh while the TUI is open.
func statusTick() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

func clearFeedbackAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearFeedbackMsg{}
	})
}

// loadLogCmd reads the activity log for the log screen. A missing file is
// not an error; the screen shows a fixed notice instead.
func loadLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := activitylog.Lines(path)
		if err != nil {
			if os.IsNotExist(err) {
				return LogContentMsg{Missing: true}
			}
			return LogContentMsg{Lines: []string{err.Error()}}
		}
		return LogContentMsg{Lines: lines}
	}
}
