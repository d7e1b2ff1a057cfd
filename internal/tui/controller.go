package tui

import (
	"github.com/antoniofonseca/keepactive-msteams/internal/keeper"
	"github.com/antoniofonseca/keepactive-msteams/internal/session"
)

// Controller gives the TUI access to the activity loop. Start/Stop/Pause/
// Resume return the session errors the menu turns into feedback lines.
type Controller interface {
	Snapshot() session.Snapshot
	Start() error
	Stop() error
	Pause() error
	Resume() error
	SetInterval(seconds int) error
	LogPath() string
	WindowTitle() string

	// Subscribe registers the loop event callback. Events arrive on the
	// loop goroutine; the TUI forwards them through its program reference.
	Subscribe(func(keeper.Event))
}
