package tui

import "github.com/antoniofonseca/keepactive-msteams/internal/keeper"

// LoopEventMsg carries an activity loop event into the update cycle.
type LoopEventMsg struct {
	Event keeper.Event
}

// TickMsg is the periodic tick that refreshes the status block.
type TickMsg struct{}

// LogContentMsg carries the activity log content for the log screen.
type LogContentMsg struct {
	Lines   []string
	Missing bool
}

// ClearFeedbackMsg clears the transient feedback line.
type ClearFeedbackMsg struct{}
