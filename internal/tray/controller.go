// Package tray implements the system tray icon and menu for background mode.
package tray

import "github.com/antoniofonseca/keepactive-msteams/internal/session"

// Controller gives the tray access to the activity loop. All methods are
// safe for use from the tray's click goroutine.
type Controller interface {
	Snapshot() session.Snapshot
	Start() error
	Pause() error
	Resume() error
	Stop() error
	RequestShutdown()
}
