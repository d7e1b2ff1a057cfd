// Package automation locates the target window and moves the pointer inside
// it. Two backends are provided: xdotool (preferred, matches by window title)
// and robotgo (fallback, matches by process name).
package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/antoniofonseca/keepactive-msteams/internal/models"
)

// ErrWindowNotFound indicates the target window is not currently present.
// Callers treat it as recoverable and retry on the next cycle.
var ErrWindowNotFound = errors.New("window not found")

// Window identifies a located window. ID is backend specific and appears in
// activity log lines. X and Y hold the window origin in screen coordinates
// for backends that can only move the pointer absolutely.
type Window struct {
	ID string
	X  int
	Y  int
}

// Driver is a pointer automation backend.
type Driver interface {
	// Name returns the backend name as used in settings.
	Name() string

	// FindWindow locates a window whose title contains the given substring.
	// Returns ErrWindowNotFound when no window matches.
	FindWindow(ctx context.Context, title string) (Window, error)

	// MovePointerWithin moves the pointer to (x, y) relative to the
	// window's origin.
	MovePointerWithin(ctx context.Context, win Window, x, y int) error
}

// Detect returns the driver named in the settings, verifying it is usable.
// With models.DriverAuto, xdotool is preferred and robotgo is the fallback.
// The returned error carries the remediation hint shown at startup.
func Detect(ctx context.Context, driver string) (Driver, error) {
	switch driver {
	case models.DriverXdotool:
		return newXdotoolDriver(ctx)
	case models.DriverRobotgo:
		return newRobotgoDriver()
	case models.DriverAuto, "":
		if d, err := newXdotoolDriver(ctx); err == nil {
			return d, nil
		}
		if d, err := newRobotgoDriver(); err == nil {
			return d, nil
		}
		return nil, errors.New("xdotool is not installed. Please install it using 'sudo apt-get install xdotool'")
	default:
		return nil, fmt.Errorf("unknown automation driver %q", driver)
	}
}

// hasDisplay reports whether a graphical session is reachable, which the
// robotgo backend needs.
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
