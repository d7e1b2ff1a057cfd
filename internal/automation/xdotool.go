package automation

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/antoniofonseca/keepactive-msteams/internal/models"
)

// xdotoolDriver shells out to xdotool. Window lookups match by title
// substring, and pointer moves are window relative, so the window does not
// need focus.
type xdotoolDriver struct{}

func newXdotoolDriver(ctx context.Context) (*xdotoolDriver, error) {
	if _, err := exec.LookPath("xdotool"); err != nil {
		return nil, fmt.Errorf("xdotool is not installed. Please install it using 'sudo apt-get install xdotool'")
	}
	if err := exec.CommandContext(ctx, "xdotool", "--version").Run(); err != nil {
		return nil, fmt.Errorf("xdotool is installed but not runnable: %w", err)
	}
	return &xdotoolDriver{}, nil
}

func (d *xdotoolDriver) Name() string {
	return models.DriverXdotool
}

func (d *xdotoolDriver) FindWindow(ctx context.Context, title string) (Window, error) {
	cmd := exec.CommandContext(ctx, "xdotool", "search", "--name", title)
	out, err := cmd.Output()
	if err != nil {
		// xdotool search exits nonzero when nothing matches.
		if _, ok := err.(*exec.ExitError); ok {
			return Window{}, ErrWindowNotFound
		}
		return Window{}, fmt.Errorf("xdotool search failed: %w", err)
	}

	// Several windows can match; mirror the behavior of taking the first.
	id := firstLine(string(out))
	if id == "" {
		return Window{}, ErrWindowNotFound
	}
	return Window{ID: id}, nil
}

func (d *xdotoolDriver) MovePointerWithin(ctx context.Context, win Window, x, y int) error {
	cmd := exec.CommandContext(ctx, "xdotool", "mousemove", "--window", win.ID,
		strconv.Itoa(x), strconv.Itoa(y))
	if _, err := cmd.Output(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("xdotool mousemove failed: %w (stderr: %s)", err, string(exitErr.Stderr))
		}
		return fmt.Errorf("xdotool mousemove failed: %w", err)
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
