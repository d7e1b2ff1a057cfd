package automation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-vgo/robotgo"

	"github.com/antoniofonseca/keepactive-msteams/internal/models"
)

// robotgoDriver moves the pointer through the robotgo library. It cannot
// search windows by title, so it matches the owning process instead and
// offsets moves by the window bounds it reports.
type robotgoDriver struct{}

func newRobotgoDriver() (*robotgoDriver, error) {
	if !hasDisplay() {
		return nil, fmt.Errorf("no display available for the robotgo backend (DISPLAY and WAYLAND_DISPLAY are unset)")
	}
	return &robotgoDriver{}, nil
}

func (d *robotgoDriver) Name() string {
	return models.DriverRobotgo
}

func (d *robotgoDriver) FindWindow(ctx context.Context, title string) (Window, error) {
	ids, err := robotgo.FindIds(processHint(title))
	if err != nil || len(ids) == 0 {
		return Window{}, ErrWindowNotFound
	}

	pid := ids[0]
	x, y, _, _ := robotgo.GetBounds(pid)
	return Window{ID: strconv.Itoa(pid), X: x, Y: y}, nil
}

func (d *robotgoDriver) MovePointerWithin(ctx context.Context, win Window, x, y int) error {
	robotgo.Move(win.X+x, win.Y+y)
	return nil
}

// processHint derives a process name guess from a window title. Titles like
// "Microsoft Teams" end in the product name, which is what the executable
// tends to be called.
func processHint(title string) string {
	fields := strings.Fields(strings.ToLower(title))
	if len(fields) == 0 {
		return title
	}
	return fields[len(fields)-1]
}
