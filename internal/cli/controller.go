package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/antoniofonseca/keepactive-msteams/internal/activitylog"
	"github.com/antoniofonseca/keepactive-msteams/internal/automation"
	"github.com/antoniofonseca/keepactive-msteams/internal/keeper"
	"github.com/antoniofonseca/keepactive-msteams/internal/models"
	"github.com/antoniofonseca/keepactive-msteams/internal/session"
	"github.com/antoniofonseca/keepactive-msteams/internal/stopfile"
)

// stopTimeout bounds how long shutdown waits for the loop's cleanup.
const stopTimeout = 5 * time.Second

// loopController wires one activity loop to the frontends. It satisfies
// both the TUI and the tray controller interfaces.
type loopController struct {
	loop     *keeper.Loop
	state    *session.State
	log      *activitylog.Logger
	settings *models.Settings

	// shutdown is set by the tray runner; RequestShutdown invokes it on
	// its own goroutine since it blocks on the loop winding down.
	shutdown func()
}

// newLoopController resolves the automation driver and assembles the loop.
func newLoopController(ctx context.Context, settings *models.Settings) (*loopController, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	driver, err := automation.Detect(ctx, settings.Automation.Driver)
	if err != nil {
		return nil, err
	}

	state := session.New(settings.Interval())
	log := activitylog.New(settings.Paths.LogFile)
	loop := keeper.New(state, driver, log, settings)

	return &loopController{
		loop:     loop,
		state:    state,
		log:      log,
		settings: settings,
	}, nil
}

func (c *loopController) Snapshot() session.Snapshot {
	return c.state.Snapshot()
}

func (c *loopController) Start() error {
	return c.loop.Start()
}

// Stop signals the loop through the stop file, the same path an external
// "keepactive stop" takes. The loop notices within a second.
func (c *loopController) Stop() error {
	if c.state.Snapshot().Phase == session.PhaseStopped {
		return session.ErrNotRunning
	}
	return stopfile.Create(c.settings.Paths.StopFile)
}

func (c *loopController) Pause() error {
	return c.loop.Pause()
}

func (c *loopController) Resume() error {
	return c.loop.Resume()
}

func (c *loopController) SetInterval(seconds int) error {
	// The session gates the change (stopped only); settings follow so the
	// next run and the configure display stay in sync.
	if err := c.state.SetInterval(time.Duration(seconds) * time.Second); err != nil {
		return err
	}
	return c.settings.SetInterval(seconds)
}

func (c *loopController) LogPath() string {
	return c.settings.Paths.LogFile
}

func (c *loopController) WindowTitle() string {
	return c.settings.Target.WindowTitle
}

func (c *loopController) Subscribe(fn func(keeper.Event)) {
	c.loop.SetOnEvent(fn)
}

func (c *loopController) RequestShutdown() {
	if c.shutdown != nil {
		go c.shutdown()
	}
}

// stopAndWait asks the loop to stop and blocks until cleanup finishes or
// the timeout passes.
func (c *loopController) stopAndWait(timeout time.Duration) {
	if err := c.Stop(); err != nil {
		c.loop.RequestStop()
	}
	select {
	case <-c.loop.Done():
	case <-time.After(timeout):
	}
}
