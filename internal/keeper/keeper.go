// Package keeper runs the activity loop: the background engine that
// periodically locates the target window and moves the pointer inside it,
// watching the stop conditions between cycles.
package keeper

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/antoniofonseca/keepactive-msteams/internal/activitylog"
	"github.com/antoniofonseca/keepactive-msteams/internal/automation"
	"github.com/antoniofonseca/keepactive-msteams/internal/models"
	"github.com/antoniofonseca/keepactive-msteams/internal/session"
	"github.com/antoniofonseca/keepactive-msteams/internal/stopfile"
)

// EventType classifies loop events sent to the control surface.
type EventType int

const (
	// EventStarted fires once the loop is up.
	EventStarted EventType = iota
	// EventInteraction fires after a successful pointer move.
	EventInteraction
	// EventWindowMissing fires when the target window cannot be found;
	// the loop retries next cycle.
	EventWindowMissing
	// EventInteractionError fires when the pointer move itself failed.
	EventInteractionError
	// EventStopped fires after the shutdown sequence has completed.
	EventStopped
)

// Event describes a loop occurrence for display purposes.
type Event struct {
	Type     EventType
	WindowID string
	X, Y     int
	Err      error
}

// Loop drives keep-alive cycles against one target window. Start spawns a
// goroutine per run; a finished run can be started again.
type Loop struct {
	state    *session.State
	driver   automation.Driver
	log      *activitylog.Logger
	settings *models.Settings

	// poll bounds how stale a stop request can go unnoticed. Shortened in
	// tests.
	poll time.Duration

	mu      sync.Mutex
	onEvent func(Event)
	cancel  context.CancelFunc
	done    chan struct{}
	wake    chan struct{}
}

// New creates a loop. The settings are read-only here; the authoritative
// interval lives in the session state.
func New(state *session.State, driver automation.Driver, log *activitylog.Logger, settings *models.Settings) *Loop {
	return &Loop{
		state:    state,
		driver:   driver,
		log:      log,
		settings: settings,
		poll:     time.Second,
	}
}

// SetOnEvent registers the event callback. Called from the loop goroutine.
func (l *Loop) SetOnEvent(fn func(Event)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onEvent = fn
}

// Start transitions the session to Running and spawns the loop goroutine.
// Returns session.ErrAlreadyRunning when a run is already active.
func (l *Loop) Start() error {
	l.mu.Lock()
	prev := l.done
	l.mu.Unlock()

	if prev != nil {
		select {
		case <-prev:
		default:
			// The previous goroutine is still alive. Reject if it is a
			// live session; briefly wait out a shutdown in progress so
			// its cleanup cannot race the new run's files.
			if l.state.Snapshot().Phase != session.PhaseStopped {
				return session.ErrAlreadyRunning
			}
			<-prev
		}
	}

	if err := l.state.Start(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.mu.Lock()
	l.cancel = cancel
	l.done = make(chan struct{})
	l.wake = make(chan struct{}, 1)
	l.mu.Unlock()

	go l.run(ctx)
	return nil
}

// Pause suspends interaction cycles. Stop conditions stay watched.
func (l *Loop) Pause() error {
	return l.state.Pause()
}

// Resume lifts a pause and fires an interaction cycle right away.
func (l *Loop) Resume() error {
	if err := l.state.Resume(); err != nil {
		return err
	}
	l.mu.Lock()
	wake := l.wake
	l.mu.Unlock()
	if wake != nil {
		select {
		case wake <- struct{}{}:
		default:
		}
	}
	return nil
}

// RequestStop cancels the current run from inside the process. External
// processes use the stop file instead; both paths converge on the same
// shutdown sequence.
func (l *Loop) RequestStop() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Done returns a channel closed once the current run has fully wound down,
// cleanup included. Closed immediately when no run ever started.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done == nil {
		return closedDone
	}
	return l.done
}

var closedDone = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func (l *Loop) run(ctx context.Context) {
	defer l.shutdown()

	// Instant wakeup when the stop file appears. The ticker poll below
	// remains the safety net when the watch misses.
	var watchCh <-chan struct{}
	if w, err := stopfile.New(l.settings.Paths.StopFile); err == nil {
		if err := w.Start(); err == nil {
			watchCh = w.Notify()
			defer w.Stop()
		}
	}

	_ = l.log.Logf("Starting script... (session %s)", l.state.SessionID())
	l.emit(Event{Type: EventStarted})

	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	l.mu.Lock()
	wake := l.wake
	l.mu.Unlock()

	var nextAt time.Time // zero means due now

	for {
		// Stop conditions come first so they are honored even while
		// paused, and before a first interaction when a stale stop file
		// lingers from an earlier process.
		if stopfile.Exists(l.settings.Paths.StopFile) {
			return
		}

		snap := l.state.Snapshot()
		if snap.Phase == session.PhaseRunning && !time.Now().Before(nextAt) {
			l.cycle(ctx)
			nextAt = time.Now().Add(snap.Interval)
		}

		select {
		case <-ctx.Done():
			return
		case <-wake:
			nextAt = time.Time{}
		case <-watchCh:
		case <-ticker.C:
		}
	}
}

// cycle performs one find-and-move interaction. Failures are logged and
// surfaced for display but never abort the loop.
func (l *Loop) cycle(ctx context.Context) {
	win, err := l.driver.FindWindow(ctx, l.settings.Target.WindowTitle)
	if err != nil {
		_ = l.log.Logf("Window not found!")
		l.emit(Event{Type: EventWindowMissing})
		return
	}

	x := l.randomOffset()
	y := l.randomOffset()
	if err := l.driver.MovePointerWithin(ctx, win, x, y); err != nil {
		_ = l.log.Logf("Error interacting with window ID %s: %s", win.ID, err)
		l.emit(Event{Type: EventInteractionError, WindowID: win.ID, Err: err})
		return
	}

	_ = l.log.Logf("Interacting with window ID %s at (%d, %d)", win.ID, x, y)
	l.emit(Event{Type: EventInteraction, WindowID: win.ID, X: x, Y: y})
}

// randomOffset picks a coordinate in the configured region, bounds
// inclusive.
func (l *Loop) randomOffset() int {
	lo, hi := l.settings.Target.RegionMin, l.settings.Target.RegionMax
	return lo + rand.Intn(hi-lo+1)
}

// shutdown runs the stop sequence exactly once per run: log the stop, mark
// the session stopped, remove the stop file, then remove the log file. Log
// removal is deliberate clean-slate behavior; history does not persist
// across runs.
func (l *Loop) shutdown() {
	_ = l.log.Logf("Stop file found or script stopped. Stopping script...")

	l.state.MarkStopped()

	path := l.settings.Paths.StopFile
	if stopfile.Exists(path) {
		if err := stopfile.Remove(path); err != nil {
			_ = l.log.Logf("Error removing %s: %s", path, err)
		} else {
			_ = l.log.Logf("Removed %s", path)
		}
	}

	// Nothing may log after this point or the file would reappear.
	if err := l.log.Remove(); err != nil {
		_ = l.log.Logf("Error removing %s: %s", l.log.Path(), err)
	}

	l.emit(Event{Type: EventStopped})

	l.mu.Lock()
	cancel := l.cancel
	done := l.done
	l.cancel = nil
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	close(done)
}

func (l *Loop) emit(ev Event) {
	l.mu.Lock()
	fn := l.onEvent
	l.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}
