package keeper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/antoniofonseca/keepactive-msteams/internal/activitylog"
	"github.com/antoniofonseca/keepactive-msteams/internal/automation"
	"github.com/antoniofonseca/keepactive-msteams/internal/models"
	"github.com/antoniofonseca/keepactive-msteams/internal/session"
	"github.com/antoniofonseca/keepactive-msteams/internal/stopfile"
)

type move struct {
	x, y int
}

type fakeDriver struct {
	mu       sync.Mutex
	missing  bool
	failMove bool
	finds    int
	moves    []move
}

var _ automation.Driver = (*fakeDriver)(nil)

func (d *fakeDriver) Name() string { return "fake" }

func (d *fakeDriver) FindWindow(ctx context.Context, title string) (automation.Window, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.finds++
	if d.missing {
		return automation.Window{}, automation.ErrWindowNotFound
	}
	return automation.Window{ID: "42", X: 100, Y: 200}, nil
}

func (d *fakeDriver) MovePointerWithin(ctx context.Context, win automation.Window, x, y int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failMove {
		return errors.New("move failed")
	}
	d.moves = append(d.moves, move{x, y})
	return nil
}

func (d *fakeDriver) findCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.finds
}

func (d *fakeDriver) moveCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.moves)
}

func (d *fakeDriver) firstMove() move {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.moves[0]
}

// newTestLoop builds a loop against a temp directory with a fast poll and a
// long interval, so only immediate cycles can produce interactions.
func newTestLoop(t *testing.T, driver automation.Driver) *Loop {
	t.Helper()

	dir := t.TempDir()
	settings := models.NewSettings()
	settings.Paths.StopFile = filepath.Join(dir, "stop_keep_active")
	settings.Paths.LogFile = filepath.Join(dir, "keep_active.log")

	state := session.New(settings.Interval())
	log := activitylog.New(settings.Paths.LogFile)

	l := New(state, driver, log, settings)
	l.poll = 10 * time.Millisecond

	t.Cleanup(func() {
		l.RequestStop()
		select {
		case <-l.Done():
		case <-time.After(2 * time.Second):
		}
	})
	return l
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func waitDone(t *testing.T, l *Loop, timeout time.Duration) {
	t.Helper()
	select {
	case <-l.Done():
	case <-time.After(timeout):
		t.Fatal("loop did not stop in time")
	}
}

func TestFirstCycleImmediate(t *testing.T) {
	driver := &fakeDriver{}
	l := newTestLoop(t, driver)

	if err := l.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	waitFor(t, 2*time.Second, func() bool { return driver.moveCount() >= 1 }, "first interaction")

	m := driver.firstMove()
	min, max := l.settings.Target.RegionMin, l.settings.Target.RegionMax
	if m.x < min || m.x > max || m.y < min || m.y > max {
		t.Errorf("interaction at (%d, %d), want both coordinates in [%d, %d]", m.x, m.y, min, max)
	}

	lines, err := activitylog.Lines(l.log.Path())
	if err != nil {
		t.Fatalf("reading activity log: %v", err)
	}
	if len(lines) == 0 || !strings.Contains(lines[0], "Starting script...") {
		t.Errorf("log lines = %q, want a starting line first", lines)
	}
	found := false
	for _, line := range lines {
		if strings.Contains(line, "Interacting with window ID 42 at (") {
			found = true
		}
	}
	if !found {
		t.Errorf("log lines = %q, want an interaction line", lines)
	}
}

func TestWindowMissingRetriesWithoutMoving(t *testing.T) {
	driver := &fakeDriver{missing: true}
	l := newTestLoop(t, driver)

	if err := l.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	waitFor(t, 2*time.Second, func() bool { return driver.findCount() >= 1 }, "first lookup")

	if got := driver.moveCount(); got != 0 {
		t.Errorf("moveCount() = %d, want 0 when the window is missing", got)
	}

	lines, err := activitylog.Lines(l.log.Path())
	if err != nil {
		t.Fatalf("reading activity log: %v", err)
	}
	found := false
	for _, line := range lines {
		if strings.Contains(line, "Window not found!") {
			found = true
		}
	}
	if !found {
		t.Errorf("log lines = %q, want a window-not-found line", lines)
	}
}

func TestMoveFailureIsLoggedNotFatal(t *testing.T) {
	driver := &fakeDriver{failMove: true}
	l := newTestLoop(t, driver)

	var mu sync.Mutex
	var events []Event
	l.SetOnEvent(func(ev Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	})

	if err := l.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	waitFor(t, 2*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, ev := range events {
			if ev.Type == EventInteractionError {
				return true
			}
		}
		return false
	}, "interaction error event")

	if got := l.state.Snapshot().Phase; got != session.PhaseRunning {
		t.Errorf("phase after move failure = %q, want still running", got)
	}

	lines, err := activitylog.Lines(l.log.Path())
	if err != nil {
		t.Fatalf("reading activity log: %v", err)
	}
	found := false
	for _, line := range lines {
		if strings.Contains(line, "Error interacting with window ID 42") {
			found = true
		}
	}
	if !found {
		t.Errorf("log lines = %q, want an interaction error line", lines)
	}
}

func TestStopFileStopsAndCleansUp(t *testing.T) {
	driver := &fakeDriver{}
	l := newTestLoop(t, driver)

	var mu sync.Mutex
	var stopped bool
	l.SetOnEvent(func(ev Event) {
		if ev.Type == EventStopped {
			mu.Lock()
			stopped = true
			mu.Unlock()
		}
	})

	if err := l.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	waitFor(t, 2*time.Second, func() bool { return driver.moveCount() >= 1 }, "first interaction")

	if err := stopfile.Create(l.settings.Paths.StopFile); err != nil {
		t.Fatalf("creating stop file: %v", err)
	}
	waitDone(t, l, 2*time.Second)

	if got := l.state.Snapshot().Phase; got != session.PhaseStopped {
		t.Errorf("phase after stop = %q, want %q", got, session.PhaseStopped)
	}
	if stopfile.Exists(l.settings.Paths.StopFile) {
		t.Error("stop file still present after shutdown")
	}
	if _, err := os.Stat(l.settings.Paths.LogFile); !os.IsNotExist(err) {
		t.Errorf("log file stat after shutdown = %v, want not-exist", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if !stopped {
		t.Error("no stopped event observed")
	}
}

func TestStopFileHonoredWhilePaused(t *testing.T) {
	driver := &fakeDriver{}
	l := newTestLoop(t, driver)

	if err := l.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	waitFor(t, 2*time.Second, func() bool { return driver.moveCount() >= 1 }, "first interaction")

	if err := l.Pause(); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if err := stopfile.Create(l.settings.Paths.StopFile); err != nil {
		t.Fatalf("creating stop file: %v", err)
	}
	waitDone(t, l, 2*time.Second)

	if got := l.state.Snapshot().Phase; got != session.PhaseStopped {
		t.Errorf("phase after stop = %q, want %q", got, session.PhaseStopped)
	}
}

func TestPauseSuspendsAndResumeFiresImmediately(t *testing.T) {
	driver := &fakeDriver{}
	l := newTestLoop(t, driver)

	if err := l.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	waitFor(t, 2*time.Second, func() bool { return driver.moveCount() >= 1 }, "first interaction")

	if err := l.Pause(); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	base := driver.moveCount()
	time.Sleep(100 * time.Millisecond)
	if got := driver.moveCount(); got != base {
		t.Errorf("moveCount() while paused = %d, want %d", got, base)
	}

	// The configured interval is minutes long, so a prompt second
	// interaction can only come from the resume wakeup.
	if err := l.Resume(); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	waitFor(t, 2*time.Second, func() bool { return driver.moveCount() > base }, "interaction after resume")
}

func TestRequestStopRunsShutdownSequence(t *testing.T) {
	driver := &fakeDriver{}
	l := newTestLoop(t, driver)

	if err := l.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	waitFor(t, 2*time.Second, func() bool { return driver.moveCount() >= 1 }, "first interaction")

	l.RequestStop()
	waitDone(t, l, 2*time.Second)

	if got := l.state.Snapshot().Phase; got != session.PhaseStopped {
		t.Errorf("phase after stop = %q, want %q", got, session.PhaseStopped)
	}
	if _, err := os.Stat(l.settings.Paths.LogFile); !os.IsNotExist(err) {
		t.Errorf("log file stat after shutdown = %v, want not-exist", err)
	}
}

func TestRestartAfterStop(t *testing.T) {
	driver := &fakeDriver{}
	l := newTestLoop(t, driver)

	if err := l.Start(); err != nil {
		t.Fatalf("first Start() error = %v", err)
	}
	if err := l.Start(); !errors.Is(err, session.ErrAlreadyRunning) {
		t.Fatalf("second Start() error = %v, want %v", err, session.ErrAlreadyRunning)
	}

	l.RequestStop()
	waitDone(t, l, 2*time.Second)

	if err := l.Start(); err != nil {
		t.Fatalf("Start() after stop error = %v", err)
	}
	waitFor(t, 2*time.Second, func() bool { return driver.moveCount() >= 1 }, "interaction in second run")
}

func TestStaleStopFileStopsBeforeInteracting(t *testing.T) {
	driver := &fakeDriver{}
	l := newTestLoop(t, driver)

	if err := stopfile.Create(l.settings.Paths.StopFile); err != nil {
		t.Fatalf("creating stop file: %v", err)
	}
	if err := l.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	waitDone(t, l, 2*time.Second)

	if got := driver.moveCount(); got != 0 {
		t.Errorf("moveCount() = %d, want 0 with a pre-existing stop file", got)
	}
	if stopfile.Exists(l.settings.Paths.StopFile) {
		t.Error("stop file still present after shutdown")
	}
}
