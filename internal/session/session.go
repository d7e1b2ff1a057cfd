// Package session tracks the lifecycle of one keep-alive run: stopped,
// running, or paused, plus the interaction interval and the elapsed-time
// readout. All fields live behind one mutex; the UI issues transitions and
// rereads snapshots, the activity loop marks itself stopped when it winds
// down.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Phase identifies where the session is in its lifecycle.
type Phase string

const (
	PhaseStopped Phase = "stopped"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
)

// Transition errors. The UI maps these to its own wording.
var (
	ErrAlreadyRunning  = errors.New("session already running")
	ErrNotRunning      = errors.New("session not running")
	ErrNotPaused       = errors.New("session not paused")
	ErrIntervalLocked  = errors.New("interval cannot change while the session is running or paused")
	ErrInvalidInterval = errors.New("interval must be a positive number of seconds")
)

// State is the synchronized session state.
type State struct {
	mu          sync.Mutex
	clock       Clock
	phase       Phase
	everStarted bool
	sessionID   string
	startedAt   time.Time
	pausedAt    time.Time
	interval    time.Duration
}

// Snapshot is a point-in-time copy of the state for display.
type Snapshot struct {
	Phase     Phase
	Interval  time.Duration
	SessionID string
	Started   bool          // a session has started at some point this process
	Elapsed   time.Duration // meaningful only when Started
}

// IntervalSeconds returns the interval in whole seconds for display.
func (s Snapshot) IntervalSeconds() int {
	return int(s.Interval / time.Second)
}

// New creates a stopped session with the given interaction interval.
func New(interval time.Duration) *State {
	return &State{
		clock:    SystemClock,
		phase:    PhaseStopped,
		interval: interval,
	}
}

// Start moves Stopped to Running and stamps a fresh session ID.
func (s *State) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseStopped {
		return ErrAlreadyRunning
	}
	s.phase = PhaseRunning
	s.everStarted = true
	s.sessionID = uuid.NewString()
	s.startedAt = s.clock.Now()
	s.pausedAt = time.Time{}
	return nil
}

// Pause moves Running to Paused. Interaction cycles stop; the loop keeps
// watching its stop conditions.
func (s *State) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return ErrNotRunning
	}
	s.phase = PhasePaused
	s.pausedAt = s.clock.Now()
	return nil
}

// Resume moves Paused back to Running.
func (s *State) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhasePaused {
		return ErrNotPaused
	}
	s.phase = PhaseRunning
	s.pausedAt = time.Time{}
	return nil
}

// MarkStopped records that the loop has wound down. Valid from any phase and
// idempotent; a Stopped session can be started again.
func (s *State) MarkStopped() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = PhaseStopped
	s.pausedAt = time.Time{}
}

// SetInterval changes the interaction interval, only while Stopped.
func (s *State) SetInterval(interval time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if interval < time.Second {
		return ErrInvalidInterval
	}
	if s.phase != PhaseStopped {
		return ErrIntervalLocked
	}
	s.interval = interval
	return nil
}

// Interval returns the current interaction interval.
func (s *State) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// SessionID returns the ID stamped by the most recent Start.
func (s *State) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// Snapshot returns a copy of the state for display.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Phase:     s.phase,
		Interval:  s.interval,
		SessionID: s.sessionID,
		Started:   s.everStarted,
		Elapsed:   s.elapsedLocked(),
	}
}

// elapsedLocked computes time since the session started. While paused the
// accumulating pause span is subtracted, freezing the readout at the pause
// point; resuming folds the span back in, matching the long-standing
// behavior of the readout.
func (s *State) elapsedLocked() time.Duration {
	if !s.everStarted {
		return 0
	}
	now := s.clock.Now()
	elapsed := now.Sub(s.startedAt)
	if s.phase == PhasePaused {
		elapsed -= now.Sub(s.pausedAt)
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

// FormatElapsed renders a duration truncated to whole seconds as H:MM:SS.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
