package session

import (
	"errors"
	"testing"
	"time"
)

type mockClock struct {
	current time.Time
}

func (m *mockClock) Now() time.Time {
	return m.current
}

func (m *mockClock) advance(d time.Duration) {
	m.current = m.current.Add(d)
}

func newTestState(interval time.Duration) (*State, *mockClock) {
	clock := &mockClock{current: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)}
	s := New(interval)
	s.clock = clock
	return s, clock
}

func TestTransitions(t *testing.T) {
	s, _ := newTestState(300 * time.Second)

	if got := s.Snapshot().Phase; got != PhaseStopped {
		t.Fatalf("initial phase = %v, want stopped", got)
	}

	// Pause and resume require an active session.
	if err := s.Pause(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Pause while stopped = %v, want ErrNotRunning", err)
	}
	if err := s.Resume(); !errors.Is(err, ErrNotPaused) {
		t.Errorf("Resume while stopped = %v, want ErrNotPaused", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if got := s.Snapshot().Phase; got != PhaseRunning {
		t.Fatalf("phase after Start = %v, want running", got)
	}
	if s.SessionID() == "" {
		t.Error("Start should stamp a session ID")
	}

	// Double start is rejected, including from paused.
	if err := s.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start = %v, want ErrAlreadyRunning", err)
	}
	if err := s.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if err := s.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Start while paused = %v, want ErrAlreadyRunning", err)
	}
	if err := s.Pause(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("double Pause = %v, want ErrNotRunning", err)
	}

	if err := s.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if got := s.Snapshot().Phase; got != PhaseRunning {
		t.Fatalf("phase after Resume = %v, want running", got)
	}

	s.MarkStopped()
	if got := s.Snapshot().Phase; got != PhaseStopped {
		t.Fatalf("phase after MarkStopped = %v, want stopped", got)
	}

	// Stopped is re-enterable.
	first := s.SessionID()
	if err := s.Start(); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if s.SessionID() == first {
		t.Error("restart should stamp a new session ID")
	}
}

func TestSetIntervalGating(t *testing.T) {
	s, _ := newTestState(300 * time.Second)

	if err := s.SetInterval(0); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("SetInterval(0) = %v, want ErrInvalidInterval", err)
	}
	if err := s.SetInterval(-time.Minute); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("SetInterval(-1m) = %v, want ErrInvalidInterval", err)
	}
	if err := s.SetInterval(60 * time.Second); err != nil {
		t.Fatalf("SetInterval(60s) failed: %v", err)
	}
	if got := s.Interval(); got != 60*time.Second {
		t.Errorf("Interval = %v, want 1m", got)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := s.SetInterval(120 * time.Second); !errors.Is(err, ErrIntervalLocked) {
		t.Errorf("SetInterval while running = %v, want ErrIntervalLocked", err)
	}
	if err := s.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if err := s.SetInterval(120 * time.Second); !errors.Is(err, ErrIntervalLocked) {
		t.Errorf("SetInterval while paused = %v, want ErrIntervalLocked", err)
	}
	if got := s.Interval(); got != 60*time.Second {
		t.Errorf("rejected SetInterval mutated the interval to %v", got)
	}

	s.MarkStopped()
	if err := s.SetInterval(120 * time.Second); err != nil {
		t.Errorf("SetInterval after stop failed: %v", err)
	}
}

func TestElapsed(t *testing.T) {
	s, clock := newTestState(300 * time.Second)

	if snap := s.Snapshot(); snap.Started {
		t.Error("Started should be false before the first Start")
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	clock.advance(90 * time.Second)
	if got := s.Snapshot().Elapsed; got != 90*time.Second {
		t.Errorf("elapsed after 90s = %v", got)
	}

	// Pausing freezes the readout at the pause point.
	if err := s.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	clock.advance(30 * time.Second)
	if got := s.Snapshot().Elapsed; got != 90*time.Second {
		t.Errorf("elapsed 30s into the pause = %v, want frozen at 90s", got)
	}
	clock.advance(30 * time.Second)
	if got := s.Snapshot().Elapsed; got != 90*time.Second {
		t.Errorf("elapsed 60s into the pause = %v, want frozen at 90s", got)
	}

	// Resuming folds the pause span back in: the readout jumps to the full
	// wall time since start.
	if err := s.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if got := s.Snapshot().Elapsed; got != 150*time.Second {
		t.Errorf("elapsed after resume = %v, want 150s", got)
	}

	// The readout keeps counting after a stop; only a restart rebases it.
	s.MarkStopped()
	clock.advance(10 * time.Second)
	if got := s.Snapshot().Elapsed; got != 160*time.Second {
		t.Errorf("elapsed after stop = %v, want 160s", got)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if got := s.Snapshot().Elapsed; got != 0 {
		t.Errorf("elapsed after restart = %v, want 0", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0:00:00"},
		{"seconds", 5 * time.Second, "0:00:05"},
		{"truncates fractions", 5*time.Second + 900*time.Millisecond, "0:00:05"},
		{"minutes", 2*time.Minute + 3*time.Second, "0:02:03"},
		{"hours", time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{"many hours", 26*time.Hour + 5*time.Second, "26:00:05"},
		{"negative clamps", -time.Second, "0:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatElapsed(tt.d); got != tt.want {
				t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
