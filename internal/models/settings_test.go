package models

import (
	"testing"
	"time"
)

func TestNewSettingsDefaults(t *testing.T) {
	s := NewSettings()

	if s.Target.WindowTitle != "Microsoft Teams" {
		t.Errorf("default window title = %q, want %q", s.Target.WindowTitle, "Microsoft Teams")
	}
	if s.IntervalSeconds != 300 {
		t.Errorf("default interval = %d, want 300", s.IntervalSeconds)
	}
	if s.Paths.StopFile != "/tmp/stop_keep_active" {
		t.Errorf("default stop file = %q", s.Paths.StopFile)
	}
	if s.Paths.LogFile != "/tmp/keep_active.log" {
		t.Errorf("default log file = %q", s.Paths.LogFile)
	}
	if s.Target.RegionMin != 50 || s.Target.RegionMax != 250 {
		t.Errorf("default region = [%d,%d], want [50,250]", s.Target.RegionMin, s.Target.RegionMax)
	}
	if s.Interval() != 300*time.Second {
		t.Errorf("Interval() = %v, want 5m0s", s.Interval())
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(s *Settings) {}, false},
		{"zero interval", func(s *Settings) { s.IntervalSeconds = 0 }, true},
		{"negative interval", func(s *Settings) { s.IntervalSeconds = -60 }, true},
		{"empty window title", func(s *Settings) { s.Target.WindowTitle = "" }, true},
		{"negative region min", func(s *Settings) { s.Target.RegionMin = -1 }, true},
		{"inverted region", func(s *Settings) { s.Target.RegionMin = 300; s.Target.RegionMax = 250 }, true},
		{"point region", func(s *Settings) { s.Target.RegionMin = 100; s.Target.RegionMax = 100 }, false},
		{"empty stop file", func(s *Settings) { s.Paths.StopFile = "" }, true},
		{"empty log file", func(s *Settings) { s.Paths.LogFile = "" }, true},
		{"unknown driver", func(s *Settings) { s.Automation.Driver = "wiggle" }, true},
		{"xdotool driver", func(s *Settings) { s.Automation.Driver = DriverXdotool }, false},
		{"robotgo driver", func(s *Settings) { s.Automation.Driver = DriverRobotgo }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettings()
			tt.mutate(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetInterval(t *testing.T) {
	s := NewSettings()

	if err := s.SetInterval(60); err != nil {
		t.Fatalf("SetInterval(60) failed: %v", err)
	}
	if s.IntervalSeconds != 60 {
		t.Errorf("interval = %d after SetInterval(60)", s.IntervalSeconds)
	}

	if err := s.SetInterval(0); err == nil {
		t.Error("SetInterval(0) should fail")
	}
	if err := s.SetInterval(-5); err == nil {
		t.Error("SetInterval(-5) should fail")
	}
	if s.IntervalSeconds != 60 {
		t.Errorf("rejected SetInterval mutated the value to %d", s.IntervalSeconds)
	}
}
