package models

import (
	"fmt"
	"time"
)

// Driver names accepted by the automation backend selector.
const (
	DriverAuto    = "auto"
	DriverXdotool = "xdotool"
	DriverRobotgo = "robotgo"
)

// TargetConfig describes the window the activity loop keeps active.
type TargetConfig struct {
	WindowTitle string `yaml:"window_title"` // Substring matched against window titles
	RegionMin   int    `yaml:"region_min"`   // Pointer region bounds, pixels relative
	RegionMax   int    `yaml:"region_max"`   // to the window origin, both axes
}

// PathsConfig holds the on-disk files the activity loop reads and writes.
type PathsConfig struct {
	StopFile string `yaml:"stop_file"`
	LogFile  string `yaml:"log_file"`
}

// AutomationConfig selects the pointer backend.
type AutomationConfig struct {
	Driver string `yaml:"driver"` // auto | xdotool | robotgo
}

// Settings represents global application settings.
// This corresponds to ~/.keepactive/settings.yaml.
type Settings struct {
	Version         int              `yaml:"version"`
	IntervalSeconds int              `yaml:"interval_seconds"`
	Target          TargetConfig     `yaml:"target"`
	Paths           PathsConfig      `yaml:"paths"`
	Automation      AutomationConfig `yaml:"automation"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:         1,
		IntervalSeconds: 300,
		Target: TargetConfig{
			WindowTitle: "Microsoft Teams",
			RegionMin:   50,
			RegionMax:   250,
		},
		Paths: PathsConfig{
			StopFile: "/tmp/stop_keep_active",
			LogFile:  "/tmp/keep_active.log",
		},
		Automation: AutomationConfig{
			Driver: DriverAuto,
		},
	}
}

// Interval returns the interaction interval as a duration.
func (s *Settings) Interval() time.Duration {
	return time.Duration(s.IntervalSeconds) * time.Second
}

// Validate checks if the settings are usable.
func (s *Settings) Validate() error {
	if s.IntervalSeconds < 1 {
		return fmt.Errorf("interval must be a positive number of seconds, got %d", s.IntervalSeconds)
	}
	if s.Target.WindowTitle == "" {
		return fmt.Errorf("window title cannot be empty")
	}
	if s.Target.RegionMin < 0 {
		return fmt.Errorf("region minimum cannot be negative, got %d", s.Target.RegionMin)
	}
	if s.Target.RegionMax < s.Target.RegionMin {
		return fmt.Errorf("region maximum (%d) cannot be less than minimum (%d)",
			s.Target.RegionMax, s.Target.RegionMin)
	}
	if s.Paths.StopFile == "" {
		return fmt.Errorf("stop file path cannot be empty")
	}
	if s.Paths.LogFile == "" {
		return fmt.Errorf("log file path cannot be empty")
	}
	switch s.Automation.Driver {
	case DriverAuto, DriverXdotool, DriverRobotgo:
	default:
		return fmt.Errorf("unknown automation driver %q (want %s, %s or %s)",
			s.Automation.Driver, DriverAuto, DriverXdotool, DriverRobotgo)
	}
	return nil
}

// SetInterval sets the interaction interval with validation.
func (s *Settings) SetInterval(seconds int) error {
	if seconds < 1 {
		return fmt.Errorf("interval must be a positive number of seconds, got %d", seconds)
	}
	s.IntervalSeconds = seconds
	return nil
}
