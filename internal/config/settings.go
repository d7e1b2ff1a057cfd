package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/antoniofonseca/keepactive-msteams/internal/models"
)

// LoadSettings loads the global settings from ~/.keepactive/settings.yaml and
// applies KEEPACTIVE_* environment overrides on top. A .env file in the
// working directory is read first so overrides can live next to the binary.
// If the settings file doesn't exist, defaults are used.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	_ = godotenv.Load()
	applyEnv(settings)
	return settings, nil
}

// SaveSettings saves the global settings to ~/.keepactive/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// applyEnv overrides individual settings from KEEPACTIVE_* environment
// variables. Malformed numeric values are ignored rather than failing
// startup; a bad driver name is kept so Validate can report it.
func applyEnv(s *models.Settings) {
	if title := os.Getenv("KEEPACTIVE_WINDOW"); title != "" {
		s.Target.WindowTitle = title
	}
	if interval := os.Getenv("KEEPACTIVE_INTERVAL"); interval != "" {
		if seconds, err := strconv.Atoi(interval); err == nil && seconds > 0 {
			s.IntervalSeconds = seconds
		}
	}
	if stopFile := os.Getenv("KEEPACTIVE_STOP_FILE"); stopFile != "" {
		s.Paths.StopFile = stopFile
	}
	if logFile := os.Getenv("KEEPACTIVE_LOG_FILE"); logFile != "" {
		s.Paths.LogFile = logFile
	}
	if driver := os.Getenv("KEEPACTIVE_DRIVER"); driver != "" {
		s.Automation.Driver = driver
	}
}
