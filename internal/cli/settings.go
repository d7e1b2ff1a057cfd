package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/antoniofonseca/keepactive-msteams/internal/config"
	"github.com/antoniofonseca/keepactive-msteams/internal/models"
)

var configureCmd = &cobra.Command{
	Use:     "configure",
	Aliases: []string{"config"},
	Short:   "Configure settings",
	Long: `Configure keepactive settings interactively.

This allows you to modify:
  - Target window title
  - Interaction interval (seconds)
  - Pointer offset region (pixels)
  - Automation driver (auto, xdotool, robotgo)
  - Stop file and log file paths

Press Enter to keep the current value for any setting.`,
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	changed := false

	// Target window
	fmt.Printf("Target window title [%s]: ", settings.Target.WindowTitle)
	title, _ := reader.ReadString('\n')
	title = strings.TrimSpace(title)
	if title != "" && title != settings.Target.WindowTitle {
		settings.Target.WindowTitle = title
		changed = true
	}

	// Interval
	newInterval, err := promptIntWithCurrent(reader, "Interval (seconds)", settings.IntervalSeconds)
	if err != nil {
		return err
	}
	if newInterval < 1 {
		return fmt.Errorf("invalid interval: %d (expected a positive integer)", newInterval)
	}
	if newInterval != settings.IntervalSeconds {
		settings.IntervalSeconds = newInterval
		changed = true
	}

	// Pointer region
	fmt.Println("\nPointer offset region (pixels from the window origin):")

	newMin, err := promptIntWithCurrent(reader, "  Region minimum", settings.Target.RegionMin)
	if err != nil {
		return err
	}
	newMax, err := promptIntWithCurrent(reader, "  Region maximum", settings.Target.RegionMax)
	if err != nil {
		return err
	}
	if newMin < 0 || newMax < newMin {
		return fmt.Errorf("invalid region: minimum %d, maximum %d (expected 0 <= min <= max)", newMin, newMax)
	}
	if newMin != settings.Target.RegionMin {
		settings.Target.RegionMin = newMin
		changed = true
	}
	if newMax != settings.Target.RegionMax {
		settings.Target.RegionMax = newMax
		changed = true
	}

	// Automation driver
	fmt.Printf("\nAutomation driver (auto, xdotool, robotgo) [%s]: ", settings.Automation.Driver)
	driver, _ := reader.ReadString('\n')
	driver = strings.TrimSpace(strings.ToLower(driver))
	if driver != "" {
		switch driver {
		case models.DriverAuto, models.DriverXdotool, models.DriverRobotgo:
		default:
			return fmt.Errorf("invalid driver: %s (expected auto, xdotool or robotgo)", driver)
		}
		if driver != settings.Automation.Driver {
			settings.Automation.Driver = driver
			changed = true
		}
	}

	// Paths
	fmt.Printf("\nStop file path [%s]: ", settings.Paths.StopFile)
	stopPath, _ := reader.ReadString('\n')
	stopPath = strings.TrimSpace(stopPath)
	if stopPath != "" && stopPath != settings.Paths.StopFile {
		settings.Paths.StopFile = stopPath
		changed = true
	}

	fmt.Printf("Log file path [%s]: ", settings.Paths.LogFile)
	logPath, _ := reader.ReadString('\n')
	logPath = strings.TrimSpace(logPath)
	if logPath != "" && logPath != settings.Paths.LogFile {
		settings.Paths.LogFile = logPath
		changed = true
	}

	if !changed {
		fmt.Println("\nNo changes made.")
		return nil
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("\nSettings updated.")
	return nil
}

// promptIntWithCurrent prompts for an integer value showing the current value.
// An empty response keeps the current value.
func promptIntWithCurrent(reader *bufio.Reader, prompt string, current int) (int, error) {
	fmt.Printf("%s [%d]: ", prompt, current)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(response)

	if response == "" {
		return current, nil
	}
	n, err := strconv.Atoi(response)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", response)
	}
	return n, nil
}
