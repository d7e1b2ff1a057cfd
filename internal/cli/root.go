// Package cli implements the keepactive CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/antoniofonseca/keepactive-msteams/internal/config"
	"github.com/antoniofonseca/keepactive-msteams/internal/models"
	"github.com/antoniofonseca/keepactive-msteams/internal/tui"
)

var (
	flagInterval int
	flagDriver   string
)

var rootCmd = &cobra.Command{
	Use:   "keepactive",
	Short: "Keep the Microsoft Teams window active",
	Long: `Keepactive periodically moves the pointer inside the Microsoft Teams
window so the application never reports you as away. Run without arguments
for the interactive menu; use "keepactive run" for a headless loop or
"keepactive tray" for a system tray icon.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("Error:")+" "+err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagInterval, "interval", 0,
		"seconds between interactions (overrides settings)")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "",
		"pointer backend: auto, xdotool or robotgo (overrides settings)")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(trayCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettingsWithFlags loads settings and applies command line overrides.
func loadSettingsWithFlags(cmd *cobra.Command) (*models.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("interval") {
		if err := settings.SetInterval(flagInterval); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("driver") {
		settings.Automation.Driver = flagDriver
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the menu needs an interactive terminal; use 'keepactive run' for headless operation")
	}

	settings, err := loadSettingsWithFlags(cmd)
	if err != nil {
		return err
	}

	ctrl, err := newLoopController(cmd.Context(), settings)
	if err != nil {
		return err
	}

	if err := tui.Run(ctrl); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}

	// The menu can exit abnormally while a run is live; the loop must not
	// outlive the process that owns it.
	ctrl.stopAndWait(stopTimeout)
	return nil
}
