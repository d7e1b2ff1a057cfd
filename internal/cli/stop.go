package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antoniofonseca/keepactive-msteams/internal/config"
	"github.com/antoniofonseca/keepactive-msteams/internal/stopfile"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Signal a running instance to stop",
	Long: `Create the stop file that a running keepactive instance watches.

The running loop notices the file within a second, cleans up and removes
it. Without a running instance the file stays behind until one starts.`,
	RunE: runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	path := settings.Paths.StopFile

	if stopfile.Exists(path) {
		fmt.Println(styleWarning.Render("Stop file already present: ") + styleValue.Render(path))
		return nil
	}

	if err := stopfile.Create(path); err != nil {
		return fmt.Errorf("creating stop file: %w", err)
	}

	fmt.Println(styleSuccess.Render("Stop file created. Script will stop soon."))
	fmt.Println(styleHint.Render(path))
	return nil
}
