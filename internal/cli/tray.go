package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/antoniofonseca/keepactive-msteams/internal/keeper"
	"github.com/antoniofonseca/keepactive-msteams/internal/tray"
)

var trayCmd = &cobra.Command{
	Use:   "tray",
	Short: "Run in the background with a system tray icon",
	Long: `Run the keep-alive loop behind a system tray icon.

The tray menu offers start, pause, resume and stop without a terminal.
The loop starts as soon as the icon appears. Quit from the menu stops
the loop and exits.`,
	RunE: runTray,
}

func runTray(cmd *cobra.Command, args []string) error {
	log.SetPrefix("[keepactive] ")
	log.SetFlags(log.Ldate | log.Ltime)

	settings, err := loadSettingsWithFlags(cmd)
	if err != nil {
		return err
	}

	ctrl, err := newLoopController(cmd.Context(), settings)
	if err != nil {
		return err
	}

	// Quit from the tray menu lands here via RequestShutdown. The loop
	// must be down before systray tears the icon loop out from under us.
	ctrl.shutdown = func() {
		ctrl.stopAndWait(stopTimeout)
		tray.Quit()
	}

	watchSignals(ctrl)

	ctrl.Subscribe(func(ev keeper.Event) {
		switch ev.Type {
		case keeper.EventWindowMissing:
			log.Printf("%s window not found, retrying next cycle", settings.Target.WindowTitle)
		case keeper.EventInteractionError:
			log.Printf("interaction failed: %v", ev.Err)
		}
	})

	onStart := func() {
		if err := ctrl.Start(); err != nil {
			log.Printf("starting loop: %v", err)
		}
	}

	fmt.Println(styleBrand.Render("keepactive") + " " + styleHint.Render("running in the system tray"))
	tray.Run(ctrl, onStart, nil)

	// systray.Run only returns after Quit; make sure the loop is not
	// left running if the icon loop died some other way.
	ctrl.stopAndWait(stopTimeout)
	return nil
}

// watchSignals routes SIGINT/SIGTERM into the controller's shutdown hook,
// so an interrupt runs the same cleanup as Quit from the tray menu.
func watchSignals(ctrl *loopController) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down...", sig)
		ctrl.RequestShutdown()
	}()
}
