package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/antoniofonseca/keepactive-msteams/internal/keeper"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the keep-alive loop without the menu",
	Long: `Run the keep-alive loop in the foreground until interrupted.

The loop stops on SIGINT/SIGTERM or when the stop file appears, for
example via "keepactive stop" from another terminal.`,
	RunE: runHeadless,
}

func runHeadless(cmd *cobra.Command, args []string) error {
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

	ctrl.Subscribe(func(ev keeper.Event) {
		switch ev.Type {
		case keeper.EventWindowMissing:
			log.Printf("%s window not found, retrying next cycle", settings.Target.WindowTitle)
		case keeper.EventInteractionError:
			log.Printf("interaction failed: %v", ev.Err)
		}
	})

	if err := ctrl.Start(); err != nil {
		return fmt.Errorf("starting loop: %w", err)
	}
	log.Printf("Loop started (window %q, interval %s, PID %d)",
		settings.Target.WindowTitle, settings.Interval(), os.Getpid())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal %v, shutting down...", sig)
		ctrl.stopAndWait(stopTimeout)
	case <-ctrl.loop.Done():
		log.Println("Loop stopped.")
	}

	return nil
}
