package tray

import (
	"fmt"
	"log"
	"time"

	"github.com/getlantern/systray"

	"github.com/antoniofonseca/keepactive-msteams/internal/session"
)

var (
	controller Controller
	onStart    func()
	onExit     func()

	statusItem *systray.MenuItem
	startItem  *systray.MenuItem
	pauseItem  *systray.MenuItem
	resumeItem *systray.MenuItem
	stopItem   *systray.MenuItem
	quitItem   *systray.MenuItem
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called when the tray is ready (start the loop here).
// onExitFn is called when the tray exits (cleanup here).
func Run(c Controller, onStartFn, onExitFn func()) {
	controller = c
	onStart = onStartFn
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTooltip(formatTooltip(session.Snapshot{Phase: session.PhaseStopped}))

	// Header
	header := systray.AddMenuItem("Keep Active", "")
	header.Disable()

	statusItem = systray.AddMenuItem("Status: Stopped", "")
	statusItem.Disable()

	systray.AddSeparator()

	startItem = systray.AddMenuItem("Start", "Begin keeping the window active")
	pauseItem = systray.AddMenuItem("Pause", "Suspend interactions")
	resumeItem = systray.AddMenuItem("Resume", "Resume interactions")
	stopItem = systray.AddMenuItem("Stop", "Stop the loop")

	systray.AddSeparator()

	quitItem = systray.AddMenuItem("Quit", "Stop the loop and exit")

	if onStart != nil {
		onStart()
	}
	refresh()

	go handleClicks()
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	// The menu has no push updates; poll the loop state once a second to
	// keep the status row and the tooltip honest.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-startItem.ClickedCh:
			if err := controller.Start(); err != nil {
				log.Printf("start: %v", err)
			}
			refresh()

		case <-pauseItem.ClickedCh:
			if err := controller.Pause(); err != nil {
				log.Printf("pause: %v", err)
			}
			refresh()

		case <-resumeItem.ClickedCh:
			if err := controller.Resume(); err != nil {
				log.Printf("resume: %v", err)
			}
			refresh()

		case <-stopItem.ClickedCh:
			if err := controller.Stop(); err != nil {
				log.Printf("stop: %v", err)
			}
			refresh()

		case <-quitItem.ClickedCh:
			controller.RequestShutdown()

		case <-ticker.C:
			refresh()
		}
	}
}

// refresh syncs menu items and the tooltip with the current loop state.
func refresh() {
	if controller == nil {
		return
	}
	snap := controller.Snapshot()

	statusItem.SetTitle("Status: " + statusLabel(snap))
	systray.SetTooltip(formatTooltip(snap))

	switch snap.Phase {
	case session.PhaseRunning:
		startItem.Hide()
		pauseItem.Show()
		resumeItem.Hide()
		stopItem.Enable()
	case session.PhasePaused:
		startItem.Hide()
		pauseItem.Hide()
		resumeItem.Show()
		stopItem.Enable()
	default:
		startItem.Show()
		pauseItem.Hide()
		resumeItem.Hide()
		stopItem.Disable()
	}
}

func statusLabel(snap session.Snapshot) string {
	switch snap.Phase {
	case session.PhaseRunning:
		return "Running"
	case session.PhasePaused:
		return "Running (Paused)"
	default:
		return "Stopped"
	}
}

func formatTooltip(snap session.Snapshot) string {
	if snap.Phase == session.PhaseStopped {
		return "Keep Active — Stopped"
	}
	return fmt.Sprintf("Keep Active — %s (%s)", statusLabel(snap), session.FormatElapsed(snap.Elapsed))
}
