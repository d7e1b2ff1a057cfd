package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/antoniofonseca/keepactive-msteams/internal/session"
)

func renderHeader(windowTitle string, snap session.Snapshot, width int) string {
	dot := lipgloss.NewStyle().Foreground(colorGreen).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("Keep Active")
	target := lipgloss.NewStyle().Foreground(colorDim).Render(windowTitle)

	badge := renderPhaseBadge(snap)

	left := fmt.Sprintf(" %s %s  %s", dot, name, target)
	right := badge + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderPhaseBadge(snap session.Snapshot) string {
	switch snap.Phase {
	case session.PhaseRunning:
		return badgeRunningStyle.Render("● Running")
	case session.PhasePaused:
		return badgePausedStyle.Render("● Paused")
	default:
		return badgeStoppedStyle.Render("● Stopped")
	}
}

// renderStatusBlock shows the three status lines above the menu.
func renderStatusBlock(snap session.Snapshot) string {
	var phaseStr string
	switch snap.Phase {
	case session.PhaseRunning:
		phaseStr = statusRunningStyle.Render("Running")
	case session.PhasePaused:
		phaseStr = statusPausedStyle.Render("Running (Paused)")
	default:
		phaseStr = statusStoppedStyle.Render("Stopped")
	}

	elapsed := "N/A"
	if snap.Started {
		elapsed = session.FormatElapsed(snap.Elapsed)
	}

	lines := []string{
		statusLabelStyle.Render("Current Status:") + " " + phaseStr,
		statusLabelStyle.Render("Current Interval:") + " " + statusValueStyle.Render(fmt.Sprintf("%d seconds", snap.IntervalSeconds())),
		statusLabelStyle.Render("Elapsed Time:") + " " + statusValueStyle.Render(elapsed),
	}
	return strings.Join(lines, "\n")
}
