package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirmMode values.
const (
	confirmNone = 0
	confirmExit = 1
)

func renderStatusBar(m *Model, width int) string {
	if m.confirmMode == confirmExit {
		return renderConfirmBar(
			"The script is running. Stop it and exit? (y/n)",
			width,
		)
	}

	if m.feedback != "" {
		return statusBarStyle.Width(width).Render(" " + lipgloss.NewStyle().Foreground(colorYellow).Render(m.feedback))
	}

	left := " " + getKeyHints(m)
	right := renderPhaseBadge(m.snap) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.overlay == overlayInterval {
		return keyHint("Enter", "apply") + "  " + keyHint("Esc", "cancel")
	}
	if m.overlay == overlayHelp {
		return keyHint("Esc", "close")
	}

	switch m.screen {
	case screenLog:
		return keyHint("j/k", "scroll") + "  " + keyHint("PgUp/PgDn", "page") + "  " + keyHint("Esc", "back")
	default:
		return keyHint("j/k", "navigate") + "  " + keyHint("Enter", "select") + "  " +
			keyHint("1-6", "direct") + "  " + keyHint("?", "help") + "  " + keyHint("q", "exit")
	}
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}
