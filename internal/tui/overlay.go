package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay constants.
const (
	overlayNone = iota
	overlayHelp
	overlayInterval
)

// renderOverlay centers content on top of the base view, dimming the rest.
func renderOverlay(base, content string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range baseLines {
		baseLines[i] = overlayDimStyle.Render(line)
	}

	contentLines := strings.Split(content, "\n")
	contentWidth := 0
	for _, l := range contentLines {
		if w := lipgloss.Width(l); w > contentWidth {
			contentWidth = w
		}
	}

	top := (height - len(contentLines)) / 2
	left := (width - contentWidth) / 2
	if top < 1 {
		top = 1
	}
	if left < 1 {
		left = 1
	}

	for i, line := range contentLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		baseLines[row] = spliceLine(baseLines[row], line, left)
	}

	return strings.Join(baseLines, "\n")
}

// spliceLine lays an overlay line over a background line starting at the
// given column, using ANSI-aware cuts so styling on either side survives.
func spliceLine(bg, line string, left int) string {
	bgWidth := lipgloss.Width(bg)

	leftPart := ansi.Truncate(bg, left, "")

	rightPart := ""
	rightStart := left + lipgloss.Width(line)
	if rightStart < bgWidth {
		rightPart = ansi.Cut(bg, rightStart, bgWidth)
	}

	return leftPart + "\033[0m" + line + "\033[0m" + rightPart
}
