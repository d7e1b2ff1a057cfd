package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})
)

// Status block styles.
var (
	statusLabelStyle = lipgloss.NewStyle().
				Width(18).
				Foreground(colorDim)

	statusRunningStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	statusPausedStyle  = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	statusStoppedStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)

	statusValueStyle = lipgloss.NewStyle().Foreground(colorWhite)
)

// Menu styles.
var (
	menuNumberStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	menuDescStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Key hint styles for the status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Badge styles for the header.
var (
	badgeStoppedStyle = lipgloss.NewStyle().Foreground(colorDim)
	badgeRunningStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	badgePausedStyle  = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// Form styles.
var (
	formLabelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	formErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)
