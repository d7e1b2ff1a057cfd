package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// LogViewer displays the activity log on its own screen.
type LogViewer struct {
	viewport viewport.Model
	path     string
	missing  bool
	loaded   bool
	width    int
	height   int
}

// NewLogViewer creates a new log viewer.
func NewLogViewer(path string) *LogViewer {
	return &LogViewer{
		viewport: viewport.New(80, 24),
		path:     path,
	}
}

// SetSize updates dimensions.
func (l *LogViewer) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.viewport.Width = width
	vpHeight := height - headerLines
	if vpHeight < 1 {
		vpHeight = 1
	}
	l.viewport.Height = vpHeight
}

// SetContent loads fresh log content and jumps to the end, where the most
// recent entries are.
func (l *LogViewer) SetContent(lines []string, missing bool) {
	l.loaded = true
	l.missing = missing
	l.viewport.SetContent(strings.Join(lines, "\n"))
	l.viewport.GotoBottom()
}

// MoveUp scrolls up one line.
func (l *LogViewer) MoveUp() {
	l.viewport.LineUp(1)
}

// MoveDown scrolls down one line.
func (l *LogViewer) MoveDown() {
	l.viewport.LineDown(1)
}

// PageUp scrolls up half a screen.
func (l *LogViewer) PageUp() {
	l.viewport.HalfViewUp()
}

// PageDown scrolls down half a screen.
func (l *LogViewer) PageDown() {
	l.viewport.HalfViewDown()
}

// The detail header occupies three rows: title, divider, spacer.
const headerLines = 3

// View renders the log screen.
func (l *LogViewer) View() string {
	dividerWidth := l.width
	if dividerWidth < 1 {
		dividerWidth = 1
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("Activity Log")
	pathLine := lipgloss.NewStyle().Foreground(colorDim).Render(l.path)
	divider := lipgloss.NewStyle().Foreground(colorDim).Render(strings.Repeat("─", dividerWidth))

	header := title + "  " + pathLine + "\n" + divider + "\n"

	if !l.loaded {
		return header + lipgloss.NewStyle().Foreground(colorDim).Render("Loading log...")
	}
	if l.missing {
		return header + lipgloss.NewStyle().Foreground(colorDim).Render("Log file does not exist. No logs to display.")
	}
	return header + l.viewport.View()
}
