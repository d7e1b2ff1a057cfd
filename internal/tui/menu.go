package tui

import (
	"fmt"
	"strings"
)

// menuAction identifies what a menu entry does.
type menuAction int

const (
	actionStart menuAction = iota
	actionStop
	actionShowLog
	actionInterval
	actionPauseResume
	actionExit
)

type menuItem struct {
	title  string
	desc   string
	action menuAction
}

var menuItems = []menuItem{
	{"Start Script", "Begin the process to keep the MS Teams window active.", actionStart},
	{"Stop Script", "Stop the script by creating the control file.", actionStop},
	{"Display Log", "Show the current log content.", actionShowLog},
	{"Modify Interval", "Change the interval time in seconds.", actionInterval},
	{"Pause/Resume Script", "Pause or resume the script.", actionPauseResume},
	{"Exit", "Exit the script.", actionExit},
}

// Menu is the fixed action list on the main screen.
type Menu struct {
	cursor int
}

// NewMenu creates the menu with the first entry selected.
func NewMenu() *Menu {
	return &Menu{}
}

// MoveUp moves the cursor up.
func (m *Menu) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor down.
func (m *Menu) MoveDown() {
	if m.cursor < len(menuItems)-1 {
		m.cursor++
	}
}

// Select moves the cursor to the given entry. Reports whether idx is valid.
func (m *Menu) Select(idx int) bool {
	if idx < 0 || idx >= len(menuItems) {
		return false
	}
	m.cursor = idx
	return true
}

// Selected returns the action under the cursor.
func (m *Menu) Selected() menuAction {
	return menuItems[m.cursor].action
}

// View renders the menu.
func (m *Menu) View(width int) string {
	var lines []string
	for i, item := range menuItems {
		number := menuNumberStyle.Render(fmt.Sprintf("%d.", i+1))
		title := menuTitleStyle.Render(item.title)
		desc := menuDescStyle.Render(item.desc)

		line := fmt.Sprintf(" %s %s  %s", number, title, desc)
		if i == m.cursor {
			line = selectedItemStyle.Width(width).Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
