package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/antoniofonseca/keepactive-msteams/internal/keeper"
	"github.com/antoniofonseca/keepactive-msteams/internal/session"
)

// screen values.
const (
	screenMenu = 0
	screenLog  = 1
)

const (
	minWidth  = 60
	minHeight = 16
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	ctrl Controller

	// UI state
	screen      int
	overlay     int
	confirmMode int
	exiting     bool
	width       int
	height      int

	// Loop state as of the last refresh
	snap session.Snapshot

	// Transient one-line feedback under the menu
	feedback string

	// Child components
	menu      *Menu
	logViewer *LogViewer
	form      *IntervalForm

	// Program reference for goroutine Send()
	program *programRef
}

// NewModel creates the initial TUI model.
func NewModel(ctrl Controller, program *programRef) Model {
	return Model{
		ctrl:      ctrl,
		snap:      ctrl.Snapshot(),
		menu:      NewMenu(),
		logViewer: NewLogViewer(ctrl.LogPath()),
		program:   program,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return statusTick()
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case TickMsg:
		m.snap = m.ctrl.Snapshot()
		return m, statusTick()

	case LoopEventMsg:
		cmd := m.handleLoopEvent(msg.Event)
		return m, cmd

	case LogContentMsg:
		m.logViewer.SetContent(msg.Lines, msg.Missing)
		m.screen = screenLog
		return m, nil

	case ClearFeedbackMsg:
		m.feedback = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) handleLoopEvent(ev keeper.Event) tea.Cmd {
	m.snap = m.ctrl.Snapshot()

	switch ev.Type {
	case keeper.EventWindowMissing:
		return m.setFeedback(fmt.Sprintf("%s window not found. Retrying...", m.ctrl.WindowTitle()))
	case keeper.EventInteractionError:
		return m.setFeedback(fmt.Sprintf("Interaction failed: %v", ev.Err))
	case keeper.EventStopped:
		if m.exiting {
			return m.doQuit()
		}
	}
	return nil
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Confirm mode captures everything
	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}

	// Overlays capture everything
	if m.overlay == overlayInterval {
		return m.handleIntervalKey(msg)
	}
	if m.overlay == overlayHelp {
		if key.Matches(msg, confirmKeys.Cancel) || key.Matches(msg, globalKeys.Help) {
			m.overlay = overlayNone
		}
		return nil
	}

	// The log screen owns its keys; q there means back, not exit.
	if m.screen == screenLog {
		if msg.Type == tea.KeyCtrlC {
			return m.requestExit()
		}
		return m.handleLogKey(msg)
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m.requestExit()
	case key.Matches(msg, globalKeys.Help):
		m.overlay = overlayHelp
		return nil
	}

	return m.handleMenuKey(msg)
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, menuKeys.Up):
		m.menu.MoveUp()
		return nil
	case key.Matches(msg, menuKeys.Down):
		m.menu.MoveDown()
		return nil
	case key.Matches(msg, menuKeys.Enter):
		return m.runAction(m.menu.Selected())
	}

	// Digit shortcuts run the entry directly.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '6' {
		if m.menu.Select(int(s[0] - '1')) {
			return m.runAction(m.menu.Selected())
		}
	}
	return nil
}

func (m *Model) handleLogKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, logKeys.Back):
		m.screen = screenMenu
		return nil
	case key.Matches(msg, logKeys.Up):
		m.logViewer.MoveUp()
	case key.Matches(msg, logKeys.Down):
		m.logViewer.MoveDown()
	case key.Matches(msg, logKeys.PageUp):
		m.logViewer.PageUp()
	case key.Matches(msg, logKeys.PageDown):
		m.logViewer.PageDown()
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		m.confirmMode = confirmNone
		m.exiting = true
		if err := m.ctrl.Stop(); err != nil {
			// The loop already wound down on its own.
			return m.doQuit()
		}
		return m.setFeedback("Exiting. The script will stop.")
	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		m.confirmMode = confirmNone
	}
	return nil
}

func (m *Model) handleIntervalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, formKeys.Cancel):
		m.overlay = overlayNone
		m.form = nil
		return nil

	case key.Matches(msg, formKeys.Submit):
		seconds, ok := m.form.Value()
		if !ok {
			return nil
		}
		if err := m.ctrl.SetInterval(seconds); err != nil {
			if errors.Is(err, session.ErrIntervalLocked) {
				m.form.SetError("Cannot modify interval while the script is running or paused.")
			} else {
				m.form.SetError(err.Error())
			}
			return nil
		}
		m.overlay = overlayNone
		m.form = nil
		m.snap = m.ctrl.Snapshot()
		return m.setFeedback(fmt.Sprintf("Interval set to %d seconds.", seconds))
	}

	// Forward to the text input
	ti := m.form.Input()
	newTI, _ := ti.Update(msg)
	*ti = newTI
	return nil
}

// ── Menu actions ─────────────────────────────────────────────────

func (m *Model) runAction(action menuAction) tea.Cmd {
	switch action {
	case actionStart:
		if err := m.ctrl.Start(); err != nil {
			if errors.Is(err, session.ErrAlreadyRunning) {
				return m.setFeedback("The script is already running.")
			}
			return m.setFeedback(err.Error())
		}
		m.snap = m.ctrl.Snapshot()
		return nil

	case actionStop:
		if err := m.ctrl.Stop(); err != nil {
			if errors.Is(err, session.ErrNotRunning) {
				return m.setFeedback("The script is not running.")
			}
			return m.setFeedback(err.Error())
		}
		return m.setFeedback("Stop file created. Script will stop soon.")

	case actionShowLog:
		return loadLogCmd(m.ctrl.LogPath())

	case actionInterval:
		if m.snap.Phase != session.PhaseStopped {
			return m.setFeedback("Cannot modify interval while the script is running or paused.")
		}
		m.form = NewIntervalForm(m.snap.IntervalSeconds())
		m.overlay = overlayInterval
		return nil

	case actionPauseResume:
		switch m.snap.Phase {
		case session.PhaseRunning:
			if err := m.ctrl.Pause(); err != nil {
				return m.setFeedback(err.Error())
			}
			m.snap = m.ctrl.Snapshot()
			return m.setFeedback("Script paused.")
		case session.PhasePaused:
			if err := m.ctrl.Resume(); err != nil {
				return m.setFeedback(err.Error())
			}
			m.snap = m.ctrl.Snapshot()
			return m.setFeedback("Script resumed.")
		default:
			return m.setFeedback("Script is not running. Cannot pause/resume.")
		}

	case actionExit:
		return m.requestExit()
	}
	return nil
}

// requestExit quits outright when stopped; a live loop needs confirmation
// and a clean stop first.
func (m *Model) requestExit() tea.Cmd {
	if m.snap.Phase != session.PhaseStopped {
		m.confirmMode = confirmExit
		return nil
	}
	return m.doQuit()
}

func (m *Model) setFeedback(text string) tea.Cmd {
	m.feedback = text
	return clearFeedbackAfter(5 * time.Second)
}

// doQuit clears the program reference and quits.
func (m *Model) doQuit() tea.Cmd {
	m.program.Clear()
	return tea.Quit
}

// ── Dimension helpers ────────────────────────────────────────────

func (m *Model) updateDimensions() {
	bodyHeight := m.height - 2 // header + status bar
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.logViewer.SetSize(m.width, bodyHeight)
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					fmt.Sprintf("Need %dx%d, have ", minWidth, minHeight)+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	header := renderHeader(m.ctrl.WindowTitle(), m.snap, m.width)
	statusBar := renderStatusBar(&m, m.width)

	var body string
	switch m.screen {
	case screenLog:
		body = m.logViewer.View()
	default:
		body = "\n" + renderStatusBlock(m.snap) + "\n\n" + m.menu.View(m.width)
	}

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.NewStyle().Width(m.width).Height(bodyHeight).Render(body)

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)

	if m.overlay != overlayNone {
		var content string
		switch m.overlay {
		case overlayHelp:
			content = renderHelp(m.width)
		case overlayInterval:
			if m.form != nil {
				content = m.form.View()
			}
		}
		if content != "" {
			view = renderOverlay(view, content, m.width, m.height)
		}
	}

	return view
}
