package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// IntervalForm is the overlay for changing the interval.
type IntervalForm struct {
	input  textinput.Model
	errMsg string
}

// NewIntervalForm creates the form prefilled with the current interval.
func NewIntervalForm(current int) *IntervalForm {
	ti := textinput.New()
	ti.CharLimit = 6
	ti.Width = 10
	ti.SetValue(strconv.Itoa(current))
	ti.Focus()
	return &IntervalForm{input: ti}
}

// Input returns the text input model for Update forwarding.
func (f *IntervalForm) Input() *textinput.Model {
	return &f.input
}

// Value parses and validates the entered interval. On failure it records
// the error for display and returns ok=false.
func (f *IntervalForm) Value() (seconds int, ok bool) {
	raw := strings.TrimSpace(f.input.Value())
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		f.errMsg = "Invalid input. Interval must be a positive integer."
		return 0, false
	}
	f.errMsg = ""
	return n, true
}

// SetError shows an error line under the input.
func (f *IntervalForm) SetError(msg string) {
	f.errMsg = msg
}

// View renders the form overlay content.
func (f *IntervalForm) View() string {
	title := overlayTitleStyle.Render("Modify Interval")
	label := formLabelStyle.Render("Enter new interval time in seconds (positive integer):")

	lines := []string{title, label, "", f.input.View()}
	if f.errMsg != "" {
		lines = append(lines, "", formErrorStyle.Render(f.errMsg))
	}
	lines = append(lines, "", overlayDimStyle.Render("Enter to apply · Esc to cancel"))

	return overlayStyle.Render(strings.Join(lines, "\n"))
}
