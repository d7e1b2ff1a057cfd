// Package tui implements the interactive menu for controlling the loop.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/antoniofonseca/keepactive-msteams/internal/keeper"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the TUI against the given controller and blocks until exit.
func Run(ctrl Controller) error {
	ref := &programRef{}
	model := NewModel(ctrl, ref)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	// Store program reference so loop events reach the update cycle
	ref.Set(p)
	ctrl.Subscribe(func(ev keeper.Event) {
		ref.Send(LoopEventMsg{Event: ev})
	})

	_, err := p.Run()
	return err
}
