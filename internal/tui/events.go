// Package tui implements the scrawl terminal user interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrawlboard/scrawl/internal/board"
)

// StateChangeMsg delivers a committed board state change to the UI loop.
type StateChangeMsg board.StateChange

// ActionMsg delivers a dispatched auxiliary action.
type ActionMsg board.Action

// storeSubscriber bridges the board store to the bubbletea program. The
// UI reacts to store notifications rather than to its own key handling,
// so changes made by any writer animate the same way.
type storeSubscriber struct {
	program *tea.Program
}

// OnStateChange implements board.Subscriber.
func (s *storeSubscriber) OnStateChange(change board.StateChange) {
	if s.program != nil {
		s.program.Send(StateChangeMsg(change))
	}
}

// OnAction implements board.Subscriber.
func (s *storeSubscriber) OnAction(action board.Action) {
	if s.program != nil {
		s.program.Send(ActionMsg(action))
	}
}
