package board

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/scrawlboard/scrawl/internal/logging"
)

// Store errors.
var (
	ErrUnknownTool        = errors.New("unknown tool")
	ErrUnknownColor       = errors.New("unknown color")
	ErrUnknownAction      = errors.New("unknown action")
	ErrSubscriberRequired = errors.New("subscriber is required")
	ErrSubscriberExists   = errors.New("subscriber already registered")
	ErrSubscriberUnknown  = errors.New("subscriber not registered")
)

// StateChange describes one committed selection update. DrawerVisible is
// derived from the tool at commit time and never stored independently.
type StateChange struct {
	PreviousTool  Tool
	Tool          Tool
	Color         Color
	DrawerVisible bool
	Timestamp     time.Time
}

// Action is an auxiliary request forwarded to the drawing engine. The
// control surface never executes these itself.
type Action string

// Available actions.
const (
	ActionClear Action = "clear"
	ActionUndo  Action = "undo"
	ActionRedo  Action = "redo"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionClear, ActionUndo, ActionRedo:
		return true
	}
	return false
}

// Subscriber receives selection updates and action requests. The drawing
// engine registers one to pick stroke shape and color; the TUI registers
// one to observe changes made by other writers.
type Subscriber interface {
	OnStateChange(change StateChange)
	OnAction(action Action)
}

// Store is the single state store for the control surface. Tool and color
// each have exactly one writer path; writes and the derived-visibility
// recomputation commit atomically under one lock.
type Store struct {
	mu          sync.Mutex
	tool        Tool
	color       Color
	subscribers map[string]Subscriber
	logger      zerolog.Logger
}

// NewStore creates a store with the given startup selections. Both groups
// must have exactly one valid default; a miss here is a configuration
// error and refuses to start rather than rendering an inconsistent UI.
func NewStore(defaultTool Tool, defaultColor Color) (*Store, error) {
	if err := ValidatePalette(); err != nil {
		return nil, err
	}
	if !defaultTool.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, defaultTool)
	}
	if !defaultColor.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, defaultColor)
	}

	return &Store{
		tool:        defaultTool,
		color:       defaultColor,
		subscribers: make(map[string]Subscriber),
		logger:      logging.Component("board"),
	}, nil
}

// Tool returns the active tool.
func (s *Store) Tool() Tool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tool
}

// Color returns the active pen color. The value is meaningful to the
// engine only while the pen is active, but it persists across tool
// switches.
func (s *Store) Color() Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color
}

// DrawerVisible reports whether the pen color drawer is shown. Derived
// from the tool, never stored.
func (s *Store) DrawerVisible() bool {
	return s.Tool() == ToolPen
}

// State returns the current selections as a StateChange snapshot.
func (s *Store) State() StateChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changeLocked(s.tool)
}

// SelectTool activates the tool and deselects the previous one in the
// same atomic operation. Re-selecting the active tool is a no-op.
func (s *Store) SelectTool(tool Tool) error {
	if !tool.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}

	s.mu.Lock()
	if s.tool == tool {
		s.mu.Unlock()
		return nil
	}
	previous := s.tool
	s.tool = tool
	change := s.changeLocked(previous)
	subscribers := s.subscribersLocked()
	s.mu.Unlock()

	s.logger.Debug().
		Str("tool", string(tool)).
		Str("previous", string(previous)).
		Bool("drawer", change.DrawerVisible).
		Msg("tool selected")

	for _, subscriber := range subscribers {
		subscriber.OnStateChange(change)
	}
	return nil
}

// SelectColor activates the pen color with the same single-active-entry
// guarantee as SelectTool. The tool, and therefore the drawer visibility,
// is unaffected.
func (s *Store) SelectColor(color Color) error {
	if !color.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColor, color)
	}

	s.mu.Lock()
	if s.color == color {
		s.mu.Unlock()
		return nil
	}
	s.color = color
	change := s.changeLocked(s.tool)
	subscribers := s.subscribersLocked()
	s.mu.Unlock()

	s.logger.Debug().Str("color", string(color)).Msg("pen color selected")

	for _, subscriber := range subscribers {
		subscriber.OnStateChange(change)
	}
	return nil
}

// Dispatch forwards an action request to all subscribers.
func (s *Store) Dispatch(action Action) error {
	if !action.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	s.mu.Lock()
	subscribers := s.subscribersLocked()
	s.mu.Unlock()

	s.logger.Debug().Str("action", string(action)).Msg("action dispatched")

	for _, subscriber := range subscribers {
		subscriber.OnAction(action)
	}
	return nil
}

// Subscribe registers a subscriber under the given ID.
func (s *Store) Subscribe(id string, subscriber Subscriber) error {
	if id == "" || subscriber == nil {
		return ErrSubscriberRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.subscribers[id]; exists {
		return fmt.Errorf("%w: %q", ErrSubscriberExists, id)
	}
	s.subscribers[id] = subscriber
	return nil
}

// Unsubscribe removes a previously registered subscriber.
func (s *Store) Unsubscribe(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.subscribers[id]; !exists {
		return fmt.Errorf("%w: %q", ErrSubscriberUnknown, id)
	}
	delete(s.subscribers, id)
	return nil
}

func (s *Store) changeLocked(previous Tool) StateChange {
	return StateChange{
		PreviousTool:  previous,
		Tool:          s.tool,
		Color:         s.color,
		DrawerVisible: s.tool == ToolPen,
		Timestamp:     time.Now().UTC(),
	}
}

func (s *Store) subscribersLocked() []Subscriber {
	subscribers := make([]Subscriber, 0, len(s.subscribers))
	for _, subscriber := range s.subscribers {
		subscribers = append(subscribers, subscriber)
	}
	return subscribers
}
