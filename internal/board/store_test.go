package board

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type memorySubscriber struct {
	mu      sync.Mutex
	changes []StateChange
	actions []Action
}

func (s *memorySubscriber) OnStateChange(change StateChange) {
	s.mu.Lock()
	s.changes = append(s.changes, change)
	s.mu.Unlock()
}

func (s *memorySubscriber) OnAction(action Action) {
	s.mu.Lock()
	s.actions = append(s.actions, action)
	s.mu.Unlock()
}

func (s *memorySubscriber) lastChange() (StateChange, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.changes) == 0 {
		return StateChange{}, false
	}
	return s.changes[len(s.changes)-1], true
}

func TestNewStoreDefaults(t *testing.T) {
	store, err := NewStore(DefaultTool, DefaultColor)
	require.NoError(t, err)
	require.Equal(t, ToolPen, store.Tool())
	require.Equal(t, ColorBlack, store.Color())
	require.True(t, store.DrawerVisible())
}

func TestStateSnapshot(t *testing.T) {
	store, err := NewStore(ToolEraser, ColorGreen)
	require.NoError(t, err)

	state := store.State()
	require.Equal(t, ToolEraser, state.Tool)
	require.Equal(t, ColorGreen, state.Color)
	require.False(t, state.DrawerVisible)
	// A snapshot is not a transition.
	require.Equal(t, state.Tool, state.PreviousTool)

	require.NoError(t, store.SelectTool(ToolPen))
	state = store.State()
	require.Equal(t, ToolPen, state.Tool)
	require.True(t, state.DrawerVisible)
}

func TestNewStoreRejectsMisconfiguredDefaults(t *testing.T) {
	_, err := NewStore(Tool("spray"), DefaultColor)
	require.ErrorIs(t, err, ErrUnknownTool)

	_, err = NewStore(DefaultTool, Color("magenta"))
	require.ErrorIs(t, err, ErrUnknownColor)
}

func TestSelectToolMutualExclusion(t *testing.T) {
	store, err := NewStore(ToolPen, ColorBlack)
	require.NoError(t, err)

	// After every event in an arbitrary sequence, exactly one tool is
	// active.
	sequence := []Tool{ToolEraser, ToolEraser, ToolSelector, ToolPen, ToolSelector, ToolEraser, ToolPen}
	for _, tool := range sequence {
		require.NoError(t, store.SelectTool(tool))

		active := 0
		for _, candidate := range Tools() {
			if store.Tool() == candidate {
				active++
			}
		}
		require.Equal(t, 1, active)
		require.Equal(t, tool, store.Tool())
	}
}

func TestSelectToolRejectsUnknown(t *testing.T) {
	store, err := NewStore(ToolPen, ColorBlack)
	require.NoError(t, err)

	require.ErrorIs(t, store.SelectTool(Tool("spray")), ErrUnknownTool)
	require.Equal(t, ToolPen, store.Tool())
}

func TestDrawerVisibilityDerivedFromTool(t *testing.T) {
	store, err := NewStore(ToolEraser, ColorBlack)
	require.NoError(t, err)
	require.False(t, store.DrawerVisible())

	for _, tool := range []Tool{ToolPen, ToolSelector, ToolPen, ToolEraser} {
		require.NoError(t, store.SelectTool(tool))
		require.Equal(t, tool == ToolPen, store.DrawerVisible())
	}

	// Color changes never affect visibility.
	require.NoError(t, store.SelectTool(ToolPen))
	for _, color := range Colors() {
		require.NoError(t, store.SelectColor(color))
		require.True(t, store.DrawerVisible())
	}
}

func TestSelectColorMutualExclusion(t *testing.T) {
	store, err := NewStore(ToolPen, ColorBlack)
	require.NoError(t, err)

	for _, color := range []Color{ColorRed, ColorSkyBlue, ColorRed, ColorGreen} {
		require.NoError(t, store.SelectColor(color))
		require.Equal(t, color, store.Color())
		require.Equal(t, color.Token(), store.Color().Token())
	}

	require.ErrorIs(t, store.SelectColor(Color("magenta")), ErrUnknownColor)
	require.Equal(t, ColorGreen, store.Color())
}

// TestToolSwitchScenario walks the full drawer lifecycle: eraser start,
// pen reveal, color pick, hide, and re-reveal with the pick intact.
func TestToolSwitchScenario(t *testing.T) {
	store, err := NewStore(ToolEraser, ColorBlack)
	require.NoError(t, err)
	require.False(t, store.DrawerVisible())

	require.NoError(t, store.SelectTool(ToolPen))
	require.True(t, store.DrawerVisible())
	require.NotEqual(t, ToolEraser, store.Tool())

	require.NoError(t, store.SelectColor(ColorRed))
	require.Equal(t, ColorRed, store.Color())

	require.NoError(t, store.SelectTool(ToolEraser))
	require.False(t, store.DrawerVisible())
	// The color persists while hidden.
	require.Equal(t, ColorRed, store.Color())

	require.NoError(t, store.SelectTool(ToolPen))
	require.True(t, store.DrawerVisible())
	require.Equal(t, ColorRed, store.Color())
}

func TestSubscribersReceiveChanges(t *testing.T) {
	store, err := NewStore(ToolPen, ColorBlack)
	require.NoError(t, err)

	subscriber := &memorySubscriber{}
	require.NoError(t, store.Subscribe("engine", subscriber))

	require.NoError(t, store.SelectTool(ToolEraser))
	change, ok := subscriber.lastChange()
	require.True(t, ok)
	require.Equal(t, ToolPen, change.PreviousTool)
	require.Equal(t, ToolEraser, change.Tool)
	require.False(t, change.DrawerVisible)

	require.NoError(t, store.SelectTool(ToolPen))
	require.NoError(t, store.SelectColor(ColorBlue))
	change, ok = subscriber.lastChange()
	require.True(t, ok)
	require.Equal(t, ColorBlue, change.Color)
	require.True(t, change.DrawerVisible)
	// A color change is not a tool change.
	require.Equal(t, change.Tool, change.PreviousTool)

	require.NoError(t, store.Unsubscribe("engine"))
	require.NoError(t, store.SelectTool(ToolSelector))
	change, _ = subscriber.lastChange()
	require.Equal(t, ColorBlue, change.Color)
	require.Equal(t, ToolPen, change.Tool)
}

func TestReselectingActiveEntryIsNoOp(t *testing.T) {
	store, err := NewStore(ToolPen, ColorBlack)
	require.NoError(t, err)

	subscriber := &memorySubscriber{}
	require.NoError(t, store.Subscribe("engine", subscriber))

	require.NoError(t, store.SelectTool(ToolPen))
	require.NoError(t, store.SelectColor(ColorBlack))

	_, ok := subscriber.lastChange()
	require.False(t, ok)
}

func TestSubscribeValidation(t *testing.T) {
	store, err := NewStore(ToolPen, ColorBlack)
	require.NoError(t, err)

	require.ErrorIs(t, store.Subscribe("", &memorySubscriber{}), ErrSubscriberRequired)
	require.ErrorIs(t, store.Subscribe("engine", nil), ErrSubscriberRequired)

	require.NoError(t, store.Subscribe("engine", &memorySubscriber{}))
	require.ErrorIs(t, store.Subscribe("engine", &memorySubscriber{}), ErrSubscriberExists)

	require.ErrorIs(t, store.Unsubscribe("missing"), ErrSubscriberUnknown)
}

func TestDispatchActions(t *testing.T) {
	store, err := NewStore(ToolPen, ColorBlack)
	require.NoError(t, err)

	subscriber := &memorySubscriber{}
	require.NoError(t, store.Subscribe("engine", subscriber))

	require.NoError(t, store.Dispatch(ActionClear))
	require.NoError(t, store.Dispatch(ActionUndo))
	require.ErrorIs(t, store.Dispatch(Action("explode")), ErrUnknownAction)

	subscriber.mu.Lock()
	defer subscriber.mu.Unlock()
	require.Equal(t, []Action{ActionClear, ActionUndo}, subscriber.actions)
}
