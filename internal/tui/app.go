package tui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/scrawlboard/scrawl/internal/board"
	"github.com/scrawlboard/scrawl/internal/logging"
	"github.com/scrawlboard/scrawl/internal/tui/components"
	"github.com/scrawlboard/scrawl/internal/tui/styles"
)

// Config configures the TUI.
type Config struct {
	Store *board.Store
	Theme string
}

// Run launches the TUI against the given store with default settings.
func Run(store *board.Store) error {
	return RunWithConfig(Config{Store: store})
}

// RunWithConfig launches the TUI program and blocks until it exits.
func RunWithConfig(cfg Config) error {
	if cfg.Store == nil {
		return errors.New("board store is required")
	}

	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())

	subscriberID := "tui-" + uuid.NewString()
	if err := cfg.Store.Subscribe(subscriberID, &storeSubscriber{program: program}); err != nil {
		return err
	}
	defer func() {
		_ = cfg.Store.Unsubscribe(subscriberID)
	}()

	_, err := program.Run()
	return err
}

const (
	minWidth  = 48
	minHeight = 14

	// Transition lengths. All cosmetic; input is handled synchronously
	// and never waits for an animation.
	iconInvertDuration = 400 * time.Millisecond
	drawerDuration     = 100 * time.Millisecond
	borderFadeDuration = 100 * time.Millisecond

	frameInterval = time.Second / 30
)

type model struct {
	width  int
	height int
	styles styles.Styles
	store  *board.Store
	logger zerolog.Logger
	now    time.Time

	// Cosmetic transition state. The selections themselves live in the
	// store; these only track how far each visual change has settled.
	iconInvert   transition
	drawerReveal transition
	borderFade   transition
	lastColor    board.Color

	lastAction board.Action
}

func newModel(cfg Config) model {
	now := time.Now()

	snapshot := cfg.Store.State()
	reveal := 0.0
	if snapshot.DrawerVisible {
		reveal = 1
	}

	return model{
		styles:       styles.ForTheme(cfg.Theme),
		store:        cfg.Store,
		logger:       logging.Component("tui"),
		now:          now,
		iconInvert:   newTransition(1),
		drawerReveal: newTransition(reveal),
		borderFade:   newTransition(1),
		lastColor:    snapshot.Color,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StateChangeMsg:
		m.applyChange(board.StateChange(msg))
		return m, m.animateCmd()
	case ActionMsg:
		m.lastAction = board.Action(msg)
	case frameMsg:
		m.now = time.Time(msg)
		return m, m.animateCmd()
	}
	return m, nil
}

// handleKey processes one input event. Each event updates at most one
// state value; the derived drawer visibility is recomputed inside the
// same store commit.
func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}

	for _, tool := range board.Tools() {
		if key == tool.Key() {
			if err := m.store.SelectTool(tool); err != nil {
				m.logger.Error().Err(err).Msg("tool selection failed")
			}
			return m, nil
		}
	}

	if index, err := strconv.Atoi(key); err == nil {
		// Hidden controls accept no input: color shortcuts are dead
		// while the drawer is hidden.
		if !m.store.DrawerVisible() {
			return m, nil
		}
		colors := board.Colors()
		if index >= 1 && index <= len(colors) {
			if err := m.store.SelectColor(colors[index-1]); err != nil {
				m.logger.Error().Err(err).Msg("color selection failed")
			}
		}
		return m, nil
	}

	if action, ok := components.ActionForKey(key); ok {
		if err := m.store.Dispatch(action); err != nil {
			m.logger.Error().Err(err).Msg("action dispatch failed")
		}
		return m, nil
	}

	return m, nil
}

// applyChange retargets the cosmetic transitions after a store commit.
// Changes arriving mid-transition redirect the in-flight animation; they
// never queue.
func (m *model) applyChange(change board.StateChange) {
	now := time.Now()
	m.now = now

	if change.Tool != change.PreviousTool {
		m.iconInvert.Restart(0, 1, iconInvertDuration, now)

		target := 0.0
		if change.DrawerVisible {
			target = 1
		}
		m.drawerReveal.Retarget(target, drawerDuration, now)
	}

	if change.Color != m.lastColor {
		m.borderFade.Restart(0, 1, borderFadeDuration, now)
		m.lastColor = change.Color
	}
}

func (m model) animateCmd() tea.Cmd {
	if m.settled(m.now) {
		return nil
	}
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) settled(now time.Time) bool {
	return m.iconInvert.Done(now) && m.drawerReveal.Done(now) && m.borderFade.Done(now)
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render("scrawl"),
			m.styles.Muted.Render(fmt.Sprintf("Terminal too small (%dx%d), need %dx%d.", m.width, m.height, minWidth, minHeight)),
			m.styles.Muted.Render("Press q to quit."),
		) + "\n"
	}

	now := m.now
	if now.IsZero() {
		now = time.Now()
	}

	tool := m.store.Tool()
	color := m.store.Color()

	palette := components.RenderToolPalette(m.styles, components.ToolPaletteData{
		Active: tool,
		Invert: m.iconInvert.Value(now),
	})

	drawer := components.RenderColorDrawer(m.styles, components.ColorDrawerData{
		Visible:    m.store.DrawerVisible(),
		Reveal:     m.drawerReveal.Value(now),
		Active:     color,
		BorderFade: m.borderFade.Value(now),
	})

	info := components.RenderInfoPanel(m.styles)

	panels := []string{palette}
	if drawer != "" {
		panels = append(panels, drawer)
	}
	panels = append(panels, info)
	sidebar := styles.VerticalStack(1, panels...)

	surfaceWidth := m.width - lipgloss.Width(sidebar) - 3
	surfaceHeight := m.height - 4
	surface := components.RenderSurface(m.styles, surfaceWidth, surfaceHeight, components.SurfaceData{
		Tool:  tool,
		Color: color,
	})

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", surface)

	status := fmt.Sprintf("tool=%s color=%s", tool, color)
	if m.lastAction != "" {
		status += fmt.Sprintf("  requested=%s", m.lastAction)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("scrawl"),
		body,
		m.styles.Muted.Render(status),
		m.styles.Muted.Render("s/p/e tools | 1-6 pen colors | c clear | q quit"),
	) + "\n"
}

type frameMsg time.Time
