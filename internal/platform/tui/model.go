package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tapsnake/internal/core"
	"github.com/vovakirdan/tapsnake/internal/games/snake"
)

// FrameMsg carries a rendered frame from the loop goroutine.
type FrameMsg string

// surfaceClosedMsg is sent once the surface stops producing frames.
type surfaceClosedMsg struct{}

// waitForFrame blocks until the loop publishes a frame or the surface closes.
func waitForFrame(s *Surface) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-s.Frames():
			return FrameMsg(f)
		case <-s.Done():
			return surfaceClosedMsg{}
		}
	}
}

// Model is the Bubble Tea model for one game. Bubble Tea's goroutine is the
// game's input context: it forwards taps and never touches game state.
type Model struct {
	game    *snake.Game
	loop    *snake.Loop
	surface *Surface
	logger  *log.Logger

	keys  KeyMap
	help  help.Model
	frame string

	width, height int
	quitting      bool
}

// NewModel creates a model for a game whose loop draws to surface.
// The surface size is the play area; the help footer takes one more row.
func NewModel(game *snake.Game, loop *snake.Loop, surface *Surface, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := surface.Screen().Width(), surface.Screen().Height()
	return Model{
		game:    game,
		loop:    loop,
		surface: surface,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   w,
		height:  h,
	}
}

// Init starts waiting for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.surface)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.frame = string(msg)
		return m, waitForFrame(m.surface)

	case surfaceClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		if msg.Width != m.width || msg.Height-1 != m.height {
			// The grid is fixed for the life of the game.
			m.logger.Debug("window resized, grid unchanged", "width", msg.Width, "height", msg.Height)
		}
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleMouse turns mouse presses and releases into pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var phase core.Phase
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		phase = core.PhaseDown
	case tea.MouseActionRelease:
		phase = core.PhaseUp
	default:
		return m, nil
	}
	if msg.Y >= m.height {
		// The help footer is not part of the touchscreen.
		return m, nil
	}
	m.dispatch(core.PointerEvent{X: msg.X, Y: msg.Y, Phase: phase})
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if ev, ok := m.keys.TapFor(msg, m.game, m.width, m.height); ok {
		m.dispatch(ev)
	}
	return m, nil
}

func (m Model) dispatch(ev core.PointerEvent) {
	if !m.game.HandlePointer(ev) {
		m.logger.Debug("tap dropped, command queue full", "x", ev.X, "y", ev.Y)
	}
}

// stop halts the loop before the program exits so no frame is drawn
// into a torn-down terminal.
func (m Model) stop() {
	m.loop.Stop()
	m.surface.Close()
}

// saveScreenshot writes the last frame as plain text.
func (m Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".tapsnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot directory", "error", err)
		return
	}
	path := filepath.Join(dir, fmt.Sprintf("tapsnake_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(ansi.Strip(m.frame)), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the latest frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame + "\n" + m.help.View(m.keys)
}

// Run starts the loop and runs the Bubble Tea program until the player
// quits. The loop is always stopped before Run returns.
func Run(ctx context.Context, game *snake.Game, loop *snake.Loop, surface *Surface, logger *log.Logger) error {
	if err := loop.Start(ctx); err != nil {
		return fmt.Errorf("tui: start loop: %w", err)
	}
	defer func() {
		loop.Stop()
		surface.Close()
	}()

	p := tea.NewProgram(
		NewModel(game, loop, surface, logger),
		tea.WithContext(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Taps arrive as mouse releases
	)

	_, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: run program: %w", err)
	}
	return nil
}
