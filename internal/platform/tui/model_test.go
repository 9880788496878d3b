package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tapsnake/internal/core"
	"github.com/vovakirdan/tapsnake/internal/games/snake"
)

var epoch = time.Unix(1_700_000_000, 0)

type fixture struct {
	game    *snake.Game
	loop    *snake.Loop
	surface *Surface
	model   Model
}

// newFixture builds a 20x10 game with one cell per block and draws one
// frame so the pause button is published. The loop is not started; tests
// step the game themselves.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1}
	game, err := snake.New(cfg, snake.Options{BlocksWide: 20})
	if err != nil {
		t.Fatalf("snake.New() error: %v", err)
	}
	surface := NewSurface(cfg.ScreenW, cfg.ScreenH, game.Grid().BlockSize)
	loop := snake.NewLoop(game, surface, snake.LoopOptions{})
	game.Draw(surface)
	<-surface.Frames()
	return &fixture{
		game:    game,
		loop:    loop,
		surface: surface,
		model:   NewModel(game, loop, surface, nil),
	}
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	m, cmd := f.model.Update(msg)
	f.model = m.(Model)
	return cmd
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestMouseReleaseStartsGame(t *testing.T) {
	f := newFixture(t)

	f.send(tea.MouseMsg{X: 3, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	f.game.Step(epoch)
	if f.game.State() != snake.StateNotStarted {
		t.Fatal("a press alone must not start the game")
	}

	f.send(release(3, 5))
	f.game.Step(epoch)
	if f.game.State() != snake.StateRunning {
		t.Fatalf("State() = %v after a tap, expected running", f.game.State())
	}
}

func TestMouseReleaseTurns(t *testing.T) {
	f := newFixture(t)
	f.send(release(3, 5))
	f.game.Step(epoch)

	f.send(release(15, 5))
	f.game.Step(epoch.Add(10 * time.Millisecond))
	if got := f.game.Snapshot().Heading; got != core.DirDown {
		t.Errorf("Heading = %v after right-half tap, expected down", got)
	}
}

func TestMouseOnFooterIgnored(t *testing.T) {
	f := newFixture(t)
	f.send(release(3, 10)) // help row
	f.game.Step(epoch)
	if f.game.State() != snake.StateNotStarted {
		t.Error("tap on the help footer reached the game")
	}
}

func TestFrameMsgUpdatesView(t *testing.T) {
	f := newFixture(t)
	cmd := f.send(FrameMsg("frame-1"))
	if cmd == nil {
		t.Error("expected a command waiting for the next frame")
	}
	if got := f.model.View(); len(got) < len("frame-1") || got[:7] != "frame-1" {
		t.Errorf("View() = %q, expected the frame first", got)
	}
}

func TestQuitStopsSurface(t *testing.T) {
	f := newFixture(t)
	cmd := f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if f.surface.IsReady() {
		t.Error("surface still ready after quit")
	}
	if f.model.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestSurfaceCloseQuits(t *testing.T) {
	f := newFixture(t)
	f.surface.Close()

	msg := waitForFrame(f.surface)()
	if _, ok := msg.(surfaceClosedMsg); !ok {
		t.Fatalf("waitForFrame() = %T, expected surfaceClosedMsg", msg)
	}
	cmd := f.send(msg)
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("closed surface should quit the program")
	}
}
