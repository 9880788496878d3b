// Package snake implements the snake simulation and its controller.
// The controller is split between two contexts: HandlePointer and the
// read-only queries may be called from the platform's input goroutine,
// while Step and Draw belong to the single loop goroutine that owns all
// game state.
package snake

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/tapsnake/internal/core"
)

// DefaultBlocksWide is the number of cells across the screen.
const DefaultBlocksWide = 40

// commandQueueSize bounds the taps buffered between two loop iterations.
const commandQueueSize = 16

// Cues plays audio feedback. Calls must not block the loop.
type Cues interface {
	PlayEat()
	PlayDeath()
}

type silentCues struct{}

func (silentCues) PlayEat()   {}
func (silentCues) PlayDeath() {}

// Layout positions the HUD, in pixels.
type Layout struct {
	Label         string // Fixed text drawn top-right
	Margin        int    // Gap between HUD text and the screen edge
	TextY         int    // Row of the score and label
	ButtonY       int    // Top of the pause button
	ButtonHeight  int
	ButtonPadding int // Horizontal padding around the button label
}

// DefaultLayout returns a layout for a terminal-sized screen.
func DefaultLayout() Layout {
	return Layout{
		Label:         "Eva and Jorge",
		Margin:        1,
		TextY:         0,
		ButtonY:       0,
		ButtonHeight:  1,
		ButtonPadding: 1,
	}
}

// Options configures a Game.
type Options struct {
	BlocksWide int
	Layout     Layout
	Cues       Cues // nil plays nothing
}

type commandKind int

const (
	cmdNewGame commandKind = iota
	cmdPause
	cmdResume
	cmdTurn
)

type command struct {
	kind commandKind
	side core.Side
}

// Game owns the grid, snake, apple and clock and runs one tick at a time.
type Game struct {
	cfg    core.RuntimeConfig
	grid   core.Grid
	layout Layout
	cues   Cues

	snake *Snake
	apple *Apple
	clock *FrameClock

	score      int
	tick       uint64
	totalTicks uint64
	games      int

	// Shared with the input context.
	state    atomic.Int32
	commands chan command
	button   atomic.Pointer[core.Rect]
}

// New creates a game for the given screen. The game starts in
// StateNotStarted and waits for a tap.
func New(cfg core.RuntimeConfig, opts Options) (*Game, error) {
	if opts.BlocksWide == 0 {
		opts.BlocksWide = DefaultBlocksWide
	}
	grid, err := core.NewGrid(cfg.ScreenW, cfg.ScreenH, opts.BlocksWide)
	if err != nil {
		return nil, err
	}
	if opts.Layout == (Layout{}) {
		opts.Layout = DefaultLayout()
	}
	if opts.Cues == nil {
		opts.Cues = silentCues{}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g := &Game{
		cfg:      cfg,
		grid:     grid,
		layout:   opts.Layout,
		cues:     opts.Cues,
		snake:    NewSnake(),
		apple:    NewApple(grid, rng),
		clock:    NewFrameClock(TickPeriod),
		commands: make(chan command, commandQueueSize),
	}
	return g, nil
}

// Grid returns the game's grid.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// State returns the current play state. Safe from any goroutine.
func (g *Game) State() State {
	return State(g.state.Load())
}

func (g *Game) setState(s State) {
	g.state.Store(int32(s))
}

// PauseButton returns the pause button as drawn by the last frame.
// ok is false until the first frame is drawn. Safe from any goroutine.
func (g *Game) PauseButton() (r core.Rect, ok bool) {
	p := g.button.Load()
	if p == nil {
		return core.Rect{}, false
	}
	return *p, true
}

// HandlePointer turns a tap into a request for the loop. It is called from
// the platform's input context and never touches game state directly.
// It returns false if the request was dropped because the queue was full.
func (g *Game) HandlePointer(ev core.PointerEvent) bool {
	if ev.Phase != core.PhaseUp {
		return true
	}

	st := g.State()
	if st.AwaitingStart() {
		// The starting tap is not used for steering.
		return g.send(command{kind: cmdNewGame})
	}

	if btn, ok := g.PauseButton(); ok && btn.Contains(ev.X, ev.Y) {
		if st == StateRunning {
			return g.send(command{kind: cmdPause})
		}
		return g.send(command{kind: cmdResume})
	}

	return g.send(command{kind: cmdTurn, side: g.grid.SideOf(ev.X)})
}

func (g *Game) send(c command) bool {
	select {
	case g.commands <- c:
		return true
	default:
		return false
	}
}

// Step runs one loop iteration at now: pending requests are applied, then
// one update runs if the game is running and a tick is due. It reports
// whether an update ran. The error is non-nil only when the apple could
// not be placed, which leaves the game in StateBoardFull.
func (g *Game) Step(now time.Time) (bool, error) {
	if err := g.drain(now); err != nil {
		return false, err
	}
	if g.State() != StateRunning || !g.clock.Due(now) {
		return false, nil
	}
	return true, g.update()
}

func (g *Game) drain(now time.Time) error {
	for {
		select {
		case c := <-g.commands:
			if err := g.apply(c, now); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (g *Game) apply(c command, now time.Time) error {
	st := g.State()
	switch c.kind {
	case cmdNewGame:
		if st.AwaitingStart() {
			return g.newGame(now)
		}
	case cmdPause:
		if st == StateRunning {
			g.setState(StatePaused)
		}
	case cmdResume:
		if st == StatePaused {
			g.setState(StateRunning)
		}
	case cmdTurn:
		g.snake.SwitchHeading(c.side)
	}
	return nil
}

// newGame resets the snake, places the apple, clears the score and makes
// the first update due immediately.
func (g *Game) newGame(now time.Time) error {
	g.snake.Reset(g.grid)
	g.score = 0
	g.tick = 0
	g.games++
	g.clock.Reset(now)
	if err := g.apple.Spawn(g.snake.Segments()); err != nil {
		g.setState(StateBoardFull)
		return fmt.Errorf("snake: new game on %dx%d grid: %w", g.grid.Width, g.grid.Height, err)
	}
	g.setState(StateRunning)
	return nil
}

// update advances the simulation by one tick. The eat check runs before
// the death check.
func (g *Game) update() error {
	g.tick++
	g.totalTicks++
	g.snake.Move()

	if g.snake.CheckDinner(g.apple.Location()) {
		g.score++
		g.cues.PlayEat()
		if err := g.apple.Spawn(g.snake.Segments()); err != nil {
			g.setState(StateBoardFull)
			return fmt.Errorf("snake: respawn apple at length %d: %w", g.snake.Len(), err)
		}
	}

	if g.snake.DetectDeath(g.grid) {
		g.cues.PlayDeath()
		g.setState(StateDead)
	}
	return nil
}

// Score returns the apples eaten this game. Loop context only.
func (g *Game) Score() int {
	return g.score
}

// GamesStarted returns how many games have been started. Loop context only.
func (g *Game) GamesStarted() int {
	return g.games
}

// TotalTicks returns the updates run across all games. Loop context only.
func (g *Game) TotalTicks() uint64 {
	return g.totalTicks
}

// NextUpdate returns when the next simulation update becomes due.
// Loop context only.
func (g *Game) NextUpdate() time.Time {
	return g.clock.Next()
}
