package tui

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tapsnake/internal/core"
)

// sprite is how a core.Sprite looks on the terminal. A sprite fills its
// whole block with fill; mark goes in the block's center cell.
type sprite struct {
	fill  rune
	mark  rune
	color core.Color
}

var sprites = map[core.Sprite]sprite{
	core.SpriteHeadUp:    {fill: '█', mark: '▲', color: core.ColorBrightGreen},
	core.SpriteHeadRight: {fill: '█', mark: '▶', color: core.ColorBrightGreen},
	core.SpriteHeadDown:  {fill: '█', mark: '▼', color: core.ColorBrightGreen},
	core.SpriteHeadLeft:  {fill: '█', mark: '◀', color: core.ColorBrightGreen},
	core.SpriteBody:      {fill: '█', color: core.ColorGreen},
	core.SpriteApple:     {fill: '●', color: core.ColorRed},
}

const buttonFillRune = '▒'

// Surface implements core.Surface on a terminal. The loop goroutine draws
// into a Screen and EndFrame hands the rendered string to a one-slot
// mailbox that the Bubble Tea goroutine drains; a frame that was never
// read is replaced by the newer one.
type Surface struct {
	screen    *core.Screen
	blockSize int

	frames    chan string
	done      chan struct{}
	ready     atomic.Bool
	closeOnce sync.Once
}

// NewSurface creates a ready surface of w x h cells drawing sprites as
// blockSize x blockSize squares.
func NewSurface(w, h, blockSize int) *Surface {
	if blockSize < 1 {
		blockSize = 1
	}
	s := &Surface{
		screen:    core.NewScreen(w, h),
		blockSize: blockSize,
		frames:    make(chan string, 1),
		done:      make(chan struct{}),
	}
	s.ready.Store(true)
	return s
}

// IsReady reports whether frames are still wanted.
func (s *Surface) IsReady() bool {
	return s.ready.Load()
}

// BeginFrame returns a canvas over the surface's screen.
func (s *Surface) BeginFrame() core.Canvas {
	return canvas{s}
}

// EndFrame renders the screen and publishes it.
func (s *Surface) EndFrame(core.Canvas) {
	s.publish(RenderScreen(s.screen))
}

func (s *Surface) publish(frame string) {
	for {
		select {
		case s.frames <- frame:
			return
		default:
		}
		// Drop the stale frame. The reader may have taken it meanwhile,
		// in which case the next send succeeds.
		select {
		case <-s.frames:
		default:
		}
	}
}

// Frames returns the mailbox of rendered frames.
func (s *Surface) Frames() <-chan string {
	return s.frames
}

// Done is closed by Close.
func (s *Surface) Done() <-chan struct{} {
	return s.done
}

// Close marks the surface not ready and releases readers waiting on Done.
func (s *Surface) Close() {
	s.closeOnce.Do(func() {
		s.ready.Store(false)
		close(s.done)
	})
}

// Screen exposes the backing buffer, e.g. for screenshots. Only read it
// while the loop is stopped.
func (s *Surface) Screen() *core.Screen {
	return s.screen
}

type canvas struct {
	s *Surface
}

func (c canvas) Size() (int, int) {
	return c.s.screen.Width(), c.s.screen.Height()
}

func (c canvas) DrawBackground() {
	c.s.screen.Clear()
}

func (c canvas) DrawSprite(sp core.Sprite, x, y int) {
	look, ok := sprites[sp]
	if !ok {
		return
	}
	b := c.s.blockSize
	c.s.screen.DrawRect(core.NewRect(x, y, b, b), look.fill, look.color)
	if look.mark != 0 {
		c.s.screen.Set(x+b/2, y+b/2, look.mark, core.ColorBlack)
	}
}

func (c canvas) DrawText(text string, x, y int, style core.TextStyle) {
	c.s.screen.DrawText(x, y, text, style.Color)
}

func (c canvas) MeasureText(text string, _ core.TextStyle) int {
	return lipgloss.Width(text)
}

func (c canvas) FillRect(r core.Rect, style core.TextStyle) {
	c.s.screen.DrawRect(r, buttonFillRune, style.Color)
}
