package snake

import (
	"strconv"

	"github.com/vovakirdan/tapsnake/internal/core"
)

// HUD text shown by Draw.
const (
	PauseLabel  = "Pause"
	ResumeLabel = "Resume"
	TapToPlay   = "Tap to Play"
	BoardFull   = "Board full"
)

var (
	hudStyle    = core.TextStyle{Color: core.ColorBrightWhite, Size: core.TextNormal}
	buttonFill  = core.TextStyle{Color: core.ColorGray, Size: core.TextSmall}
	buttonText  = core.TextStyle{Color: core.ColorBrightWhite, Size: core.TextSmall}
	promptStyle = core.TextStyle{Color: core.ColorBrightWhite, Size: core.TextLarge}
)

// Draw renders one frame. It runs every loop iteration whether or not the
// simulation advanced, and also publishes the pause button rectangle used
// to hit-test taps. Loop context only.
func (g *Game) Draw(s core.Surface) {
	if !s.IsReady() {
		return
	}
	c := s.BeginFrame()
	defer s.EndFrame(c)

	st := g.State()
	w, h := g.cfg.ScreenW, g.cfg.ScreenH
	l := g.layout

	c.DrawBackground()

	c.DrawText(strconv.Itoa(g.score), l.Margin, l.TextY, hudStyle)
	if l.Label != "" {
		lw := c.MeasureText(l.Label, hudStyle)
		c.DrawText(l.Label, w-lw-l.Margin, l.TextY, hudStyle)
	}

	g.drawApple(c)
	g.drawSnake(c)

	// The button is resized every frame to fit its label.
	label := ResumeLabel
	if st == StateRunning {
		label = PauseLabel
	}
	tw := c.MeasureText(label, buttonText)
	btn := core.NewRect(w/2-tw/2-l.ButtonPadding, l.ButtonY, tw+2*l.ButtonPadding, l.ButtonHeight)
	g.button.Store(&btn)
	c.FillRect(btn, buttonFill)
	c.DrawText(label, btn.X+l.ButtonPadding, btn.Y+btn.H/2, buttonText)

	if st.AwaitingStart() {
		prompt := TapToPlay
		if st == StateBoardFull {
			prompt = BoardFull + " - " + TapToPlay
		}
		pw := c.MeasureText(prompt, promptStyle)
		c.DrawText(prompt, (w-pw)/2, h/2, promptStyle)
	}
}

func (g *Game) drawApple(c core.Canvas) {
	loc := g.apple.Location()
	if !g.grid.Contains(loc) {
		return
	}
	x, y := g.grid.PixelOf(loc)
	c.DrawSprite(core.SpriteApple, x, y)
}

func (g *Game) drawSnake(c core.Canvas) {
	for i, seg := range g.snake.segments {
		x, y := g.grid.PixelOf(seg)
		if i == 0 {
			c.DrawSprite(core.HeadSprite(g.snake.heading), x, y)
			continue
		}
		c.DrawSprite(core.SpriteBody, x, y)
	}
}
