package core

// Sprite is a handle to a block-sized image the platform knows how to blit.
type Sprite int

const (
	SpriteHeadUp Sprite = iota
	SpriteHeadRight
	SpriteHeadDown
	SpriteHeadLeft
	SpriteBody
	SpriteApple
)

// HeadSprite returns the head image facing d.
func HeadSprite(d Direction) Sprite {
	switch d {
	case DirUp:
		return SpriteHeadUp
	case DirDown:
		return SpriteHeadDown
	case DirLeft:
		return SpriteHeadLeft
	default:
		return SpriteHeadRight
	}
}

// TextSize is a relative font size. Pixel surfaces scale by it;
// the terminal draws every size the same.
type TextSize int

const (
	TextNormal TextSize = iota
	TextSmall
	TextLarge
)

// TextStyle describes how text and filled rectangles are drawn.
type TextStyle struct {
	Color Color
	Size  TextSize
}

// Canvas is the drawing context for one frame.
type Canvas interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)
	DrawBackground()
	DrawSprite(s Sprite, x, y int)
	DrawText(text string, x, y int, style TextStyle)
	MeasureText(text string, style TextStyle) int
	FillRect(r Rect, style TextStyle)
}

// Surface is the render target owned by the platform.
// The loop calls IsReady, BeginFrame and EndFrame once per iteration.
type Surface interface {
	IsReady() bool
	BeginFrame() Canvas
	EndFrame(c Canvas)
}
