package core

// Phase is the stage of a pointer gesture.
type Phase int

const (
	PhaseDown Phase = iota
	PhaseUp
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a raw tap delivered by the platform, in pixels.
// The game only reacts to PhaseUp.
type PointerEvent struct {
	X, Y  int
	Phase Phase
}

// Tap builds a pointer release at (x, y).
func Tap(x, y int) PointerEvent {
	return PointerEvent{X: x, Y: y, Phase: PhaseUp}
}
