package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tapsnake/internal/core"
	"github.com/vovakirdan/tapsnake/internal/games/snake"
)

// KeyMap holds the keyboard fallbacks for tapping. Every binding is turned
// into a synthetic tap so the game sees a single input path.
type KeyMap struct {
	TurnLeft   key.Binding
	TurnRight  key.Binding
	Pause      key.Binding
	Start      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TurnLeft: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "turn right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TurnLeft, k.TurnRight, k.Pause, k.Start, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TurnLeft, k.TurnRight},
		{k.Pause, k.Start, k.Quit, k.Screenshot},
	}
}

// TapFor translates a key into the tap a touchscreen player would make on
// a w x h screen. ok is false when the key means nothing in the current
// state. Turn taps land on the bottom row, away from the pause button.
func (k KeyMap) TapFor(msg tea.KeyMsg, g *snake.Game, w, h int) (ev core.PointerEvent, ok bool) {
	st := g.State()
	bottom := h - 1

	switch {
	case key.Matches(msg, k.Start):
		if !st.AwaitingStart() {
			return ev, false
		}
		return core.Tap(w/2, h/2), true

	case key.Matches(msg, k.Pause):
		if st.AwaitingStart() {
			return ev, false
		}
		btn, drawn := g.PauseButton()
		if !drawn || btn.Empty() {
			return ev, false
		}
		x, y := btn.Center()
		return core.Tap(x, y), true

	case key.Matches(msg, k.TurnLeft):
		return core.Tap(0, bottom), true

	case key.Matches(msg, k.TurnRight):
		return core.Tap(w-1, bottom), true
	}
	return ev, false
}
