package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			BlocksWide: 40,
		},
		Render: RenderConfig{
			FrameRate: 60,
		},
		HUD: HUDConfig{
			Label:   "Eva and Jorge",
			Margin:  1,
			TextTop: 0,
			Button: ButtonConfig{
				Top:     0,
				Height:  1,
				Padding: 1,
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}
