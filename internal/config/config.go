// Package config provides YAML-based configuration loading for tapsnake.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tapsnake/internal/audio"
	"github.com/vovakirdan/tapsnake/internal/games/snake"
)

// Config contains all tunable settings.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Render RenderConfig `yaml:"render"`
	HUD    HUDConfig    `yaml:"hud"`
	Audio  AudioConfig  `yaml:"audio"`
}

// GridConfig sizes the play field.
type GridConfig struct {
	BlocksWide int `yaml:"blocks_wide"` // Cells across the screen
}

// RenderConfig paces the render loop.
type RenderConfig struct {
	FrameRate int `yaml:"frame_rate"` // Frames per second, 0 = unpaced
}

// HUDConfig positions the score, label and pause button.
type HUDConfig struct {
	Label   string       `yaml:"label"`
	Margin  int          `yaml:"margin"`
	TextTop int          `yaml:"text_top"`
	Button  ButtonConfig `yaml:"button"`
}

// ButtonConfig defines the pause button box.
type ButtonConfig struct {
	Top     int `yaml:"top"`
	Height  int `yaml:"height"`
	Padding int `yaml:"padding"`
}

// AudioConfig controls the sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// Validation errors.
var (
	ErrBlocksWide = errors.New("config: grid.blocks_wide must be at least 1")
	ErrFrameRate  = errors.New("config: render.frame_rate must not be negative")
	ErrButton     = errors.New("config: invalid hud.button")
	ErrVolume     = errors.New("config: audio.volume must be within [0, 1]")
)

// maxButtonHeight keeps the button from swallowing the play field.
const maxButtonHeight = 5

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	if c.Grid.BlocksWide < 1 {
		return ErrBlocksWide
	}
	if c.Render.FrameRate < 0 {
		return ErrFrameRate
	}
	b := c.HUD.Button
	if b.Height < 1 || b.Height > maxButtonHeight {
		return fmt.Errorf("%w: height %d not in [1, %d]", ErrButton, b.Height, maxButtonHeight)
	}
	if b.Top < 0 || b.Padding < 0 {
		return fmt.Errorf("%w: top and padding must not be negative", ErrButton)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return ErrVolume
	}
	return nil
}

// Layout converts the HUD settings to the game's layout.
func (c Config) Layout() snake.Layout {
	return snake.Layout{
		Label:         c.HUD.Label,
		Margin:        c.HUD.Margin,
		TextY:         c.HUD.TextTop,
		ButtonY:       c.HUD.Button.Top,
		ButtonHeight:  c.HUD.Button.Height,
		ButtonPadding: c.HUD.Button.Padding,
	}
}

// GameOptions returns the options for snake.New with the given cues.
func (c Config) GameOptions(cues snake.Cues) snake.Options {
	return snake.Options{
		BlocksWide: c.Grid.BlocksWide,
		Layout:     c.Layout(),
		Cues:       cues,
	}
}

// AudioOptions returns the options for audio.NewPlayer.
func (c Config) AudioOptions() audio.Options {
	return audio.Options{
		Enabled: c.Audio.Enabled,
		Volume:  c.Audio.Volume,
	}
}
