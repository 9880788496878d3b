package core

// RuntimeConfig contains the construction parameters handed to the game by
// the platform. Sizes are in pixels; on a terminal a pixel is one cell.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in pixels
	ScreenH   int   // Screen height in pixels
	FrameRate int   // Render iterations per second, 0 means unpaced
	Seed      int64 // RNG seed for apple placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}
