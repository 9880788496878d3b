// Package audio plays the game's sound cues through the system speaker.
// The cues are synthesized, so there are no assets to load.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond
)

// Options configures a Player.
type Options struct {
	Enabled bool
	Volume  float64 // Linear gain in [0, 1]
}

// backend is the speaker seam; tests replace it.
type backend struct {
	init   func(sr beep.SampleRate, bufferSize int) error
	play   func(s ...beep.Streamer)
	lock   func()
	unlock func()
	clear  func()
}

var speakerBackend = backend{
	init:   speaker.Init,
	play:   speaker.Play,
	lock:   speaker.Lock,
	unlock: speaker.Unlock,
	clear:  speaker.Clear,
}

// Player plays eat and death cues. Play calls never block the caller and
// are no-ops until Initialize succeeds, so a machine without an audio
// device still runs the game.
type Player struct {
	mu          sync.Mutex
	opts        Options
	mixer       *beep.Mixer
	backend     backend
	initialized bool
}

// NewPlayer creates a player. Call Initialize to open the speaker.
func NewPlayer(opts Options) *Player {
	return &Player{
		opts:    opts,
		mixer:   &beep.Mixer{},
		backend: speakerBackend,
	}
}

// Initialize opens the speaker and starts the mixer. It does nothing when
// audio is disabled or already initialized.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.opts.Enabled || p.initialized {
		return nil
	}
	if err := p.backend.init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	p.backend.play(p.mixer)
	p.initialized = true
	return nil
}

// Ready reports whether cues will be heard.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayEat plays the apple cue.
func (p *Player) PlayEat() {
	p.add(func() beep.Streamer { return eatSound(sampleRate, p.opts.Volume) })
}

// PlayDeath plays the crash cue.
func (p *Player) PlayDeath() {
	p.add(func() beep.Streamer { return deathSound(sampleRate, p.opts.Volume) })
}

func (p *Player) add(build func() beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := build()
	p.backend.lock()
	p.mixer.Add(s)
	p.backend.unlock()
}

// Close silences any playing cue. The player can be initialized again.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.backend.lock()
	p.mixer.Clear()
	p.backend.unlock()
	p.backend.clear()
	p.initialized = false
}

// Nop discards every cue. SSH sessions use it since the speaker belongs to
// the server host.
type Nop struct{}

func (Nop) PlayEat()   {}
func (Nop) PlayDeath() {}
