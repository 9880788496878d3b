package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/gopxl/beep"
)

type fakeSpeaker struct {
	initErr error
	inits   int
	played  int
	clears  int
}

func (f *fakeSpeaker) backend() backend {
	return backend{
		init: func(beep.SampleRate, int) error {
			f.inits++
			return f.initErr
		},
		play:   func(s ...beep.Streamer) { f.played += len(s) },
		lock:   func() {},
		unlock: func() {},
		clear:  func() { f.clears++ },
	}
}

func newTestPlayer(opts Options, f *fakeSpeaker) *Player {
	p := NewPlayer(opts)
	p.backend = f.backend()
	return p
}

// drain streams s to completion and returns the sample count and peak.
func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestPlayBeforeInitializeIsNoop(t *testing.T) {
	f := &fakeSpeaker{}
	p := newTestPlayer(Options{Enabled: true, Volume: 1}, f)

	p.PlayEat()
	p.PlayDeath()

	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Initialize, expected 0", p.mixer.Len())
	}
	if p.Ready() {
		t.Error("Ready() = true before Initialize")
	}
}

func TestInitializeFailureIsNonFatal(t *testing.T) {
	f := &fakeSpeaker{initErr: errors.New("no device")}
	p := newTestPlayer(Options{Enabled: true, Volume: 1}, f)

	if err := p.Initialize(); err == nil {
		t.Fatal("Initialize() should report the speaker error")
	}
	p.PlayEat()
	if p.mixer.Len() != 0 || p.Ready() {
		t.Error("cues must stay silent after a failed Initialize")
	}
	if f.played != 0 {
		t.Error("mixer started without a speaker")
	}
}

func TestInitializeDisabled(t *testing.T) {
	f := &fakeSpeaker{}
	p := newTestPlayer(Options{Enabled: false, Volume: 1}, f)

	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if f.inits != 0 {
		t.Error("disabled player opened the speaker")
	}
	p.PlayDeath()
	if p.mixer.Len() != 0 {
		t.Error("disabled player queued a cue")
	}
}

func TestPlayQueuesCues(t *testing.T) {
	f := &fakeSpeaker{}
	p := newTestPlayer(Options{Enabled: true, Volume: 0.5}, f)

	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if err := p.Initialize(); err != nil {
		t.Fatalf("second Initialize() error: %v", err)
	}
	if f.inits != 1 || f.played != 1 {
		t.Fatalf("inits/played = %d/%d, expected 1/1", f.inits, f.played)
	}

	p.PlayEat()
	p.PlayDeath()
	if p.mixer.Len() != 2 {
		t.Errorf("mixer has %d streamers, expected 2", p.mixer.Len())
	}

	p.Close()
	if p.mixer.Len() != 0 {
		t.Error("Close() should clear the mixer")
	}
	if f.clears != 1 {
		t.Errorf("speaker cleared %d times, expected 1", f.clears)
	}
	p.PlayEat()
	if p.mixer.Len() != 0 {
		t.Error("cue queued after Close")
	}
	p.Close()
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		name string
		s    beep.Streamer
		want int
	}{
		{"eat", eatSound(sampleRate, 1), 2 * sampleRate.N(eatNoteDuration)},
		{"death", deathSound(sampleRate, 1), sampleRate.N(deathDuration)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, peak := drain(tc.s)
			if n != tc.want {
				t.Errorf("streamed %d samples, expected %d", n, tc.want)
			}
			if peak == 0 {
				t.Error("cue is silent at full volume")
			}
			if peak > 1.0001 {
				t.Errorf("cue clips with peak %f", peak)
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(eatSound(sampleRate, 0))
	if peak != 0 {
		t.Errorf("peak = %f at zero volume, expected 0", peak)
	}
}

func TestNopSatisfiesCues(t *testing.T) {
	var cues interface {
		PlayEat()
		PlayDeath()
	} = Nop{}
	cues.PlayEat()
	cues.PlayDeath()
}
