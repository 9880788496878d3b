package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue timing.
const (
	eatNoteDuration   = 60 * time.Millisecond
	eatNoteAttack     = 5 * time.Millisecond
	eatNoteRelease    = 30 * time.Millisecond
	deathDuration     = 350 * time.Millisecond
	deathAttack       = 10 * time.Millisecond
	deathRelease      = 200 * time.Millisecond
	deathStartFreq    = 330.0
	deathEndFreq      = 110.0
	eatLowFreq        = 660.0
	eatHighFreq       = 990.0
	eatOvertoneWeight = 0.25
)

type waveform int

const (
	waveSine waveform = iota
	waveSquare
)

// tone is a fixed-length oscillator whose frequency glides linearly from
// startFreq to endFreq.
type tone struct {
	rate      beep.SampleRate
	wave      waveform
	startFreq float64
	endFreq   float64
	phase     float64
	position  int
	total     int
}

func newTone(rate beep.SampleRate, wave waveform, startFreq, endFreq float64, d time.Duration) *tone {
	return &tone{
		rate:      rate,
		wave:      wave,
		startFreq: startFreq,
		endFreq:   endFreq,
		total:     rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case waveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.position) / float64(t.total)
		freq := t.startFreq + (t.endFreq-t.startFreq)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope shapes a stream with a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, rate beep.SampleRate, d, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by a linear gain in [0, 1]. Zero is silent since
// log2(0) is -Inf.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// eatNote is one sine note with a quiet octave overtone.
func eatNote(rate beep.SampleRate, freq float64) beep.Streamer {
	fund := newTone(rate, waveSine, freq, freq, eatNoteDuration)
	over := newTone(rate, waveSine, 2*freq, 2*freq, eatNoteDuration)
	mixed := beep.Mix(
		withVolume(fund, 1-eatOvertoneWeight),
		withVolume(over, eatOvertoneWeight),
	)
	return newEnvelope(mixed, rate, eatNoteDuration, eatNoteAttack, eatNoteRelease)
}

// eatSound is a short rising two-note chirp.
func eatSound(rate beep.SampleRate, gain float64) beep.Streamer {
	return withVolume(beep.Seq(eatNote(rate, eatLowFreq), eatNote(rate, eatHighFreq)), gain)
}

// deathSound is a falling square-wave buzz.
func deathSound(rate beep.SampleRate, gain float64) beep.Streamer {
	buzz := newTone(rate, waveSquare, deathStartFreq, deathEndFreq, deathDuration)
	shaped := newEnvelope(buzz, rate, deathDuration, deathAttack, deathRelease)
	return withVolume(beep.Take(rate.N(deathDuration), shaped), gain*0.5)
}
