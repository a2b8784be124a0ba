package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Envelope is a simple attack/decay/sustain/release volume shape applied to
// every synthesized tone.
type Envelope struct {
	Attack  time.Duration
	Decay   time.Duration
	Sustain float64 // Sustain level in [0,1]
	Release time.Duration
}

// DefaultEnvelope is the percussive shape shared by the game cues.
func DefaultEnvelope() Envelope {
	return Envelope{
		Attack:  5 * time.Millisecond,
		Decay:   20 * time.Millisecond,
		Sustain: 0.7,
		Release: 30 * time.Millisecond,
	}
}

// Note is one tone in an effect sequence.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// toneStreamer synthesizes a single enveloped sine tone.
type toneStreamer struct {
	rate    beep.SampleRate
	freq    float64
	volume  float64
	env     Envelope
	total   int
	attack  int
	decay   int
	release int
	pos     int
}

// NewTone creates a finite streamer playing one note shaped by env at the
// given volume.
func NewTone(rate beep.SampleRate, n Note, env Envelope, volume float64) beep.Streamer {
	total := rate.N(n.Duration)
	release := rate.N(env.Release)
	if release > total {
		release = total
	}
	attack := rate.N(env.Attack)
	decay := rate.N(env.Decay)
	return &toneStreamer{
		rate:    rate,
		freq:    n.Freq,
		volume:  volume,
		env:     env,
		total:   total,
		attack:  attack,
		decay:   decay,
		release: release,
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		sec := float64(t.pos) / float64(t.rate)
		val := math.Sin(2 * math.Pi * t.freq * sec)
		val *= t.amplitude() * t.volume

		samples[i][0] = val
		samples[i][1] = val
		t.pos++
	}
	return len(samples), true
}

// amplitude evaluates the ADSR shape at the current sample position.
func (t *toneStreamer) amplitude() float64 {
	releaseStart := t.total - t.release

	switch {
	case t.pos < t.attack && t.attack > 0:
		return float64(t.pos) / float64(t.attack)
	case t.pos < t.attack+t.decay && t.decay > 0:
		frac := float64(t.pos-t.attack) / float64(t.decay)
		return 1 - frac*(1-t.env.Sustain)
	case t.pos >= releaseStart && t.release > 0:
		return t.env.Sustain * float64(t.total-t.pos) / float64(t.release)
	default:
		return t.env.Sustain
	}
}

func (t *toneStreamer) Err() error {
	return nil
}

// Sequence concatenates notes into one finite streamer.
func Sequence(rate beep.SampleRate, notes []Note, env Envelope, volume float64) beep.Streamer {
	streamers := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		streamers[i] = NewTone(rate, n, env, volume)
	}
	return beep.Seq(streamers...)
}
