// Package audio synthesizes the runner's short feedback cues (jump, collect,
// game over) on demand. The synthesis context is initialized lazily and the
// whole layer degrades to a silent no-op on hosts without audio output;
// playback is fire-and-forget and never blocks the simulation step.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// ContextState tracks the synthesis context lifecycle. Contexts commonly
// start suspended until a user gesture resumes them.
type ContextState int

const (
	StateUninitialized ContextState = iota
	StateSuspended
	StateRunning
	StateUnavailable // Host has no audio capability
)

// String returns a human-readable state name.
func (s ContextState) String() string {
	switch s {
	case StateSuspended:
		return "suspended"
	case StateRunning:
		return "running"
	case StateUnavailable:
		return "unavailable"
	default:
		return "uninitialized"
	}
}

// speakerFuncs abstracts the beep speaker so tests run without a device.
type speakerFuncs struct {
	init func(beep.SampleRate, int) error
	play func(...beep.Streamer)
}

// Synth plays the three game cues against a lazily initialized speaker.
type Synth struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	state   ContextState
	muted   bool
	volume  float64
	logger  *log.Logger
	speaker speakerFuncs
}

// NewSynth creates a synth in the suspended state. Nothing touches the audio
// device until Resume.
func NewSynth(logger *log.Logger) *Synth {
	if logger == nil {
		logger = log.Default()
	}
	return &Synth{
		mixer:  &beep.Mixer{},
		state:  StateSuspended,
		volume: 1.0,
		logger: logger,
		speaker: speakerFuncs{
			init: speaker.Init,
			play: speaker.Play,
		},
	}
}

// Resume initializes the speaker on first call (the "user gesture" moment)
// and transitions to running. A host without audio capability leaves the
// synth permanently unavailable; that is not an error.
func (s *Synth) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateRunning, StateUnavailable:
		return
	}

	if err := s.speaker.init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		s.logger.Warn("audio unavailable, continuing silently", "error", err)
		s.state = StateUnavailable
		return
	}
	s.speaker.play(s.mixer)
	s.state = StateRunning
}

// Suspend pauses playback intent without tearing down the speaker.
func (s *Synth) Suspend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		s.state = StateSuspended
	}
}

// State returns the current context state.
func (s *Synth) State() ContextState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetMuted toggles the mute flag. Valid regardless of context state.
func (s *Synth) SetMuted(m bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = m
}

// Muted reports the mute flag.
func (s *Synth) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// SetVolume sets the output volume, clamped to [0,1]. Valid regardless of
// context state.
func (s *Synth) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.volume = v
}

// Volume returns the current volume.
func (s *Synth) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// PlayJump plays the rising two-note jump cue.
func (s *Synth) PlayJump() {
	s.play([]Note{
		{Freq: 440.00, Duration: 60 * time.Millisecond},
		{Freq: 659.25, Duration: 80 * time.Millisecond},
	})
}

// PlayCollect plays the three-note ascending arpeggio (C5 E5 G5).
func (s *Synth) PlayCollect() {
	s.play([]Note{
		{Freq: 523.25, Duration: 70 * time.Millisecond},
		{Freq: 659.25, Duration: 70 * time.Millisecond},
		{Freq: 783.99, Duration: 90 * time.Millisecond},
	})
}

// PlayGameOver plays the five-note descending game-over sequence.
func (s *Synth) PlayGameOver() {
	s.play([]Note{
		{Freq: 392.00, Duration: 120 * time.Millisecond},
		{Freq: 349.23, Duration: 120 * time.Millisecond},
		{Freq: 329.63, Duration: 120 * time.Millisecond},
		{Freq: 293.66, Duration: 120 * time.Millisecond},
		{Freq: 261.63, Duration: 180 * time.Millisecond},
	})
}

// play queues a note sequence on the mixer. Muted, suspended, or unavailable
// states make this a no-op; a missed tone is acceptable, a stalled frame is
// not.
func (s *Synth) play(notes []Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning || s.muted || s.volume == 0 {
		return
	}
	s.mixer.Add(Sequence(sampleRate, notes, DefaultEnvelope(), s.volume))
}

// Close silences the synth. The beep speaker has no teardown; clearing the
// mixer stops any queued cues.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mixer.Clear()
	if s.state == StateRunning {
		s.state = StateSuspended
	}
}
