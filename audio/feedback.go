// Package audio plays short cues confirming input mode changes
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	chimeDuration = 180 * time.Millisecond
	clickDuration = 40 * time.Millisecond
)

// Cue selects the feedback sound
type Cue uint8

const (
	CueEnabled  Cue = iota // rising two-tone chime
	CueDisabled            // falling two-tone chime
	CueClick               // short tick
)

// Feedback owns the speaker and a mixer that cues are added to
// Every method is a no-op until Initialize succeeds
type Feedback struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewFeedback creates an uninitialized feedback player
func NewFeedback() *Feedback {
	return &Feedback{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; fails without an audio device
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(f.mixer)
	f.initialized = true
	return nil
}

// Cleanup silences pending cues
func (f *Feedback) Cleanup() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}
	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()
	f.initialized = false
}

// SetMuted toggles all cues
func (f *Feedback) SetMuted(muted bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted = muted
}

// Play queues a cue on the mixer
func (f *Feedback) Play(cue Cue) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || f.muted {
		return
	}

	streamer := NewCueStreamer(sampleRate, cue)
	speaker.Lock()
	f.mixer.Add(streamer)
	speaker.Unlock()
}

// NewCueStreamer returns a finite streamer rendering cue
func NewCueStreamer(sr beep.SampleRate, cue Cue) beep.Streamer {
	switch cue {
	case CueEnabled:
		return beep.Seq(
			beep.Take(sr.N(chimeDuration/2), NewToneGenerator(sr, 660)),
			beep.Take(sr.N(chimeDuration/2), NewToneGenerator(sr, 990)),
		)
	case CueDisabled:
		return beep.Seq(
			beep.Take(sr.N(chimeDuration/2), NewToneGenerator(sr, 990)),
			beep.Take(sr.N(chimeDuration/2), NewToneGenerator(sr, 660)),
		)
	default:
		return beep.Take(sr.N(clickDuration), NewToneGenerator(sr, 1800))
	}
}

// ToneGenerator generates a soft sine tone with a short attack and exponential decay
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator at freq Hz
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack, then decay
		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*12)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
