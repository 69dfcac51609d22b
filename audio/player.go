// Package audio plays short feedback tones through the system speaker.
// Initialization failure puts the player in silent mode; the editor runs
// fine without sound.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player produces the editor's feedback tones
type Player struct {
	ready bool
	muted bool
}

// NewPlayer initializes the speaker. A nil error with a silent player is
// returned when the backend is unavailable or sound is disabled
func NewPlayer(enabled bool) *Player {
	p := &Player{muted: !enabled}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		p.ready = true
	}
	return p
}

// Ready reports whether the speaker initialized
func (p *Player) Ready() bool {
	return p.ready
}

// Toggle flips the mute state and returns true when sound is now on
func (p *Player) Toggle() bool {
	p.muted = !p.muted
	return !p.muted && p.ready
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.ready || p.muted {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Place plays the short placement blip
func (p *Player) Place() {
	p.tone(880, 40*time.Millisecond)
}

// Error plays the low rejection tone
func (p *Player) Error() {
	p.tone(220, 90*time.Millisecond)
}
