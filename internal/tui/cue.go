package tui

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue plays a short signal when a search finishes.
type Cue interface {
	Found()
	NotFound()
}

type silent struct{}

func (silent) Found()    {}
func (silent) NotFound() {}

const sampleRate = beep.SampleRate(44100)

// Speaker plays sine tones through the default audio device.
type Speaker struct {
	mu     sync.Mutex
	closed bool
}

// NewSpeaker opens the audio device. Callers treat failure as non-fatal
// and run silently.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Speaker{}, nil
}

// Found plays a short high tone.
func (s *Speaker) Found() { s.tone(880, 80*time.Millisecond) }

// NotFound plays a longer low tone.
func (s *Speaker) NotFound() { s.tone(220, 200*time.Millisecond) }

func (s *Speaker) tone(freq float64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		speaker.Close()
		s.closed = true
	}
}
