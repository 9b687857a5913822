package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"snake-arcade/internal/snake"
)

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu    sync.Mutex
	ready bool
	muted bool
	mixer *beep.Mixer
}

// NewSpeaker returns an uninitialised speaker. Play is a no-op until Init
// succeeds.
func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

// SetMuted silences or restores playback.
func (s *Speaker) SetMuted(m bool) {
	s.mu.Lock()
	s.muted = m
	s.mu.Unlock()
}

// Muted reports whether playback is silenced.
func (s *Speaker) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Play queues c on the mixer.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready || s.muted {
		return
	}
	st := c.Streamer(SampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Observe plays the cue matching f. Pass it to snake.WithObserver.
func (s *Speaker) Observe(f snake.Frame) {
	s.Play(CueFor(f))
}

// Close releases the audio device if Init opened it.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	speaker.Close()
	s.ready = false
}
