// Package sound synthesises the short game cues and plays them.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is used for every cue.
const SampleRate = beep.SampleRate(44100)

// gain is the peak amplitude of every tone.
const gain = 0.12

// tone is a sine wave with an exponential decay envelope.
type tone struct {
	freq  float64
	decay float64
	rate  float64
	pos   int
	total int
}

// Tone returns a streamer that plays freq for dur, fading with the given
// decay constant (per second).
func Tone(rate beep.SampleRate, freq float64, dur time.Duration, decay float64) beep.Streamer {
	return &tone{
		freq:  freq,
		decay: decay,
		rate:  float64(rate),
		total: rate.N(dur),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		sec := float64(t.pos) / t.rate
		v := gain * math.Sin(2*math.Pi*t.freq*sec) * math.Exp(-t.decay*sec)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// PCM16 drains s into signed 16-bit little-endian stereo bytes.
func PCM16(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, ch := range frame {
				v := int16(math.Round(clamp(ch) * math.MaxInt16))
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok {
			return out
		}
	}
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
