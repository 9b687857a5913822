package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"snake-arcade/internal/snake"
)

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	st := Tone(rate, 440, 50*time.Millisecond, 3)

	total := 0
	buf := make([][2]float64, 64)
	for {
		n, ok := st.Stream(buf)
		for _, s := range buf[:n] {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("sample out of range or not mono: %v", s)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if want := rate.N(50 * time.Millisecond); total != want {
		t.Fatalf("expected %d samples, got %d", want, total)
	}
	if st.Err() != nil {
		t.Fatalf("unexpected error %v", st.Err())
	}
}

func TestPCM16Size(t *testing.T) {
	rate := beep.SampleRate(8000)
	pcm := PCM16(Tone(rate, 220, 100*time.Millisecond, 3))
	if want := rate.N(100*time.Millisecond) * 4; len(pcm) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(pcm))
	}
	silent := true
	for _, b := range pcm {
		if b != 0 {
			silent = false
			break
		}
	}
	if silent {
		t.Fatal("tone rendered as silence")
	}
}

func TestCueStreamers(t *testing.T) {
	for _, c := range Cues {
		if c.Streamer(SampleRate) == nil {
			t.Errorf("cue %d has no streamer", c)
		}
	}
	if CueNone.Streamer(SampleRate) != nil {
		t.Fatal("CueNone must not produce sound")
	}
}

func TestCueFor(t *testing.T) {
	cases := []struct {
		name  string
		frame snake.Frame
		want  Cue
	}{
		{"idle", snake.Frame{Phase: snake.PhaseIdle}, CueNone},
		{"move", snake.Frame{Phase: snake.PhaseActive}, CueNone},
		{"eat", snake.Frame{Phase: snake.PhaseActive, Ate: true}, CueEat},
		{"crash", snake.Frame{Phase: snake.PhaseTerminal, Ate: true}, CueGameOver},
		{"record", snake.Frame{Phase: snake.PhaseTerminal, NewRecord: true}, CueRecord},
	}
	for _, tc := range cases {
		if got := CueFor(tc.frame); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestSpeakerSilentUntilInit(t *testing.T) {
	s := NewSpeaker()
	s.Play(CueEat)
	s.Observe(snake.Frame{Phase: snake.PhaseTerminal})
	s.SetMuted(true)
	if !s.Muted() {
		t.Fatal("SetMuted(true) not recorded")
	}
	s.Close()
}
