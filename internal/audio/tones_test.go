package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the sample count.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total-n+i, buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
	return total
}

func TestMelodyLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		name  string
		notes []Note
	}{
		{"expand", expandNotes},
		{"die", dieNotes},
		{"idle", idleTune},
		{"play", playTune},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Melody(rate, tt.notes, effectGain)
			if err != nil {
				t.Fatalf("Melody() failed: %v", err)
			}
			want := 0
			for _, n := range tt.notes {
				want += rate.N(n.Dur)
			}
			if got := drain(t, s, want*2); got != want {
				t.Errorf("Melody() streamed %d samples, expected %d", got, want)
			}
		})
	}
}

func TestMelodyRejectsUnplayableTone(t *testing.T) {
	rate := beep.SampleRate(8000)
	if _, err := Melody(rate, []Note{{Freq: 6000, Dur: time.Millisecond}}, 1); err == nil {
		t.Error("Melody() above the Nyquist frequency should fail")
	}
}

func TestLength(t *testing.T) {
	if got := Length(dieNotes); got != 540*time.Millisecond {
		t.Errorf("Length() = %v, expected 540ms", got)
	}
}

func TestRepeatLoops(t *testing.T) {
	rate := beep.SampleRate(8000)
	builds := 0
	r := newRepeat(func() (beep.Streamer, error) {
		builds++
		return Melody(rate, expandNotes, 1)
	})

	once := rate.N(Length(expandNotes))
	if got := drain(t, r, once*3); got < once*3 {
		t.Errorf("repeat streamed %d samples, expected at least %d", got, once*3)
	}
	if builds < 3 {
		t.Errorf("built %d times, expected at least 3", builds)
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v", r.Err())
	}
}

func TestRepeatStopsOnEmptyMelody(t *testing.T) {
	r := newRepeat(func() (beep.Streamer, error) {
		return beep.Silence(0), nil
	})
	buf := make([][2]float64, 16)
	if n, ok := r.Stream(buf); n != 0 || ok {
		t.Errorf("Stream() = %d, %v, expected 0, false", n, ok)
	}
	if r.Err() == nil {
		t.Error("Err() should report the empty melody")
	}
}

func TestFadeRamps(t *testing.T) {
	total := 100
	f := newFade(beep.Take(total, constant{}), total, 10)
	buf := make([][2]float64, total)
	n, _ := f.Stream(buf)
	if n != total {
		t.Fatalf("Stream() = %d samples, expected %d", n, total)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("middle sample = %f, expected 1", buf[50][0])
	}
	if buf[total-1][0] >= buf[total-10][0] {
		t.Error("tail should fade out")
	}
}

func TestSilentIsQuiet(t *testing.T) {
	var s Silent
	if err := s.PlayIdleMusic(); err != nil {
		t.Error(err)
	}
	if err := s.PlayDeathSound(); err != nil {
		t.Error(err)
	}
	s.PauseMusic()
	s.ResumeMusic()
	s.StopMusic()
	s.Close()
}

// constant streams full-scale samples forever.
type constant struct{}

func (constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
}

func (constant) Err() error { return nil }
