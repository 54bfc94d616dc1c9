package audio

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Note is a single tone. A zero Freq is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

const (
	beat = 180 * time.Millisecond
	rest = 0.0
)

// Pitches in Hz.
const (
	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	f4 = 349.23
	g4 = 392.00
	a4 = 440.00
	b4 = 493.88
	c5 = 523.25
	e5 = 659.25
	g5 = 783.99
)

var (
	idleTune = []Note{
		{c4, 2 * beat}, {e4, beat}, {g4, beat}, {e4, 2 * beat}, {rest, beat},
		{d4, 2 * beat}, {f4, beat}, {a4, beat}, {f4, 2 * beat}, {rest, beat},
		{e4, 2 * beat}, {g4, beat}, {b4, beat}, {g4, 2 * beat}, {rest, 3 * beat},
	}
	playTune = []Note{
		{c5, beat}, {g4, beat}, {e4, beat}, {g4, beat},
		{c5, beat}, {g4, beat}, {e5, beat}, {rest, beat},
		{a4, beat}, {f4, beat}, {d4, beat}, {f4, beat},
		{g4, beat}, {b4, beat}, {g5, beat}, {rest, beat},
	}
	expandNotes = []Note{{e5, 40 * time.Millisecond}, {g5, 60 * time.Millisecond}}
	dieNotes    = []Note{{g4, 120 * time.Millisecond}, {e4, 120 * time.Millisecond}, {c4, 300 * time.Millisecond}}
)

// Length returns the total duration of notes.
func Length(notes []Note) time.Duration {
	var d time.Duration
	for _, n := range notes {
		d += n.Dur
	}
	return d
}

// Melody renders notes as a finite stream, gain scaled on a linear 0..1 scale.
func Melody(rate beep.SampleRate, notes []Note, gain float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := rate.N(n.Dur)
		if n.Freq == rest {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(rate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.2f Hz: %w", n.Freq, err)
		}
		parts = append(parts, newFade(beep.Take(samples, tone), samples, rate.N(8*time.Millisecond)))
	}
	return newVolume(beep.Seq(parts...), gain), nil
}

// repeat restarts a melody whenever it runs out.
type repeat struct {
	build func() (beep.Streamer, error)
	cur   beep.Streamer
	fresh bool
	err   error
}

func newRepeat(build func() (beep.Streamer, error)) *repeat {
	return &repeat{build: build}
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && r.err == nil {
		if r.cur == nil {
			if r.cur, r.err = r.build(); r.err != nil {
				break
			}
			r.fresh = true
		}
		m, more := r.cur.Stream(samples[n:])
		n += m
		if m > 0 {
			r.fresh = false
		}
		if !more {
			if r.fresh {
				r.err = errors.New("audio: empty melody")
			}
			r.cur = nil
		}
	}
	return n, n > 0 || r.err == nil
}

func (r *repeat) Err() error { return r.err }

// fade ramps a tone in and out to avoid clicks between notes.
type fade struct {
	s     beep.Streamer
	pos   int
	total int
	ramp  int
}

func newFade(s beep.Streamer, total, ramp int) *fade {
	return &fade{s: s, total: total, ramp: min(ramp, total/2)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.ramp > 0 {
			switch {
			case f.pos < f.ramp:
				vol = float64(f.pos) / float64(f.ramp)
			case f.total-f.pos < f.ramp:
				vol = float64(f.total-f.pos) / float64(f.ramp)
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// newVolume maps a linear gain onto effects.Volume; 0 or less is silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
