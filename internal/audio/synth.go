// Package audio plays the game's music and sound effects.
//
// Synth synthesizes everything on the fly with gopxl/beep, so the game
// ships without sound assets. Silent satisfies the same methods and is used
// for muted and remote sessions.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Volumes on a linear 0..1 scale.
const (
	musicGain  = 0.25
	effectGain = 1.0 / 3
)

// Synth drives the speaker. Music plays through a single Ctrl that can be
// paused; effects are mixed on top of it.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewSynth opens the audio device and starts the mixer.
func NewSynth() (*Synth, error) {
	s := &Synth{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// Close stops all sound and releases the device.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.music = nil
	s.initialized = false
}

// PlayIdleMusic loops the menu tune, replacing whatever music is playing.
func (s *Synth) PlayIdleMusic() error { return s.playMusic(idleTune) }

// PlayGameplayMusic loops the in-game tune.
func (s *Synth) PlayGameplayMusic() error { return s.playMusic(playTune) }

func (s *Synth) playMusic(notes []Note) error {
	// Build the first pass up front so tone errors reach the caller.
	first, err := Melody(sampleRate, notes, musicGain)
	if err != nil {
		return err
	}
	loop := newRepeat(func() (beep.Streamer, error) {
		if first != nil {
			st := first
			first = nil
			return st, nil
		}
		return Melody(sampleRate, notes, musicGain)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return nil
	}

	speaker.Lock()
	defer speaker.Unlock()
	if s.music != nil {
		s.music.Streamer = nil
	}
	s.music = &beep.Ctrl{Streamer: loop}
	s.mixer.Add(s.music)
	return nil
}

// StopMusic halts the music. Effects keep playing.
func (s *Synth) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Streamer = nil
	speaker.Unlock()
	s.music = nil
}

// PauseMusic freezes the music where it is.
func (s *Synth) PauseMusic() { s.setPaused(true) }

// ResumeMusic continues paused music.
func (s *Synth) ResumeMusic() { s.setPaused(false) }

func (s *Synth) setPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = paused
	speaker.Unlock()
}

// PlayExpandSound plays the short chirp for a growing snake.
func (s *Synth) PlayExpandSound() error { return s.playEffect(expandNotes) }

// PlayDeathSound plays the falling tones for a crash.
func (s *Synth) PlayDeathSound() error { return s.playEffect(dieNotes) }

func (s *Synth) playEffect(notes []Note) error {
	st, err := Melody(sampleRate, notes, effectGain)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return nil
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
	return nil
}
