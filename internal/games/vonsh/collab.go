package vonsh

import (
	"github.com/vovakirdan/vonsh/internal/config"
	"github.com/vovakirdan/vonsh/internal/storage"
)

// Audio plays music and effects. Every call is best effort: the game logs
// a returned error and carries on.
type Audio interface {
	PlayIdleMusic() error
	PlayGameplayMusic() error
	StopMusic()
	PauseMusic()
	ResumeMusic()
	PlayExpandSound() error
	PlayDeathSound() error
}

// HighScores is the hall of fame.
type HighScores interface {
	IsHighScore(score int) (bool, error)
	Add(name string, score, boardW, boardH int) error
	Scores() ([]storage.ScoreEntry, error)
	Clear() error
}

// SettingsSink persists settings after every change.
type SettingsSink interface {
	Save(s config.Settings) error
}

// Display controls the pointer of windowed frontends.
type Display interface {
	ShowCursor(visible bool)
}

type nopAudio struct{}

func (nopAudio) PlayIdleMusic() error     { return nil }
func (nopAudio) PlayGameplayMusic() error { return nil }
func (nopAudio) StopMusic()               {}
func (nopAudio) PauseMusic()              {}
func (nopAudio) ResumeMusic()             {}
func (nopAudio) PlayExpandSound() error   { return nil }
func (nopAudio) PlayDeathSound() error    { return nil }

type nopSink struct{}

func (nopSink) Save(config.Settings) error { return nil }
