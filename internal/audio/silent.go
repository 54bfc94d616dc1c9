package audio

// Silent discards every request.
type Silent struct{}

func (Silent) PlayIdleMusic() error     { return nil }
func (Silent) PlayGameplayMusic() error { return nil }
func (Silent) StopMusic()               {}
func (Silent) PauseMusic()              {}
func (Silent) ResumeMusic()             {}
func (Silent) PlayExpandSound() error   { return nil }
func (Silent) PlayDeathSound() error    { return nil }
func (Silent) Close()                   {}
