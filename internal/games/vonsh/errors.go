package vonsh

import "sync"

// Fault holds the first fatal error. Later errors are dropped so the
// reported cause is the one that started the unwinding.
type Fault struct {
	mu  sync.Mutex
	err error
}

// Set records err unless an error is already held. It reports whether err
// was recorded.
func (f *Fault) Set(err error) bool {
	if err == nil {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false
	}
	f.err = err
	return true
}

// Err returns the recorded error, or nil.
func (f *Fault) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
