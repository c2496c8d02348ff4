package tempo

import "sync"

var (
	defaultOnce    sync.Once
	defaultManager *Manager
)

// Default returns the process-wide Manager, creating and starting it with
// DefaultConfig on first use. Programs that need control over the clock,
// frame source or lifecycle should construct their own Manager with New.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultManager = New(DefaultConfig())
		defaultManager.Start()
	})
	return defaultManager
}

// Add registers tw with the Default manager.
func Add(tw Tween) ID {
	return Default().Add(tw)
}

// Finish forces a tween on the Default manager to complete. See
// Manager.Finish.
func Finish(id ID) bool {
	return Default().Finish(id)
}
