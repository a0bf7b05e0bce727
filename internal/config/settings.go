package config

import "sync"

// RuntimeSettings holds values the host may change while running
type RuntimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: 60, // default value
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 0 && limit < 10 {
		limit = 10
	}
	if limit > 500 {
		limit = 500
	}

	globalRuntimeSettings.fpsLimit = limit
}
