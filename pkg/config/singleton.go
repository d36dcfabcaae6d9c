package config

import (
	"fmt"
	"sync"
)

var (
	// globalSettings holds the singleton settings instance.
	globalSettings *Settings

	// settingsMutex protects access to globalSettings.
	settingsMutex sync.RWMutex

	// initOnce ensures settings are initialized only once.
	initOnce sync.Once
)

// Initialize loads settings from the specified path with environment
// variable overrides and stores them as the global singleton settings.
// This function should be called once at application startup.
// Subsequent calls are ignored (uses sync.Once internally).
//
// Returns an error if settings loading or validation fails.
func Initialize(path string, explicit bool) error {
	var initErr error

	initOnce.Do(func() {
		s, err := LoadWithEnvOverrides(path, explicit)
		if err != nil {
			initErr = err
			return
		}

		settingsMutex.Lock()
		globalSettings = s
		settingsMutex.Unlock()
	})

	return initErr
}

// GetSettings returns the global settings instance.
// It returns nil if Initialize has not been called successfully.
// This function is thread-safe and can be called concurrently.
//
// For testing, prefer using dependency injection with explicit Settings
// instances rather than relying on the global singleton.
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return globalSettings
}

// SetSettings sets the global settings instance.
// This function is primarily intended for testing and should not be used
// in production code. Use Initialize for normal settings loading.
//
// This function is thread-safe.
func SetSettings(s *Settings) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()
	globalSettings = s
}

// Reload reloads the settings from the specified path.
// This is useful for picking up settings changes without restarting
// the tool. The new settings replace the global instance only if loading
// and validation succeed.
//
// Returns an error if reloading fails, in which case the existing
// settings remain unchanged.
func Reload(path string, explicit bool) error {
	s, err := LoadWithEnvOverrides(path, explicit)
	if err != nil {
		return fmt.Errorf("failed to reload settings: %w", err)
	}

	settingsMutex.Lock()
	globalSettings = s
	settingsMutex.Unlock()

	return nil
}

// MustGetSettings returns the global settings instance.
// It panics if the settings have not been initialized.
// This should only be used in code paths where settings are guaranteed
// to be initialized (e.g., after successful application startup).
//
// For most use cases, prefer GetSettings which returns nil instead of panicking.
func MustGetSettings() *Settings {
	s := GetSettings()
	if s == nil {
		panic("settings not initialized: call Initialize first")
	}
	return s
}
