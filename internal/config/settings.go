package config

import (
	"sync"

	"fyne.io/fyne/v2"
)

// Option keys, kept identical to the identifiers the firmware options have
// always been persisted under
const (
	KeyPort    = "_netpack_ports"
	KeyVersion = "_netpack_version"
	KeyBeta    = "_netpack_beta"
)

// DefaultIncludeBeta controls whether prerelease firmware is offered by default
const DefaultIncludeBeta = false

// Settings manages application configuration backed by Fyne preferences
type Settings struct {
	app fyne.App

	listenersMutex sync.Mutex
	listeners      map[string][]func(value string)
	snapshot       map[string]string
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	s := &Settings{
		app:       app,
		listeners: make(map[string][]func(value string)),
		snapshot:  make(map[string]string),
	}

	// Fyne's preference listener does not say which key changed, so keep a
	// snapshot of the watched keys and diff it on every notification
	s.snapshot[KeyPort] = s.Port()
	s.snapshot[KeyVersion] = s.Version()
	s.snapshot[KeyBeta] = s.betaString()
	app.Preferences().AddChangeListener(s.dispatchChanges)

	return s
}

// Port returns the configured serial port, or "" when none is selected
func (s *Settings) Port() string {
	return s.app.Preferences().String(KeyPort)
}

// SetPort sets the serial port the netpack is connected to
func (s *Settings) SetPort(port string) {
	s.app.Preferences().SetString(KeyPort, port)
}

// Version returns the selected firmware version tag, or "" when none is selected
func (s *Settings) Version() string {
	return s.app.Preferences().String(KeyVersion)
}

// SetVersion sets the selected firmware version tag
func (s *Settings) SetVersion(tag string) {
	s.app.Preferences().SetString(KeyVersion, tag)
}

// IncludeBeta returns whether prerelease firmware versions are offered
func (s *Settings) IncludeBeta() bool {
	return s.app.Preferences().BoolWithFallback(KeyBeta, DefaultIncludeBeta)
}

// SetIncludeBeta sets whether prerelease firmware versions are offered
func (s *Settings) SetIncludeBeta(include bool) {
	s.app.Preferences().SetBool(KeyBeta, include)
}

// OnOptionChanged registers a callback invoked with the new value whenever
// the given option key changes. Only the known option keys are watched.
func (s *Settings) OnOptionChanged(key string, callback func(value string)) {
	s.listenersMutex.Lock()
	defer s.listenersMutex.Unlock()
	s.listeners[key] = append(s.listeners[key], callback)
}

// dispatchChanges compares the current option values against the snapshot
// and fires the callbacks of every key whose value actually changed
func (s *Settings) dispatchChanges() {
	current := map[string]string{
		KeyPort:    s.Port(),
		KeyVersion: s.Version(),
		KeyBeta:    s.betaString(),
	}

	s.listenersMutex.Lock()
	var fired []func()
	for key, value := range current {
		if s.snapshot[key] == value {
			continue
		}
		s.snapshot[key] = value
		for _, callback := range s.listeners[key] {
			callback := callback
			value := value
			fired = append(fired, func() { callback(value) })
		}
	}
	s.listenersMutex.Unlock()

	// Callbacks run outside the lock so they may read settings freely
	for _, fn := range fired {
		fn()
	}
}

func (s *Settings) betaString() string {
	if s.IncludeBeta() {
		return "true"
	}
	return "false"
}
