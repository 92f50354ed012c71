package events

import "github.com/lmorandi/reverie/internal/event"

// StateChanged is published after the state controller applies a
// transition, so UI, audio, and input layers can react.
type StateChanged struct {
	event.Base

	FromState string
	ToState   string

	// Trigger records what requested the transition.
	Trigger string
}

// NewStateChanged creates a StateChanged event.
func NewStateChanged(from, to, trigger string) *StateChanged {
	return &StateChanged{
		Base:      event.NewBase(),
		FromState: from,
		ToState:   to,
		Trigger:   trigger,
	}
}

// Type returns the event type tag.
func (e *StateChanged) Type() string { return TypeStateChanged }

// Priority implements event.Event.
func (e *StateChanged) Priority() int { return event.PriorityHigh }

// Cancellable implements event.Event. State transitions already happened
// when this is published.
func (e *StateChanged) Cancellable() bool { return false }

// GameSaved is published when the game data has been persisted.
type GameSaved struct {
	event.Base

	SaveSlot string
	SaveTime string
	AutoSave bool
}

// NewGameSaved creates a GameSaved event.
func NewGameSaved(saveSlot, saveTime string, autoSave bool) *GameSaved {
	return &GameSaved{
		Base:     event.NewBase(),
		SaveSlot: saveSlot,
		SaveTime: saveTime,
		AutoSave: autoSave,
	}
}

// Type returns the event type tag.
func (e *GameSaved) Type() string { return TypeGameSaved }

// Error is published when a subsystem fails in a way other subsystems
// should know about.
type Error struct {
	event.Base

	Code    string
	Message string
	Source  string
}

// NewError creates an Error event.
func NewError(code, message, source string) *Error {
	return &Error{
		Base:    event.NewBase(),
		Code:    code,
		Message: message,
		Source:  source,
	}
}

// Type returns the event type tag.
func (e *Error) Type() string { return TypeError }

// Priority implements event.Event.
func (e *Error) Priority() int { return event.PriorityCritical }

// Cancellable implements event.Event.
func (e *Error) Cancellable() bool { return false }

// ConfigReloaded is published by the config watcher after the
// configuration file changes on disk and reloads cleanly.
type ConfigReloaded struct {
	event.Base

	// Path is the configuration file that changed.
	Path string
}

// NewConfigReloaded creates a ConfigReloaded event.
func NewConfigReloaded(path string) *ConfigReloaded {
	return &ConfigReloaded{
		Base: event.NewBase(),
		Path: path,
	}
}

// Type returns the event type tag.
func (e *ConfigReloaded) Type() string { return TypeConfigReloaded }
