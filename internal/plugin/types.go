// Package plugin provides plugin management and execution capabilities for the Ganitha quiz game.
package plugin

import "encoding/json"

// Manifest describes a plugin's metadata and capabilities.
type Manifest struct {
	Name         string          `json:"name"`
	Version      string          `json:"version"`
	Description  string          `json:"description"`
	Executable   string          `json:"executable"`
	Actions      []string        `json:"actions"`
	Events       []string        `json:"events,omitempty"`
	ConfigSchema json.RawMessage `json:"configSchema,omitempty"`
}

// Request represents a request sent to a plugin for execution.
// It carries the game event that triggered the action and a snapshot of the
// quiz at that moment.
type Request struct {
	Action   string          `json:"action"`
	Event    string          `json:"event"`
	Equation string          `json:"equation,omitempty"`
	Fingers  int             `json:"fingers"`
	Score    int             `json:"score"`
	Feedback string          `json:"feedback,omitempty"`
	Config   json.RawMessage `json:"config"`
}

// Response represents the response from a plugin execution.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Plugin represents a discovered plugin with its manifest and location.
type Plugin struct {
	Manifest   Manifest
	Path       string
	Executable string
}

// HandlesEvent reports whether the plugin declares support for the given
// game event. An empty events list means the plugin accepts any event.
func (p *Plugin) HandlesEvent(event string) bool {
	if len(p.Manifest.Events) == 0 {
		return true
	}
	for _, e := range p.Manifest.Events {
		if e == event {
			return true
		}
	}
	return false
}
