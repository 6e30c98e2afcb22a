// Package plugin provides discovery and execution of reaction plugins:
// external executables invoked when a stabilized label transition occurs.
package plugin

import "encoding/json"

// Manifest describes a plugin's metadata and which labels it reacts to.
type Manifest struct {
	Name         string          `json:"name"`
	Version      string          `json:"version"`
	Description  string          `json:"description"`
	Executable   string          `json:"executable"`
	Events       []string        `json:"events"`
	ConfigSchema json.RawMessage `json:"configSchema,omitempty"`
}

// Request is what a plugin receives on stdin when a label transition fires.
type Request struct {
	Event       string          `json:"event"`
	Stream      string          `json:"stream"`
	StreamIndex int             `json:"stream_index"`
	Label       string          `json:"label"`
	Confidence  float64         `json:"confidence"`
	Config      json.RawMessage `json:"config,omitempty"`
}

// Response is what a plugin writes to stdout.
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

// ReactsTo reports whether the plugin subscribed to the given label. A
// manifest event of "*" subscribes to every label.
func (p *Plugin) ReactsTo(label string) bool {
	for _, event := range p.Manifest.Events {
		if event == "*" || event == label {
			return true
		}
	}
	return false
}
