// Package main provides an announcer plugin for macOS. It speaks the
// stabilized label aloud via the `say` command.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Request represents the input from the plugin executor.
type Request struct {
	Event       string          `json:"event"`
	Stream      string          `json:"stream"`
	StreamIndex int             `json:"stream_index"`
	Label       string          `json:"label"`
	Confidence  float64         `json:"confidence"`
	Config      json.RawMessage `json:"config,omitempty"`
}

// Response represents the output to the plugin executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func main() {
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	if req.Event != "label_changed" {
		writeErrorResponse(fmt.Sprintf("unknown event: %s", req.Event))
		return
	}
	if req.Label == "" {
		writeErrorResponse("label is required")
		return
	}

	phrase := strings.ReplaceAll(req.Label, "_", " ")
	if err := exec.Command("say", phrase).Run(); err != nil {
		writeErrorResponse(fmt.Sprintf("say failed: %v", err))
		return
	}

	writeSuccessResponse(phrase)
}

func writeSuccessResponse(phrase string) {
	data, _ := json.Marshal(map[string]string{"spoken": phrase})
	json.NewEncoder(os.Stdout).Encode(Response{Success: true, Data: data})
}

func writeErrorResponse(message string) {
	json.NewEncoder(os.Stdout).Encode(Response{Success: false, Error: message})
}
