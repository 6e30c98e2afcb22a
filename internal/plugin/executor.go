package plugin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"
)

// Executor runs plugins with a timeout.
type Executor struct {
	timeoutMs int
}

// NewExecutor creates an Executor with the given timeout in milliseconds.
func NewExecutor(timeoutMs int) *Executor {
	return &Executor{
		timeoutMs: timeoutMs,
	}
}

// Execute runs a plugin: the request goes to the plugin's stdin as JSON,
// the plugin's stdout is parsed as a Response. A plugin that outlives the
// timeout is killed.
func (e *Executor) Execute(plugin *Plugin, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(e.timeoutMs)*time.Millisecond)
	defer cancel()

	cmd := exec.CommandContext(ctx, plugin.Executable)
	cmd.Dir = plugin.Path

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	cmd.Stdin = bytes.NewReader(reqJSON)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("plugin execution timeout after %dms", e.timeoutMs)
	}
	if err != nil {
		if stderrStr := stderr.String(); stderrStr != "" {
			return nil, fmt.Errorf("plugin execution failed: %w, stderr: %s", err, stderrStr)
		}
		return nil, fmt.Errorf("plugin execution failed: %w", err)
	}

	var response Response
	if err := json.Unmarshal(stdout.Bytes(), &response); err != nil {
		return nil, fmt.Errorf("failed to parse plugin response: %w, stdout: %s", err, stdout.String())
	}

	return &response, nil
}
