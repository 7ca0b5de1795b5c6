package plugin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Executor runs event action executables with a timeout.
type Executor struct {
	timeoutMs int
}

// NewExecutor creates a new Executor with the specified timeout in milliseconds.
func NewExecutor(timeoutMs int) *Executor {
	return &Executor{
		timeoutMs: timeoutMs,
	}
}

// Execute runs a plugin for one game event. The request is marshaled to JSON
// and written to the plugin's stdin; stdout must be a single JSON Response.
// Plugins always receive a config object, never null.
func (e *Executor) Execute(plug *Plugin, req *Request) (*Response, error) {
	if _, err := os.Stat(plug.Executable); err != nil {
		return nil, fmt.Errorf("plugin %s executable missing: %w", plug.Manifest.Name, err)
	}

	if req.Config == nil {
		req.Config = json.RawMessage("{}")
	}

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(e.timeoutMs)*time.Millisecond)
	defer cancel()

	cmd := exec.CommandContext(ctx, plug.Executable)
	cmd.Dir = plug.Path
	cmd.Stdin = bytes.NewReader(reqJSON)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("plugin %s execution timeout after %dms", plug.Manifest.Name, e.timeoutMs)
	}

	if err != nil {
		if stderrStr := stderr.String(); stderrStr != "" {
			return nil, fmt.Errorf("plugin %s failed: %w, stderr: %s", plug.Manifest.Name, err, stderrStr)
		}
		return nil, fmt.Errorf("plugin %s failed: %w", plug.Manifest.Name, err)
	}

	var response Response
	if err := json.Unmarshal(stdout.Bytes(), &response); err != nil {
		return nil, fmt.Errorf("failed to parse plugin response: %w, stdout: %s", err, stdout.String())
	}

	return &response, nil
}
