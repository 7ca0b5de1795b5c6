// Package main provides a scorelog plugin that appends quiz results to a file.
// Each line records the event, running score and equation, so a session can be
// reviewed after play.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Request represents the input from the plugin executor.
type Request struct {
	Action   string          `json:"action"`
	Event    string          `json:"event"`
	Equation string          `json:"equation"`
	Fingers  int             `json:"fingers"`
	Score    int             `json:"score"`
	Feedback string          `json:"feedback"`
	Config   json.RawMessage `json:"config"`
}

// Response represents the output to the plugin executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Config defines the scorelog settings.
type Config struct {
	Path string `json:"path"`
}

func main() {
	// Read request from stdin
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	if req.Action != "append" {
		writeErrorResponse(fmt.Sprintf("unknown action: %s", req.Action))
		return
	}

	cfg := Config{Path: "scores.log"}
	if len(req.Config) > 0 {
		json.Unmarshal(req.Config, &cfg)
	}

	if err := appendLine(cfg.Path, &req); err != nil {
		writeErrorResponse(fmt.Sprintf("append failed: %v", err))
		return
	}

	writeSuccessResponse()
}

// appendLine writes one tab-separated record to the log file.
func appendLine(path string, req *Request) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	line := fmt.Sprintf("%s\t%s\t%d\t%s\t%d\n",
		time.Now().Format(time.RFC3339), req.Event, req.Score, req.Equation, req.Fingers)
	_, err = f.WriteString(line)
	return err
}

// writeErrorResponse writes an error response to stdout.
func writeErrorResponse(errMsg string) {
	resp := Response{
		Success: false,
		Error:   errMsg,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// writeSuccessResponse writes a success response to stdout.
func writeSuccessResponse() {
	resp := Response{
		Success: true,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}
