// Package main provides an announcer plugin that speaks quiz feedback aloud.
// It uses the say command on macOS and espeak on Linux.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
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

// Config defines the announcer settings.
type Config struct {
	Voice string `json:"voice"`
}

func main() {
	// Read request from stdin
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	if req.Action != "speak" {
		writeErrorResponse(fmt.Sprintf("unknown action: %s", req.Action))
		return
	}

	var cfg Config
	if len(req.Config) > 0 {
		json.Unmarshal(req.Config, &cfg)
	}

	text := announcement(&req)
	if text == "" {
		writeErrorResponse("nothing to speak")
		return
	}

	if err := speak(text, cfg.Voice); err != nil {
		writeErrorResponse(fmt.Sprintf("speech failed: %v", err))
		return
	}

	writeSuccessResponse()
}

// announcement picks the line to speak for the triggering event.
func announcement(req *Request) string {
	if req.Feedback != "" {
		return req.Feedback
	}
	if req.Event == "restart" {
		return "New game"
	}
	if req.Equation != "" {
		return "Next question"
	}
	return ""
}

// speak runs the platform's text-to-speech command.
func speak(text, voice string) error {
	var args []string

	cmd, err := exec.LookPath("say")
	if err != nil {
		cmd, err = exec.LookPath("espeak")
		if err != nil {
			return fmt.Errorf("no speech command found (need say or espeak)")
		}
	}

	if voice != "" {
		args = append(args, "-v", voice)
	}
	args = append(args, text)

	out, err := exec.Command(cmd, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, string(out))
	}
	return nil
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
