// Package api provides HTTP API handlers for the Ganitha quiz game.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/ganitha/internal/store"
)

// SessionsHandler handles HTTP requests for game session resources.
type SessionsHandler struct {
	store *store.Store
}

// NewSessionsHandler creates a new SessionsHandler with the given store.
func NewSessionsHandler(s *store.Store) *SessionsHandler {
	return &SessionsHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *SessionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse the path to determine if this is a collection or item request
	// Expected paths: /api/sessions or /api/sessions/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/sessions")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/sessions
		// Sessions are created by gameplay, so the collection is read-only.
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/sessions/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Response types

type sessionResponse struct {
	ID        string `json:"id"`
	Mode      string `json:"mode"`
	Score     int    `json:"score"`
	Rounds    int    `json:"rounds"`
	Correct   int    `json:"correct"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at,omitempty"`
}

type listSessionsResponse struct {
	Sessions []sessionResponse `json:"sessions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toSessionResponse converts a store.Session to a sessionResponse.
// Round counts are filled in separately by the caller.
func toSessionResponse(sess *store.Session) sessionResponse {
	resp := sessionResponse{
		ID:        sess.ID,
		Mode:      sess.Mode,
		Score:     sess.Score,
		StartedAt: sess.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if sess.EndedAt != nil {
		resp.EndedAt = sess.EndedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/sessions and returns all sessions, newest first.
func (h *SessionsHandler) list(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.Sessions().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	response := listSessionsResponse{
		Sessions: make([]sessionResponse, 0, len(sessions)),
	}

	for _, sess := range sessions {
		resp := toSessionResponse(sess)
		total, correct, err := h.store.Rounds().CountBySession(sess.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to count rounds")
			return
		}
		resp.Rounds = total
		resp.Correct = correct
		response.Sessions = append(response.Sessions, resp)
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/sessions/{id} and returns a single session.
func (h *SessionsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	sess, err := h.store.Sessions().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	resp := toSessionResponse(sess)
	total, correct, err := h.store.Rounds().CountBySession(sess.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count rounds")
		return
	}
	resp.Rounds = total
	resp.Correct = correct

	writeJSON(w, http.StatusOK, resp)
}

// delete handles DELETE /api/sessions/{id} and removes a session with its rounds.
func (h *SessionsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Sessions().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
