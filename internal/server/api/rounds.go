package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/ganitha/internal/store"
)

// RoundsHandler handles HTTP requests for per-session round history.
type RoundsHandler struct {
	store *store.Store
}

// NewRoundsHandler creates a new RoundsHandler with the given store.
func NewRoundsHandler(s *store.Store) *RoundsHandler {
	return &RoundsHandler{store: s}
}

// ServeHTTP implements the http.Handler interface.
// Expected paths: /api/sessions/{id}/rounds
func (h *RoundsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse session ID from path: /api/sessions/{id}/rounds
	path := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "rounds" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	sessionID := parts[0]

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, sessionID)
	case http.MethodDelete:
		h.clear(w, r, sessionID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Response types

type roundResponse struct {
	ID        int64    `json:"id"`
	SessionID string   `json:"session_id"`
	Equation  string   `json:"equation"`
	A         int      `json:"a"`
	B         int      `json:"b"`
	Op        string   `json:"op,omitempty"`
	Result    *float64 `json:"result,omitempty"`
	Fingers   int      `json:"fingers"`
	Correct   bool     `json:"correct"`
	CreatedAt string   `json:"created_at"`
}

type listRoundsResponse struct {
	Rounds []roundResponse `json:"rounds"`
}

// list handles GET /api/sessions/{id}/rounds
func (h *RoundsHandler) list(w http.ResponseWriter, r *http.Request, sessionID string) {
	// Verify session exists
	_, err := h.store.Sessions().GetByID(sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to verify session")
		return
	}

	rounds, err := h.store.Rounds().ListBySession(sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list rounds")
		return
	}

	response := listRoundsResponse{
		Rounds: make([]roundResponse, 0, len(rounds)),
	}

	for _, rd := range rounds {
		response.Rounds = append(response.Rounds, roundResponse{
			ID:        rd.ID,
			SessionID: rd.SessionID,
			Equation:  rd.Equation,
			A:         rd.A,
			B:         rd.B,
			Op:        rd.Op,
			Result:    rd.Result,
			Fingers:   rd.Fingers,
			Correct:   rd.Correct,
			CreatedAt: rd.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// clear handles DELETE /api/sessions/{id}/rounds
func (h *RoundsHandler) clear(w http.ResponseWriter, r *http.Request, sessionID string) {
	// Verify session exists
	_, err := h.store.Sessions().GetByID(sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to verify session")
		return
	}

	if err := h.store.Rounds().DeleteBySession(sessionID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete rounds")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
