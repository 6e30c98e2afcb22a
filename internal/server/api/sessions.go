// Package api provides the HTTP API handlers for session and event
// resources.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/abhinaya/internal/store"
)

// SessionHandler handles HTTP requests for session resources.
type SessionHandler struct {
	store *store.Store
}

// NewSessionHandler creates a SessionHandler backed by the given store.
func NewSessionHandler(s *store.Store) *SessionHandler {
	return &SessionHandler{store: s}
}

// ServeHTTP routes /api/sessions and /api/sessions/{id} requests.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/sessions")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

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

type sessionResponse struct {
	ID        string `json:"id"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at,omitempty"`
	Events    int    `json:"events"`
}

type listSessionsResponse struct {
	Sessions []sessionResponse `json:"sessions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

func (h *SessionHandler) toResponse(sess *store.Session) sessionResponse {
	resp := sessionResponse{
		ID:        sess.ID,
		StartedAt: sess.StartedAt.Format(timeFormat),
	}
	if sess.EndedAt != nil {
		resp.EndedAt = sess.EndedAt.Format(timeFormat)
	}
	if count, err := h.store.Events().CountBySession(sess.ID); err == nil {
		resp.Events = count
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

// list handles GET /api/sessions.
func (h *SessionHandler) list(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.Sessions().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	resp := listSessionsResponse{Sessions: []sessionResponse{}}
	for _, sess := range sessions {
		resp.Sessions = append(resp.Sessions, h.toResponse(sess))
	}

	writeJSON(w, http.StatusOK, resp)
}

// get handles GET /api/sessions/{id}.
func (h *SessionHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	sess, err := h.store.Sessions().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(sess))
}

// delete handles DELETE /api/sessions/{id}.
func (h *SessionHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
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
