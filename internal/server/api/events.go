package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/abhinaya/internal/store"
)

// EventsHandler serves classification events, either the recent feed at
// /api/events or one session's history at /api/sessions/{id}/events.
type EventsHandler struct {
	store *store.Store
}

// NewEventsHandler creates an EventsHandler backed by the given store.
func NewEventsHandler(s *store.Store) *EventsHandler {
	return &EventsHandler{store: s}
}

type eventResponse struct {
	ID          int64   `json:"id"`
	SessionID   string  `json:"session_id"`
	Stream      string  `json:"stream"`
	StreamIndex int     `json:"stream_index"`
	Label       string  `json:"label"`
	Confidence  float64 `json:"confidence"`
	CreatedAt   string  `json:"created_at"`
}

type listEventsResponse struct {
	Events []eventResponse `json:"events"`
}

func toEventResponse(e *store.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		SessionID:   e.SessionID,
		Stream:      string(e.Stream),
		StreamIndex: e.StreamIndex,
		Label:       e.Label,
		Confidence:  e.Confidence,
		CreatedAt:   e.CreatedAt.Format(timeFormat),
	}
}

// ServeHTTP routes event listing requests.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// /api/sessions/{id}/events
	if strings.HasPrefix(r.URL.Path, "/api/sessions/") {
		id := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
		id = strings.TrimSuffix(id, "/events")
		h.listBySession(w, r, id)
		return
	}

	h.listRecent(w, r)
}

func (h *EventsHandler) listBySession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if _, err := h.store.Sessions().GetByID(sessionID); err != nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	events, err := h.store.Events().ListBySession(sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	writeEvents(w, events)
}

func (h *EventsHandler) listRecent(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	events, err := h.store.Events().ListRecent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	writeEvents(w, events)
}

func writeEvents(w http.ResponseWriter, events []*store.Event) {
	resp := listEventsResponse{Events: []eventResponse{}}
	for _, e := range events {
		resp.Events = append(resp.Events, toEventResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}
