package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/ayusman/abhinaya/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "abhinaya-api-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	s, err := store.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func seedSession(t *testing.T, s *store.Store, labels ...string) string {
	t.Helper()

	sess := &store.Session{ID: uuid.NewString()}
	if err := s.Sessions().Create(sess); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	for _, label := range labels {
		e := &store.Event{SessionID: sess.ID, Stream: store.StreamGesture, Label: label, Confidence: 0.9}
		if err := s.Events().Create(e); err != nil {
			t.Fatalf("failed to seed event %q: %v", label, err)
		}
	}
	return sess.ID
}

func TestSessionHandler_List(t *testing.T) {
	s := newTestStore(t)
	id := seedSession(t, s, "fist", "open_hand")
	handler := NewSessionHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp listSessionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(resp.Sessions))
	}
	if resp.Sessions[0].ID != id {
		t.Errorf("session ID = %q, want %q", resp.Sessions[0].ID, id)
	}
	if resp.Sessions[0].Events != 2 {
		t.Errorf("event count = %d, want 2", resp.Sessions[0].Events)
	}
}

func TestSessionHandler_Get(t *testing.T) {
	s := newTestStore(t)
	id := seedSession(t, s)
	handler := NewSessionHandler(s)

	t.Run("existing session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+id, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var resp sessionResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.ID != id {
			t.Errorf("session ID = %q, want %q", resp.ID, id)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sessions/no-such-id", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestSessionHandler_Delete(t *testing.T) {
	s := newTestStore(t)
	id := seedSession(t, s, "fist")
	handler := NewSessionHandler(s)

	req := httptest.NewRequest(http.MethodDelete, "/api/sessions/"+id, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	if _, err := s.Sessions().GetByID(id); err == nil {
		t.Error("session should be gone after delete")
	}
}

func TestSessionHandler_MethodNotAllowed(t *testing.T) {
	s := newTestStore(t)
	handler := NewSessionHandler(s)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestEventsHandler_BySession(t *testing.T) {
	s := newTestStore(t)
	id := seedSession(t, s, "fist", "victory")
	handler := NewEventsHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+id+"/events", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp listEventsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(resp.Events))
	}
	if resp.Events[0].Label != "fist" || resp.Events[1].Label != "victory" {
		t.Errorf("events out of order: %q, %q", resp.Events[0].Label, resp.Events[1].Label)
	}
}

func TestEventsHandler_BySessionMissing(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventsHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/no-such-id/events", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestEventsHandler_Recent(t *testing.T) {
	s := newTestStore(t)
	seedSession(t, s, "fist", "open_hand", "victory")
	handler := NewEventsHandler(s)

	t.Run("with limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events?limit=2", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var resp listEventsResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(resp.Events))
		}
		if resp.Events[0].Label != "victory" {
			t.Errorf("expected newest first, got %q", resp.Events[0].Label)
		}
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events?limit=abc", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/events", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})
}
