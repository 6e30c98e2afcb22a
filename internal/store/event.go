package store

import (
	"database/sql"
	"time"
)

// StreamKind identifies which classification stream an event belongs to.
type StreamKind string

const (
	StreamEmotion StreamKind = "emotion"
	StreamGesture StreamKind = "gesture"
)

// Event is one stabilized label transition recorded during a session.
type Event struct {
	ID          int64
	SessionID   string
	Stream      StreamKind
	StreamIndex int
	Label       string
	Confidence  float64
	CreatedAt   time.Time
}

// EventRepository provides operations for classification events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Create inserts a new event and fills in its assigned ID.
func (r *EventRepository) Create(e *Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	result, err := r.db.Exec(
		`INSERT INTO events (session_id, stream, stream_index, label, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.SessionID, string(e.Stream), e.StreamIndex, e.Label, e.Confidence, e.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = id

	return nil
}

// ListBySession retrieves all events for a session in recording order.
func (r *EventRepository) ListBySession(sessionID string) ([]*Event, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, stream, stream_index, label, confidence, created_at
		 FROM events WHERE session_id = ? ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListRecent retrieves the most recent events across all sessions,
// newest first, up to limit.
func (r *EventRepository) ListRecent(limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, session_id, stream, stream_index, label, confidence, created_at
		 FROM events ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CountBySession returns how many events a session recorded.
func (r *EventRepository) CountBySession(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM events WHERE session_id = ?`,
		sessionID,
	).Scan(&count)
	return count, err
}

func scanEvents(rows *sql.Rows) ([]*Event, error) {
	var events []*Event
	for rows.Next() {
		e := &Event{}
		var stream string

		err := rows.Scan(&e.ID, &e.SessionID, &stream, &e.StreamIndex, &e.Label, &e.Confidence, &e.CreatedAt)
		if err != nil {
			return nil, err
		}

		e.Stream = StreamKind(stream)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
