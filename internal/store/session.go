package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Quiz modes accepted by the sessions table.
const (
	ModeComparison = "comparison"
	ModeArithmetic = "arithmetic"
)

// Session represents one play session, from game start until restart or quit.
type Session struct {
	ID        string
	Mode      string
	Score     int
	StartedAt time.Time
	EndedAt   *time.Time
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Create inserts a new session into the database.
func (r *SessionRepository) Create(sess *Session) error {
	sess.StartedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, mode, score, started_at)
		 VALUES (?, ?, ?, ?)`,
		sess.ID, sess.Mode, sess.Score, sess.StartedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	sess := &Session{}

	err := r.db.QueryRow(
		`SELECT id, mode, score, started_at, ended_at
		 FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.Mode, &sess.Score, &sess.StartedAt, &sess.EndedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return sess, nil
}

// List retrieves all sessions from the database, most recent first.
func (r *SessionRepository) List() ([]*Session, error) {
	rows, err := r.db.Query(
		`SELECT id, mode, score, started_at, ended_at
		 FROM sessions ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		sess := &Session{}

		err := rows.Scan(&sess.ID, &sess.Mode, &sess.Score, &sess.StartedAt, &sess.EndedAt)
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// SetScore updates the running score of a session.
func (r *SessionRepository) SetScore(id string, score int) error {
	result, err := r.db.Exec(
		`UPDATE sessions SET score = ? WHERE id = ?`,
		score, id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Finish records the final score and end time of a session.
func (r *SessionRepository) Finish(id string, score int) error {
	now := time.Now()

	result, err := r.db.Exec(
		`UPDATE sessions SET score = ?, ended_at = ? WHERE id = ?`,
		score, now, id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a session from the database by its ID.
// Rounds recorded for the session are removed by the foreign key cascade.
func (r *SessionRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
