package store

import (
	"database/sql"
	"time"
)

// Round represents one evaluated answer stored in the database.
// Op and Result are only set for arithmetic rounds.
type Round struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Equation  string    `json:"equation"`
	A         int       `json:"a"`
	B         int       `json:"b"`
	Op        string    `json:"op,omitempty"`
	Result    *float64  `json:"result,omitempty"`
	Fingers   int       `json:"fingers"`
	Correct   bool      `json:"correct"`
	CreatedAt time.Time `json:"created_at"`
}

// RoundRepository provides CRUD operations for rounds.
type RoundRepository struct {
	db *sql.DB
}

// Rounds returns the round repository for this store.
func (s *Store) Rounds() *RoundRepository {
	return &RoundRepository{db: s.db}
}

// Create inserts a new round into the database.
func (r *RoundRepository) Create(round *Round) error {
	round.CreatedAt = time.Now()

	correct := 0
	if round.Correct {
		correct = 1
	}

	result, err := r.db.Exec(
		`INSERT INTO rounds (session_id, equation, a, b, op, result, fingers, correct, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		round.SessionID, round.Equation, round.A, round.B, round.Op, round.Result,
		round.Fingers, correct, round.CreatedAt,
	)
	if err != nil {
		return err
	}

	round.ID, err = result.LastInsertId()
	return err
}

// ListBySession retrieves all rounds for a given session in play order.
func (r *RoundRepository) ListBySession(sessionID string) ([]Round, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, equation, a, b, op, result, fingers, correct, created_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var round Round
		var correct int
		err := rows.Scan(&round.ID, &round.SessionID, &round.Equation, &round.A, &round.B,
			&round.Op, &round.Result, &round.Fingers, &correct, &round.CreatedAt)
		if err != nil {
			return nil, err
		}
		round.Correct = correct != 0
		rounds = append(rounds, round)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rounds, nil
}

// CountBySession returns the number of answers evaluated for a session and
// how many of them were correct.
func (r *RoundRepository) CountBySession(sessionID string) (total, correct int, err error) {
	err = r.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM rounds WHERE session_id = ?`,
		sessionID,
	).Scan(&total, &correct)
	if err != nil {
		return 0, 0, err
	}

	return total, correct, nil
}

// DeleteBySession removes all rounds for a given session.
func (r *RoundRepository) DeleteBySession(sessionID string) error {
	_, err := r.db.Exec(`DELETE FROM rounds WHERE session_id = ?`, sessionID)
	return err
}
