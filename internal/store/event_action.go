package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// Event identifies a game moment that plugin actions can be bound to.
type Event string

const (
	// EventEquation fires when a new equation is generated.
	EventEquation Event = "equation"
	// EventCorrect fires when an answer is evaluated as correct.
	EventCorrect Event = "correct"
	// EventIncorrect fires when an answer is evaluated as incorrect.
	EventIncorrect Event = "incorrect"
	// EventRestart fires when the session restarts.
	EventRestart Event = "restart"
)

// ValidEvent reports whether e is one of the known game events.
func ValidEvent(e Event) bool {
	switch e {
	case EventEquation, EventCorrect, EventIncorrect, EventRestart:
		return true
	}
	return false
}

// EventAction represents an event-to-plugin binding stored in the database.
type EventAction struct {
	ID         string
	Event      Event
	PluginName string
	ActionName string
	Config     json.RawMessage
	Enabled    bool
	CreatedAt  time.Time
}

// EventActionRepository provides CRUD operations for event actions.
type EventActionRepository struct {
	db *sql.DB
}

// EventActions returns the event action repository for this store.
func (s *Store) EventActions() *EventActionRepository {
	return &EventActionRepository{db: s.db}
}

// Create inserts a new event action into the database.
func (r *EventActionRepository) Create(a *EventAction) error {
	a.CreatedAt = time.Now()

	config := a.Config
	if config == nil {
		config = json.RawMessage("{}")
	}

	_, err := r.db.Exec(
		`INSERT INTO event_actions (id, event, plugin_name, action_name, config, enabled, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, string(a.Event), a.PluginName, a.ActionName, string(config), a.Enabled, a.CreatedAt,
	)
	return err
}

// GetByID retrieves an event action by its ID.
func (r *EventActionRepository) GetByID(id string) (*EventAction, error) {
	a := &EventAction{}
	var event, config string
	var enabled int

	err := r.db.QueryRow(
		`SELECT id, event, plugin_name, action_name, config, enabled, created_at
		 FROM event_actions WHERE id = ?`,
		id,
	).Scan(&a.ID, &event, &a.PluginName, &a.ActionName, &config, &enabled, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a.Event = Event(event)
	a.Config = json.RawMessage(config)
	a.Enabled = enabled != 0
	return a, nil
}

// ListByEvent retrieves the enabled actions bound to an event.
func (r *EventActionRepository) ListByEvent(event Event) ([]*EventAction, error) {
	rows, err := r.db.Query(
		`SELECT id, event, plugin_name, action_name, config, enabled, created_at
		 FROM event_actions WHERE event = ? AND enabled = 1 ORDER BY created_at`,
		string(event),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEventActions(rows)
}

// List retrieves all event actions from the database.
func (r *EventActionRepository) List() ([]*EventAction, error) {
	rows, err := r.db.Query(
		`SELECT id, event, plugin_name, action_name, config, enabled, created_at
		 FROM event_actions ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEventActions(rows)
}

func scanEventActions(rows *sql.Rows) ([]*EventAction, error) {
	var actions []*EventAction
	for rows.Next() {
		a := &EventAction{}
		var event, config string
		var enabled int

		err := rows.Scan(&a.ID, &event, &a.PluginName, &a.ActionName, &config, &enabled, &a.CreatedAt)
		if err != nil {
			return nil, err
		}

		a.Event = Event(event)
		a.Config = json.RawMessage(config)
		a.Enabled = enabled != 0
		actions = append(actions, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actions, nil
}

// Update updates an existing event action in the database.
func (r *EventActionRepository) Update(a *EventAction) error {
	config := a.Config
	if config == nil {
		config = json.RawMessage("{}")
	}

	enabled := 0
	if a.Enabled {
		enabled = 1
	}

	result, err := r.db.Exec(
		`UPDATE event_actions SET event = ?, plugin_name = ?, action_name = ?, config = ?, enabled = ?
		 WHERE id = ?`,
		string(a.Event), a.PluginName, a.ActionName, string(config), enabled, a.ID,
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

// Delete removes an event action from the database by its ID.
func (r *EventActionRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM event_actions WHERE id = ?`, id)
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
