package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Sessions table - one row per game session from start to restart/quit
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL CHECK(mode IN ('comparison', 'arithmetic')),
			score INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME
		)`,

		// Rounds table - one row per evaluated answer
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			equation TEXT NOT NULL,
			a INTEGER NOT NULL,
			b INTEGER NOT NULL,
			op TEXT NOT NULL DEFAULT '',
			result REAL,
			fingers INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Event actions table - binds game events to plugin actions
		`CREATE TABLE IF NOT EXISTS event_actions (
			id TEXT PRIMARY KEY,
			event TEXT NOT NULL CHECK(event IN ('equation', 'correct', 'incorrect', 'restart')),
			plugin_name TEXT NOT NULL,
			action_name TEXT NOT NULL,
			config TEXT NOT NULL DEFAULT '{}',
			enabled INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_rounds_session_id ON rounds(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_event_actions_event ON event_actions(event)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
