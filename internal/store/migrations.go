package store

import (
	"fmt"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "interactions: journal of decay runs and instructions",
		SQL: `
CREATE TABLE interactions (
    id            TEXT PRIMARY KEY,
    instruction   TEXT NOT NULL CHECK (instruction IN ('DECAY', 'FEED', 'PLAY', 'PET', 'CARE', 'HEAL')),
    author        TEXT NOT NULL DEFAULT '',
    issue         TEXT NOT NULL DEFAULT '',

    health_before INTEGER NOT NULL,
    hunger_before INTEGER NOT NULL,
    mood_before   INTEGER NOT NULL,
    health_after  INTEGER NOT NULL,
    hunger_after  INTEGER NOT NULL,
    mood_after    INTEGER NOT NULL,
    tier          TEXT NOT NULL CHECK (tier IN ('poor', 'fair', 'good')),

    created_at    INTEGER NOT NULL
);

CREATE INDEX idx_interactions_created ON interactions(created_at DESC);
`,
	},
	{
		Version:     2,
		Description: "interactions: author lookup",
		SQL: `
CREATE INDEX idx_interactions_author ON interactions(author);
`,
	},
}

func (db *DB) migrate() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		if err := db.Get(&count, "SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version); err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.Beginx()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// SchemaVersion returns the current schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.Get(&version, "SELECT COALESCE(MAX(version), 0) FROM schema_versions")
	return version, err
}
