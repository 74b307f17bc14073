package store

import (
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenHistoryMemory()
	if err != nil {
		t.Fatalf("OpenHistoryMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenHistoryMemory(t *testing.T) {
	db := testDB(t)
	if db.Path != ":memory:" {
		t.Errorf("Path = %q, want :memory:", db.Path)
	}
}

func TestOpenHistoryCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	db, err := OpenHistory(path)
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	defer db.Close()

	if db.Path != path {
		t.Errorf("Path = %q, want %q", db.Path, path)
	}
	if err := db.Ping(); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestSchemaVersion(t *testing.T) {
	db := testDB(t)

	v, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if v != len(migrations) {
		t.Errorf("SchemaVersion = %d, want %d", v, len(migrations))
	}
}

func TestTablesExist(t *testing.T) {
	db := testDB(t)

	for _, table := range []string{"schema_versions", "interactions"} {
		var name string
		err := db.Get(&name, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table)
		if err != nil {
			t.Errorf("table %q not found: %v", table, err)
		}
	}
}

func TestInteractionsConstraints(t *testing.T) {
	db := testDB(t)

	insert := `
		INSERT INTO interactions (id, instruction, health_before, hunger_before, mood_before,
			health_after, hunger_after, mood_after, tier, created_at)
		VALUES (?, ?, 1, 1, 1, 1, 1, 1, ?, 1000)
	`
	if _, err := db.Exec(insert, "a", "FEED", "good"); err != nil {
		t.Fatalf("valid insert failed: %v", err)
	}
	if _, err := db.Exec(insert, "b", "DANCE", "good"); err == nil {
		t.Error("expected error for invalid instruction, got nil")
	}
	if _, err := db.Exec(insert, "c", "FEED", "great"); err == nil {
		t.Error("expected error for invalid tier, got nil")
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	db := testDB(t)

	if err := db.migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	v, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if v != len(migrations) {
		t.Errorf("SchemaVersion after re-migrate = %d, want %d", v, len(migrations))
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	db, err := OpenHistory(path)
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	in := Interaction{Instruction: "PET", Author: "alice", Tier: "good"}
	if err := db.Record(&in); err != nil {
		t.Fatalf("Record: %v", err)
	}
	db.Close()

	db, err = OpenHistory(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	n, err := db.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}
