package migrations_test

import (
	"context"
	"testing"

	"github.com/playperu/trivia/internal/database"
	"github.com/playperu/trivia/internal/migrations"
)

func TestMigrations(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if _, err := migrations.Run(context.Background(), db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	// Verify all tables exist by querying sqlite_master.
	want := []string{"categories", "questions"}

	for _, table := range want {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found: %v", table, err)
		}
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	n, err := migrations.Run(context.Background(), db)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if n != 3 {
		t.Errorf("first run applied %d migrations, want 3", n)
	}

	n, err = migrations.Run(context.Background(), db)
	if err != nil {
		t.Fatalf("second run (should be no-op): %v", err)
	}
	if n != 0 {
		t.Errorf("second run applied %d migrations, want 0", n)
	}
}

func TestQuestionDifficultyConstraint(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if _, err := migrations.Run(context.Background(), db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO categories (type) VALUES ('Science')`); err != nil {
		t.Fatalf("inserting category: %v", err)
	}
	_, err = db.Exec(`INSERT INTO questions (question, answer, category, difficulty) VALUES ('q', 'a', 1, 9)`)
	if err == nil {
		t.Fatal("expected check constraint violation for difficulty 9")
	}
}
