package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the database itself; no expectations set

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

// TestMemoTableCascades pins the schema-level guarantee that deleting a
// user removes all of that user's memos: the FK on memo.user_id must carry
// ON DELETE CASCADE, because no application code deletes memos on
// withdrawal.
func TestMemoTableCascades(t *testing.T) {
	content, err := embedMigrations.ReadFile("00002_create_memo_table.sql")
	if err != nil {
		t.Fatalf("failed to read embedded memo migration: %v", err)
	}

	sql := string(content)
	if !strings.Contains(sql, "REFERENCES users (user_id)") {
		t.Error("memo.user_id must reference users(user_id)")
	}
	if !strings.Contains(sql, "ON DELETE CASCADE") {
		t.Error("memo.user_id foreign key must cascade on user deletion")
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}
