// Package repotest opens throwaway SQLite databases with the full schema
// applied, for repository and storage tests.
package repotest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/carregistry/internal/server/migrations"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// NewSQLiteDB returns a private in-memory database migrated to the latest
// schema. The database is closed when the test ends.
func NewSQLiteDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("goose dialect: %v", err)
	}
	if err := goose.UpContext(context.Background(), db, "sqlite"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}
