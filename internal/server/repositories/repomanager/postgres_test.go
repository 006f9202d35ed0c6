package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/owners"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/renters"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/transfers"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewPostgresRepositoryManager()

	if _, ok := m.Owners(db).(*owners.PostgresRepository); !ok {
		t.Fatal("Owners() is not the postgres repository")
	}
	if _, ok := m.Renters(db).(*renters.PostgresRepository); !ok {
		t.Fatal("Renters() is not the postgres repository")
	}
	if _, ok := m.Transfers(db).(*transfers.PostgresRepository); !ok {
		t.Fatal("Transfers() is not the postgres repository")
	}
}

func TestSQLiteFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewSQLiteRepositoryManager()

	if _, ok := m.Owners(db).(*owners.SQLiteRepository); !ok {
		t.Fatal("Owners() is not the sqlite repository")
	}
	if _, ok := m.Renters(db).(*renters.SQLiteRepository); !ok {
		t.Fatal("Renters() is not the sqlite repository")
	}
	if _, ok := m.Transfers(db).(*transfers.SQLiteRepository); !ok {
		t.Fatal("Transfers() is not the sqlite repository")
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	cases := []struct {
		name string
		m    RepositoryManager
		dir  string
	}{
		{"postgres", NewPostgresRepositoryManager(), "postgres"},
		{"sqlite", NewSQLiteRepositoryManager(), "sqlite"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotDir string
			gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
				gotDir = dir
				if len(opts) != 0 {
					return errors.New("unexpected opts")
				}
				return nil
			}
			if err := tc.m.RunMigrations(context.Background(), db); err != nil {
				t.Fatalf("RunMigrations error: %v", err)
			}
			if gotDir != tc.dir {
				t.Fatalf("dir = %q, want %q", gotDir, tc.dir)
			}
		})
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
