package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/carregistry/internal/dbx"
	"github.com/dmitrijs2005/carregistry/internal/server/migrations"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/owners"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/renters"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/transfers"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager is the single-file counterpart of
// PostgresRepositoryManager.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Owners(db dbx.DBTX) owners.Repository {
	return owners.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Renters(db dbx.DBTX) renters.Repository {
	return renters.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Transfers(db dbx.DBTX) transfers.Repository {
	return transfers.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "sqlite")
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}
