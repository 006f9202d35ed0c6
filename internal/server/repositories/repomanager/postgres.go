// Package repomanager vends dialect-specific repository implementations and
// applies the embedded goose migrations for each supported SQL backend.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/carregistry/internal/dbx"
	"github.com/dmitrijs2005/carregistry/internal/server/migrations"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/owners"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/renters"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/transfers"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Owners returns an owners.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Owners(db dbx.DBTX) owners.Repository {
	return owners.NewPostgresRepository(db)
}

// Renters returns a renters.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Renters(db dbx.DBTX) renters.Repository {
	return renters.NewPostgresRepository(db)
}

// Transfers returns a transfers.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Transfers(db dbx.DBTX) transfers.Repository {
	return transfers.NewPostgresRepository(db)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Postgres)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "postgres"); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
