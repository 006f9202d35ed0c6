package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/carregistry/internal/dbx"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/owners"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/renters"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/transfers"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Owners(db dbx.DBTX) owners.Repository
	Renters(db dbx.DBTX) renters.Repository
	Transfers(db dbx.DBTX) transfers.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}
