// Package storage is the ledger store behind the rental service: owner and
// renter records plus the transfer log, readable directly and writable only
// inside a transaction.
package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carregistry/internal/server/config"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/owners"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/renters"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/transfers"
)

// Ledger exposes the three record namespaces.
type Ledger interface {
	Owners() owners.Repository
	Renters() renters.Repository
	Transfers() transfers.Repository
}

// Store is a Ledger that can run a function atomically. Mutations made through
// the Ledger handed to fn become visible only if fn returns nil. fn must not
// use the Store itself, only the Ledger it is given.
type Store interface {
	Ledger
	WithTx(ctx context.Context, fn func(ctx context.Context, l Ledger) error) error
	Close() error
}

// Open returns the store for the given driver. SQL stores are migrated before
// they are returned.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverPostgres:
		return OpenPostgres(ctx, dsn)
	case config.DriverSQLite:
		return OpenSQLite(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
