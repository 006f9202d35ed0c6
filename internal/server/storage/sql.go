package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/carregistry/internal/dbx"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/owners"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/renters"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/transfers"
)

// SQLStore keeps records in a relational database. Repositories are built per
// call from the manager, bound either to the pool or to the open transaction.
type SQLStore struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	txOpts      *sql.TxOptions
	attempts    int
}

// postgresTxAttempts bounds reruns of a transaction that lost a
// serialization conflict.
const postgresTxAttempts = 3

func NewSQLStore(db *sql.DB, m repomanager.RepositoryManager, txOpts *sql.TxOptions) *SQLStore {
	return &SQLStore{db: db, repomanager: m, txOpts: txOpts, attempts: 1}
}

// OpenPostgres connects through the pgx stdlib driver. Transactions run at
// serializable isolation so that two rentals of the same car cannot both
// commit; the loser is rerun against the new state.
func OpenPostgres(ctx context.Context, dsn string) (*SQLStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	s := NewSQLStore(db, repomanager.NewPostgresRepositoryManager(), &sql.TxOptions{Isolation: sql.LevelSerializable})
	s.attempts = postgresTxAttempts
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenSQLite opens a modernc sqlite database. A single connection is used,
// which serializes writers.
func OpenSQLite(ctx context.Context, dsn string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := NewSQLStore(db, repomanager.NewSQLiteRepositoryManager(), nil)
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) migrate(ctx context.Context) error {
	if err := s.repomanager.RunMigrations(ctx, s.db); err != nil {
		_ = s.db.Close()
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

func (s *SQLStore) Owners() owners.Repository       { return s.repomanager.Owners(s.db) }
func (s *SQLStore) Renters() renters.Repository     { return s.repomanager.Renters(s.db) }
func (s *SQLStore) Transfers() transfers.Repository { return s.repomanager.Transfers(s.db) }

func (s *SQLStore) WithTx(ctx context.Context, fn func(ctx context.Context, l Ledger) error) error {
	return dbx.WithRetryTx(ctx, s.db, s.txOpts, s.attempts, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &txLedger{tx: tx, repomanager: s.repomanager})
	})
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

type txLedger struct {
	tx          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

func (l *txLedger) Owners() owners.Repository       { return l.repomanager.Owners(l.tx) }
func (l *txLedger) Renters() renters.Repository     { return l.repomanager.Renters(l.tx) }
func (l *txLedger) Transfers() transfers.Repository { return l.repomanager.Transfers(l.tx) }
