package owners

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carregistry/internal/common"
	"github.com/dmitrijs2005/carregistry/internal/dbx"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, account string) (*models.Owner, error) {
	o := &models.Owner{}
	err := r.db.QueryRowContext(ctx,
		`SELECT account, name, car_available, price FROM owners WHERE account = ?`, account).
		Scan(&o.Account, &o.Name, &o.CarAvailable, &o.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return o, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, o *models.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (account, name, car_available, price) VALUES (?, ?, ?, ?)
		ON CONFLICT(account) DO UPDATE SET
			name = excluded.name,
			car_available = excluded.car_available,
			price = excluded.price
	`, o.Account, o.Name, o.CarAvailable, int64(o.Price))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Contains(ctx context.Context, account string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM owners WHERE account = ?)`, account).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *SQLiteRepository) Values(ctx context.Context) ([]*models.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT account, name, car_available, price FROM owners ORDER BY account`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanOwners(rows)
}
