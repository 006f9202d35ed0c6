package renters

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

func (r *SQLiteRepository) Get(ctx context.Context, account string) (*models.Renter, error) {
	rn := &models.Renter{}
	err := r.db.QueryRowContext(ctx,
		`SELECT account, name, car_rented FROM renters WHERE account = ?`, account).
		Scan(&rn.Account, &rn.Name, &rn.CarRented)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rn, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, rn *models.Renter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO renters (account, name, car_rented) VALUES (?, ?, ?)
		ON CONFLICT(account) DO UPDATE SET
			name = excluded.name,
			car_rented = excluded.car_rented
	`, rn.Account, rn.Name, rn.CarRented)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Contains(ctx context.Context, account string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM renters WHERE account = ?)`, account).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *SQLiteRepository) Values(ctx context.Context) ([]*models.Renter, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT account, name, car_rented FROM renters ORDER BY account`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanRenters(rows)
}
