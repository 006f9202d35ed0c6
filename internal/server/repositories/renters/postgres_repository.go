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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, account string) (*models.Renter, error) {
	query :=
		`SELECT account, name, car_rented FROM renters
		 WHERE account = $1
		 `

	rn := &models.Renter{}
	err := r.db.QueryRowContext(ctx, query, account).Scan(&rn.Account, &rn.Name, &rn.CarRented)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rn, nil
}

func (r *PostgresRepository) Set(ctx context.Context, rn *models.Renter) error {
	query :=
		`INSERT INTO renters (account, name, car_rented)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (account) DO UPDATE
		 SET name = EXCLUDED.name, car_rented = EXCLUDED.car_rented
		 `

	if _, err := r.db.ExecContext(ctx, query, rn.Account, rn.Name, rn.CarRented); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Contains(ctx context.Context, account string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM renters WHERE account = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, account).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) Values(ctx context.Context) ([]*models.Renter, error) {
	query :=
		`SELECT account, name, car_rented FROM renters
		 ORDER BY account
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanRenters(rows)
}

func scanRenters(rows *sql.Rows) ([]*models.Renter, error) {
	var result []*models.Renter
	for rows.Next() {
		rn := &models.Renter{}
		if err := rows.Scan(&rn.Account, &rn.Name, &rn.CarRented); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
