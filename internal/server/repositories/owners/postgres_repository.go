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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, account string) (*models.Owner, error) {
	query :=
		`SELECT account, name, car_available, price FROM owners
		 WHERE account = $1
		 `

	o := &models.Owner{}
	err := r.db.QueryRowContext(ctx, query, account).Scan(&o.Account, &o.Name, &o.CarAvailable, &o.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return o, nil
}

func (r *PostgresRepository) Set(ctx context.Context, o *models.Owner) error {
	query :=
		`INSERT INTO owners (account, name, car_available, price)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (account) DO UPDATE
		 SET name = EXCLUDED.name, car_available = EXCLUDED.car_available, price = EXCLUDED.price
		 `

	_, err := r.db.ExecContext(ctx, query, o.Account, o.Name, o.CarAvailable, int64(o.Price))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Contains(ctx context.Context, account string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM owners WHERE account = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, account).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) Values(ctx context.Context) ([]*models.Owner, error) {
	query :=
		`SELECT account, name, car_available, price FROM owners
		 ORDER BY account
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanOwners(rows)
}

func scanOwners(rows *sql.Rows) ([]*models.Owner, error) {
	var result []*models.Owner
	for rows.Next() {
		o := &models.Owner{}
		if err := rows.Scan(&o.Account, &o.Name, &o.CarAvailable, &o.Price); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
