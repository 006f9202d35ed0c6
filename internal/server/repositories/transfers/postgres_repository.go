package transfers

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carregistry/internal/dbx"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Transfer) error {
	query :=
		`INSERT INTO transfers (id, from_account, to_account, amount, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query, t.ID, t.From, t.To, t.Amount, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, account string) ([]*models.Transfer, error) {
	query :=
		`SELECT id, from_account, to_account, amount, created_at FROM transfers
		 WHERE to_account = $1 OR from_account = $1
		 ORDER BY created_at DESC, id
		 `

	rows, err := r.db.QueryContext(ctx, query, account)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Transfer
	for rows.Next() {
		t := &models.Transfer{}
		if err := rows.Scan(&t.ID, &t.From, &t.To, &t.Amount, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
