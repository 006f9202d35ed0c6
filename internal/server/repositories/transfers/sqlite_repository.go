package transfers

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carregistry/internal/dbx"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
)

// SQLiteRepository stores created_at as Unix nanoseconds.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, t *models.Transfer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transfers (id, from_account, to_account, amount, created_at) VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.From, t.To, t.Amount, t.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByAccount(ctx context.Context, account string) ([]*models.Transfer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, from_account, to_account, amount, created_at FROM transfers
		WHERE to_account = ? OR from_account = ?
		ORDER BY created_at DESC, id
	`, account, account)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Transfer
	for rows.Next() {
		t := &models.Transfer{}
		var created int64
		if err := rows.Scan(&t.ID, &t.From, &t.To, &t.Amount, &created); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		t.CreatedAt = time.Unix(0, created).UTC()
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
