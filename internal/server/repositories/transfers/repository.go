// Package transfers persists issued payment instructions.
package transfers

import (
	"context"

	"github.com/dmitrijs2005/carregistry/internal/server/models"
)

// Repository is an append-only log of transfers.
type Repository interface {
	Create(ctx context.Context, t *models.Transfer) error
	// ListByAccount returns transfers sent or received by account, newest first.
	ListByAccount(ctx context.Context, account string) ([]*models.Transfer, error)
}
