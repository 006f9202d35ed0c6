// Package owners persists Owner records keyed by account.
package owners

import (
	"context"

	"github.com/dmitrijs2005/carregistry/internal/server/models"
)

// Repository is the owners namespace of the ledger.
// Get returns common.ErrorNotFound for unknown accounts.
type Repository interface {
	Get(ctx context.Context, account string) (*models.Owner, error)
	Set(ctx context.Context, owner *models.Owner) error
	Contains(ctx context.Context, account string) (bool, error)
	Values(ctx context.Context) ([]*models.Owner, error)
}
