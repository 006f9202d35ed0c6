// Package renters persists Renter records keyed by account.
package renters

import (
	"context"

	"github.com/dmitrijs2005/carregistry/internal/server/models"
)

// Repository is the renters namespace of the ledger.
// Get returns common.ErrorNotFound for unknown accounts.
type Repository interface {
	Get(ctx context.Context, account string) (*models.Renter, error)
	Set(ctx context.Context, renter *models.Renter) error
	Contains(ctx context.Context, account string) (bool, error)
	Values(ctx context.Context) ([]*models.Renter, error)
}
