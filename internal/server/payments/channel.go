// Package payments issues the irreversible transfers that settle a rental.
package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carregistry/internal/currency"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/transfers"
	"github.com/google/uuid"
)

var ErrEmptyTransfer = errors.New("transfer amount must be positive")

// Channel sends funds to an account. A transfer cannot be undone once the
// surrounding transaction commits.
type Channel interface {
	Transfer(ctx context.Context, from, to string, amount currency.Amount) (*models.Transfer, error)
}

// LedgerChannel records each payout in the transfers log. Bound to a
// transactional repository it commits or rolls back with the records it pays for.
type LedgerChannel struct {
	repo transfers.Repository
	now  func() time.Time
}

func NewLedgerChannel(repo transfers.Repository) *LedgerChannel {
	return &LedgerChannel{repo: repo, now: time.Now}
}

func (c *LedgerChannel) Transfer(ctx context.Context, from, to string, amount currency.Amount) (*models.Transfer, error) {
	if amount.IsZero() {
		return nil, ErrEmptyTransfer
	}

	t := &models.Transfer{
		ID:        uuid.NewString(),
		From:      from,
		To:        to,
		Amount:    amount,
		CreatedAt: c.now().UTC(),
	}
	if err := c.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("transfer to %s: %w", to, err)
	}
	return t, nil
}
