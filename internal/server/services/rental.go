// Package services contains server-side business logic. RentalService runs
// registry operations against the ledger store: it loads the records a call
// needs, lets the registry decide, and commits the outcome in one transaction.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carregistry/internal/common"
	"github.com/dmitrijs2005/carregistry/internal/logging"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
	"github.com/dmitrijs2005/carregistry/internal/server/payments"
	"github.com/dmitrijs2005/carregistry/internal/server/registry"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/transfers"
	"github.com/dmitrijs2005/carregistry/internal/server/storage"
)

// RentResult is what a successful rental changed.
type RentResult struct {
	Owner    *models.Owner
	Renter   *models.Renter
	Transfer *models.Transfer
}

type RentalService struct {
	store      storage.Store
	logger     logging.Logger
	newChannel func(transfers.Repository) payments.Channel
}

func NewRentalService(store storage.Store, logger logging.Logger) *RentalService {
	return &RentalService{
		store:  store,
		logger: logger.With("module", "rental_service"),
		newChannel: func(r transfers.Repository) payments.Channel {
			return payments.NewLedgerChannel(r)
		},
	}
}

// RegisterOwner creates or overwrites the caller's owner record.
func (s *RentalService) RegisterOwner(ctx context.Context, call registry.Call, name string, carAvailable bool, price uint32) (*models.Owner, error) {
	owner, err := registry.RegisterOwner(call, name, carAvailable, price)
	if err != nil {
		return nil, err
	}

	if err := s.store.WithTx(ctx, func(ctx context.Context, l storage.Ledger) error {
		return l.Owners().Set(ctx, owner)
	}); err != nil {
		return nil, fmt.Errorf("error saving owner: %w", err)
	}

	s.logger.Info(ctx, "registration created", "role", "owner", "account", owner.Account, "name", owner.Name, "price", owner.Price)
	return owner, nil
}

// RegisterRenter creates or overwrites the caller's renter record. The new
// record never has a car, whatever carRented says.
func (s *RentalService) RegisterRenter(ctx context.Context, call registry.Call, name string, carRented bool) (*models.Renter, error) {
	renter, err := registry.RegisterRenter(call, name, carRented)
	if err != nil {
		return nil, err
	}

	if err := s.store.WithTx(ctx, func(ctx context.Context, l storage.Ledger) error {
		return l.Renters().Set(ctx, renter)
	}); err != nil {
		return nil, fmt.Errorf("error saving renter: %w", err)
	}

	s.logger.Info(ctx, "registration created", "role", "renter", "account", renter.Account, "name", renter.Name)
	return renter, nil
}

// RentCar rents ownerAccount's car to the caller. The payment and both
// record updates commit together or not at all.
func (s *RentalService) RentCar(ctx context.Context, call registry.Call, ownerAccount string) (*RentResult, error) {
	var result *RentResult

	err := s.store.WithTx(ctx, func(ctx context.Context, l storage.Ledger) error {
		renter, err := l.Renters().Get(ctx, call.Caller)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error loading renter: %w", err)
		}
		owner, err := l.Owners().Get(ctx, ownerAccount)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error loading owner: %w", err)
		}

		rental, err := registry.RentCar(call, renter, owner)
		if err != nil {
			return err
		}

		p := rental.Payment
		transfer, err := s.newChannel(l.Transfers()).Transfer(ctx, p.From, p.To, p.Amount)
		if err != nil {
			return fmt.Errorf("error paying owner: %w", err)
		}
		if err := l.Owners().Set(ctx, rental.Owner); err != nil {
			return fmt.Errorf("error saving owner: %w", err)
		}
		if err := l.Renters().Set(ctx, rental.Renter); err != nil {
			return fmt.Errorf("error saving renter: %w", err)
		}

		result = &RentResult{Owner: rental.Owner, Renter: rental.Renter, Transfer: transfer}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "car rented",
		"owner", result.Owner.Account,
		"renter", result.Renter.Account,
		"amount", result.Transfer.Amount.String(),
		"transfer_id", result.Transfer.ID)
	return result, nil
}

func (s *RentalService) GetOwner(ctx context.Context, account string) (*models.Owner, error) {
	return s.store.Owners().Get(ctx, account)
}

func (s *RentalService) GetOwners(ctx context.Context) ([]*models.Owner, error) {
	return s.store.Owners().Values(ctx)
}

func (s *RentalService) GetRenter(ctx context.Context, account string) (*models.Renter, error) {
	return s.store.Renters().Get(ctx, account)
}

func (s *RentalService) GetRenters(ctx context.Context) ([]*models.Renter, error) {
	return s.store.Renters().Values(ctx)
}

// GetTransfers lists payments sent or received by account, newest first.
func (s *RentalService) GetTransfers(ctx context.Context, account string) ([]*models.Transfer, error) {
	return s.store.Transfers().ListByAccount(ctx, account)
}
