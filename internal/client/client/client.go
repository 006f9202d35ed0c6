package client

import (
	"context"

	"github.com/dmitrijs2005/carregistry/internal/api"
	"github.com/dmitrijs2005/carregistry/internal/currency"
)

type Client interface {
	Close() error
	SetToken(token string)
	Ping(ctx context.Context) error
	RegisterOwner(ctx context.Context, name string, carAvailable bool, price uint32, deposit currency.Amount) (*api.Owner, error)
	RegisterRenter(ctx context.Context, name string, carRented bool, deposit currency.Amount) (*api.Renter, error)
	RentCar(ctx context.Context, ownerAccount string, deposit currency.Amount) (*api.RentCarResponse, error)
	GetOwner(ctx context.Context, account string) (*api.Owner, error)
	GetOwners(ctx context.Context) ([]*api.Owner, error)
	GetRenter(ctx context.Context, account string) (*api.Renter, error)
	GetRenters(ctx context.Context) ([]*api.Renter, error)
	GetTransfers(ctx context.Context, account string) ([]*api.Transfer, error)
	ExportSnapshot(ctx context.Context) (*api.ExportSnapshotResponse, error)
}
