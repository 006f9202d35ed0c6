package grpc

import (
	"context"

	"github.com/dmitrijs2005/carregistry/internal/api"
	"github.com/dmitrijs2005/carregistry/internal/currency"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
	"github.com/dmitrijs2005/carregistry/internal/server/registry"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toAPIOwner(o *models.Owner) *api.Owner {
	return &api.Owner{Account: o.Account, Name: o.Name, CarAvailable: o.CarAvailable, Price: o.Price}
}

func toAPIRenter(r *models.Renter) *api.Renter {
	return &api.Renter{Account: r.Account, Name: r.Name, CarRented: r.CarRented}
}

func toAPITransfer(t *models.Transfer) *api.Transfer {
	return &api.Transfer{ID: t.ID, From: t.From, To: t.To, Amount: t.Amount.String(), CreatedAt: t.CreatedAt}
}

// callFrom builds the registry call for the authenticated account.
func callFrom(ctx context.Context, deposit string) (registry.Call, error) {
	caller, err := accountFromContext(ctx)
	if err != nil {
		return registry.Call{}, err
	}
	amount, err := currency.ParseAmount(deposit)
	if err != nil {
		return registry.Call{}, status.Error(codes.InvalidArgument, "invalid deposit")
	}
	return registry.Call{Caller: caller, Deposit: amount}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {

	return &api.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) RegisterOwner(ctx context.Context, req *api.RegisterOwnerRequest) (*api.RegisterOwnerResponse, error) {

	call, err := callFrom(ctx, req.Deposit)
	if err != nil {
		return nil, err
	}

	owner, err := s.rentals.RegisterOwner(ctx, call, req.Name, req.CarAvailable, req.Price)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.RegisterOwnerResponse{Owner: toAPIOwner(owner)}, nil

}

func (s *GRPCServer) RegisterRenter(ctx context.Context, req *api.RegisterRenterRequest) (*api.RegisterRenterResponse, error) {

	call, err := callFrom(ctx, req.Deposit)
	if err != nil {
		return nil, err
	}

	renter, err := s.rentals.RegisterRenter(ctx, call, req.Name, req.CarRented)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.RegisterRenterResponse{Renter: toAPIRenter(renter)}, nil

}

func (s *GRPCServer) RentCar(ctx context.Context, req *api.RentCarRequest) (*api.RentCarResponse, error) {

	call, err := callFrom(ctx, req.Deposit)
	if err != nil {
		return nil, err
	}

	res, err := s.rentals.RentCar(ctx, call, req.OwnerAccount)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.RentCarResponse{
		Owner:    toAPIOwner(res.Owner),
		Renter:   toAPIRenter(res.Renter),
		Transfer: toAPITransfer(res.Transfer),
	}, nil

}

func (s *GRPCServer) GetOwner(ctx context.Context, req *api.GetOwnerRequest) (*api.GetOwnerResponse, error) {

	owner, err := s.rentals.GetOwner(ctx, req.Account)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.GetOwnerResponse{Owner: toAPIOwner(owner)}, nil

}

func (s *GRPCServer) GetOwners(ctx context.Context, req *api.GetOwnersRequest) (*api.GetOwnersResponse, error) {

	list, err := s.rentals.GetOwners(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*api.Owner, 0, len(list))
	for _, o := range list {
		out = append(out, toAPIOwner(o))
	}
	return &api.GetOwnersResponse{Owners: out}, nil

}

func (s *GRPCServer) GetRenter(ctx context.Context, req *api.GetRenterRequest) (*api.GetRenterResponse, error) {

	renter, err := s.rentals.GetRenter(ctx, req.Account)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.GetRenterResponse{Renter: toAPIRenter(renter)}, nil

}

func (s *GRPCServer) GetRenters(ctx context.Context, req *api.GetRentersRequest) (*api.GetRentersResponse, error) {

	list, err := s.rentals.GetRenters(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*api.Renter, 0, len(list))
	for _, r := range list {
		out = append(out, toAPIRenter(r))
	}
	return &api.GetRentersResponse{Renters: out}, nil

}

func (s *GRPCServer) GetTransfers(ctx context.Context, req *api.GetTransfersRequest) (*api.GetTransfersResponse, error) {

	list, err := s.rentals.GetTransfers(ctx, req.Account)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*api.Transfer, 0, len(list))
	for _, t := range list {
		out = append(out, toAPITransfer(t))
	}
	return &api.GetTransfersResponse{Transfers: out}, nil

}

func (s *GRPCServer) ExportSnapshot(ctx context.Context, req *api.ExportSnapshotRequest) (*api.ExportSnapshotResponse, error) {

	caller, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	info, err := s.snapshots.Export(ctx, caller)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Snapshot exported", "key", info.Key)
	return &api.ExportSnapshotResponse{
		Key:           info.Key,
		SchemaVersion: int32(info.SchemaVersion),
		Owners:        int64(info.Owners),
		Renters:       int64(info.Renters),
	}, nil

}
