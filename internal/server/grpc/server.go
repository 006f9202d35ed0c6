// Package grpc exposes the rental service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/carregistry/internal/api"
	"github.com/dmitrijs2005/carregistry/internal/logging"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
	"github.com/dmitrijs2005/carregistry/internal/server/registry"
	"github.com/dmitrijs2005/carregistry/internal/server/services"
	"google.golang.org/grpc"
)

// RentalService is the business API the handlers call.
type RentalService interface {
	RegisterOwner(ctx context.Context, call registry.Call, name string, carAvailable bool, price uint32) (*models.Owner, error)
	RegisterRenter(ctx context.Context, call registry.Call, name string, carRented bool) (*models.Renter, error)
	RentCar(ctx context.Context, call registry.Call, ownerAccount string) (*services.RentResult, error)
	GetOwner(ctx context.Context, account string) (*models.Owner, error)
	GetOwners(ctx context.Context) ([]*models.Owner, error)
	GetRenter(ctx context.Context, account string) (*models.Renter, error)
	GetRenters(ctx context.Context) ([]*models.Renter, error)
	GetTransfers(ctx context.Context, account string) ([]*models.Transfer, error)
}

type SnapshotExporter interface {
	Export(ctx context.Context, caller string) (*services.SnapshotInfo, error)
}

type GRPCServer struct {
	api.UnimplementedRentalServiceServer
	address   string
	rentals   RentalService
	snapshots SnapshotExporter
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, rs RentalService, ss SnapshotExporter, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		rentals:   rs,
		snapshots: ss,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor, s.requestLogInterceptor))
	api.RegisterRentalServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
