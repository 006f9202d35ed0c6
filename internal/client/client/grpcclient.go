package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/carregistry/internal/api"
	"github.com/dmitrijs2005/carregistry/internal/common"
	"github.com/dmitrijs2005/carregistry/internal/currency"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.RentalServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewRentalClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewRentalServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// SetToken replaces the access token sent with every request. An empty
// token logs the client out.
func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) RegisterOwner(ctx context.Context, name string, carAvailable bool, price uint32, deposit currency.Amount) (*api.Owner, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &api.RegisterOwnerRequest{Name: name, CarAvailable: carAvailable, Price: price, Deposit: deposit.String()}

	resp, err := s.client.RegisterOwner(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Owner, nil
}

func (s *GRPCClient) RegisterRenter(ctx context.Context, name string, carRented bool, deposit currency.Amount) (*api.Renter, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &api.RegisterRenterRequest{Name: name, CarRented: carRented, Deposit: deposit.String()}

	resp, err := s.client.RegisterRenter(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Renter, nil
}

func (s *GRPCClient) RentCar(ctx context.Context, ownerAccount string, deposit currency.Amount) (*api.RentCarResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &api.RentCarRequest{OwnerAccount: ownerAccount, Deposit: deposit.String()}

	resp, err := s.client.RentCar(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) GetOwner(ctx context.Context, account string) (*api.Owner, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetOwner(ctx, &api.GetOwnerRequest{Account: account})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Owner, nil
}

func (s *GRPCClient) GetOwners(ctx context.Context) ([]*api.Owner, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetOwners(ctx, &api.GetOwnersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Owners, nil
}

func (s *GRPCClient) GetRenter(ctx context.Context, account string) (*api.Renter, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetRenter(ctx, &api.GetRenterRequest{Account: account})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Renter, nil
}

func (s *GRPCClient) GetRenters(ctx context.Context) ([]*api.Renter, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetRenters(ctx, &api.GetRentersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Renters, nil
}

func (s *GRPCClient) GetTransfers(ctx context.Context, account string) ([]*api.Transfer, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetTransfers(ctx, &api.GetTransfersRequest{Account: account})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Transfers, nil
}

func (s *GRPCClient) ExportSnapshot(ctx context.Context) (*api.ExportSnapshotResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ExportSnapshot(ctx, &api.ExportSnapshotRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument, codes.FailedPrecondition:
		// registry messages are meant for the user as-is
		return errors.New(st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
