package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/carregistry/internal/api"
	"github.com/dmitrijs2005/carregistry/internal/auth"
	"github.com/dmitrijs2005/carregistry/internal/common"
	"github.com/dmitrijs2005/carregistry/internal/server/config"
	"github.com/dmitrijs2005/carregistry/internal/server/services"
	"github.com/dmitrijs2005/carregistry/internal/server/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const e2eSecret = "e2e-secret"

func startBufconnServer(t *testing.T) api.RentalServiceClient {
	t.Helper()

	store := storage.NewMemoryStore()
	cfg := &config.Config{AdminAccount: "registry.testnet"}
	rs := services.NewRentalService(store, nopLogger{})
	ss := services.NewSnapshotService(store, cfg, nopLogger{})

	srv, err := NewGRPCServer("bufnet", nopLogger{}, rs, ss, e2eSecret)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})

	return api.NewRentalServiceClient(conn)
}

func as(t *testing.T, account string) context.Context {
	t.Helper()
	tok, err := auth.GenerateToken(account, []byte(e2eSecret), time.Minute)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, tok)
}

func TestE2E_RentalFlow(t *testing.T) {
	c := startBufconnServer(t)
	oneToken := "1000000000000000000000000"

	ping, err := c.Ping(context.Background(), &api.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.Status)

	_, err = c.RegisterOwner(context.Background(), &api.RegisterOwnerRequest{Name: "Juan Carlos", CarAvailable: true, Price: 3, Deposit: oneToken})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	owner, err := c.RegisterOwner(as(t, "laion.testnet"), &api.RegisterOwnerRequest{Name: "Juan Carlos", CarAvailable: true, Price: 3, Deposit: oneToken})
	require.NoError(t, err)
	assert.Equal(t, "laion.testnet", owner.Owner.Account)

	renter, err := c.RegisterRenter(as(t, "allright.testnet"), &api.RegisterRenterRequest{Name: "Allright", CarRented: true, Deposit: oneToken})
	require.NoError(t, err)
	assert.False(t, renter.Renter.CarRented)

	_, err = c.RentCar(as(t, "allright.testnet"), &api.RentCarRequest{OwnerAccount: "laion.testnet", Deposit: "2999999999999999999999999"})
	st := status.Convert(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "El depósito debe ser igual al precio estipulado por el propietario.", st.Message())

	rent, err := c.RentCar(as(t, "allright.testnet"), &api.RentCarRequest{OwnerAccount: "laion.testnet", Deposit: "3000000000000000000000000"})
	require.NoError(t, err)
	assert.False(t, rent.Owner.CarAvailable)
	assert.True(t, rent.Renter.CarRented)
	assert.Equal(t, "3000000000000000000000000", rent.Transfer.Amount)

	_, err = c.RentCar(as(t, "allright.testnet"), &api.RentCarRequest{OwnerAccount: "laion.testnet", Deposit: "3000000000000000000000000"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	got, err := c.GetOwner(context.Background(), &api.GetOwnerRequest{Account: "laion.testnet"})
	require.NoError(t, err)
	assert.False(t, got.Owner.CarAvailable)

	owners, err := c.GetOwners(context.Background(), &api.GetOwnersRequest{})
	require.NoError(t, err)
	assert.Len(t, owners.Owners, 1)

	renters, err := c.GetRenters(context.Background(), &api.GetRentersRequest{})
	require.NoError(t, err)
	require.Len(t, renters.Renters, 1)
	assert.True(t, renters.Renters[0].CarRented)

	ts, err := c.GetTransfers(context.Background(), &api.GetTransfersRequest{Account: "laion.testnet"})
	require.NoError(t, err)
	require.Len(t, ts.Transfers, 1)
	assert.Equal(t, rent.Transfer.ID, ts.Transfers[0].ID)

	_, err = c.GetRenter(context.Background(), &api.GetRenterRequest{Account: "ghost"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = c.ExportSnapshot(as(t, "laion.testnet"), &api.ExportSnapshotRequest{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}
