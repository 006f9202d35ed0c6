package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/carregistry/internal/api"
	"github.com/dmitrijs2005/carregistry/internal/auth"
	"github.com/dmitrijs2005/carregistry/internal/common"
	"github.com/dmitrijs2005/carregistry/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// helper to build server
func newTestServer(secret string) *GRPCServer {
	return &GRPCServer{
		logger:    nopLogger{},
		jwtSecret: []byte(secret),
		rentals:   &fakeRentals{},
		snapshots: &fakeSnapshots{},
	}
}

func TestInterceptor_PublicMethod_AllowsWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: api.RentalService_GetOwners_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_Protected_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	for _, m := range []string{
		api.RentalService_RegisterOwner_FullMethodName,
		api.RentalService_RegisterRenter_FullMethodName,
		api.RentalService_RentCar_FullMethodName,
		api.RentalService_ExportSnapshot_FullMethodName,
	} {
		info := &grpc.UnaryServerInfo{FullMethod: m}

		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			t.Fatal("handler should not be called when token missing")
			return nil, nil
		}

		_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("%s: expected Unauthenticated, got %v", m, status.Code(err))
		}
		if status.Convert(err).Message() != "missing token" {
			t.Fatalf("%s: expected 'missing token', got %q", m, status.Convert(err).Message())
		}
	}
}

func TestInterceptor_Protected_InvalidToken(t *testing.T) {
	s := newTestServer("secret")

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: "not-a-valid-jwt",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: api.RentalService_RentCar_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "invalid token" {
		t.Fatalf("expected 'invalid token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_Protected_ExpiredToken(t *testing.T) {
	secret := "secret"
	s := newTestServer(secret)

	token, err := auth.GenerateToken("allright.testnet", []byte(secret), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		common.AccessTokenHeaderName: token,
	}))
	info := &grpc.UnaryServerInfo{FullMethod: api.RentalService_RentCar_FullMethodName}

	_, err = s.accessTokenInterceptor(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for expired token")
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "token expired" {
		t.Fatalf("expected 'token expired', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_Protected_ValidToken_SetsAccountID(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)

	accountID := "allright.testnet"
	token, err := auth.GenerateToken(accountID, []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: token,
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: api.RentalService_RentCar_FullMethodName}

	var gotFromCtx any
	var logAccount string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotFromCtx = ctx.Value(AccountIDKey)
		logAccount, _ = logging.AccountFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if gotFromCtx != accountID {
		t.Fatalf("account id not propagated in context: got %v want %v", gotFromCtx, accountID)
	}
	if logAccount != accountID {
		t.Fatalf("account id not tagged for logging: got %q want %q", logAccount, accountID)
	}
}
