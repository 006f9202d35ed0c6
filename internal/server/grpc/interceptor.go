package grpc

import (
	"context"
	"errors"
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

type ctxKey string

const AccountIDKey ctxKey = "accountID"

// authenticated lists the methods that act on behalf of a caller.
var authenticated = map[string]bool{
	api.RentalService_RegisterOwner_FullMethodName:  true,
	api.RentalService_RegisterRenter_FullMethodName: true,
	api.RentalService_RentCar_FullMethodName:        true,
	api.RentalService_ExportSnapshot_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if authenticated[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		accountID, err := auth.GetAccountIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}

		ctx = context.WithValue(ctx, AccountIDKey, accountID)
		ctx = logging.ContextWithAccount(ctx, accountID)

	}

	return handler(ctx, req)
}

func accountFromContext(ctx context.Context) (string, error) {
	accountID, ok := ctx.Value(AccountIDKey).(string)
	if !ok || accountID == "" {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return accountID, nil
}

// requestLogInterceptor records every call with its outcome. It runs after
// authentication, so the caller account is already attached to ctx.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "request failed", args...)
	} else {
		s.logger.Info(ctx, "request handled", args...)
	}
	return resp, err
}
