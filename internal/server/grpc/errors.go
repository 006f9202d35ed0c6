package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/carregistry/internal/common"
	"github.com/dmitrijs2005/carregistry/internal/server/registry"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus converts a service error into the status returned to clients.
// Unexpected errors are logged and hidden behind "internal error".
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var re *registry.Error
	if errors.As(err, &re) {
		switch re.Kind {
		case registry.KindInvalidName, registry.KindInvalidPrice,
			registry.KindInsufficientDeposit, registry.KindDepositMismatch:
			return status.Error(codes.InvalidArgument, re.Error())
		default:
			return status.Error(codes.FailedPrecondition, re.Error())
		}
	}

	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	}

	s.logger.Error(ctx, "service error", "err", err)
	return status.Error(codes.Internal, "internal error")
}
