package grpcserver

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bankstream/domain/ledger"
	"bankstream/service"
)

// toStatus maps domain and session errors onto gRPC status codes. Errors
// that already carry a status pass through. Anything unrecognised is
// logged and reported as Internal without its detail.
func toStatus(log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, "insufficient funds")
	case errors.Is(err, service.ErrProtocolViolation),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrSameAccount),
		errors.Is(err, ledger.ErrBalanceOverflow):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "call cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	if st, ok := status.FromError(err); ok {
		return st.Err()
	}

	log.Error("unexpected handler error", zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}
