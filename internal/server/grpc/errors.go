package grpc

import (
	"errors"

	"github.com/gerich15/TemplateHub/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrRefreshTokenExpired, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrInvalidCredentials, codes.Unauthenticated},
	{common.ErrUnauthenticated, codes.Unauthenticated},
	{common.ErrForbidden, codes.PermissionDenied},
	{common.ErrNotFound, codes.NotFound},
	{common.ErrAlreadyExists, codes.AlreadyExists},
	{common.ErrValidation, codes.InvalidArgument},
	{common.ErrLedgerUnavailable, codes.Unavailable},
}

// toStatus converts a service error into a gRPC status. The message of a
// known error is its sentinel text, so clients can tell e.g. an expired token
// from a bad one. Unknown errors are reported as Internal without details.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			if e.code == codes.InvalidArgument || e.code == codes.AlreadyExists {
				return status.Error(e.code, err.Error())
			}
			return status.Error(e.code, e.err.Error())
		}
	}
	return status.Error(codes.Internal, "internal error")
}
