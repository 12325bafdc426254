package grpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{common.ErrUnauthenticated, codes.Unauthenticated},
		{common.ErrInvalidCredentials, codes.Unauthenticated},
		{common.ErrTokenExpired, codes.Unauthenticated},
		{fmt.Errorf("template 3: %w", common.ErrNotFound), codes.NotFound},
		{common.ErrForbidden, codes.PermissionDenied},
		{fmt.Errorf("%w: username", common.ErrAlreadyExists), codes.AlreadyExists},
		{fmt.Errorf("%w: email", common.ErrValidation), codes.InvalidArgument},
		{fmt.Errorf("%w: db down", common.ErrLedgerUnavailable), codes.Unavailable},
		{errors.New("boom"), codes.Internal},
		{status.Error(codes.Canceled, "gone"), codes.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(toStatus(tt.err)))
		})
	}
	assert.NoError(t, toStatus(nil))
}

func TestToStatus_HidesInternalDetails(t *testing.T) {
	st, _ := status.FromError(toStatus(fmt.Errorf("%w: dial tcp 10.0.0.1:5432", common.ErrLedgerUnavailable)))
	assert.Equal(t, "ledger unavailable", st.Message())

	st, _ = status.FromError(toStatus(fmt.Errorf("%w: username", common.ErrAlreadyExists)))
	assert.Equal(t, "already exists: username", st.Message())

	st, _ = status.FromError(toStatus(common.ErrTokenExpired))
	assert.Equal(t, "token expired", st.Message())
}
