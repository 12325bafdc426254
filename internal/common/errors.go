// Package common defines shared constants and sentinel errors used across
// client and server layers of TemplateHub. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateTransaction is returned by purchase repositories when the
	// transaction id is already taken. The ledger retries on it.
	ErrDuplicateTransaction = errors.New("duplicate transaction id")

	// ErrAlreadyExists is returned when a username or email is taken.
	ErrAlreadyExists = errors.New("already exists")

	// Entitlement errors, surfaced verbatim to callers.
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("no completed purchase for this template")
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	// Service-level errors.
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
