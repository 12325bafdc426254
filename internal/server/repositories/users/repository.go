// Package users declares the user directory repository contract and its
// PostgreSQL implementation.
package users

import (
	"context"

	"github.com/gerich15/TemplateHub/internal/server/models"
)

// Repository stores marketplace accounts. Create reports a taken username or
// email with common.ErrAlreadyExists; lookups of absent users return
// common.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// GetByLogin matches either the email (case-insensitively) or the username.
	GetByLogin(ctx context.Context, login string) (*models.User, error)
}
