package library

import (
	"context"

	"github.com/gerich15/TemplateHub/internal/client/models"
)

// Repository stores one cached library per login.
type Repository interface {
	// Replace swaps the cached library of owner for items, keeping their order.
	Replace(ctx context.Context, owner string, items []models.Entitlement) error
	// List returns the cached library of owner in the order it was stored.
	List(ctx context.Context, owner string) ([]models.Entitlement, error)
	// Clear drops the cached library of owner.
	Clear(ctx context.Context, owner string) error
}
