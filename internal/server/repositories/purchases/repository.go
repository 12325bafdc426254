// Package purchases declares the entitlement ledger storage contract and its
// PostgreSQL implementation.
package purchases

import (
	"context"

	"github.com/gerich15/TemplateHub/internal/server/models"
)

// Repository persists entitlement records. There is no update path: a
// record's status is fixed at insert time.
type Repository interface {
	// Create inserts p and fills in its id. A transaction id that is already
	// taken yields common.ErrDuplicateTransaction and nothing is written.
	Create(ctx context.Context, p *models.Purchase) (*models.Purchase, error)

	// HasStatus reports whether at least one record for (userID, templateID)
	// carries the given status.
	HasStatus(ctx context.Context, userID, templateID int64, status models.PurchaseStatus) (bool, error)

	// ListByUser returns the user's records with the given status ordered by
	// purchase time, ties broken by id.
	ListByUser(ctx context.Context, userID int64, status models.PurchaseStatus) ([]models.Purchase, error)
}
