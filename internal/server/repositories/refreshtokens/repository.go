// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"
	"time"

	"github.com/gerich15/TemplateHub/internal/server/models"
)

// Repository defines operations for issuing, retrieving, rotating and revoking refresh tokens.
type Repository interface {
	// Create stores a new refresh token for userID with an expiry of now+validity.
	Create(ctx context.Context, userID int64, token string, validity time.Duration) error

	// Find looks up a refresh token by its opaque token string and returns its metadata.
	// Absent tokens yield common.ErrNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Rotate atomically consumes oldToken and stores newToken for the same user.
	// It returns the consumed row. Only one of several concurrent rotations of
	// the same token succeeds; the others see common.ErrNotFound.
	Rotate(ctx context.Context, oldToken, newToken string, validity time.Duration) (*models.RefreshToken, error)

	// Delete removes a refresh token by its token string. Deleting a non-existent
	// token is not an error.
	Delete(ctx context.Context, token string) error
}
