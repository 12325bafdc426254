// Package templates declares the catalog repository contract and its
// PostgreSQL implementation.
package templates

import (
	"context"

	"github.com/gerich15/TemplateHub/internal/server/models"
)

// Repository is read-mostly access to the template catalog. GetByID returns
// common.ErrNotFound for unknown ids. List and Search order by id.
type Repository interface {
	Create(ctx context.Context, t *models.Template) (*models.Template, error)
	GetByID(ctx context.Context, id int64) (*models.Template, error)
	List(ctx context.Context) ([]models.Template, error)
	// Search matches query case-insensitively as a substring of the name,
	// description or category.
	Search(ctx context.Context, query string) ([]models.Template, error)
	Count(ctx context.Context) (int64, error)
}
