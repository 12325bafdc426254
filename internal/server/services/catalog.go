package services

import (
	"context"
	"strings"

	"github.com/gerich15/TemplateHub/internal/server/models"
	"github.com/gerich15/TemplateHub/internal/server/repositories/repomanager"
)

// CatalogService is read access to the template catalog.
type CatalogService struct {
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{repomanager: m}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Template, error) {
	return s.repomanager.Templates().List(ctx)
}

// Search matches q case-insensitively against name, description and
// category. A blank query lists the whole catalog.
func (s *CatalogService) Search(ctx context.Context, q string) ([]models.Template, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.List(ctx)
	}
	return s.repomanager.Templates().Search(ctx, q)
}

// Get returns common.ErrNotFound for unknown ids.
func (s *CatalogService) Get(ctx context.Context, id int64) (*models.Template, error) {
	return s.repomanager.Templates().GetByID(ctx, id)
}
