package repomanager

import (
	"context"

	"github.com/gerich15/TemplateHub/internal/server/repositories/boltstore"
	"github.com/gerich15/TemplateHub/internal/server/repositories/purchases"
	"github.com/gerich15/TemplateHub/internal/server/repositories/refreshtokens"
	"github.com/gerich15/TemplateHub/internal/server/repositories/templates"
	"github.com/gerich15/TemplateHub/internal/server/repositories/users"
)

// BoltRepositoryManager serves every repository from one bolt file.
type BoltRepositoryManager struct {
	store *boltstore.Store
}

func NewBoltRepositoryManager(path string) (*BoltRepositoryManager, error) {
	s, err := boltstore.Open(path)
	if err != nil {
		return nil, err
	}
	return &BoltRepositoryManager{store: s}, nil
}

func (m *BoltRepositoryManager) RunMigrations(ctx context.Context) error {
	return m.store.Migrate(ctx)
}

func (m *BoltRepositoryManager) Users() users.Repository {
	return m.store.Users()
}

func (m *BoltRepositoryManager) Templates() templates.Repository {
	return m.store.Templates()
}

func (m *BoltRepositoryManager) Purchases() purchases.Repository {
	return m.store.Purchases()
}

func (m *BoltRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.store.RefreshTokens()
}

func (m *BoltRepositoryManager) Close() error {
	return m.store.Close()
}
