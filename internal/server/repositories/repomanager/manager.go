// Package repomanager vends the repositories of one storage backend behind a
// single interface, so services do not care whether PostgreSQL or the bolt
// file is underneath.
package repomanager

import (
	"context"

	"github.com/gerich15/TemplateHub/internal/server/repositories/purchases"
	"github.com/gerich15/TemplateHub/internal/server/repositories/refreshtokens"
	"github.com/gerich15/TemplateHub/internal/server/repositories/templates"
	"github.com/gerich15/TemplateHub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Templates() templates.Repository
	Purchases() purchases.Repository
	RefreshTokens() refreshtokens.Repository
	Close() error
}
