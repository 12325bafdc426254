package client

import (
	"context"

	"github.com/gerich15/TemplateHub/internal/client/models"
)

// Tokens is the pair issued at login.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Client is the API the CLI commands depend on.
type Client interface {
	Close() error
	SetTokens(t Tokens)
	Tokens() Tokens
	OnTokensRefreshed(fn func(Tokens))

	Ping(ctx context.Context) error
	Register(ctx context.Context, username, email, password string) (int64, error)
	Login(ctx context.Context, login, password string) (Tokens, error)
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*models.User, error)
	ListTemplates(ctx context.Context, query string) ([]models.Template, error)
	Purchase(ctx context.Context, templateID int64) (*models.Receipt, error)
	AuthorizeDownload(ctx context.Context, templateID int64) (*models.DownloadGrant, error)
	ListEntitlements(ctx context.Context) ([]models.Entitlement, error)
}
