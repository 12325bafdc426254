// Package seed fills an empty store with the sample catalog and the demo
// account shipped in catalog.yaml.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/cryptox"
	"github.com/gerich15/TemplateHub/internal/logging"
	"github.com/gerich15/TemplateHub/internal/server/models"
	"github.com/gerich15/TemplateHub/internal/server/repositories/repomanager"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Templates []TemplateEntry `yaml:"templates"`
	Users     []UserEntry     `yaml:"users"`
}

type TemplateEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Category    string `yaml:"category"`
	FilePath    string `yaml:"file_path"`
	ImagePath   string `yaml:"image_path"`
}

type UserEntry struct {
	UserName string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Default returns the embedded sample catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, t := range c.Templates {
		p, err := decimal.NewFromString(t.Price)
		if err != nil {
			return nil, fmt.Errorf("template %q: price: %w", t.Name, err)
		}
		if p.IsNegative() {
			return nil, fmt.Errorf("template %q: negative price", t.Name)
		}
		if t.Name == "" || t.FilePath == "" {
			return nil, fmt.Errorf("template #%d: name and file_path are required", i+1)
		}
	}
	return c, nil
}

// Apply inserts the templates when the catalog is empty, and each user
// whose email is not registered yet. Running it twice changes nothing.
func Apply(ctx context.Context, m repomanager.RepositoryManager, c *Catalog, logger logging.Logger) error {
	n, err := m.Templates().Count(ctx)
	if err != nil {
		return err
	}

	if n == 0 {
		for _, t := range c.Templates {
			tpl := &models.Template{
				Name:        t.Name,
				Description: t.Description,
				Price:       decimal.RequireFromString(t.Price),
				Category:    t.Category,
				FilePath:    t.FilePath,
				ImagePath:   t.ImagePath,
			}
			if _, err := m.Templates().Create(ctx, tpl); err != nil {
				return fmt.Errorf("seed template %q: %w", t.Name, err)
			}
		}
		logger.Info(ctx, "catalog seeded", "templates", len(c.Templates))
	}

	for _, u := range c.Users {
		_, err := m.Users().GetByLogin(ctx, u.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		hash, err := cryptox.HashPassword(u.Password)
		if err != nil {
			return err
		}
		if _, err := m.Users().Create(ctx, &models.User{UserName: u.UserName, Email: u.Email, PasswordHash: hash}); err != nil {
			return fmt.Errorf("seed user %q: %w", u.UserName, err)
		}
		logger.Info(ctx, "demo user created", "username", u.UserName, "email", u.Email)
	}

	return nil
}
