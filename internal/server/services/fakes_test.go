package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/server/models"
	"github.com/gerich15/TemplateHub/internal/server/repositories/purchases"
	"github.com/gerich15/TemplateHub/internal/server/repositories/refreshtokens"
	"github.com/gerich15/TemplateHub/internal/server/repositories/templates"
	"github.com/gerich15/TemplateHub/internal/server/repositories/users"
)

var errStorageDown = errors.New("connection refused")

// memManager is an in-memory RepositoryManager. Ids are chosen by the test
// so scenarios can talk about "user 42" and "template 7".
type memManager struct {
	mu        sync.Mutex
	users     map[int64]*models.User
	templates map[int64]*models.Template
	purchases []models.Purchase
	tokens    map[string]models.RefreshToken
	nextID    int64

	// purchaseErr, when set, is returned by every purchases call.
	purchaseErr error
	// templateErr, when set, is returned by template lookups.
	templateErr error
}

func newMemManager() *memManager {
	return &memManager{
		users:     map[int64]*models.User{},
		templates: map[int64]*models.Template{},
		tokens:    map[string]models.RefreshToken{},
		nextID:    1000,
	}
}

func (m *memManager) addUser(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = &u
}

func (m *memManager) addTemplate(t models.Template) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[t.ID] = &t
}

func (m *memManager) records() []models.Purchase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Purchase(nil), m.purchases...)
}

func (m *memManager) RunMigrations(ctx context.Context) error { return nil }
func (m *memManager) Users() users.Repository                 { return memUsers{m} }
func (m *memManager) Templates() templates.Repository         { return memTemplates{m} }
func (m *memManager) Purchases() purchases.Repository         { return memPurchases{m} }
func (m *memManager) RefreshTokens() refreshtokens.Repository { return memTokens{m} }
func (m *memManager) Close() error                            { return nil }

type memUsers struct{ m *memManager }

func (r memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, existing := range r.m.users {
		if existing.UserName == u.UserName || existing.Email == strings.ToLower(u.Email) {
			return nil, common.ErrAlreadyExists
		}
	}
	r.m.nextID++
	c := *u
	c.ID = r.m.nextID
	c.Email = strings.ToLower(c.Email)
	c.CreatedAt = time.Now()
	r.m.users[c.ID] = &c
	return &c, nil
}

func (r memUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (r memUsers) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Email == strings.ToLower(login) || u.UserName == login {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

type memTemplates struct{ m *memManager }

func (r memTemplates) Create(ctx context.Context, t *models.Template) (*models.Template, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextID++
	c := *t
	c.ID = r.m.nextID
	r.m.templates[c.ID] = &c
	return &c, nil
}

func (r memTemplates) GetByID(ctx context.Context, id int64) (*models.Template, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.templateErr != nil {
		return nil, r.m.templateErr
	}
	t, ok := r.m.templates[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := *t
	return &c, nil
}

func (r memTemplates) List(ctx context.Context) ([]models.Template, error) {
	return r.filter(func(models.Template) bool { return true })
}

func (r memTemplates) Search(ctx context.Context, q string) ([]models.Template, error) {
	q = strings.ToLower(q)
	return r.filter(func(t models.Template) bool {
		return strings.Contains(strings.ToLower(t.Name+" "+t.Description+" "+t.Category), q)
	})
}

func (r memTemplates) Count(ctx context.Context) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return int64(len(r.m.templates)), nil
}

func (r memTemplates) filter(keep func(models.Template) bool) ([]models.Template, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	res := []models.Template{}
	for _, t := range r.m.templates {
		if keep(*t) {
			res = append(res, *t)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

type memPurchases struct{ m *memManager }

func (r memPurchases) Create(ctx context.Context, p *models.Purchase) (*models.Purchase, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.purchaseErr != nil {
		return nil, r.m.purchaseErr
	}
	for _, existing := range r.m.purchases {
		if existing.TransactionID == p.TransactionID {
			return nil, common.ErrDuplicateTransaction
		}
	}
	r.m.nextID++
	c := *p
	c.ID = r.m.nextID
	r.m.purchases = append(r.m.purchases, c)
	return &c, nil
}

func (r memPurchases) HasStatus(ctx context.Context, userID, templateID int64, status models.PurchaseStatus) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.purchaseErr != nil {
		return false, r.m.purchaseErr
	}
	for _, p := range r.m.purchases {
		if p.UserID == userID && p.TemplateID == templateID && p.Status == status {
			return true, nil
		}
	}
	return false, nil
}

func (r memPurchases) ListByUser(ctx context.Context, userID int64, status models.PurchaseStatus) ([]models.Purchase, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.purchaseErr != nil {
		return nil, r.m.purchaseErr
	}
	res := []models.Purchase{}
	for _, p := range r.m.purchases {
		if p.UserID == userID && p.Status == status {
			res = append(res, p)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if !res[i].PurchasedAt.Equal(res[j].PurchasedAt) {
			return res[i].PurchasedAt.Before(res[j].PurchasedAt)
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}

type memTokens struct{ m *memManager }

func (r memTokens) Create(ctx context.Context, userID int64, token string, validity time.Duration) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.tokens[token] = models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (r memTokens) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.tokens[token]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &t, nil
}

func (r memTokens) Rotate(ctx context.Context, oldToken, newToken string, validity time.Duration) (*models.RefreshToken, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.tokens[oldToken]
	if !ok {
		return nil, common.ErrNotFound
	}
	delete(r.m.tokens, oldToken)
	r.m.tokens[newToken] = models.RefreshToken{UserID: t.UserID, Token: newToken, Expires: time.Now().Add(validity)}
	return &t, nil
}

func (r memTokens) Delete(ctx context.Context, token string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	delete(r.m.tokens, token)
	return nil
}

type fakeFileStore struct {
	err  error
	keys []string
}

func (f *fakeFileStore) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://files.test/" + key + "?X-Amz-Expires=" + ttl.Truncate(time.Second).String(), nil
}
