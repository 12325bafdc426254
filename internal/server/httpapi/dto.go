package httpapi

import (
	"time"

	"github.com/gerich15/TemplateHub/internal/server/models"
	"github.com/shopspring/decimal"
)

// Response bodies. Prices are encoded as decimal strings.

type pingResponse struct {
	Status string `json:"status"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type templateResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImagePath   string          `json:"image_path,omitempty"`
}

type listTemplatesResponse struct {
	Templates []templateResponse `json:"templates"`
}

type receiptResponse struct {
	TransactionID string          `json:"transaction_id"`
	TemplateID    int64           `json:"template_id"`
	TemplateName  string          `json:"template_name"`
	Price         decimal.Decimal `json:"price"`
	PurchasedAt   time.Time       `json:"purchased_at"`
}

type downloadGrantResponse struct {
	Token        string    `json:"token"`
	TemplateID   int64     `json:"template_id"`
	TemplateName string    `json:"template_name"`
	URL          string    `json:"url"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type entitlementResponse struct {
	TemplateID   int64     `json:"template_id"`
	TemplateName string    `json:"template_name"`
	PurchasedAt  time.Time `json:"purchased_at"`
}

type listEntitlementsResponse struct {
	Entitlements []entitlementResponse `json:"entitlements"`
}

func toUser(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.UserName, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toTemplate(t models.Template) templateResponse {
	return templateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Price:       t.Price,
		Category:    t.Category,
		ImagePath:   t.ImagePath,
	}
}
