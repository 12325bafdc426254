package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusFailed    PurchaseStatus = "failed"
)

func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusCompleted, PurchaseStatusFailed:
		return true
	}
	return false
}

// Purchase is one entitlement record in the ledger. TransactionID is unique
// across all records; the same user may own several records for one template.
type Purchase struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"user_id"`
	TemplateID    int64          `json:"template_id"`
	PurchasedAt   time.Time      `json:"purchased_at"`
	TransactionID string         `json:"transaction_id"`
	Status        PurchaseStatus `json:"status"`
}

// Receipt is returned to the buyer after a successful purchase.
type Receipt struct {
	TransactionID string
	TemplateID    int64
	TemplateName  string
	Price         decimal.Decimal
	PurchasedAt   time.Time
}

// Entitlement is one row of a user's library.
type Entitlement struct {
	TemplateID   int64
	TemplateName string
	PurchasedAt  time.Time
}

// DownloadGrant authorizes fetching a template archive until ExpiresAt.
type DownloadGrant struct {
	Token        string
	TemplateID   int64
	TemplateName string
	URL          string
	ExpiresAt    time.Time
}
