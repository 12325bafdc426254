// Package models holds the client-side view of marketplace data, decoded
// from the wire types returned by the server.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
}

type Template struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImagePath   string
}

type Receipt struct {
	TransactionID string
	TemplateID    int64
	TemplateName  string
	Price         decimal.Decimal
	PurchasedAt   time.Time
}

// DownloadGrant is a short-lived link to a purchased template's archive.
type DownloadGrant struct {
	Token        string
	TemplateID   int64
	TemplateName string
	URL          string
	ExpiresAt    time.Time
}

// Expired reports whether the grant can no longer be redeemed at now.
func (g DownloadGrant) Expired(now time.Time) bool {
	return !g.ExpiresAt.IsZero() && !now.Before(g.ExpiresAt)
}

type Entitlement struct {
	TemplateID   int64
	TemplateName string
	PurchasedAt  time.Time
}
