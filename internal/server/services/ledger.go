package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/logging"
	"github.com/gerich15/TemplateHub/internal/server/models"
	"github.com/gerich15/TemplateHub/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// MaxTransactionAttempts bounds how many fresh transaction ids RecordPurchase
// tries before giving up.
const MaxTransactionAttempts = 3

// Ledger is the entitlement ledger: it appends purchase records and answers
// whether a user holds a completed entitlement.
type Ledger struct {
	repomanager      repomanager.RepositoryManager
	logger           logging.Logger
	newTransactionID func() (string, error)
	now              func() time.Time
}

func NewLedger(m repomanager.RepositoryManager, logger logging.Logger) *Ledger {
	return &Ledger{
		repomanager:      m,
		logger:           logger.With("module", "ledger"),
		newTransactionID: randomTransactionID,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func randomTransactionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// RecordPurchase appends a completed record for (userID, templateID) under a
// fresh transaction id. Unknown users or templates yield common.ErrNotFound
// and nothing is written. Storage failures, including running out of
// transaction id attempts, yield common.ErrLedgerUnavailable.
func (l *Ledger) RecordPurchase(ctx context.Context, userID, templateID int64) (*models.Purchase, error) {
	if _, err := l.repomanager.Users().GetByID(ctx, userID); err != nil {
		return nil, l.lookupErr("user", err)
	}
	if _, err := l.repomanager.Templates().GetByID(ctx, templateID); err != nil {
		return nil, l.lookupErr("template", err)
	}

	repo := l.repomanager.Purchases()

	for attempt := 1; attempt <= MaxTransactionAttempts; attempt++ {
		txID, err := l.newTransactionID()
		if err != nil {
			return nil, fmt.Errorf("%w: transaction id: %v", common.ErrLedgerUnavailable, err)
		}

		p, err := repo.Create(ctx, &models.Purchase{
			UserID:        userID,
			TemplateID:    templateID,
			PurchasedAt:   l.now(),
			TransactionID: txID,
			Status:        models.PurchaseStatusCompleted,
		})
		if err == nil {
			l.logger.Info(ctx, "purchase recorded",
				"user_id", userID, "template_id", templateID, "transaction_id", txID, "purchase_id", p.ID)
			return p, nil
		}

		if !errors.Is(err, common.ErrDuplicateTransaction) {
			l.logger.Error(ctx, "record purchase", "user_id", userID, "template_id", templateID, "error", err)
			return nil, fmt.Errorf("%w: %v", common.ErrLedgerUnavailable, err)
		}

		l.logger.Warn(ctx, "transaction id collision", "transaction_id", txID, "attempt", attempt)
	}

	return nil, fmt.Errorf("%w: no free transaction id after %d attempts", common.ErrLedgerUnavailable, MaxTransactionAttempts)
}

// HasCompletedEntitlement reports whether at least one completed record
// exists for the pair.
func (l *Ledger) HasCompletedEntitlement(ctx context.Context, userID, templateID int64) (bool, error) {
	ok, err := l.repomanager.Purchases().HasStatus(ctx, userID, templateID, models.PurchaseStatusCompleted)
	if err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrLedgerUnavailable, err)
	}
	return ok, nil
}

// ListCompletedForUser returns the user's completed records, oldest first.
func (l *Ledger) ListCompletedForUser(ctx context.Context, userID int64) ([]models.Purchase, error) {
	list, err := l.repomanager.Purchases().ListByUser(ctx, userID, models.PurchaseStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrLedgerUnavailable, err)
	}
	return list, nil
}

func (l *Ledger) lookupErr(what string, err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("%s: %w", what, common.ErrNotFound)
	}
	return fmt.Errorf("%w: %s lookup: %v", common.ErrLedgerUnavailable, what, err)
}
