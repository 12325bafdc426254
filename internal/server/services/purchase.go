package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/logging"
	"github.com/gerich15/TemplateHub/internal/server/auth"
	"github.com/gerich15/TemplateHub/internal/server/config"
	"github.com/gerich15/TemplateHub/internal/server/models"
	"github.com/gerich15/TemplateHub/internal/server/repositories/repomanager"
	"github.com/gerich15/TemplateHub/internal/server/session"
)

// PurchaseService orchestrates buying templates and gating downloads on a
// completed entitlement.
type PurchaseService struct {
	repomanager repomanager.RepositoryManager
	ledger      *Ledger
	files       FileStore
	logger      logging.Logger
	grantSecret []byte
	grantTTL    time.Duration
}

func NewPurchaseService(m repomanager.RepositoryManager, ledger *Ledger, files FileStore, cfg *config.Config, logger logging.Logger) *PurchaseService {
	return &PurchaseService{
		repomanager: m,
		ledger:      ledger,
		files:       files,
		logger:      logger.With("module", "purchases"),
		grantSecret: []byte(cfg.SecretKey),
		grantTTL:    cfg.GrantTokenValidityDuration,
	}
}

// Purchase records a completed purchase for the caller. Each call creates a
// new record, even for a template the caller already owns.
func (s *PurchaseService) Purchase(ctx context.Context, caller session.Caller, templateID int64) (*models.Receipt, error) {
	userID, ok := caller.UserID()
	if !ok {
		return nil, common.ErrUnauthenticated
	}

	tpl, err := s.template(ctx, templateID)
	if err != nil {
		return nil, err
	}

	p, err := s.ledger.RecordPurchase(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}

	return &models.Receipt{
		TransactionID: p.TransactionID,
		TemplateID:    tpl.ID,
		TemplateName:  tpl.Name,
		Price:         tpl.Price,
		PurchasedAt:   p.PurchasedAt,
	}, nil
}

// AuthorizeDownload checks, in order, that the caller is authenticated, that
// the template exists and that the caller holds a completed entitlement, then
// issues a signed grant plus a presigned URL for the archive.
func (s *PurchaseService) AuthorizeDownload(ctx context.Context, caller session.Caller, templateID int64) (*models.DownloadGrant, error) {
	userID, ok := caller.UserID()
	if !ok {
		return nil, common.ErrUnauthenticated
	}

	tpl, err := s.template(ctx, templateID)
	if err != nil {
		return nil, err
	}

	entitled, err := s.ledger.HasCompletedEntitlement(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}
	if !entitled {
		s.logger.Info(ctx, "download denied", "user_id", userID, "template_id", templateID)
		return nil, common.ErrForbidden
	}

	token, expiresAt, err := auth.GenerateGrantToken(userID, templateID, s.grantSecret, s.grantTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: sign grant: %v", common.ErrInternal, err)
	}

	url, err := s.files.PresignGet(ctx, tpl.FilePath, s.grantTTL)
	if err != nil {
		s.logger.Error(ctx, "presign download", "template_id", templateID, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	return &models.DownloadGrant{
		Token:        token,
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		URL:          url,
		ExpiresAt:    expiresAt,
	}, nil
}

// ListMyEntitlements returns the caller's library, oldest purchase first.
// Records whose template no longer exists are skipped.
func (s *PurchaseService) ListMyEntitlements(ctx context.Context, caller session.Caller) ([]models.Entitlement, error) {
	userID, ok := caller.UserID()
	if !ok {
		return nil, common.ErrUnauthenticated
	}

	records, err := s.ledger.ListCompletedForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// nil marks a template that no longer exists
	templates := make(map[int64]*models.Template)
	result := make([]models.Entitlement, 0, len(records))
	for _, p := range records {
		tpl, seen := templates[p.TemplateID]
		if !seen {
			var err error
			tpl, err = s.repomanager.Templates().GetByID(ctx, p.TemplateID)
			switch {
			case errors.Is(err, common.ErrNotFound):
				tpl = nil
			case err != nil:
				return nil, err
			}
			templates[p.TemplateID] = tpl
		}
		if tpl == nil {
			continue
		}
		result = append(result, models.Entitlement{
			TemplateID:   p.TemplateID,
			TemplateName: tpl.Name,
			PurchasedAt:  p.PurchasedAt,
		})
	}
	return result, nil
}

// RedeemGrant turns a grant token into a fresh presigned URL. The entitlement
// is checked again so a grant cannot outlive the record that justified it.
func (s *PurchaseService) RedeemGrant(ctx context.Context, token string) (string, error) {
	g, err := auth.ParseGrantToken(token, s.grantSecret)
	if err != nil {
		return "", err
	}

	tpl, err := s.template(ctx, g.TemplateID)
	if err != nil {
		return "", err
	}

	entitled, err := s.ledger.HasCompletedEntitlement(ctx, g.UserID, g.TemplateID)
	if err != nil {
		return "", err
	}
	if !entitled {
		return "", common.ErrForbidden
	}

	ttl := time.Until(g.ExpiresAt)
	if ttl < time.Second {
		ttl = time.Second
	}
	url, err := s.files.PresignGet(ctx, tpl.FilePath, ttl)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInternal, err)
	}
	return url, nil
}

func (s *PurchaseService) template(ctx context.Context, id int64) (*models.Template, error) {
	tpl, err := s.repomanager.Templates().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("template %d: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: catalog: %v", common.ErrInternal, err)
	}
	return tpl, nil
}
