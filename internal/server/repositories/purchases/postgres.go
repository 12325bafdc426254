package purchases

import (
	"context"
	"fmt"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/dbx"
	"github.com/gerich15/TemplateHub/internal/server/models"
)

const constraintTransactionID = "purchases_transaction_id_key"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Purchase) (*models.Purchase, error) {
	query :=
		`INSERT INTO purchases (user_id, template_id, purchased_at, transaction_id, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.TemplateID, p.PurchasedAt, p.TransactionID, string(p.Status)).Scan(&p.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err, constraintTransactionID) {
			return nil, common.ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) HasStatus(ctx context.Context, userID, templateID int64, status models.PurchaseStatus) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM purchases
		   WHERE user_id = $1 AND template_id = $2 AND status = $3
		 )`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, templateID, string(status)).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64, status models.PurchaseStatus) ([]models.Purchase, error) {
	query :=
		`SELECT id, user_id, template_id, purchased_at, transaction_id, status
		 FROM purchases
		 WHERE user_id = $1 AND status = $2
		 ORDER BY purchased_at ASC, id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, string(status))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Purchase, 0)
	for rows.Next() {
		var p models.Purchase
		var st string
		if err := rows.Scan(&p.ID, &p.UserID, &p.TemplateID, &p.PurchasedAt, &p.TransactionID, &st); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		p.Status = models.PurchaseStatus(st)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
