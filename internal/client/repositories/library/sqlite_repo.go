package library

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gerich15/TemplateHub/internal/client/models"
	"github.com/gerich15/TemplateHub/internal/dbx"
)

// SQLiteRepository implements Repository on top of a database opened by Open.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Replace(ctx context.Context, owner string, items []models.Entitlement) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM library WHERE owner = ?`, owner); err != nil {
			return err
		}
		for i, e := range items {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO library (owner, position, template_id, template_name, purchased_at)
				VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(owner, template_id) DO NOTHING`,
				owner, i, e.TemplateID, e.TemplateName, e.PurchasedAt.UTC().Format(time.RFC3339Nano))
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace library of %s: %w", owner, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, owner string) ([]models.Entitlement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT template_id, template_name, purchased_at FROM library
		WHERE owner = ? ORDER BY position`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to select library: %w", err)
	}
	defer rows.Close()

	result := []models.Entitlement{}
	for rows.Next() {
		var (
			e  models.Entitlement
			at string
		)
		if err := rows.Scan(&e.TemplateID, &e.TemplateName, &at); err != nil {
			return nil, fmt.Errorf("failed to scan library row: %w", err)
		}
		if e.PurchasedAt, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("bad purchased_at %q: %w", at, err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate library rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, owner string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM library WHERE owner = ?`, owner); err != nil {
		return fmt.Errorf("failed to clear library of %s: %w", owner, err)
	}
	return nil
}
