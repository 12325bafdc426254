package templates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/dbx"
	"github.com/gerich15/TemplateHub/internal/server/models"
)

const selectColumns = `SELECT id, name, description, price, category, file_path, image_path FROM templates`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Template) (*models.Template, error) {
	query :=
		`INSERT INTO templates (name, description, price, category, file_path, image_path)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		t.Name, t.Description, t.Price, t.Category, t.FilePath, t.ImagePath).Scan(&t.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Template, error) {
	query := selectColumns + `
		 WHERE id = $1
		 `

	t := &models.Template{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Name, &t.Description, &t.Price, &t.Category, &t.FilePath, &t.ImagePath)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Template, error) {
	query := selectColumns + `
		 ORDER BY id
		 `
	return r.query(ctx, query)
}

func (r *PostgresRepository) Search(ctx context.Context, q string) ([]models.Template, error) {
	query := selectColumns + `
		 WHERE name ILIKE $1 OR description ILIKE $1 OR category ILIKE $1
		 ORDER BY id
		 `
	return r.query(ctx, query, "%"+escapeLike(q)+"%")
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM templates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.Template, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Template, 0)
	for rows.Next() {
		var t models.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Price, &t.Category, &t.FilePath, &t.ImagePath); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
