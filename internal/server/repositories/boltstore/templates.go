package boltstore

import (
	"context"
	"encoding/json"
	"strings"

	bolt "github.com/boltdb/bolt"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/server/models"
)

type TemplateRepository struct {
	db *bolt.DB
}

func (r *TemplateRepository) Create(ctx context.Context, t *models.Template) (*models.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketTemplates)
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		t.ID = int64(seq)
		return put(b, itob(t.ID), t)
	})
	if err != nil {
		return nil, dbErr(err)
	}
	return t, nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, id int64) (*models.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := &models.Template{}
	err := r.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketTemplates)
		if err != nil {
			return err
		}
		v := b.Get(itob(id))
		if v == nil {
			return common.ErrNotFound
		}
		return json.Unmarshal(v, t)
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return t, nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]models.Template, error) {
	return r.filter(ctx, func(models.Template) bool { return true })
}

func (r *TemplateRepository) Search(ctx context.Context, query string) ([]models.Template, error) {
	q := strings.ToLower(query)
	return r.filter(ctx, func(t models.Template) bool {
		return strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(t.Category), q)
	})
}

func (r *TemplateRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var n int64
	err := r.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketTemplates)
		if err != nil {
			return err
		}
		n = int64(b.Stats().KeyN)
		return nil
	})
	if err != nil {
		return 0, dbErr(err)
	}
	return n, nil
}

// filter walks the bucket in key order, which is id order.
func (r *TemplateRepository) filter(ctx context.Context, keep func(models.Template) bool) ([]models.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]models.Template, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketTemplates)
		if err != nil {
			return err
		}
		return b.ForEach(func(k, v []byte) error {
			var t models.Template
			if err := json.Unmarshal(v, &t); err != nil {
				return err
			}
			if keep(t) {
				result = append(result, t)
			}
			return nil
		})
	})
	if err != nil {
		return nil, dbErr(err)
	}
	return result, nil
}
