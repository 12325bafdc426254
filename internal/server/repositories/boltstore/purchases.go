package boltstore

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	bolt "github.com/boltdb/bolt"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/server/models"
)

type PurchaseRepository struct {
	db *bolt.DB
}

// Create checks the transactions index and writes the record in one Update,
// so two writers can never both claim the same transaction id.
func (r *PurchaseRepository) Create(ctx context.Context, p *models.Purchase) (*models.Purchase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err := r.db.Update(func(tx *bolt.Tx) error {
		purchases, err := bucket(tx, bucketPurchases)
		if err != nil {
			return err
		}
		txids, err := bucket(tx, bucketTransactions)
		if err != nil {
			return err
		}
		users, err := bucket(tx, bucketUsers)
		if err != nil {
			return err
		}
		templates, err := bucket(tx, bucketTemplates)
		if err != nil {
			return err
		}

		if txids.Get([]byte(p.TransactionID)) != nil {
			return common.ErrDuplicateTransaction
		}
		if users.Get(itob(p.UserID)) == nil {
			return errors.New("user does not exist")
		}
		if templates.Get(itob(p.TemplateID)) == nil {
			return errors.New("template does not exist")
		}

		seq, err := purchases.NextSequence()
		if err != nil {
			return err
		}
		p.ID = int64(seq)

		key := itob(p.ID)
		if err := txids.Put([]byte(p.TransactionID), key); err != nil {
			return err
		}
		return put(purchases, key, p)
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateTransaction) {
			return nil, err
		}
		return nil, dbErr(err)
	}
	return p, nil
}

func (r *PurchaseRepository) HasStatus(ctx context.Context, userID, templateID int64, status models.PurchaseStatus) (bool, error) {
	found := false
	err := r.scan(ctx, func(p *models.Purchase) bool {
		if p.UserID == userID && p.TemplateID == templateID && p.Status == status {
			found = true
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (r *PurchaseRepository) ListByUser(ctx context.Context, userID int64, status models.PurchaseStatus) ([]models.Purchase, error) {
	result := make([]models.Purchase, 0)
	err := r.scan(ctx, func(p *models.Purchase) bool {
		if p.UserID == userID && p.Status == status {
			result = append(result, *p)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].PurchasedAt.Equal(result[j].PurchasedAt) {
			return result[i].PurchasedAt.Before(result[j].PurchasedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

var errStop = errors.New("stop")

// scan calls fn for every record until fn returns false.
func (r *PurchaseRepository) scan(ctx context.Context, fn func(p *models.Purchase) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketPurchases)
		if err != nil {
			return err
		}
		return b.ForEach(func(k, v []byte) error {
			var p models.Purchase
			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}
			if !fn(&p) {
				return errStop
			}
			return nil
		})
	})
	if err != nil && !errors.Is(err, errStop) {
		return dbErr(err)
	}
	return nil
}
