package boltstore

import (
	"context"
	"encoding/json"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/server/models"
)

type RefreshTokenRepository struct {
	db *bolt.DB
}

func (r *RefreshTokenRepository) Create(ctx context.Context, userID int64, token string, validity time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := r.db.Update(func(tx *bolt.Tx) error {
		return insertToken(tx, userID, token, validity)
	})
	if err != nil {
		return dbErr(err)
	}
	return nil
}

func (r *RefreshTokenRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rt := &models.RefreshToken{}
	err := r.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketRefreshTokens)
		if err != nil {
			return err
		}
		v := b.Get([]byte(token))
		if v == nil {
			return common.ErrNotFound
		}
		return json.Unmarshal(v, rt)
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return rt, nil
}

func (r *RefreshTokenRepository) Rotate(ctx context.Context, oldToken, newToken string, validity time.Duration) (*models.RefreshToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rt := &models.RefreshToken{}
	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketRefreshTokens)
		if err != nil {
			return err
		}
		v := b.Get([]byte(oldToken))
		if v == nil {
			return common.ErrNotFound
		}
		if err := json.Unmarshal(v, rt); err != nil {
			return err
		}
		if err := b.Delete([]byte(oldToken)); err != nil {
			return err
		}
		return insertToken(tx, rt.UserID, newToken, validity)
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return rt, nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketRefreshTokens)
		if err != nil {
			return err
		}
		return b.Delete([]byte(token))
	})
	if err != nil {
		return dbErr(err)
	}
	return nil
}

func insertToken(tx *bolt.Tx, userID int64, token string, validity time.Duration) error {
	b, err := bucket(tx, bucketRefreshTokens)
	if err != nil {
		return err
	}
	seq, err := b.NextSequence()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	return put(b, []byte(token), &models.RefreshToken{
		ID:        int64(seq),
		UserID:    userID,
		Token:     token,
		Expires:   now.Add(validity),
		CreatedAt: now,
	})
}
