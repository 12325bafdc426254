package boltstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/server/models"
)

type UserRepository struct {
	db *bolt.DB
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user.Email = strings.ToLower(user.Email)

	err := r.db.Update(func(tx *bolt.Tx) error {
		users, err := bucket(tx, bucketUsers)
		if err != nil {
			return err
		}
		byName, err := bucket(tx, bucketUsersByName)
		if err != nil {
			return err
		}
		byEmail, err := bucket(tx, bucketUsersByEmail)
		if err != nil {
			return err
		}

		if byName.Get([]byte(user.UserName)) != nil {
			return fmt.Errorf("%w: username", common.ErrAlreadyExists)
		}
		if byEmail.Get([]byte(user.Email)) != nil {
			return fmt.Errorf("%w: email", common.ErrAlreadyExists)
		}

		seq, err := users.NextSequence()
		if err != nil {
			return err
		}
		user.ID = int64(seq)
		user.CreatedAt = time.Now().UTC()

		key := itob(user.ID)
		if err := byName.Put([]byte(user.UserName), key); err != nil {
			return err
		}
		if err := byEmail.Put([]byte(user.Email), key); err != nil {
			return err
		}
		return put(users, key, user)
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		return nil, dbErr(err)
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user *models.User
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		user, err = getUser(tx, itob(id))
		return err
	})
	return user, mapErr(err)
}

func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user *models.User
	err := r.db.View(func(tx *bolt.Tx) error {
		byEmail, err := bucket(tx, bucketUsersByEmail)
		if err != nil {
			return err
		}
		byName, err := bucket(tx, bucketUsersByName)
		if err != nil {
			return err
		}
		key := byEmail.Get([]byte(strings.ToLower(login)))
		if key == nil {
			key = byName.Get([]byte(login))
		}
		if key == nil {
			return common.ErrNotFound
		}
		user, err = getUser(tx, key)
		return err
	})
	return user, mapErr(err)
}

func getUser(tx *bolt.Tx, key []byte) (*models.User, error) {
	users, err := bucket(tx, bucketUsers)
	if err != nil {
		return nil, err
	}
	v := users.Get(key)
	if v == nil {
		return nil, common.ErrNotFound
	}
	user := &models.User{}
	if err := json.Unmarshal(v, user); err != nil {
		return nil, err
	}
	return user, nil
}

// mapErr passes sentinel errors through and wraps everything else.
func mapErr(err error) error {
	if err == nil || errors.Is(err, common.ErrNotFound) {
		return err
	}
	return dbErr(err)
}
