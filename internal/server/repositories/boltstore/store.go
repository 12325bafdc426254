// Package boltstore implements every TemplateHub repository on top of a
// single BoltDB file. It backs development setups and tests where running
// PostgreSQL is not wanted.
//
// Records are stored as JSON under big-endian uint64 keys allocated with
// NextSequence. Uniqueness (usernames, emails, transaction ids) is enforced
// by index buckets that are checked and written inside the same Update, so
// bolt's single-writer lock makes the check-then-put atomic.
package boltstore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"
)

var (
	bucketUsers         = []byte("users")
	bucketUsersByName   = []byte("users_by_name")
	bucketUsersByEmail  = []byte("users_by_email")
	bucketTemplates     = []byte("templates")
	bucketPurchases     = []byte("purchases")
	bucketTransactions  = []byte("transactions")
	bucketRefreshTokens = []byte("refresh_tokens")
)

var allBuckets = [][]byte{
	bucketUsers, bucketUsersByName, bucketUsersByEmail,
	bucketTemplates, bucketPurchases, bucketTransactions, bucketRefreshTokens,
}

// Store wraps a BoltDB database.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database at path. Buckets are created by
// Migrate, not here.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Migrate creates any missing bucket. It is safe to run on every start.
func (s *Store) Migrate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{db: s.db}
}

func (s *Store) Templates() *TemplateRepository {
	return &TemplateRepository{db: s.db}
}

func (s *Store) Purchases() *PurchaseRepository {
	return &PurchaseRepository{db: s.db}
}

func (s *Store) RefreshTokens() *RefreshTokenRepository {
	return &RefreshTokenRepository{db: s.db}
}

func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func btoi(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}

func put(b *bolt.Bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put(key, data)
}

func bucket(tx *bolt.Tx, name []byte) (*bolt.Bucket, error) {
	b := tx.Bucket(name)
	if b == nil {
		return nil, fmt.Errorf("bucket %s missing, run migrations", name)
	}
	return b, nil
}

func dbErr(err error) error {
	return fmt.Errorf("db error: %w", err)
}
