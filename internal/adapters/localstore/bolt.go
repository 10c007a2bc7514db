// Package localstore provides the gateway's client-local persistence: an
// embedded BoltDB file as the durable layer and a write-coalescing,
// read-through-cached store on top of it.
package localstore

import (
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/sokonihub/sokoni_gateway/internal/apperrors"
)

const bucketName = "storefront"

// BoltStore wraps a BoltDB database behind the ports.DurableKV contract.
// All data lives in a single file, so no external database process is needed.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database at path and ensures the
// storefront bucket exists.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store at %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close releases the database file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Put stores value under key, replacing any previous value.
func (s *BoltStore) Put(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), value)
	})
}

// Get retrieves the value stored under key.
// Returns apperrors.ErrNotFound if the key does not exist.
func (s *BoltStore) Get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v == nil {
			return apperrors.ErrNotFound
		}
		// The slice is only valid inside the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes key. Deleting a missing key is a no-op, which is exactly the
// idempotent behaviour callers rely on.
func (s *BoltStore) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
}
