package kv

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("storefront")

// Bolt is a Store backed by a bbolt database file. It is the local-storage
// analog: a small durable map that survives process restarts.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database file at path and ensures the
// storefront bucket exists.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("kv: failed to open bolt database at %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kv: failed to create bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(key string) (string, bool, error) {
	var value string
	var found bool

	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if raw != nil {
			value = string(raw)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("kv: failed to get %q: %w", key, err)
	}

	return value, found, nil
}

func (b *Bolt) Set(key, value string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("kv: failed to set %q: %w", key, err)
	}
	return nil
}

func (b *Bolt) Delete(key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("kv: failed to delete %q: %w", key, err)
	}
	return nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
