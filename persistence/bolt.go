package persistence

import (
	"fmt"

	"github.com/boltdb/bolt"
)

const boltBucket = "collections"

// Bolt persists collections in a single local bolt file, one bucket for all
// keys. This is the default backend: a file on disk playing the role the
// browser's local storage played for the original dashboard.
type Bolt struct {
	db *bolt.DB
}

// NewBolt wraps an open bolt database and ensures the collections bucket
// exists.
func NewBolt(db *bolt.DB) (*Bolt, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create collections bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Load(key string) ([]byte, bool, error) {
	var payload []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(boltBucket)).Get([]byte(key))
		if v != nil {
			payload = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	if payload == nil {
		return nil, false, nil
	}
	return payload, true, nil
}

func (b *Bolt) Save(key string, payload []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(key), payload)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
