package config

import (
	"time"

	"github.com/boltdb/bolt"
)

// OpenBolt opens (creating if needed) the local bolt file configured by
// BOLTPATH. The open timeout keeps a second process from hanging forever on
// the file lock.
func OpenBolt() (*bolt.DB, error) {
	cfg := LoadConfig()
	return bolt.Open(cfg.BoltPath, 0600, &bolt.Options{Timeout: 5 * time.Second})
}
