package persistence

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection is a single persisted collection row: the logical key and the
// serialized payload. The payload column is an opaque blob to the database.
type Collection struct {
	Key     string `gorm:"primaryKey;size:64"`
	Payload []byte `gorm:"type:blob"`
}

// Gorm persists collections in a two-column key/blob table. MySQL backs the
// deployed service; tests run it against in-memory SQLite.
type Gorm struct {
	db *gorm.DB
}

// NewGorm migrates the collections table and returns the adapter.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&Collection{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) Load(key string) ([]byte, bool, error) {
	var row Collection
	err := g.db.Where("`key` = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return row.Payload, true, nil
}

func (g *Gorm) Save(key string, payload []byte) error {
	row := Collection{Key: key, Payload: payload}
	err := g.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
