// Package store persists whole collections as JSON lists, one per named slot.
// Reads hydrate a collection once at startup and every mutation rewrites the
// owning slot. There is exactly one logical writer at a time, so no locking
// is done here.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot names for the three persisted collections.
const (
	SlotOrders    = "dsv_orders"
	SlotClients   = "dsv_clients"
	SlotInventory = "dsv_inventory"
)

// Slot is one persisted collection: a fixed name and the serialized list.
type Slot struct {
	Name      string `gorm:"primaryKey;size:64"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// Store is the key-value slot store backing all repositories.
type Store struct {
	db *gorm.DB
}

// New prepares the slot table and returns a ready store.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("automigrate slots: %w", err)
	}
	return &Store{db: db}, nil
}

// Load unmarshals the named slot into v. found is false when the slot has
// never been written, letting callers fall back to their default collection.
func (s *Store) Load(name string, v any) (found bool, err error) {
	var slot Slot
	if err := s.db.First(&slot, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, fmt.Errorf("load slot %s: %w", name, err)
	}
	if err := json.Unmarshal(slot.Data, v); err != nil {
		return false, fmt.Errorf("decode slot %s: %w", name, err)
	}
	return true, nil
}

// Save serializes v and rewrites the named slot.
func (s *Store) Save(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", name, err)
	}
	slot := Slot{Name: name, Data: data, UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("save slot %s: %w", name, err)
	}
	return nil
}
