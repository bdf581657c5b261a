package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dsv-enterprise/dsvflow/internal/models"
	"github.com/dsv-enterprise/dsvflow/internal/store"
)

// CreateItemInput carries the caller-supplied fields for a new inventory item.
type CreateItemInput struct {
	Name     string
	Quantity int
	MinStock int
	UnitCost float64
	Category string
}

// ItemUpdate is a partial update; nil fields are left unchanged.
type ItemUpdate struct {
	Name     *string
	Quantity *int
	MinStock *int
	UnitCost *float64
	Category *string
}

// InventoryService owns the stock collection. A fresh install hydrates the
// default inventory in memory; it is only written back on the first mutation
// (or explicitly via Persist).
type InventoryService struct {
	store    *store.Store
	notifier Notifier
	now      func() time.Time
	items    []models.InventoryItem
}

// InventoryOption customizes an InventoryService at construction.
type InventoryOption func(*InventoryService)

// WithInventoryClock substitutes the time source, mainly for tests.
func WithInventoryClock(now func() time.Time) InventoryOption {
	return func(s *InventoryService) { s.now = now }
}

// NewInventoryService hydrates the stock collection from its slot, falling
// back to the default inventory when the slot has never been written.
func NewInventoryService(st *store.Store, notifier Notifier, opts ...InventoryOption) (*InventoryService, error) {
	s := &InventoryService{store: st, notifier: notifier, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	found, err := st.Load(store.SlotInventory, &s.items)
	if err != nil {
		return nil, err
	}
	if !found {
		s.items = models.DefaultInventory(s.now())
	}
	return s, nil
}

// Items returns a copy of the collection, newest first.
func (s *InventoryService) Items() []models.InventoryItem {
	out := make([]models.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// AddItem prepends a new stock line.
func (s *InventoryService) AddItem(in CreateItemInput) (models.InventoryItem, error) {
	item := models.InventoryItem{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		UnitCost:    in.UnitCost,
		Category:    in.Category,
		LastUpdated: s.now(),
	}
	prev := s.items
	s.items = append([]models.InventoryItem{item}, s.items...)
	if err := s.persist(); err != nil {
		s.items = prev
		return models.InventoryItem{}, err
	}
	s.notifier.Success("Item added to inventory", fmt.Sprintf("%s has been added.", item.Name))
	return item, nil
}

// UpdateItem merges the non-nil fields and refreshes the update timestamp.
// Unknown ids are a silent no-op.
func (s *InventoryService) UpdateItem(id string, upd ItemUpdate) error {
	for i := range s.items {
		item := &s.items[i]
		if item.ID != id {
			continue
		}
		if upd.Name != nil {
			item.Name = *upd.Name
		}
		if upd.Quantity != nil {
			item.Quantity = *upd.Quantity
		}
		if upd.MinStock != nil {
			item.MinStock = *upd.MinStock
		}
		if upd.UnitCost != nil {
			item.UnitCost = *upd.UnitCost
		}
		if upd.Category != nil {
			item.Category = *upd.Category
		}
		item.LastUpdated = s.now()
		if err := s.persist(); err != nil {
			return err
		}
		s.notifier.Success("Inventory updated", fmt.Sprintf("%s has been updated.", item.Name))
		return nil
	}
	return nil
}

// DeleteItem removes the stock line. Unknown ids are a silent no-op.
func (s *InventoryService) DeleteItem(id string) error {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		if err := s.persist(); err != nil {
			return err
		}
		s.notifier.Success("Item removed from inventory", "The item has been removed.")
		return nil
	}
	return nil
}

// AddStock increases the on-hand quantity unconditionally.
func (s *InventoryService) AddStock(id string, amount int) error {
	for i := range s.items {
		item := &s.items[i]
		if item.ID != id {
			continue
		}
		item.Quantity += amount
		item.LastUpdated = s.now()
		if err := s.persist(); err != nil {
			return err
		}
		s.notifier.Success("Stock added", fmt.Sprintf("%s now has %d units.", item.Name, item.Quantity))
		return nil
	}
	return nil
}

// ReduceStock decreases the on-hand quantity, floored at zero, and emits a
// low-stock warning when the result is at or below the minimum threshold.
func (s *InventoryService) ReduceStock(id string, amount int) error {
	for i := range s.items {
		item := &s.items[i]
		if item.ID != id {
			continue
		}
		item.Quantity -= amount
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		item.LastUpdated = s.now()
		if err := s.persist(); err != nil {
			return err
		}
		if item.LowStock() {
			s.notifier.Warning(fmt.Sprintf("Low stock alert: %s", item.Name),
				fmt.Sprintf("Only %d units remaining.", item.Quantity))
		}
		return nil
	}
	return nil
}

// LowStockItems returns every item whose quantity is at or below its minimum
// threshold. Drives the dashboard banner.
func (s *InventoryService) LowStockItems() []models.InventoryItem {
	var out []models.InventoryItem
	for _, item := range s.items {
		if item.LowStock() {
			out = append(out, item)
		}
	}
	return out
}

// GetByID looks an item up by id.
func (s *InventoryService) GetByID(id string) (models.InventoryItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

// Search returns the items whose name or category contains the query,
// case-insensitively.
func (s *InventoryService) Search(query string) []models.InventoryItem {
	q := strings.ToLower(query)
	var out []models.InventoryItem
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Category), q) {
			out = append(out, item)
		}
	}
	return out
}

// Persist writes the current collection to its slot. Used by the seed command
// to materialize the default inventory.
func (s *InventoryService) Persist() error { return s.persist() }

func (s *InventoryService) persist() error {
	return s.store.Save(store.SlotInventory, s.items)
}
