package store

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dsv-enterprise/dsvflow/internal/models"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	st, err := New(db)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	return st
}

func TestLoadMissingSlot(t *testing.T) {
	st := setupStore(t)
	var clients []models.Client
	found, err := st.Load(SlotClients, &clients)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Error("expected found=false for an unwritten slot")
	}
	if clients != nil {
		t.Errorf("collection should stay untouched, got %v", clients)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := setupStore(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	in := []models.Client{
		{ID: "c1", Name: "Acme", Company: "Acme Ltd", TotalOrders: 2, TotalValue: 1234.5, CreatedAt: now, UpdatedAt: now},
		{ID: "c2", Name: "Beta", CreatedAt: now, UpdatedAt: now},
	}
	if err := st.Save(SlotClients, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	var out []models.Client
	found, err := st.Load(SlotClients, &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("expected found=true after save")
	}
	if len(out) != 2 || out[0].ID != "c1" || out[0].TotalValue != 1234.5 || out[1].Name != "Beta" {
		t.Errorf("unexpected roundtrip result: %+v", out)
	}
	if !out[0].CreatedAt.Equal(now) {
		t.Errorf("timestamp lost in roundtrip: %v", out[0].CreatedAt)
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	st := setupStore(t)
	if err := st.Save(SlotInventory, []models.InventoryItem{{ID: "i1", Name: "Mugs"}}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := st.Save(SlotInventory, []models.InventoryItem{{ID: "i2", Name: "Pens"}, {ID: "i3", Name: "Caps"}}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	var items []models.InventoryItem
	if _, err := st.Load(SlotInventory, &items); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 2 || items[0].ID != "i2" {
		t.Errorf("slot not overwritten: %+v", items)
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	st := setupStore(t)
	if err := st.Save(SlotClients, []models.Client{{ID: "c1"}}); err != nil {
		t.Fatalf("save clients: %v", err)
	}
	var orders []models.Order
	found, err := st.Load(SlotOrders, &orders)
	if err != nil {
		t.Fatalf("load orders: %v", err)
	}
	if found {
		t.Error("orders slot should be untouched by a clients write")
	}
}
