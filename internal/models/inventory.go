package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is a stock line used to fulfil orders. Quantity never goes
// below zero; deductions are floored.
type InventoryItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	MinStock    int       `json:"minStock"`
	UnitCost    float64   `json:"unitCost"`
	Category    string    `json:"category"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// LowStock reports whether the on-hand quantity is at or below the minimum
// threshold. The boundary is inclusive.
func (i InventoryItem) LowStock() bool { return i.Quantity <= i.MinStock }

// DefaultInventory is the stock list a fresh install starts with.
func DefaultInventory(now time.Time) []InventoryItem {
	items := []InventoryItem{
		{Name: "Plain White T-Shirts", Quantity: 500, MinStock: 100, UnitCost: 15, Category: "Apparel"},
		{Name: "Plain Black T-Shirts", Quantity: 450, MinStock: 100, UnitCost: 15, Category: "Apparel"},
		{Name: "Polo Shirts (Assorted)", Quantity: 300, MinStock: 75, UnitCost: 25, Category: "Apparel"},
		{Name: "Baseball Caps", Quantity: 200, MinStock: 50, UnitCost: 8, Category: "Accessories"},
		{Name: "Ceramic Mugs", Quantity: 350, MinStock: 80, UnitCost: 5, Category: "Drinkware"},
		{Name: "Vinyl Banner Material (sqm)", Quantity: 100, MinStock: 25, UnitCost: 12, Category: "Printing"},
		{Name: "Business Card Paper (packs)", Quantity: 150, MinStock: 30, UnitCost: 20, Category: "Printing"},
		{Name: "Sticker Vinyl Rolls", Quantity: 45, MinStock: 15, UnitCost: 35, Category: "Printing"},
		{Name: "Tote Bags", Quantity: 180, MinStock: 50, UnitCost: 10, Category: "Bags"},
		{Name: "Branded Pens", Quantity: 1000, MinStock: 200, UnitCost: 1.5, Category: "Stationery"},
	}
	for idx := range items {
		items[idx].ID = uuid.NewString()
		items[idx].LastUpdated = now
	}
	return items
}
