package models

import "time"

// OrderStatus is one step in the fixed order lifecycle.
type OrderStatus string

const (
	StatusDraft      OrderStatus = "Draft"
	StatusPending    OrderStatus = "Pending"
	StatusApproved   OrderStatus = "Approved"
	StatusProduction OrderStatus = "Production"
	StatusCompleted  OrderStatus = "Completed"
	StatusDelivered  OrderStatus = "Delivered"
)

// StatusFlow lists the lifecycle states in transition order. Delivered is terminal.
var StatusFlow = []OrderStatus{
	StatusDraft,
	StatusPending,
	StatusApproved,
	StatusProduction,
	StatusCompleted,
	StatusDelivered,
}

// String returns the string representation of the status.
func (s OrderStatus) String() string { return string(s) }

// Valid reports whether s is one of the six lifecycle states.
func (s OrderStatus) Valid() bool {
	for _, st := range StatusFlow {
		if st == s {
			return true
		}
	}
	return false
}

// Next returns the state one step forward in the flow. ok is false when s is
// terminal or not part of the flow; there is no backward or skipping move.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	for i, st := range StatusFlow {
		if st != s {
			continue
		}
		if i == len(StatusFlow)-1 {
			return "", false
		}
		return StatusFlow[i+1], true
	}
	return "", false
}

// Order is a printing/branding order with its computed pricing breakdown.
// The monetary fields from Discount through ProfitMargin are derived from
// Quantity and UnitPrice; they are recomputed on every change to either input
// and never edited directly. ClientName is a snapshot taken at creation and is
// not kept in sync with later client edits.
type Order struct {
	ID                 string      `json:"id"`
	OrderNumber        string      `json:"orderNumber"`
	ClientID           string      `json:"clientId"`
	ClientName         string      `json:"clientName"`
	ProductType        string      `json:"productType"`
	Quantity           int         `json:"quantity"`
	UnitPrice          float64     `json:"unitPrice"`
	Discount           float64     `json:"discount"`
	DiscountPercentage float64     `json:"discountPercentage"`
	Subtotal           float64     `json:"subtotal"`
	VAT                float64     `json:"vat"` // rate as a percentage, e.g. 15
	VATAmount          float64     `json:"vatAmount"`
	Total              float64     `json:"total"`
	ProfitMargin       float64     `json:"profitMargin"`
	Status             OrderStatus `json:"status"`
	Notes              string      `json:"notes,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// ProductTypes are the product lines DSV Enterprise prints and brands.
var ProductTypes = []string{
	"T-Shirts",
	"Polo Shirts",
	"Caps & Hats",
	"Mugs",
	"Banners",
	"Business Cards",
	"Flyers",
	"Stickers",
	"Notebooks",
	"Bags",
	"Pens",
	"Lanyards",
	"Keychains",
	"Umbrellas",
	"USB Drives",
	"Other",
}
