package models

import "time"

// Client is a customer with denormalized order statistics. TotalOrders and
// TotalValue are running totals maintained by the order-creation path, not
// recomputed from the order collection.
type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Company     string    `json:"company"`
	TotalOrders int       `json:"totalOrders"`
	TotalValue  float64   `json:"totalValue"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
