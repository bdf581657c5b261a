package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dsv-enterprise/dsvflow/internal/models"
	"github.com/dsv-enterprise/dsvflow/internal/store"
)

// ClientStatsRecorder receives the total of each newly created order so client
// running statistics stay in step with order creation.
type ClientStatsRecorder interface {
	RecordOrder(clientID string, orderTotal float64) error
}

// CreateOrderInput carries the caller-supplied fields for a new order.
// Pricing, numbering, id and timestamps are filled in by the service. Input is
// validated at the UI boundary; the service assumes a positive quantity and a
// non-negative unit price.
type CreateOrderInput struct {
	ClientID    string
	ClientName  string
	ProductType string
	Quantity    int
	UnitPrice   float64
	Status      models.OrderStatus // Draft or Pending at the UI entry points; empty defaults to Pending
	Notes       string
}

// OrderUpdate is a partial update; nil fields are left unchanged. Status is
// deliberately absent: direct status changes go through UpdateStatus and the
// guarded single-step move through AdvanceStatus.
type OrderUpdate struct {
	ClientID    *string
	ClientName  *string
	ProductType *string
	Quantity    *int
	UnitPrice   *float64
	Notes       *string
}

// OrderService owns the order collection: it computes pricing and order
// numbers on create, keeps derived fields in step with their inputs on update,
// and mirrors the collection to its store slot on every mutation.
type OrderService struct {
	store    *store.Store
	pricing  *PricingService
	notifier Notifier
	stats    ClientStatsRecorder
	now      func() time.Time
	orders   []models.Order
}

// OrderOption customizes an OrderService at construction.
type OrderOption func(*OrderService)

// WithOrderClock substitutes the time source, mainly for tests.
func WithOrderClock(now func() time.Time) OrderOption {
	return func(s *OrderService) { s.now = now }
}

// WithClientStats wires the recorder that keeps client running totals in step
// with order creation.
func WithClientStats(rec ClientStatsRecorder) OrderOption {
	return func(s *OrderService) { s.stats = rec }
}

// NewOrderService hydrates the order collection from its slot. A missing slot
// means a fresh install and an empty collection.
func NewOrderService(st *store.Store, pricing *PricingService, notifier Notifier, opts ...OrderOption) (*OrderService, error) {
	s := &OrderService{
		store:    st,
		pricing:  pricing,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := st.Load(store.SlotOrders, &s.orders); err != nil {
		return nil, err
	}
	return s, nil
}

// Orders returns a copy of the collection, newest first.
func (s *OrderService) Orders() []models.Order {
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// nextOrderNumber derives the next DSV-YYYYMMDD-NNN number by counting the
// orders already numbered with today's date. The sequence is a scan, not a
// persisted counter; operations are serialized by the single caller, so two
// concurrent creations cannot collide here.
func (s *OrderService) nextOrderNumber() string {
	dateStr := s.now().Format("20060102")
	n := 0
	for _, o := range s.orders {
		if strings.Contains(o.OrderNumber, dateStr) {
			n++
		}
	}
	return fmt.Sprintf("DSV-%s-%03d", dateStr, n+1)
}

// Create prices the order, assigns its number and id, stamps both timestamps
// and prepends it to the collection. The client's running totals are recorded
// when a stats recorder is wired.
func (s *OrderService) Create(in CreateOrderInput) (models.Order, error) {
	now := s.now()
	p := s.pricing.Compute(in.Quantity, in.UnitPrice)
	status := in.Status
	if status == "" {
		status = models.StatusPending
	}
	o := models.Order{
		ID:                 uuid.NewString(),
		OrderNumber:        s.nextOrderNumber(),
		ClientID:           in.ClientID,
		ClientName:         in.ClientName,
		ProductType:        in.ProductType,
		Quantity:           in.Quantity,
		UnitPrice:          in.UnitPrice,
		Discount:           p.Discount,
		DiscountPercentage: p.DiscountPercentage,
		Subtotal:           p.Subtotal,
		VAT:                p.VAT,
		VATAmount:          p.VATAmount,
		Total:              p.Total,
		ProfitMargin:       p.ProfitMargin,
		Status:             status,
		Notes:              in.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	prev := s.orders
	s.orders = append([]models.Order{o}, s.orders...)
	if err := s.persist(); err != nil {
		s.orders = prev
		return models.Order{}, err
	}
	if s.stats != nil {
		if err := s.stats.RecordOrder(o.ClientID, o.Total); err != nil {
			return models.Order{}, err
		}
	}
	s.notifier.Success("Order created", fmt.Sprintf("Order %s has been created.", o.OrderNumber))
	return o, nil
}

// Update merges the non-nil fields into the order and recomputes the pricing
// breakdown from the effective post-merge quantity and unit price. Unknown ids
// are a silent no-op.
func (s *OrderService) Update(id string, upd OrderUpdate) error {
	for i := range s.orders {
		o := &s.orders[i]
		if o.ID != id {
			continue
		}
		if upd.ClientID != nil {
			o.ClientID = *upd.ClientID
		}
		if upd.ClientName != nil {
			o.ClientName = *upd.ClientName
		}
		if upd.ProductType != nil {
			o.ProductType = *upd.ProductType
		}
		if upd.Quantity != nil {
			o.Quantity = *upd.Quantity
		}
		if upd.UnitPrice != nil {
			o.UnitPrice = *upd.UnitPrice
		}
		if upd.Notes != nil {
			o.Notes = *upd.Notes
		}
		p := s.pricing.Compute(o.Quantity, o.UnitPrice)
		o.Discount = p.Discount
		o.DiscountPercentage = p.DiscountPercentage
		o.Subtotal = p.Subtotal
		o.VAT = p.VAT
		o.VATAmount = p.VATAmount
		o.Total = p.Total
		o.ProfitMargin = p.ProfitMargin
		o.UpdatedAt = s.now()
		if err := s.persist(); err != nil {
			return err
		}
		s.notifier.Success("Order updated", fmt.Sprintf("Order %s has been updated.", o.OrderNumber))
		return nil
	}
	return nil
}

// UpdateStatus sets the status directly to any lifecycle value, bypassing the
// single-step rule. Unknown ids are a silent no-op.
func (s *OrderService) UpdateStatus(id string, status models.OrderStatus) error {
	for i := range s.orders {
		o := &s.orders[i]
		if o.ID != id {
			continue
		}
		o.Status = status
		o.UpdatedAt = s.now()
		if err := s.persist(); err != nil {
			return err
		}
		s.notifier.Success("Order status updated", fmt.Sprintf("Order %s is now %s.", o.OrderNumber, status))
		return nil
	}
	return nil
}

// AdvanceStatus moves the order exactly one step forward in the flow. ok is
// false when the order is unknown or already Delivered; neither case is an
// error.
func (s *OrderService) AdvanceStatus(id string) (next models.OrderStatus, ok bool, err error) {
	for i := range s.orders {
		o := &s.orders[i]
		if o.ID != id {
			continue
		}
		next, ok = o.Status.Next()
		if !ok {
			return "", false, nil
		}
		o.Status = next
		o.UpdatedAt = s.now()
		if err := s.persist(); err != nil {
			return "", false, err
		}
		s.notifier.Success("Order status updated", fmt.Sprintf("Order %s is now %s.", o.OrderNumber, next))
		return next, true, nil
	}
	return "", false, nil
}

// Delete removes the order. Unknown ids are a silent no-op.
func (s *OrderService) Delete(id string) error {
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		s.orders = append(s.orders[:i], s.orders[i+1:]...)
		if err := s.persist(); err != nil {
			return err
		}
		s.notifier.Success("Order deleted", "The order has been removed.")
		return nil
	}
	return nil
}

// ByClient returns the orders placed by one client, newest first.
func (s *OrderService) ByClient(clientID string) []models.Order {
	var out []models.Order
	for _, o := range s.orders {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out
}

// ByStatus returns the orders currently in one lifecycle state.
func (s *OrderService) ByStatus(status models.OrderStatus) []models.Order {
	var out []models.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// ByDateRange returns the orders created within [start, end]. Both bounds are
// inclusive.
func (s *OrderService) ByDateRange(start, end time.Time) []models.Order {
	var out []models.Order
	for _, o := range s.orders {
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s *OrderService) persist() error {
	return s.store.Save(store.SlotOrders, s.orders)
}
