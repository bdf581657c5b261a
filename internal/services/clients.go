package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dsv-enterprise/dsvflow/internal/models"
	"github.com/dsv-enterprise/dsvflow/internal/store"
)

// CreateClientInput carries the caller-supplied fields for a new client.
// Name is required and validated at the UI boundary.
type CreateClientInput struct {
	Name    string
	Phone   string
	Email   string
	Company string
}

// ClientUpdate is a partial update; nil fields are left unchanged. The running
// totals are not updatable here; they belong to RecordOrder.
type ClientUpdate struct {
	Name    *string
	Phone   *string
	Email   *string
	Company *string
}

// ClientService owns the client collection and the denormalized per-client
// order statistics.
type ClientService struct {
	store    *store.Store
	notifier Notifier
	now      func() time.Time
	clients  []models.Client
}

// ClientOption customizes a ClientService at construction.
type ClientOption func(*ClientService)

// WithClientClock substitutes the time source, mainly for tests.
func WithClientClock(now func() time.Time) ClientOption {
	return func(s *ClientService) { s.now = now }
}

// NewClientService hydrates the client collection from its slot.
func NewClientService(st *store.Store, notifier Notifier, opts ...ClientOption) (*ClientService, error) {
	s := &ClientService{store: st, notifier: notifier, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := st.Load(store.SlotClients, &s.clients); err != nil {
		return nil, err
	}
	return s, nil
}

// Clients returns a copy of the collection, newest first.
func (s *ClientService) Clients() []models.Client {
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Create adds a client with zeroed running totals and prepends it to the
// collection.
func (s *ClientService) Create(in CreateClientInput) (models.Client, error) {
	now := s.now()
	c := models.Client{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Company:   in.Company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	prev := s.clients
	s.clients = append([]models.Client{c}, s.clients...)
	if err := s.persist(); err != nil {
		s.clients = prev
		return models.Client{}, err
	}
	s.notifier.Success("Client added", fmt.Sprintf("%s has been added to your clients.", c.Name))
	return c, nil
}

// Update merges the non-nil fields and refreshes the update timestamp.
// Unknown ids are a silent no-op.
func (s *ClientService) Update(id string, upd ClientUpdate) error {
	for i := range s.clients {
		c := &s.clients[i]
		if c.ID != id {
			continue
		}
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Phone != nil {
			c.Phone = *upd.Phone
		}
		if upd.Email != nil {
			c.Email = *upd.Email
		}
		if upd.Company != nil {
			c.Company = *upd.Company
		}
		c.UpdatedAt = s.now()
		if err := s.persist(); err != nil {
			return err
		}
		s.notifier.Success("Client updated", fmt.Sprintf("%s has been updated.", c.Name))
		return nil
	}
	return nil
}

// Delete removes the client. Orders referencing the client are left alone;
// there are no cascading deletes.
func (s *ClientService) Delete(id string) error {
	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}
		s.clients = append(s.clients[:i], s.clients[i+1:]...)
		if err := s.persist(); err != nil {
			return err
		}
		s.notifier.Success("Client deleted", "The client has been removed.")
		return nil
	}
	return nil
}

// RecordOrder increments the client's order count and adds the order total to
// its cumulative value. Invoked by the order-creation path; edits and deletes
// do not resynchronize the totals. Unknown ids are a silent no-op.
func (s *ClientService) RecordOrder(clientID string, orderTotal float64) error {
	for i := range s.clients {
		c := &s.clients[i]
		if c.ID != clientID {
			continue
		}
		c.TotalOrders++
		c.TotalValue += orderTotal
		c.UpdatedAt = s.now()
		return s.persist()
	}
	return nil
}

// GetByID looks a client up by id.
func (s *ClientService) GetByID(id string) (models.Client, bool) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

// Search returns the clients whose name, company or email contains the query,
// case-insensitively.
func (s *ClientService) Search(query string) []models.Client {
	q := strings.ToLower(query)
	var out []models.Client
	for _, c := range s.clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Company), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	return out
}

func (s *ClientService) persist() error {
	return s.store.Save(store.SlotClients, s.clients)
}
