package services

import (
	"strings"
	"testing"
	"time"

	"github.com/dsv-enterprise/dsvflow/internal/models"
)

var testDay = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func newOrderService(t *testing.T, opts ...OrderOption) *OrderService {
	t.Helper()
	opts = append([]OrderOption{WithOrderClock(func() time.Time { return testDay })}, opts...)
	svc, err := NewOrderService(testStore(t), NewPricingService(), NopNotifier{}, opts...)
	if err != nil {
		t.Fatalf("new order service: %v", err)
	}
	return svc
}

func TestCreateOrderComputesEverything(t *testing.T) {
	svc := newOrderService(t)
	o, err := svc.Create(CreateOrderInput{
		ClientID:    "c1",
		ClientName:  "Acme",
		ProductType: "T-Shirts",
		Quantity:    500,
		UnitPrice:   10,
		Status:      models.StatusPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ID == "" {
		t.Error("missing id")
	}
	if o.OrderNumber != "DSV-20250314-001" {
		t.Errorf("order number = %s, want DSV-20250314-001", o.OrderNumber)
	}
	if o.Subtotal != 5000 || o.Discount != 750 || o.VATAmount != 637.5 || o.Total != 4887.5 {
		t.Errorf("pricing breakdown wrong: %+v", o)
	}
	if o.DiscountPercentage != 15 || o.ProfitMargin != 15 {
		t.Errorf("tier fields wrong: pct=%v margin=%v", o.DiscountPercentage, o.ProfitMargin)
	}
	if o.Status != models.StatusPending {
		t.Errorf("status = %s, want Pending", o.Status)
	}
	if !o.CreatedAt.Equal(testDay) || !o.UpdatedAt.Equal(testDay) {
		t.Errorf("timestamps not stamped: %v %v", o.CreatedAt, o.UpdatedAt)
	}
}

func TestCreateOrderDefaultsToPending(t *testing.T) {
	svc := newOrderService(t)
	o, err := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.Status != models.StatusPending {
		t.Errorf("status = %s, want Pending", o.Status)
	}
}

func TestOrderNumbersIncrementWithinDay(t *testing.T) {
	svc := newOrderService(t)
	for i, want := range []string{"DSV-20250314-001", "DSV-20250314-002", "DSV-20250314-003"} {
		o, err := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if o.OrderNumber != want {
			t.Errorf("order %d number = %s, want %s", i, o.OrderNumber, want)
		}
	}
}

func TestOrderNumberResetsOnNewDate(t *testing.T) {
	day := testDay
	svc := newOrderService(t, WithOrderClock(func() time.Time { return day }))
	if o, _ := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1}); o.OrderNumber != "DSV-20250314-001" {
		t.Fatalf("first number = %s", o.OrderNumber)
	}
	day = day.AddDate(0, 0, 1)
	o, err := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.OrderNumber != "DSV-20250315-001" {
		t.Errorf("number after date change = %s, want DSV-20250315-001", o.OrderNumber)
	}
}

func TestCreatePrependsNewestFirst(t *testing.T) {
	svc := newOrderService(t)
	first, _ := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})
	second, _ := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})
	orders := svc.Orders()
	if len(orders) != 2 || orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Errorf("orders not newest-first: %v", orders)
	}
}

func TestUpdateRecomputesPricing(t *testing.T) {
	svc := newOrderService(t)
	o, _ := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 50, UnitPrice: 10})
	qty := 1000
	if err := svc.Update(o.ID, OrderUpdate{Quantity: &qty}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := svc.Orders()[0]
	if got.Quantity != 1000 {
		t.Errorf("quantity = %d, want 1000", got.Quantity)
	}
	if got.DiscountPercentage != 20 {
		t.Errorf("discount pct = %v, want 20 after crossing the tier", got.DiscountPercentage)
	}
	if !approx(got.Total, 1000*10*0.8*1.15) {
		t.Errorf("total = %v, want %v", got.Total, 1000*10*0.8*1.15)
	}
}

func TestUpdatePricingUsesEffectiveValues(t *testing.T) {
	svc := newOrderService(t)
	o, _ := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 200, UnitPrice: 10})
	// Only the price changes; the recomputation must keep the stored quantity.
	price := 20.0
	if err := svc.Update(o.ID, OrderUpdate{UnitPrice: &price}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := svc.Orders()[0]
	if got.Subtotal != 4000 {
		t.Errorf("subtotal = %v, want 4000", got.Subtotal)
	}
	if got.DiscountPercentage != 10 {
		t.Errorf("discount pct = %v, want 10", got.DiscountPercentage)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	svc := newOrderService(t)
	svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})
	qty := 99
	if err := svc.Update("nope", OrderUpdate{Quantity: &qty}); err != nil {
		t.Fatalf("update should be silent, got %v", err)
	}
	if got := svc.Orders()[0].Quantity; got != 1 {
		t.Errorf("order mutated by unknown-id update: qty=%d", got)
	}
}

func TestUpdateStatusDirectJump(t *testing.T) {
	svc := newOrderService(t)
	o, _ := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1, Status: models.StatusDraft})
	if err := svc.UpdateStatus(o.ID, models.StatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if got := svc.Orders()[0].Status; got != models.StatusCompleted {
		t.Errorf("status = %s, want Completed", got)
	}
}

func TestAdvanceStatusSingleStep(t *testing.T) {
	svc := newOrderService(t)
	o, _ := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1, Status: models.StatusPending})
	next, ok, err := svc.AdvanceStatus(o.ID)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !ok || next != models.StatusApproved {
		t.Errorf("advance = (%s, %v), want (Approved, true)", next, ok)
	}
}

func TestAdvanceStatusTerminalIsNoOp(t *testing.T) {
	svc := newOrderService(t)
	o, _ := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})
	svc.UpdateStatus(o.ID, models.StatusDelivered)
	before := svc.Orders()[0].UpdatedAt
	next, ok, err := svc.AdvanceStatus(o.ID)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if ok || next != "" {
		t.Errorf("advance from Delivered = (%s, %v), want no transition", next, ok)
	}
	if got := svc.Orders()[0]; got.Status != models.StatusDelivered || !got.UpdatedAt.Equal(before) {
		t.Errorf("terminal order mutated: %+v", got)
	}
}

func TestDeleteOrder(t *testing.T) {
	svc := newOrderService(t)
	o, _ := svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})
	if err := svc.Delete(o.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(svc.Orders()) != 0 {
		t.Error("order not removed")
	}
	if err := svc.Delete(o.ID); err != nil {
		t.Fatalf("second delete should be silent, got %v", err)
	}
}

func TestQueriesByClientAndStatus(t *testing.T) {
	svc := newOrderService(t)
	svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1, Status: models.StatusDraft})
	svc.Create(CreateOrderInput{ClientID: "c2", Quantity: 1, UnitPrice: 1, Status: models.StatusPending})
	svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1, Status: models.StatusPending})

	if got := svc.ByClient("c1"); len(got) != 2 {
		t.Errorf("ByClient(c1) returned %d orders, want 2", len(got))
	}
	if got := svc.ByStatus(models.StatusPending); len(got) != 2 {
		t.Errorf("ByStatus(Pending) returned %d orders, want 2", len(got))
	}
	if got := svc.ByStatus(models.StatusDelivered); len(got) != 0 {
		t.Errorf("ByStatus(Delivered) returned %d orders, want 0", len(got))
	}
}

func TestByDateRangeInclusive(t *testing.T) {
	day := testDay
	svc := newOrderService(t, WithOrderClock(func() time.Time { return day }))
	svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})
	day = testDay.AddDate(0, 0, 5)
	svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})
	day = testDay.AddDate(0, 0, 10)
	svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})

	// Both bounds land exactly on creation timestamps and must be included.
	got := svc.ByDateRange(testDay, testDay.AddDate(0, 0, 5))
	if len(got) != 2 {
		t.Errorf("inclusive range returned %d orders, want 2", len(got))
	}
	if got := svc.ByDateRange(testDay.Add(time.Second), testDay.AddDate(0, 0, 4)); len(got) != 0 {
		t.Errorf("empty range returned %d orders", len(got))
	}
}

func TestOrdersSurviveReload(t *testing.T) {
	st := testStore(t)
	clock := func() time.Time { return testDay }
	svc, err := NewOrderService(st, NewPricingService(), NopNotifier{}, WithOrderClock(clock))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	created, err := svc.Create(CreateOrderInput{ClientID: "c1", ClientName: "Acme", Quantity: 500, UnitPrice: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	reloaded, err := NewOrderService(st, NewPricingService(), NopNotifier{}, WithOrderClock(clock))
	if err != nil {
		t.Fatalf("reload service: %v", err)
	}
	orders := reloaded.Orders()
	if len(orders) != 1 {
		t.Fatalf("reloaded %d orders, want 1", len(orders))
	}
	if orders[0].ID != created.ID || orders[0].Total != 4887.5 || orders[0].OrderNumber != created.OrderNumber {
		t.Errorf("reloaded order differs: %+v", orders[0])
	}
}

func TestCreateNotifiesSuccess(t *testing.T) {
	n := &recordingNotifier{}
	svc, err := NewOrderService(testStore(t), NewPricingService(), n,
		WithOrderClock(func() time.Time { return testDay }))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.Create(CreateOrderInput{ClientID: "c1", Quantity: 1, UnitPrice: 1})
	if len(n.successes) != 1 || !strings.Contains(n.successes[0], "Order created") {
		t.Errorf("unexpected notifications: %v", n.successes)
	}
}

// End-to-end scenario: a new client places the first order of the day and the
// client's running totals follow.
func TestEndToEndAcmeOrder(t *testing.T) {
	st := testStore(t)
	clock := func() time.Time { return testDay }

	clients, err := NewClientService(st, NopNotifier{}, WithClientClock(clock))
	if err != nil {
		t.Fatalf("client service: %v", err)
	}
	orders, err := NewOrderService(st, NewPricingService(), NopNotifier{},
		WithOrderClock(clock), WithClientStats(clients))
	if err != nil {
		t.Fatalf("order service: %v", err)
	}

	acme, err := clients.Create(CreateClientInput{Name: "Acme", Company: "Acme Ltd"})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	o, err := orders.Create(CreateOrderInput{
		ClientID:    acme.ID,
		ClientName:  acme.Name,
		ProductType: "T-Shirts",
		Quantity:    500,
		UnitPrice:   10,
		Status:      models.StatusPending,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if o.Subtotal != 5000 || o.Discount != 750 || o.VATAmount != 637.5 || o.Total != 4887.5 {
		t.Errorf("pricing wrong: %+v", o)
	}
	if o.Status != models.StatusPending {
		t.Errorf("status = %s", o.Status)
	}
	wantNumber := "DSV-" + testDay.Format("20060102") + "-001"
	if o.OrderNumber != wantNumber {
		t.Errorf("order number = %s, want %s", o.OrderNumber, wantNumber)
	}

	got, ok := clients.GetByID(acme.ID)
	if !ok {
		t.Fatal("client vanished")
	}
	if got.TotalOrders != 1 || got.TotalValue != 4887.5 {
		t.Errorf("client stats = %d orders, %v value; want 1, 4887.5", got.TotalOrders, got.TotalValue)
	}
}
