package services

import (
	"sort"
	"time"

	"github.com/dsv-enterprise/dsvflow/internal/models"
)

// SalesMetrics is the dashboard stat strip computed over every order. Sales
// figures count only Completed and Delivered orders.
type SalesMetrics struct {
	TotalSales        float64
	TotalOrders       int
	OrdersThisMonth   int
	PendingOrders     int
	InProduction      int
	CompletedOrders   int
	AverageOrderValue float64
}

// ProductSales aggregates the orders of one product type within a report.
type ProductSales struct {
	ProductType string
	Orders      int
	Units       int
	Revenue     float64
}

// StatusCount is the number of report orders sitting in one lifecycle state.
type StatusCount struct {
	Status models.OrderStatus
	Count  int
}

// SalesReport is the period report rendered by the reports view: revenue
// totals plus product and status breakdowns over an inclusive date range.
type SalesReport struct {
	Start             time.Time
	End               time.Time
	TotalRevenue      float64
	TotalOrders       int
	CompletedOrders   int
	AverageOrderValue float64
	TotalUnits        int
	ByProduct         []ProductSales // revenue descending
	ByStatus          []StatusCount  // lifecycle flow order
}

// ReportService derives read-only sales figures from the order collection.
type ReportService struct {
	orders *OrderService
	now    func() time.Time
}

// ReportOption customizes a ReportService at construction.
type ReportOption func(*ReportService)

// WithReportClock substitutes the time source, mainly for tests.
func WithReportClock(now func() time.Time) ReportOption {
	return func(s *ReportService) { s.now = now }
}

func NewReportService(orders *OrderService, opts ...ReportOption) *ReportService {
	s := &ReportService{orders: orders, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func isSale(o models.Order) bool {
	return o.Status == models.StatusCompleted || o.Status == models.StatusDelivered
}

// Metrics computes the dashboard figures over the whole collection.
func (s *ReportService) Metrics() SalesMetrics {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var m SalesMetrics
	for _, o := range s.orders.Orders() {
		m.TotalOrders++
		if !o.CreatedAt.Before(monthStart) {
			m.OrdersThisMonth++
		}
		switch {
		case isSale(o):
			m.CompletedOrders++
			m.TotalSales += o.Total
		case o.Status == models.StatusPending:
			m.PendingOrders++
		case o.Status == models.StatusProduction:
			m.InProduction++
		}
	}
	if m.CompletedOrders > 0 {
		m.AverageOrderValue = m.TotalSales / float64(m.CompletedOrders)
	}
	return m
}

// Report builds the period report over the orders created within [start, end].
func (s *ReportService) Report(start, end time.Time) SalesReport {
	rep := SalesReport{Start: start, End: end}
	byProduct := map[string]*ProductSales{}
	byStatus := map[models.OrderStatus]int{}

	for _, o := range s.orders.ByDateRange(start, end) {
		rep.TotalOrders++
		rep.TotalUnits += o.Quantity
		if isSale(o) {
			rep.CompletedOrders++
			rep.TotalRevenue += o.Total
		}
		ps := byProduct[o.ProductType]
		if ps == nil {
			ps = &ProductSales{ProductType: o.ProductType}
			byProduct[o.ProductType] = ps
		}
		ps.Orders++
		ps.Units += o.Quantity
		ps.Revenue += o.Total
		byStatus[o.Status]++
	}
	if rep.CompletedOrders > 0 {
		rep.AverageOrderValue = rep.TotalRevenue / float64(rep.CompletedOrders)
	}
	for _, ps := range byProduct {
		rep.ByProduct = append(rep.ByProduct, *ps)
	}
	sort.Slice(rep.ByProduct, func(i, j int) bool {
		if rep.ByProduct[i].Revenue != rep.ByProduct[j].Revenue {
			return rep.ByProduct[i].Revenue > rep.ByProduct[j].Revenue
		}
		return rep.ByProduct[i].ProductType < rep.ByProduct[j].ProductType
	})
	for _, st := range models.StatusFlow {
		if n := byStatus[st]; n > 0 {
			rep.ByStatus = append(rep.ByStatus, StatusCount{Status: st, Count: n})
		}
	}
	return rep
}
