package services

// DiscountTier maps a minimum order quantity to a volume discount percentage.
type DiscountTier struct {
	MinQuantity int
	Percentage  float64
	Label       string
}

// DiscountTiers is ordered by descending minimum; the first tier whose
// minimum is at or below the quantity wins. Thresholds are disjoint by
// construction.
var DiscountTiers = []DiscountTier{
	{MinQuantity: 1000, Percentage: 20, Label: "Maximum (1000+ units)"},
	{MinQuantity: 500, Percentage: 15, Label: "Higher (500+ units)"},
	{MinQuantity: 200, Percentage: 10, Label: "Medium (200+ units)"},
	{MinQuantity: 100, Percentage: 5, Label: "Small (100+ units)"},
	{MinQuantity: 0, Percentage: 0, Label: "No discount"},
}

// VATRate is the Ghana standard VAT rate, applied on the post-discount subtotal.
const VATRate = 0.15

// Pricing is the computed money breakdown for one order.
type Pricing struct {
	Subtotal           float64
	Discount           float64
	DiscountPercentage float64
	VAT                float64 // rate as a percentage, e.g. 15
	VATAmount          float64
	Total              float64
	ProfitMargin       float64
}

// PricingService computes quantity discounts, VAT and totals. It holds no
// state; one instance can be shared by every caller.
type PricingService struct{}

func NewPricingService() *PricingService { return &PricingService{} }

// DiscountFor returns the discount percentage granted for a quantity.
func (s *PricingService) DiscountFor(quantity int) float64 {
	for _, t := range DiscountTiers {
		if quantity >= t.MinQuantity {
			return t.Percentage
		}
	}
	return 0
}

// Compute derives the full pricing breakdown for quantity units at unitPrice.
// The profit margin is a display heuristic: a 30% base eroded by the granted
// discount, floored at 10%. Pure and deterministic; no error conditions.
func (s *PricingService) Compute(quantity int, unitPrice float64) Pricing {
	pct := s.DiscountFor(quantity)
	subtotal := float64(quantity) * unitPrice
	discount := subtotal * (pct / 100)
	afterDiscount := subtotal - discount
	vatAmount := afterDiscount * VATRate
	margin := 30 - pct
	if margin < 10 {
		margin = 10
	}
	return Pricing{
		Subtotal:           subtotal,
		Discount:           discount,
		DiscountPercentage: pct,
		VAT:                VATRate * 100,
		VATAmount:          vatAmount,
		Total:              afterDiscount + vatAmount,
		ProfitMargin:       margin,
	}
}
