package analysis

import (
	"sort"

	"github.com/prostech/outbound-api/internal/domain"
)

// Metrics are the KPI tiles at the top of the dashboard.
type Metrics struct {
	TotalDeliveries    int      `json:"total_deliveries"`
	LineItems          int      `json:"line_items"`
	UniqueCustomers    int      `json:"unique_customers"`
	TotalQuantity      float64  `json:"total_quantity"`
	RemainingQuantity  float64  `json:"remaining_quantity"`
	OverdueDeliveries  int      `json:"overdue_deliveries"`
	DueTodayDeliveries int      `json:"due_today_deliveries"`
	AvgFulfillRate     *float64 `json:"avg_fulfill_rate"`
	UniqueProducts     int      `json:"unique_products"`
	ProductsOutOfStock int      `json:"products_out_of_stock"`
	TotalProductGap    *float64 `json:"total_product_gap"`
}

// ComputeMetrics summarizes lines into KPI tiles. Product-level measures are
// counted once per product.
func ComputeMetrics(lines []domain.DeliveryLine) Metrics {
	var m Metrics

	deliveries := make(map[int64]struct{})
	overdue := make(map[int64]struct{})
	dueToday := make(map[int64]struct{})
	customers := make(map[string]struct{})
	products := make(map[int64]*domain.DeliveryLine)
	outOfStock := make(map[int64]struct{})

	for i := range lines {
		l := &lines[i]
		m.LineItems++
		m.TotalQuantity += l.StandardQuantity
		m.RemainingQuantity += l.RemainingQuantity
		deliveries[l.DeliveryID] = struct{}{}
		if l.Customer != "" {
			customers[l.Customer] = struct{}{}
		}
		switch l.TimelineStatus {
		case domain.TimelineOverdue:
			overdue[l.DeliveryID] = struct{}{}
		case domain.TimelineDueToday:
			dueToday[l.DeliveryID] = struct{}{}
		}
		if _, ok := products[l.ProductID]; !ok {
			products[l.ProductID] = l
		}
		if l.EffectiveFulfillmentStatus() == domain.FulfillmentOutOfStock {
			outOfStock[l.ProductID] = struct{}{}
		}
	}

	m.TotalDeliveries = len(deliveries)
	m.OverdueDeliveries = len(overdue)
	m.DueTodayDeliveries = len(dueToday)
	m.UniqueCustomers = len(customers)
	m.UniqueProducts = len(products)
	m.ProductsOutOfStock = len(outOfStock)

	ids := make([]int64, 0, len(products))
	for id := range products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var rateSum, gapSum float64
	var rates, gaps int
	for _, id := range ids {
		l := products[id]
		if l.ProductFulfillRate != nil {
			rateSum += *l.ProductFulfillRate
			rates++
		}
		if l.ProductGapQuantity != nil {
			gapSum += *l.ProductGapQuantity
			gaps++
		}
	}
	if rates > 0 {
		avg := rateSum / float64(rates)
		m.AvgFulfillRate = &avg
	}
	if gaps > 0 {
		m.TotalProductGap = &gapSum
	}

	return m
}
