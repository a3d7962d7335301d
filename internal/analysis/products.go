// Package analysis derives product gap, KPI and overdue summaries from a
// normalized row-set. Every function is pure.
package analysis

import (
	"sort"

	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/normalize"
)

// criticalFulfillRate is the fill rate below which a product with a gap is critical
const criticalFulfillRate = 50.0

// ProductSummary is one product across all its delivery lines.
// ProductDemand is the view's demand over every open line of the product,
// regardless of filters; GapPercentage is relative to it.
type ProductSummary struct {
	ProductID            int64    `json:"product_id"`
	PTCode               string   `json:"pt_code"`
	ProductPN            string   `json:"product_pn"`
	Brand                string   `json:"brand,omitempty"`
	PackageSize          string   `json:"package_size,omitempty"`
	StandardUOM          string   `json:"standard_uom,omitempty"`
	ActiveDeliveries     int      `json:"active_deliveries"`
	Customers            int      `json:"customers"`
	TotalRemainingDemand float64  `json:"total_remaining_demand"`
	ProductDemand        *float64 `json:"product_total_remaining_demand"`
	TotalInventory       *float64 `json:"total_inventory"`
	GapQuantity          *float64 `json:"gap_quantity"`
	FulfillRate          *float64 `json:"fulfill_rate"`
	GapPercentage        *float64 `json:"gap_percentage"`
	WarehouseCount       int      `json:"warehouse_count"`
	FulfillmentStatus    string   `json:"fulfillment_status"`
}

// HasGap reports whether the product has a known positive shortfall
func (p ProductSummary) HasGap() bool {
	return p.GapQuantity != nil && *p.GapQuantity > 0
}

// ProductAnalysis is the per-product view of a row-set.
type ProductAnalysis struct {
	Products []ProductSummary           `json:"products"`
	Notices  []domain.DataQualityNotice `json:"notices,omitempty"`
	// Degraded is set when product-level gap columns were missing
	Degraded bool `json:"degraded"`
}

type productAcc struct {
	summary    ProductSummary
	deliveries map[int64]struct{}
	customers  map[string]struct{}
	warehouses map[string]struct{}
	lineDemand float64
	status     string
}

// AnalyzeProducts groups lines by product id, ordered by product id.
// TotalRemainingDemand sums the remaining quantity of the product's lines in
// the row-set. Product-level measures are taken from the first line of each
// product, since the view repeats them on every line. Without those columns the result
// carries demand only and explains why in Notices.
func AnalyzeProducts(rs *normalize.RowSet) *ProductAnalysis {
	out := &ProductAnalysis{Products: []ProductSummary{}}
	if rs == nil {
		return out
	}

	out.Notices = Notices(rs.Schema)
	out.Degraded = !rs.Schema.HasProductLevel()

	accs := make(map[int64]*productAcc)
	ids := make([]int64, 0)

	for i := range rs.Lines {
		l := &rs.Lines[i]
		acc, ok := accs[l.ProductID]
		if !ok {
			acc = &productAcc{
				summary: ProductSummary{
					ProductID:   l.ProductID,
					PTCode:      l.PTCode,
					ProductPN:   l.ProductPN,
					Brand:       l.Brand,
					PackageSize: l.PackageSize,
					StandardUOM: l.StandardUOM,
					FulfillRate: copyFloat(l.ProductFulfillRate),
				},
				deliveries: make(map[int64]struct{}),
				customers:  make(map[string]struct{}),
				warehouses: make(map[string]struct{}),
			}
			acc.summary.ProductDemand = copyFloat(l.ProductTotalRemainingDemand)
			acc.summary.GapQuantity = copyFloat(l.ProductGapQuantity)
			acc.summary.TotalInventory = copyFloat(l.InStockAllWarehouses)
			if acc.summary.TotalInventory == nil {
				acc.summary.TotalInventory = copyFloat(l.InStockPreferredWarehouse)
			}
			accs[l.ProductID] = acc
			ids = append(ids, l.ProductID)
		}

		if acc.status == "" {
			acc.status = l.ProductFulfillmentStatus
		}
		acc.deliveries[l.DeliveryID] = struct{}{}
		if l.Customer != "" {
			acc.customers[l.Customer] = struct{}{}
		}
		if l.PreferredWarehouse != "" {
			acc.warehouses[l.PreferredWarehouse] = struct{}{}
		}
		acc.lineDemand += l.RemainingQuantity
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		acc := accs[id]
		s := acc.summary
		s.ActiveDeliveries = len(acc.deliveries)
		s.Customers = len(acc.customers)
		s.WarehouseCount = len(acc.warehouses)
		s.TotalRemainingDemand = acc.lineDemand
		s.GapPercentage = GapPercentage(s.GapQuantity, s.ProductDemand)
		s.FulfillmentStatus = ClassifyFulfillment(acc.status, s.GapQuantity, s.FulfillRate)
		out.Products = append(out.Products, s)
	}

	return out
}

// GapPercentage is gap / demand * 100. It is nil when the gap is unknown, the
// demand is unknown or the demand is zero.
func GapPercentage(gap, demand *float64) *float64 {
	if gap == nil || demand == nil || *demand == 0 {
		return nil
	}
	pct := *gap / *demand * 100
	return &pct
}

// ClassifyFulfillment prefers the upstream product status. Otherwise a product
// with no gap can fulfill all, a gap with a fill rate under 50% is critical,
// and any other gap is partial. An unknown gap is Unknown.
func ClassifyFulfillment(upstream string, gap, rate *float64) string {
	if upstream != "" {
		return upstream
	}
	if gap == nil {
		return domain.FulfillmentUnknown
	}
	if *gap <= 0 {
		return domain.FulfillmentCanFulfillAll
	}
	if rate != nil && *rate < criticalFulfillRate {
		return domain.FulfillmentCritical
	}
	return domain.FulfillmentCanFulfillPartial
}

// Notices lists the data quality warnings implied by missing optional columns.
func Notices(schema normalize.Schema) []domain.DataQualityNotice {
	var notices []domain.DataQualityNotice
	if !schema.HasProductLevel() {
		notices = append(notices, domain.DataQualityNotice{
			Field:   normalize.ColumnProductGap,
			Message: "Product-level gap data is not available. Showing remaining demand only.",
		})
	}
	if !schema.HasFulfillRate() {
		notices = append(notices, domain.DataQualityNotice{
			Field:   normalize.ColumnFulfillRate,
			Message: "Product fulfill rate is not available.",
		})
	}
	if !schema.HasInventory() {
		notices = append(notices, domain.DataQualityNotice{
			Field:   normalize.ColumnInStockAll,
			Message: "Inventory levels are not available.",
		})
	}
	return notices
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
