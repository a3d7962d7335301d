package analysis_test

import (
	"encoding/json"
	"testing"

	"github.com/prostech/outbound-api/internal/analysis"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 {
	return &v
}

var fullColumns = []string{
	"delivery_id", "product_id", "pt_code", "customer", "remaining_quantity_to_deliver",
	"product_gap_quantity", "product_total_remaining_demand", "product_fulfill_rate_percent",
	"total_instock_all_warehouses", "product_fulfillment_status", "preferred_warehouse",
}

func rowSet(columns []string, lines ...domain.DeliveryLine) *normalize.RowSet {
	return &normalize.RowSet{Columns: columns, Lines: lines, Schema: normalize.NewSchema(columns)}
}

func TestAnalyzeProducts_SameProductGapNotDoubleCounted(t *testing.T) {
	rs := rowSet(fullColumns,
		domain.DeliveryLine{DeliveryID: 1, ProductID: 7, PTCode: "PT007", RemainingQuantity: 30,
			ProductGapQuantity: f(20), ProductTotalRemainingDemand: f(80), ProductFulfillRate: f(75)},
		domain.DeliveryLine{DeliveryID: 2, ProductID: 7, PTCode: "PT007", RemainingQuantity: 50,
			ProductGapQuantity: f(20), ProductTotalRemainingDemand: f(80), ProductFulfillRate: f(75)},
	)

	a := analysis.AnalyzeProducts(rs)

	require.Len(t, a.Products, 1)
	p := a.Products[0]
	require.NotNil(t, p.GapQuantity)
	assert.Equal(t, 20.0, *p.GapQuantity)
	assert.Equal(t, 80.0, p.TotalRemainingDemand)
	require.NotNil(t, p.ProductDemand)
	assert.Equal(t, 80.0, *p.ProductDemand)
	assert.Equal(t, 2, p.ActiveDeliveries)
	require.NotNil(t, p.GapPercentage)
	assert.Equal(t, 25.0, *p.GapPercentage)
	assert.Equal(t, domain.FulfillmentCanFulfillPartial, p.FulfillmentStatus)
	assert.False(t, a.Degraded)
}

func TestAnalyzeProducts_DemandFollowsFilteredLines(t *testing.T) {
	rs := rowSet(fullColumns,
		domain.DeliveryLine{DeliveryID: 1, ProductID: 7, PTCode: "PT007", RemainingQuantity: 10,
			ProductGapQuantity: f(100), ProductTotalRemainingDemand: f(500)},
		domain.DeliveryLine{DeliveryID: 2, ProductID: 7, PTCode: "PT007", RemainingQuantity: 15,
			ProductGapQuantity: f(100), ProductTotalRemainingDemand: f(500)},
		domain.DeliveryLine{DeliveryID: 3, ProductID: 8, PTCode: "PT008", RemainingQuantity: 40,
			ProductGapQuantity: f(0), ProductTotalRemainingDemand: f(40)},
	)

	a := analysis.AnalyzeProducts(rs)

	require.Len(t, a.Products, 2)
	p := a.Products[0]
	assert.Equal(t, 25.0, p.TotalRemainingDemand, "sum of remaining quantity in the row-set")
	require.NotNil(t, p.ProductDemand)
	assert.Equal(t, 500.0, *p.ProductDemand)
	require.NotNil(t, p.GapPercentage)
	assert.Equal(t, 20.0, *p.GapPercentage)

	top := analysis.TopShortage(a, 5, analysis.SortByDemand)
	require.Len(t, top, 2)
	assert.Equal(t, int64(8), top[0].ProductID)
}

func TestAnalyzeProducts_OrderedByProductID(t *testing.T) {
	rs := rowSet(fullColumns,
		domain.DeliveryLine{DeliveryID: 1, ProductID: 9, ProductGapQuantity: f(0), ProductTotalRemainingDemand: f(1)},
		domain.DeliveryLine{DeliveryID: 2, ProductID: 3, ProductGapQuantity: f(0), ProductTotalRemainingDemand: f(1)},
		domain.DeliveryLine{DeliveryID: 3, ProductID: 5, ProductGapQuantity: f(0), ProductTotalRemainingDemand: f(1)},
	)

	a := analysis.AnalyzeProducts(rs)

	var ids []int64
	for _, p := range a.Products {
		ids = append(ids, p.ProductID)
	}
	assert.Equal(t, []int64{3, 5, 9}, ids)
}

func TestAnalyzeProducts_UpstreamStatusWins(t *testing.T) {
	rs := rowSet(fullColumns,
		domain.DeliveryLine{ProductID: 1, ProductGapQuantity: f(10), ProductTotalRemainingDemand: f(10),
			ProductFulfillRate: f(0), ProductFulfillmentStatus: domain.FulfillmentOutOfStock},
	)

	a := analysis.AnalyzeProducts(rs)
	assert.Equal(t, domain.FulfillmentOutOfStock, a.Products[0].FulfillmentStatus)
}

func TestAnalyzeProducts_ZeroDemandHasNoPercentage(t *testing.T) {
	rs := rowSet(fullColumns,
		domain.DeliveryLine{ProductID: 1, ProductGapQuantity: f(0), ProductTotalRemainingDemand: f(0)},
	)

	a := analysis.AnalyzeProducts(rs)
	assert.Nil(t, a.Products[0].GapPercentage)
	assert.Equal(t, domain.FulfillmentCanFulfillAll, a.Products[0].FulfillmentStatus)
}

func TestAnalyzeProducts_DegradesWithoutProductColumns(t *testing.T) {
	columns := []string{"delivery_id", "product_id", "pt_code", "remaining_quantity_to_deliver"}
	rs := rowSet(columns,
		domain.DeliveryLine{DeliveryID: 1, ProductID: 1, PTCode: "PT001", RemainingQuantity: 10},
		domain.DeliveryLine{DeliveryID: 2, ProductID: 1, PTCode: "PT001", RemainingQuantity: 15},
	)

	a := analysis.AnalyzeProducts(rs)

	assert.True(t, a.Degraded)
	require.Len(t, a.Products, 1)
	p := a.Products[0]
	assert.Equal(t, 25.0, p.TotalRemainingDemand)
	assert.Nil(t, p.GapQuantity)
	assert.Nil(t, p.GapPercentage)
	assert.Nil(t, p.FulfillRate)
	assert.Equal(t, domain.FulfillmentUnknown, p.FulfillmentStatus)

	var fields []string
	for _, n := range a.Notices {
		fields = append(fields, n.Field)
	}
	assert.Contains(t, fields, "product_gap_quantity")
	assert.Contains(t, fields, "product_fulfill_rate_percent")
}

func TestAnalyzeProducts_IsIdempotent(t *testing.T) {
	rs := rowSet(fullColumns,
		domain.DeliveryLine{DeliveryID: 1, ProductID: 2, Customer: "A", PreferredWarehouse: "HCM",
			ProductGapQuantity: f(5), ProductTotalRemainingDemand: f(40), ProductFulfillRate: f(30), InStockAllWarehouses: f(35)},
		domain.DeliveryLine{DeliveryID: 2, ProductID: 1, Customer: "B", PreferredWarehouse: "HN",
			ProductGapQuantity: f(0), ProductTotalRemainingDemand: f(10), ProductFulfillRate: f(100)},
		domain.DeliveryLine{DeliveryID: 3, ProductID: 2, Customer: "C", PreferredWarehouse: "HN",
			ProductGapQuantity: f(5), ProductTotalRemainingDemand: f(40), ProductFulfillRate: f(30)},
	)

	first, err := json.Marshal(analysis.AnalyzeProducts(rs))
	require.NoError(t, err)
	second, err := json.Marshal(analysis.AnalyzeProducts(rs))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestAnalyzeProducts_EmptyInput(t *testing.T) {
	a := analysis.AnalyzeProducts(rowSet(fullColumns))
	require.NotNil(t, a)
	assert.NotNil(t, a.Products)
	assert.Empty(t, a.Products)

	assert.NotNil(t, analysis.AnalyzeProducts(nil).Products)
}

func TestClassifyFulfillment(t *testing.T) {
	tests := []struct {
		name     string
		upstream string
		gap      *float64
		rate     *float64
		want     string
	}{
		{"upstream", domain.FulfillmentReadyToShip, f(10), f(10), domain.FulfillmentReadyToShip},
		{"unknown gap", "", nil, f(10), domain.FulfillmentUnknown},
		{"no gap", "", f(0), nil, domain.FulfillmentCanFulfillAll},
		{"critical", "", f(10), f(49.9), domain.FulfillmentCritical},
		{"half filled is partial", "", f(10), f(50), domain.FulfillmentCanFulfillPartial},
		{"gap without rate", "", f(10), nil, domain.FulfillmentCanFulfillPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analysis.ClassifyFulfillment(tt.upstream, tt.gap, tt.rate))
		})
	}
}

func TestTopShortage(t *testing.T) {
	a := &analysis.ProductAnalysis{Products: []analysis.ProductSummary{
		{ProductID: 1, GapQuantity: f(10), GapPercentage: f(50), TotalRemainingDemand: 20},
		{ProductID: 2, GapQuantity: f(0), GapPercentage: f(0), TotalRemainingDemand: 100},
		{ProductID: 3, GapQuantity: f(30), GapPercentage: f(10), TotalRemainingDemand: 300},
		{ProductID: 4, GapQuantity: f(10), GapPercentage: nil, TotalRemainingDemand: 0},
		{ProductID: 5, GapQuantity: nil, TotalRemainingDemand: 40},
	}}

	ids := func(ps []analysis.ProductSummary) []int64 {
		out := []int64{}
		for _, p := range ps {
			out = append(out, p.ProductID)
		}
		return out
	}

	assert.Equal(t, []int64{3, 1, 4}, ids(analysis.TopShortage(a, 15, analysis.SortByGapQuantity)))
	assert.Equal(t, []int64{1, 3, 4}, ids(analysis.TopShortage(a, 15, analysis.SortByGapPercentage)))
	assert.Equal(t, []int64{3, 2, 5, 1, 4}, ids(analysis.TopShortage(a, 15, analysis.SortByDemand)))
	assert.Equal(t, []int64{3, 1, 4}, ids(analysis.TopShortage(a, 0, "bogus")))
	assert.Empty(t, analysis.TopShortage(nil, 10, analysis.SortByDemand))
}

func TestClampTopN(t *testing.T) {
	assert.Equal(t, 15, analysis.ClampTopN(0))
	assert.Equal(t, 5, analysis.ClampTopN(2))
	assert.Equal(t, 20, analysis.ClampTopN(20))
	assert.Equal(t, 50, analysis.ClampTopN(500))
}

func TestComputeMetrics(t *testing.T) {
	lines := []domain.DeliveryLine{
		{DeliveryID: 1, ProductID: 1, Customer: "A", StandardQuantity: 10, RemainingQuantity: 10,
			TimelineStatus: domain.TimelineOverdue, ProductFulfillRate: f(40), ProductGapQuantity: f(6),
			ProductFulfillmentStatus: domain.FulfillmentOutOfStock},
		{DeliveryID: 1, ProductID: 2, Customer: "A", StandardQuantity: 5, RemainingQuantity: 0,
			TimelineStatus: domain.TimelineOverdue, ProductFulfillRate: f(100), ProductGapQuantity: f(0)},
		{DeliveryID: 2, ProductID: 1, Customer: "B", StandardQuantity: 20, RemainingQuantity: 15,
			TimelineStatus: domain.TimelineDueToday, ProductFulfillRate: f(40), ProductGapQuantity: f(6)},
	}

	m := analysis.ComputeMetrics(lines)

	assert.Equal(t, 2, m.TotalDeliveries)
	assert.Equal(t, 3, m.LineItems)
	assert.Equal(t, 2, m.UniqueCustomers)
	assert.Equal(t, 35.0, m.TotalQuantity)
	assert.Equal(t, 25.0, m.RemainingQuantity)
	assert.Equal(t, 1, m.OverdueDeliveries)
	assert.Equal(t, 1, m.DueTodayDeliveries)
	assert.Equal(t, 2, m.UniqueProducts)
	assert.Equal(t, 1, m.ProductsOutOfStock)
	require.NotNil(t, m.AvgFulfillRate)
	assert.Equal(t, 70.0, *m.AvgFulfillRate)
	require.NotNil(t, m.TotalProductGap)
	assert.Equal(t, 6.0, *m.TotalProductGap)
}

func TestComputeMetrics_EmptyInput(t *testing.T) {
	m := analysis.ComputeMetrics(nil)
	assert.Zero(t, m.TotalDeliveries)
	assert.Nil(t, m.AvgFulfillRate)
	assert.Nil(t, m.TotalProductGap)
}

func TestSummarizeOverdue(t *testing.T) {
	lines := []domain.DeliveryLine{
		{DeliveryID: 1, Customer: "A", RecipientCompany: "X", TimelineStatus: domain.TimelineOverdue, DaysOverdue: 2, RemainingQuantity: 5},
		{DeliveryID: 1, Customer: "A", RecipientCompany: "X", TimelineStatus: domain.TimelineOverdue, DaysOverdue: 2, RemainingQuantity: 3},
		{DeliveryID: 2, Customer: "B", RecipientCompany: "Y", TimelineStatus: domain.TimelineOverdue, DaysOverdue: 9, RemainingQuantity: 1},
		{DeliveryID: 3, Customer: "C", RecipientCompany: "Z", TimelineStatus: domain.TimelineOverdue, DaysOverdue: 20, RemainingQuantity: 0},
		{DeliveryID: 4, Customer: "D", RecipientCompany: "W", TimelineStatus: domain.TimelineDueToday, RemainingQuantity: 4},
	}

	s := analysis.SummarizeOverdue(lines)

	require.Len(t, s.Groups, 2)
	assert.Equal(t, "B", s.Groups[0].Customer)
	assert.Equal(t, 9, s.Groups[0].MaxDaysOverdue)
	assert.Equal(t, "A", s.Groups[1].Customer)
	assert.Equal(t, 1, s.Groups[1].Deliveries)
	assert.Equal(t, 2, s.Groups[1].LineItems)
	assert.Equal(t, 8.0, s.Groups[1].RemainingQuantity)
	assert.Equal(t, 2, s.Deliveries)
	assert.Equal(t, 9, s.MaxDaysOverdue)
}

func TestSplitCustomsAndFilters(t *testing.T) {
	lines := []domain.DeliveryLine{
		{DeliveryID: 1, IsEPECompany: "Yes", CustomerCountryCode: "VN", LegalEntityCountryCode: "VN", RemainingQuantity: 1},
		{DeliveryID: 2, IsEPECompany: "No", CustomerCountryCode: "SG", LegalEntityCountryCode: "VN", RemainingQuantity: 0},
		{DeliveryID: 3, IsEPECompany: "No", CustomerCountryCode: "VN", LegalEntityCountryCode: "VN", RemainingQuantity: 2,
			TimelineStatus: domain.TimelineDueToday},
		{DeliveryID: 4, RemainingQuantity: 2, TimelineStatus: domain.TimelineOverdue, ShipmentStatus: domain.ShipmentStatusDelivered},
	}

	epe, foreign := analysis.SplitCustoms(lines)
	require.Len(t, epe, 1)
	require.Len(t, foreign, 1)
	assert.Equal(t, int64(1), epe[0].DeliveryID)
	assert.Equal(t, int64(2), foreign[0].DeliveryID)

	assert.Len(t, analysis.ActiveOnly(lines), 3)

	urgent := analysis.UrgentOnly(lines)
	require.Len(t, urgent, 1)
	assert.Equal(t, int64(3), urgent[0].DeliveryID)
}
