package pivot_test

import (
	"testing"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/pivot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func f(v float64) *float64 {
	return &v
}

func TestBucket(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		period domain.Period
		start  string
		label  string
	}{
		{"daily", "2024-01-10", domain.PeriodDaily, "2024-01-10", "2024-01-10"},
		{"weekly midweek", "2024-01-10", domain.PeriodWeekly, "2024-01-08", "Week of 2024-01-08"},
		{"weekly monday", "2024-01-08", domain.PeriodWeekly, "2024-01-08", "Week of 2024-01-08"},
		{"weekly sunday", "2024-01-14", domain.PeriodWeekly, "2024-01-08", "Week of 2024-01-08"},
		{"weekly across year", "2025-01-01", domain.PeriodWeekly, "2024-12-30", "Week of 2024-12-30"},
		{"monthly", "2024-02-29", domain.PeriodMonthly, "2024-02-01", "February 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, label := pivot.Bucket(*day(tt.date), tt.period)
			assert.Equal(t, *day(tt.start), start)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestBuild_SameWeekCustomerShipToIsOneRow(t *testing.T) {
	lines := []domain.DeliveryLine{
		{DeliveryID: 1, ETD: day("2024-01-10"), Customer: "A", RecipientCompany: "X", ProductID: 1, PTCode: "P1", RemainingQuantity: 100},
		{DeliveryID: 2, ETD: day("2024-01-10"), Customer: "A", RecipientCompany: "X", ProductID: 1, PTCode: "P1", RemainingQuantity: 50},
	}

	table := pivot.Build(lines, domain.PeriodWeekly)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, "Week of 2024-01-08", row.Period)
	assert.Equal(t, "A", row.Customer)
	assert.Equal(t, "X", row.ShipTo)
	assert.Equal(t, 150.0, row.RemainingQuantity)
	assert.Equal(t, 2, row.Deliveries)
	assert.Equal(t, 2, row.LineItems)
	assert.Equal(t, 1, row.Products)
}

func TestBuild_ProductGapCountedOncePerProduct(t *testing.T) {
	lines := []domain.DeliveryLine{
		{DeliveryID: 1, ETD: day("2024-01-10"), Customer: "A", ProductID: 1, ProductGapQuantity: f(20)},
		{DeliveryID: 2, ETD: day("2024-01-11"), Customer: "A", ProductID: 1, ProductGapQuantity: f(20)},
		{DeliveryID: 3, ETD: day("2024-01-11"), Customer: "A", ProductID: 2, ProductGapQuantity: f(5)},
		{DeliveryID: 4, ETD: day("2024-01-11"), Customer: "A", ProductID: 3},
	}

	table := pivot.Build(lines, domain.PeriodWeekly)

	require.Len(t, table.Rows, 1)
	require.NotNil(t, table.Rows[0].ProductGap)
	assert.Equal(t, 25.0, *table.Rows[0].ProductGap)
}

func TestBuild_OrdersChronologicallyThenByParty(t *testing.T) {
	lines := []domain.DeliveryLine{
		{DeliveryID: 1, ETD: day("2024-02-01"), Customer: "A", RecipientCompany: "X"},
		{DeliveryID: 2, ETD: day("2024-01-15"), Customer: "B", RecipientCompany: "Y"},
		{DeliveryID: 3, ETD: day("2024-01-15"), Customer: "A", RecipientCompany: "Z"},
		{DeliveryID: 4, ETD: day("2024-01-15"), Customer: "A", RecipientCompany: "Y"},
	}

	table := pivot.Build(lines, domain.PeriodDaily)

	var got [][3]string
	for _, r := range table.Rows {
		got = append(got, [3]string{r.Period, r.Customer, r.ShipTo})
	}
	assert.Equal(t, [][3]string{
		{"2024-01-15", "A", "Y"},
		{"2024-01-15", "A", "Z"},
		{"2024-01-15", "B", "Y"},
		{"2024-02-01", "A", "X"},
	}, got)
}

func TestBuild_ConservesRemainingQuantityAcrossPeriods(t *testing.T) {
	lines := []domain.DeliveryLine{
		{DeliveryID: 1, ETD: day("2023-12-29"), Customer: "A", RemainingQuantity: 12.5},
		{DeliveryID: 2, ETD: day("2024-01-01"), Customer: "A", RemainingQuantity: 7},
		{DeliveryID: 3, ETD: day("2024-01-07"), Customer: "B", RemainingQuantity: 3},
		{DeliveryID: 4, ETD: day("2024-01-31"), Customer: "B", RemainingQuantity: 40},
		{DeliveryID: 5, ETD: day("2024-02-01"), Customer: "C", RemainingQuantity: 0.5},
		{DeliveryID: 6, ETD: nil, Customer: "C", RemainingQuantity: 99},
	}

	sum := func(t *pivot.Table) float64 {
		total := 0.0
		for _, r := range t.Rows {
			total += r.RemainingQuantity
		}
		return total
	}

	daily := pivot.Build(lines, domain.PeriodDaily)
	weekly := pivot.Build(lines, domain.PeriodWeekly)
	monthly := pivot.Build(lines, domain.PeriodMonthly)

	assert.Equal(t, 63.0, sum(daily))
	assert.Equal(t, sum(daily), sum(weekly))
	assert.Equal(t, sum(daily), sum(monthly))
	assert.Equal(t, daily.Totals.RemainingQuantity, sum(daily))
	assert.Equal(t, 1, daily.Unscheduled)
}

func TestBuild_EmptyInput(t *testing.T) {
	table := pivot.Build(nil, domain.PeriodMonthly)

	require.NotNil(t, table)
	assert.NotNil(t, table.Rows)
	assert.True(t, table.Empty())
	assert.Equal(t, domain.PeriodMonthly, table.Period)
}

func TestBuild_InvalidPeriodFallsBackToWeekly(t *testing.T) {
	table := pivot.Build([]domain.DeliveryLine{{ETD: day("2024-01-10")}}, "fortnightly")
	assert.Equal(t, domain.PeriodWeekly, table.Period)
}
