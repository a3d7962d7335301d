// Package pivot aggregates delivery lines into period buckets.
package pivot

import (
	"sort"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
)

// Bucket returns the start date and display label of the period containing d.
// Weeks start on Monday.
func Bucket(d time.Time, p domain.Period) (time.Time, string) {
	d = domain.DateOf(d)
	switch p {
	case domain.PeriodWeekly:
		offset := (int(d.Weekday()) + 6) % 7
		start := d.AddDate(0, 0, -offset)
		return start, "Week of " + start.Format("2006-01-02")
	case domain.PeriodMonthly:
		start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.Format("January 2006")
	}
	return d, d.Format("2006-01-02")
}

// Row is one (period, customer, ship-to) group.
type Row struct {
	Period            string    `json:"period"`
	PeriodStart       time.Time `json:"period_start"`
	Customer          string    `json:"customer"`
	ShipTo            string    `json:"ship_to"`
	Deliveries        int       `json:"deliveries"`
	LineItems         int       `json:"line_items"`
	Products          int       `json:"products"`
	StandardQuantity  float64   `json:"standard_quantity"`
	RemainingQuantity float64   `json:"remaining_quantity"`
	GapQuantity       float64   `json:"gap_quantity"`
	ProductGap        *float64  `json:"product_gap_quantity"`
}

// Totals sums a table across all rows.
type Totals struct {
	LineItems         int     `json:"line_items"`
	StandardQuantity  float64 `json:"standard_quantity"`
	RemainingQuantity float64 `json:"remaining_quantity"`
	GapQuantity       float64 `json:"gap_quantity"`
}

// Table is a long-format pivot.
type Table struct {
	Period domain.Period `json:"period"`
	Rows   []Row         `json:"rows"`
	Totals Totals        `json:"totals"`
	// Unscheduled counts lines without an ETD, which fall in no bucket
	Unscheduled int `json:"unscheduled"`
}

// Empty reports whether the table has no rows
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

type groupKey struct {
	start    time.Time
	customer string
	shipTo   string
}

type group struct {
	row        Row
	deliveries map[int64]struct{}
	products   map[int64]struct{}
}

// Build groups lines by (period, customer, ship-to). The product gap of a
// group counts every product once, since the view repeats the product-level
// gap on each of its lines.
func Build(lines []domain.DeliveryLine, period domain.Period) *Table {
	if !period.Valid() {
		period = domain.PeriodWeekly
	}

	t := &Table{Period: period, Rows: []Row{}}
	groups := make(map[groupKey]*group)
	order := make([]groupKey, 0)

	for i := range lines {
		l := &lines[i]
		if l.ETD == nil {
			t.Unscheduled++
			continue
		}
		start, label := Bucket(*l.ETD, period)
		key := groupKey{start: start, customer: l.Customer, shipTo: l.RecipientCompany}

		g, ok := groups[key]
		if !ok {
			g = &group{
				row:        Row{Period: label, PeriodStart: start, Customer: l.Customer, ShipTo: l.RecipientCompany},
				deliveries: make(map[int64]struct{}),
				products:   make(map[int64]struct{}),
			}
			groups[key] = g
			order = append(order, key)
		}

		g.row.LineItems++
		g.row.StandardQuantity += l.StandardQuantity
		g.row.RemainingQuantity += l.RemainingQuantity
		g.row.GapQuantity += l.GapQuantity
		g.deliveries[l.DeliveryID] = struct{}{}

		if _, seen := g.products[l.ProductID]; !seen {
			g.products[l.ProductID] = struct{}{}
			if l.ProductGapQuantity != nil {
				sum := *l.ProductGapQuantity
				if g.row.ProductGap != nil {
					sum += *g.row.ProductGap
				}
				g.row.ProductGap = &sum
			}
		}

		t.Totals.LineItems++
		t.Totals.StandardQuantity += l.StandardQuantity
		t.Totals.RemainingQuantity += l.RemainingQuantity
		t.Totals.GapQuantity += l.GapQuantity
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if !a.start.Equal(b.start) {
			return a.start.Before(b.start)
		}
		if a.customer != b.customer {
			return a.customer < b.customer
		}
		return a.shipTo < b.shipTo
	})

	for _, k := range order {
		g := groups[k]
		g.row.Deliveries = len(g.deliveries)
		g.row.Products = len(g.products)
		t.Rows = append(t.Rows, g.row)
	}
	return t
}
