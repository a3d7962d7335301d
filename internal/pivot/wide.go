package pivot

import (
	"sort"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
)

// GroupBy selects the row dimension of a wide pivot.
type GroupBy string

const (
	GroupByCustomerProduct GroupBy = "customer_product"
	GroupByCustomer        GroupBy = "customer"
	GroupByProduct         GroupBy = "product"
)

// Valid reports whether g is supported
func (g GroupBy) Valid() bool {
	switch g {
	case GroupByCustomerProduct, GroupByCustomer, GroupByProduct:
		return true
	}
	return false
}

// Measure selects the quantity summed in each cell.
type Measure string

const (
	MeasureStandard  Measure = "standard_quantity"
	MeasureRemaining Measure = "remaining_quantity"
)

// Valid reports whether m is supported
func (m Measure) Valid() bool {
	return m == MeasureStandard || m == MeasureRemaining
}

func (m Measure) of(l *domain.DeliveryLine) float64 {
	if m == MeasureRemaining {
		return l.RemainingQuantity
	}
	return l.StandardQuantity
}

// WideOptions configures Wide. Zero values fall back to weekly buckets,
// customer-by-product rows and the standard quantity.
type WideOptions struct {
	Period  domain.Period
	GroupBy GroupBy
	Measure Measure
}

func (o WideOptions) withDefaults() WideOptions {
	if !o.Period.Valid() {
		o.Period = domain.PeriodWeekly
	}
	if !o.GroupBy.Valid() {
		o.GroupBy = GroupByCustomerProduct
	}
	if !o.Measure.Valid() {
		o.Measure = MeasureStandard
	}
	return o
}

// WideRow is one row of a wide pivot. Values align with WideTable.Columns.
type WideRow struct {
	Customer    string    `json:"customer,omitempty"`
	PTCode      string    `json:"pt_code,omitempty"`
	ProductPN   string    `json:"product_pn,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	PackageSize string    `json:"package_size,omitempty"`
	Values      []float64 `json:"values"`
	Total       float64   `json:"total"`
}

// WideTable has one column per period bucket.
type WideTable struct {
	Period      domain.Period `json:"period"`
	GroupBy     GroupBy       `json:"group_by"`
	Measure     Measure       `json:"measure"`
	Columns     []string      `json:"columns"`
	Rows        []WideRow     `json:"rows"`
	ColumnTotal []float64     `json:"column_totals"`
	GrandTotal  float64       `json:"grand_total"`
	Unscheduled int           `json:"unscheduled"`
}

// Empty reports whether the table has no rows
func (t *WideTable) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

type wideKey struct {
	customer string
	product  string
}

// Wide spreads the selected measure across period columns in chronological
// order. Rows are sorted by customer, then by total descending.
func Wide(lines []domain.DeliveryLine, opts WideOptions) *WideTable {
	opts = opts.withDefaults()
	t := &WideTable{
		Period:      opts.Period,
		GroupBy:     opts.GroupBy,
		Measure:     opts.Measure,
		Columns:     []string{},
		Rows:        []WideRow{},
		ColumnTotal: []float64{},
	}

	starts := make(map[time.Time]string)
	for i := range lines {
		if lines[i].ETD == nil {
			continue
		}
		start, label := Bucket(*lines[i].ETD, opts.Period)
		starts[start] = label
	}
	ordered := make([]time.Time, 0, len(starts))
	for s := range starts {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	column := make(map[time.Time]int, len(ordered))
	for i, s := range ordered {
		column[s] = i
		t.Columns = append(t.Columns, starts[s])
	}
	t.ColumnTotal = make([]float64, len(ordered))

	rows := make(map[wideKey]*WideRow)
	keys := make([]wideKey, 0)
	for i := range lines {
		l := &lines[i]
		if l.ETD == nil {
			t.Unscheduled++
			continue
		}

		key := wideKey{}
		if opts.GroupBy != GroupByProduct {
			key.customer = l.Customer
		}
		if opts.GroupBy != GroupByCustomer {
			key.product = l.PTCode
		}

		row, ok := rows[key]
		if !ok {
			row = &WideRow{Customer: key.customer, Values: make([]float64, len(ordered))}
			if opts.GroupBy != GroupByCustomer {
				row.PTCode = l.PTCode
				row.ProductPN = l.ProductPN
				row.Brand = l.Brand
				row.PackageSize = l.PackageSize
			}
			rows[key] = row
			keys = append(keys, key)
		}

		start, _ := Bucket(*l.ETD, opts.Period)
		v := opts.Measure.of(l)
		c := column[start]
		row.Values[c] += v
		row.Total += v
		t.ColumnTotal[c] += v
		t.GrandTotal += v
	}

	for _, k := range keys {
		t.Rows = append(t.Rows, *rows[k])
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i], t.Rows[j]
		if a.Customer != b.Customer {
			return a.Customer < b.Customer
		}
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.PTCode < b.PTCode
	})
	return t
}
