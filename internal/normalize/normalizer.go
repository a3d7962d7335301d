package normalize

import (
	"time"

	"github.com/prostech/outbound-api/internal/domain"
)

// Optional columns tracked by Schema.
const (
	ColumnProductGap       = "product_gap_quantity"
	ColumnProductDemand    = "product_total_remaining_demand"
	ColumnFulfillRate      = "product_fulfill_rate_percent"
	ColumnInStockPreferred = "total_instock_at_preferred_warehouse"
	ColumnInStockAll       = "total_instock_all_warehouses"
	ColumnBrand            = "brand"
	ColumnTimeline         = "delivery_timeline_status"
	ColumnDaysOverdue      = "days_overdue"
	ColumnProductStatus    = "product_fulfillment_status"
	ColumnIsDelivered      = "is_delivered"
	ColumnPreferredWH      = "preferred_warehouse"
)

// Schema records which optional columns the view supplied.
type Schema struct {
	present map[string]bool
}

// NewSchema builds a schema from a column list
func NewSchema(columns []string) Schema {
	s := Schema{present: make(map[string]bool, len(columns))}
	for _, c := range columns {
		s.present[c] = true
	}
	return s
}

// Has reports whether a column was present
func (s Schema) Has(column string) bool {
	return s.present[column]
}

// HasProductLevel reports whether the product gap measures are available
func (s Schema) HasProductLevel() bool {
	return s.Has(ColumnProductGap) && s.Has(ColumnProductDemand)
}

// HasFulfillRate reports whether the product fulfill rate is available
func (s Schema) HasFulfillRate() bool {
	return s.Has(ColumnFulfillRate)
}

// HasInventory reports whether at least one stock column is available
func (s Schema) HasInventory() bool {
	return s.Has(ColumnInStockAll) || s.Has(ColumnInStockPreferred)
}

// HasBrand reports whether the brand column is available
func (s Schema) HasBrand() bool {
	return s.Has(ColumnBrand)
}

// HasTimeline reports whether the view classifies the timeline itself
func (s Schema) HasTimeline() bool {
	return s.Has(ColumnTimeline)
}

// RowSet is the normalized result of one query.
type RowSet struct {
	Columns []string
	Lines   []domain.DeliveryLine
	Schema  Schema
	// Today is the calendar date timeline classification was made against
	Today time.Time
}

// Len returns the number of lines
func (rs *RowSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Lines)
}

// Empty reports whether the row-set holds no lines
func (rs *RowSet) Empty() bool {
	return rs.Len() == 0
}

// WithLines returns a row-set sharing the schema but holding other lines
func (rs *RowSet) WithLines(lines []domain.DeliveryLine) *RowSet {
	return &RowSet{Columns: rs.Columns, Lines: lines, Schema: rs.Schema, Today: rs.Today}
}

// Normalizer converts raw rows into delivery lines. It is stateless apart
// from the location and clock used for timeline classification.
type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

// New creates a normalizer classifying dates in loc
func New(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc, now: time.Now}
}

// WithClock returns a copy of the normalizer using now as its clock
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	return &Normalizer{loc: n.loc, now: now}
}

// Today returns the current calendar date in the normalizer's location
func (n *Normalizer) Today() time.Time {
	return domain.Today(n.now(), n.loc)
}

// Normalize converts raw rows with the package defaults (UTC, wall clock).
func Normalize(raw RawRows) (*RowSet, error) {
	return New(time.UTC).Normalize(raw)
}

// Normalize de-duplicates columns, coerces every known column into its
// DeliveryLine field and fills in the timeline when the view did not. Any
// value that cannot be coerced fails the whole call.
func (n *Normalizer) Normalize(raw RawRows) (*RowSet, error) {
	rows, err := DedupColumns(raw)
	if err != nil {
		return nil, err
	}

	schema := NewSchema(rows.Columns)
	today := n.Today()

	setters := make([]setter, len(rows.Columns))
	for i, c := range rows.Columns {
		setters[i] = fieldSetters[c]
	}

	lines := make([]domain.DeliveryLine, len(rows.Values))
	for r, row := range rows.Values {
		line := &lines[r]
		for i, v := range row {
			set := setters[i]
			if set == nil {
				continue
			}
			if err := set(line, v); err != nil {
				return nil, &domain.DataFormatError{Row: r, Column: rows.Columns[i], Value: v, Reason: err.Error()}
			}
		}

		if !schema.Has(ColumnIsDelivered) {
			line.IsDelivered = line.ShipmentStatus == domain.ShipmentStatusDelivered ||
				line.ShipmentStatus == domain.ShipmentStatusCompleted
		}
		if line.TimelineStatus == "" {
			status, days := ClassifyTimeline(line.ETD, today, line.IsDelivered)
			line.TimelineStatus = status
			if !schema.Has(ColumnDaysOverdue) {
				line.DaysOverdue = days
			}
		}
	}

	return &RowSet{Columns: rows.Columns, Lines: lines, Schema: schema, Today: today}, nil
}

// ClassifyTimeline derives the initial timeline state of a line and the days
// it is overdue. today must be a calendar date (see domain.Today).
func ClassifyTimeline(etd *time.Time, today time.Time, delivered bool) (domain.TimelineStatus, int) {
	if delivered {
		return domain.TimelineCompleted, 0
	}
	if etd == nil {
		return domain.TimelineNoETD, 0
	}
	d := domain.DateOf(*etd)
	today = domain.DateOf(today)
	switch {
	case d.Before(today):
		return domain.TimelineOverdue, int(today.Sub(d).Hours() / 24)
	case d.Equal(today):
		return domain.TimelineDueToday, 0
	}
	return domain.TimelineOnSchedule, 0
}
