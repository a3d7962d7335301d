package render

import (
	"sort"
	"strings"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
)

// ScheduleRow is one (date, customer, ship-to, product) tuple with its
// quantities summed across the lines sharing it.
type ScheduleRow struct {
	Date            time.Time
	Customer        string
	ShipTo          string
	Location        string
	CustomerCountry string
	ProductID       int64
	PTCode          string
	ProductPN       string
	Quantity        float64
	LineItems       int
	DNNumbers       []string
	Status          string
	Timeline        domain.TimelineStatus
	DaysOverdue     int

	deliveries map[int64]struct{}
}

// Product is the "<pt_code> - <product_pn>" display name.
func (r ScheduleRow) Product() string {
	switch {
	case r.PTCode == "":
		return r.ProductPN
	case r.ProductPN == "":
		return r.PTCode
	}
	return r.PTCode + " - " + r.ProductPN
}

// OutOfStock reports whether the product cannot be served from stock
func (r ScheduleRow) OutOfStock() bool {
	return r.Status == domain.FulfillmentOutOfStock
}

// Overdue reports whether any line of the tuple is overdue
func (r ScheduleRow) Overdue() bool {
	return r.Timeline == domain.TimelineOverdue
}

// Deliveries returns the number of distinct delivery documents in the row
func (r ScheduleRow) Deliveries() int {
	return len(r.deliveries)
}

var timelineRank = map[domain.TimelineStatus]int{
	domain.TimelineOverdue:    4,
	domain.TimelineDueToday:   3,
	domain.TimelineOnSchedule: 2,
	domain.TimelineNoETD:      1,
	domain.TimelineCompleted:  0,
}

type scheduleKey struct {
	date     time.Time
	customer string
	shipTo   string
	product  int64
}

// ScheduleRows aggregates lines into one row per (date, customer, ship-to,
// product), summing the remaining quantity. Lines without an ETD are left
// out. Rows are ordered by date, customer, ship-to and product code.
func ScheduleRows(lines []domain.DeliveryLine) []ScheduleRow {
	rows := make(map[scheduleKey]*ScheduleRow)
	keys := make([]scheduleKey, 0)

	for i := range lines {
		l := &lines[i]
		if l.ETD == nil {
			continue
		}
		k := scheduleKey{domain.DateOf(*l.ETD), l.Customer, l.RecipientCompany, l.ProductID}
		r, ok := rows[k]
		if !ok {
			r = &ScheduleRow{
				Date:            k.date,
				Customer:        l.Customer,
				ShipTo:          l.RecipientCompany,
				Location:        location(l),
				CustomerCountry: l.CustomerCountryName,
				ProductID:       l.ProductID,
				PTCode:          l.PTCode,
				ProductPN:       l.ProductPN,
				Timeline:        l.TimelineStatus,
				deliveries:      make(map[int64]struct{}),
			}
			rows[k] = r
			keys = append(keys, k)
		}
		r.Quantity += l.RemainingQuantity
		r.LineItems++
		r.deliveries[l.DeliveryID] = struct{}{}
		if l.DNNumber != "" && !contains(r.DNNumbers, l.DNNumber) {
			r.DNNumbers = append(r.DNNumbers, l.DNNumber)
		}
		if s := l.EffectiveFulfillmentStatus(); s != "" && (r.Status == "" || s == domain.FulfillmentOutOfStock) {
			r.Status = s
		}
		if timelineRank[l.TimelineStatus] > timelineRank[r.Timeline] {
			r.Timeline = l.TimelineStatus
		}
		r.DaysOverdue = max(r.DaysOverdue, l.DaysOverdue)
	}

	out := make([]ScheduleRow, 0, len(keys))
	for _, k := range keys {
		out = append(out, *rows[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Customer != b.Customer {
			return a.Customer < b.Customer
		}
		if a.ShipTo != b.ShipTo {
			return a.ShipTo < b.ShipTo
		}
		return a.PTCode < b.PTCode
	})
	return out
}

func location(l *domain.DeliveryLine) string {
	parts := make([]string, 0, 2)
	if l.RecipientStateProvince != "" {
		parts = append(parts, l.RecipientStateProvince)
	}
	if l.RecipientCountryName != "" {
		parts = append(parts, l.RecipientCountryName)
	}
	return strings.Join(parts, ", ")
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// Section is a group of schedule rows with its own header summary.
type Section struct {
	Label      string
	Start      time.Time
	End        time.Time
	Rows       []ScheduleRow
	Deliveries int
	Products   int
	Quantity   float64
}

func newSection(label string, rows []ScheduleRow) Section {
	s := Section{Label: label, Rows: rows}
	deliveries := make(map[int64]struct{})
	products := make(map[int64]struct{})
	for _, r := range rows {
		s.Quantity += r.Quantity
		products[r.ProductID] = struct{}{}
		for id := range r.deliveries {
			deliveries[id] = struct{}{}
		}
	}
	s.Deliveries = len(deliveries)
	s.Products = len(products)
	return s
}

// WeekSections splits ordered schedule rows into ISO weeks labelled
// "Week 2 (Jan 08 - Jan 14, 2024)".
func WeekSections(rows []ScheduleRow) []Section {
	type isoWeek struct{ year, week int }

	out := []Section{}
	var current isoWeek
	start := 0
	flush := func(end int) {
		if end <= start {
			return
		}
		first := rows[start].Date
		monday := first.AddDate(0, 0, -((int(first.Weekday()) + 6) % 7))
		sunday := monday.AddDate(0, 0, 6)
		label := printer.Sprintf("Week %d (%s - %s)", current.week, monday.Format("Jan 02"), sunday.Format("Jan 02, 2006"))
		s := newSection(label, rows[start:end])
		s.Start, s.End = monday, sunday
		out = append(out, s)
	}

	for i, r := range rows {
		y, w := r.Date.ISOWeek()
		wk := isoWeek{y, w}
		if i == 0 {
			current = wk
			continue
		}
		if wk != current {
			flush(i)
			start = i
			current = wk
		}
	}
	flush(len(rows))
	return out
}

// DaySections splits ordered schedule rows by date.
func DaySections(rows []ScheduleRow) []Section {
	out := []Section{}
	start := 0
	for i := 1; i <= len(rows); i++ {
		if i < len(rows) && rows[i].Date.Equal(rows[start].Date) {
			continue
		}
		s := newSection(LongDate(rows[start].Date), rows[start:i])
		s.Start, s.End = rows[start].Date, rows[start].Date
		out = append(out, s)
		start = i
	}
	return out
}

// ScheduleSummary is the header block of a notification body.
type ScheduleSummary struct {
	Deliveries  int
	LineItems   int
	Customers   int
	Products    int
	Quantity    float64
	OutOfStock  int
	Overdue     int
	Unscheduled int
}

// Summarize counts lines for the notification header. Out-of-stock and
// overdue counts are distinct deliveries.
func Summarize(lines []domain.DeliveryLine) ScheduleSummary {
	var s ScheduleSummary
	deliveries := make(map[int64]struct{})
	customers := make(map[string]struct{})
	products := make(map[int64]struct{})
	outOfStock := make(map[int64]struct{})
	overdue := make(map[int64]struct{})

	for i := range lines {
		l := &lines[i]
		s.LineItems++
		s.Quantity += l.RemainingQuantity
		deliveries[l.DeliveryID] = struct{}{}
		products[l.ProductID] = struct{}{}
		if l.Customer != "" {
			customers[l.Customer] = struct{}{}
		}
		if l.EffectiveFulfillmentStatus() == domain.FulfillmentOutOfStock {
			outOfStock[l.DeliveryID] = struct{}{}
		}
		if l.IsOverdue() {
			overdue[l.DeliveryID] = struct{}{}
		}
		if l.ETD == nil {
			s.Unscheduled++
		}
	}
	s.Deliveries = len(deliveries)
	s.Customers = len(customers)
	s.Products = len(products)
	s.OutOfStock = len(outOfStock)
	s.Overdue = len(overdue)
	return s
}
