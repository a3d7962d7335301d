package analysis

import (
	"sort"

	"github.com/prostech/outbound-api/internal/domain"
)

// OverdueGroup summarizes the overdue lines of one customer and ship-to.
type OverdueGroup struct {
	Customer          string  `json:"customer"`
	ShipTo            string  `json:"ship_to"`
	Deliveries        int     `json:"deliveries"`
	LineItems         int     `json:"line_items"`
	MaxDaysOverdue    int     `json:"max_days_overdue"`
	RemainingQuantity float64 `json:"remaining_quantity"`
}

// OverdueSummary lists overdue groups, most overdue first.
type OverdueSummary struct {
	Groups         []OverdueGroup `json:"groups"`
	Deliveries     int            `json:"deliveries"`
	LineItems      int            `json:"line_items"`
	MaxDaysOverdue int            `json:"max_days_overdue"`
}

// SummarizeOverdue groups Overdue lines with remaining quantity by customer
// and ship-to.
func SummarizeOverdue(lines []domain.DeliveryLine) *OverdueSummary {
	type key struct{ customer, shipTo string }
	type acc struct {
		group      OverdueGroup
		deliveries map[int64]struct{}
	}

	out := &OverdueSummary{Groups: []OverdueGroup{}}
	groups := make(map[key]*acc)
	keys := make([]key, 0)
	all := make(map[int64]struct{})

	for i := range lines {
		l := &lines[i]
		if !l.IsOverdue() || !l.IsActive() {
			continue
		}
		k := key{l.Customer, l.RecipientCompany}
		a, ok := groups[k]
		if !ok {
			a = &acc{
				group:      OverdueGroup{Customer: l.Customer, ShipTo: l.RecipientCompany},
				deliveries: make(map[int64]struct{}),
			}
			groups[k] = a
			keys = append(keys, k)
		}
		a.group.LineItems++
		a.group.RemainingQuantity += l.RemainingQuantity
		a.group.MaxDaysOverdue = max(a.group.MaxDaysOverdue, l.DaysOverdue)
		a.deliveries[l.DeliveryID] = struct{}{}
		all[l.DeliveryID] = struct{}{}

		out.LineItems++
		out.MaxDaysOverdue = max(out.MaxDaysOverdue, l.DaysOverdue)
	}
	out.Deliveries = len(all)

	for _, k := range keys {
		a := groups[k]
		a.group.Deliveries = len(a.deliveries)
		out.Groups = append(out.Groups, a.group)
	}
	sort.SliceStable(out.Groups, func(i, j int) bool {
		a, b := out.Groups[i], out.Groups[j]
		if a.MaxDaysOverdue != b.MaxDaysOverdue {
			return a.MaxDaysOverdue > b.MaxDaysOverdue
		}
		if a.Customer != b.Customer {
			return a.Customer < b.Customer
		}
		return a.ShipTo < b.ShipTo
	})
	return out
}

// ActiveOnly keeps lines that still have quantity to deliver.
func ActiveOnly(lines []domain.DeliveryLine) []domain.DeliveryLine {
	out := make([]domain.DeliveryLine, 0, len(lines))
	for _, l := range lines {
		if l.IsActive() {
			out = append(out, l)
		}
	}
	return out
}

// UrgentOnly keeps unfinished lines that are Overdue or Due Today.
func UrgentOnly(lines []domain.DeliveryLine) []domain.DeliveryLine {
	out := make([]domain.DeliveryLine, 0, len(lines))
	for _, l := range lines {
		if l.IsFinished() {
			continue
		}
		if l.TimelineStatus == domain.TimelineOverdue || l.TimelineStatus == domain.TimelineDueToday {
			out = append(out, l)
		}
	}
	return out
}

// SplitCustoms separates lines needing customs clearance: EPE customers
// (on-the-spot export) and foreign customers. Other lines are dropped.
func SplitCustoms(lines []domain.DeliveryLine) (epe, foreign []domain.DeliveryLine) {
	epe = []domain.DeliveryLine{}
	foreign = []domain.DeliveryLine{}
	for _, l := range lines {
		switch {
		case l.IsEPE():
			epe = append(epe, l)
		case l.IsForeign():
			foreign = append(foreign, l)
		}
	}
	return epe, foreign
}
