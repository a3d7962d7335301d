package query

import (
	"fmt"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
)

// OptionColumn is the alias every filter option query returns
const OptionColumn = "option_value"

// FilterOptionQuery lists the distinct selectable values of a dimension.
// Products are offered as "<pt_code> - <product_pn>".
func (b *Builder) FilterOptionQuery(d domain.Dimension) (string, error) {
	if d == domain.DimensionProducts {
		return fmt.Sprintf(
			"SELECT DISTINCT CONCAT(pt_code, '%s', product_pn) AS %s\nFROM %s\nWHERE pt_code IS NOT NULL AND pt_code <> ''\nORDER BY %s",
			productSeparator, OptionColumn, b.view, OptionColumn,
		), nil
	}

	column, ok := ColumnFor(d)
	if !ok {
		return "", fmt.Errorf("unknown filter dimension: %s", d)
	}
	return fmt.Sprintf(
		"SELECT DISTINCT %s AS %s\nFROM %s\nWHERE %s IS NOT NULL AND %s <> ''\nORDER BY %s",
		column, OptionColumn, b.view, column, column, OptionColumn,
	), nil
}

// DateRangeQuery returns the earliest and latest ETD in the view
func (b *Builder) DateRangeQuery() string {
	return fmt.Sprintf("SELECT MIN(etd) AS min_etd, MAX(etd) AS max_etd\nFROM %s\nWHERE etd IS NOT NULL", b.view)
}

// Recipient query columns
const (
	RecipientNameColumn     = "name"
	RecipientEmailColumn    = "email"
	RecipientManagerName    = "manager_name"
	RecipientManagerEmail   = "manager_email"
	RecipientActiveColumn   = "active_deliveries"
	RecipientOverdueColumn  = "overdue_deliveries"
	RecipientDueTodayColumn = "due_today_deliveries"
	RecipientCompanyColumn  = "company"
)

// SalesRecipientsQuery lists the sales people owning active deliveries for a
// notification kind, with their manager for CC. Schedule recipients are
// limited to the [today, until] window; overdue recipients to lines that are
// Overdue or Due Today.
func (b *Builder) SalesRecipientsQuery(kind domain.NotificationKind, employees string, today, until time.Time) Query {
	if employees == "" {
		employees = "employees"
	}

	params := map[string]interface{}{
		"finished": []string{domain.ShipmentStatusDelivered, domain.ShipmentStatusCompleted},
	}

	window := "d.etd >= :date_from AND d.etd <= :date_to"
	params["date_from"] = today.Format("2006-01-02")
	params["date_to"] = until.Format("2006-01-02")
	if kind == domain.NotificationOverdueAlert {
		window = "d.delivery_timeline_status IN (:urgent)"
		params = map[string]interface{}{
			"finished": params["finished"],
			"urgent":   []string{string(domain.TimelineOverdue), string(domain.TimelineDueToday)},
		}
	}

	text := fmt.Sprintf(`SELECT
    d.created_by_name AS %s,
    e.email AS %s,
    CONCAT(m.first_name, ' ', m.last_name) AS %s,
    m.email AS %s,
    COUNT(DISTINCT d.delivery_id) AS %s,
    COUNT(DISTINCT CASE WHEN d.delivery_timeline_status = 'Overdue' THEN d.delivery_id END) AS %s,
    COUNT(DISTINCT CASE WHEN d.delivery_timeline_status = 'Due Today' THEN d.delivery_id END) AS %s
FROM %s e
INNER JOIN %s d ON d.created_by_email = e.email
LEFT JOIN %s m ON e.manager_id = m.id
WHERE %s
  AND d.remaining_quantity_to_deliver > 0
  AND d.shipment_status NOT IN (:finished)
GROUP BY d.created_by_name, e.email, m.first_name, m.last_name, m.email
ORDER BY %s`,
		RecipientNameColumn, RecipientEmailColumn, RecipientManagerName, RecipientManagerEmail,
		RecipientActiveColumn, RecipientOverdueColumn, RecipientDueTodayColumn,
		employees, b.view, employees, window, RecipientNameColumn)

	return Query{Text: text, Params: params}
}

// CustomerRecipientsQuery lists customer contacts with active deliveries in
// the [today, until] window.
func (b *Builder) CustomerRecipientsQuery(today, until time.Time) Query {
	text := fmt.Sprintf(`SELECT
    d.customer_contact AS %s,
    d.customer_contact_email AS %s,
    d.customer AS %s,
    COUNT(DISTINCT d.delivery_id) AS %s,
    COUNT(DISTINCT CASE WHEN d.delivery_timeline_status = 'Overdue' THEN d.delivery_id END) AS %s,
    COUNT(DISTINCT CASE WHEN d.delivery_timeline_status = 'Due Today' THEN d.delivery_id END) AS %s
FROM %s d
WHERE d.etd >= :date_from AND d.etd <= :date_to
  AND d.remaining_quantity_to_deliver > 0
  AND d.shipment_status NOT IN (:finished)
  AND d.customer_contact_email IS NOT NULL AND d.customer_contact_email <> ''
GROUP BY d.customer, d.customer_contact_email, d.customer_contact
ORDER BY %s`,
		RecipientNameColumn, RecipientEmailColumn, RecipientCompanyColumn,
		RecipientActiveColumn, RecipientOverdueColumn, RecipientDueTodayColumn,
		b.view, RecipientCompanyColumn)

	return Query{Text: text, Params: map[string]interface{}{
		"date_from": today.Format("2006-01-02"),
		"date_to":   until.Format("2006-01-02"),
		"finished":  []string{domain.ShipmentStatusDelivered, domain.ShipmentStatusCompleted},
	}}
}
