package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimelineStatus is the urgency classification of a delivery line relative to today.
type TimelineStatus string

const (
	TimelineOverdue    TimelineStatus = "Overdue"
	TimelineDueToday   TimelineStatus = "Due Today"
	TimelineOnSchedule TimelineStatus = "On Schedule"
	TimelineCompleted  TimelineStatus = "Completed"
	TimelineNoETD      TimelineStatus = "No ETD"
)

// Fulfillment statuses as reported by the delivery view, plus the two
// analyzer-only fallbacks (Critical, Unknown).
const (
	FulfillmentCanFulfillAll     = "Can Fulfill All"
	FulfillmentCanFulfillPartial = "Can Fulfill Partial"
	FulfillmentOutOfStock        = "Out of Stock"
	FulfillmentReadyToShip       = "Ready to Ship"
	FulfillmentDelivered         = "Delivered"
	FulfillmentCritical          = "Critical"
	FulfillmentUnknown           = "Unknown"
)

// Shipment statuses that mark a line as finished.
const (
	ShipmentStatusDelivered = "DELIVERED"
	ShipmentStatusCompleted = "COMPLETED"
)

// Period is the bucket granularity of a pivot.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Valid reports whether p is one of the supported periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// DeliveryLine is one product line within one delivery document, as read from
// the delivery view. Product-level measures are shared by every line of the
// same product and are nil when the view does not provide them.
type DeliveryLine struct {
	DeliveryID int64  `json:"delivery_id"`
	DNNumber   string `json:"dn_number"`
	LineID     int64  `json:"sto_dr_line_id"`

	OCID             int64      `json:"oc_id"`
	OCNumber         string     `json:"oc_number"`
	OCLineID         int64      `json:"oc_line_id"`
	OCDate           *time.Time `json:"oc_date,omitempty"`
	CustomerPONumber string     `json:"customer_po_number,omitempty"`
	ProductID        int64      `json:"product_id"`
	PTCode           string     `json:"pt_code"`
	ProductPN        string     `json:"product_pn"`
	Brand            string     `json:"brand,omitempty"`
	PackageSize      string     `json:"package_size,omitempty"`
	StandardUOM      string     `json:"standard_uom,omitempty"`

	StandardQuantity            float64  `json:"standard_quantity"`
	RemainingQuantity           float64  `json:"remaining_quantity_to_deliver"`
	GapQuantity                 float64  `json:"gap_quantity"`
	ProductGapQuantity          *float64 `json:"product_gap_quantity"`
	ProductTotalRemainingDemand *float64 `json:"product_total_remaining_demand"`
	ProductFulfillRate          *float64 `json:"product_fulfill_rate_percent"`
	InStockPreferredWarehouse   *float64 `json:"total_instock_at_preferred_warehouse"`
	InStockAllWarehouses        *float64 `json:"total_instock_all_warehouses"`

	ETD            *time.Time     `json:"etd"`
	CreatedDate    *time.Time     `json:"created_date,omitempty"`
	DispatchedDate *time.Time     `json:"dispatched_date,omitempty"`
	DeliveredDate  *time.Time     `json:"delivered_date,omitempty"`
	DaysOverdue    int            `json:"days_overdue"`
	TimelineStatus TimelineStatus `json:"delivery_timeline_status"`

	ShipmentStatus           string `json:"shipment_status"`
	ShipmentStatusVN         string `json:"shipment_status_vn,omitempty"`
	FulfillmentStatus        string `json:"fulfillment_status,omitempty"`
	ProductFulfillmentStatus string `json:"product_fulfillment_status,omitempty"`
	IsDelivered              bool   `json:"is_delivered"`

	Customer              string `json:"customer"`
	CustomerCode          string `json:"customer_code,omitempty"`
	CustomerContact       string `json:"customer_contact,omitempty"`
	CustomerContactEmail  string `json:"customer_contact_email,omitempty"`
	CustomerAddress       string `json:"customer_address,omitempty"`
	CustomerCountryCode   string `json:"customer_country_code,omitempty"`
	CustomerCountryName   string `json:"customer_country_name,omitempty"`
	CustomerStateProvince string `json:"customer_state_province,omitempty"`

	RecipientCompany       string `json:"recipient_company"`
	RecipientCompanyCode   string `json:"recipient_company_code,omitempty"`
	RecipientContact       string `json:"recipient_contact,omitempty"`
	RecipientContactEmail  string `json:"recipient_contact_email,omitempty"`
	RecipientAddress       string `json:"recipient_address,omitempty"`
	RecipientCountryCode   string `json:"recipient_country_code,omitempty"`
	RecipientCountryName   string `json:"recipient_country_name,omitempty"`
	RecipientStateProvince string `json:"recipient_state_province,omitempty"`

	LegalEntity            string `json:"legal_entity"`
	LegalEntityCode        string `json:"legal_entity_code,omitempty"`
	LegalEntityCountryCode string `json:"legal_entity_country_code,omitempty"`

	CreatedByName      string `json:"created_by_name,omitempty"`
	CreatedByEmail     string `json:"created_by_email,omitempty"`
	PreferredWarehouse string `json:"preferred_warehouse,omitempty"`
	IsEPECompany       string `json:"is_epe_company,omitempty"`

	ShippingCost decimal.NullDecimal `json:"shipping_cost"`
	IntlCharge   decimal.NullDecimal `json:"intl_charge"`
	LocalCharge  decimal.NullDecimal `json:"local_charge"`
}

// TotalQuantity is the legacy name for the remaining quantity to deliver.
func (l *DeliveryLine) TotalQuantity() float64 {
	return l.RemainingQuantity
}

// IsActive reports whether the line still has quantity to deliver.
func (l *DeliveryLine) IsActive() bool {
	return l.RemainingQuantity > 0
}

// IsEPE reports whether the customer is an export processing enterprise.
func (l *DeliveryLine) IsEPE() bool {
	return l.IsEPECompany == "Yes"
}

// IsForeign reports whether the customer sits in a different country than the
// selling legal entity. Lines with unknown country codes are not foreign.
func (l *DeliveryLine) IsForeign() bool {
	if l.CustomerCountryCode == "" || l.LegalEntityCountryCode == "" {
		return false
	}
	return l.CustomerCountryCode != l.LegalEntityCountryCode
}

// IsOverdue reports whether the line is classified as overdue.
func (l *DeliveryLine) IsOverdue() bool {
	return l.TimelineStatus == TimelineOverdue
}

// IsFinished reports whether the shipment has reached a terminal status.
func (l *DeliveryLine) IsFinished() bool {
	return l.IsDelivered || l.ShipmentStatus == ShipmentStatusDelivered || l.ShipmentStatus == ShipmentStatusCompleted
}

// EffectiveFulfillmentStatus prefers the product-level status over the line-level one.
func (l *DeliveryLine) EffectiveFulfillmentStatus() string {
	if l.ProductFulfillmentStatus != "" {
		return l.ProductFulfillmentStatus
	}
	return l.FulfillmentStatus
}

// DateOf truncates t to its calendar date, expressed as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in loc as midnight UTC.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(now.In(loc))
}
