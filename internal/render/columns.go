package render

import (
	"strconv"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Column is one field of the line-level detail export.
type Column struct {
	Header string
	Value  func(l *domain.DeliveryLine) interface{}
}

func optional(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func day(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

func money(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Decimal.StringFixed(2)
}

// DetailColumns is the ordered column registry shared by the workbook detail
// sheet and the CSV detail export.
var DetailColumns = []Column{
	{"Delivery ID", func(l *domain.DeliveryLine) interface{} { return l.DeliveryID }},
	{"DN Number", func(l *domain.DeliveryLine) interface{} { return l.DNNumber }},
	{"Line ID", func(l *domain.DeliveryLine) interface{} { return l.LineID }},
	{"ETD", func(l *domain.DeliveryLine) interface{} { return day(l.ETD) }},
	{"Timeline", func(l *domain.DeliveryLine) interface{} { return string(l.TimelineStatus) }},
	{"Days Overdue", func(l *domain.DeliveryLine) interface{} { return l.DaysOverdue }},
	{"Shipment Status", func(l *domain.DeliveryLine) interface{} { return l.ShipmentStatus }},
	{"Customer", func(l *domain.DeliveryLine) interface{} { return l.Customer }},
	{"Customer Code", func(l *domain.DeliveryLine) interface{} { return l.CustomerCode }},
	{"Ship To", func(l *domain.DeliveryLine) interface{} { return l.RecipientCompany }},
	{"Ship To Contact", func(l *domain.DeliveryLine) interface{} { return l.RecipientContact }},
	{"Ship To Address", func(l *domain.DeliveryLine) interface{} { return l.RecipientAddress }},
	{"State/Province", func(l *domain.DeliveryLine) interface{} { return l.RecipientStateProvince }},
	{"Country", func(l *domain.DeliveryLine) interface{} { return l.RecipientCountryName }},
	{"Legal Entity", func(l *domain.DeliveryLine) interface{} { return l.LegalEntity }},
	{"OC Number", func(l *domain.DeliveryLine) interface{} { return l.OCNumber }},
	{"Customer PO", func(l *domain.DeliveryLine) interface{} { return l.CustomerPONumber }},
	{"PT Code", func(l *domain.DeliveryLine) interface{} { return l.PTCode }},
	{"Product", func(l *domain.DeliveryLine) interface{} { return l.ProductPN }},
	{"Brand", func(l *domain.DeliveryLine) interface{} { return l.Brand }},
	{"Package Size", func(l *domain.DeliveryLine) interface{} { return l.PackageSize }},
	{"UOM", func(l *domain.DeliveryLine) interface{} { return l.StandardUOM }},
	{"Standard Quantity", func(l *domain.DeliveryLine) interface{} { return l.StandardQuantity }},
	{"Remaining Quantity", func(l *domain.DeliveryLine) interface{} { return l.RemainingQuantity }},
	{"Total Quantity", func(l *domain.DeliveryLine) interface{} { return l.TotalQuantity() }},
	{"Gap Quantity", func(l *domain.DeliveryLine) interface{} { return l.GapQuantity }},
	{"Product Gap", func(l *domain.DeliveryLine) interface{} { return optional(l.ProductGapQuantity) }},
	{"Product Fulfill Rate %", func(l *domain.DeliveryLine) interface{} { return optional(l.ProductFulfillRate) }},
	{"Fulfillment Status", func(l *domain.DeliveryLine) interface{} { return l.EffectiveFulfillmentStatus() }},
	{"Preferred Warehouse", func(l *domain.DeliveryLine) interface{} { return l.PreferredWarehouse }},
	{"Stock at Preferred WH", func(l *domain.DeliveryLine) interface{} { return optional(l.InStockPreferredWarehouse) }},
	{"Stock All WH", func(l *domain.DeliveryLine) interface{} { return optional(l.InStockAllWarehouses) }},
	{"EPE Company", func(l *domain.DeliveryLine) interface{} { return l.IsEPECompany }},
	{"Created By", func(l *domain.DeliveryLine) interface{} { return l.CreatedByName }},
	{"Shipping Cost", func(l *domain.DeliveryLine) interface{} { return money(l.ShippingCost) }},
	{"Intl Charge", func(l *domain.DeliveryLine) interface{} { return money(l.IntlCharge) }},
	{"Local Charge", func(l *domain.DeliveryLine) interface{} { return money(l.LocalCharge) }},
}

// DetailHeaders returns the headers of DetailColumns
func DetailHeaders() []string {
	out := make([]string, len(DetailColumns))
	for i, c := range DetailColumns {
		out[i] = c.Header
	}
	return out
}

// cellText renders a registry value for text formats.
func cellText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}
