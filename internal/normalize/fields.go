package normalize

import (
	"time"

	"github.com/prostech/outbound-api/internal/domain"
	"github.com/shopspring/decimal"
)

type setter func(l *domain.DeliveryLine, v interface{}) error

func str(field func(*domain.DeliveryLine) *string) setter {
	return func(l *domain.DeliveryLine, v interface{}) error {
		s, err := toString(v)
		if err != nil {
			return err
		}
		*field(l) = s
		return nil
	}
}

func integer(field func(*domain.DeliveryLine) *int64) setter {
	return func(l *domain.DeliveryLine, v interface{}) error {
		n, err := toInt(v)
		if err != nil {
			return err
		}
		*field(l) = n
		return nil
	}
}

func number(field func(*domain.DeliveryLine) *float64) setter {
	return func(l *domain.DeliveryLine, v interface{}) error {
		f, _, err := toFloat(v)
		if err != nil {
			return err
		}
		*field(l) = f
		return nil
	}
}

func optNumber(field func(*domain.DeliveryLine) **float64) setter {
	return func(l *domain.DeliveryLine, v interface{}) error {
		f, ok, err := toFloat(v)
		if err != nil {
			return err
		}
		if ok {
			*field(l) = &f
		}
		return nil
	}
}

func date(field func(*domain.DeliveryLine) **time.Time) setter {
	return func(l *domain.DeliveryLine, v interface{}) error {
		t, err := toDate(v)
		if err != nil {
			return err
		}
		*field(l) = t
		return nil
	}
}

func money(field func(*domain.DeliveryLine) *decimal.NullDecimal) setter {
	return func(l *domain.DeliveryLine, v interface{}) error {
		d, err := toDecimal(v)
		if err != nil {
			return err
		}
		*field(l) = d
		return nil
	}
}

var fieldSetters = map[string]setter{
	"delivery_id":        integer(func(l *domain.DeliveryLine) *int64 { return &l.DeliveryID }),
	"dn_number":          str(func(l *domain.DeliveryLine) *string { return &l.DNNumber }),
	"sto_dr_line_id":     integer(func(l *domain.DeliveryLine) *int64 { return &l.LineID }),
	"oc_id":              integer(func(l *domain.DeliveryLine) *int64 { return &l.OCID }),
	"oc_number":          str(func(l *domain.DeliveryLine) *string { return &l.OCNumber }),
	"oc_line_id":         integer(func(l *domain.DeliveryLine) *int64 { return &l.OCLineID }),
	"oc_date":            date(func(l *domain.DeliveryLine) **time.Time { return &l.OCDate }),
	"customer_po_number": str(func(l *domain.DeliveryLine) *string { return &l.CustomerPONumber }),
	"product_id":         integer(func(l *domain.DeliveryLine) *int64 { return &l.ProductID }),
	"pt_code":            str(func(l *domain.DeliveryLine) *string { return &l.PTCode }),
	"product_pn":         str(func(l *domain.DeliveryLine) *string { return &l.ProductPN }),
	ColumnBrand:          str(func(l *domain.DeliveryLine) *string { return &l.Brand }),
	"package_size":       str(func(l *domain.DeliveryLine) *string { return &l.PackageSize }),
	"standard_uom":       str(func(l *domain.DeliveryLine) *string { return &l.StandardUOM }),

	"standard_quantity":             number(func(l *domain.DeliveryLine) *float64 { return &l.StandardQuantity }),
	"remaining_quantity_to_deliver": number(func(l *domain.DeliveryLine) *float64 { return &l.RemainingQuantity }),
	"gap_quantity":                  number(func(l *domain.DeliveryLine) *float64 { return &l.GapQuantity }),
	ColumnProductGap:                optNumber(func(l *domain.DeliveryLine) **float64 { return &l.ProductGapQuantity }),
	ColumnProductDemand:             optNumber(func(l *domain.DeliveryLine) **float64 { return &l.ProductTotalRemainingDemand }),
	ColumnFulfillRate:               optNumber(func(l *domain.DeliveryLine) **float64 { return &l.ProductFulfillRate }),
	ColumnInStockPreferred:          optNumber(func(l *domain.DeliveryLine) **float64 { return &l.InStockPreferredWarehouse }),
	ColumnInStockAll:                optNumber(func(l *domain.DeliveryLine) **float64 { return &l.InStockAllWarehouses }),

	"etd":             date(func(l *domain.DeliveryLine) **time.Time { return &l.ETD }),
	"created_date":    date(func(l *domain.DeliveryLine) **time.Time { return &l.CreatedDate }),
	"dispatched_date": date(func(l *domain.DeliveryLine) **time.Time { return &l.DispatchedDate }),
	"delivered_date":  date(func(l *domain.DeliveryLine) **time.Time { return &l.DeliveredDate }),
	ColumnDaysOverdue: func(l *domain.DeliveryLine, v interface{}) error {
		n, err := toInt(v)
		if err != nil {
			return err
		}
		l.DaysOverdue = int(n)
		return nil
	},
	ColumnTimeline: func(l *domain.DeliveryLine, v interface{}) error {
		s, err := toString(v)
		if err != nil {
			return err
		}
		l.TimelineStatus = domain.TimelineStatus(s)
		return nil
	},

	"shipment_status":    str(func(l *domain.DeliveryLine) *string { return &l.ShipmentStatus }),
	"shipment_status_vn": str(func(l *domain.DeliveryLine) *string { return &l.ShipmentStatusVN }),
	"fulfillment_status": str(func(l *domain.DeliveryLine) *string { return &l.FulfillmentStatus }),
	ColumnProductStatus:  str(func(l *domain.DeliveryLine) *string { return &l.ProductFulfillmentStatus }),
	ColumnIsDelivered: func(l *domain.DeliveryLine, v interface{}) error {
		b, err := toBool(v)
		if err != nil {
			return err
		}
		l.IsDelivered = b
		return nil
	},

	"customer":                str(func(l *domain.DeliveryLine) *string { return &l.Customer }),
	"customer_code":           str(func(l *domain.DeliveryLine) *string { return &l.CustomerCode }),
	"customer_contact":        str(func(l *domain.DeliveryLine) *string { return &l.CustomerContact }),
	"customer_contact_email":  str(func(l *domain.DeliveryLine) *string { return &l.CustomerContactEmail }),
	"customer_address":        str(func(l *domain.DeliveryLine) *string { return &l.CustomerAddress }),
	"customer_country_code":   str(func(l *domain.DeliveryLine) *string { return &l.CustomerCountryCode }),
	"customer_country_name":   str(func(l *domain.DeliveryLine) *string { return &l.CustomerCountryName }),
	"customer_state_province": str(func(l *domain.DeliveryLine) *string { return &l.CustomerStateProvince }),

	"recipient_company":        str(func(l *domain.DeliveryLine) *string { return &l.RecipientCompany }),
	"recipient_company_code":   str(func(l *domain.DeliveryLine) *string { return &l.RecipientCompanyCode }),
	"recipient_contact":        str(func(l *domain.DeliveryLine) *string { return &l.RecipientContact }),
	"recipient_contact_email":  str(func(l *domain.DeliveryLine) *string { return &l.RecipientContactEmail }),
	"recipient_address":        str(func(l *domain.DeliveryLine) *string { return &l.RecipientAddress }),
	"recipient_country_code":   str(func(l *domain.DeliveryLine) *string { return &l.RecipientCountryCode }),
	"recipient_country_name":   str(func(l *domain.DeliveryLine) *string { return &l.RecipientCountryName }),
	"recipient_state_province": str(func(l *domain.DeliveryLine) *string { return &l.RecipientStateProvince }),

	"legal_entity":              str(func(l *domain.DeliveryLine) *string { return &l.LegalEntity }),
	"legal_entity_code":         str(func(l *domain.DeliveryLine) *string { return &l.LegalEntityCode }),
	"legal_entity_country_code": str(func(l *domain.DeliveryLine) *string { return &l.LegalEntityCountryCode }),

	"created_by_name":  str(func(l *domain.DeliveryLine) *string { return &l.CreatedByName }),
	"created_by_email": str(func(l *domain.DeliveryLine) *string { return &l.CreatedByEmail }),
	ColumnPreferredWH:  str(func(l *domain.DeliveryLine) *string { return &l.PreferredWarehouse }),
	"is_epe_company":   str(func(l *domain.DeliveryLine) *string { return &l.IsEPECompany }),

	"shipping_cost": money(func(l *domain.DeliveryLine) *decimal.NullDecimal { return &l.ShippingCost }),
	"intl_charge":   money(func(l *domain.DeliveryLine) *decimal.NullDecimal { return &l.IntlCharge }),
	"local_charge":  money(func(l *domain.DeliveryLine) *decimal.NullDecimal { return &l.LocalCharge }),
}
