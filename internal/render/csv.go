package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/prostech/outbound-api/internal/analysis"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/pivot"
)

// CSVMediaType is the content type of every CSV export
const CSVMediaType = "text/csv; charset=utf-8"

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

// WritePivotCSV emits a long pivot, one record per (period, customer, ship-to).
func WritePivotCSV(w io.Writer, t *pivot.Table) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{
		"Period", "Customer", "Ship To", "Deliveries", "Line Items", "Products",
		"Standard Quantity", "Remaining Quantity", "Gap Quantity", "Product Gap",
	}); err != nil {
		return err
	}
	if t != nil {
		for _, r := range t.Rows {
			if err := writer.Write([]string{
				r.Period,
				r.Customer,
				r.ShipTo,
				strconv.Itoa(r.Deliveries),
				strconv.Itoa(r.LineItems),
				strconv.Itoa(r.Products),
				formatFloat(r.StandardQuantity),
				formatFloat(r.RemainingQuantity),
				formatFloat(r.GapQuantity),
				formatOptionalFloat(r.ProductGap),
			}); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteWideCSV emits a wide pivot with one column per period and a total
// column. The last record carries the column totals.
func WriteWideCSV(w io.Writer, t *pivot.WideTable) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if t == nil {
		t = &pivot.WideTable{}
	}

	var lead []string
	switch t.GroupBy {
	case pivot.GroupByCustomer:
		lead = []string{"Customer"}
	case pivot.GroupByProduct:
		lead = []string{"PT Code", "Product", "Brand", "Package Size"}
	default:
		lead = []string{"Customer", "PT Code", "Product", "Brand", "Package Size"}
	}

	header := append(append([]string{}, lead...), t.Columns...)
	header = append(header, "Total")
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range t.Rows {
		var record []string
		switch t.GroupBy {
		case pivot.GroupByCustomer:
			record = []string{r.Customer}
		case pivot.GroupByProduct:
			record = []string{r.PTCode, r.ProductPN, r.Brand, r.PackageSize}
		default:
			record = []string{r.Customer, r.PTCode, r.ProductPN, r.Brand, r.PackageSize}
		}
		for _, v := range r.Values {
			record = append(record, formatFloat(v))
		}
		record = append(record, formatFloat(r.Total))
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	if len(t.Rows) > 0 {
		totals := make([]string, len(lead))
		totals[0] = "Total"
		for _, v := range t.ColumnTotal {
			totals = append(totals, formatFloat(v))
		}
		totals = append(totals, formatFloat(t.GrandTotal))
		if err := writer.Write(totals); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteProductsCSV emits the product analysis. Unknown measures are blank.
func WriteProductsCSV(w io.Writer, a *analysis.ProductAnalysis) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write(productHeaders); err != nil {
		return err
	}
	if a != nil {
		for _, p := range a.Products {
			if err := writer.Write([]string{
				p.PTCode,
				p.ProductPN,
				p.Brand,
				p.PackageSize,
				strconv.Itoa(p.ActiveDeliveries),
				strconv.Itoa(p.Customers),
				formatFloat(p.TotalRemainingDemand),
				formatOptionalFloat(p.TotalInventory),
				formatOptionalFloat(p.GapQuantity),
				formatOptionalFloat(p.GapPercentage),
				formatOptionalFloat(p.FulfillRate),
				strconv.Itoa(p.WarehouseCount),
				p.FulfillmentStatus,
			}); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteDetailCSV emits every line with the detail column registry.
func WriteDetailCSV(w io.Writer, lines []domain.DeliveryLine) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write(DetailHeaders()); err != nil {
		return err
	}
	record := make([]string, len(DetailColumns))
	for i := range lines {
		for c, col := range DetailColumns {
			record[c] = cellText(col.Value(&lines[i]))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
