package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/prostech/outbound-api/internal/analysis"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/normalize"
	"github.com/prostech/outbound-api/internal/pivot"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	SheetDetails  = "Delivery Details"
	SheetSummary  = "Summary"
	SheetProducts = "Product Analysis"
)

const (
	headerColor   = "1F77B4"
	minColWidth   = 8.0
	maxColWidth   = 50.0
	XLSXMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// DetailSheet is an extra line-level sheet, e.g. the EPE or foreign subset of
// a customs digest.
type DetailSheet struct {
	Name  string
	Lines []domain.DeliveryLine
}

// WorkbookInput is everything BuildWorkbook renders.
type WorkbookInput struct {
	Lines  []domain.DeliveryLine
	Schema normalize.Schema
	// Products is rendered only when the schema carries product-level gap columns
	Products *analysis.ProductAnalysis
	Extra    []DetailSheet
}

// BuildWorkbook writes every input line to the detail sheet, a (date,
// customer, ship-to) summary and, when available, the product analysis.
func BuildWorkbook(in WorkbookInput) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	w := &workbookWriter{f: f}
	if err := w.init(); err != nil {
		return nil, &domain.AttachmentGenerationError{Kind: "xlsx", Err: err}
	}

	if err := f.SetSheetName("Sheet1", SheetDetails); err != nil {
		return nil, &domain.AttachmentGenerationError{Kind: "xlsx", Err: err}
	}
	if err := w.detailSheet(SheetDetails, in.Lines); err != nil {
		return nil, &domain.AttachmentGenerationError{Kind: "xlsx", Err: err}
	}
	if err := w.summarySheet(in.Lines); err != nil {
		return nil, &domain.AttachmentGenerationError{Kind: "xlsx", Err: err}
	}
	if in.Products != nil && in.Schema.HasProductLevel() {
		if err := w.productSheet(in.Products); err != nil {
			return nil, &domain.AttachmentGenerationError{Kind: "xlsx", Err: err}
		}
	}
	for _, extra := range in.Extra {
		if _, err := f.NewSheet(extra.Name); err != nil {
			return nil, &domain.AttachmentGenerationError{Kind: "xlsx", Err: err}
		}
		if err := w.detailSheet(extra.Name, extra.Lines); err != nil {
			return nil, &domain.AttachmentGenerationError{Kind: "xlsx", Err: err}
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &domain.AttachmentGenerationError{Kind: "xlsx", Err: err}
	}
	return buf.Bytes(), nil
}

type workbookWriter struct {
	f           *excelize.File
	headerStyle int
}

func (w *workbookWriter) init() error {
	border := []excelize.Border{
		{Type: "left", Color: "D0D0D0", Style: 1},
		{Type: "right", Color: "D0D0D0", Style: 1},
		{Type: "top", Color: "D0D0D0", Style: 1},
		{Type: "bottom", Color: "D0D0D0", Style: 1},
	}
	id, err := w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	w.headerStyle = id
	return nil
}

// writeTable writes headers and rows starting at A1, styles the header,
// freezes it and sizes each column to its longest value.
func (w *workbookWriter) writeTable(sheet string, headers []string, rows [][]interface{}) error {
	widths := make([]int, len(headers))
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
		widths[i] = utf8.RuneCountInString(h)
	}
	if err := w.f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		row := row
		if err := w.f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
		for i, v := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cellText(v)))
			}
		}
	}

	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(sheet, "A1", last+"1", w.headerStyle); err != nil {
		return err
	}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(sheet, col, col, clampWidth(float64(width)+2)); err != nil {
			return err
		}
	}
	return w.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func clampWidth(w float64) float64 {
	switch {
	case w < minColWidth:
		return minColWidth
	case w > maxColWidth:
		return maxColWidth
	}
	return w
}

func (w *workbookWriter) detailSheet(sheet string, lines []domain.DeliveryLine) error {
	rows := make([][]interface{}, 0, len(lines))
	for i := range lines {
		row := make([]interface{}, len(DetailColumns))
		for c, col := range DetailColumns {
			row[c] = col.Value(&lines[i])
		}
		rows = append(rows, row)
	}
	return w.writeTable(sheet, DetailHeaders(), rows)
}

var summaryHeaders = []string{
	"Date", "Customer", "Ship To", "Deliveries", "Line Items", "Products",
	"Standard Quantity", "Remaining Quantity", "Product Gap",
}

func (w *workbookWriter) summarySheet(lines []domain.DeliveryLine) error {
	if _, err := w.f.NewSheet(SheetSummary); err != nil {
		return err
	}
	table := pivot.Build(lines, domain.PeriodDaily)
	rows := make([][]interface{}, 0, len(table.Rows))
	for _, r := range table.Rows {
		rows = append(rows, []interface{}{
			r.Period, r.Customer, r.ShipTo, r.Deliveries, r.LineItems, r.Products,
			r.StandardQuantity, r.RemainingQuantity, optional(r.ProductGap),
		})
	}
	return w.writeTable(SheetSummary, summaryHeaders, rows)
}

var productHeaders = []string{
	"PT Code", "Product", "Brand", "Package Size", "Active Deliveries", "Customers",
	"Remaining Demand", "Total Inventory", "Gap Quantity", "Gap %", "Fulfill Rate %",
	"Warehouses", "Fulfillment Status",
}

func (w *workbookWriter) productSheet(a *analysis.ProductAnalysis) error {
	if _, err := w.f.NewSheet(SheetProducts); err != nil {
		return err
	}
	rows := make([][]interface{}, 0, len(a.Products))
	for _, p := range a.Products {
		rows = append(rows, []interface{}{
			p.PTCode, p.ProductPN, p.Brand, p.PackageSize, p.ActiveDeliveries, p.Customers,
			p.TotalRemainingDemand, optional(p.TotalInventory), optional(p.GapQuantity),
			optional(p.GapPercentage), optional(p.FulfillRate), p.WarehouseCount, p.FulfillmentStatus,
		})
	}
	return w.writeTable(SheetProducts, productHeaders, rows)
}
