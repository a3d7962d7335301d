package render_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/prostech/outbound-api/internal/analysis"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/normalize"
	"github.com/prostech/outbound-api/internal/pivot"
	"github.com/prostech/outbound-api/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readCSV(t *testing.T, b []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	require.NoError(t, err)
	return records
}

func exportLines() []domain.DeliveryLine {
	gap := 20.0
	demand := 80.0
	a := line(1, "2024-03-11", "ACME", "A1", 7, "PT001", 10)
	b := line(2, "2024-03-11", "ACME", "A1", 7, "PT001", 5)
	c := line(3, "2024-03-12", "Beta", "B1", 8, "PT002", 5)
	for _, l := range []*domain.DeliveryLine{&a, &b} {
		l.ProductGapQuantity = &gap
		l.ProductTotalRemainingDemand = &demand
	}
	return []domain.DeliveryLine{a, b, c}
}

func TestWritePivotCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WritePivotCSV(&buf, pivot.Build(exportLines(), domain.PeriodDaily)))

	records := readCSV(t, buf.Bytes())
	require.Len(t, records, 3)
	assert.Equal(t, "Period", records[0][0])
	assert.Equal(t, []string{"2024-03-11", "ACME", "A1", "2", "2", "1", "15", "15", "0", "20"}, records[1])
	assert.Equal(t, "", records[2][9])
}

func TestWriteWideCSV(t *testing.T) {
	var buf bytes.Buffer
	table := pivot.Wide(exportLines(), pivot.WideOptions{Period: domain.PeriodDaily, GroupBy: pivot.GroupByCustomer})
	require.NoError(t, render.WriteWideCSV(&buf, table))

	records := readCSV(t, buf.Bytes())
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Customer", "2024-03-11", "2024-03-12", "Total"}, records[0])
	assert.Equal(t, []string{"ACME", "15", "0", "15"}, records[1])
	assert.Equal(t, []string{"Total", "15", "5", "20"}, records[3])
}

func TestWriteProductsCSV(t *testing.T) {
	rs := &normalize.RowSet{Lines: exportLines(), Schema: normalize.NewSchema([]string{
		normalize.ColumnProductGap, normalize.ColumnProductDemand,
	})}
	var buf bytes.Buffer
	require.NoError(t, render.WriteProductsCSV(&buf, analysis.AnalyzeProducts(rs)))

	records := readCSV(t, buf.Bytes())
	require.Len(t, records, 3)
	assert.Equal(t, "PT001", records[1][0])
	assert.Equal(t, "15", records[1][6])
	assert.Equal(t, "20", records[1][8])
	assert.Equal(t, "25", records[1][9])
	assert.Equal(t, "", records[2][8])
}

func TestWriteDetailCSV_KeepsEveryLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteDetailCSV(&buf, exportLines()))

	records := readCSV(t, buf.Bytes())
	require.Len(t, records, 4)
	assert.Equal(t, render.DetailHeaders(), records[0])
	assert.Equal(t, "2024-03-11", records[1][3])
}

func TestBuildWorkbook(t *testing.T) {
	lines := exportLines()
	rs := &normalize.RowSet{Lines: lines, Schema: normalize.NewSchema([]string{
		normalize.ColumnProductGap, normalize.ColumnProductDemand,
	})}

	out, err := render.BuildWorkbook(render.WorkbookInput{
		Lines:    lines,
		Schema:   rs.Schema,
		Products: analysis.AnalyzeProducts(rs),
		Extra:    []render.DetailSheet{{Name: "EPE", Lines: lines[:1]}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{render.SheetDetails, render.SheetSummary, render.SheetProducts, "EPE"}, f.GetSheetList())

	details, err := f.GetRows(render.SheetDetails)
	require.NoError(t, err)
	assert.Len(t, details, len(lines)+1)

	summary, err := f.GetRows(render.SheetSummary)
	require.NoError(t, err)
	assert.Len(t, summary, 3)

	epe, err := f.GetRows("EPE")
	require.NoError(t, err)
	assert.Len(t, epe, 2)
}

func TestBuildWorkbook_SkipsProductSheetWithoutGapColumns(t *testing.T) {
	lines := exportLines()
	rs := &normalize.RowSet{Lines: lines}

	out, err := render.BuildWorkbook(render.WorkbookInput{Lines: lines, Schema: rs.Schema, Products: analysis.AnalyzeProducts(rs)})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{render.SheetDetails, render.SheetSummary}, f.GetSheetList())
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Nguyễn Văn An", "nguyen_van_an"},
		{"Đặng Thị Lan", "dang_thi_lan"},
		{"ACME Co., Ltd.", "acme_co_ltd"},
		{"  --  ", "all"},
		{"delivery_schedule", "delivery_schedule"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, render.Slug(tt.in))
		})
	}
	assert.LessOrEqual(t, len(render.Slug(strings.Repeat("abc ", 40))), 60)
}

func TestFilenames(t *testing.T) {
	d := time.Date(2024, 3, 11, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "delivery_schedule_nguyen_van_an_20240311.xlsx", render.AttachmentFilename("delivery_schedule", "Nguyễn Văn An", d, "xlsx"))
	assert.Equal(t, "delivery_schedule_lan_20240311.ics", render.AttachmentFilename("delivery_schedule", "Lan", d, ".ics"))
	assert.Equal(t, "pivot_weekly_20240311.csv", render.ExportFilename("pivot", "weekly", d))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "1,234", render.FormatQuantity(1234))
	assert.Equal(t, "0", render.FormatQuantity(0))
	assert.Equal(t, "-", render.FormatOptional(nil))
	assert.Equal(t, "-", render.FormatPercent(nil))
}
