package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func line(id int64, etd, customer, shipTo string, productID int64, pt string, qty float64) domain.DeliveryLine {
	l := domain.DeliveryLine{
		DeliveryID:        id,
		DNNumber:          "DN" + string(rune('0'+id%10)),
		Customer:          customer,
		RecipientCompany:  shipTo,
		ProductID:         productID,
		PTCode:            pt,
		ProductPN:         "Widget " + pt,
		StandardQuantity:  qty,
		RemainingQuantity: qty,
		TimelineStatus:    domain.TimelineOnSchedule,
	}
	if etd != "" {
		l.ETD = day(etd)
	}
	return l
}

func TestScheduleRows_SameTupleIsOneRow(t *testing.T) {
	lines := []domain.DeliveryLine{
		line(1, "2024-03-11", "ACME", "ACME Plant 2", 7, "PT001", 10),
		line(2, "2024-03-11", "ACME", "ACME Plant 2", 7, "PT001", 5),
		line(3, "2024-03-11", "ACME", "ACME Plant 2", 7, "PT001", 5),
	}

	rows := render.ScheduleRows(lines)

	require.Len(t, rows, 1)
	assert.Equal(t, 20.0, rows[0].Quantity)
	assert.Equal(t, 3, rows[0].LineItems)
	assert.Equal(t, 3, rows[0].Deliveries())
	assert.Equal(t, "PT001 - Widget PT001", rows[0].Product())
}

func TestScheduleRows_OrderAndUrgency(t *testing.T) {
	late := line(4, "2024-03-11", "Beta", "B1", 8, "PT002", 1)
	late.TimelineStatus = domain.TimelineOverdue
	late.DaysOverdue = 3
	late.ProductFulfillmentStatus = domain.FulfillmentOutOfStock

	lines := []domain.DeliveryLine{
		line(1, "2024-03-12", "ACME", "A1", 7, "PT001", 10),
		line(2, "2024-03-11", "Beta", "B1", 8, "PT002", 2),
		late,
		line(3, "", "ACME", "A1", 7, "PT001", 99),
	}

	rows := render.ScheduleRows(lines)

	require.Len(t, rows, 2)
	assert.Equal(t, "Beta", rows[0].Customer)
	assert.Equal(t, 3.0, rows[0].Quantity)
	assert.True(t, rows[0].Overdue())
	assert.True(t, rows[0].OutOfStock())
	assert.Equal(t, 3, rows[0].DaysOverdue)
	assert.Equal(t, "ACME", rows[1].Customer)
}

func TestWeekSections(t *testing.T) {
	rows := render.ScheduleRows([]domain.DeliveryLine{
		line(1, "2024-01-08", "A", "X", 1, "P1", 1),
		line(2, "2024-01-14", "A", "X", 1, "P1", 2),
		line(3, "2024-01-15", "A", "X", 2, "P2", 4),
	})

	weeks := render.WeekSections(rows)

	require.Len(t, weeks, 2)
	assert.Equal(t, "Week 2 (Jan 08 - Jan 14, 2024)", weeks[0].Label)
	assert.Equal(t, 3.0, weeks[0].Quantity)
	assert.Equal(t, 2, weeks[0].Deliveries)
	assert.Equal(t, 1, weeks[0].Products)
	assert.Equal(t, "Week 3 (Jan 15 - Jan 21, 2024)", weeks[1].Label)
	assert.Len(t, weeks[1].Rows, 1)

	assert.Empty(t, render.WeekSections(nil))
}

func newRenderer(t *testing.T) *render.HTMLRenderer {
	t.Helper()
	r, err := render.NewHTMLRenderer()
	require.NoError(t, err)
	return r
}

func TestDeliverySchedule_AggregatesBeforeRendering(t *testing.T) {
	lines := []domain.DeliveryLine{
		line(1, "2024-03-11", "ACME", "ACME Plant 2", 7, "PT001", 10),
		line(2, "2024-03-11", "ACME", "ACME Plant 2", 7, "PT001", 5),
		line(3, "2024-03-11", "ACME", "ACME Plant 2", 7, "PT001", 5),
	}
	data := render.NewScheduleData(render.Page{Recipient: "Lan Nguyen"}, *day("2024-03-11"), *day("2024-03-24"), lines)

	html, err := newRenderer(t).DeliverySchedule(data)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(html, "<td>PT001 - Widget PT001</td>"))
	assert.Contains(t, html, `<td class="qty">20</td>`)
	assert.Contains(t, html, "Delivery Schedule Notification")
	assert.Contains(t, html, "Dear Lan Nguyen")
	assert.Contains(t, html, "calendar.google.com")
	assert.NotContains(t, html, "stock-warning")
	assert.NotContains(t, html, "data-quality")
}

func TestDeliverySchedule_NoticesAndStockWarning(t *testing.T) {
	l := line(1, "2024-03-11", "ACME", "A1", 7, "PT001", 1500)
	l.ProductFulfillmentStatus = domain.FulfillmentOutOfStock
	page := render.Page{
		Recipient: "An",
		Notices:   []domain.DataQualityNotice{{Field: "product_gap_quantity", Message: "Product-level gap data is not available."}},
	}
	data := render.NewScheduleData(page, *day("2024-03-11"), *day("2024-03-24"), []domain.DeliveryLine{l})

	html, err := newRenderer(t).DeliverySchedule(data)
	require.NoError(t, err)

	assert.Contains(t, html, `id="data-quality"`)
	assert.Contains(t, html, "Product-level gap data is not available.")
	assert.Contains(t, html, "1 deliveries have inventory issues")
	assert.Contains(t, html, "1,500")
	assert.Contains(t, html, `class="urgent"`)
}

func TestOverdueAlert(t *testing.T) {
	overdue := line(1, "2024-03-08", "ACME", "A1", 7, "PT001", 4)
	overdue.TimelineStatus = domain.TimelineOverdue
	overdue.DaysOverdue = 3
	dueToday := line(2, "2024-03-11", "Beta", "B1", 8, "PT002", 6)
	dueToday.TimelineStatus = domain.TimelineDueToday

	data := render.NewOverdueData(render.Page{Recipient: "An"}, []domain.DeliveryLine{overdue, dueToday})
	assert.Equal(t, 1, data.OverdueDeliveries)
	assert.Equal(t, 1, data.DueTodayDeliveries)
	assert.Equal(t, 3, data.MaxDaysOverdue)

	html, err := newRenderer(t).OverdueAlert(data)
	require.NoError(t, err)
	assert.Contains(t, html, `id="overdue"`)
	assert.Contains(t, html, `id="due-today"`)
	assert.Contains(t, html, "(3 days overdue)")
}

func TestCustomsClearance_GroupsForeignByCountry(t *testing.T) {
	epe := line(1, "2024-03-11", "EPE Co", "EPE Co", 7, "PT001", 4)
	epe.IsEPECompany = "Yes"
	jp := line(2, "2024-03-12", "Tokyo KK", "Tokyo KK", 8, "PT002", 6)
	jp.CustomerCountryName = "Japan"
	kr := line(3, "2024-03-12", "Seoul Ltd", "Seoul Ltd", 8, "PT002", 1)
	kr.CustomerCountryName = "Korea"

	data := render.NewCustomsData(render.Page{}, 2, []domain.DeliveryLine{epe}, []domain.DeliveryLine{kr, jp})

	require.Len(t, data.Foreign, 2)
	assert.Equal(t, "Japan", data.Foreign[0].Country)
	assert.Equal(t, "Korea", data.Foreign[1].Country)
	assert.Equal(t, 1, data.EPEDeliveries)
	assert.Equal(t, 2, data.ForeignCount)

	html, err := newRenderer(t).CustomsClearance(data)
	require.NoError(t, err)
	assert.Contains(t, html, "Customs Clearance Schedule")
	assert.Contains(t, html, `id="epe"`)
	assert.Contains(t, html, "Japan (6 units)")
}
