package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "time/tzdata"
)

func calendarOptions(t *testing.T) render.CalendarOptions {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	return render.CalendarOptions{
		Name:     "Lan",
		Location: loc,
		Now:      time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestBuildCalendar_OneEventPerDate(t *testing.T) {
	lines := []domain.DeliveryLine{
		line(1, "2024-03-11", "ACME", "A1", 7, "PT001", 10),
		line(2, "2024-03-11", "Beta", "B1", 8, "PT002", 5),
		line(3, "2024-03-12", "ACME", "A1", 7, "PT001", 5),
		line(4, "", "ACME", "A1", 7, "PT001", 5),
	}

	out, err := render.BuildCalendar(lines, calendarOptions(t))
	require.NoError(t, err)
	ics := string(out)

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR"))
	assert.Contains(t, ics, "METHOD:REQUEST")
	assert.Contains(t, ics, "PRODID:-//Outbound Logistics//Delivery Schedule//EN")
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VALARM"))
	assert.Contains(t, ics, "TRIGGER:-P1D")
	// 08:00 and 17:00 in UTC+7
	assert.Contains(t, ics, "DTSTART:20240311T010000Z")
	assert.Contains(t, ics, "DTEND:20240311T100000Z")
	assert.Contains(t, ics, "DTSTAMP:20240310T090000Z")
	assert.Contains(t, ics, render.EventUID("Lan", *day("2024-03-11")))
	assert.NotContains(t, ics, "URGENT")
}

func TestBuildCalendar_UrgencyMarker(t *testing.T) {
	late := line(1, "2024-03-08", "ACME", "A1", 7, "PT001", 10)
	late.TimelineStatus = domain.TimelineOverdue

	out, err := render.BuildCalendar([]domain.DeliveryLine{late, line(2, "2024-03-11", "ACME", "A1", 7, "PT001", 1)}, calendarOptions(t))
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(string(out), "URGENT"))
}

func TestBuildCalendar_IsDeterministic(t *testing.T) {
	lines := []domain.DeliveryLine{
		line(1, "2024-03-11", "ACME", "A1", 7, "PT001", 10),
		line(2, "2024-03-12", "Beta", "B1", 8, "PT002", 5),
	}
	a, err := render.BuildCalendar(lines, calendarOptions(t))
	require.NoError(t, err)
	b, err := render.BuildCalendar(lines, calendarOptions(t))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEventUID(t *testing.T) {
	d := *day("2024-03-11")
	assert.Equal(t, render.EventUID("Lan", d), render.EventUID("Lan", d))
	assert.NotEqual(t, render.EventUID("Lan", d), render.EventUID("An", d))
	assert.NotEqual(t, render.EventUID("Lan", d), render.EventUID("Lan", d.AddDate(0, 0, 1)))
	assert.True(t, strings.HasSuffix(render.EventUID("Lan", d), "@outbound.prostech.vn"))
}

func TestCalendarLinks(t *testing.T) {
	rows := render.ScheduleRows([]domain.DeliveryLine{
		line(1, "2024-03-11", "ACME", "A1", 7, "PT001", 10),
		line(2, "2024-03-12", "ACME", "A1", 7, "PT001", 5),
	})

	links := render.CalendarLinks("Lan", rows)

	require.Len(t, links, 2)
	assert.Contains(t, links[0].Google, "dates=20240311%2F20240312")
	assert.Contains(t, links[0].Google, "action=TEMPLATE")
	assert.Contains(t, links[0].Outlook, "startdt=2024-03-11")
	assert.Contains(t, links[0].Outlook, "allday=true")
}
