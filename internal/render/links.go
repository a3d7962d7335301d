package render

import (
	"net/url"
	"strings"
	"time"
)

const (
	googleCalendarBase  = "https://calendar.google.com/calendar/render"
	outlookCalendarBase = "https://outlook.live.com/calendar/0/deeplink/compose"
)

// CalendarLink is a pair of "add to calendar" links for one delivery date.
type CalendarLink struct {
	Date    time.Time
	Label   string
	Google  string
	Outlook string
}

// GoogleCalendarURL builds an all-day event template link for date.
func GoogleCalendarURL(title, details, location string, date time.Time) string {
	next := date.AddDate(0, 0, 1)
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", title)
	q.Set("dates", date.Format("20060102")+"/"+next.Format("20060102"))
	q.Set("details", details)
	q.Set("location", location)
	q.Set("sf", "true")
	return googleCalendarBase + "?" + q.Encode()
}

// OutlookCalendarURL builds an all-day compose link for date.
func OutlookCalendarURL(title, details, location string, date time.Time) string {
	next := date.AddDate(0, 0, 1)
	q := url.Values{}
	q.Set("subject", title)
	q.Set("startdt", date.Format("2006-01-02"))
	q.Set("enddt", next.Format("2006-01-02"))
	q.Set("body", details)
	q.Set("location", location)
	q.Set("allday", "true")
	return outlookCalendarBase + "?" + q.Encode()
}

// CalendarLinks returns one link pair per distinct date of ordered rows.
func CalendarLinks(name string, rows []ScheduleRow) []CalendarLink {
	out := []CalendarLink{}
	for _, day := range DaySections(rows) {
		title := eventSummary(name, day)
		details := eventDescription(day.Rows)
		out = append(out, CalendarLink{
			Date:    day.Start,
			Label:   day.Label,
			Google:  GoogleCalendarURL(title, details, eventLocation, day.Start),
			Outlook: OutlookCalendarURL(title, details, eventLocation, day.Start),
		})
	}
	return out
}

// eventDescription lists the day's rows grouped by (customer, ship-to).
func eventDescription(rows []ScheduleRow) string {
	var b strings.Builder
	lastCustomer, lastShipTo := "", ""
	for i, r := range rows {
		if i == 0 || r.Customer != lastCustomer || r.ShipTo != lastShipTo {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(r.Customer)
			if r.ShipTo != "" && r.ShipTo != r.Customer {
				b.WriteString(" → ")
				b.WriteString(r.ShipTo)
			}
			b.WriteString(":\n")
			lastCustomer, lastShipTo = r.Customer, r.ShipTo
		}
		b.WriteString("- ")
		b.WriteString(r.Product())
		b.WriteString(": ")
		b.WriteString(FormatQuantity(r.Quantity))
		b.WriteString(" units")
		if r.Overdue() {
			b.WriteString(" (OVERDUE)")
		}
		b.WriteString("\n")
	}
	return b.String()
}
