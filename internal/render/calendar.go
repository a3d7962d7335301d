package render

import (
	"bytes"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/prostech/outbound-api/internal/domain"
)

const (
	calendarProductID = "-//Outbound Logistics//Delivery Schedule//EN"
	calendarUIDDomain = "outbound.prostech.vn"
	eventLocation     = "Various Locations"
	urgentMarker      = "⚠️ URGENT: "
)

// ICSMediaType is the content type of calendar invites
const ICSMediaType = "text/calendar; charset=utf-8; method=REQUEST"

// eventNamespace seeds deterministic event UIDs
var eventNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(calendarUIDDomain))

// CalendarOptions configures BuildCalendar. Zero values fall back to an
// 08:00-17:00 window in UTC and a generic organizer.
type CalendarOptions struct {
	// Name identifies the recipient in event titles and UIDs
	Name          string
	Location      *time.Location
	StartHour     int
	EndHour       int
	Organizer     string
	OrganizerName string
	// ProductID is the PRODID of the calendar
	ProductID string
	// Now stamps DTSTAMP; it is the only non-deterministic input
	Now time.Time
}

func (o CalendarOptions) withDefaults() CalendarOptions {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.StartHour <= 0 || o.StartHour > 23 {
		o.StartHour = 8
	}
	if o.EndHour <= o.StartHour || o.EndHour > 24 {
		o.EndHour = 17
	}
	if o.Organizer == "" {
		o.Organizer = "outbound@" + calendarUIDDomain
	}
	if o.OrganizerName == "" {
		o.OrganizerName = "Outbound Logistics"
	}
	if o.ProductID == "" {
		o.ProductID = calendarProductID
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// EventUID is stable for a (recipient, date) pair so that re-sent invites
// update the same event.
func EventUID(name string, date time.Time) string {
	id := uuid.NewSHA1(eventNamespace, []byte(name+"|"+date.Format("2006-01-02")))
	return id.String() + "@" + calendarUIDDomain
}

// BuildCalendar emits an iCalendar request with one event per distinct
// delivery date. Lines without an ETD are left out.
func BuildCalendar(lines []domain.DeliveryLine, opts CalendarOptions) ([]byte, error) {
	opts = opts.withDefaults()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId(opts.ProductID)
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName("Delivery Schedule - " + opts.Name)

	for _, day := range DaySections(ScheduleRows(lines)) {
		y, m, d := day.Start.Date()
		start := time.Date(y, m, d, opts.StartHour, 0, 0, 0, opts.Location)
		end := time.Date(y, m, d, 0, 0, 0, 0, opts.Location).Add(time.Duration(opts.EndHour) * time.Hour)

		event := cal.AddEvent(EventUID(opts.Name, day.Start))
		event.SetDtStampTime(opts.Now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(eventSummary(opts.Name, day))
		event.SetDescription(eventDescription(day.Rows))
		event.SetLocation(eventLocation)
		event.SetOrganizer(opts.Organizer, ics.WithCN(opts.OrganizerName))
		event.SetStatus(ics.ObjectStatusConfirmed)
		event.SetSequence(0)
		event.SetTimeTransparency(ics.TransparencyTransparent)

		alarm := event.AddAlarm()
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetTrigger("-P1D")
		alarm.SetProperty(ics.ComponentPropertyDescription, "Reminder: Review tomorrow's deliveries")
	}

	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf); err != nil {
		return nil, &domain.AttachmentGenerationError{Kind: "ics", Err: err}
	}
	return buf.Bytes(), nil
}

// eventSummary titles a day's event, with the urgency marker first when any
// row of the day is overdue.
func eventSummary(name string, day Section) string {
	customers := make(map[string]struct{})
	urgent := false
	for _, r := range day.Rows {
		customers[r.Customer] = struct{}{}
		if r.Overdue() {
			urgent = true
		}
	}
	s := fmt.Sprintf("📦 Deliveries - %s (%d customers, %s units)", name, len(customers), FormatQuantity(day.Quantity))
	if urgent {
		s = urgentMarker + s
	}
	return s
}
