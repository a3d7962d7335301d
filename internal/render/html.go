package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"
	"time"

	"github.com/prostech/outbound-api/internal/analysis"
	"github.com/prostech/outbound-api/internal/domain"
)

//go:embed templates/*.html
var templates embed.FS

// Template names
const (
	templateSchedule = "delivery_schedule.html"
	templateOverdue  = "overdue_alert.html"
	templateCustoms  = "customs_clearance.html"
)

// HTMLMediaType is the content type of rendered bodies
const HTMLMediaType = "text/html; charset=utf-8"

// HTMLRenderer executes the embedded notification templates.
type HTMLRenderer struct {
	tpl *template.Template
}

// NewHTMLRenderer parses the notification templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	funcMap := template.FuncMap{
		"qty":      FormatQuantity,
		"optional": FormatOptional,
		"percent":  FormatPercent,
		"date":     FormatDate,
		"longDate": LongDate,
		"shortDate": func(t time.Time) string {
			return t.Format("Jan 02")
		},
		"stamp": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
	}
	tpl, err := template.New("notifications").Funcs(funcMap).ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse notification templates: %w", err)
	}
	return &HTMLRenderer{tpl: tpl}, nil
}

func (r *HTMLRenderer) execute(name string, data interface{}) (string, error) {
	if r == nil || r.tpl == nil {
		return "", fmt.Errorf("html renderer not initialised")
	}
	buf := &bytes.Buffer{}
	if err := r.tpl.ExecuteTemplate(buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Page carries the parts shared by every notification body.
type Page struct {
	Title        string
	Recipient    string
	Notices      []domain.DataQualityNotice
	DashboardURL string
	GeneratedAt  time.Time
}

// ScheduleData is the delivery schedule body: one section per ISO week.
type ScheduleData struct {
	Page
	From     time.Time
	To       time.Time
	Summary  ScheduleSummary
	Weeks    []Section
	Links    []CalendarLink
	Shortage []analysis.ProductSummary
}

// NewScheduleData aggregates lines into the schedule body.
func NewScheduleData(page Page, from, to time.Time, lines []domain.DeliveryLine) ScheduleData {
	rows := ScheduleRows(lines)
	if page.Title == "" {
		page.Title = "Delivery Schedule Notification"
	}
	return ScheduleData{
		Page:    page,
		From:    from,
		To:      to,
		Summary: Summarize(lines),
		Weeks:   WeekSections(rows),
		Links:   CalendarLinks(page.Recipient, rows),
	}
}

// DeliverySchedule renders the schedule body.
func (r *HTMLRenderer) DeliverySchedule(data ScheduleData) (string, error) {
	return r.execute(templateSchedule, data)
}

// OverdueData is the overdue alert body.
type OverdueData struct {
	Page
	Summary  ScheduleSummary
	Overdue  []Section
	DueToday []ScheduleRow
	// OverdueDeliveries and DueTodayDeliveries count distinct deliveries
	OverdueDeliveries  int
	DueTodayDeliveries int
	MaxDaysOverdue     int
}

// NewOverdueData splits urgent lines into an Overdue section per date and a
// Due Today list.
func NewOverdueData(page Page, lines []domain.DeliveryLine) OverdueData {
	if page.Title == "" {
		page.Title = "Overdue Delivery Alert"
	}
	var overdue, dueToday []domain.DeliveryLine
	for _, l := range lines {
		switch l.TimelineStatus {
		case domain.TimelineOverdue:
			overdue = append(overdue, l)
		case domain.TimelineDueToday:
			dueToday = append(dueToday, l)
		}
	}
	data := OverdueData{
		Page:               page,
		Summary:            Summarize(lines),
		Overdue:            DaySections(ScheduleRows(overdue)),
		DueToday:           ScheduleRows(dueToday),
		OverdueDeliveries:  Summarize(overdue).Deliveries,
		DueTodayDeliveries: Summarize(dueToday).Deliveries,
	}
	for _, l := range overdue {
		data.MaxDaysOverdue = max(data.MaxDaysOverdue, l.DaysOverdue)
	}
	return data
}

// OverdueAlert renders the overdue alert body.
func (r *HTMLRenderer) OverdueAlert(data OverdueData) (string, error) {
	return r.execute(templateOverdue, data)
}

// CountryGroup is the foreign customs subset of one customer country.
type CountryGroup struct {
	Country  string
	Rows     []ScheduleRow
	Quantity float64
}

// CustomsData is the customs clearance digest body.
type CustomsData struct {
	Page
	Weeks          int
	Summary        ScheduleSummary
	EPE            []Section
	Foreign        []CountryGroup
	EPEDeliveries  int
	ForeignCount   int
	ForeignCountry int
}

// NewCustomsData builds the EPE section by week and groups foreign rows by
// customer country.
func NewCustomsData(page Page, weeks int, epe, foreign []domain.DeliveryLine) CustomsData {
	if page.Title == "" {
		page.Title = "Customs Clearance Schedule"
	}
	all := make([]domain.DeliveryLine, 0, len(epe)+len(foreign))
	all = append(append(all, epe...), foreign...)

	data := CustomsData{
		Page:          page,
		Weeks:         weeks,
		Summary:       Summarize(all),
		EPE:           WeekSections(ScheduleRows(epe)),
		EPEDeliveries: Summarize(epe).Deliveries,
		ForeignCount:  Summarize(foreign).Deliveries,
	}

	groups := make(map[string]*CountryGroup)
	for _, row := range ScheduleRows(foreign) {
		country := row.CustomerCountry
		if country == "" {
			country = "Unknown"
		}
		g, ok := groups[country]
		if !ok {
			g = &CountryGroup{Country: country}
			groups[country] = g
		}
		g.Rows = append(g.Rows, row)
		g.Quantity += row.Quantity
	}
	for _, g := range groups {
		data.Foreign = append(data.Foreign, *g)
	}
	sort.Slice(data.Foreign, func(i, j int) bool { return data.Foreign[i].Country < data.Foreign[j].Country })
	data.ForeignCountry = len(data.Foreign)
	return data
}

// CustomsClearance renders the customs digest body.
func (r *HTMLRenderer) CustomsClearance(data CustomsData) (string, error) {
	return r.execute(templateCustoms, data)
}
