package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prostech/outbound-api/internal/analysis"
	"github.com/prostech/outbound-api/internal/config"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/mail"
	"github.com/prostech/outbound-api/internal/metrics"
	"github.com/prostech/outbound-api/internal/normalize"
	"github.com/prostech/outbound-api/internal/query"
	"github.com/prostech/outbound-api/internal/render"
	"github.com/prostech/outbound-api/internal/repository"
	"github.com/prostech/outbound-api/internal/storage"
	"go.uber.org/zap"
)

var validate = validator.New()

const (
	defaultWeeksAhead    = 4
	defaultMaxRecipients = 50
	// shortageRows is the number of short products listed in a schedule email
	shortageRows = 10
	customsName  = "Customs Clearance Team"
)

// Attachment notes carried by send results
const (
	noteWorkbookFallback = "Spreadsheet could not be generated; a CSV file is attached instead"
	noteWorkbookDropped  = "Spreadsheet and CSV files could not be generated; no spreadsheet was attached"
	noteCalendarDropped  = "Calendar file could not be generated and was not attached"
	noteNoDeliveries     = "No active deliveries in the selected window"
	noteArchiveFailed    = "Attachments could not be archived"
)

// NotificationLogStore persists send attempts.
type NotificationLogStore interface {
	Create(ctx context.Context, entry *domain.NotificationLog) error
	List(ctx context.Context, filter repository.NotificationLogFilter, page, pageSize int) ([]domain.NotificationLog, int64, error)
}

// AttachmentBuilders produce the spreadsheet and calendar attachments.
type AttachmentBuilders struct {
	Workbook func(render.WorkbookInput) ([]byte, error)
	Calendar func([]domain.DeliveryLine, render.CalendarOptions) ([]byte, error)
	// CSV writes the fallback attachment when the workbook fails
	CSV func(io.Writer, []domain.DeliveryLine) error
}

// NotificationService renders and sends the notification emails.
type NotificationService struct {
	deliveries *DeliveryService
	view       Executor
	builder    *query.Builder
	employees  string
	renderer   *render.HTMLRenderer
	mailer     mail.Mailer
	archive    storage.Archive
	logStore   NotificationLogStore
	metrics    *metrics.Metrics
	cfg        config.NotificationsConfig
	loc        *time.Location
	builders   AttachmentBuilders
	now        func() time.Time
	logger     *zap.Logger
}

// NewNotificationService creates a new NotificationService instance.
// archive and logStore may be nil.
func NewNotificationService(
	deliveries *DeliveryService,
	view Executor,
	builder *query.Builder,
	employees string,
	renderer *render.HTMLRenderer,
	mailer mail.Mailer,
	archive storage.Archive,
	logStore NotificationLogStore,
	m *metrics.Metrics,
	cfg config.NotificationsConfig,
	loc *time.Location,
	logger *zap.Logger,
) *NotificationService {
	if loc == nil {
		loc = time.UTC
	}
	return &NotificationService{
		deliveries: deliveries,
		view:       view,
		builder:    builder,
		employees:  employees,
		renderer:   renderer,
		mailer:     mailer,
		archive:    archive,
		logStore:   logStore,
		metrics:    m,
		cfg:        cfg,
		loc:        loc,
		builders: AttachmentBuilders{
			Workbook: render.BuildWorkbook,
			Calendar: render.BuildCalendar,
			CSV:      render.WriteDetailCSV,
		},
		now:    time.Now,
		logger: logger,
	}
}

// WithBuilders replaces the attachment builders
func (s *NotificationService) WithBuilders(b AttachmentBuilders) *NotificationService {
	if b.Workbook != nil {
		s.builders.Workbook = b.Workbook
	}
	if b.Calendar != nil {
		s.builders.Calendar = b.Calendar
	}
	if b.CSV != nil {
		s.builders.CSV = b.CSV
	}
	return s
}

// WithClock replaces the clock used for timestamps
func (s *NotificationService) WithClock(now func() time.Time) *NotificationService {
	s.now = now
	return s
}

func (s *NotificationService) weeks(req *domain.NotificationRequest) int {
	switch {
	case req.WeeksAhead > 0:
		return req.WeeksAhead
	case s.cfg.WeeksAhead > 0:
		return s.cfg.WeeksAhead
	}
	return defaultWeeksAhead
}

func (s *NotificationService) maxRecipients() int {
	if s.cfg.MaxRecipients > 0 {
		return s.cfg.MaxRecipients
	}
	return defaultMaxRecipients
}

// window returns the [today, until] schedule window for weeks
func (s *NotificationService) window(weeks int) (time.Time, time.Time) {
	today := s.deliveries.Today()
	return today, today.AddDate(0, 0, 7*weeks)
}

// Recipients lists who a notification kind can be sent to.
func (s *NotificationService) Recipients(ctx context.Context, kind domain.NotificationKind, weeks int) ([]domain.Recipient, error) {
	if weeks <= 0 {
		weeks = s.weeks(&domain.NotificationRequest{})
	}
	today, until := s.window(weeks)

	var q query.Query
	switch kind {
	case domain.NotificationDeliverySchedule, domain.NotificationOverdueAlert:
		q = s.builder.SalesRecipientsQuery(kind, s.employees, today, until)
	case domain.NotificationCustomerSchedule:
		q = s.builder.CustomerRecipientsQuery(today, until)
	case domain.NotificationCustomsClearance:
		mailbox, err := s.customsMailbox()
		if err != nil {
			return nil, err
		}
		return []domain.Recipient{{Name: customsName, Email: mailbox}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNotificationKind, kind)
	}

	start := time.Now()
	raw, err := s.view.Query(ctx, q)
	s.metrics.ObserveQuery("recipients", start, err)
	if err != nil {
		return nil, err
	}
	return normalize.RecipientsFromRows(*raw)
}

// outgoing is one rendered notification before it is sent.
type outgoing struct {
	recipient   domain.Recipient
	to          []string
	cc          []string
	subject     string
	html        string
	deliveries  int
	attachments []mail.Attachment
	notes       []string
	notices     []domain.DataQualityNotice
	skipped     bool
}

func (o *outgoing) attachmentInfo() []domain.AttachmentInfo {
	out := make([]domain.AttachmentInfo, 0, len(o.attachments))
	for _, a := range o.attachments {
		out = append(out, domain.AttachmentInfo{Filename: a.Filename, ContentType: a.ContentType, Size: len(a.Data)})
	}
	return out
}

func (s *NotificationService) validateRequest(req *domain.NotificationRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if !req.Kind.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrUnknownNotificationKind, req.Kind)
	}
	return validate.Struct(req)
}

// customsMailbox is the default customs recipient
func (s *NotificationService) customsMailbox() (string, error) {
	mailbox := strings.TrimSpace(s.cfg.CustomsMailbox)
	if mailbox == "" {
		return "", fmt.Errorf("%w: no customs mailbox configured and no customs_to given", ErrInvalidInput)
	}
	return mailbox, nil
}

// resolve picks the recipients of a request. Named recipients must exist in
// the recipient list; names and emails match case-insensitively.
func (s *NotificationService) resolve(ctx context.Context, req *domain.NotificationRequest) ([]domain.Recipient, error) {
	if req.Kind == domain.NotificationCustomsClearance {
		to := dedupe(req.CustomsTo, nil)
		if len(to) == 0 {
			mailbox, err := s.customsMailbox()
			if err != nil {
				return nil, err
			}
			to = []string{mailbox}
		}
		return []domain.Recipient{{Name: customsName, Email: strings.Join(to, ",")}}, nil
	}

	all, err := s.Recipients(ctx, req.Kind, s.weeks(req))
	if err != nil {
		return nil, err
	}
	if len(req.Recipients) == 0 {
		return all, nil
	}

	out := make([]domain.Recipient, 0, len(req.Recipients))
	for _, want := range dedupe(req.Recipients, nil) {
		found := false
		for _, r := range all {
			if strings.EqualFold(r.Name, want) || strings.EqualFold(r.Email, want) {
				out = append(out, r)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: recipient %q", ErrNotFound, want)
		}
	}
	return out, nil
}

// Preview renders every notification of a request without sending.
func (s *NotificationService) Preview(ctx context.Context, req *domain.NotificationRequest) ([]domain.NotificationPreviewDTO, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	recipients, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	previews := make([]domain.NotificationPreviewDTO, 0, len(recipients))
	for _, r := range recipients {
		out, err := s.build(ctx, req, r)
		if err != nil {
			return nil, err
		}
		previews = append(previews, domain.NotificationPreviewDTO{
			Recipient:   r.Name,
			Email:       strings.Join(out.to, ", "),
			CC:          out.cc,
			Subject:     out.subject,
			HTML:        out.html,
			Deliveries:  out.deliveries,
			Attachments: out.attachmentInfo(),
			Notes:       out.notes,
			Notices:     out.notices,
		})
	}
	return previews, nil
}

// Send renders and sends the notifications of a request, one recipient at a
// time. A failed recipient does not stop the others. The request must carry
// confirm=true.
func (s *NotificationService) Send(ctx context.Context, req *domain.NotificationRequest) (*domain.SendSummary, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	if !req.Confirm {
		return nil, domain.ErrSendNotConfirmed
	}
	recipients, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	if limit := s.maxRecipients(); len(recipients) > limit {
		return nil, fmt.Errorf("%w: %d recipients, limit is %d", domain.ErrTooManyRecipients, len(recipients), limit)
	}

	archive := s.cfg.ArchiveAttachments
	if req.ArchiveFiles != nil {
		archive = *req.ArchiveFiles
	}

	summary := &domain.SendSummary{Results: make([]domain.SendResult, 0, len(recipients))}
	for _, r := range recipients {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		result := s.sendOne(ctx, req, r, archive)
		switch result.Status {
		case domain.SendStatusSent:
			summary.Sent++
		case domain.SendStatusFailed:
			summary.Failed++
		case domain.SendStatusSkipped:
			summary.Skipped++
		}
		summary.Results = append(summary.Results, result)
	}

	s.logger.Info("notifications processed",
		zap.String("kind", string(req.Kind)),
		zap.Int("sent", summary.Sent),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

func (s *NotificationService) sendOne(ctx context.Context, req *domain.NotificationRequest, r domain.Recipient, archive bool) domain.SendResult {
	result := domain.SendResult{Recipient: r.Name, Email: r.Email}

	out, err := s.build(ctx, req, r)
	if err != nil {
		result.Status = domain.SendStatusFailed
		result.Message = err.Error()
		s.record(ctx, req.Kind, r, nil, result)
		return result
	}
	result.Deliveries = out.deliveries
	result.Notes = out.notes

	if out.skipped {
		result.Status = domain.SendStatusSkipped
		result.Message = noteNoDeliveries
		s.record(ctx, req.Kind, r, out, result)
		return result
	}

	err = s.mailer.Send(ctx, &mail.Message{
		To:          out.to,
		Cc:          out.cc,
		Subject:     out.subject,
		HTML:        out.html,
		Attachments: out.attachments,
	})
	if err != nil {
		s.logger.Error("failed to send notification",
			zap.String("kind", string(req.Kind)),
			zap.String("recipient", r.Name),
			zap.Error(err),
		)
		result.Status = domain.SendStatusFailed
		result.Message = err.Error()
		s.record(ctx, req.Kind, r, out, result)
		return result
	}

	result.Status = domain.SendStatusSent
	if archive && s.archive != nil {
		if err := s.archiveAttachments(ctx, req.Kind, out.attachments); err != nil {
			s.logger.Warn("failed to archive attachments", zap.String("recipient", r.Name), zap.Error(err))
			result.Notes = append(result.Notes, noteArchiveFailed)
		}
	}
	s.record(ctx, req.Kind, r, out, result)
	return result
}

func (s *NotificationService) archiveAttachments(ctx context.Context, kind domain.NotificationKind, attachments []mail.Attachment) error {
	sentAt := s.now()
	var errs []error
	for _, a := range attachments {
		key := storage.ArchiveKey(string(kind), sentAt, a.Filename)
		if _, err := s.archive.Put(ctx, key, a.ContentType, bytes.NewReader(a.Data)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// record counts the result and writes the notification log entry.
func (s *NotificationService) record(ctx context.Context, kind domain.NotificationKind, r domain.Recipient, out *outgoing, result domain.SendResult) {
	s.metrics.NotificationResult(string(kind), string(result.Status))
	if s.logStore == nil {
		return
	}

	notes := make([]string, 0, len(result.Notes)+1)
	if result.Message != "" {
		notes = append(notes, result.Message)
	}
	notes = append(notes, result.Notes...)

	entry := &domain.NotificationLog{
		Kind:       string(kind),
		Recipient:  r.Name,
		Email:      r.Email,
		Status:     string(result.Status),
		Deliveries: result.Deliveries,
		Notes:      strings.Join(notes, "\n"),
	}
	if out != nil {
		entry.Subject = out.subject
		entry.CC = strings.Join(out.cc, ",")
		names := make([]string, 0, len(out.attachments))
		for _, a := range out.attachments {
			names = append(names, a.Filename)
		}
		entry.Attachments = strings.Join(names, ",")
	}
	if err := s.logStore.Create(ctx, entry); err != nil {
		s.logger.Error("failed to write notification log", zap.Error(err))
	}
}

// Log lists recent send attempts.
func (s *NotificationService) Log(ctx context.Context, filter repository.NotificationLogFilter, page, pageSize int) ([]domain.NotificationLog, int64, error) {
	if s.logStore == nil {
		return nil, 0, ErrLogUnavailable
	}
	entries, total, err := s.logStore.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notification log: %w", err)
	}
	return entries, total, nil
}

// build fetches the recipient's lines and renders body and attachments.
func (s *NotificationService) build(ctx context.Context, req *domain.NotificationRequest, r domain.Recipient) (*outgoing, error) {
	weeks := s.weeks(req)
	today, until := s.window(weeks)
	now := s.now()

	out := &outgoing{recipient: r, to: []string{r.Email}}
	if req.Kind == domain.NotificationCustomsClearance {
		out.to = strings.Split(r.Email, ",")
	}

	var f domain.FilterModel
	switch req.Kind {
	case domain.NotificationDeliverySchedule:
		f.Creators = domain.ListFilter{Values: []string{r.Name}}
		f.DateFrom, f.DateTo = &today, &until
	case domain.NotificationCustomerSchedule:
		f.Customers = domain.ListFilter{Values: []string{r.Company}}
		f.DateFrom, f.DateTo = &today, &until
	case domain.NotificationOverdueAlert:
		f.Creators = domain.ListFilter{Values: []string{r.Name}}
		f.Timeline = domain.ListFilter{Values: []string{string(domain.TimelineOverdue), string(domain.TimelineDueToday)}}
	case domain.NotificationCustomsClearance:
		f.DateFrom, f.DateTo = &today, &until
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNotificationKind, req.Kind)
	}

	rs, err := s.deliveries.FetchFresh(ctx, f)
	if err != nil {
		return nil, err
	}

	lines := analysis.ActiveOnly(rs.Lines)
	var epe, foreign []domain.DeliveryLine
	switch req.Kind {
	case domain.NotificationOverdueAlert:
		lines = analysis.UrgentOnly(lines)
	case domain.NotificationCustomsClearance:
		epe, foreign = analysis.SplitCustoms(lines)
		lines = append(append([]domain.DeliveryLine{}, epe...), foreign...)
	}

	summary := render.Summarize(lines)
	out.deliveries = summary.Deliveries
	if len(lines) == 0 {
		out.skipped = true
		out.notes = append(out.notes, noteNoDeliveries)
		return out, nil
	}
	out.notices = noticesFor(rs)

	out.cc = ccFor(req, r, out.to)

	page := render.Page{
		Recipient:    r.Name,
		Notices:      out.notices,
		DashboardURL: s.cfg.DashboardURL,
		GeneratedAt:  now.In(s.loc),
	}

	wb := render.WorkbookInput{Lines: lines, Schema: rs.Schema}
	withCalendar := false

	switch req.Kind {
	case domain.NotificationDeliverySchedule:
		out.subject = fmt.Sprintf("Delivery Schedule - %s - %d weeks from %s", r.Name, weeks, render.FormatDate(today))
		data := render.NewScheduleData(page, today, until, lines)
		products := analysis.AnalyzeProducts(rs.WithLines(lines))
		data.Shortage = analysis.TopShortage(products, shortageRows, analysis.SortByGapQuantity)
		wb.Products = products
		out.html, err = s.renderer.DeliverySchedule(data)
		withCalendar = true

	case domain.NotificationCustomerSchedule:
		name := r.Company
		if name == "" {
			name = r.Name
		}
		out.subject = fmt.Sprintf("Delivery Schedule - %s - %d weeks from %s", name, weeks, render.FormatDate(today))
		page.Title = "Your Delivery Schedule"
		out.html, err = s.renderer.DeliverySchedule(render.NewScheduleData(page, today, until, lines))
		withCalendar = true

	case domain.NotificationOverdueAlert:
		data := render.NewOverdueData(page, lines)
		out.subject = fmt.Sprintf("URGENT: Overdue Deliveries - %s (%d overdue, %d due today)",
			r.Name, data.OverdueDeliveries, data.DueTodayDeliveries)
		out.html, err = s.renderer.OverdueAlert(data)

	case domain.NotificationCustomsClearance:
		page.Recipient = customsName
		out.subject = fmt.Sprintf("Customs Clearance Schedule - %d deliveries (%d weeks)", summary.Deliveries, weeks)
		wb.Extra = []render.DetailSheet{
			{Name: "EPE Companies", Lines: epe},
			{Name: "Foreign Customers", Lines: foreign},
		}
		out.html, err = s.renderer.CustomsClearance(render.NewCustomsData(page, weeks, epe, foreign))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s email: %w", req.Kind, err)
	}

	subject := r.Name
	if req.Kind == domain.NotificationCustomsClearance {
		subject = "customs"
	}
	s.attachWorkbook(out, req.Kind, subject, today, wb)
	if withCalendar {
		s.attachCalendar(out, req.Kind, subject, today, lines, render.CalendarOptions{
			Name:          r.Name,
			Location:      s.loc,
			StartHour:     s.cfg.WorkdayStartHour,
			EndHour:       s.cfg.WorkdayEndHour,
			Organizer:     s.cfg.CalendarOrganizer,
			OrganizerName: s.cfg.SenderName,
			ProductID:     s.cfg.CalendarProductName,
			Now:           now,
		})
	}
	return out, nil
}

// attachWorkbook attaches the XLSX export, or a CSV of the lines when the
// workbook cannot be built.
func (s *NotificationService) attachWorkbook(out *outgoing, kind domain.NotificationKind, subject string, date time.Time, in render.WorkbookInput) {
	data, err := s.builders.Workbook(in)
	if err == nil {
		out.attachments = append(out.attachments, mail.Attachment{
			Filename:    render.AttachmentFilename(string(kind), subject, date, "xlsx"),
			ContentType: render.XLSXMediaType,
			Data:        data,
		})
		return
	}

	s.metrics.AttachmentFallback("xlsx")
	s.logger.Warn("workbook generation failed, attaching csv", zap.String("kind", string(kind)), zap.Error(err))

	var buf bytes.Buffer
	if cerr := s.builders.CSV(&buf, in.Lines); cerr != nil {
		s.metrics.AttachmentFallback("csv")
		s.logger.Error("csv fallback failed, spreadsheet dropped", zap.Error(cerr))
		out.notes = append(out.notes, noteWorkbookDropped)
		return
	}
	out.attachments = append(out.attachments, mail.Attachment{
		Filename:    render.AttachmentFilename(string(kind), subject, date, "csv"),
		ContentType: render.CSVMediaType,
		Data:        buf.Bytes(),
	})
	out.notes = append(out.notes, noteWorkbookFallback)
}

// attachCalendar attaches the ICS invite. A failed calendar is dropped.
func (s *NotificationService) attachCalendar(out *outgoing, kind domain.NotificationKind, subject string, date time.Time, lines []domain.DeliveryLine, opts render.CalendarOptions) {
	data, err := s.builders.Calendar(lines, opts)
	if err != nil {
		s.metrics.AttachmentFallback("ics")
		s.logger.Warn("calendar generation failed, attachment dropped", zap.String("kind", string(kind)), zap.Error(err))
		out.notes = append(out.notes, noteCalendarDropped)
		return
	}
	out.attachments = append(out.attachments, mail.Attachment{
		Filename:    render.AttachmentFilename(string(kind), subject, date, "ics"),
		ContentType: render.ICSMediaType,
		Data:        data,
	})
}

// ccFor collects the manager (when requested) and extra CC addresses, minus
// the To addresses.
func ccFor(req *domain.NotificationRequest, r domain.Recipient, to []string) []string {
	var cc []string
	if req.IncludeCC && r.ManagerEmail != "" {
		cc = append(cc, r.ManagerEmail)
	}
	cc = append(cc, req.ExtraCC...)
	return dedupe(cc, to)
}

// dedupe trims values and drops blanks, repeats and excluded values, all
// compared case-insensitively. Order is preserved.
func dedupe(values []string, exclude []string) []string {
	seen := make(map[string]struct{}, len(values)+len(exclude))
	for _, e := range exclude {
		seen[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		k := strings.ToLower(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}
