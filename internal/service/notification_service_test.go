package service_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prostech/outbound-api/internal/config"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/query"
	"github.com/prostech/outbound-api/internal/render"
	"github.com/prostech/outbound-api/internal/repository"
	"github.com/prostech/outbound-api/internal/service"
	"github.com/prostech/outbound-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type notificationFixture struct {
	view   *fakeView
	mailer *fakeMailer
	log    *memoryLog
	svc    *service.NotificationService
}

func newNotificationFixture(t *testing.T, cfg config.NotificationsConfig, archive storage.Archive) *notificationFixture {
	t.Helper()
	renderer, err := render.NewHTMLRenderer()
	require.NoError(t, err)

	if cfg.CustomsMailbox == "" {
		cfg.CustomsMailbox = "customs@example.com"
	}
	f := &notificationFixture{
		view:   newFakeView(),
		mailer: &fakeMailer{failFor: map[string]bool{}},
		log:    &memoryLog{},
	}
	deliveries := newDeliveryService(f.view, nil)
	f.svc = service.NewNotificationService(
		deliveries, f.view, query.NewBuilder(""), "employees",
		renderer, f.mailer, archive, f.log, nil, cfg, time.UTC, zap.NewNop(),
	).WithClock(func() time.Time { return fixedNow })
	return f
}

func attachmentNames(f *notificationFixture, i int) []string {
	var names []string
	for _, a := range f.mailer.sent[i].Attachments {
		names = append(names, a.Filename)
	}
	return names
}

func TestNotificationService_SendRequiresConfirm(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{}, nil)

	_, err := f.svc.Send(context.Background(), &domain.NotificationRequest{Kind: domain.NotificationDeliverySchedule})

	assert.ErrorIs(t, err, domain.ErrSendNotConfirmed)
	assert.Empty(t, f.mailer.sent)
	assert.Equal(t, 0, f.view.Calls())
}

func TestNotificationService_UnknownKind(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{}, nil)

	_, err := f.svc.Send(context.Background(), &domain.NotificationRequest{Kind: "weekly_digest", Confirm: true})
	assert.ErrorIs(t, err, domain.ErrUnknownNotificationKind)

	_, err = f.svc.Recipients(context.Background(), "weekly_digest", 0)
	assert.ErrorIs(t, err, domain.ErrUnknownNotificationKind)
}

func TestNotificationService_SendDeliverySchedule(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{WeeksAhead: 4}, nil)

	summary, err := f.svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:      domain.NotificationDeliverySchedule,
		IncludeCC: true,
		Confirm:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
	require.Len(t, f.mailer.sent, 2)

	lan := f.mailer.sent[0]
	assert.Equal(t, []string{"lan@example.com"}, lan.To)
	assert.Equal(t, []string{"boss@example.com"}, lan.Cc)
	assert.Equal(t, "Delivery Schedule - Lan - 4 weeks from 2024-03-11", lan.Subject)
	assert.Contains(t, lan.HTML, "PT001")
	assert.NotContains(t, lan.HTML, "Beta", "line before the window is excluded")
	assert.Equal(t, []string{
		"delivery_schedule_lan_20240311.xlsx",
		"delivery_schedule_lan_20240311.ics",
	}, attachmentNames(f, 0))
	assert.Equal(t, render.ICSMediaType, lan.Attachments[1].ContentType)
	assert.Equal(t, 2, summary.Results[0].Deliveries)

	minh := f.mailer.sent[1]
	assert.Equal(t, []string{"minh@example.com"}, minh.To)
	assert.Empty(t, minh.Cc)
	assert.Contains(t, minh.HTML, "Gamma")
	assert.NotContains(t, minh.HTML, "Delta", "delivered line is excluded")
	assert.Equal(t, 2, summary.Results[1].Deliveries)

	require.Len(t, f.log.entries, 2)
	assert.Equal(t, string(domain.SendStatusSent), f.log.entries[0].Status)
	assert.Equal(t, "boss@example.com", f.log.entries[0].CC)
	assert.Contains(t, f.log.entries[0].Attachments, ".xlsx")
}

func TestNotificationService_SendNamedRecipient(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{}, nil)
	ctx := context.Background()

	summary, err := f.svc.Send(ctx, &domain.NotificationRequest{
		Kind:       domain.NotificationDeliverySchedule,
		Recipients: []string{"MINH"},
		ExtraCC:    []string{"minh@example.com", "ops@example.com"},
		Confirm:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, []string{"ops@example.com"}, f.mailer.sent[0].Cc)

	_, err = f.svc.Send(ctx, &domain.NotificationRequest{
		Kind:       domain.NotificationDeliverySchedule,
		Recipients: []string{"Nobody"},
		Confirm:    true,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestNotificationService_TooManyRecipients(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{MaxRecipients: 1}, nil)

	_, err := f.svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:    domain.NotificationDeliverySchedule,
		Confirm: true,
	})

	assert.ErrorIs(t, err, domain.ErrTooManyRecipients)
	assert.Empty(t, f.mailer.sent)
}

func TestNotificationService_AttachmentFallbacks(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{}, nil)
	f.svc.WithBuilders(service.AttachmentBuilders{
		Workbook: func(render.WorkbookInput) ([]byte, error) { return nil, errors.New("disk full") },
		Calendar: func([]domain.DeliveryLine, render.CalendarOptions) ([]byte, error) {
			return nil, errors.New("bad timezone")
		},
	})

	summary, err := f.svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:       domain.NotificationDeliverySchedule,
		Recipients: []string{"Lan"},
		Confirm:    true,
	})

	require.NoError(t, err)
	require.Equal(t, 1, summary.Sent)
	assert.Equal(t, []string{"delivery_schedule_lan_20240311.csv"}, attachmentNames(f, 0))
	assert.Contains(t, string(f.mailer.sent[0].Attachments[0].Data), "PT002")
	assert.Len(t, summary.Results[0].Notes, 2)
	assert.Contains(t, f.log.entries[0].Notes, "CSV")
}

func TestNotificationService_SpreadsheetDroppedWhenCSVFails(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{}, nil)
	f.svc.WithBuilders(service.AttachmentBuilders{
		Workbook: func(render.WorkbookInput) ([]byte, error) { return nil, errors.New("disk full") },
		CSV:      func(io.Writer, []domain.DeliveryLine) error { return errors.New("write failed") },
	})

	summary, err := f.svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:       domain.NotificationDeliverySchedule,
		Recipients: []string{"Lan"},
		Confirm:    true,
	})

	require.NoError(t, err)
	require.Equal(t, 1, summary.Sent)
	assert.Equal(t, []string{"delivery_schedule_lan_20240311.ics"}, attachmentNames(f, 0))
	require.Len(t, summary.Results[0].Notes, 1)
	assert.Contains(t, summary.Results[0].Notes[0], "no spreadsheet was attached")
	assert.NotContains(t, f.log.entries[0].Notes, "CSV file is attached")
}

func TestNotificationService_CustomsRequiresMailbox(t *testing.T) {
	renderer, err := render.NewHTMLRenderer()
	require.NoError(t, err)
	view := newFakeView()
	mailer := &fakeMailer{failFor: map[string]bool{}}
	svc := service.NewNotificationService(
		newDeliveryService(view, nil), view, query.NewBuilder(""), "employees",
		renderer, mailer, nil, &memoryLog{}, nil, config.NotificationsConfig{}, time.UTC, zap.NewNop(),
	).WithClock(func() time.Time { return fixedNow })

	_, err = svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:    domain.NotificationCustomsClearance,
		Confirm: true,
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Empty(t, mailer.sent)

	_, err = svc.Recipients(context.Background(), domain.NotificationCustomsClearance, 0)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	summary, err := svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:      domain.NotificationCustomsClearance,
		CustomsTo: []string{"broker@example.com"},
		Confirm:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, []string{"broker@example.com"}, mailer.sent[0].To)
}

func TestNotificationService_OverdueAlert(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{}, nil)

	summary, err := f.svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:    domain.NotificationOverdueAlert,
		Confirm: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, summary.Skipped)
	require.Len(t, f.mailer.sent, 1)

	msg := f.mailer.sent[0]
	assert.Equal(t, "URGENT: Overdue Deliveries - Lan (1 overdue, 1 due today)", msg.Subject)
	assert.Equal(t, []string{"overdue_alert_lan_20240311.xlsx"}, attachmentNames(f, 0))

	skipped := summary.Results[1]
	assert.Equal(t, "Minh", skipped.Recipient)
	assert.Equal(t, domain.SendStatusSkipped, skipped.Status)
	assert.Equal(t, string(domain.SendStatusSkipped), f.log.entries[1].Status)
}

func TestNotificationService_CustomsClearance(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{}, nil)

	summary, err := f.svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:    domain.NotificationCustomsClearance,
		Confirm: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	require.Len(t, f.mailer.sent, 1)

	msg := f.mailer.sent[0]
	assert.Equal(t, []string{"customs@example.com"}, msg.To)
	assert.Equal(t, "Customs Clearance Schedule - 2 deliveries (4 weeks)", msg.Subject)
	assert.Contains(t, msg.HTML, "Epsilon")
	assert.Contains(t, msg.HTML, "Gamma")
	assert.Equal(t, []string{"customs_clearance_customs_20240311.xlsx"}, attachmentNames(f, 0))

	// recipients lookup never hits the view
	assert.Equal(t, 1, f.view.Calls())
}

func TestNotificationService_CustomsOverrideRecipients(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{}, nil)

	_, err := f.svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:      domain.NotificationCustomsClearance,
		CustomsTo: []string{"a@example.com", "b@example.com"},
		ExtraCC:   []string{"b@example.com"},
		Confirm:   true,
	})

	require.NoError(t, err)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, f.mailer.sent[0].To)
	assert.Empty(t, f.mailer.sent[0].Cc)
}

func TestNotificationService_PreviewDoesNotSend(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{}, nil)

	previews, err := f.svc.Preview(context.Background(), &domain.NotificationRequest{
		Kind: domain.NotificationDeliverySchedule,
	})

	require.NoError(t, err)
	require.Len(t, previews, 2)
	assert.Equal(t, "Lan", previews[0].Recipient)
	assert.Equal(t, "lan@example.com", previews[0].Email)
	assert.NotEmpty(t, previews[0].HTML)
	require.Len(t, previews[0].Attachments, 2)
	assert.Positive(t, previews[0].Attachments[0].Size)
	assert.Empty(t, f.mailer.sent)
	assert.Empty(t, f.log.entries)
}

func TestNotificationService_MailerFailureContinues(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{}, nil)
	f.mailer.failFor["lan@example.com"] = true

	summary, err := f.svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:    domain.NotificationDeliverySchedule,
		Confirm: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, domain.SendStatusFailed, summary.Results[0].Status)
	assert.Equal(t, "mailbox unavailable", summary.Results[0].Message)

	entries, total, err := f.svc.Log(context.Background(), repository.NotificationLogFilter{}, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, string(domain.SendStatusFailed), entries[0].Status)
	assert.True(t, strings.HasPrefix(entries[0].Notes, "mailbox unavailable"))
}

func TestNotificationService_ArchivesAttachments(t *testing.T) {
	dir := t.TempDir()
	archive, err := storage.NewLocalArchive(dir)
	require.NoError(t, err)
	f := newNotificationFixture(t, config.NotificationsConfig{ArchiveAttachments: true}, archive)

	_, err = f.svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:       domain.NotificationDeliverySchedule,
		Recipients: []string{"Lan"},
		Confirm:    true,
	})
	require.NoError(t, err)

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files = append(files, path)
		}
		return err
	})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Contains(t, files[0], filepath.Join("delivery_schedule", "2024", "03", "11"))

	off := false
	_, err = f.svc.Send(context.Background(), &domain.NotificationRequest{
		Kind:         domain.NotificationDeliverySchedule,
		Recipients:   []string{"Minh"},
		ArchiveFiles: &off,
		Confirm:      true,
	})
	require.NoError(t, err)
	entries, err := filepath.Glob(filepath.Join(dir, "delivery_schedule", "2024", "03", "11", "*"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestNotificationService_RecipientsAndLog(t *testing.T) {
	f := newNotificationFixture(t, config.NotificationsConfig{}, nil)
	ctx := context.Background()

	recipients, err := f.svc.Recipients(ctx, domain.NotificationDeliverySchedule, 0)
	require.NoError(t, err)
	require.Len(t, recipients, 2)
	assert.Equal(t, "boss@example.com", recipients[0].ManagerEmail)

	customs, err := f.svc.Recipients(ctx, domain.NotificationCustomsClearance, 0)
	require.NoError(t, err)
	require.Len(t, customs, 1)
	assert.Equal(t, "customs@example.com", customs[0].Email)

	noLog := service.NewNotificationService(
		newDeliveryService(f.view, nil), f.view, query.NewBuilder(""), "employees",
		nil, f.mailer, nil, nil, nil, config.NotificationsConfig{}, nil, zap.NewNop(),
	)
	_, _, err = noLog.Log(ctx, repository.NotificationLogFilter{}, 1, 20)
	assert.ErrorIs(t, err, service.ErrLogUnavailable)
}
