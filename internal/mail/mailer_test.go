package mail_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/prostech/outbound-api/internal/config"
	"github.com/prostech/outbound-api/internal/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type captured struct {
	from string
	to   []string
	raw  string
}

func capture(c *captured, err error) gomail.SendFunc {
	return func(from string, to []string, msg io.WriterTo) error {
		var buf bytes.Buffer
		if _, werr := msg.WriteTo(&buf); werr != nil {
			return werr
		}
		c.from, c.to, c.raw = from, to, buf.String()
		return err
	}
}

func testMessage() *mail.Message {
	return &mail.Message{
		To:      []string{"lan@example.com"},
		Cc:      []string{"manager@example.com"},
		Subject: "Delivery Schedule - Lan",
		HTML:    "<p>hello</p>",
		Attachments: []mail.Attachment{
			{Filename: "delivery_schedule_lan_20240311.ics", ContentType: "text/calendar; method=REQUEST", Data: []byte("BEGIN:VCALENDAR")},
		},
	}
}

func TestSMTPMailer_Send(t *testing.T) {
	var got captured
	m := mail.NewMailerWithSender(capture(&got, nil), "outbound@example.com", "Outbound Logistics", zap.NewNop())

	require.NoError(t, m.Send(context.Background(), testMessage()))

	assert.Equal(t, "outbound@example.com", got.from)
	assert.ElementsMatch(t, []string{"lan@example.com", "manager@example.com"}, got.to)
	assert.Contains(t, got.raw, "Subject: Delivery Schedule - Lan")
	assert.Contains(t, got.raw, `"Outbound Logistics" <outbound@example.com>`)
	assert.Contains(t, got.raw, "delivery_schedule_lan_20240311.ics")
	assert.Contains(t, got.raw, "text/calendar; method=REQUEST")
}

func TestSMTPMailer_SendError(t *testing.T) {
	var got captured
	m := mail.NewMailerWithSender(capture(&got, errors.New("relay refused")), "outbound@example.com", "", zap.NewNop())

	err := m.Send(context.Background(), testMessage())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay refused")
}

func TestSMTPMailer_RejectsEmptyRecipients(t *testing.T) {
	m := mail.NewMailerWithSender(capture(&captured{}, nil), "outbound@example.com", "", zap.NewNop())

	err := m.Send(context.Background(), &mail.Message{Subject: "x"})

	assert.ErrorIs(t, err, mail.ErrNoRecipients)
}

func TestSMTPMailer_CancelledContext(t *testing.T) {
	m := mail.NewMailerWithSender(capture(&captured{}, nil), "outbound@example.com", "", zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.Send(ctx, testMessage()), context.Canceled)
}

func TestNew_FallsBackToLogMailer(t *testing.T) {
	cfg := &config.Config{}
	m := mail.New(cfg, zap.NewNop())
	assert.IsType(t, &mail.LogMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), testMessage()))

	cfg.SMTP.Host = "smtp.example.com"
	cfg.SMTP.Port = 587
	assert.IsType(t, &mail.SMTPMailer{}, mail.New(cfg, zap.NewNop()))
}
