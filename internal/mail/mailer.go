// Package mail delivers rendered notifications over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prostech/outbound-api/internal/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// ErrNoRecipients is returned for a message without any To address
var ErrNoRecipients = errors.New("mail: no recipients")

// Attachment is a named file carried by a message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is an HTML email with optional attachments.
type Message struct {
	To          []string
	Cc          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer sends messages.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// SMTPMailer sends through an SMTP relay.
type SMTPMailer struct {
	sender   gomail.Sender
	dialer   *gomail.Dialer
	from     string
	fromName string
	logger   *zap.Logger
}

// NewSMTPMailer creates a mailer dialing cfg for every send.
func NewSMTPMailer(cfg *config.SMTPConfig, from, fromName string, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

// NewMailerWithSender creates a mailer that hands messages to sender instead
// of dialing SMTP.
func NewMailerWithSender(sender gomail.Sender, from, fromName string, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{sender: sender, from: from, fromName: fromName, logger: logger}
}

// Build converts msg into a MIME message.
func (m *SMTPMailer) Build(msg *Message) (*gomail.Message, error) {
	if msg == nil || len(msg.To) == 0 {
		return nil, ErrNoRecipients
	}
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.from, m.fromName)
	gm.SetHeader("To", msg.To...)
	if len(msg.Cc) > 0 {
		gm.SetHeader("Cc", msg.Cc...)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	for _, a := range msg.Attachments {
		data := a.Data
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {a.ContentType},
			}))
		}
		gm.Attach(a.Filename, settings...)
	}
	return gm, nil
}

// Send builds and delivers msg.
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gm, err := m.Build(msg)
	if err != nil {
		return err
	}

	if m.sender != nil {
		err = gomail.Send(m.sender, gm)
	} else {
		err = m.dialer.DialAndSend(gm)
	}
	if err != nil {
		return fmt.Errorf("mail: send to %v: %w", msg.To, err)
	}

	m.logger.Info("Email sent",
		zap.Strings("to", msg.To),
		zap.Strings("cc", msg.Cc),
		zap.String("subject", msg.Subject),
		zap.Int("attachments", len(msg.Attachments)),
	)
	return nil
}

// LogMailer only logs messages. It stands in when no SMTP host is configured.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a mailer that never sends
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg == nil || len(msg.To) == 0 {
		return ErrNoRecipients
	}
	m.logger.Warn("SMTP not configured, email not sent",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}

// New returns an SMTP mailer, or a LogMailer when cfg has no host.
func New(cfg *config.Config, logger *zap.Logger) Mailer {
	if cfg.SMTP.Host == "" {
		return NewLogMailer(logger)
	}
	return NewSMTPMailer(&cfg.SMTP, cfg.Notifications.Sender, cfg.Notifications.SenderName, logger)
}
