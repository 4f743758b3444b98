package mailer

import (
	"context"
	"fmt"
	"io"

	"github.com/YashPro8158/credifybackend/config"
	"gopkg.in/gomail.v2"
)

// SMTPSender delivers notifications through an authenticated SMTP relay
type SMTPSender struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	to       string
}

// NewSMTPSender creates the SMTP transport from the loaded configuration
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	// Implicit SSL (port 465 style) when SMTP_SECURE is set; otherwise
	// gomail negotiates STARTTLS on its own.
	d.SSL = cfg.SMTPSecure

	return &SMTPSender{
		dialer:   d,
		from:     cfg.MailFrom,
		fromName: cfg.MailFromName,
		to:       cfg.MailTo,
	}
}

// Send delivers the message over SMTP, attaching any binary payloads directly
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", s.to)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	for _, att := range msg.Attachments {
		att := att
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(att.Data)
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		m.Attach(att.Filename, settings...)
	}

	// gomail has no context support; honour cancellation before dialing
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp delivery failed: %w", err)
	}

	return nil
}

// IsConfigured checks whether the relay has usable credentials
func (s *SMTPSender) IsConfigured() bool {
	return s.dialer.Host != "" && s.dialer.Username != "" && s.dialer.Password != ""
}
