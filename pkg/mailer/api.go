package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/YashPro8158/credifybackend/config"
	"github.com/go-resty/resty/v2"
)

// APISender delivers notifications through the Brevo transactional API
// (POST /v3/smtp/email). Attachments are base64-encoded inline.
type APISender struct {
	client   *resty.Client
	apiKey   string
	from     string
	fromName string
	to       string
}

// Brevo request payload shapes
type apiAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type apiAttachment struct {
	Name    string `json:"name"`
	Content string `json:"content"` // base64
}

type apiSendRequest struct {
	Sender      apiAddress      `json:"sender"`
	To          []apiAddress    `json:"to"`
	ReplyTo     *apiAddress     `json:"replyTo,omitempty"`
	Subject     string          `json:"subject"`
	HTMLContent string          `json:"htmlContent"`
	Attachment  []apiAttachment `json:"attachment,omitempty"`
}

// NewAPISender creates the HTTP transport from the loaded configuration
func NewAPISender(cfg *config.Config) *APISender {
	client := resty.New().
		SetBaseURL(cfg.BrevoAPIURL).
		SetTimeout(15*time.Second).
		SetHeader("Content-Type", "application/json")

	return &APISender{
		client:   client,
		apiKey:   cfg.BrevoAPIKey,
		from:     cfg.MailFrom,
		fromName: cfg.MailFromName,
		to:       cfg.MailTo,
	}
}

// Send posts the message to the provider endpoint
func (s *APISender) Send(ctx context.Context, msg *Message) error {
	req := apiSendRequest{
		Sender:      apiAddress{Name: s.fromName, Email: s.from},
		To:          []apiAddress{{Email: s.to}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
	}
	if msg.ReplyTo != "" {
		req.ReplyTo = &apiAddress{Email: msg.ReplyTo}
	}
	for _, att := range msg.Attachments {
		req.Attachment = append(req.Attachment, apiAttachment{
			Name:    att.Filename,
			Content: base64.StdEncoding.EncodeToString(att.Data),
		})
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("api-key", s.apiKey).
		SetBody(req).
		Post("/v3/smtp/email")
	if err != nil {
		return fmt.Errorf("transactional email request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("transactional email provider returned %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}

// IsConfigured checks whether the provider API key is present
func (s *APISender) IsConfigured() bool {
	return s.apiKey != ""
}
