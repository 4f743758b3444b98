package mailer

import "context"

// Attachment is an in-memory file included with a notification
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a fully-prepared notification ready for delivery
type Message struct {
	Subject     string
	ReplyTo     string
	HTML        string
	Attachments []Attachment
}

// Sender delivers a prepared Message through a concrete transport.
// The SMTP relay and the transactional HTTP API are interchangeable
// behind this interface and must produce equivalent delivered content.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
