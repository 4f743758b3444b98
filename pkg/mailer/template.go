package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// ContactEmailData holds the data for contact form notifications
type ContactEmailData struct {
	Name     string
	Email    string
	LoanType string
	Message  string
}

// CareerEmailData holds the data for career application notifications
type CareerEmailData struct {
	FullName       string
	Email          string
	Phone          string
	Role           string
	Experience     string
	Message        string
	ResumeFilename string
}

// LoanEmailData holds the data for loan application notifications.
// Optional fields are omitted from the body when empty.
type LoanEmailData struct {
	ReferenceID string
	LoanType    string
	FullName    string
	Mobile      string
	Email       string
	DOB         string
	Income      string
	Employment  string
	LoanAmount  string
	City        string
}

// contactEmailTemplate is the HTML template for contact form notifications
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.Name}} ({{.Email}})</div>
            </div>
            <div class="field">
                <div class="label">Loan Type:</div>
                <div class="value">{{.LoanType}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the Credify website contact form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

// careerEmailTemplate is the HTML template for career application notifications
const careerEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Career Application</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Career Application</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Applicant:</div>
                <div class="value">{{.FullName}} ({{.Email}})</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Role Applied For:</div>
                <div class="value">{{.Role}}</div>
            </div>
            <div class="field">
                <div class="label">Experience:</div>
                <div class="value">{{.Experience}}</div>
            </div>
            {{if .Message}}
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
            {{end}}
            {{if .ResumeFilename}}
            <div class="field">
                <div class="label">Resume:</div>
                <div class="value">{{.ResumeFilename}} (attached)</div>
            </div>
            {{end}}
        </div>
        <div class="footer">
            <p>This email was sent from the Credify careers page.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

// loanEmailTemplate is the HTML template for loan application notifications
const loanEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Loan Application</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Loan Application</h1>
            <p>Reference: {{.ReferenceID}}</p>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Applicant:</div>
                <div class="value">{{.FullName}} ({{.Email}})</div>
            </div>
            <div class="field">
                <div class="label">Mobile:</div>
                <div class="value">{{.Mobile}}</div>
            </div>
            <div class="field">
                <div class="label">Loan Type:</div>
                <div class="value">{{.LoanType}}</div>
            </div>
            {{if .LoanAmount}}
            <div class="field">
                <div class="label">Loan Amount:</div>
                <div class="value">{{.LoanAmount}}</div>
            </div>
            {{end}}
            {{if .DOB}}
            <div class="field">
                <div class="label">Date of Birth:</div>
                <div class="value">{{.DOB}}</div>
            </div>
            {{end}}
            {{if .Income}}
            <div class="field">
                <div class="label">Monthly Income:</div>
                <div class="value">{{.Income}}</div>
            </div>
            {{end}}
            {{if .Employment}}
            <div class="field">
                <div class="label">Employment:</div>
                <div class="value">{{.Employment}}</div>
            </div>
            {{end}}
            {{if .City}}
            <div class="field">
                <div class="label">City:</div>
                <div class="value">{{.City}}</div>
            </div>
            {{end}}
        </div>
        <div class="footer">
            <p>This email was sent from the Credify loan application form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

var (
	contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))
	careerTmpl  = template.Must(template.New("career").Parse(careerEmailTemplate))
	loanTmpl    = template.Must(template.New("loan").Parse(loanEmailTemplate))
)

// NewContactMessage builds the notification for a contact form submission
func NewContactMessage(data ContactEmailData) (*Message, error) {
	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute contact email template: %w", err)
	}

	return &Message{
		Subject: fmt.Sprintf("Contact Form: %s enquiry from %s", data.LoanType, data.Name),
		ReplyTo: data.Email,
		HTML:    body.String(),
	}, nil
}

// NewCareerMessage builds the notification for a career application.
// The resume attachment, when present, is added by the caller.
func NewCareerMessage(data CareerEmailData) (*Message, error) {
	var body bytes.Buffer
	if err := careerTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute career email template: %w", err)
	}

	return &Message{
		Subject: fmt.Sprintf("Career Application: %s - %s", data.Role, data.FullName),
		ReplyTo: data.Email,
		HTML:    body.String(),
	}, nil
}

// NewLoanMessage builds the notification for a loan application
func NewLoanMessage(data LoanEmailData) (*Message, error) {
	var body bytes.Buffer
	if err := loanTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute loan email template: %w", err)
	}

	return &Message{
		Subject: fmt.Sprintf("Loan Application %s: %s (%s)", data.ReferenceID, data.FullName, data.LoanType),
		ReplyTo: data.Email,
		HTML:    body.String(),
	}, nil
}
