package domain

import "context"

// Mailer sends a single email. Implementations may use SES or a no-op sender.
type Mailer interface {
	Send(to, subject, htmlBody, textBody string) error
}

// EmailTemplateRenderer renders a named email template with the given data,
// returning subject, html, and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ConferenceConfirmationEmailData is the data for the conference confirmation template.
type ConferenceConfirmationEmailData struct {
	Email          string
	ConferenceName string
	City           string
}

// SessionConfirmationEmailData is the data for the session confirmation template.
type SessionConfirmationEmailData struct {
	Email          string
	SessionName    string
	ConferenceName string
}

// EmailService sends the transactional emails of the system.
type EmailService interface {
	SendConferenceConfirmation(ctx context.Context, data *ConferenceConfirmationEmailData) error
	SendSessionConfirmation(ctx context.Context, data *SessionConfirmationEmailData) error
}
