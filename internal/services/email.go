package services

import (
	"context"
	"fmt"
	"log/slog"

	"confcentral/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService creates the EmailService sending transactional emails.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

func (s *emailService) SendConferenceConfirmation(ctx context.Context, data *domain.ConferenceConfirmationEmailData) error {
	subject, html, text, err := s.renderer.Render("conference_confirmation", data)
	if err != nil {
		return fmt.Errorf("render conference confirmation: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, html, text); err != nil {
		return fmt.Errorf("send conference confirmation: %w", err)
	}
	s.logger.Debug("conference confirmation sent", "to", data.Email)
	return nil
}

func (s *emailService) SendSessionConfirmation(ctx context.Context, data *domain.SessionConfirmationEmailData) error {
	subject, html, text, err := s.renderer.Render("session_confirmation", data)
	if err != nil {
		return fmt.Errorf("render session confirmation: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, html, text); err != nil {
		return fmt.Errorf("send session confirmation: %w", err)
	}
	s.logger.Debug("session confirmation sent", "to", data.Email)
	return nil
}
