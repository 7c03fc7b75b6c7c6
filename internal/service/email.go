package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// EmailService sends reminder digests to a single configured inbox.
// Without a recipient it does nothing; in development it only logs.
type EmailService struct {
	client    *resend.Client
	fromEmail string
	toEmail   string
	isDev     bool
	appName   string
}

func NewEmailService(apiKey, fromEmail, toEmail, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		isDev:     isDev,
		appName:   appName,
	}
}

func (s *EmailService) SendReminderDigest(ctx context.Context, reminders []Reminder) error {
	if s.toEmail == "" || len(reminders) == 0 {
		return nil
	}

	subject, body := reminderDigestEmailTemplate(reminders, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "reminder_digest", "to", s.toEmail, "subject", subject, "reminders", len(reminders))
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.toEmail},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "reminder_digest", "to", s.toEmail, "reminders", len(reminders))
	}
	return err
}
