// internal/services/email_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/config"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

// EmailSender is the mail-transport seam: the registration flow fires it
// after staging/resend and rolls the staging entry back if the very first
// send fails.
type EmailSender interface {
	SendOTPEmail(ctx context.Context, email, name, code string) error
}

type sendgridEmailSender struct {
	client *sendgrid.Client
	cfg    *config.Config
}

func NewSendgridEmailSender(cfg *config.Config) EmailSender {
	return &sendgridEmailSender{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		cfg:    cfg,
	}
}

func (s *sendgridEmailSender) SendOTPEmail(ctx context.Context, email, name, code string) error {
	from := mail.NewEmail(s.cfg.OrganizationName, s.cfg.SendgridFromEmail)
	to := mail.NewEmail(name, email)
	subject := s.cfg.OrganizationName + " - Verification Code"
	plainTextContent := fmt.Sprintf("Your verification code is %s", code)
	htmlContent := fmt.Sprintf(
		transactionalEmailHTML,
		"Verification Code",
		fmt.Sprintf("Please use the following code to finish creating your account. This code will expire in %d minutes.", int(s.cfg.VerificationCodeExpiry.Minutes())),
		code,
		time.Now().Year(),
	)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	if s.cfg.SendgridSandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	_, sendErr := s.client.Send(message)
	if sendErr != nil {
		utils.Logger.WithError(sendErr).Errorf("Failed to send verification email to %s via SendGrid", email)
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, sendErr)
	}
	return nil
}
