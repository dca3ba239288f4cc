// internal/services/sms_service.go
package services

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/config"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

// SMSSender delivers short alerts for high-value events (payment released).
// Delivery is best-effort like the live websocket push.
type SMSSender interface {
	SendAlert(ctx context.Context, phone, body string) error
}

type twilioSMSSender struct {
	client *twilio.RestClient
	cfg    *config.Config
}

func NewTwilioSMSSender(cfg *config.Config) SMSSender {
	return &twilioSMSSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		cfg: cfg,
	}
}

func (s *twilioSMSSender) SendAlert(ctx context.Context, phone, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.cfg.TwilioFromPhone)
	params.SetBody(body)

	_, sendErr := s.client.Api.CreateMessage(params)
	if sendErr != nil {
		utils.Logger.WithError(sendErr).Errorf("Failed to send SMS alert to %s via Twilio", phone)
		return fmt.Errorf("%w: failed to send sms via twilio: %v", utils.ErrExternalServiceFailure, sendErr)
	}
	return nil
}
