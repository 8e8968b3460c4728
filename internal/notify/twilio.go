package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gym-booking/pkg/utils"

	"go.uber.org/zap"
)

// TwilioSender delivers reminders over WhatsApp through the Twilio
// Messages API. One form-encoded POST per message; no SDK needed.
type TwilioSender struct {
	config utils.TwilioConfig
	client *http.Client
	log    *zap.Logger
}

func NewTwilioSender(config utils.TwilioConfig, log *zap.Logger) *TwilioSender {
	return &TwilioSender{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log.With(zap.String("sender", "twilio")),
	}
}

func (s *TwilioSender) Send(ctx context.Context, destination, message string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimRight(s.config.BaseURL, "/"), s.config.AccountSID)

	form := url.Values{}
	form.Set("From", s.config.WhatsAppFrom)
	form.Set("To", "whatsapp:"+destination)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build twilio request: %w", err)
	}
	req.SetBasicAuth(s.config.AccountSID, s.config.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("Twilio request failed",
			zap.Error(err),
			zap.String("destination", destination),
		)
		return fmt.Errorf("send whatsapp to %s: %w", destination, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.log.Error("Twilio rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("destination", destination),
			zap.ByteString("body", body),
		)
		return fmt.Errorf("twilio rejected message to %s: status %d", destination, resp.StatusCode)
	}

	s.log.Info("Reminder delivered",
		zap.String("destination", destination),
	)
	return nil
}
