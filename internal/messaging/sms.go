// Package messaging wraps the outbound providers: SMS (Twilio), email (Resend)
// and the notification event stream (Kafka).
package messaging

import (
	"context"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"contractapi/internal/config"
)

// SMS is a single text message. To must already be E.164.
type SMS struct {
	To   string
	Body string
}

// SMSSender delivers text messages.
type SMSSender interface {
	Send(ctx context.Context, s SMS) error
}

// TwilioSender sends SMS through the Twilio REST API.
type TwilioSender struct {
	fromNumber string
	client     *twilio.RestClient
}

func NewTwilioSender(accountSID, authToken, fromNumber string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{fromNumber: fromNumber, client: client}
}

func (t *TwilioSender) Send(_ context.Context, s SMS) error {
	_, err := t.client.Api.CreateMessage(messageParams(t.fromNumber, s))
	return err
}

func messageParams(from string, s SMS) *api.CreateMessageParams {
	params := &api.CreateMessageParams{}
	params.SetBody(s.Body)
	params.SetFrom(from)
	params.SetTo(s.To)
	return params
}

// LogSMSSender only logs. Used when Twilio is not configured.
type LogSMSSender struct {
	log *zap.Logger
}

func NewLogSMSSender(log *zap.Logger) *LogSMSSender {
	return &LogSMSSender{log: log}
}

func (l *LogSMSSender) Send(_ context.Context, s SMS) error {
	l.log.Info("sms sent (dev mode)", zap.String("to", s.To), zap.Int("length", len(s.Body)))
	return nil
}

// NewSMSSender picks Twilio when credentials are present.
func NewSMSSender(cfg config.TwilioConfig, log *zap.Logger) SMSSender {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return NewLogSMSSender(log)
	}
	return NewTwilioSender(cfg.AccountSID, cfg.AuthToken, cfg.FromNumber)
}
