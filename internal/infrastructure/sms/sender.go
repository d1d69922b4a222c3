// Package sms provides the outbound SMS gateway integrations. Two providers
// exist side by side behind one interface; config selects which is live.
package sms

import (
	"context"
	"net/http"
	"time"

	"ovacare/config"
)

// Sender delivers one SMS. The returned reference is the provider's message
// identifier (Twilio SID or Africa's Talking message ID).
type Sender interface {
	Send(ctx context.Context, to, message string) (string, error)
	ProviderID() string
}

// FromConfig builds the configured sender. Unknown providers fall back to
// the no-op sender so a missing gateway never blocks the rest of the portal.
func FromConfig(cfg config.SMSConfig) Sender {
	switch cfg.Provider {
	case "twilio":
		return NewTwilioSender(cfg)
	case "africastalking":
		return NewAfricasTalkingSender(cfg)
	default:
		return NewNoopSender()
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
	}
}

// NoopSender accepts every message without delivering anything. Used in
// development and as the fallback when no gateway is configured.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) ProviderID() string {
	return "noop"
}

func (s *NoopSender) Send(_ context.Context, _, _ string) (string, error) {
	return "noop", nil
}
