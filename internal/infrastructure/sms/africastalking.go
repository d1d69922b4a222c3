package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"ovacare/config"
)

const atDefaultBaseURL = "https://api.africastalking.com"

// AfricasTalkingSender sends through the Africa's Talking bulk messaging API
// with api-key / username credentials.
type AfricasTalkingSender struct {
	apiKey   string
	username string
	baseURL  string
	http     *http.Client
}

func NewAfricasTalkingSender(cfg config.SMSConfig) *AfricasTalkingSender {
	baseURL := cfg.ATBaseURL
	if baseURL == "" {
		baseURL = atDefaultBaseURL
	}
	return &AfricasTalkingSender{
		apiKey:   cfg.ATAPIKey,
		username: cfg.ATUsername,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     newHTTPClient(),
	}
}

func (s *AfricasTalkingSender) ProviderID() string {
	return "africastalking"
}

func (s *AfricasTalkingSender) Send(ctx context.Context, to, message string) (string, error) {
	if s.apiKey == "" || s.username == "" {
		return "", fmt.Errorf("africastalking credentials not configured")
	}

	form := url.Values{}
	form.Set("username", s.username)
	form.Set("to", to)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/version1/messaging", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("apiKey", s.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("africastalking request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("africastalking error: status %d", resp.StatusCode)
	}

	var body struct {
		SMSMessageData struct {
			Recipients []struct {
				MessageID string `json:"messageId"`
				Status    string `json:"status"`
			} `json:"Recipients"`
		} `json:"SMSMessageData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("africastalking response: %w", err)
	}

	recipients := body.SMSMessageData.Recipients
	if len(recipients) == 0 {
		return "", fmt.Errorf("africastalking: no recipients accepted")
	}
	if recipients[0].Status != "Success" {
		return "", fmt.Errorf("africastalking: recipient status %s", recipients[0].Status)
	}

	return recipients[0].MessageID, nil
}
