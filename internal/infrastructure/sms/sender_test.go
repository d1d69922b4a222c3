package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ovacare/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwilioSender_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "token", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+254712345678", r.PostForm.Get("To"))
		assert.Equal(t, "+15550001111", r.PostForm.Get("From"))
		assert.Equal(t, "Your appointment is approved", r.PostForm.Get("Body"))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"sid": "SM42"})
	}))
	defer server.Close()

	sender := NewTwilioSender(config.SMSConfig{
		TwilioAccountSID: "AC123",
		TwilioAuthToken:  "token",
		TwilioFromNumber: "+15550001111",
		TwilioBaseURL:    server.URL,
	})

	ref, err := sender.Send(context.Background(), "+254712345678", "Your appointment is approved")

	require.NoError(t, err)
	assert.Equal(t, "SM42", ref)
}

func TestTwilioSender_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid number"})
	}))
	defer server.Close()

	sender := NewTwilioSender(config.SMSConfig{
		TwilioAccountSID: "AC123",
		TwilioAuthToken:  "token",
		TwilioBaseURL:    server.URL,
	})

	_, err := sender.Send(context.Background(), "bad", "msg")

	assert.ErrorContains(t, err, "invalid number")
}

func TestAfricasTalkingSender_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version1/messaging", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("apiKey"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ovacare", r.PostForm.Get("username"))
		assert.Equal(t, "+254712345678", r.PostForm.Get("to"))

		json.NewEncoder(w).Encode(map[string]any{
			"SMSMessageData": map[string]any{
				"Recipients": []map[string]string{
					{"messageId": "ATXid_1", "status": "Success"},
				},
			},
		})
	}))
	defer server.Close()

	sender := NewAfricasTalkingSender(config.SMSConfig{
		ATAPIKey:   "key",
		ATUsername: "ovacare",
		ATBaseURL:  server.URL,
	})

	ref, err := sender.Send(context.Background(), "+254712345678", "Reminder")

	require.NoError(t, err)
	assert.Equal(t, "ATXid_1", ref)
}

func TestAfricasTalkingSender_RejectedRecipient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"SMSMessageData": map[string]any{
				"Recipients": []map[string]string{
					{"messageId": "", "status": "InvalidPhoneNumber"},
				},
			},
		})
	}))
	defer server.Close()

	sender := NewAfricasTalkingSender(config.SMSConfig{
		ATAPIKey:   "key",
		ATUsername: "ovacare",
		ATBaseURL:  server.URL,
	})

	_, err := sender.Send(context.Background(), "bad", "Reminder")

	assert.ErrorContains(t, err, "InvalidPhoneNumber")
}

func TestFromConfig(t *testing.T) {
	assert.Equal(t, "twilio", FromConfig(config.SMSConfig{Provider: "twilio"}).ProviderID())
	assert.Equal(t, "africastalking", FromConfig(config.SMSConfig{Provider: "africastalking"}).ProviderID())
	assert.Equal(t, "noop", FromConfig(config.SMSConfig{}).ProviderID())
}

func TestNoopSender(t *testing.T) {
	ref, err := NewNoopSender().Send(context.Background(), "+254700000000", "hello")
	assert.NoError(t, err)
	assert.Equal(t, "noop", ref)
}
