package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateReminderRequest struct {
	Message string `json:"message" validate:"omitempty,min=1"`
	SendAt  string `json:"send_at" validate:"omitempty"` // RFC3339
	Phone   string `json:"phone" validate:"omitempty,min=9,max=20"`
}

// Response DTOs

type ReminderResponse struct {
	ID            uuid.UUID `json:"id"`
	Recipient     uuid.UUID `json:"recipient"`
	RecipientName string    `json:"recipient_name,omitempty"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	Message       string    `json:"message"`
	SendAt        time.Time `json:"send_at"`
	Sent          bool      `json:"sent"`
	Type          string    `json:"type"`
	Phone         string    `json:"phone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Total     int                `json:"total"`
}

type SendReminderResponse struct {
	ID          uuid.UUID `json:"id"`
	Phone       string    `json:"phone"`
	Provider    string    `json:"provider"`
	ProviderRef string    `json:"provider_ref"`
}
