package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BookAppointmentRequest struct {
	Doctor    string          `json:"doctor" validate:"required"`
	Facility  string          `json:"facility" validate:"required"`
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string          `json:"time" validate:"required,datetime=15:04"`
	Phone     string          `json:"phone" validate:"omitempty,min=9,max=20"`
	Fee       decimal.Decimal `json:"fee"`
	Emergency bool            `json:"emergency"`
	SlotID    *int64          `json:"slot_id" validate:"omitempty,min=1"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID       `json:"id"`
	PatientID   uuid.UUID       `json:"patient_id"`
	PatientName string          `json:"patient_name,omitempty"`
	Doctor      string          `json:"doctor"`
	Facility    string          `json:"facility"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Status      string          `json:"status"`
	Phone       string          `json:"phone,omitempty"`
	Fee         decimal.Decimal `json:"fee"`
	Emergency   bool            `json:"emergency"`
	SlotID      *int64          `json:"slot_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// AppointmentStatsResponse backs the admin dashboard cards.
type AppointmentStatsResponse struct {
	Pending       int64 `json:"pending"`
	Approved      int64 `json:"approved"`
	Cancelled     int64 `json:"cancelled"`
	Completed     int64 `json:"completed"`
	Total         int64 `json:"total"`
	CreatedLast30 int64 `json:"created_last_30_days"`
}
