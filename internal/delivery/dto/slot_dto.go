package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSlotRequest struct {
	Facility string `json:"facility" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
}

// Response DTOs

type SlotResponse struct {
	ID            int64     `json:"id"`
	ClinicianID   uuid.UUID `json:"clinician_id"`
	ClinicianName string    `json:"clinician_name,omitempty"`
	Facility      string    `json:"facility"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// DoctorResponse feeds the booking wizard's clinician picker.
type DoctorResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}
