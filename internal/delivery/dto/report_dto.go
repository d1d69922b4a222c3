package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReportRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	Type      string    `json:"type" validate:"required"`
	Status    string    `json:"status" validate:"required"`
	FileURL   string    `json:"file_url" validate:"omitempty,url"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
}

type CreatePrintRequest struct {
	PatientRef  string `json:"patient_ref" validate:"required"`
	PatientName string `json:"patient_name" validate:"omitempty"`
}

// Response DTOs

type ReportResponse struct {
	ID            uuid.UUID `json:"id"`
	PatientID     uuid.UUID `json:"patient_id"`
	PatientName   string    `json:"patient_name,omitempty"`
	ClinicianID   uuid.UUID `json:"clinician_id"`
	ClinicianName string    `json:"clinician_name,omitempty"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	FileURL       string    `json:"file_url,omitempty"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}

type PrintResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientRef  string    `json:"patient_ref"`
	PatientName string    `json:"patient_name,omitempty"`
	PrintedBy   string    `json:"printed_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// PrintablePatientResponse is one entry in the report form's patient picker,
// derived from the latest print per patient reference.
type PrintablePatientResponse struct {
	PatientRef    string    `json:"patient_ref"`
	PatientName   string    `json:"patient_name,omitempty"`
	LastPrintedAt time.Time `json:"last_printed_at"`
}
