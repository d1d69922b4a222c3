package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report is free-form metadata pointing at an externally hosted file
// produced for a patient by a clinician.
type Report struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName   string    `gorm:"type:varchar(255)" json:"patient_name,omitempty"`
	ClinicianID   uuid.UUID `gorm:"type:uuid;not null;index" json:"clinician_id"`
	ClinicianName string    `gorm:"type:varchar(255)" json:"clinician_name,omitempty"`
	Type          string    `gorm:"type:varchar(100);not null" json:"type"`
	Status        string    `gorm:"type:varchar(50);not null" json:"status"`
	FileURL       string    `gorm:"type:text" json:"file_url,omitempty"`
	Date          time.Time `gorm:"not null" json:"date"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient   *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Clinician *User `gorm:"foreignKey:ClinicianID" json:"clinician,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}
