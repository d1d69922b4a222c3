package entity

import (
	"time"

	"github.com/google/uuid"
)

// Print records a clinician printing a risk summary for a spreadsheet
// patient. PatientRef is the sheet's "Patient ID" column, not a users row;
// sheet patients exist only in the published CSV. The report form builds its
// patient list from the latest print per PatientRef.
type Print struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientRef  string    `gorm:"type:varchar(100);not null;index" json:"patient_ref"`
	PatientName string    `gorm:"type:varchar(255)" json:"patient_name,omitempty"`
	ClinicianID uuid.UUID `gorm:"type:uuid;not null;index" json:"clinician_id"`
	PrintedBy   string    `gorm:"type:varchar(255);not null" json:"printed_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Clinician *User `gorm:"foreignKey:ClinicianID" json:"clinician,omitempty"`
}

func (Print) TableName() string {
	return "prints"
}
