package entity

import (
	"time"

	"github.com/google/uuid"
)

// Slot is a clinician-declared unit of bookable capacity at a
// facility/date/time. Uniqueness per (clinician, facility, date, time) is
// enforced by a database unique index.
type Slot struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClinicianID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_slots_capacity" json:"clinician_id"`
	Facility    string    `gorm:"type:varchar(255);not null;index;uniqueIndex:idx_slots_capacity" json:"facility"`
	Date        time.Time `gorm:"type:date;not null;index;uniqueIndex:idx_slots_capacity" json:"date"`
	Time        string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_slots_capacity" json:"time"`
	Available   bool      `gorm:"not null;default:true;index" json:"available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinician *User `gorm:"foreignKey:ClinicianID" json:"clinician,omitempty"`
}

func (Slot) TableName() string {
	return "slots"
}

// SlotFilter is a domain-level filter for querying slots.
// Used by the repository layer to avoid coupling with delivery DTOs.
type SlotFilter struct {
	ClinicianID   *uuid.UUID
	Facility      string
	Date          string // Format: YYYY-MM-DD
	AvailableOnly bool
}
