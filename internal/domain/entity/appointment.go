package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusApproved  AppointmentStatus = "approved"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a patient appointment request and its lifecycle.
// Date is the calendar day, Time the HH:MM wall-clock start at the facility.
type Appointment struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	Doctor    string            `gorm:"type:varchar(255);not null" json:"doctor"`
	Facility  string            `gorm:"type:varchar(255);not null;index" json:"facility"`
	Date      time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time      string            `gorm:"type:varchar(5);not null" json:"time"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Phone     string            `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Fee       decimal.Decimal   `gorm:"type:decimal(10,2);not null;default:0" json:"fee"`
	Emergency bool              `gorm:"not null;default:false" json:"emergency"`
	SlotID    *int64            `gorm:"index" json:"slot_id,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   *User      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Slot      *Slot      `gorm:"foreignKey:SlotID" json:"slot,omitempty"`
	Reminders []Reminder `gorm:"foreignKey:AppointmentID" json:"reminders,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// CanTransition reports whether moving to the target status is legal:
// pending -> approved | cancelled, pending/approved -> completed is limited
// to approved, approved -> cancelled. Terminal states never transition.
func (a *Appointment) CanTransition(target AppointmentStatus) bool {
	switch a.Status {
	case AppointmentStatusPending:
		return target == AppointmentStatusApproved || target == AppointmentStatusCancelled
	case AppointmentStatusApproved:
		return target == AppointmentStatusCancelled || target == AppointmentStatusCompleted
	default:
		return false
	}
}

// IsPending checks if the appointment is awaiting admin review
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// StartsAt combines Date and Time into a single timestamp.
func (a *Appointment) StartsAt() time.Time {
	t, err := time.Parse("15:04", a.Time)
	if err != nil {
		return a.Date
	}
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), t.Hour(), t.Minute(), 0, 0, a.Date.Location())
}
