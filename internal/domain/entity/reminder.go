package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderType distinguishes immediate status notices from scheduled
// upcoming-appointment reminders.
type ReminderType string

const (
	ReminderTypeStatus   ReminderType = "status"
	ReminderTypeUpcoming ReminderType = "upcoming"
)

// UpcomingReminderLead is how long before the appointment start the
// upcoming reminder becomes due.
const UpcomingReminderLead = 24 * time.Hour

// Reminder is an SMS notification queued for a patient. Rows are created as
// side effects of appointment transitions and deleted with their appointment
// (FK cascade), so no orphans survive an appointment delete.
type Reminder struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Recipient     uuid.UUID    `gorm:"type:uuid;not null;index" json:"recipient"`
	AppointmentID uuid.UUID    `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Message       string       `gorm:"type:text;not null" json:"message"`
	SendAt        time.Time    `gorm:"not null;index" json:"send_at"`
	Sent          bool         `gorm:"not null;default:false;index" json:"sent"`
	Type          ReminderType `gorm:"type:varchar(10);not null" json:"type"`
	Phone         string       `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:Recipient" json:"user,omitempty"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// IsDue reports whether the reminder should be dispatched at the given time.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.Sent && !r.SendAt.After(now)
}
