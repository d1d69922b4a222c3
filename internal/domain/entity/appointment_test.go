package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCanTransition(t *testing.T) {
	tests := []struct {
		name   string
		from   AppointmentStatus
		to     AppointmentStatus
		expect bool
	}{
		{"pending to approved", AppointmentStatusPending, AppointmentStatusApproved, true},
		{"pending to cancelled", AppointmentStatusPending, AppointmentStatusCancelled, true},
		{"pending to completed", AppointmentStatusPending, AppointmentStatusCompleted, false},
		{"approved to completed", AppointmentStatusApproved, AppointmentStatusCompleted, true},
		{"approved to cancelled", AppointmentStatusApproved, AppointmentStatusCancelled, true},
		{"approved to pending", AppointmentStatusApproved, AppointmentStatusPending, false},
		{"cancelled is terminal", AppointmentStatusCancelled, AppointmentStatusApproved, false},
		{"completed is terminal", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.expect, a.CanTransition(tt.to))
		})
	}
}

func TestAppointmentStartsAt(t *testing.T) {
	a := &Appointment{
		Date: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		Time: "14:30",
	}

	assert.Equal(t, time.Date(2026, time.September, 10, 14, 30, 0, 0, time.UTC), a.StartsAt())

	// Unparseable time falls back to midnight.
	a.Time = "afternoon"
	assert.Equal(t, a.Date, a.StartsAt())
}

func TestReminderIsDue(t *testing.T) {
	now := time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)

	due := &Reminder{SendAt: now.Add(-time.Minute)}
	assert.True(t, due.IsDue(now))

	exact := &Reminder{SendAt: now}
	assert.True(t, exact.IsDue(now))

	future := &Reminder{SendAt: now.Add(time.Minute)}
	assert.False(t, future.IsDue(now))

	sent := &Reminder{SendAt: now.Add(-time.Hour), Sent: true}
	assert.False(t, sent.IsDue(now))
}
