package converter

import (
	"ovacare/internal/delivery/dto"
	"ovacare/internal/domain/entity"
)

// ReminderToResponse converts a Reminder entity to its DTO
func ReminderToResponse(reminder *entity.Reminder) *dto.ReminderResponse {
	if reminder == nil {
		return nil
	}

	response := &dto.ReminderResponse{
		ID:            reminder.ID,
		Recipient:     reminder.Recipient,
		AppointmentID: reminder.AppointmentID,
		Message:       reminder.Message,
		SendAt:        reminder.SendAt,
		Sent:          reminder.Sent,
		Type:          string(reminder.Type),
		Phone:         reminder.Phone,
		CreatedAt:     reminder.CreatedAt,
	}

	if reminder.User != nil {
		response.RecipientName = reminder.User.FullName
	}

	return response
}

// RemindersToResponses converts a slice of Reminder entities
func RemindersToResponses(reminders []entity.Reminder) []dto.ReminderResponse {
	responses := make([]dto.ReminderResponse, len(reminders))
	for i, reminder := range reminders {
		resp := ReminderToResponse(&reminder)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
