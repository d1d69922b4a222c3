package converter

import (
	"ovacare/internal/delivery/dto"
	"ovacare/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		Doctor:    appointment.Doctor,
		Facility:  appointment.Facility,
		Date:      appointment.Date.Format("2006-01-02"),
		Time:      appointment.Time,
		Status:    string(appointment.Status),
		Phone:     appointment.Phone,
		Fee:       appointment.Fee,
		Emergency: appointment.Emergency,
		SlotID:    appointment.SlotID,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	if appointment.Patient != nil {
		response.PatientName = appointment.Patient.FullName
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
