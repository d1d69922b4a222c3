package converter

import (
	"ovacare/internal/delivery/dto"
	"ovacare/internal/domain/entity"
)

// SlotToResponse converts a Slot entity to its DTO
func SlotToResponse(slot *entity.Slot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	response := &dto.SlotResponse{
		ID:          slot.ID,
		ClinicianID: slot.ClinicianID,
		Facility:    slot.Facility,
		Date:        slot.Date.Format("2006-01-02"),
		Time:        slot.Time,
		Available:   slot.Available,
		CreatedAt:   slot.CreatedAt,
	}

	if slot.Clinician != nil {
		response.ClinicianName = slot.Clinician.FullName
	}

	return response
}

// SlotsToResponses converts a slice of Slot entities
func SlotsToResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		resp := SlotToResponse(&slot)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
