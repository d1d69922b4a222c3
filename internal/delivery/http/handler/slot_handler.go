package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ovacare/internal/delivery/dto"
	"ovacare/internal/domain/entity"
	"ovacare/internal/usecase"
	"ovacare/pkg/response"
	"ovacare/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SlotHandler struct {
	slotUsecase usecase.SlotUsecase
	validator   *validator.CustomValidator
}

func NewSlotHandler(slotUsecase usecase.SlotUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

func (h *SlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.slotUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSlotAlreadyExists:
			response.Conflict(w, "Slot already exists for this facility, date and time")
		default:
			response.InternalServerError(w, "Failed to create slot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slot created successfully", slot)
}

func (h *SlotHandler) GetMySlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotUsecase.GetMySlots(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *SlotHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotUsecase.GetAll(r.Context(), h.filterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *SlotHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotUsecase.GetAvailable(r.Context(), h.filterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get available slots")
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

func (h *SlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	if err := h.slotUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot not found")
		case usecase.ErrSlotNotOwned:
			response.Forbidden(w, "Slot does not belong to you")
		case usecase.ErrSlotBooked:
			response.Conflict(w, "Slot has been booked and cannot be deleted")
		default:
			response.InternalServerError(w, "Failed to delete slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot deleted successfully", nil)
}

func (h *SlotHandler) Facilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.slotUsecase.Facilities(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get facilities")
		return
	}

	response.Success(w, http.StatusOK, "Facilities retrieved successfully", facilities)
}

func (h *SlotHandler) Doctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.slotUsecase.Doctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *SlotHandler) filterFromQuery(r *http.Request) *entity.SlotFilter {
	query := r.URL.Query()
	filter := &entity.SlotFilter{
		Facility: query.Get("facility"),
		Date:     query.Get("date"),
	}

	if raw := query.Get("clinician_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.ClinicianID = &id
		}
	}

	return filter
}
