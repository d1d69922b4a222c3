package handler

import (
	"encoding/json"
	"net/http"

	"ovacare/internal/delivery/dto"
	"ovacare/internal/usecase"
	"ovacare/pkg/response"
	"ovacare/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
	validator       *validator.CustomValidator
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase, validator *validator.CustomValidator) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
		validator:       validator,
	}
}

func (h *ReminderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminderUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reminders")
		return
	}

	response.Success(w, http.StatusOK, "Reminders retrieved successfully", reminders)
}

func (h *ReminderHandler) GetMyReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminderUsecase.GetMyReminders(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reminders")
		return
	}

	response.Success(w, http.StatusOK, "Reminders retrieved successfully", reminders)
}

func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reminder, err := h.reminderUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrReminderNotFound:
			response.NotFound(w, "Reminder not found")
		case usecase.ErrReminderAlreadySent:
			response.Conflict(w, "Reminder has already been sent")
		case usecase.ErrInvalidPhone:
			response.Error(w, http.StatusBadRequest, "Invalid phone number", nil)
		default:
			response.InternalServerError(w, "Failed to update reminder")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reminder updated successfully", reminder)
}

func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.reminderUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrReminderNotFound:
			response.NotFound(w, "Reminder not found")
		default:
			response.InternalServerError(w, "Failed to delete reminder")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reminder deleted successfully", nil)
}

func (h *ReminderHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	result, err := h.reminderUsecase.Send(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrReminderNotFound:
			response.NotFound(w, "Reminder not found")
		case usecase.ErrReminderAlreadySent:
			response.Conflict(w, "Reminder has already been sent")
		case usecase.ErrReminderNoPhone:
			response.Error(w, http.StatusBadRequest, "No phone number available for this reminder", nil)
		default:
			response.InternalServerError(w, "Failed to send reminder")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reminder sent successfully", result)
}

func (h *ReminderHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid reminder ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
