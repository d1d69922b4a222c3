package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ovacare/internal/delivery/dto"
	"ovacare/internal/infrastructure/ml"
	"ovacare/internal/usecase"
	"ovacare/pkg/response"
	"ovacare/pkg/validator"
)

type PredictionHandler struct {
	predictionUsecase usecase.PredictionUsecase
	validator         *validator.CustomValidator
}

func NewPredictionHandler(predictionUsecase usecase.PredictionUsecase, validator *validator.CustomValidator) *PredictionHandler {
	return &PredictionHandler{
		predictionUsecase: predictionUsecase,
		validator:         validator,
	}
}

func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.predictionUsecase.Predict(r.Context(), &req)
	if err != nil {
		h.fail(w, err, "Failed to get prediction")
		return
	}

	response.Success(w, http.StatusOK, "Prediction retrieved successfully", result)
}

func (h *PredictionHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.predictionUsecase.Chat(r.Context(), &req)
	if err != nil {
		h.fail(w, err, "Failed to get chat answer")
		return
	}

	response.Success(w, http.StatusOK, "Chat answer retrieved successfully", result)
}

func (h *PredictionHandler) fail(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, ml.ErrNotConfigured):
		response.Error(w, http.StatusServiceUnavailable, "Inference endpoint not configured", nil)
	case errors.Is(err, ml.ErrEmptyResponse):
		response.Error(w, http.StatusBadGateway, "Inference endpoint returned no result", nil)
	default:
		response.InternalServerError(w, message)
	}
}
