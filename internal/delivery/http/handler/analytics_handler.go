package handler

import (
	"net/http"

	"ovacare/internal/usecase"
	"ovacare/pkg/response"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
	}
}

func (h *AnalyticsHandler) Patients(w http.ResponseWriter, r *http.Request) {
	data, err := h.analyticsUsecase.Patients(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient analytics retrieved successfully", data)
}

func (h *AnalyticsHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	data, err := h.analyticsUsecase.Inventory(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Inventory analytics retrieved successfully", data)
}

func (h *AnalyticsHandler) Treatments(w http.ResponseWriter, r *http.Request) {
	data, err := h.analyticsUsecase.Treatments(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Treatment analytics retrieved successfully", data)
}

func (h *AnalyticsHandler) fail(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrSheetUnavailable:
		response.Error(w, http.StatusBadGateway, "Analytics source is unavailable", nil)
	default:
		response.InternalServerError(w, "Failed to get analytics")
	}
}
