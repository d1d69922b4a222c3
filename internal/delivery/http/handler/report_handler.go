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

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create report")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Report created successfully", report)
}

func (h *ReportHandler) GetMyReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.GetMyReports(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}

func (h *ReportHandler) GetByClinician(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.GetByClinician(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}

func (h *ReportHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid report ID", nil)
		return
	}

	if err := h.reportUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		default:
			response.InternalServerError(w, "Failed to delete report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report deleted successfully", nil)
}

func (h *ReportHandler) RecordPrint(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePrintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	print, err := h.reportUsecase.RecordPrint(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to record print")
		return
	}

	response.Success(w, http.StatusCreated, "Print recorded successfully", print)
}

func (h *ReportHandler) PrintablePatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.reportUsecase.PrintablePatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get printable patients")
		return
	}

	response.Success(w, http.StatusOK, "Printable patients retrieved successfully", patients)
}
