package converter

import (
	"ovacare/internal/delivery/dto"
	"ovacare/internal/domain/entity"
)

// ReportToResponse converts a Report entity to its DTO
func ReportToResponse(report *entity.Report) *dto.ReportResponse {
	if report == nil {
		return nil
	}

	return &dto.ReportResponse{
		ID:            report.ID,
		PatientID:     report.PatientID,
		PatientName:   report.PatientName,
		ClinicianID:   report.ClinicianID,
		ClinicianName: report.ClinicianName,
		Type:          report.Type,
		Status:        report.Status,
		FileURL:       report.FileURL,
		Date:          report.Date.Format("2006-01-02"),
		CreatedAt:     report.CreatedAt,
	}
}

// ReportsToResponses converts a slice of Report entities
func ReportsToResponses(reports []entity.Report) []dto.ReportResponse {
	responses := make([]dto.ReportResponse, len(reports))
	for i, report := range reports {
		resp := ReportToResponse(&report)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// PrintToResponse converts a Print entity to its DTO
func PrintToResponse(print *entity.Print) *dto.PrintResponse {
	if print == nil {
		return nil
	}

	return &dto.PrintResponse{
		ID:          print.ID,
		PatientRef:  print.PatientRef,
		PatientName: print.PatientName,
		PrintedBy:   print.PrintedBy,
		CreatedAt:   print.CreatedAt,
	}
}

// PrintsToPrintablePatients converts the latest print per patient into the
// report form's patient picker entries.
func PrintsToPrintablePatients(prints []entity.Print) []dto.PrintablePatientResponse {
	responses := make([]dto.PrintablePatientResponse, len(prints))
	for i, print := range prints {
		responses[i] = dto.PrintablePatientResponse{
			PatientRef:    print.PatientRef,
			PatientName:   print.PatientName,
			LastPrintedAt: print.CreatedAt,
		}
	}
	return responses
}
