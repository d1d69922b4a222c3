package usecase

import (
	"context"
	"errors"
	"time"

	"ovacare/internal/converter"
	"ovacare/internal/delivery/dto"
	"ovacare/internal/delivery/http/middleware"
	"ovacare/internal/domain/entity"
	"ovacare/internal/domain/repository"
	"ovacare/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrPatientNotFound = errors.New("patient not found")
)

type ReportUsecase interface {
	Create(ctx context.Context, req *dto.CreateReportRequest) (*dto.ReportResponse, error)
	GetMyReports(ctx context.Context) (*dto.ReportListResponse, error)
	GetByClinician(ctx context.Context) (*dto.ReportListResponse, error)
	GetAll(ctx context.Context) (*dto.ReportListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RecordPrint(ctx context.Context, req *dto.CreatePrintRequest) (*dto.PrintResponse, error)
	PrintablePatients(ctx context.Context) ([]dto.PrintablePatientResponse, error)
}

type reportUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reportRepo   repository.ReportRepository
	printRepo    repository.PrintRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.ReportRepository,
	printRepo repository.PrintRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) ReportUsecase {
	return &reportUsecase{
		db:           db,
		log:          log,
		reportRepo:   reportRepo,
		printRepo:    printRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// Create files a report authored by the logged-in clinician. Patient and
// clinician names are denormalized onto the row so listings don't need joins.
func (u *reportUsecase) Create(ctx context.Context, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	clinicianID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.New("invalid date, use YYYY-MM-DD")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.userRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	clinician, err := u.userRepo.FindByID(tx, clinicianID)
	if err != nil {
		u.log.Warnf("Failed to find clinician %s: %+v", clinicianID, err)
		return nil, err
	}
	if clinician == nil {
		return nil, ErrUserNotFound
	}

	report := &entity.Report{
		PatientID:     patient.ID,
		PatientName:   patient.FullName,
		ClinicianID:   clinician.ID,
		ClinicianName: clinician.FullName,
		Type:          req.Type,
		Status:        req.Status,
		FileURL:       req.FileURL,
		Date:          date,
	}

	if err := u.reportRepo.Create(tx, report); err != nil {
		u.log.Warnf("Failed to create report: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &clinicianID, entity.AuditActionReportCreate, "report", report.ID.String(), map[string]interface{}{
		"patient_id": report.PatientID.String(),
		"type":       report.Type,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) GetMyReports(ctx context.Context) (*dto.ReportListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	reports, err := u.reportRepo.FindByPatientID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list reports for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.ReportListResponse{
		Reports: converter.ReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}

func (u *reportUsecase) GetByClinician(ctx context.Context) (*dto.ReportListResponse, error) {
	clinicianID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	reports, err := u.reportRepo.FindByClinicianID(u.db.WithContext(ctx), clinicianID)
	if err != nil {
		u.log.Warnf("Failed to list reports for clinician %s: %+v", clinicianID, err)
		return nil, err
	}

	return &dto.ReportListResponse{
		Reports: converter.ReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}

func (u *reportUsecase) GetAll(ctx context.Context) (*dto.ReportListResponse, error) {
	reports, err := u.reportRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list reports: %+v", err)
		return nil, err
	}

	return &dto.ReportListResponse{
		Reports: converter.ReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}

func (u *reportUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	adminID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.reportRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete report %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrReportNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionReportDelete, "report", id.String(), nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// RecordPrint notes that the logged-in clinician printed a risk summary for
// a sheet patient. These rows feed the report form's patient picker.
func (u *reportUsecase) RecordPrint(ctx context.Context, req *dto.CreatePrintRequest) (*dto.PrintResponse, error) {
	clinicianID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)

	print := &entity.Print{
		PatientRef:  req.PatientRef,
		PatientName: req.PatientName,
		ClinicianID: clinicianID,
		PrintedBy:   email,
	}

	if err := u.printRepo.Create(u.db.WithContext(ctx), print); err != nil {
		u.log.Warnf("Failed to record print: %+v", err)
		return nil, err
	}

	return converter.PrintToResponse(print), nil
}

// PrintablePatients returns the latest print per sheet patient, limited to
// the caller's own prints for clinicians.
func (u *reportUsecase) PrintablePatients(ctx context.Context) ([]dto.PrintablePatientResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	db := u.db.WithContext(ctx)

	var prints []entity.Print
	var err error
	if roleID == entity.RoleIDAdmin {
		prints, err = u.printRepo.FindLatestPerPatient(db)
	} else {
		prints, err = u.printRepo.FindByClinicianID(db, userID)
		if err == nil {
			prints = latestPerPatientRef(prints)
		}
	}
	if err != nil {
		u.log.Warnf("Failed to list printable patients: %+v", err)
		return nil, err
	}

	return converter.PrintsToPrintablePatients(prints), nil
}

// latestPerPatientRef keeps the newest print per patient_ref from a list
// already sorted newest first.
func latestPerPatientRef(prints []entity.Print) []entity.Print {
	seen := make(map[string]struct{}, len(prints))
	out := prints[:0]
	for _, print := range prints {
		if _, dup := seen[print.PatientRef]; dup {
			continue
		}
		seen[print.PatientRef] = struct{}{}
		out = append(out, print)
	}
	return out
}
