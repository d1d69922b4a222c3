package repository

import (
	"errors"

	"ovacare/internal/domain/entity"
	domainRepo "ovacare/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) Create(db *gorm.DB, report *entity.Report) error {
	return db.Create(report).Error
}

func (r *reportRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Report, error) {
	var report entity.Report
	err := db.Where("id = ?", id).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Report, error) {
	var reports []entity.Report
	err := db.Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) FindByClinicianID(db *gorm.DB, clinicianID uuid.UUID) ([]entity.Report, error) {
	var reports []entity.Report
	err := db.Where("clinician_id = ?", clinicianID).
		Order("date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) FindAll(db *gorm.DB) ([]entity.Report, error) {
	var reports []entity.Report
	err := db.Order("date DESC").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Report{})
	return result.RowsAffected, result.Error
}
