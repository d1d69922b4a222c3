package repository

import (
	"ovacare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(db *gorm.DB, report *entity.Report) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Report, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Report, error)
	FindByClinicianID(db *gorm.DB, clinicianID uuid.UUID) ([]entity.Report, error)
	FindAll(db *gorm.DB) ([]entity.Report, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
