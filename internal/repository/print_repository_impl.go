package repository

import (
	"ovacare/internal/domain/entity"
	domainRepo "ovacare/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type printRepository struct{}

func NewPrintRepository() domainRepo.PrintRepository {
	return &printRepository{}
}

func (r *printRepository) Create(db *gorm.DB, print *entity.Print) error {
	return db.Create(print).Error
}

func (r *printRepository) FindByClinicianID(db *gorm.DB, clinicianID uuid.UUID) ([]entity.Print, error) {
	var prints []entity.Print
	err := db.Where("clinician_id = ?", clinicianID).
		Order("created_at DESC").
		Find(&prints).Error
	if err != nil {
		return nil, err
	}
	return prints, nil
}

// FindLatestPerPatient returns the newest print row for each patient_ref.
func (r *printRepository) FindLatestPerPatient(db *gorm.DB) ([]entity.Print, error) {
	var prints []entity.Print
	err := db.Raw(`
		SELECT DISTINCT ON (patient_ref) *
		FROM prints
		ORDER BY patient_ref, created_at DESC
	`).Scan(&prints).Error
	if err != nil {
		return nil, err
	}
	return prints, nil
}
