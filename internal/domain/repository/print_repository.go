package repository

import (
	"ovacare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrintRepository interface {
	Create(db *gorm.DB, print *entity.Print) error
	FindByClinicianID(db *gorm.DB, clinicianID uuid.UUID) ([]entity.Print, error)
	FindLatestPerPatient(db *gorm.DB) ([]entity.Print, error)
}
