package repository

import (
	"ovacare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SlotRepository interface {
	Create(db *gorm.DB, slot *entity.Slot) error
	FindByID(db *gorm.DB, id int64) (*entity.Slot, error)
	FindAll(db *gorm.DB, filter *entity.SlotFilter) ([]entity.Slot, error)
	FindByClinicianID(db *gorm.DB, clinicianID uuid.UUID) ([]entity.Slot, error)
	SetAvailability(db *gorm.DB, id int64, available bool) (int64, error)
	Delete(db *gorm.DB, id int64) (int64, error)
	DistinctFacilities(db *gorm.DB) ([]string, error)
}
