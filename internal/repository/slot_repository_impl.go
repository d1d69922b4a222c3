package repository

import (
	"errors"

	"ovacare/internal/domain/entity"
	domainRepo "ovacare/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type slotRepository struct{}

func NewSlotRepository() domainRepo.SlotRepository {
	return &slotRepository{}
}

func (r *slotRepository) Create(db *gorm.DB, slot *entity.Slot) error {
	return db.Create(slot).Error
}

func (r *slotRepository) FindByID(db *gorm.DB, id int64) (*entity.Slot, error) {
	var slot entity.Slot
	err := db.Preload("Clinician").Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) FindAll(db *gorm.DB, filter *entity.SlotFilter) ([]entity.Slot, error) {
	query := db.Preload("Clinician").Order("date ASC, time ASC")

	if filter != nil {
		if filter.ClinicianID != nil {
			query = query.Where("clinician_id = ?", *filter.ClinicianID)
		}
		if filter.Facility != "" {
			query = query.Where("facility = ?", filter.Facility)
		}
		if filter.Date != "" {
			query = query.Where("date = ?", filter.Date)
		}
		if filter.AvailableOnly {
			query = query.Where("available = ?", true)
		}
	}

	var slots []entity.Slot
	if err := query.Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *slotRepository) FindByClinicianID(db *gorm.DB, clinicianID uuid.UUID) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.Where("clinician_id = ?", clinicianID).
		Order("date ASC, time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// SetAvailability flips availability only when it differs so a concurrent
// double-book sees zero affected rows instead of silently succeeding.
func (r *slotRepository) SetAvailability(db *gorm.DB, id int64, available bool) (int64, error) {
	result := db.Model(&entity.Slot{}).
		Where("id = ? AND available = ?", id, !available).
		Update("available", available)
	return result.RowsAffected, result.Error
}

func (r *slotRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Slot{})
	return result.RowsAffected, result.Error
}

func (r *slotRepository) DistinctFacilities(db *gorm.DB) ([]string, error) {
	var facilities []string
	err := db.Model(&entity.Slot{}).
		Distinct("facility").
		Order("facility ASC").
		Pluck("facility", &facilities).Error
	if err != nil {
		return nil, err
	}
	return facilities, nil
}
