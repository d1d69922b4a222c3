package repository

import (
	"errors"
	"time"

	"ovacare/internal/domain/entity"
	domainRepo "ovacare/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reminderRepository struct{}

func NewReminderRepository() domainRepo.ReminderRepository {
	return &reminderRepository{}
}

func (r *reminderRepository) Create(db *gorm.DB, reminder *entity.Reminder) error {
	return db.Create(reminder).Error
}

func (r *reminderRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := db.Preload("User").Where("id = ?", id).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) FindByRecipient(db *gorm.DB, recipient uuid.UUID) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := db.Where("recipient = ?", recipient).
		Order("send_at DESC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) FindAll(db *gorm.DB) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := db.Preload("User").
		Order("send_at DESC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) FindDue(db *gorm.DB, now time.Time, limit int) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := db.Preload("User").
		Where("sent = ? AND send_at <= ?", false, now).
		Order("send_at ASC").
		Limit(limit).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) Update(db *gorm.DB, reminder *entity.Reminder) error {
	return db.Save(reminder).Error
}

// MarkSent flips the sent flag only if it is still false so a concurrent
// dispatcher and a manual send cannot both deliver the same reminder.
func (r *reminderRepository) MarkSent(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Reminder{}).
		Where("id = ? AND sent = ?", id, false).
		Update("sent", true)
	return result.RowsAffected, result.Error
}

func (r *reminderRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Reminder{})
	return result.RowsAffected, result.Error
}
