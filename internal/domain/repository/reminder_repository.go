package repository

import (
	"time"

	"ovacare/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderRepository interface {
	Create(db *gorm.DB, reminder *entity.Reminder) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Reminder, error)
	FindByRecipient(db *gorm.DB, recipient uuid.UUID) ([]entity.Reminder, error)
	FindAll(db *gorm.DB) ([]entity.Reminder, error)
	FindDue(db *gorm.DB, now time.Time, limit int) ([]entity.Reminder, error)
	Update(db *gorm.DB, reminder *entity.Reminder) error
	MarkSent(db *gorm.DB, id uuid.UUID) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
