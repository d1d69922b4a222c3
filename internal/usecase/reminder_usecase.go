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
	"ovacare/internal/infrastructure/sms"
	"ovacare/internal/service"
	"ovacare/pkg/phone"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReminderNotFound    = errors.New("reminder not found")
	ErrReminderAlreadySent = errors.New("reminder has already been sent")
	ErrReminderNoPhone     = errors.New("no phone number available for this reminder")
)

type ReminderUsecase interface {
	GetAll(ctx context.Context) (*dto.ReminderListResponse, error)
	GetMyReminders(ctx context.Context) (*dto.ReminderListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Send(ctx context.Context, id uuid.UUID) (*dto.SendReminderResponse, error)
}

type reminderUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reminderRepo repository.ReminderRepository
	userRepo     repository.UserRepository
	sender       sms.Sender
	auditService service.AuditService
}

func NewReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reminderRepo repository.ReminderRepository,
	userRepo repository.UserRepository,
	sender sms.Sender,
	auditService service.AuditService,
) ReminderUsecase {
	return &reminderUsecase{
		db:           db,
		log:          log,
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
		sender:       sender,
		auditService: auditService,
	}
}

func (u *reminderUsecase) GetAll(ctx context.Context) (*dto.ReminderListResponse, error) {
	reminders, err := u.reminderRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list reminders: %+v", err)
		return nil, err
	}

	return &dto.ReminderListResponse{
		Reminders: converter.RemindersToResponses(reminders),
		Total:     len(reminders),
	}, nil
}

func (u *reminderUsecase) GetMyReminders(ctx context.Context) (*dto.ReminderListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	reminders, err := u.reminderRepo.FindByRecipient(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list reminders for %s: %+v", userID, err)
		return nil, err
	}

	return &dto.ReminderListResponse{
		Reminders: converter.RemindersToResponses(reminders),
		Total:     len(reminders),
	}, nil
}

func (u *reminderUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	adminID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	reminder, err := u.reminderRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find reminder %s: %+v", id, err)
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}
	if reminder.Sent {
		return nil, ErrReminderAlreadySent
	}

	if req.Message != "" {
		reminder.Message = req.Message
	}
	if req.SendAt != "" {
		sendAt, err := time.Parse(time.RFC3339, req.SendAt)
		if err != nil {
			return nil, errors.New("invalid send_at, use RFC3339")
		}
		reminder.SendAt = sendAt
	}
	if req.Phone != "" {
		normalized, err := phone.Validate(req.Phone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		reminder.Phone = normalized
	}

	if err := u.reminderRepo.Update(tx, reminder); err != nil {
		u.log.Warnf("Failed to update reminder %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionReminderUpdate, "reminder", id.String(), nil, map[string]interface{}{
		"message": reminder.Message,
		"send_at": reminder.SendAt,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReminderToResponse(reminder), nil
}

func (u *reminderUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	adminID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.reminderRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete reminder %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrReminderNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionReminderDelete, "reminder", id.String(), nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// Send pushes a reminder through the SMS gateway right now, regardless of
// send_at. The phone resolves from the reminder first, then the recipient's
// profile. The sent flag flips only after the gateway accepts.
func (u *reminderUsecase) Send(ctx context.Context, id uuid.UUID) (*dto.SendReminderResponse, error) {
	adminID, _ := middleware.GetUserIDFromContext(ctx)
	db := u.db.WithContext(ctx)

	reminder, err := u.reminderRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find reminder %s: %+v", id, err)
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}
	if reminder.Sent {
		return nil, ErrReminderAlreadySent
	}

	to := reminder.Phone
	if to == "" && reminder.User != nil {
		to = reminder.User.Phone
	}
	if to == "" {
		user, err := u.userRepo.FindByID(db, reminder.Recipient)
		if err != nil {
			u.log.Warnf("Failed to resolve recipient %s: %+v", reminder.Recipient, err)
			return nil, err
		}
		if user != nil {
			to = user.Phone
		}
	}
	if to == "" {
		return nil, ErrReminderNoPhone
	}
	to = phone.Normalize(to)

	ref, err := u.sender.Send(ctx, to, reminder.Message)
	if err != nil {
		u.log.Warnf("Failed to send reminder %s via %s: %+v", id, u.sender.ProviderID(), err)
		return nil, err
	}

	tx := db.Begin()
	defer tx.Rollback()

	affected, err := u.reminderRepo.MarkSent(tx, id)
	if err != nil {
		u.log.Warnf("Failed to mark reminder %s as sent: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrReminderAlreadySent
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionReminderSend, "reminder", id.String(),
		map[string]interface{}{"sent": false},
		map[string]interface{}{"sent": true, "provider": u.sender.ProviderID(), "provider_ref": ref},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Reminder sent manually: id=%s, provider=%s, ref=%s", id, u.sender.ProviderID(), ref)
	return &dto.SendReminderResponse{
		ID:          id,
		Phone:       to,
		Provider:    u.sender.ProviderID(),
		ProviderRef: ref,
	}, nil
}
