package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ovacare/internal/converter"
	"ovacare/internal/delivery/dto"
	"ovacare/internal/delivery/http/middleware"
	"ovacare/internal/domain/entity"
	"ovacare/internal/domain/repository"
	"ovacare/internal/service"
	"ovacare/pkg/phone"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("appointment cannot move to that status")
	ErrSlotNotFound        = errors.New("slot not found")
	ErrSlotUnavailable     = errors.New("slot is no longer available")
	ErrAppointmentPast     = errors.New("cannot book an appointment in the past")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAll(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Approve(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Complete(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*dto.AppointmentStatsResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	reminderRepo    repository.ReminderRepository
	slotRepo        repository.SlotRepository
	userRepo        repository.UserRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	reminderRepo repository.ReminderRepository,
	slotRepo repository.SlotRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		reminderRepo:    reminderRepo,
		slotRepo:        slotRepo,
		userRepo:        userRepo,
		auditService:    auditService,
	}
}

// Book creates a pending appointment for the logged-in patient. When a slot
// is referenced, the slot's clinician/facility/date/time win over the free
// text fields and the slot is taken in the same transaction.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	normalizedPhone := ""
	if req.Phone != "" {
		normalized, err := phone.Validate(req.Phone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		normalizedPhone = normalized
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment := &entity.Appointment{
		PatientID: userID,
		Doctor:    req.Doctor,
		Facility:  req.Facility,
		Date:      date,
		Time:      req.Time,
		Status:    entity.AppointmentStatusPending,
		Phone:     normalizedPhone,
		Fee:       req.Fee,
		Emergency: req.Emergency,
	}

	if req.SlotID != nil {
		slot, err := u.slotRepo.FindByID(tx, *req.SlotID)
		if err != nil {
			u.log.Warnf("Failed to find slot %d: %+v", *req.SlotID, err)
			return nil, err
		}
		if slot == nil {
			return nil, ErrSlotNotFound
		}
		if !slot.Available {
			return nil, ErrSlotUnavailable
		}

		// Take the slot atomically; a concurrent booking loses here
		affected, err := u.slotRepo.SetAvailability(tx, slot.ID, false)
		if err != nil {
			u.log.Warnf("Failed to take slot %d: %+v", slot.ID, err)
			return nil, err
		}
		if affected == 0 {
			return nil, ErrSlotUnavailable
		}

		appointment.SlotID = &slot.ID
		appointment.Facility = slot.Facility
		appointment.Date = slot.Date
		appointment.Time = slot.Time
		if slot.Clinician != nil {
			appointment.Doctor = slot.Clinician.FullName
		}
	}

	if appointment.StartsAt().Before(time.Now()) && !appointment.Emergency {
		return nil, ErrAppointmentPast
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), map[string]interface{}{
		"facility": appointment.Facility,
		"doctor":   appointment.Doctor,
		"date":     appointment.Date.Format("2006-01-02"),
		"time":     appointment.Time,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, patient=%s, facility=%s", appointment.ID, userID, appointment.Facility)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Approve moves a pending appointment to approved and queues both reminders
// in the same transaction: an immediate status notice and an upcoming
// reminder due 24h before the appointment starts. If any piece fails the
// whole transition rolls back.
func (u *appointmentUsecase) Approve(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	adminID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.CanTransition(entity.AppointmentStatusApproved) {
		return nil, ErrInvalidTransition
	}

	affected, err := u.appointmentRepo.UpdateStatus(tx, id, entity.AppointmentStatusPending, entity.AppointmentStatusApproved)
	if err != nil {
		u.log.Warnf("Failed to approve appointment %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	statusMsg := fmt.Sprintf("Your appointment with %s at %s on %s at %s has been approved.",
		appointment.Doctor, appointment.Facility, appointment.Date.Format("2006-01-02"), appointment.Time)
	upcomingMsg := fmt.Sprintf("Reminder: you have an appointment with %s at %s tomorrow at %s.",
		appointment.Doctor, appointment.Facility, appointment.Time)

	reminders := []*entity.Reminder{
		{
			Recipient:     appointment.PatientID,
			AppointmentID: appointment.ID,
			Message:       statusMsg,
			SendAt:        now,
			Type:          entity.ReminderTypeStatus,
			Phone:         u.reminderPhone(tx, appointment),
		},
		{
			Recipient:     appointment.PatientID,
			AppointmentID: appointment.ID,
			Message:       upcomingMsg,
			SendAt:        appointment.StartsAt().Add(-entity.UpcomingReminderLead),
			Type:          entity.ReminderTypeUpcoming,
			Phone:         u.reminderPhone(tx, appointment),
		},
	}

	for _, reminder := range reminders {
		if err := u.reminderRepo.Create(tx, reminder); err != nil {
			u.log.Warnf("Failed to create reminder for appointment %s: %+v", id, err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionAppointmentApprove, "appointment", id.String(),
		map[string]interface{}{"status": string(entity.AppointmentStatusPending)},
		map[string]interface{}{"status": string(entity.AppointmentStatusApproved)},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = entity.AppointmentStatusApproved
	u.log.Infof("Appointment approved: id=%s", id)
	return converter.AppointmentToResponse(appointment), nil
}

// Cancel moves a pending or approved appointment to cancelled, queues one
// status notice and re-opens the linked slot, all in one transaction.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	adminID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.CanTransition(entity.AppointmentStatusCancelled) {
		return nil, ErrInvalidTransition
	}

	affected, err := u.appointmentRepo.UpdateStatus(tx, id, appointment.Status, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	cancelMsg := fmt.Sprintf("Your appointment with %s at %s on %s at %s has been cancelled.",
		appointment.Doctor, appointment.Facility, appointment.Date.Format("2006-01-02"), appointment.Time)

	reminder := &entity.Reminder{
		Recipient:     appointment.PatientID,
		AppointmentID: appointment.ID,
		Message:       cancelMsg,
		SendAt:        time.Now(),
		Type:          entity.ReminderTypeStatus,
		Phone:         u.reminderPhone(tx, appointment),
	}
	if err := u.reminderRepo.Create(tx, reminder); err != nil {
		u.log.Warnf("Failed to create cancellation reminder for %s: %+v", id, err)
		return nil, err
	}

	if appointment.SlotID != nil {
		if _, err := u.slotRepo.SetAvailability(tx, *appointment.SlotID, true); err != nil {
			u.log.Warnf("Failed to re-open slot %d: %+v", *appointment.SlotID, err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionAppointmentCancel, "appointment", id.String(),
		map[string]interface{}{"status": string(appointment.Status)},
		map[string]interface{}{"status": string(entity.AppointmentStatusCancelled)},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = entity.AppointmentStatusCancelled
	u.log.Infof("Appointment cancelled: id=%s", id)
	return converter.AppointmentToResponse(appointment), nil
}

// Complete closes out an approved appointment after the visit happened.
func (u *appointmentUsecase) Complete(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	adminID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.CanTransition(entity.AppointmentStatusCompleted) {
		return nil, ErrInvalidTransition
	}

	affected, err := u.appointmentRepo.UpdateStatus(tx, id, entity.AppointmentStatusApproved, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionAppointmentFinish, "appointment", id.String(),
		map[string]interface{}{"status": string(entity.AppointmentStatusApproved)},
		map[string]interface{}{"status": string(entity.AppointmentStatusCompleted)},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = entity.AppointmentStatusCompleted
	return converter.AppointmentToResponse(appointment), nil
}

// Delete removes the appointment row. Reminders follow via FK cascade; a
// taken slot is re-opened so capacity is not lost.
func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	adminID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if _, err := u.appointmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}

	if appointment.SlotID != nil && appointment.Status != entity.AppointmentStatusCancelled {
		if _, err := u.slotRepo.SetAvailability(tx, *appointment.SlotID, true); err != nil {
			u.log.Warnf("Failed to re-open slot %d: %+v", *appointment.SlotID, err)
			return err
		}
	}

	if err := u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionAppointmentDelete, "appointment", id.String(), map[string]interface{}{
		"status":   string(appointment.Status),
		"facility": appointment.Facility,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Appointment deleted: id=%s", id)
	return nil
}

func (u *appointmentUsecase) Stats(ctx context.Context) (*dto.AppointmentStatsResponse, error) {
	db := u.db.WithContext(ctx)

	counts, err := u.appointmentRepo.CountByStatus(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return nil, err
	}

	recent, err := u.appointmentRepo.CountCreatedSince(db, time.Now().AddDate(0, 0, -30))
	if err != nil {
		u.log.Warnf("Failed to count recent appointments: %+v", err)
		return nil, err
	}

	stats := &dto.AppointmentStatsResponse{
		Pending:       counts[entity.AppointmentStatusPending],
		Approved:      counts[entity.AppointmentStatusApproved],
		Cancelled:     counts[entity.AppointmentStatusCancelled],
		Completed:     counts[entity.AppointmentStatusCompleted],
		CreatedLast30: recent,
	}
	stats.Total = stats.Pending + stats.Approved + stats.Cancelled + stats.Completed
	return stats, nil
}

// reminderPhone resolves the number reminders should target: the one
// captured at booking, else the patient's profile phone, loaded through the
// transaction when the relation is not preloaded.
func (u *appointmentUsecase) reminderPhone(tx *gorm.DB, appointment *entity.Appointment) string {
	if appointment.Phone != "" {
		return appointment.Phone
	}
	if appointment.Patient != nil && appointment.Patient.Phone != "" {
		return phone.Normalize(appointment.Patient.Phone)
	}
	user, err := u.userRepo.FindByID(tx, appointment.PatientID)
	if err != nil || user == nil {
		return ""
	}
	return phone.Normalize(user.Phone)
}
