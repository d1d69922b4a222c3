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
	"ovacare/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotAlreadyExists = errors.New("slot already exists for this facility, date and time")
	ErrSlotNotOwned      = errors.New("slot does not belong to you")
	ErrSlotBooked        = errors.New("slot has been booked and cannot be deleted")
)

type SlotUsecase interface {
	Create(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	GetMySlots(ctx context.Context) (*dto.SlotListResponse, error)
	GetAll(ctx context.Context, filter *entity.SlotFilter) (*dto.SlotListResponse, error)
	GetAvailable(ctx context.Context, filter *entity.SlotFilter) (*dto.SlotListResponse, error)
	Delete(ctx context.Context, id int64) error
	Facilities(ctx context.Context) ([]string, error)
	Doctors(ctx context.Context) ([]dto.DoctorResponse, error)
}

type slotUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	slotRepo     repository.SlotRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.SlotRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) SlotUsecase {
	return &slotUsecase{
		db:           db,
		log:          log,
		slotRepo:     slotRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// Create declares one unit of bookable capacity for the logged-in clinician.
// The database unique index rejects duplicates.
func (u *slotUsecase) Create(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	clinicianID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.New("invalid date, use YYYY-MM-DD")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	slot := &entity.Slot{
		ClinicianID: clinicianID,
		Facility:    req.Facility,
		Date:        date,
		Time:        req.Time,
		Available:   true,
	}

	if err := u.slotRepo.Create(tx, slot); err != nil {
		if isDuplicateKeyError(err, "idx_slots_capacity") {
			return nil, ErrSlotAlreadyExists
		}
		u.log.Warnf("Failed to create slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &clinicianID, entity.AuditActionSlotCreate, "slot", slot.Facility, map[string]interface{}{
		"slot_id":  slot.ID,
		"facility": slot.Facility,
		"date":     req.Date,
		"time":     req.Time,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SlotToResponse(slot), nil
}

func (u *slotUsecase) GetMySlots(ctx context.Context) (*dto.SlotListResponse, error) {
	clinicianID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	slots, err := u.slotRepo.FindByClinicianID(u.db.WithContext(ctx), clinicianID)
	if err != nil {
		u.log.Warnf("Failed to list slots for clinician %s: %+v", clinicianID, err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

func (u *slotUsecase) GetAll(ctx context.Context, filter *entity.SlotFilter) (*dto.SlotListResponse, error) {
	slots, err := u.slotRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list slots: %+v", err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// GetAvailable feeds the patient booking wizard.
func (u *slotUsecase) GetAvailable(ctx context.Context, filter *entity.SlotFilter) (*dto.SlotListResponse, error) {
	if filter == nil {
		filter = &entity.SlotFilter{}
	}
	filter.AvailableOnly = true
	return u.GetAll(ctx, filter)
}

// Delete removes an unbooked slot. Clinicians can only delete their own;
// admins bypass the ownership check.
func (u *slotUsecase) Delete(ctx context.Context, id int64) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	slot, err := u.slotRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find slot %d: %+v", id, err)
		return err
	}
	if slot == nil {
		return ErrSlotNotFound
	}
	if roleID != entity.RoleIDAdmin && slot.ClinicianID != userID {
		return ErrSlotNotOwned
	}
	if !slot.Available {
		return ErrSlotBooked
	}

	if _, err := u.slotRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete slot %d: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionSlotDelete, "slot", slot.Facility, map[string]interface{}{
		"slot_id":  slot.ID,
		"facility": slot.Facility,
		"date":     slot.Date.Format("2006-01-02"),
		"time":     slot.Time,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *slotUsecase) Facilities(ctx context.Context) ([]string, error) {
	facilities, err := u.slotRepo.DistinctFacilities(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list facilities: %+v", err)
		return nil, err
	}
	return facilities, nil
}

func (u *slotUsecase) Doctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	clinicians, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RoleIDClinician)
	if err != nil {
		u.log.Warnf("Failed to list clinicians: %+v", err)
		return nil, err
	}
	return converter.UsersToDoctorResponses(clinicians), nil
}
