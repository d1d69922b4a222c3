package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"ovacare/internal/domain/entity"
	"ovacare/internal/domain/repository"
	"ovacare/internal/infrastructure/sms"
	"ovacare/pkg/phone"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Reminders picked up per tick. Due reminders beyond this are caught
	// on the next tick.
	dispatchBatchSize = 100

	// Timeout for one full dispatch pass
	dispatchTimeout = 30 * time.Second
)

// ReminderDispatcher is the background worker that delivers scheduled
// reminders. It polls for unsent reminders whose send_at has passed,
// pushes them through the configured SMS gateway and flips sent only after
// the gateway accepts. The manual send endpoint remains available alongside;
// the sent flag is flipped atomically so the two paths never double-deliver.
//
// Call Stop() during graceful shutdown.
type ReminderDispatcher struct {
	db           *gorm.DB
	log          *logrus.Logger
	reminderRepo repository.ReminderRepository
	userRepo     repository.UserRepository
	sender       sms.Sender
	interval     time.Duration

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

func NewReminderDispatcher(
	db *gorm.DB,
	log *logrus.Logger,
	reminderRepo repository.ReminderRepository,
	userRepo repository.UserRepository,
	sender sms.Sender,
	interval time.Duration,
) *ReminderDispatcher {
	return &ReminderDispatcher{
		db:           db,
		log:          log,
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
		sender:       sender,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the polling goroutine.
func (d *ReminderDispatcher) Start() {
	d.wg.Add(1)
	go d.loop()
	d.log.Infof("Reminder dispatcher started: interval=%s, provider=%s", d.interval, d.sender.ProviderID())
}

// Stop signals the goroutine and waits for the in-flight pass to finish.
func (d *ReminderDispatcher) Stop() {
	if d.stopped.CompareAndSwap(false, true) {
		close(d.stopChan)
		d.wg.Wait()
		d.log.Info("Reminder dispatcher stopped")
	}
}

func (d *ReminderDispatcher) loop() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopChan:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
			d.DispatchDue(ctx, time.Now())
			cancel()
		}
	}
}

// DispatchDue runs one delivery pass: fetch due reminders, resolve each
// phone, send, mark sent. Gateway failures leave the reminder unsent so the
// next tick retries it.
func (d *ReminderDispatcher) DispatchDue(ctx context.Context, now time.Time) {
	db := d.db
	if db != nil {
		db = db.WithContext(ctx)
	}

	due, err := d.reminderRepo.FindDue(db, now, dispatchBatchSize)
	if err != nil {
		d.log.Warnf("Failed to fetch due reminders: %+v", err)
		return
	}

	for _, reminder := range due {
		d.dispatchOne(ctx, db, &reminder)
	}
}

func (d *ReminderDispatcher) dispatchOne(ctx context.Context, db *gorm.DB, reminder *entity.Reminder) {
	to := d.resolvePhone(db, reminder)
	if to == "" {
		// No deliverable number anywhere. Mark sent so the row does not
		// poison every subsequent tick.
		d.log.Warnf("Reminder %s has no phone number, skipping delivery", reminder.ID)
		if _, err := d.reminderRepo.MarkSent(db, reminder.ID); err != nil {
			d.log.Warnf("Failed to mark phoneless reminder %s: %+v", reminder.ID, err)
		}
		return
	}

	ref, err := d.sender.Send(ctx, to, reminder.Message)
	if err != nil {
		d.log.Warnf("Failed to send reminder %s via %s: %+v", reminder.ID, d.sender.ProviderID(), err)
		return
	}

	affected, err := d.reminderRepo.MarkSent(db, reminder.ID)
	if err != nil {
		d.log.Warnf("Failed to mark reminder %s as sent: %+v", reminder.ID, err)
		return
	}
	if affected == 0 {
		d.log.Warnf("Reminder %s was already marked sent elsewhere", reminder.ID)
		return
	}

	d.log.Infof("Reminder dispatched: id=%s, provider=%s, ref=%s", reminder.ID, d.sender.ProviderID(), ref)
}

// resolvePhone prefers the number captured on the reminder, falling back to
// the recipient's profile.
func (d *ReminderDispatcher) resolvePhone(db *gorm.DB, reminder *entity.Reminder) string {
	if reminder.Phone != "" {
		return phone.Normalize(reminder.Phone)
	}

	if reminder.User != nil && reminder.User.Phone != "" {
		return phone.Normalize(reminder.User.Phone)
	}

	user, err := d.userRepo.FindByID(db, reminder.Recipient)
	if err != nil {
		d.log.Warnf("Failed to resolve recipient %s: %+v", reminder.Recipient, err)
		return ""
	}
	if user == nil || user.Phone == "" {
		return ""
	}

	return phone.Normalize(user.Phone)
}
