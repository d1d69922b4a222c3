package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ovacare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReminderRepo struct {
	due    []entity.Reminder
	dueErr error
	sent   []uuid.UUID
}

func (f *fakeReminderRepo) Create(db *gorm.DB, reminder *entity.Reminder) error { return nil }
func (f *fakeReminderRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Reminder, error) {
	return nil, nil
}
func (f *fakeReminderRepo) FindByRecipient(db *gorm.DB, recipient uuid.UUID) ([]entity.Reminder, error) {
	return nil, nil
}
func (f *fakeReminderRepo) FindAll(db *gorm.DB) ([]entity.Reminder, error) { return nil, nil }
func (f *fakeReminderRepo) FindDue(db *gorm.DB, now time.Time, limit int) ([]entity.Reminder, error) {
	return f.due, f.dueErr
}
func (f *fakeReminderRepo) Update(db *gorm.DB, reminder *entity.Reminder) error { return nil }
func (f *fakeReminderRepo) MarkSent(db *gorm.DB, id uuid.UUID) (int64, error) {
	f.sent = append(f.sent, id)
	return 1, nil
}
func (f *fakeReminderRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) { return 0, nil }

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error { return nil }
func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) FindByRole(db *gorm.DB, roleID int) ([]entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(db *gorm.DB, user *entity.User) error { return nil }

type fakeSender struct {
	sent []struct{ to, message string }
	err  error
}

func (f *fakeSender) Send(ctx context.Context, to, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, struct{ to, message string }{to, message})
	return "ref-1", nil
}

func (f *fakeSender) ProviderID() string { return "fake" }

func newTestDispatcher(reminders *fakeReminderRepo, users *fakeUserRepo, sender *fakeSender) *ReminderDispatcher {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewReminderDispatcher(nil, log, reminders, users, sender, time.Minute)
}

func TestReminderDispatcher_DispatchDue(t *testing.T) {
	id := uuid.New()
	reminders := &fakeReminderRepo{
		due: []entity.Reminder{{
			ID:        id,
			Recipient: uuid.New(),
			Message:   "Your appointment is tomorrow",
			Phone:     "0712345678",
			SendAt:    time.Now().Add(-time.Minute),
		}},
	}
	sender := &fakeSender{}

	d := newTestDispatcher(reminders, &fakeUserRepo{}, sender)
	d.DispatchDue(context.Background(), time.Now())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "+254712345678", sender.sent[0].to)
	assert.Equal(t, "Your appointment is tomorrow", sender.sent[0].message)
	assert.Equal(t, []uuid.UUID{id}, reminders.sent)
}

func TestReminderDispatcher_GatewayFailureLeavesUnsent(t *testing.T) {
	reminders := &fakeReminderRepo{
		due: []entity.Reminder{{
			ID:        uuid.New(),
			Recipient: uuid.New(),
			Message:   "msg",
			Phone:     "0712345678",
		}},
	}
	sender := &fakeSender{err: errors.New("gateway down")}

	d := newTestDispatcher(reminders, &fakeUserRepo{}, sender)
	d.DispatchDue(context.Background(), time.Now())

	assert.Empty(t, reminders.sent)
}

func TestReminderDispatcher_ProfilePhoneFallback(t *testing.T) {
	recipient := uuid.New()
	reminders := &fakeReminderRepo{
		due: []entity.Reminder{{
			ID:        uuid.New(),
			Recipient: recipient,
			Message:   "msg",
		}},
	}
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{
		recipient: {ID: recipient, Phone: "0722000111"},
	}}
	sender := &fakeSender{}

	d := newTestDispatcher(reminders, users, sender)
	d.DispatchDue(context.Background(), time.Now())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "+254722000111", sender.sent[0].to)
}

func TestReminderDispatcher_NoPhoneMarksWithoutSending(t *testing.T) {
	id := uuid.New()
	reminders := &fakeReminderRepo{
		due: []entity.Reminder{{
			ID:        id,
			Recipient: uuid.New(),
			Message:   "msg",
		}},
	}
	sender := &fakeSender{}

	d := newTestDispatcher(reminders, &fakeUserRepo{}, sender)
	d.DispatchDue(context.Background(), time.Now())

	assert.Empty(t, sender.sent)
	assert.Equal(t, []uuid.UUID{id}, reminders.sent)
}

func TestReminderDispatcher_StartStop(t *testing.T) {
	d := newTestDispatcher(&fakeReminderRepo{}, &fakeUserRepo{}, &fakeSender{})

	d.Start()
	d.Stop()
	// Second Stop is a no-op
	d.Stop()
}
