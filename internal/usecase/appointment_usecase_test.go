package usecase

import (
	"context"
	"testing"

	"ovacare/internal/delivery/dto"
	"ovacare/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestBookRejectsInvalidPhone(t *testing.T) {
	u := &appointmentUsecase{log: logrus.New()}
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())

	tests := []string{"12345", "+1555123456", "notaphone", "+2549712345678"}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := u.Book(ctx, &dto.BookAppointmentRequest{
				Doctor:   "Dr. Achieng",
				Facility: "Nairobi West Clinic",
				Date:     "2030-01-15",
				Time:     "10:00",
				Phone:    raw,
				Fee:      decimal.NewFromInt(500),
			})
			assert.ErrorIs(t, err, ErrInvalidPhone)
		})
	}
}
