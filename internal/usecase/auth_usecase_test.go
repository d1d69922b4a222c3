package usecase

import (
	"context"
	"testing"

	"ovacare/internal/delivery/dto"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRejectsInvalidPhone(t *testing.T) {
	u := &authUsecase{log: logrus.New()}

	_, err := u.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Email:    "jane@example.com",
		Password: "secret123",
		FullName: "Jane Wanjiru",
		Phone:    "12345",
	})
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = u.RegisterClinician(context.Background(), &dto.RegisterClinicianRequest{
		Email:    "achieng@example.com",
		Password: "secret123",
		FullName: "Dr. Achieng",
		Phone:    "+1555000111",
	})
	assert.ErrorIs(t, err, ErrInvalidPhone)
}
