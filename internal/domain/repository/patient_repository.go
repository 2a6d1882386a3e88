package repository

import (
	"context"

	"medibook-portals/internal/domain/entity"
)

type PatientProfileInput struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	Phone            string `json:"phone" validate:"omitempty,min=10,max=20"`
	DateOfBirth      string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender           string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup       string `json:"blood_group" validate:"omitempty"`
	Address          string `json:"address" validate:"omitempty"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty"`
}

type PatientRepository interface {
	Profile(ctx context.Context) (*entity.Patient, error)
	UpdateProfile(ctx context.Context, input *PatientProfileInput) (*entity.Patient, error)
	Appointments(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
}
