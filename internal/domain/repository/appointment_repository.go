package repository

import (
	"context"

	"medibook-portals/internal/domain/entity"
)

type CreateAppointmentInput struct {
	DoctorID        int                    `json:"doctor_id" validate:"required,min=1"`
	AppointmentDate string                 `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string                 `json:"appointment_time" validate:"required"`
	AppointmentType entity.AppointmentType `json:"appointment_type" validate:"required,oneof=in_person online"`
	Symptoms        string                 `json:"symptoms" validate:"omitempty,max=1000"`
	Notes           string                 `json:"notes" validate:"omitempty,max=1000"`
}

type AppointmentRepository interface {
	List(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Get(ctx context.Context, id int) (*entity.Appointment, error)
	Create(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error)
	Cancel(ctx context.Context, id int, reason string) error
	Approve(ctx context.Context, id int) error
	Reject(ctx context.Context, id int, reason string) error
	UpdateStatus(ctx context.Context, id int, status entity.AppointmentStatus) error
	Upcoming(ctx context.Context) ([]entity.Appointment, error)
	Past(ctx context.Context) ([]entity.Appointment, error)
}
