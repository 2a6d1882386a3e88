package repository

import (
	"context"

	"medibook-portals/internal/domain/entity"
)

// DoctorPatch is a partial update for PATCH /doctors/{id}/. Nil fields are
// omitted from the request so the backend leaves them unchanged.
type DoctorPatch struct {
	IsActive           *bool    `json:"is_active,omitempty"`
	ExperienceYears    *int     `json:"experience_years,omitempty"`
	ConsultationFee    *float64 `json:"consultation_fee,omitempty"`
	Qualification      *string  `json:"qualification,omitempty"`
	ClinicAddress      *string  `json:"clinic_address,omitempty"`
	ClinicCity         *string  `json:"clinic_city,omitempty"`
	ClinicState        *string  `json:"clinic_state,omitempty"`
	ClinicPincode      *string  `json:"clinic_pincode,omitempty"`
	OnlineConsultation *bool    `json:"online_consultation_available,omitempty"`
}

// DoctorProfileInput is the doctor portal's own profile update
// (PUT /doctors/update_profile/).
type DoctorProfileInput struct {
	SpecializationIDs  []int   `json:"specialization_ids,omitempty" validate:"omitempty,min=1"`
	ExperienceYears    int     `json:"experience_years" validate:"gte=0,lte=60"`
	ConsultationFee    float64 `json:"consultation_fee" validate:"gte=0"`
	Qualification      string  `json:"qualification" validate:"required"`
	ClinicAddress      string  `json:"clinic_address" validate:"omitempty"`
	ClinicCity         string  `json:"clinic_city" validate:"omitempty"`
	ClinicState        string  `json:"clinic_state" validate:"omitempty"`
	ClinicPincode      string  `json:"clinic_pincode" validate:"omitempty"`
	OnlineConsultation bool    `json:"online_consultation_available"`
}

type DoctorRepository interface {
	List(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	Get(ctx context.Context, id int) (*entity.Doctor, error)
	AvailableSlots(ctx context.Context, doctorID int, date string) ([]string, error)
	Specialties(ctx context.Context) ([]entity.Specialty, error)
	Update(ctx context.Context, id int, patch *DoctorPatch) (*entity.Doctor, error)
	Delete(ctx context.Context, id int) error

	// Doctor portal self-service.
	Profile(ctx context.Context) (*entity.Doctor, error)
	UpdateProfile(ctx context.Context, input *DoctorProfileInput) (*entity.Doctor, error)
	Schedule(ctx context.Context) ([]entity.ScheduleEntry, error)
	UpdateSchedule(ctx context.Context, entries []entity.ScheduleEntry) error
}
