package screen

import (
	"context"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"
	"medibook-portals/internal/gateway"
	"medibook-portals/pkg/validator"

	"github.com/sirupsen/logrus"
)

// DoctorProfile is the doctor portal's own-profile screen.
type DoctorProfile struct {
	log       *logrus.Logger
	doctors   repository.DoctorRepository
	notifier  Notifier
	validator *validator.CustomValidator

	phase      Phase
	profile    *entity.Doctor
	submitting bool
}

func NewDoctorProfile(log *logrus.Logger, doctors repository.DoctorRepository, notifier Notifier, v *validator.CustomValidator) *DoctorProfile {
	return &DoctorProfile{
		log:       log,
		doctors:   doctors,
		notifier:  notifier,
		validator: v,
	}
}

func (s *DoctorProfile) Phase() Phase {
	return s.phase
}

func (s *DoctorProfile) Profile() *entity.Doctor {
	return s.profile
}

func (s *DoctorProfile) Load(ctx context.Context) {
	s.phase = PhaseLoading
	profile, err := s.doctors.Profile(ctx)
	if err != nil {
		s.log.Warnf("Failed to load doctor profile: %+v", err)
		s.profile = nil
		s.notifier.Error("Failed to load profile")
	} else {
		s.profile = profile
	}
	s.phase = PhaseReady
}

func (s *DoctorProfile) Save(ctx context.Context, input *repository.DoctorProfileInput) {
	if err := s.validator.Validate(input); err != nil {
		for _, msg := range s.validator.FormatValidationErrors(err) {
			s.notifier.Error(msg)
			break
		}
		return
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	profile, err := s.doctors.UpdateProfile(ctx, input)
	if err != nil {
		s.log.Warnf("Failed to update doctor profile: %+v", err)
		s.notifier.Error(gateway.MessageOr(err, "Failed to update profile"))
		return
	}
	s.profile = profile
	s.notifier.Success("Profile updated successfully")
}

// PatientProfile is the patient portal's own-profile screen.
type PatientProfile struct {
	log       *logrus.Logger
	patients  repository.PatientRepository
	notifier  Notifier
	validator *validator.CustomValidator

	phase      Phase
	profile    *entity.Patient
	submitting bool
}

func NewPatientProfile(log *logrus.Logger, patients repository.PatientRepository, notifier Notifier, v *validator.CustomValidator) *PatientProfile {
	return &PatientProfile{
		log:       log,
		patients:  patients,
		notifier:  notifier,
		validator: v,
	}
}

func (s *PatientProfile) Phase() Phase {
	return s.phase
}

func (s *PatientProfile) Profile() *entity.Patient {
	return s.profile
}

func (s *PatientProfile) Load(ctx context.Context) {
	s.phase = PhaseLoading
	profile, err := s.patients.Profile(ctx)
	if err != nil {
		s.log.Warnf("Failed to load patient profile: %+v", err)
		s.profile = nil
		s.notifier.Error("Failed to load profile")
	} else {
		s.profile = profile
	}
	s.phase = PhaseReady
}

func (s *PatientProfile) Save(ctx context.Context, input *repository.PatientProfileInput) {
	if err := s.validator.Validate(input); err != nil {
		for _, msg := range s.validator.FormatValidationErrors(err) {
			s.notifier.Error(msg)
			break
		}
		return
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	profile, err := s.patients.UpdateProfile(ctx, input)
	if err != nil {
		s.log.Warnf("Failed to update patient profile: %+v", err)
		s.notifier.Error(gateway.MessageOr(err, "Failed to update profile"))
		return
	}
	s.profile = profile
	s.notifier.Success("Profile updated successfully")
}
