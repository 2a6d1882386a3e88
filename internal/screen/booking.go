package screen

import (
	"context"
	"errors"
	"time"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"
	"medibook-portals/internal/gateway"
	"medibook-portals/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoSlotSelected = errors.New("no time slot selected")
	ErrNoDoctor       = errors.New("doctor not loaded")
)

// bookingWindowDays limits how far ahead a date may be picked.
const bookingWindowDays = 30

// BookingFlow is the patient portal's two-stage booking form. Picking a date
// triggers a fetch of that date's available slots; changing the date clears
// any previously selected time, since a time is only meaningful relative to
// the date it was offered for. Submission never leaves the client without a
// selected slot; every other conflict check is the server's.
type BookingFlow struct {
	log          *logrus.Logger
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
	notifier     Notifier
	validator    *validator.CustomValidator

	doctorID int
	doctor   *entity.Doctor
	phase    Phase

	slots        []string
	loadingSlots bool
	submitting   bool

	date            string
	timeSlot        string
	appointmentType entity.AppointmentType
	symptoms        string
	notes           string
}

func NewBookingFlow(
	log *logrus.Logger,
	doctors repository.DoctorRepository,
	appointments repository.AppointmentRepository,
	notifier Notifier,
	v *validator.CustomValidator,
	doctorID int,
) *BookingFlow {
	return &BookingFlow{
		log:             log,
		doctors:         doctors,
		appointments:    appointments,
		notifier:        notifier,
		validator:       v,
		doctorID:        doctorID,
		appointmentType: entity.AppointmentTypeInPerson,
	}
}

func (s *BookingFlow) Phase() Phase {
	return s.phase
}

func (s *BookingFlow) Doctor() *entity.Doctor {
	return s.doctor
}

func (s *BookingFlow) Slots() []string {
	return s.slots
}

func (s *BookingFlow) LoadingSlots() bool {
	return s.loadingSlots
}

func (s *BookingFlow) Submitting() bool {
	return s.submitting
}

func (s *BookingFlow) Date() string {
	return s.date
}

func (s *BookingFlow) TimeSlot() string {
	return s.timeSlot
}

func (s *BookingFlow) Load(ctx context.Context) {
	s.phase = PhaseLoading
	doctor, err := s.doctors.Get(ctx, s.doctorID)
	if err != nil {
		s.log.Warnf("Failed to load doctor %d: %+v", s.doctorID, err)
		s.notifier.Error("Failed to load doctor details")
	} else {
		s.doctor = doctor
	}
	s.phase = PhaseReady
}

// MinDate is today; MaxDate is the end of the booking window.
func (s *BookingFlow) MinDate(now time.Time) string {
	return now.Format("2006-01-02")
}

func (s *BookingFlow) MaxDate(now time.Time) string {
	return now.AddDate(0, 0, bookingWindowDays).Format("2006-01-02")
}

// SetDate records the chosen date, clears the previously selected time slot,
// and fetches the slots the server offers for that date.
func (s *BookingFlow) SetDate(ctx context.Context, date string) {
	s.date = date
	s.timeSlot = ""
	s.slots = nil
	if date == "" {
		return
	}

	s.loadingSlots = true
	defer func() { s.loadingSlots = false }()

	slots, err := s.doctors.AvailableSlots(ctx, s.doctorID, date)
	if err != nil {
		s.log.Warnf("Failed to load slots for doctor %d on %s: %+v", s.doctorID, date, err)
		s.notifier.Error("Failed to load available slots")
		return
	}
	s.slots = slots
	if len(slots) == 0 {
		s.notifier.Error("No slots available for this date")
	}
}

// SetTimeSlot selects one of the offered slots; anything else is ignored.
func (s *BookingFlow) SetTimeSlot(slot string) {
	for _, offered := range s.slots {
		if offered == slot {
			s.timeSlot = slot
			return
		}
	}
}

func (s *BookingFlow) SetAppointmentType(t entity.AppointmentType) {
	s.appointmentType = t
}

func (s *BookingFlow) SetSymptoms(symptoms string) {
	s.symptoms = symptoms
}

func (s *BookingFlow) SetNotes(notes string) {
	s.notes = notes
}

// CanSubmit gates the submit control: a time slot must have been chosen.
func (s *BookingFlow) CanSubmit() bool {
	return s.timeSlot != "" && !s.submitting
}

// Submit books the appointment. No create request is ever issued without a
// selected time slot. Server-side rejections are surfaced verbatim, with the
// backend's field errors as fallback detail.
func (s *BookingFlow) Submit(ctx context.Context) (*entity.Appointment, error) {
	if s.doctor == nil {
		return nil, ErrNoDoctor
	}
	if s.timeSlot == "" {
		s.notifier.Error("Please select a time slot")
		return nil, ErrNoSlotSelected
	}

	input := &repository.CreateAppointmentInput{
		DoctorID:        s.doctorID,
		AppointmentDate: s.date,
		AppointmentTime: s.timeSlot,
		AppointmentType: s.appointmentType,
		Symptoms:        s.symptoms,
		Notes:           s.notes,
	}
	if err := s.validator.Validate(input); err != nil {
		for _, msg := range s.validator.FormatValidationErrors(err) {
			s.notifier.Error(msg)
			break
		}
		return nil, err
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	appointment, err := s.appointments.Create(ctx, input)
	if err != nil {
		s.log.Warnf("Booking failed for doctor %d: %+v", s.doctorID, err)
		s.notifier.Error(bookingErrorMessage(err))
		return nil, err
	}

	s.notifier.Success("Appointment booked successfully!")
	return appointment, nil
}

func bookingErrorMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if msg := apiErr.Field("doctor_id"); msg != "" {
			return msg
		}
		if msg := apiErr.Field("appointment_time"); msg != "" {
			return msg
		}
	}
	return "Failed to book appointment"
}
