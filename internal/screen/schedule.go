package screen

import (
	"context"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"
	"medibook-portals/internal/gateway"

	"github.com/sirupsen/logrus"
)

// Schedule is the doctor portal's weekly availability editor.
type Schedule struct {
	log      *logrus.Logger
	doctors  repository.DoctorRepository
	notifier Notifier

	phase      Phase
	entries    []entity.ScheduleEntry
	submitting bool
}

func NewSchedule(log *logrus.Logger, doctors repository.DoctorRepository, notifier Notifier) *Schedule {
	return &Schedule{
		log:      log,
		doctors:  doctors,
		notifier: notifier,
	}
}

func (s *Schedule) Phase() Phase {
	return s.phase
}

func (s *Schedule) Entries() []entity.ScheduleEntry {
	return s.entries
}

func (s *Schedule) Load(ctx context.Context) {
	s.phase = PhaseLoading
	entries, err := s.doctors.Schedule(ctx)
	if err != nil {
		s.log.Warnf("Failed to load schedule: %+v", err)
		s.entries = nil
		s.notifier.Error("Failed to load schedule")
	} else {
		s.entries = entries
	}
	s.phase = PhaseReady
}

func (s *Schedule) Save(ctx context.Context, entries []entity.ScheduleEntry) {
	s.submitting = true
	defer func() { s.submitting = false }()

	if err := s.doctors.UpdateSchedule(ctx, entries); err != nil {
		s.log.Warnf("Failed to update schedule: %+v", err)
		s.notifier.Error(gateway.MessageOr(err, "Failed to update schedule"))
		return
	}
	s.notifier.Success("Schedule updated successfully")
	s.Load(ctx)
}
