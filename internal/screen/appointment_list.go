package screen

import (
	"context"
	"strings"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"
	"medibook-portals/internal/gateway"

	"github.com/sirupsen/logrus"
)

// Scope selects which appointment feed Load fetches: the full list, the
// upcoming feed the patient home screen shows, or the visit history.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeUpcoming Scope = "upcoming"
	ScopePast     Scope = "past"
)

// AppointmentList is the appointment screen shared by all three portals;
// each portal wires only the actions its role may take.
type AppointmentList struct {
	log          *logrus.Logger
	appointments repository.AppointmentRepository
	notifier     Notifier
	confirmer    Confirmer

	phase        Phase
	items        []entity.Appointment
	scope        Scope
	statusFilter string
	search       string
	busy         map[int]bool
}

func NewAppointmentList(
	log *logrus.Logger,
	appointments repository.AppointmentRepository,
	notifier Notifier,
	confirmer Confirmer,
) *AppointmentList {
	return &AppointmentList{
		log:          log,
		appointments: appointments,
		notifier:     notifier,
		confirmer:    confirmer,
		scope:        ScopeAll,
		statusFilter: FilterAll,
		busy:         make(map[int]bool),
	}
}

func (s *AppointmentList) Phase() Phase {
	return s.phase
}

func (s *AppointmentList) Busy(appointmentID int) bool {
	return s.busy[appointmentID]
}

func (s *AppointmentList) SetScope(scope Scope) {
	s.scope = scope
}

func (s *AppointmentList) SetStatusFilter(status string) {
	s.statusFilter = status
}

func (s *AppointmentList) SetSearch(query string) {
	s.search = query
}

func (s *AppointmentList) Load(ctx context.Context) {
	s.phase = PhaseLoading
	items, err := s.fetch(ctx)
	if err != nil {
		s.log.Warnf("Failed to load appointments: %+v", err)
		s.items = nil
		s.notifier.Error("Failed to load appointments")
	} else {
		s.items = items
	}
	s.phase = PhaseReady
}

func (s *AppointmentList) fetch(ctx context.Context) ([]entity.Appointment, error) {
	switch s.scope {
	case ScopeUpcoming:
		return s.appointments.Upcoming(ctx)
	case ScopePast:
		return s.appointments.Past(ctx)
	default:
		return s.appointments.List(ctx, nil)
	}
}

// Visible applies the status filter and participant-name search to the
// fetched list.
func (s *AppointmentList) Visible() []entity.Appointment {
	visible := make([]entity.Appointment, 0, len(s.items))
	needle := strings.ToLower(s.search)
	for _, a := range s.items {
		if s.statusFilter != FilterAll && string(a.Status) != s.statusFilter {
			continue
		}
		if needle != "" && !appointmentMatches(&a, needle) {
			continue
		}
		visible = append(visible, a)
	}
	return visible
}

func appointmentMatches(a *entity.Appointment, needle string) bool {
	if a.Patient != nil && strings.Contains(strings.ToLower(a.Patient.User.FullName), needle) {
		return true
	}
	if a.Doctor != nil && strings.Contains(strings.ToLower(a.Doctor.User.FullName), needle) {
		return true
	}
	return false
}

// StatusCounts summarizes the unfiltered list for the tab headers.
func (s *AppointmentList) StatusCounts() map[entity.AppointmentStatus]int {
	counts := make(map[entity.AppointmentStatus]int, len(s.items))
	for _, a := range s.items {
		counts[a.Status]++
	}
	return counts
}

func (s *AppointmentList) Approve(ctx context.Context, appointmentID int) {
	if !s.confirmer.Confirm("Are you sure you want to approve this appointment?") {
		return
	}

	s.busy[appointmentID] = true
	defer delete(s.busy, appointmentID)

	if err := s.appointments.Approve(ctx, appointmentID); err != nil {
		s.log.Warnf("Failed to approve appointment %d: %+v", appointmentID, err)
		s.notifier.Error(gateway.MessageOr(err, "Failed to approve appointment"))
		return
	}
	s.notifier.Success("Appointment approved successfully")
	s.Load(ctx)
}

func (s *AppointmentList) Reject(ctx context.Context, appointmentID int) {
	reason, ok := s.confirmer.Prompt("Please provide a reason for rejection (optional):")
	if !ok {
		return
	}
	if reason == "" {
		reason = "Rejected by admin"
	}

	s.busy[appointmentID] = true
	defer delete(s.busy, appointmentID)

	if err := s.appointments.Reject(ctx, appointmentID, reason); err != nil {
		s.log.Warnf("Failed to reject appointment %d: %+v", appointmentID, err)
		s.notifier.Error(gateway.MessageOr(err, "Failed to reject appointment"))
		return
	}
	s.notifier.Success("Appointment rejected")
	s.Load(ctx)
}

func (s *AppointmentList) Cancel(ctx context.Context, appointmentID int) {
	if !s.confirmer.Confirm("Are you sure you want to cancel this appointment?") {
		return
	}
	reason, ok := s.confirmer.Prompt("Please provide a reason for cancellation (optional):")
	if !ok {
		reason = ""
	}

	s.busy[appointmentID] = true
	defer delete(s.busy, appointmentID)

	if err := s.appointments.Cancel(ctx, appointmentID, reason); err != nil {
		s.log.Warnf("Failed to cancel appointment %d: %+v", appointmentID, err)
		s.notifier.Error(gateway.MessageOr(err, "Failed to cancel appointment"))
		return
	}
	s.notifier.Success("Appointment cancelled successfully")
	s.Load(ctx)
}

// UpdateStatus is the doctor portal's confirm/complete/no-show action.
func (s *AppointmentList) UpdateStatus(ctx context.Context, appointmentID int, status entity.AppointmentStatus) {
	s.busy[appointmentID] = true
	defer delete(s.busy, appointmentID)

	if err := s.appointments.UpdateStatus(ctx, appointmentID, status); err != nil {
		s.log.Warnf("Failed to update appointment %d status: %+v", appointmentID, err)
		s.notifier.Error(gateway.MessageOr(err, "Failed to update status"))
		return
	}
	s.notifier.Success("Status updated")
	s.Load(ctx)
}
