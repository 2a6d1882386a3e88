package screen

import (
	"context"
	"fmt"
	"strings"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Doctor management tabs.
const (
	TabAll      = "all"
	TabPending  = "pending"
	TabApproved = "approved"
	TabInactive = "inactive"
)

// DoctorList is the admin portal's doctor management screen. It also serves
// the patient portal's doctor browse view, where the mutating actions are
// simply never wired to a command.
type DoctorList struct {
	log       *logrus.Logger
	doctors   repository.DoctorRepository
	admin     repository.AdminRepository
	notifier  Notifier
	confirmer Confirmer

	phase  Phase
	items  []entity.Doctor
	tab    string
	search string
	busy   map[int]bool
	filter entity.DoctorFilter
}

func NewDoctorList(
	log *logrus.Logger,
	doctors repository.DoctorRepository,
	admin repository.AdminRepository,
	notifier Notifier,
	confirmer Confirmer,
) *DoctorList {
	return &DoctorList{
		log:       log,
		doctors:   doctors,
		admin:     admin,
		notifier:  notifier,
		confirmer: confirmer,
		tab:       TabAll,
		busy:      make(map[int]bool),
	}
}

func (s *DoctorList) Phase() Phase {
	return s.phase
}

// Busy reports whether a row has an action in flight.
func (s *DoctorList) Busy(doctorID int) bool {
	return s.busy[doctorID]
}

func (s *DoctorList) SetFilter(filter entity.DoctorFilter) {
	s.filter = filter
}

func (s *DoctorList) SetTab(tab string) {
	s.tab = tab
}

func (s *DoctorList) SetSearch(query string) {
	s.search = query
}

func (s *DoctorList) Load(ctx context.Context) {
	s.phase = PhaseLoading
	items, err := s.doctors.List(ctx, &s.filter)
	if err != nil {
		s.log.Warnf("Failed to load doctors: %+v", err)
		s.items = nil
		s.notifier.Error("Failed to load doctors")
	} else {
		s.items = items
	}
	s.phase = PhaseReady
}

// Visible applies the active tab and search text to the fetched list.
func (s *DoctorList) Visible() []entity.Doctor {
	visible := make([]entity.Doctor, 0, len(s.items))
	needle := strings.ToLower(s.search)
	for _, d := range s.items {
		switch s.tab {
		case TabPending:
			if d.IsApproved {
				continue
			}
		case TabApproved:
			if !d.IsApproved {
				continue
			}
		case TabInactive:
			if d.IsActive {
				continue
			}
		}
		if needle != "" && !doctorMatches(&d, needle) {
			continue
		}
		visible = append(visible, d)
	}
	return visible
}

func doctorMatches(d *entity.Doctor, needle string) bool {
	if strings.Contains(strings.ToLower(d.User.FullName), needle) ||
		strings.Contains(strings.ToLower(d.User.Email), needle) {
		return true
	}
	for _, sp := range d.Specialization {
		if strings.Contains(strings.ToLower(sp.Name), needle) {
			return true
		}
	}
	return false
}

// Approve asks for confirmation, issues the admin approval call, and
// re-fetches the list on success.
func (s *DoctorList) Approve(ctx context.Context, doctorID int) {
	if !s.confirmer.Confirm("Are you sure you want to approve this doctor?") {
		return
	}

	s.busy[doctorID] = true
	defer delete(s.busy, doctorID)

	if err := s.admin.ApproveDoctor(ctx, doctorID); err != nil {
		s.log.Warnf("Failed to approve doctor %d: %+v", doctorID, err)
		s.notifier.Error("Failed to approve doctor")
		return
	}
	s.notifier.Success("Doctor approved successfully")
	s.Load(ctx)
}

// ToggleActive flips a doctor's is_active flag after confirmation.
func (s *DoctorList) ToggleActive(ctx context.Context, doctor *entity.Doctor) {
	action := "enable"
	if doctor.IsActive {
		action = "disable"
	}
	if !s.confirmer.Confirm(fmt.Sprintf("Are you sure you want to %s this doctor?", action)) {
		return
	}

	s.busy[doctor.ID] = true
	defer delete(s.busy, doctor.ID)

	next := !doctor.IsActive
	if _, err := s.doctors.Update(ctx, doctor.ID, &repository.DoctorPatch{IsActive: &next}); err != nil {
		s.log.Warnf("Failed to %s doctor %d: %+v", action, doctor.ID, err)
		s.notifier.Error(fmt.Sprintf("Failed to %s doctor", action))
		return
	}
	s.notifier.Success(fmt.Sprintf("Doctor %sd successfully", action))
	s.Load(ctx)
}

// Delete permanently removes a doctor. A double confirmation is required:
// the yes/no prompt plus typing DELETE, mirroring how destructive this is.
func (s *DoctorList) Delete(ctx context.Context, doctorID int) {
	if !s.confirmer.Confirm("This will permanently delete the doctor and all associated data. This action cannot be undone. Are you sure?") {
		return
	}
	typed, ok := s.confirmer.Prompt(`Type "DELETE" to confirm:`)
	if !ok || typed != "DELETE" {
		s.notifier.Error("Deletion cancelled")
		return
	}

	s.busy[doctorID] = true
	defer delete(s.busy, doctorID)

	if err := s.doctors.Delete(ctx, doctorID); err != nil {
		s.log.Warnf("Failed to delete doctor %d: %+v", doctorID, err)
		s.notifier.Error("Failed to delete doctor")
		return
	}
	s.notifier.Success("Doctor deleted successfully")
	s.Load(ctx)
}

// SaveEdit applies an edit-modal patch and re-fetches on success.
func (s *DoctorList) SaveEdit(ctx context.Context, doctorID int, patch *repository.DoctorPatch) {
	s.busy[doctorID] = true
	defer delete(s.busy, doctorID)

	if _, err := s.doctors.Update(ctx, doctorID, patch); err != nil {
		s.log.Warnf("Failed to update doctor %d: %+v", doctorID, err)
		s.notifier.Error("Failed to update doctor")
		return
	}
	s.notifier.Success("Doctor updated successfully")
	s.Load(ctx)
}
