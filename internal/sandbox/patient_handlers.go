package sandbox

import (
	"net/http"
	"time"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/pkg/response"
)

func (s *Server) handlePatientProfile(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	response.JSON(w, http.StatusOK, s.store.ensurePatient(requestUser(r)))
}

func (s *Server) handlePatientUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone            string `json:"phone"`
		DateOfBirth      string `json:"date_of_birth"`
		Gender           string `json:"gender"`
		BloodGroup       string `json:"blood_group"`
		Address          string `json:"address"`
		EmergencyContact string `json:"emergency_contact"`
	}
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	patient := s.store.ensurePatient(requestUser(r))
	if req.Phone != "" {
		patient.User.Phone = req.Phone
		if acc := s.store.accounts[patient.User.ID]; acc != nil {
			acc.user.Phone = req.Phone
		}
	}
	patient.DateOfBirth = req.DateOfBirth
	patient.Gender = req.Gender
	patient.BloodGroup = req.BloodGroup
	patient.Address = req.Address
	patient.EmergencyContact = req.EmergencyContact

	response.JSON(w, http.StatusOK, patient)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	today := time.Now().UTC().Format("2006-01-02")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	stats := entity.DashboardStats{
		TotalPatients:     len(s.store.patients),
		TotalDoctors:      len(s.store.doctors),
		TotalAppointments: len(s.store.appointments),
	}
	for _, d := range s.store.doctors {
		if !d.IsApproved {
			stats.PendingDoctors++
		}
	}
	for _, a := range s.store.appointments {
		if a.AppointmentDate == today {
			stats.TodayAppointments++
		}
		if a.Status == entity.AppointmentStatusPending {
			stats.PendingAppointments++
		}
	}

	response.JSON(w, http.StatusOK, stats)
}
