package sandbox

import (
	"net/http"
	"strings"
	"time"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/pkg/response"
)

func (s *Server) handleDoctorList(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))
	city := strings.ToLower(r.URL.Query().Get("city"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	items := make([]*entity.Doctor, 0, len(s.store.doctors))
	for _, d := range s.store.sortedDoctors() {
		if search != "" && !strings.Contains(strings.ToLower(d.User.FullName), search) {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(d.ClinicCity), city) {
			continue
		}
		items = append(items, d)
	}

	// The doctor list view is unpaginated: bare array shape.
	response.JSON(w, http.StatusOK, items)
}

func (s *Server) handleSpecialties(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	specs := s.store.specialties
	s.store.mu.Unlock()
	response.JSON(w, http.StatusOK, specs)
}

func (s *Server) handleDoctorGet(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	doctor := s.store.doctors[pathID(r)]
	s.store.mu.Unlock()
	if doctor == nil {
		response.NotFound(w, "")
		return
	}
	response.JSON(w, http.StatusOK, doctor)
}

func (s *Server) handleDoctorPatch(w http.ResponseWriter, r *http.Request) {
	var patch struct {
		IsActive           *bool    `json:"is_active"`
		ExperienceYears    *int     `json:"experience_years"`
		ConsultationFee    *float64 `json:"consultation_fee"`
		Qualification      *string  `json:"qualification"`
		ClinicAddress      *string  `json:"clinic_address"`
		ClinicCity         *string  `json:"clinic_city"`
		OnlineConsultation *bool    `json:"online_consultation_available"`
	}
	if err := decode(r, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	doctor := s.store.doctors[pathID(r)]
	if doctor == nil {
		response.NotFound(w, "")
		return
	}

	if patch.IsActive != nil {
		doctor.IsActive = *patch.IsActive
	}
	if patch.ExperienceYears != nil {
		doctor.ExperienceYears = *patch.ExperienceYears
	}
	if patch.ConsultationFee != nil {
		doctor.ConsultationFee = *patch.ConsultationFee
	}
	if patch.Qualification != nil {
		doctor.Qualification = *patch.Qualification
	}
	if patch.ClinicAddress != nil {
		doctor.ClinicAddress = *patch.ClinicAddress
	}
	if patch.ClinicCity != nil {
		doctor.ClinicCity = *patch.ClinicCity
	}
	if patch.OnlineConsultation != nil {
		doctor.OnlineConsultation = *patch.OnlineConsultation
	}

	response.JSON(w, http.StatusOK, doctor)
}

func (s *Server) handleDoctorDelete(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	id := pathID(r)
	if s.store.doctors[id] == nil {
		response.NotFound(w, "")
		return
	}
	delete(s.store.doctors, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDoctorApprove(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	doctor := s.store.doctors[pathID(r)]
	if doctor == nil {
		response.NotFound(w, "")
		return
	}
	doctor.IsApproved = true
	response.JSON(w, http.StatusOK, doctor)
}

func (s *Server) handleDoctorProfile(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	doctor := s.store.doctorByUserID(requestUser(r).ID)
	s.store.mu.Unlock()
	if doctor == nil {
		response.NotFound(w, "Doctor profile not found")
		return
	}
	response.JSON(w, http.StatusOK, doctor)
}

func (s *Server) handleDoctorUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SpecializationIDs  []int   `json:"specialization_ids"`
		ExperienceYears    int     `json:"experience_years"`
		ConsultationFee    float64 `json:"consultation_fee"`
		Qualification      string  `json:"qualification"`
		ClinicAddress      string  `json:"clinic_address"`
		ClinicCity         string  `json:"clinic_city"`
		ClinicState        string  `json:"clinic_state"`
		ClinicPincode      string  `json:"clinic_pincode"`
		OnlineConsultation bool    `json:"online_consultation_available"`
	}
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	doctor := s.store.doctorByUserID(requestUser(r).ID)
	if doctor == nil {
		response.NotFound(w, "Doctor profile not found")
		return
	}

	if len(req.SpecializationIDs) > 0 {
		var specs []entity.Specialty
		for _, id := range req.SpecializationIDs {
			for _, sp := range s.store.specialties {
				if sp.ID == id {
					specs = append(specs, sp)
				}
			}
		}
		doctor.Specialization = specs
	}
	doctor.ExperienceYears = req.ExperienceYears
	doctor.ConsultationFee = req.ConsultationFee
	doctor.Qualification = req.Qualification
	doctor.ClinicAddress = req.ClinicAddress
	doctor.ClinicCity = req.ClinicCity
	doctor.ClinicState = req.ClinicState
	doctor.ClinicPincode = req.ClinicPincode
	doctor.OnlineConsultation = req.OnlineConsultation

	response.JSON(w, http.StatusOK, doctor)
}

func (s *Server) handleScheduleGet(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	doctor := s.store.doctorByUserID(requestUser(r).ID)
	if doctor == nil {
		response.NotFound(w, "Doctor profile not found")
		return
	}
	entries := s.store.schedules[doctor.ID]
	if entries == nil {
		entries = []entity.ScheduleEntry{}
	}
	response.JSON(w, http.StatusOK, entries)
}

func (s *Server) handleScheduleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Schedule []entity.ScheduleEntry `json:"schedule"`
	}
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	doctor := s.store.doctorByUserID(requestUser(r).ID)
	if doctor == nil {
		response.NotFound(w, "Doctor profile not found")
		return
	}
	s.store.schedules[doctor.ID] = req.Schedule
	response.JSON(w, http.StatusOK, req.Schedule)
}

const (
	defaultSlotStart    = 9 * time.Hour
	defaultSlotEnd      = 17 * time.Hour
	defaultSlotDuration = 30 * time.Minute
)

// handleAvailableSlots computes the open 30-minute slots for a date: the
// doctor's weekday schedule window (or the 09:00-17:00 default) minus slots
// already taken by a pending or confirmed appointment.
func (s *Server) handleAvailableSlots(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		response.Error(w, http.StatusBadRequest, "Date parameter is required (YYYY-MM-DD)")
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	doctor := s.store.doctors[pathID(r)]
	if doctor == nil {
		response.NotFound(w, "")
		return
	}

	start, end, duration := defaultSlotStart, defaultSlotEnd, defaultSlotDuration
	available := true
	for _, entry := range s.store.schedules[doctor.ID] {
		if entry.DayOfWeek != int(date.Weekday()) {
			continue
		}
		available = entry.IsAvailable
		if st, err := parseClock(entry.StartTime); err == nil {
			start = st
		}
		if et, err := parseClock(entry.EndTime); err == nil {
			end = et
		}
		break
	}

	booked := make(map[string]bool)
	for _, a := range s.store.appointments {
		if a.Doctor != nil && a.Doctor.ID == doctor.ID && a.AppointmentDate == dateStr &&
			(a.Status == entity.AppointmentStatusPending || a.Status == entity.AppointmentStatusConfirmed) {
			booked[a.AppointmentTime] = true
		}
	}

	slots := []string{}
	if available {
		for t := start; t+duration <= end; t += duration {
			slot := formatClock(t)
			if !booked[slot] {
				slots = append(slots, slot)
			}
		}
	}

	response.JSON(w, http.StatusOK, map[string][]string{"available_slots": slots})
}

func parseClock(value string) (time.Duration, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func formatClock(d time.Duration) string {
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	return time.Date(0, 1, 1, h, m, 0, 0, time.UTC).Format("15:04")
}
