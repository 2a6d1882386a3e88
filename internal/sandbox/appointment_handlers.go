package sandbox

import (
	"fmt"
	"net/http"
	"time"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/pkg/response"
)

// visibleAppointments scopes the queryset to the acting role, as the real
// backend does: patients see their own, doctors their own, admins everything.
func (s *Server) visibleAppointments(user entity.User) []*entity.Appointment {
	var items []*entity.Appointment
	for _, a := range s.store.sortedAppointments() {
		switch user.UserType {
		case entity.UserTypeAdmin:
			items = append(items, a)
		case entity.UserTypePatient:
			if a.Patient != nil && a.Patient.User.ID == user.ID {
				items = append(items, a)
			}
		case entity.UserTypeDoctor:
			if a.Doctor != nil && a.Doctor.User.ID == user.ID {
				items = append(items, a)
			}
		}
	}
	return items
}

func (s *Server) handleAppointmentList(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	items := []*entity.Appointment{}
	for _, a := range s.visibleAppointments(requestUser(r)) {
		if statusFilter != "" && string(a.Status) != statusFilter {
			continue
		}
		items = append(items, a)
	}

	response.JSON(w, http.StatusOK, items)
}

func (s *Server) handleAppointmentGet(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	appointment := s.findVisible(requestUser(r), pathID(r))
	if appointment == nil {
		response.NotFound(w, "")
		return
	}
	response.JSON(w, http.StatusOK, appointment)
}

func (s *Server) findVisible(user entity.User, id int) *entity.Appointment {
	for _, a := range s.visibleAppointments(user) {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *Server) handleAppointmentCreate(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	if user.UserType != entity.UserTypePatient {
		response.Error(w, http.StatusForbidden, "Only patients can book appointments")
		return
	}

	var req struct {
		DoctorID        int    `json:"doctor_id"`
		AppointmentDate string `json:"appointment_date"`
		AppointmentTime string `json:"appointment_time"`
		AppointmentType string `json:"appointment_type"`
		Symptoms        string `json:"symptoms"`
		Notes           string `json:"notes"`
	}
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	doctor := s.store.doctors[req.DoctorID]
	if doctor == nil {
		response.FieldErrors(w, map[string][]string{"doctor_id": {"Invalid doctor."}})
		return
	}
	if _, err := time.Parse("2006-01-02", req.AppointmentDate); err != nil {
		response.FieldErrors(w, map[string][]string{"appointment_date": {"Date has wrong format. Use YYYY-MM-DD."}})
		return
	}

	// Server-side conflict detection; the client never computes this.
	for _, a := range s.store.appointments {
		if a.Doctor != nil && a.Doctor.ID == doctor.ID &&
			a.AppointmentDate == req.AppointmentDate && a.AppointmentTime == req.AppointmentTime &&
			(a.Status == entity.AppointmentStatusPending || a.Status == entity.AppointmentStatusConfirmed) {
			response.FieldErrors(w, map[string][]string{"appointment_time": {"This time slot is already booked."}})
			return
		}
	}

	patient := s.store.ensurePatient(user)
	appointment := &entity.Appointment{
		ID:              s.store.nextAppointmentID,
		Patient:         patient,
		Doctor:          doctor,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		AppointmentType: entity.AppointmentType(req.AppointmentType),
		Status:          entity.AppointmentStatusPending,
		Symptoms:        req.Symptoms,
		Notes:           req.Notes,
		CreatedAt:       time.Now().UTC(),
	}
	s.store.nextAppointmentID++
	s.store.appointments[appointment.ID] = appointment

	response.JSON(w, http.StatusCreated, appointment)
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	appointment := s.findVisible(requestUser(r), pathID(r))
	if appointment == nil {
		response.NotFound(w, "")
		return
	}

	appointment.Status = entity.AppointmentStatusCancelled
	appointment.CancellationReason = req.Reason
	response.JSON(w, http.StatusOK, appointment)
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	if user.UserType != entity.UserTypeAdmin {
		response.Error(w, http.StatusForbidden, "Only admins can approve appointments")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	appointment := s.store.appointments[pathID(r)]
	if appointment == nil {
		response.NotFound(w, "")
		return
	}
	if appointment.Status != entity.AppointmentStatusPending {
		response.Error(w, http.StatusBadRequest, fmt.Sprintf("Cannot approve appointment with status: %s", appointment.Status))
		return
	}

	appointment.Status = entity.AppointmentStatusConfirmed
	response.JSON(w, http.StatusOK, appointment)
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	if user.UserType != entity.UserTypeAdmin {
		response.Error(w, http.StatusForbidden, "Only admins can reject appointments")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Reason == "" {
		req.Reason = "Rejected by admin"
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	appointment := s.store.appointments[pathID(r)]
	if appointment == nil {
		response.NotFound(w, "")
		return
	}
	if appointment.Status != entity.AppointmentStatusPending {
		response.Error(w, http.StatusBadRequest, fmt.Sprintf("Cannot reject appointment with status: %s", appointment.Status))
		return
	}

	appointment.Status = entity.AppointmentStatusCancelled
	appointment.CancellationReason = req.Reason
	response.JSON(w, http.StatusOK, appointment)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	if user.UserType != entity.UserTypeDoctor {
		response.Error(w, http.StatusForbidden, "Only doctors can update appointment status")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	decode(r, &req)

	valid := map[string]bool{
		string(entity.AppointmentStatusPending):   true,
		string(entity.AppointmentStatusConfirmed): true,
		string(entity.AppointmentStatusCompleted): true,
		string(entity.AppointmentStatusCancelled): true,
		string(entity.AppointmentStatusNoShow):    true,
	}
	if !valid[req.Status] {
		response.Error(w, http.StatusBadRequest, "Invalid status")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	appointment := s.findVisible(user, pathID(r))
	if appointment == nil {
		response.Error(w, http.StatusForbidden, "Permission denied")
		return
	}

	appointment.Status = entity.AppointmentStatus(req.Status)
	response.JSON(w, http.StatusOK, appointment)
}

func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	today := time.Now().UTC().Format("2006-01-02")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	items := []*entity.Appointment{}
	for _, a := range s.visibleAppointments(requestUser(r)) {
		if a.AppointmentDate >= today &&
			(a.Status == entity.AppointmentStatusPending || a.Status == entity.AppointmentStatusConfirmed) {
			items = append(items, a)
		}
	}
	response.JSON(w, http.StatusOK, items)
}

func (s *Server) handlePast(w http.ResponseWriter, r *http.Request) {
	today := time.Now().UTC().Format("2006-01-02")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	items := []*entity.Appointment{}
	for _, a := range s.visibleAppointments(requestUser(r)) {
		if a.AppointmentDate < today || a.IsClosed() {
			items = append(items, a)
		}
	}
	response.JSON(w, http.StatusOK, items)
}
