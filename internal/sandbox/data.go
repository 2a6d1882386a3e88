package sandbox

import (
	"sort"
	"strings"
	"sync"
	"time"

	"medibook-portals/internal/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// account pairs an identity with its password hash.
type account struct {
	user         entity.User
	passwordHash []byte
}

// store is the sandbox's in-memory state. It stands in for the real
// backend's database; portals and tests run against it without any external
// service.
type store struct {
	mu sync.Mutex

	accounts     map[int]*account
	doctors      map[int]*entity.Doctor
	patients     map[int]*entity.Patient
	appointments map[int]*entity.Appointment
	specialties  []entity.Specialty
	schedules    map[int][]entity.ScheduleEntry
	revoked      map[string]bool

	nextUserID        int
	nextDoctorID      int
	nextPatientID     int
	nextAppointmentID int
}

func newStore() *store {
	s := &store{
		accounts:     make(map[int]*account),
		doctors:      make(map[int]*entity.Doctor),
		patients:     make(map[int]*entity.Patient),
		appointments: make(map[int]*entity.Appointment),
		schedules:    make(map[int][]entity.ScheduleEntry),
		revoked:      make(map[string]bool),

		nextUserID:        1,
		nextDoctorID:      1,
		nextPatientID:     1,
		nextAppointmentID: 1,
	}
	s.seed()
	return s
}

// seed provisions the demo accounts the portals log into out of the box.
func (s *store) seed() {
	s.specialties = []entity.Specialty{
		{ID: 1, Name: "General Medicine"},
		{ID: 2, Name: "Cardiology"},
		{ID: 3, Name: "Pediatrics"},
		{ID: 4, Name: "Dermatology"},
	}

	admin := s.addAccount("admin@medibook.local", "admin12345", "Site Admin", entity.UserTypeAdmin)
	admin.user.IsVerified = true

	doctorAcc := s.addAccount("dr.mehta@medibook.local", "doctor12345", "Asha Mehta", entity.UserTypeDoctor)
	doctorAcc.user.IsVerified = true
	doctor := &entity.Doctor{
		ID:                 s.nextDoctorID,
		User:               doctorAcc.user,
		Specialization:     []entity.Specialty{s.specialties[1]},
		ExperienceYears:    12,
		ConsultationFee:    600,
		Qualification:      "MBBS, MD",
		RegistrationNumber: "MH-2011-4521",
		ClinicCity:         "Pune",
		OnlineConsultation: true,
		IsApproved:         true,
		IsActive:           true,
		Rating:             4.6,
		TotalReviews:       128,
	}
	s.nextDoctorID++
	s.doctors[doctor.ID] = doctor

	pendingAcc := s.addAccount("dr.rao@medibook.local", "doctor12345", "Vikram Rao", entity.UserTypeDoctor)
	pending := &entity.Doctor{
		ID:                 s.nextDoctorID,
		User:               pendingAcc.user,
		Specialization:     []entity.Specialty{s.specialties[0]},
		ExperienceYears:    4,
		ConsultationFee:    350,
		Qualification:      "MBBS",
		RegistrationNumber: "KA-2019-0834",
		ClinicCity:         "Bengaluru",
		IsApproved:         false,
		IsActive:           true,
	}
	s.nextDoctorID++
	s.doctors[pending.ID] = pending

	patientAcc := s.addAccount("rohit@medibook.local", "patient12345", "Rohit Sharma", entity.UserTypePatient)
	patient := &entity.Patient{
		ID:   s.nextPatientID,
		User: patientAcc.user,
	}
	s.nextPatientID++
	s.patients[patient.ID] = patient
}

func (s *store) addAccount(email, password, fullName string, userType entity.UserType) *account {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	parts := strings.SplitN(fullName, " ", 2)
	first, last := parts[0], ""
	if len(parts) == 2 {
		last = parts[1]
	}
	acc := &account{
		user: entity.User{
			ID:        s.nextUserID,
			Email:     email,
			FullName:  fullName,
			FirstName: first,
			LastName:  last,
			UserType:  userType,
			IsActive:  true,
			CreatedAt: time.Now().UTC(),
		},
		passwordHash: hash,
	}
	s.nextUserID++
	s.accounts[acc.user.ID] = acc
	return acc
}

func (s *store) accountByEmail(email string) *account {
	for _, acc := range s.accounts {
		if strings.EqualFold(acc.user.Email, email) {
			return acc
		}
	}
	return nil
}

func (s *store) doctorByUserID(userID int) *entity.Doctor {
	for _, d := range s.doctors {
		if d.User.ID == userID {
			return d
		}
	}
	return nil
}

func (s *store) patientByUserID(userID int) *entity.Patient {
	for _, p := range s.patients {
		if p.User.ID == userID {
			return p
		}
	}
	return nil
}

// ensurePatient mirrors the backend's auto-created patient profile.
func (s *store) ensurePatient(user entity.User) *entity.Patient {
	if p := s.patientByUserID(user.ID); p != nil {
		return p
	}
	p := &entity.Patient{ID: s.nextPatientID, User: user}
	s.nextPatientID++
	s.patients[p.ID] = p
	return p
}

func (s *store) sortedAppointments() []*entity.Appointment {
	items := make([]*entity.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		items = append(items, a)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *store) sortedDoctors() []*entity.Doctor {
	items := make([]*entity.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		items = append(items, d)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *store) sortedUsers() []entity.User {
	items := make([]entity.User, 0, len(s.accounts))
	for _, acc := range s.accounts {
		items = append(items, acc.user)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
