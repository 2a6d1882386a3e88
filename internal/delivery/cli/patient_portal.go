package cli

import (
	"context"
	"errors"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"
	"medibook-portals/internal/portal"
	"medibook-portals/internal/screen"
	"medibook-portals/internal/session"

	"github.com/sirupsen/logrus"
)

// BookingFactory builds a fresh booking flow for one doctor. Each booking
// starts from a clean slate, like opening the booking page anew.
type BookingFactory func(doctorID int) *screen.BookingFlow

// PatientPortal is the public-facing portal: doctor discovery is open to
// anonymous visitors, booking and profile management require an account.
type PatientPortal struct {
	log      *logrus.Logger
	terminal *Terminal
	session  *session.Session
	portal   *portal.Portal

	home         *screen.AppointmentList
	doctors      *screen.DoctorList
	appointments *screen.AppointmentList
	profile      *screen.PatientProfile
	newBooking   BookingFactory
}

func NewPatientPortal(
	log *logrus.Logger,
	terminal *Terminal,
	sess *session.Session,
	home *screen.AppointmentList,
	doctors *screen.DoctorList,
	appointments *screen.AppointmentList,
	profile *screen.PatientProfile,
	newBooking BookingFactory,
) *PatientPortal {
	p := &PatientPortal{
		log:          log,
		terminal:     terminal,
		session:      sess,
		portal:       portal.New("patient", log, sess),
		home:         home,
		doctors:      doctors,
		appointments: appointments,
		profile:      profile,
		newBooking:   newBooking,
	}

	p.portal.Handle("login", true, p.showLogin)
	p.portal.Handle("register", true, p.showRegister)
	p.portal.Handle("doctors", true, p.showDoctors)
	p.portal.Handle("home", false, p.showHome)
	p.portal.Handle("book", false, p.showBooking)
	p.portal.Handle("appointments", false, p.showAppointments)
	p.portal.Handle("profile", false, p.showProfile)

	return p
}

func (p *PatientPortal) Run(ctx context.Context) error {
	p.session.Restore(ctx)

	for {
		name := p.nextRoute()
		if name == "quit" {
			p.session.Logout(ctx)
			return nil
		}
		if err := p.portal.Navigate(ctx, name); err != nil {
			if errors.Is(err, portal.ErrLoginRequired) {
				p.terminal.Error("Please log in to continue")
				if err := p.portal.Navigate(ctx, "login"); err != nil {
					return err
				}
				continue
			}
			if errors.Is(err, portal.ErrUnknownRoute) {
				p.terminal.Error("Unknown option")
				continue
			}
			return err
		}
	}
}

func (p *PatientPortal) nextRoute() string {
	p.terminal.Println()
	if p.session.IsAuthenticated() {
		p.terminal.Printf("Patient Portal — %s\n", p.session.Current().FullName)
		p.terminal.Println("  [h] home  [d] find doctors  [b] book  [a] my appointments  [p] profile  [q] quit")
	} else {
		p.terminal.Println("Patient Portal")
		p.terminal.Println("  [d] find doctors  [b] book  [l] login  [r] register  [q] quit")
	}
	switch p.terminal.ReadLine("patient>") {
	case "h", "home":
		return "home"
	case "b", "book":
		return "book"
	case "a", "appointments":
		return "appointments"
	case "p", "profile":
		return "profile"
	case "l", "login":
		return "login"
	case "r", "register":
		return "register"
	case "q", "quit":
		return "quit"
	default:
		return "doctors"
	}
}

func (p *PatientPortal) showLogin(ctx context.Context) error {
	p.terminal.Println("Patient login")
	email := p.terminal.ReadLine("Email:")
	password := p.terminal.ReadLine("Password:")

	if err := p.session.Login(ctx, email, password); err != nil {
		p.terminal.Error(loginErrorMessage(err))
		return nil
	}
	p.terminal.Success("Logged in")
	return nil
}

func (p *PatientPortal) showRegister(ctx context.Context) error {
	p.terminal.Println("Create your account")
	input := &repository.RegisterPatientInput{
		Email:           p.terminal.ReadLine("Email:"),
		Password:        p.terminal.ReadLine("Password:"),
		PasswordConfirm: p.terminal.ReadLine("Confirm password:"),
		FirstName:       p.terminal.ReadLine("First name:"),
		LastName:        p.terminal.ReadLine("Last name:"),
		Phone:           p.terminal.ReadLine("Phone:"),
	}

	if err := p.session.Register(ctx, input); err != nil {
		p.terminal.Error(loginErrorMessage(err))
		return nil
	}
	p.terminal.Success("Account created")
	return nil
}

// showHome is the logged-in landing view: the patient's upcoming visits.
func (p *PatientPortal) showHome(ctx context.Context) error {
	p.terminal.Printf("Welcome back, %s\n", p.session.Current().FullName)
	p.home.Load(ctx)
	p.terminal.Println("Upcoming appointments:")
	renderAppointments(p.terminal, p.home.Visible())
	return nil
}

func (p *PatientPortal) showDoctors(ctx context.Context) error {
	filter := entity.DoctorFilter{
		Search: p.terminal.ReadLine("Search (blank for all):"),
		City:   p.terminal.ReadLine("City (blank for any):"),
	}
	p.doctors.SetFilter(filter)
	p.doctors.Load(ctx)
	renderDoctors(p.terminal, p.doctors.Visible())
	return nil
}

func (p *PatientPortal) showBooking(ctx context.Context) error {
	doctorID, ok := p.terminal.ReadInt("Doctor ID to book:")
	if !ok {
		return nil
	}

	flow := p.newBooking(doctorID)
	flow.Load(ctx)
	doctor := flow.Doctor()
	if doctor == nil {
		return nil
	}
	p.terminal.Printf("Booking with %s (%s)\n", doctor.User.FullName, specialtyNames(doctor.Specialization))

	for {
		date := p.terminal.ReadLine("Date (YYYY-MM-DD, blank to abort):")
		if date == "" {
			return nil
		}
		flow.SetDate(ctx, date)
		slots := flow.Slots()
		if len(slots) == 0 {
			continue
		}
		p.terminal.Printf("Available: %v\n", slots)
		flow.SetTimeSlot(p.terminal.ReadLine("Time slot:"))
		if flow.TimeSlot() == "" {
			p.terminal.Error("Pick one of the offered slots")
			continue
		}
		break
	}

	if p.terminal.Confirm("Online consultation?") {
		flow.SetAppointmentType(entity.AppointmentTypeOnline)
	}
	flow.SetSymptoms(p.terminal.ReadLine("Symptoms (optional):"))
	flow.SetNotes(p.terminal.ReadLine("Notes (optional):"))

	flow.Submit(ctx)
	return nil
}

func (p *PatientPortal) showAppointments(ctx context.Context) error {
	switch p.terminal.ReadLine("View (upcoming/past, blank for all):") {
	case "upcoming":
		p.appointments.SetScope(screen.ScopeUpcoming)
	case "past":
		p.appointments.SetScope(screen.ScopePast)
	default:
		p.appointments.SetScope(screen.ScopeAll)
	}
	p.appointments.Load(ctx)
	renderAppointments(p.terminal, p.appointments.Visible())

	if p.terminal.Confirm("Cancel an appointment?") {
		if id, ok := p.terminal.ReadInt("Appointment ID:"); ok {
			p.appointments.Cancel(ctx, id)
		}
	}
	return nil
}

func (p *PatientPortal) showProfile(ctx context.Context) error {
	p.profile.Load(ctx)
	patient := p.profile.Profile()
	if patient == nil {
		return nil
	}
	p.terminal.Printf("%s  %s  %s\n", patient.User.FullName, patient.User.Email, patient.User.Phone)
	p.terminal.Printf("DOB: %s  Gender: %s  Blood group: %s\n", patient.DateOfBirth, patient.Gender, patient.BloodGroup)

	if !p.terminal.Confirm("Edit profile?") {
		return nil
	}
	input := &repository.PatientProfileInput{
		FirstName:        patient.User.FirstName,
		LastName:         patient.User.LastName,
		Phone:            patient.User.Phone,
		DateOfBirth:      patient.DateOfBirth,
		Gender:           patient.Gender,
		BloodGroup:       patient.BloodGroup,
		Address:          patient.Address,
		EmergencyContact: patient.EmergencyContact,
	}
	if v := p.terminal.ReadLine("Phone (blank to keep):"); v != "" {
		input.Phone = v
	}
	if v := p.terminal.ReadLine("Date of birth (YYYY-MM-DD, blank to keep):"); v != "" {
		input.DateOfBirth = v
	}
	if v := p.terminal.ReadLine("Address (blank to keep):"); v != "" {
		input.Address = v
	}
	if v := p.terminal.ReadLine("Emergency contact (blank to keep):"); v != "" {
		input.EmergencyContact = v
	}

	p.profile.Save(ctx, input)
	return nil
}
