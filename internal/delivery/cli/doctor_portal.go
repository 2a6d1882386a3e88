package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"
	"medibook-portals/internal/portal"
	"medibook-portals/internal/screen"
	"medibook-portals/internal/session"

	"github.com/sirupsen/logrus"
)

// DoctorPortal is the practice console: appointment handling, public profile
// and the weekly availability schedule.
type DoctorPortal struct {
	log      *logrus.Logger
	terminal *Terminal
	session  *session.Session
	portal   *portal.Portal

	appointments *screen.AppointmentList
	profile      *screen.DoctorProfile
	schedule     *screen.Schedule
}

func NewDoctorPortal(
	log *logrus.Logger,
	terminal *Terminal,
	sess *session.Session,
	appointments *screen.AppointmentList,
	profile *screen.DoctorProfile,
	schedule *screen.Schedule,
) *DoctorPortal {
	p := &DoctorPortal{
		log:          log,
		terminal:     terminal,
		session:      sess,
		portal:       portal.New("doctor", log, sess),
		appointments: appointments,
		profile:      profile,
		schedule:     schedule,
	}

	p.portal.Handle("login", true, p.showLogin)
	p.portal.Handle("register", true, p.showRegister)
	p.portal.Handle("appointments", false, p.showAppointments)
	p.portal.Handle("profile", false, p.showProfile)
	p.portal.Handle("schedule", false, p.showSchedule)

	return p
}

func (p *DoctorPortal) Run(ctx context.Context) error {
	p.session.Restore(ctx)

	for {
		name := p.nextRoute()
		if name == "quit" {
			p.session.Logout(ctx)
			return nil
		}
		if err := p.portal.Navigate(ctx, name); err != nil {
			if errors.Is(err, portal.ErrLoginRequired) {
				p.terminal.Error("Please log in first")
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

func (p *DoctorPortal) nextRoute() string {
	if !p.session.IsAuthenticated() {
		p.terminal.Println("  [l] login  [r] register  [q] quit")
		switch p.terminal.ReadLine("doctor>") {
		case "r", "register":
			return "register"
		case "q", "quit":
			return "quit"
		default:
			return "login"
		}
	}
	p.terminal.Println()
	p.terminal.Printf("Doctor Portal — %s\n", p.session.Current().FullName)
	p.terminal.Println("  [a] appointments  [p] profile  [s] schedule  [q] quit")
	switch p.terminal.ReadLine("doctor>") {
	case "p", "profile":
		return "profile"
	case "s", "schedule":
		return "schedule"
	case "q", "quit":
		return "quit"
	default:
		return "appointments"
	}
}

func (p *DoctorPortal) showLogin(ctx context.Context) error {
	p.terminal.Println("Doctor login")
	email := p.terminal.ReadLine("Email:")
	password := p.terminal.ReadLine("Password:")

	if err := p.session.Login(ctx, email, password); err != nil {
		p.terminal.Error(loginErrorMessage(err))
		return nil
	}
	p.terminal.Success("Logged in")
	return nil
}

func (p *DoctorPortal) showRegister(ctx context.Context) error {
	p.terminal.Println("Doctor registration")
	input := &repository.RegisterDoctorInput{
		Email:              p.terminal.ReadLine("Email:"),
		Password:           p.terminal.ReadLine("Password:"),
		PasswordConfirm:    p.terminal.ReadLine("Confirm password:"),
		FirstName:          p.terminal.ReadLine("First name:"),
		LastName:           p.terminal.ReadLine("Last name:"),
		Phone:              p.terminal.ReadLine("Phone:"),
		Qualification:      p.terminal.ReadLine("Qualification:"),
		RegistrationNumber: p.terminal.ReadLine("Registration number:"),
	}
	input.SpecializationIDs = readIDList(p.terminal, "Specialty IDs (comma separated):")
	if years, ok := p.terminal.ReadInt("Experience years:"); ok {
		input.ExperienceYears = years
	}
	if fee := p.terminal.ReadLine("Consultation fee:"); fee != "" {
		input.ConsultationFee, _ = strconv.ParseFloat(fee, 64)
	}

	if err := p.session.RegisterDoctor(ctx, input); err != nil {
		p.terminal.Error(loginErrorMessage(err))
		return nil
	}
	p.terminal.Success("Registration submitted. Your profile awaits admin approval.")
	return nil
}

func (p *DoctorPortal) showAppointments(ctx context.Context) error {
	p.appointments.Load(ctx)
	renderAppointments(p.terminal, p.appointments.Visible())

	switch p.terminal.ReadLine("Action (confirm/complete/no_show/cancel/back):") {
	case "confirm":
		if id, ok := p.terminal.ReadInt("Appointment ID:"); ok {
			p.appointments.UpdateStatus(ctx, id, entity.AppointmentStatusConfirmed)
		}
	case "complete":
		if id, ok := p.terminal.ReadInt("Appointment ID:"); ok {
			p.appointments.UpdateStatus(ctx, id, entity.AppointmentStatusCompleted)
		}
	case "no_show":
		if id, ok := p.terminal.ReadInt("Appointment ID:"); ok {
			p.appointments.UpdateStatus(ctx, id, entity.AppointmentStatusNoShow)
		}
	case "cancel":
		if id, ok := p.terminal.ReadInt("Appointment ID:"); ok {
			p.appointments.Cancel(ctx, id)
		}
	}
	return nil
}

func (p *DoctorPortal) showProfile(ctx context.Context) error {
	p.profile.Load(ctx)
	doctor := p.profile.Profile()
	if doctor == nil {
		return nil
	}
	p.terminal.Printf("%s — %s, %d years, fee %.0f\n",
		doctor.User.FullName, doctor.Qualification, doctor.ExperienceYears, doctor.ConsultationFee)
	p.terminal.Printf("Clinic: %s, %s %s\n", doctor.ClinicAddress, doctor.ClinicCity, doctor.ClinicPincode)

	if !p.terminal.Confirm("Edit profile?") {
		return nil
	}
	input := &repository.DoctorProfileInput{
		Qualification:      doctor.Qualification,
		ExperienceYears:    doctor.ExperienceYears,
		ConsultationFee:    doctor.ConsultationFee,
		ClinicAddress:      doctor.ClinicAddress,
		ClinicCity:         doctor.ClinicCity,
		ClinicState:        doctor.ClinicState,
		ClinicPincode:      doctor.ClinicPincode,
		OnlineConsultation: doctor.OnlineConsultation,
	}
	if v := p.terminal.ReadLine("Qualification (blank to keep):"); v != "" {
		input.Qualification = v
	}
	if years, ok := p.terminal.ReadInt("Experience years (blank to keep):"); ok {
		input.ExperienceYears = years
	}
	if fee := p.terminal.ReadLine("Consultation fee (blank to keep):"); fee != "" {
		input.ConsultationFee, _ = strconv.ParseFloat(fee, 64)
	}
	if v := p.terminal.ReadLine("Clinic city (blank to keep):"); v != "" {
		input.ClinicCity = v
	}
	input.OnlineConsultation = p.terminal.Confirm("Offer online consultations?")

	p.profile.Save(ctx, input)
	return nil
}

func (p *DoctorPortal) showSchedule(ctx context.Context) error {
	p.schedule.Load(ctx)
	renderSchedule(p.terminal, p.schedule.Entries())

	if !p.terminal.Confirm("Edit schedule?") {
		return nil
	}
	entries := append([]entity.ScheduleEntry(nil), p.schedule.Entries()...)
	day, ok := p.terminal.ReadInt("Day of week (0=Sunday .. 6=Saturday):")
	if !ok || day < 0 || day > 6 {
		p.terminal.Error("Invalid day")
		return nil
	}
	entry := entity.ScheduleEntry{
		DayOfWeek:   day,
		StartTime:   p.terminal.ReadLine("Start time (HH:MM):"),
		EndTime:     p.terminal.ReadLine("End time (HH:MM):"),
		IsAvailable: p.terminal.Confirm("Available this day?"),
	}

	replaced := false
	for i := range entries {
		if entries[i].DayOfWeek == day {
			entry.ID = entries[i].ID
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	p.schedule.Save(ctx, entries)
	return nil
}

func readIDList(t *Terminal, label string) []int {
	var ids []int
	for _, part := range strings.Split(t.ReadLine(label), ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
