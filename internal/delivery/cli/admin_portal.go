package cli

import (
	"context"
	"errors"

	"medibook-portals/internal/portal"
	"medibook-portals/internal/screen"
	"medibook-portals/internal/session"

	"github.com/sirupsen/logrus"
)

// AdminPortal is the hospital administration console: dashboard, user
// management, doctor approval and appointment moderation.
type AdminPortal struct {
	log      *logrus.Logger
	terminal *Terminal
	session  *session.Session
	portal   *portal.Portal

	dashboard    *screen.Dashboard
	users        *screen.UserList
	doctors      *screen.DoctorList
	appointments *screen.AppointmentList
}

func NewAdminPortal(
	log *logrus.Logger,
	terminal *Terminal,
	sess *session.Session,
	dashboard *screen.Dashboard,
	users *screen.UserList,
	doctors *screen.DoctorList,
	appointments *screen.AppointmentList,
) *AdminPortal {
	p := &AdminPortal{
		log:          log,
		terminal:     terminal,
		session:      sess,
		portal:       portal.New("admin", log, sess),
		dashboard:    dashboard,
		users:        users,
		doctors:      doctors,
		appointments: appointments,
	}

	p.portal.Handle("login", true, p.showLogin)
	p.portal.Handle("dashboard", false, p.showDashboard)
	p.portal.Handle("users", false, p.showUsers)
	p.portal.Handle("doctors", false, p.showDoctors)
	p.portal.Handle("appointments", false, p.showAppointments)

	return p
}

func (p *AdminPortal) Run(ctx context.Context) error {
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

func (p *AdminPortal) nextRoute() string {
	if !p.session.IsAuthenticated() {
		return "login"
	}
	p.terminal.Println()
	p.terminal.Printf("Admin Portal — %s\n", p.session.Current().FullName)
	p.terminal.Println("  [d] dashboard  [u] users  [o] doctors  [a] appointments  [q] quit")
	switch p.terminal.ReadLine("admin>") {
	case "d", "dashboard":
		return "dashboard"
	case "u", "users":
		return "users"
	case "o", "doctors":
		return "doctors"
	case "a", "appointments":
		return "appointments"
	case "q", "quit":
		return "quit"
	default:
		return "dashboard"
	}
}

func (p *AdminPortal) showLogin(ctx context.Context) error {
	p.terminal.Println("Admin login")
	email := p.terminal.ReadLine("Email:")
	password := p.terminal.ReadLine("Password:")

	if err := p.session.Login(ctx, email, password); err != nil {
		if errors.Is(err, session.ErrAccessDenied) {
			p.terminal.Error("Access denied. Admin privileges required.")
			return nil
		}
		p.terminal.Error(loginErrorMessage(err))
		return nil
	}
	p.terminal.Success("Logged in")
	return nil
}

func (p *AdminPortal) showDashboard(ctx context.Context) error {
	p.dashboard.Load(ctx)
	stats := p.dashboard.Stats()
	p.terminal.Printf("Patients: %d  Doctors: %d  Appointments: %d\n",
		stats.TotalPatients, stats.TotalDoctors, stats.TotalAppointments)
	p.terminal.Printf("Today: %d  Pending doctors: %d  Pending appointments: %d\n",
		stats.TodayAppointments, stats.PendingDoctors, stats.PendingAppointments)
	return nil
}

func (p *AdminPortal) showUsers(ctx context.Context) error {
	p.users.SetSearch(p.terminal.ReadLine("Search (blank for all):"))
	p.users.Load(ctx)
	renderUsers(p.terminal, p.users.Visible())
	return nil
}

func (p *AdminPortal) showDoctors(ctx context.Context) error {
	p.doctors.Load(ctx)
	renderDoctors(p.terminal, p.doctors.Visible())

	switch p.terminal.ReadLine("Doctor action (approve/toggle/delete/back):") {
	case "approve":
		if id, ok := p.terminal.ReadInt("Doctor ID:"); ok {
			p.doctors.Approve(ctx, id)
		}
	case "toggle":
		if id, ok := p.terminal.ReadInt("Doctor ID:"); ok {
			for _, d := range p.doctors.Visible() {
				if d.ID == id {
					p.doctors.ToggleActive(ctx, &d)
					break
				}
			}
		}
	case "delete":
		if id, ok := p.terminal.ReadInt("Doctor ID:"); ok {
			p.doctors.Delete(ctx, id)
		}
	}
	return nil
}

func (p *AdminPortal) showAppointments(ctx context.Context) error {
	p.appointments.Load(ctx)
	renderAppointments(p.terminal, p.appointments.Visible())

	switch p.terminal.ReadLine("Appointment action (approve/reject/cancel/back):") {
	case "approve":
		if id, ok := p.terminal.ReadInt("Appointment ID:"); ok {
			p.appointments.Approve(ctx, id)
		}
	case "reject":
		if id, ok := p.terminal.ReadInt("Appointment ID:"); ok {
			p.appointments.Reject(ctx, id)
		}
	case "cancel":
		if id, ok := p.terminal.ReadInt("Appointment ID:"); ok {
			p.appointments.Cancel(ctx, id)
		}
	}
	return nil
}

// loginErrorMessage keeps backend auth errors readable without leaking the
// raw HTTP envelope.
func loginErrorMessage(err error) string {
	var verr *session.ValidationError
	if errors.As(err, &verr) {
		for _, message := range verr.Fields {
			return message
		}
	}
	return err.Error()
}
