package cli

import (
	"time"

	"medibook-portals/internal/domain/entity"
)

func renderUsers(t *Terminal, users []entity.User) {
	if len(users) == 0 {
		t.Println("No users found.")
		return
	}
	t.Printf("%-4s %-30s %-25s %-8s %s\n", "ID", "EMAIL", "NAME", "TYPE", "ACTIVE")
	for _, u := range users {
		t.Printf("%-4d %-30s %-25s %-8s %v\n", u.ID, u.Email, u.FullName, u.UserType, u.IsActive)
	}
}

func renderDoctors(t *Terminal, doctors []entity.Doctor) {
	if len(doctors) == 0 {
		t.Println("No doctors found.")
		return
	}
	t.Printf("%-4s %-25s %-20s %-8s %-9s %s\n", "ID", "NAME", "SPECIALIZATION", "FEE", "APPROVED", "CITY")
	for _, d := range doctors {
		t.Printf("%-4d %-25s %-20s %-8.0f %-9v %s\n",
			d.ID, d.User.FullName, specialtyNames(d.Specialization), d.ConsultationFee, d.IsApproved, d.ClinicCity)
	}
}

func specialtyNames(specs []entity.Specialty) string {
	if len(specs) == 0 {
		return "-"
	}
	names := specs[0].Name
	for _, s := range specs[1:] {
		names += ", " + s.Name
	}
	return names
}

func renderAppointments(t *Terminal, appointments []entity.Appointment) {
	if len(appointments) == 0 {
		t.Println("No appointments found.")
		return
	}
	t.Printf("%-4s %-11s %-6s %-10s %-20s %s\n", "ID", "DATE", "TIME", "STATUS", "PATIENT", "DOCTOR")
	for _, a := range appointments {
		patient, doctor := "-", "-"
		if a.Patient != nil {
			patient = a.Patient.User.FullName
		}
		if a.Doctor != nil {
			doctor = a.Doctor.User.FullName
		}
		t.Printf("%-4d %-11s %-6s %-10s %-20s %s\n",
			a.ID, a.AppointmentDate, a.AppointmentTime, a.Status, patient, doctor)
	}
}

func renderSchedule(t *Terminal, entries []entity.ScheduleEntry) {
	if len(entries) == 0 {
		t.Println("No schedule configured.")
		return
	}
	t.Printf("%-10s %-7s %-7s %s\n", "DAY", "START", "END", "AVAILABLE")
	for _, e := range entries {
		t.Printf("%-10s %-7s %-7s %v\n", time.Weekday(e.DayOfWeek), e.StartTime, e.EndTime, e.IsAvailable)
	}
}
