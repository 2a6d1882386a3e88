package entity

import "time"

// AppointmentStatus is a one-directional workflow advanced only by the
// backend. The client requests transitions and reflects the result.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

type AppointmentType string

const (
	AppointmentTypeInPerson AppointmentType = "in_person"
	AppointmentTypeOnline   AppointmentType = "online"
)

// Appointment as served by the appointments endpoints. Dates and times are
// kept in the backend's wire format (YYYY-MM-DD, HH:MM).
type Appointment struct {
	ID                 int               `json:"id"`
	Patient            *Patient          `json:"patient,omitempty"`
	Doctor             *Doctor           `json:"doctor,omitempty"`
	AppointmentDate    string            `json:"appointment_date"`
	AppointmentTime    string            `json:"appointment_time"`
	AppointmentType    AppointmentType   `json:"appointment_type"`
	Status             AppointmentStatus `json:"status"`
	Symptoms           string            `json:"symptoms,omitempty"`
	Notes              string            `json:"notes,omitempty"`
	CancellationReason string            `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsClosed reports whether the appointment has reached a terminal status.
func (a *Appointment) IsClosed() bool {
	switch a.Status {
	case AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// AppointmentFilter narrows an appointment listing. Zero values mean "no filter".
type AppointmentFilter struct {
	Status AppointmentStatus
	Date   string
}
