package converter

import (
	"encoding/json"
	"testing"
)

func TestBareArrayList(t *testing.T) {
	users, err := UsersFromList(json.RawMessage(`[{"id": 1, "email": "a@b.c"}, {"id": 2}]`))
	if err != nil {
		t.Fatalf("UsersFromList() error: %v", err)
	}
	if len(users) != 2 || users[0].Email != "a@b.c" {
		t.Errorf("users = %+v", users)
	}
}

func TestPaginatedEnvelopeList(t *testing.T) {
	users, err := UsersFromList(json.RawMessage(`{"count": 2, "results": [{"id": 1}, {"id": 2}]}`))
	if err != nil {
		t.Fatalf("UsersFromList() error: %v", err)
	}
	if len(users) != 2 || users[1].ID != 2 {
		t.Errorf("users = %+v", users)
	}
}

func TestEmptyPayloadIsEmptyList(t *testing.T) {
	users, err := UsersFromList(nil)
	if err != nil {
		t.Fatalf("UsersFromList() error: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("users = %+v, want none", users)
	}
}

func TestUnrecognizedPayloadIsAnError(t *testing.T) {
	if _, err := DoctorsFromList(json.RawMessage(`"surprise"`)); err == nil {
		t.Errorf("expected error for non-list payload")
	}
}

func TestNestedRelationsDecode(t *testing.T) {
	raw := json.RawMessage(`[{
		"id": 5,
		"status": "pending",
		"appointment_date": "2026-09-01",
		"appointment_time": "10:30",
		"patient": {"id": 1, "user": {"id": 7, "email": "p@x.y"}},
		"doctor": {"id": 2, "user": {"id": 9}, "specialization": [{"id": 1, "name": "Cardiology"}]}
	}]`)

	appointments, err := AppointmentsFromList(raw)
	if err != nil {
		t.Fatalf("AppointmentsFromList() error: %v", err)
	}
	a := appointments[0]
	if a.Patient == nil || a.Patient.User.Email != "p@x.y" {
		t.Errorf("patient = %+v", a.Patient)
	}
	if a.Doctor == nil || a.Doctor.Specialization[0].Name != "Cardiology" {
		t.Errorf("doctor = %+v", a.Doctor)
	}
}
