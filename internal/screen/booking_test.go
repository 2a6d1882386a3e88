package screen

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/gateway"
	"medibook-portals/pkg/validator"
)

func newBookingFixture(doctors *fakeDoctors, appointments *fakeAppointments) (*BookingFlow, *notifierRecorder) {
	notifier := &notifierRecorder{}
	flow := NewBookingFlow(testLogger(), doctors, appointments, notifier, validator.NewValidator(), 3)
	return flow, notifier
}

func approvedDoctor() *entity.Doctor {
	return &entity.Doctor{ID: 3, User: entity.User{ID: 9, FullName: "Dr. Mehta"}, IsApproved: true}
}

func TestDateChangeClearsSelectedTimeSlot(t *testing.T) {
	doctors := &fakeDoctors{
		doctor: approvedDoctor(),
		slots: map[string][]string{
			"2026-09-01": {"09:00", "09:30"},
			"2026-09-02": {"14:00"},
		},
	}
	flow, _ := newBookingFixture(doctors, &fakeAppointments{})
	ctx := context.Background()
	flow.Load(ctx)

	flow.SetDate(ctx, "2026-09-01")
	flow.SetTimeSlot("09:30")
	if flow.TimeSlot() != "09:30" {
		t.Fatalf("slot not selected")
	}

	flow.SetDate(ctx, "2026-09-02")
	if flow.TimeSlot() != "" {
		t.Errorf("time slot %q survived a date change", flow.TimeSlot())
	}
	if flow.CanSubmit() {
		t.Errorf("CanSubmit() true with no slot selected")
	}
}

func TestNoCreateRequestWithoutTimeSlot(t *testing.T) {
	doctors := &fakeDoctors{doctor: approvedDoctor(), slots: map[string][]string{"2026-09-01": {"09:00"}}}
	appointments := &fakeAppointments{}
	flow, notifier := newBookingFixture(doctors, appointments)
	ctx := context.Background()
	flow.Load(ctx)
	flow.SetDate(ctx, "2026-09-01")

	_, err := flow.Submit(ctx)
	if !errors.Is(err, ErrNoSlotSelected) {
		t.Fatalf("expected ErrNoSlotSelected, got %v", err)
	}
	if len(appointments.created) != 0 {
		t.Errorf("create request issued without a slot")
	}
	if len(notifier.errors) != 1 || notifier.errors[0] != "Please select a time slot" {
		t.Errorf("notifications = %v", notifier.errors)
	}
}

func TestOnlyOfferedSlotsSelectable(t *testing.T) {
	doctors := &fakeDoctors{doctor: approvedDoctor(), slots: map[string][]string{"2026-09-01": {"09:00"}}}
	flow, _ := newBookingFixture(doctors, &fakeAppointments{})
	ctx := context.Background()
	flow.SetDate(ctx, "2026-09-01")

	flow.SetTimeSlot("23:59")
	if flow.TimeSlot() != "" {
		t.Errorf("accepted a slot the server never offered")
	}
}

func TestZeroSlotsNotifiesOnce(t *testing.T) {
	doctors := &fakeDoctors{doctor: approvedDoctor(), slots: map[string][]string{}}
	flow, notifier := newBookingFixture(doctors, &fakeAppointments{})

	flow.SetDate(context.Background(), "2026-09-01")
	if len(notifier.errors) != 1 || notifier.errors[0] != "No slots available for this date" {
		t.Errorf("notifications = %v", notifier.errors)
	}
}

func TestSlotFetchFailureNotifies(t *testing.T) {
	doctors := &fakeDoctors{doctor: approvedDoctor(), slotsErr: errors.New("boom")}
	flow, notifier := newBookingFixture(doctors, &fakeAppointments{})

	flow.SetDate(context.Background(), "2026-09-01")
	if len(notifier.errors) != 1 || notifier.errors[0] != "Failed to load available slots" {
		t.Errorf("notifications = %v", notifier.errors)
	}
	if len(flow.Slots()) != 0 {
		t.Errorf("slots kept after failed fetch")
	}
}

func TestSuccessfulBooking(t *testing.T) {
	doctors := &fakeDoctors{doctor: approvedDoctor(), slots: map[string][]string{"2026-09-01": {"10:30"}}}
	appointments := &fakeAppointments{}
	flow, notifier := newBookingFixture(doctors, appointments)
	ctx := context.Background()
	flow.Load(ctx)
	flow.SetDate(ctx, "2026-09-01")
	flow.SetTimeSlot("10:30")
	flow.SetSymptoms("headache")

	appointment, err := flow.Submit(ctx)
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if appointment == nil {
		t.Fatal("no appointment returned")
	}
	if len(appointments.created) != 1 {
		t.Fatalf("create calls = %d", len(appointments.created))
	}
	input := appointments.created[0]
	if input.DoctorID != 3 || input.AppointmentDate != "2026-09-01" || input.AppointmentTime != "10:30" {
		t.Errorf("input = %+v", input)
	}
	if input.AppointmentType != entity.AppointmentTypeInPerson {
		t.Errorf("default type = %q", input.AppointmentType)
	}
	if len(notifier.successes) != 1 || notifier.successes[0] != "Appointment booked successfully!" {
		t.Errorf("successes = %v", notifier.successes)
	}
}

func TestBookingErrorMessageFallbackChain(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "top-level error string wins",
			err:  &gateway.APIError{StatusCode: http.StatusBadRequest, Message: "Doctor is not available", Fields: map[string][]string{"doctor_id": {"x"}}},
			want: "Doctor is not available",
		},
		{
			name: "doctor_id field next",
			err:  &gateway.APIError{StatusCode: http.StatusBadRequest, Fields: map[string][]string{"doctor_id": {"Invalid doctor."}, "appointment_time": {"y"}}},
			want: "Invalid doctor.",
		},
		{
			name: "appointment_time field next",
			err:  &gateway.APIError{StatusCode: http.StatusBadRequest, Fields: map[string][]string{"appointment_time": {"This time slot is already booked."}}},
			want: "This time slot is already booked.",
		},
		{
			name: "generic fallback",
			err:  errors.New("dial tcp: connection refused"),
			want: "Failed to book appointment",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doctors := &fakeDoctors{doctor: approvedDoctor(), slots: map[string][]string{"2026-09-01": {"10:30"}}}
			appointments := &fakeAppointments{createErr: tc.err}
			flow, notifier := newBookingFixture(doctors, appointments)
			ctx := context.Background()
			flow.Load(ctx)
			flow.SetDate(ctx, "2026-09-01")
			flow.SetTimeSlot("10:30")

			if _, err := flow.Submit(ctx); err == nil {
				t.Fatal("expected error")
			}
			last := notifier.errors[len(notifier.errors)-1]
			if last != tc.want {
				t.Errorf("notification = %q, want %q", last, tc.want)
			}
		})
	}
}

func TestSubmitWithoutDoctorLoaded(t *testing.T) {
	flow, _ := newBookingFixture(&fakeDoctors{getErr: errors.New("404")}, &fakeAppointments{})

	if _, err := flow.Submit(context.Background()); !errors.Is(err, ErrNoDoctor) {
		t.Errorf("expected ErrNoDoctor, got %v", err)
	}
}
