package screen

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"
	"medibook-portals/internal/gateway"
	"medibook-portals/pkg/validator"
)

func TestPatientProfileSaveRejectsBadInputWithoutRequest(t *testing.T) {
	repo := &fakePatients{patient: &entity.Patient{ID: 1}}
	notifier := &notifierRecorder{}
	screen := NewPatientProfile(testLogger(), repo, notifier, validator.NewValidator())

	screen.Save(context.Background(), &repository.PatientProfileInput{
		FirstName:   "Rohit",
		LastName:    "Sharma",
		DateOfBirth: "01-01-1990", // wrong format
	})

	if len(repo.updates) != 0 {
		t.Errorf("update issued with invalid input")
	}
	if len(notifier.errors) != 1 {
		t.Errorf("notifications = %v", notifier.errors)
	}
}

func TestPatientProfileSaveSuccess(t *testing.T) {
	repo := &fakePatients{patient: &entity.Patient{ID: 1, Gender: "male"}}
	notifier := &notifierRecorder{}
	screen := NewPatientProfile(testLogger(), repo, notifier, validator.NewValidator())

	screen.Save(context.Background(), &repository.PatientProfileInput{
		FirstName:   "Rohit",
		LastName:    "Sharma",
		DateOfBirth: "1990-01-01",
		Gender:      "male",
	})

	if len(repo.updates) != 1 {
		t.Fatalf("updates = %d", len(repo.updates))
	}
	if len(notifier.successes) != 1 || notifier.successes[0] != "Profile updated successfully" {
		t.Errorf("successes = %v", notifier.successes)
	}
	if screen.Profile() == nil {
		t.Errorf("profile not refreshed from the response")
	}
}

func TestDoctorProfileSaveSurfacesServerMessage(t *testing.T) {
	repo := &fakeDoctors{
		doctor: approvedDoctor(),
		updateErr: &gateway.APIError{
			StatusCode: http.StatusBadRequest,
			Message:    "Registration number already in use",
		},
	}
	notifier := &notifierRecorder{}
	screen := NewDoctorProfile(testLogger(), repo, notifier, validator.NewValidator())
	ctx := context.Background()
	screen.Load(ctx)

	screen.Save(ctx, &repository.DoctorProfileInput{Qualification: "MBBS"})

	if len(notifier.errors) != 1 || notifier.errors[0] != "Registration number already in use" {
		t.Errorf("notifications = %v", notifier.errors)
	}
}

func TestScheduleSaveRefetches(t *testing.T) {
	repo := &fakeDoctors{schedule: []entity.ScheduleEntry{{DayOfWeek: 1, StartTime: "09:00", EndTime: "13:00", IsAvailable: true}}}
	notifier := &notifierRecorder{}
	screen := NewSchedule(testLogger(), repo, notifier)
	ctx := context.Background()
	screen.Load(ctx)

	next := []entity.ScheduleEntry{{DayOfWeek: 2, StartTime: "10:00", EndTime: "12:00", IsAvailable: true}}
	screen.Save(ctx, next)

	if len(screen.Entries()) != 1 || screen.Entries()[0].DayOfWeek != 2 {
		t.Errorf("entries = %+v", screen.Entries())
	}
	if len(notifier.successes) != 1 {
		t.Errorf("successes = %v", notifier.successes)
	}
}

func TestScheduleLoadFailure(t *testing.T) {
	repo := &fakeDoctors{scheduleErr: errors.New("boom")}
	notifier := &notifierRecorder{}
	screen := NewSchedule(testLogger(), repo, notifier)

	screen.Load(context.Background())

	if len(screen.Entries()) != 0 || len(notifier.errors) != 1 {
		t.Errorf("entries = %v notifications = %v", screen.Entries(), notifier.errors)
	}
}
