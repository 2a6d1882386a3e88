package portal

import (
	"context"
	"errors"
	"testing"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"
	"medibook-portals/internal/session"
	"medibook-portals/internal/storage"
	"medibook-portals/pkg/validator"

	"github.com/sirupsen/logrus"
)

type stubAuth struct {
	result *repository.LoginResult
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*repository.LoginResult, error) {
	return s.result, nil
}

func (s *stubAuth) RegisterPatient(ctx context.Context, input *repository.RegisterPatientInput) (*repository.LoginResult, error) {
	return s.result, nil
}

func (s *stubAuth) RegisterDoctor(ctx context.Context, input *repository.RegisterDoctorInput) (*repository.LoginResult, error) {
	return s.result, nil
}

func (s *stubAuth) Logout(ctx context.Context, refreshToken string) error { return nil }

func (s *stubAuth) CurrentUser(ctx context.Context) (*entity.User, error) { return nil, nil }

func newTestPortal(t *testing.T) (*Portal, *session.Session) {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	auth := &stubAuth{result: &repository.LoginResult{
		User:    entity.User{ID: 1, UserType: entity.UserTypePatient},
		Access:  "a",
		Refresh: "r",
	}}
	sess := session.New(log, storage.NewMemoryStore(), auth, validator.NewValidator())
	return New("patient", log, sess), sess
}

func TestProtectedRouteRequiresLogin(t *testing.T) {
	p, sess := newTestPortal(t)
	shown := 0
	p.Handle("appointments", false, func(ctx context.Context) error {
		shown++
		return nil
	})

	err := p.Navigate(context.Background(), "appointments")
	if !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}
	if shown != 0 {
		t.Errorf("protected screen rendered while logged out")
	}
	if p.Current() != "" {
		t.Errorf("current route advanced on a blocked navigation")
	}

	if err := sess.Login(context.Background(), "a@b.c", "secret123"); err != nil {
		t.Fatalf("login error: %v", err)
	}
	if err := p.Navigate(context.Background(), "appointments"); err != nil {
		t.Fatalf("Navigate() after login error: %v", err)
	}
	if shown != 1 || p.Current() != "appointments" {
		t.Errorf("shown = %d current = %q", shown, p.Current())
	}
}

func TestPublicRouteReachableLoggedOut(t *testing.T) {
	p, _ := newTestPortal(t)
	p.Handle("doctors", true, func(ctx context.Context) error { return nil })

	if err := p.Navigate(context.Background(), "doctors"); err != nil {
		t.Errorf("Navigate() error: %v", err)
	}
}

func TestUnknownRoute(t *testing.T) {
	p, _ := newTestPortal(t)

	err := p.Navigate(context.Background(), "nope")
	if !errors.Is(err, ErrUnknownRoute) {
		t.Errorf("expected ErrUnknownRoute, got %v", err)
	}
}

func TestRoutesListsOnlyReachable(t *testing.T) {
	p, sess := newTestPortal(t)
	p.Handle("login", true, func(ctx context.Context) error { return nil })
	p.Handle("profile", false, func(ctx context.Context) error { return nil })

	if got := p.Routes(); len(got) != 1 || got[0] != "login" {
		t.Errorf("logged-out routes = %v", got)
	}

	if err := sess.Login(context.Background(), "a@b.c", "secret123"); err != nil {
		t.Fatal(err)
	}
	if got := p.Routes(); len(got) != 2 {
		t.Errorf("logged-in routes = %v", got)
	}
}
