// Package session is the single source of truth for who is logged in. It is
// an explicitly constructed service injected into screens, not ambient global
// state. Identity and the stored credential pair are always mutated together:
// set together on login, cleared together on logout, restore failure, or 401.
package session

import (
	"context"
	"errors"

	"medibook-portals/internal/domain/entity"
	"medibook-portals/internal/domain/repository"
	"medibook-portals/internal/storage"
	"medibook-portals/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrAccessDenied     = errors.New("access denied: this portal requires a different account type")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoCredentials    = errors.New("login response carried no credentials")
)

// ValidationError carries per-field messages for rejected form input. No
// request is issued when input fails validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid input"
}

type Session struct {
	log       *logrus.Logger
	store     storage.TokenStore
	auth      repository.AuthRepository
	validator *validator.CustomValidator

	// requiredRole restricts who may hold a session; empty means any role.
	// The admin portal sets it to entity.UserTypeAdmin.
	requiredRole entity.UserType

	user *entity.User
}

func New(log *logrus.Logger, store storage.TokenStore, auth repository.AuthRepository, v *validator.CustomValidator) *Session {
	return &Session{
		log:       log,
		store:     store,
		auth:      auth,
		validator: v,
	}
}

// RequireRole makes login and restore reject identities of any other type.
func (s *Session) RequireRole(role entity.UserType) {
	s.requiredRole = role
}

func (s *Session) Current() *entity.User {
	return s.user
}

func (s *Session) IsAuthenticated() bool {
	if s.user == nil {
		return false
	}
	return s.requiredRole == "" || s.user.UserType == s.requiredRole
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login authenticates against the backend and, on success, persists the
// credential pair and sets the identity. When the portal requires a role the
// returned identity does not have, nothing is persisted and ErrAccessDenied
// is returned so the caller can surface a distinct message.
func (s *Session) Login(ctx context.Context, email, password string) error {
	if err := s.validator.Validate(&loginInput{Email: email, Password: password}); err != nil {
		return &ValidationError{Fields: s.validator.FormatValidationErrors(err)}
	}

	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.log.Warnf("Login failed for %s: %+v", email, err)
		return err
	}

	return s.establish(result)
}

func (s *Session) Register(ctx context.Context, input *repository.RegisterPatientInput) error {
	if err := s.validator.Validate(input); err != nil {
		return &ValidationError{Fields: s.validator.FormatValidationErrors(err)}
	}

	result, err := s.auth.RegisterPatient(ctx, input)
	if err != nil {
		s.log.Warnf("Registration failed for %s: %+v", input.Email, err)
		return err
	}

	return s.establish(result)
}

func (s *Session) RegisterDoctor(ctx context.Context, input *repository.RegisterDoctorInput) error {
	if err := s.validator.Validate(input); err != nil {
		return &ValidationError{Fields: s.validator.FormatValidationErrors(err)}
	}

	result, err := s.auth.RegisterDoctor(ctx, input)
	if err != nil {
		s.log.Warnf("Doctor registration failed for %s: %+v", input.Email, err)
		return err
	}

	return s.establish(result)
}

func (s *Session) establish(result *repository.LoginResult) error {
	if s.requiredRole != "" && result.User.UserType != s.requiredRole {
		return ErrAccessDenied
	}

	creds := result.Credentials()
	if creds.Empty() {
		return ErrNoCredentials
	}
	if err := s.store.Save(creds.Access, creds.Refresh); err != nil {
		return err
	}
	user := result.User
	s.user = &user

	s.log.WithFields(logrus.Fields{
		"user_id":   user.ID,
		"user_type": user.UserType,
	}).Info("Session established")
	return nil
}

// Logout notifies the server so the refresh token is invalidated, then clears
// local state regardless of what the server answered.
func (s *Session) Logout(ctx context.Context) {
	if refresh := s.store.Refresh(); refresh != "" {
		if err := s.auth.Logout(ctx, refresh); err != nil {
			s.log.Warnf("Server-side logout failed: %+v", err)
		}
	}
	s.clear()
}

// Restore re-establishes the identity from a durably stored credential at
// startup. Any failure clears state and leaves the session logged out; it
// never leaves a stale identity paired with an invalid credential.
func (s *Session) Restore(ctx context.Context) {
	if s.store.Access() == "" {
		return
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		s.log.Warnf("Session restore failed: %+v", err)
		s.clear()
		return
	}

	if s.requiredRole != "" && user.UserType != s.requiredRole {
		s.log.WithField("user_type", user.UserType).Warn("Stored session belongs to a disallowed role")
		s.clear()
		return
	}

	s.user = user
	s.log.WithField("user_id", user.ID).Info("Session restored")
}

// HandleUnauthorized drops the in-memory identity after the gateway has wiped
// the stored credentials on a 401.
func (s *Session) HandleUnauthorized() {
	s.user = nil
}

func (s *Session) clear() {
	if err := s.store.Clear(); err != nil {
		s.log.Warnf("Failed to clear credential store: %+v", err)
	}
	s.user = nil
}
