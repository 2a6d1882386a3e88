// Package repository defines the domain service modules: one interface per
// backend resource, each method translating to exactly one REST call. No
// caching, no retries, no batching; failures are the raw transport or HTTP
// error passed upward uninterpreted.
package repository

import (
	"context"

	"medibook-portals/internal/domain/entity"
)

// LoginResult is the payload of POST /auth/login/ and the register endpoints.
// The backend serves the access token under "access" and, for older clients,
// duplicates it under "token".
type LoginResult struct {
	User    entity.User `json:"user"`
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	Token   string      `json:"token"`
}

func (r *LoginResult) AccessToken() string {
	if r.Access != "" {
		return r.Access
	}
	return r.Token
}

// Credentials is the persistable token pair carried by the result.
func (r *LoginResult) Credentials() entity.Credentials {
	return entity.Credentials{Access: r.AccessToken(), Refresh: r.Refresh}
}

type RegisterPatientInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Phone           string `json:"phone" validate:"omitempty,min=10,max=20"`
}

type RegisterDoctorInput struct {
	Email              string  `json:"email" validate:"required,email"`
	Password           string  `json:"password" validate:"required,min=8"`
	PasswordConfirm    string  `json:"password_confirm" validate:"required,eqfield=Password"`
	FirstName          string  `json:"first_name" validate:"required"`
	LastName           string  `json:"last_name" validate:"required"`
	Phone              string  `json:"phone" validate:"omitempty,min=10,max=20"`
	SpecializationIDs  []int   `json:"specialization_ids" validate:"required,min=1"`
	ExperienceYears    int     `json:"experience_years" validate:"gte=0,lte=60"`
	ConsultationFee    float64 `json:"consultation_fee" validate:"gte=0"`
	Qualification      string  `json:"qualification" validate:"required"`
	RegistrationNumber string  `json:"registration_number" validate:"required"`
	ClinicAddress      string  `json:"clinic_address" validate:"omitempty"`
	ClinicCity         string  `json:"clinic_city" validate:"omitempty"`
	ClinicState        string  `json:"clinic_state" validate:"omitempty"`
	ClinicPincode      string  `json:"clinic_pincode" validate:"omitempty"`
}

type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RegisterPatient(ctx context.Context, input *RegisterPatientInput) (*LoginResult, error)
	RegisterDoctor(ctx context.Context, input *RegisterDoctorInput) (*LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context) (*entity.User, error)
}
