package repository

import (
	"context"

	"medibook-portals/internal/domain/entity"
	domainRepo "medibook-portals/internal/domain/repository"
	"medibook-portals/internal/gateway"
)

type authRepository struct {
	client *gateway.Client
}

func NewAuthRepository(client *gateway.Client) domainRepo.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*domainRepo.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result domainRepo.LoginResult
	if err := r.client.Post(ctx, "/auth/login/", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *authRepository) RegisterPatient(ctx context.Context, input *domainRepo.RegisterPatientInput) (*domainRepo.LoginResult, error) {
	var result domainRepo.LoginResult
	if err := r.client.Post(ctx, "/auth/register/", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *authRepository) RegisterDoctor(ctx context.Context, input *domainRepo.RegisterDoctorInput) (*domainRepo.LoginResult, error) {
	var result domainRepo.LoginResult
	if err := r.client.Post(ctx, "/auth/register/doctor/", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *authRepository) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh": refreshToken}
	return r.client.Post(ctx, "/auth/logout/", body, nil)
}

func (r *authRepository) CurrentUser(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := r.client.Get(ctx, "/users/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
