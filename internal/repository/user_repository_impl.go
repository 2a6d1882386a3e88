package repository

import (
	"context"
	"encoding/json"

	"medibook-portals/internal/converter"
	"medibook-portals/internal/domain/entity"
	domainRepo "medibook-portals/internal/domain/repository"
	"medibook-portals/internal/gateway"
)

type userRepository struct {
	client *gateway.Client
}

func NewUserRepository(client *gateway.Client) domainRepo.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/users/", nil, &raw); err != nil {
		return nil, err
	}
	return converter.UsersFromList(raw)
}
