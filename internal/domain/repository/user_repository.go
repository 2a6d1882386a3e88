package repository

import (
	"context"

	"medibook-portals/internal/domain/entity"
)

type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
}
