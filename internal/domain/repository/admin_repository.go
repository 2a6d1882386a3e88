package repository

import (
	"context"

	"medibook-portals/internal/domain/entity"
)

type AdminRepository interface {
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
	ApproveDoctor(ctx context.Context, doctorID int) error
}
