package repository

import (
	"context"
	"fmt"

	"medibook-portals/internal/domain/entity"
	domainRepo "medibook-portals/internal/domain/repository"
	"medibook-portals/internal/gateway"
)

type adminRepository struct {
	client *gateway.Client
}

func NewAdminRepository(client *gateway.Client) domainRepo.AdminRepository {
	return &adminRepository{client: client}
}

func (r *adminRepository) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats
	if err := r.client.Get(ctx, "/admin/dashboard/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *adminRepository) ApproveDoctor(ctx context.Context, doctorID int) error {
	return r.client.Post(ctx, fmt.Sprintf("/admin/doctors/%d/approve/", doctorID), struct{}{}, nil)
}
