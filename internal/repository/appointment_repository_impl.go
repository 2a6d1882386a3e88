package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"medibook-portals/internal/converter"
	"medibook-portals/internal/domain/entity"
	domainRepo "medibook-portals/internal/domain/repository"
	"medibook-portals/internal/gateway"
)

type appointmentRepository struct {
	client *gateway.Client
}

func NewAppointmentRepository(client *gateway.Client) domainRepo.AppointmentRepository {
	return &appointmentRepository{client: client}
}

func (r *appointmentRepository) List(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := url.Values{}
	if filter != nil {
		if filter.Status != "" {
			query.Set("status", string(filter.Status))
		}
		if filter.Date != "" {
			query.Set("date", filter.Date)
		}
	}

	var raw json.RawMessage
	if err := r.client.Get(ctx, "/appointments/", query, &raw); err != nil {
		return nil, err
	}
	return converter.AppointmentsFromList(raw)
}

func (r *appointmentRepository) Get(ctx context.Context, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	if err := r.client.Get(ctx, fmt.Sprintf("/appointments/%d/", id), nil, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, input *domainRepo.CreateAppointmentInput) (*entity.Appointment, error) {
	var appointment entity.Appointment
	if err := r.client.Post(ctx, "/appointments/", input, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Cancel(ctx context.Context, id int, reason string) error {
	body := map[string]string{"reason": reason}
	return r.client.Post(ctx, fmt.Sprintf("/appointments/%d/cancel/", id), body, nil)
}

func (r *appointmentRepository) Approve(ctx context.Context, id int) error {
	return r.client.Post(ctx, fmt.Sprintf("/appointments/%d/approve/", id), struct{}{}, nil)
}

func (r *appointmentRepository) Reject(ctx context.Context, id int, reason string) error {
	body := map[string]string{"reason": reason}
	return r.client.Post(ctx, fmt.Sprintf("/appointments/%d/reject/", id), body, nil)
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int, status entity.AppointmentStatus) error {
	body := map[string]string{"status": string(status)}
	return r.client.Patch(ctx, fmt.Sprintf("/appointments/%d/update_status/", id), body, nil)
}

func (r *appointmentRepository) Upcoming(ctx context.Context) ([]entity.Appointment, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/appointments/upcoming/", nil, &raw); err != nil {
		return nil, err
	}
	return converter.AppointmentsFromList(raw)
}

func (r *appointmentRepository) Past(ctx context.Context) ([]entity.Appointment, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/appointments/past/", nil, &raw); err != nil {
		return nil, err
	}
	return converter.AppointmentsFromList(raw)
}
