package repository

import (
	"context"
	"encoding/json"
	"net/url"

	"medibook-portals/internal/converter"
	"medibook-portals/internal/domain/entity"
	domainRepo "medibook-portals/internal/domain/repository"
	"medibook-portals/internal/gateway"
)

type patientRepository struct {
	client *gateway.Client
}

func NewPatientRepository(client *gateway.Client) domainRepo.PatientRepository {
	return &patientRepository{client: client}
}

func (r *patientRepository) Profile(ctx context.Context) (*entity.Patient, error) {
	var patient entity.Patient
	if err := r.client.Get(ctx, "/patients/profile/", nil, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) UpdateProfile(ctx context.Context, input *domainRepo.PatientProfileInput) (*entity.Patient, error) {
	var patient entity.Patient
	if err := r.client.Put(ctx, "/patients/update_profile/", input, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Appointments(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := url.Values{}
	if filter != nil && filter.Status != "" {
		query.Set("status", string(filter.Status))
	}

	var raw json.RawMessage
	if err := r.client.Get(ctx, "/patients/appointments/", query, &raw); err != nil {
		return nil, err
	}
	return converter.AppointmentsFromList(raw)
}
