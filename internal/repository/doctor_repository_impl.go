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

type doctorRepository struct {
	client *gateway.Client
}

func NewDoctorRepository(client *gateway.Client) domainRepo.DoctorRepository {
	return &doctorRepository{client: client}
}

func (r *doctorRepository) List(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	query := url.Values{}
	if filter != nil {
		if filter.Search != "" {
			query.Set("search", filter.Search)
		}
		if filter.Specialization != "" {
			query.Set("specialization", filter.Specialization)
		}
		if filter.City != "" {
			query.Set("city", filter.City)
		}
	}

	var raw json.RawMessage
	if err := r.client.Get(ctx, "/doctors/", query, &raw); err != nil {
		return nil, err
	}
	return converter.DoctorsFromList(raw)
}

func (r *doctorRepository) Get(ctx context.Context, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	if err := r.client.Get(ctx, fmt.Sprintf("/doctors/%d/", id), nil, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) AvailableSlots(ctx context.Context, doctorID int, date string) ([]string, error) {
	query := url.Values{"date": {date}}
	var payload struct {
		AvailableSlots []string `json:"available_slots"`
	}
	if err := r.client.Get(ctx, fmt.Sprintf("/doctors/%d/available_slots/", doctorID), query, &payload); err != nil {
		return nil, err
	}
	return payload.AvailableSlots, nil
}

func (r *doctorRepository) Specialties(ctx context.Context) ([]entity.Specialty, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/doctors/specialties/", nil, &raw); err != nil {
		return nil, err
	}
	return converter.SpecialtiesFromList(raw)
}

func (r *doctorRepository) Update(ctx context.Context, id int, patch *domainRepo.DoctorPatch) (*entity.Doctor, error) {
	var doctor entity.Doctor
	if err := r.client.Patch(ctx, fmt.Sprintf("/doctors/%d/", id), patch, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("/doctors/%d/", id))
}

func (r *doctorRepository) Profile(ctx context.Context) (*entity.Doctor, error) {
	var doctor entity.Doctor
	if err := r.client.Get(ctx, "/doctors/profile/", nil, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) UpdateProfile(ctx context.Context, input *domainRepo.DoctorProfileInput) (*entity.Doctor, error) {
	var doctor entity.Doctor
	if err := r.client.Put(ctx, "/doctors/update_profile/", input, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Schedule(ctx context.Context) ([]entity.ScheduleEntry, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/doctors/schedule/", nil, &raw); err != nil {
		return nil, err
	}
	return converter.ScheduleFromList(raw)
}

func (r *doctorRepository) UpdateSchedule(ctx context.Context, entries []entity.ScheduleEntry) error {
	body := map[string]interface{}{"schedule": entries}
	return r.client.Post(ctx, "/doctors/schedule/", body, nil)
}
