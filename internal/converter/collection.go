// Package converter adapts the backend's wire quirks into the shapes the rest
// of the client works with. List endpoints answer either a bare JSON array or
// a paginated {"results": [...]} envelope depending on view configuration;
// that duality is absorbed here once instead of branched on at call sites.
package converter

import (
	"encoding/json"
	"fmt"

	"medibook-portals/internal/domain/entity"
)

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("converter: unrecognized list payload: %w", err)
	}
	return envelope.Results, nil
}

func UsersFromList(raw json.RawMessage) ([]entity.User, error) {
	return decodeList[entity.User](raw)
}

func DoctorsFromList(raw json.RawMessage) ([]entity.Doctor, error) {
	return decodeList[entity.Doctor](raw)
}

func AppointmentsFromList(raw json.RawMessage) ([]entity.Appointment, error) {
	return decodeList[entity.Appointment](raw)
}

func SpecialtiesFromList(raw json.RawMessage) ([]entity.Specialty, error) {
	return decodeList[entity.Specialty](raw)
}

func ScheduleFromList(raw json.RawMessage) ([]entity.ScheduleEntry, error) {
	return decodeList[entity.ScheduleEntry](raw)
}
