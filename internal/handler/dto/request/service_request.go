package request

import (
	"strings"

	"styleapp-backend/internal/usecase/commands"
	"styleapp-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

// Price is validated by the domain so a non-positive value reports the
// domain message.
type CreateServiceRequestRequest struct {
	ServiceType string   `json:"service_type" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Price       int64    `json:"price"`
}

func (r CreateServiceRequestRequest) ToInput() commands.CreateServiceRequestInput {
	return commands.CreateServiceRequestInput{
		ServiceType: strings.TrimSpace(r.ServiceType),
		Address:     strings.TrimSpace(r.Address),
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Price:       r.Price,
	}
}

// BarberID is only read when a client accepts directly.
type UpdateStatusRequest struct {
	Status   string     `json:"status" binding:"required,oneof=accepted on_route completed cancelled"`
	BarberID *uuid.UUID `json:"barber_id"`
}

type ListOpenQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}

func (q ListOpenQuery) ToCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}

type ListMineQuery struct {
	Status   []string `form:"status"`
	ClientID string   `form:"client_id"`
	BarberID string   `form:"barber_id"`
}

// ToFilter accepts both repeated and comma separated status values.
func (q ListMineQuery) ToFilter() (queries.ListFilter, error) {
	clientID, err := optionalUUID(q.ClientID)
	if err != nil {
		return queries.ListFilter{}, err
	}
	barberID, err := optionalUUID(q.BarberID)
	if err != nil {
		return queries.ListFilter{}, err
	}

	var statuses []string
	for _, raw := range q.Status {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	return queries.ListFilter{
		ClientID: clientID,
		BarberID: barberID,
		Statuses: statuses,
	}, nil
}

func optionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
