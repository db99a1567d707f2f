package response

import (
	"time"

	"styleapp-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BarberProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BarberStatsResponse struct {
	BarberID    uuid.UUID `json:"barber_id"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
	Assigned    int64     `json:"assigned"`
	Completed   int64     `json:"completed"`
	Cancelled   int64     `json:"cancelled"`
	Gross       int64     `json:"gross"`
	Commission  int64     `json:"commission"`
	Net         int64     `json:"net"`
}

func FromBarberProfileView(v *queries.BarberProfileView) *BarberProfileResponse {
	return copyTo[BarberProfileResponse](v)
}

func FromBarberStatsView(v *queries.BarberStatsView) *BarberStatsResponse {
	return copyTo[BarberStatsResponse](v)
}
