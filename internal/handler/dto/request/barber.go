package request

import (
	"strings"

	"styleapp-backend/internal/usecase/commands"
)

type SetAvailabilityRequest struct {
	IsActive    *bool   `json:"is_active" binding:"required"`
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
}

func (r SetAvailabilityRequest) ToInput() commands.SetAvailabilityInput {
	in := commands.SetAvailabilityInput{IsActive: *r.IsActive}
	if r.DisplayName != nil {
		name := strings.TrimSpace(*r.DisplayName)
		in.DisplayName = &name
	}
	return in
}
