package commands

import (
	"context"

	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/pkg/clock"
	"styleapp-backend/internal/usecase/queries"
	"styleapp-backend/internal/usecase/shared"
)

type SetAvailabilityInput struct {
	IsActive    bool
	DisplayName *string
}

type BarberCommands interface {
	SetAvailability(ctx context.Context, actor user.Actor, in SetAvailabilityInput) (*queries.BarberProfileView, error)
}

type barberUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBarberCommands(uow shared.UnitOfWork, clk clock.Clock) BarberCommands {
	return &barberUseCaseImpl{uow: uow, clock: clk}
}

// SetAvailability creates the profile on first use. An omitted display name
// keeps the stored one.
func (uc *barberUseCaseImpl) SetAvailability(ctx context.Context, actor user.Actor, in SetAvailabilityInput) (*queries.BarberProfileView, error) {
	if !actor.IsBarber() {
		return nil, ErrRoleNotAllowed
	}

	var result *queries.BarberProfileView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().BarberByID(ctx, actor.ID)
		if err != nil {
			return err
		}

		name := ""
		if existing != nil {
			name = existing.DisplayName()
		}
		if in.DisplayName != nil {
			name = *in.DisplayName
		}

		profile, err := barber.NewProfile(actor.ID, name, in.IsActive, uc.clock.Now())
		if err != nil {
			return err
		}
		saved, err := tx.Barbers().Save(ctx, tx.DB(), profile)
		if err != nil {
			return err
		}
		result = queries.NewBarberProfileView(saved)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
