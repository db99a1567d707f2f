package components

import (
	"styleapp-backend/internal/domain/commission"
	"styleapp-backend/internal/pkg/clock"
	"styleapp-backend/internal/pkg/config"
	"styleapp-backend/internal/usecase"
	"styleapp-backend/internal/usecase/commands"
	"styleapp-backend/internal/usecase/queries"
	"styleapp-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCommissionCalculator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewServiceRequestCommands,
		commands.NewBidCommands,
		commands.NewBarberCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewServiceRequestQueries,
		queries.NewBidQueries,
		queries.NewBarberQueries,
		queries.NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCommissionCalculator(cfg config.Config) (commission.Calculator, error) {
	rounding, err := commission.ParseRounding(cfg.Commission.Rounding)
	if err != nil {
		return nil, err
	}
	return commission.NewCalculator(cfg.Commission.RateBPS, rounding)
}

func NewServiceRequestCommands(uow shared.UnitOfWork, calc commission.Calculator, clk clock.Clock, cfg config.Config) commands.ServiceRequestCommands {
	return commands.NewServiceRequestCommands(uow, calc, clk, cfg.Idempotency.TTL)
}
