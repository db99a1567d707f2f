package components

import (
	"styleapp-backend/internal/infra/readstore"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/infra/uow"
	"styleapp-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// ServiceRequest
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceRequestReadQueries)),
		),
		fx.Annotate(
			readstore.NewServiceRequestReadStore,
			fx.As(new(queries.ServiceRequestReadStore)),
		),
		// Bid
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BidReadQueries)),
		),
		fx.Annotate(
			readstore.NewBidReadStore,
			fx.As(new(queries.BidReadStore)),
		),
		// Barber
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BarberReadQueries)),
		),
		fx.Annotate(
			readstore.NewBarberReadStore,
			fx.As(new(queries.BarberReadStore)),
		),
		// Report
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReportReadQueries)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
	),
)

// Write-side repositories are created per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
