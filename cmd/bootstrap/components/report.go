package components

import (
	"styleapp-backend/internal/infra/report"
	"styleapp-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var ReportModule = fx.Module("report",
	fx.Provide(
		fx.Annotate(
			report.NewCommissionWorkbook,
			fx.As(new(queries.WorkbookRenderer)),
		),
	),
)
