package bootstrap

import (
	"styleapp-backend/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MQModule,
	components.PersistenceModule,
	components.ReportModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
