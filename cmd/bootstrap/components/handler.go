package components

import (
	"styleapp-backend/internal/handler"
	"styleapp-backend/internal/handler/api"
	"styleapp-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewServiceRequestHandler,
		api.NewBidHandler,
		api.NewBarberHandler,
		api.NewAdminHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
