package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/handler/api"
	"styleapp-backend/internal/handler/middleware"
	"styleapp-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	ServiceRequest *api.ServiceRequestHandler
	Bid            *api.BidHandler
	Barber         *api.BarberHandler
	Admin          *api.AdminHandler
}

func NewHandlers(
	serviceRequest *api.ServiceRequestHandler,
	bid *api.BidHandler,
	barber *api.BarberHandler,
	admin *api.AdminHandler,
) Handlers {
	return Handlers{
		ServiceRequest: serviceRequest,
		Bid:            bid,
		Barber:         barber,
		Admin:          admin,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	clientOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleClient)}
	barberOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleBarber)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		requests := apiGroup.Group("/service-requests")
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: h.ServiceRequest.Create, Mw: clientOnly},
			{Method: http.MethodGet, Path: "", Handler: h.ServiceRequest.ListMine},
			{Method: http.MethodGet, Path: "/open", Handler: h.ServiceRequest.ListOpen},
			{Method: http.MethodGet, Path: "/:id", Handler: h.ServiceRequest.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.ServiceRequest.UpdateStatus},
		})

		bids := apiGroup.Group("/bids")
		addRoutes(bids, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Bid.Submit, Mw: barberOnly},
			{Method: http.MethodPatch, Path: "/accept/:bidId", Handler: h.Bid.Accept, Mw: clientOnly},
			{Method: http.MethodPatch, Path: "/reject/:bidId", Handler: h.Bid.Reject, Mw: clientOnly},
			{Method: http.MethodGet, Path: "/request/:id", Handler: h.Bid.ListForRequest},
		})

		barbers := apiGroup.Group("/barbers/me")
		barbers.Use(barberOnly...)
		addRoutes(barbers, []route{
			{Method: http.MethodPut, Path: "/availability", Handler: h.Barber.SetAvailability},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Barber.Stats},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireRole(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/commissions", Handler: h.Admin.Commissions},
			{Method: http.MethodGet, Path: "/commissions/export", Handler: h.Admin.ExportCommissions},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs hs in order and stops at the first abort.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
