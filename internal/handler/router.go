package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/middleware"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/service"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/config"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/logger"
	corsmiddleware "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/middleware/cors"
	reqidmiddleware "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/middleware/requestid"
)

// Handlers groups everything mounted by NewRouter.
type Handlers struct {
	Organisations *EntityHandler[models.Organisation]
	Vehicles      *EntityHandler[models.Vehicle]
	Distances     *EntityHandler[models.Distance]
	Refuels       *EntityHandler[models.Refuel]
	VehicleViews  *VehicleHandler
	Events        *EventHandler
	Auth          *AuthHandler
	Metrics       *MetricsHandler

	Tokens         middleware.TokenValidator
	MetricsService *service.MetricsService
	// Pages mounts the server-rendered UI when set.
	Pages func(r gin.IRouter)
}

// NewRouter builds the gin engine with the shared middleware chain.
func NewRouter(cfg *config.Config, logr *zap.Logger, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(h.MetricsService))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", h.Auth.Login)

	secured := api.Group("", middleware.JWT(h.Tokens, cfg.Auth.Enabled))
	read := middleware.RequireRoles(models.AllRoles...)
	write := middleware.RequireRoles(models.AdminRoles...)

	secured.GET("/auth/me", h.Auth.Me)
	secured.GET("/events", read, h.Events.List)

	h.Organisations.Register(secured.Group("/organisations"), read, write)
	vehicles := secured.Group("/vehicles")
	h.Vehicles.Register(vehicles, read, write)
	vehicles.GET("/:id/summary", read, h.VehicleViews.Summary)
	vehicles.GET("/:id/distances", read, h.VehicleViews.Distances)
	vehicles.GET("/:id/refuels", read, h.VehicleViews.Refuels)
	vehicles.GET("/:id/logbook", read, h.VehicleViews.Logbook)
	h.Distances.Register(secured.Group("/distances"), read, write)
	h.Refuels.Register(secured.Group("/refuels"), read, write)

	if h.Pages != nil {
		h.Pages(r)
	}
	return r
}
