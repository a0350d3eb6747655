package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	_ "github.com/SemykinG/DigitalTwin-DigiSalama/api/swagger"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/handler"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/repository"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/service"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/web"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/cache"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/config"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/database"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/logger"
)

// @title DigiSalama Fleet API
// @version 1.0.0
// @description Organisations, vehicles, driven distances and refuels of a vehicle fleet
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	if cfg.Database.AutoMigrate || cfg.Database.Driver == config.DriverSQLite {
		if err := database.Migrate(ctx, db); err != nil {
			logr.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	metrics := service.NewMetricsService()
	checks := map[string]handler.ReadinessCheck{
		"database": func(ctx context.Context) error { return db.PingContext(ctx) },
	}

	var cacheRepo service.CacheRepository
	if cfg.Summary.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, summaries are computed on every request", zap.Error(err))
		} else {
			repo := repository.NewCacheRepository(client)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
			checks["redis"] = repo.Ping
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Summary.CacheTTL, logr, cacheRepo != nil)

	svc := buildServices(ctx, cfg, db, cacheSvc, metrics, logr)

	var pages func(r gin.IRouter)
	if cfg.UI.Enabled {
		ui, err := buildPages(cfg, svc, logr)
		if err != nil {
			logr.Fatal("failed to build pages", zap.Error(err))
		}
		pages = ui.Register
	}

	router := handler.NewRouter(cfg, logr, handler.Handlers{
		Organisations:  handler.NewEntityHandler[models.Organisation](svc.organisations),
		Vehicles:       handler.NewEntityHandler[models.Vehicle](svc.vehicles),
		Distances:      handler.NewEntityHandler[models.Distance](svc.distances),
		Refuels:        handler.NewEntityHandler[models.Refuel](svc.refuels),
		VehicleViews:   handler.NewVehicleHandler(svc.summary, svc.export),
		Events:         handler.NewEventHandler(svc.events),
		Auth:           handler.NewAuthHandler(svc.auth),
		Metrics:        handler.NewMetricsHandler(metrics, checks),
		Tokens:         svc.auth,
		MetricsService: metrics,
		Pages:          pages,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

type services struct {
	organisations *service.CrudService[models.Organisation]
	vehicles      *service.CrudService[models.Vehicle]
	distances     *service.CrudService[models.Distance]
	refuels       *service.CrudService[models.Refuel]
	summary       *service.SummaryService
	export        *service.ExportService
	events        *service.EventLogService
	auth          *service.AuthService
}

func buildServices(ctx context.Context, cfg *config.Config, db *sqlx.DB, cacheSvc *service.CacheService, metrics *service.MetricsService, logr *zap.Logger) services {
	organisationRepo := repository.NewOrganisationRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	distanceRepo := repository.NewDistanceRepository(db)
	refuelRepo := repository.NewRefuelRepository(db)
	userRepo := repository.NewUserRepository(db)

	validate := service.NewStructValidator()
	events := service.NewEventLogService(repository.NewEventLogRepository(db), logr)
	deps := service.ServiceDeps{
		Validate: validate,
		Audit:    events,
		Metrics:  metrics,
		Logger:   logr,
	}

	summary := service.NewSummaryService(vehicleRepo, distanceRepo, refuelRepo, cacheSvc, cfg.Summary.CacheTTL, logr)
	auth := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	if err := auth.EnsureBootstrapAdmin(ctx, cfg.Auth.BootstrapEmail, cfg.Auth.BootstrapPassword); err != nil {
		logr.Warn("bootstrap admin not created", zap.Error(err))
	}

	return services{
		organisations: service.NewOrganisationService(organisationRepo, vehicleRepo, deps),
		vehicles:      service.NewVehicleService(vehicleRepo, organisationRepo, distanceRepo, refuelRepo, summary, deps),
		distances:     service.NewDistanceService(distanceRepo, vehicleRepo, summary, deps),
		refuels:       service.NewRefuelService(refuelRepo, vehicleRepo, summary, deps),
		summary:       summary,
		export:        service.NewExportService(vehicleRepo, distanceRepo, refuelRepo, logr),
		events:        events,
		auth:          auth,
	}
}

func buildPages(cfg *config.Config, svc services, logr *zap.Logger) (*web.Server, error) {
	ui, err := web.NewServer(web.Config{
		Base:        cfg.UIPrefix,
		AuthEnabled: cfg.Auth.Enabled,
		Tokens:      svc.auth,
		Login:       svc.auth,
		Logger:      logr,
	})
	if err != nil {
		return nil, err
	}

	organisationOptions := web.ListOptions[models.Organisation](svc.organisations,
		func(o *models.Organisation) int64 { return o.ID },
		func(o *models.Organisation) string { return o.Name },
	)
	vehicleOptions := web.ListOptions[models.Vehicle](svc.vehicles,
		func(v *models.Vehicle) int64 { return v.ID },
		func(v *models.Vehicle) string { return v.Name },
	)

	ui.Add(
		web.OrganisationPages(svc.organisations),
		web.VehiclePages(svc.vehicles, organisationOptions, svc.summary),
		web.DistancePages(svc.distances, vehicleOptions),
		web.RefuelPages(svc.refuels, vehicleOptions),
	)
	return ui, nil
}
