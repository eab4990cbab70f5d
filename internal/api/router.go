package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/condovia/residential-api/docs"
	"github.com/condovia/residential-api/internal/api/handler"
	"github.com/condovia/residential-api/internal/api/middleware"
	"github.com/condovia/residential-api/internal/core/service"
	"github.com/condovia/residential-api/internal/infrastructure/config"
	mongodb "github.com/condovia/residential-api/internal/infrastructure/db/mongo"
	redisdb "github.com/condovia/residential-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("residential"))

	// --- Repositories ---
	accountRepo := mongodb.NewAccountRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	vehicleRepo := mongodb.NewVehicleRepository(db)
	areaRepo := mongodb.NewCommonAreaRepository(db)
	maintenanceRepo := mongodb.NewMaintenanceRepository(db)
	noticeRepo := mongodb.NewNoticeRepository(db)
	securityRepo := mongodb.NewSecurityRepository(db)
	refreshStore := redisdb.NewRefreshStore(rdb)

	// --- Services ---
	accountService := service.NewAccountService(accountRepo, roleRepo, vehicleRepo, log)
	authService := service.NewAuthService(
		accountRepo, roleRepo, accountService, refreshStore,
		cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL, log,
	)
	roleService := service.NewRoleService(roleRepo, accountRepo, log)
	propertyService := service.NewPropertyService(propertyRepo, vehicleRepo, log)
	vehicleService := service.NewVehicleService(vehicleRepo, accountRepo, propertyRepo, log)
	areaService := service.NewCommonAreaService(areaRepo, accountRepo, log)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, propertyRepo, accountRepo, log)
	noticeService := service.NewNoticeService(noticeRepo, accountRepo, log)
	securityService := service.NewSecurityService(securityRepo, accountRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	roleHandler := handler.NewRoleHandler(roleService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	areaHandler := handler.NewCommonAreaHandler(areaService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	noticeHandler := handler.NewNoticeHandler(noticeService)
	securityHandler := handler.NewSecurityHandler(securityService)

	authMiddleware := middleware.Auth(cfg.JWT.Secret)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/refresh", authHandler.Refresh)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Administration: accounts and roles ---
	admin := e.Group("/api/v1", authMiddleware, middleware.RequireAdmin())

	admin.POST("/accounts", accountHandler.Create)
	admin.GET("/accounts", accountHandler.List)
	admin.GET("/accounts/:id", accountHandler.Get)
	admin.PUT("/accounts/:id", accountHandler.Update)
	admin.DELETE("/accounts/:id", accountHandler.Delete)

	admin.POST("/roles", roleHandler.Create)
	admin.GET("/roles", roleHandler.List)
	admin.GET("/roles/:id", roleHandler.Get)
	admin.PUT("/roles/:id", roleHandler.Update)
	admin.DELETE("/roles/:id", roleHandler.Delete)

	admin.POST("/properties", propertyHandler.Create)
	admin.PUT("/properties/:id", propertyHandler.Update)
	admin.DELETE("/properties/:id", propertyHandler.Delete)
	admin.POST("/properties/:id/units", propertyHandler.CreateUnit)
	admin.PUT("/properties/:id/units/:unit_id", propertyHandler.UpdateUnit)
	admin.DELETE("/properties/:id/units/:unit_id", propertyHandler.DeleteUnit)

	// --- Authenticated resident routes ---
	v1 := e.Group("/api/v1", authMiddleware)

	v1.GET("/properties", propertyHandler.List)
	v1.GET("/properties/:id", propertyHandler.Get)
	v1.GET("/properties/:id/units", propertyHandler.ListUnits)
	v1.GET("/properties/:id/units/:unit_id", propertyHandler.GetUnit)

	v1.POST("/vehicles", vehicleHandler.Create)
	v1.GET("/vehicles", vehicleHandler.List)
	v1.GET("/vehicles/:id", vehicleHandler.Get)
	v1.PUT("/vehicles/:id", vehicleHandler.Update)
	v1.DELETE("/vehicles/:id", vehicleHandler.Delete)

	v1.GET("/common-areas", areaHandler.List)
	v1.GET("/common-areas/:id", areaHandler.Get)
	v1.POST("/common-areas", areaHandler.Create, middleware.RequireAdmin())
	v1.PUT("/common-areas/:id", areaHandler.Update, middleware.RequireAdmin())
	v1.DELETE("/common-areas/:id", areaHandler.Delete, middleware.RequireAdmin())

	v1.POST("/common-areas/:id/reservations", areaHandler.Reserve)
	v1.GET("/common-areas/:id/reservations", areaHandler.ListReservations)
	v1.GET("/common-areas/:id/reservations/:reservation_id", areaHandler.GetReservation)
	v1.PUT("/common-areas/:id/reservations/:reservation_id", areaHandler.UpdateReservation)
	v1.DELETE("/common-areas/:id/reservations/:reservation_id", areaHandler.CancelReservation)

	v1.POST("/maintenance", maintenanceHandler.Create)
	v1.GET("/maintenance", maintenanceHandler.List)
	v1.GET("/maintenance/:id", maintenanceHandler.Get)
	v1.PUT("/maintenance/:id", maintenanceHandler.Update)
	v1.DELETE("/maintenance/:id", maintenanceHandler.Delete, middleware.RequireAdmin())

	v1.GET("/notices", noticeHandler.List)
	v1.GET("/notices/:id", noticeHandler.Get)
	v1.POST("/notices", noticeHandler.Publish, middleware.RequireAdmin())
	v1.PUT("/notices/:id", noticeHandler.Update, middleware.RequireAdmin())
	v1.DELETE("/notices/:id", noticeHandler.Delete, middleware.RequireAdmin())

	v1.POST("/security", securityHandler.Record)
	v1.GET("/security", securityHandler.List)
	v1.GET("/security/:id", securityHandler.Get)
	v1.DELETE("/security/:id", securityHandler.Delete, middleware.RequireAdmin())

	return e
}
