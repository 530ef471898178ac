package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	crmapp "github.com/Pratul75/report360/internal/application/crm"
	dashboardapp "github.com/Pratul75/report360/internal/application/dashboard"
	financeapp "github.com/Pratul75/report360/internal/application/finance"
	fleetapp "github.com/Pratul75/report360/internal/application/fleet"
	identityapp "github.com/Pratul75/report360/internal/application/identity"
	insightsapp "github.com/Pratul75/report360/internal/application/insights"
	inventoryapp "github.com/Pratul75/report360/internal/application/inventory"
	"github.com/Pratul75/report360/internal/infrastructure/auth"
	"github.com/Pratul75/report360/internal/infrastructure/cache"
	"github.com/Pratul75/report360/internal/infrastructure/config"
	"github.com/Pratul75/report360/internal/infrastructure/logger"
	"github.com/Pratul75/report360/internal/infrastructure/persistence"
	"github.com/Pratul75/report360/internal/infrastructure/storage"
	"github.com/Pratul75/report360/internal/interfaces/http/handler"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
	"github.com/Pratul75/report360/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Report360 API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), 200*time.Millisecond)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Redis backs the report cache and the token blacklist. When it is
	// unreachable the process still starts with in-memory fallbacks so a
	// cache outage never blocks the API.
	var (
		reportCache cache.ReportCache
		blacklist   auth.TokenBlacklist
	)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unavailable, using in-memory cache and blacklist", zap.Error(err))
		reportCache = cache.NewInMemoryReportCache()
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		reportCache = cache.NewRedisReportCache(redisClient, cfg.App.Name)
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		log.Info("Redis connected")
	}
	cancelPing()
	defer func() {
		_ = reportCache.Close()
	}()

	fileStore, err := storage.NewLocalFileStore(cfg.Upload)
	if err != nil {
		log.Fatal("Failed to initialize file store", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	roleGrantRepo := persistence.NewGormRoleGrantRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	campaignRepo := persistence.NewGormCampaignRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	promoterRepo := persistence.NewGormPromoterRepository(db.DB)
	promoterActivityRepo := persistence.NewGormPromoterActivityRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	driverRepo := persistence.NewGormDriverRepository(db.DB)
	assignmentRepo := persistence.NewGormAssignmentRepository(db.DB)
	kmLogRepo := persistence.NewGormKMLogRepository(db.DB)
	activityLogRepo := persistence.NewGormActivityLogRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	godownRepo := persistence.NewGormGodownRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	analyticsRepo := persistence.NewGormAnalyticsRepository(db.DB)
	financeTxScope := persistence.NewGormFinanceTransactionScope(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, roleGrantRepo, jwtService, blacklist)
	userService := identityapp.NewUserService(userRepo, blacklist, jwtService)
	roleService := identityapp.NewRoleService(roleGrantRepo)

	clientService := crmapp.NewClientService(clientRepo, reportCache)
	projectService := crmapp.NewProjectService(projectRepo, clientRepo)
	campaignService := crmapp.NewCampaignService(campaignRepo, projectRepo)
	reportService := crmapp.NewReportService(reportRepo, campaignRepo)
	promoterService := crmapp.NewPromoterService(promoterRepo, promoterActivityRepo, campaignRepo)

	vendorService := fleetapp.NewVendorService(vendorRepo)
	vehicleService := fleetapp.NewVehicleService(vehicleRepo, vendorRepo)
	driverService := fleetapp.NewDriverService(driverRepo, vendorRepo)
	assignmentService := fleetapp.NewAssignmentService(assignmentRepo, driverRepo, campaignRepo)
	kmLogService := fleetapp.NewKMLogService(kmLogRepo, driverRepo)
	activityLogService := fleetapp.NewActivityLogService(activityLogRepo, assignmentRepo)

	expenseService := financeapp.NewExpenseService(expenseRepo, campaignRepo)
	invoiceService := financeapp.NewInvoiceService(invoiceRepo, paymentRepo, vendorRepo, financeTxScope)
	paymentService := financeapp.NewPaymentService(paymentRepo)

	godownService := inventoryapp.NewGodownService(godownRepo)
	itemService := inventoryapp.NewItemService(itemRepo, godownRepo)

	dashboardService := dashboardapp.NewService(
		analyticsRepo,
		projectRepo,
		vehicleRepo,
		driverRepo,
		assignmentRepo,
		kmLogRepo,
		invoiceRepo,
		paymentRepo,
		reportCache,
		cfg.Insights.CacheTTL,
	)
	insightsService := insightsapp.NewService(analyticsRepo, reportCache, cfg.Insights, log)

	// HTTP engine and middleware chain
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handler.RegisterValidations(); err != nil {
		log.Fatal("Failed to register request validations", zap.Error(err))
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxy configuration", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))
	engine.Use(middleware.Secure())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(gin.Recovery())
	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Routes
	r := router.NewRouter(engine)
	r.Register(handler.NewSystemHandler(insightsService))
	r.Register(handler.NewAuthHandler(authService))
	r.Register(handler.NewUserHandler(userService))
	r.Register(handler.NewRoleHandler(roleService))
	r.Register(handler.NewClientHandler(clientService, projectService))
	r.Register(handler.NewProjectHandler(projectService, campaignService))
	r.Register(handler.NewCampaignHandler(campaignService, reportService, assignmentService))
	r.Register(handler.NewReportHandler(reportService))
	r.Register(handler.NewPromoterHandler(promoterService))
	r.Register(handler.NewVendorHandler(vendorService, vehicleService, driverService, invoiceService))
	r.Register(handler.NewVehicleHandler(vehicleService))
	r.Register(handler.NewDriverHandler(driverService, assignmentService, kmLogService))
	r.Register(handler.NewAssignmentHandler(assignmentService, activityLogService))
	r.Register(handler.NewKMLogHandler(kmLogService))
	r.Register(handler.NewActivityLogHandler(activityLogService))
	r.Register(handler.NewExpenseHandler(expenseService))
	r.Register(handler.NewInvoiceHandler(invoiceService))
	r.Register(handler.NewPaymentHandler(paymentService))
	r.Register(handler.NewGodownHandler(godownService, itemService))
	r.Register(handler.NewInventoryHandler(itemService))
	r.Register(handler.NewDashboardHandler(dashboardService))
	r.Register(handler.NewInsightsHandler(insightsService))
	r.Register(handler.NewUploadHandler(fileStore))
	r.Setup()

	r.ServeUploads(cfg.Upload.PublicPath, fileStore.BaseDir())

	// Root-level health probe for load balancers
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
