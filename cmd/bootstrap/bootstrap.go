package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ovacare/config"
	deliveryHttp "ovacare/internal/delivery/http"
	"ovacare/internal/delivery/http/handler"
	"ovacare/internal/delivery/http/middleware"
	"ovacare/internal/infrastructure/cache"
	"ovacare/internal/infrastructure/database"
	"ovacare/internal/infrastructure/ml"
	"ovacare/internal/infrastructure/sheet"
	"ovacare/internal/infrastructure/sms"
	"ovacare/internal/repository"
	"ovacare/internal/service"
	"ovacare/internal/usecase"
	"ovacare/pkg/jwt"
	"ovacare/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	dispatcher *service.ReminderDispatcher
}

func New() (*App, error) {
	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	app := &App{
		Config:      cfg,
		DB:          db,
		RedisClient: redisClient,
	}

	app.initializeServer()

	return app, nil
}

func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func (app *App) initializeServer() {
	log := logrus.StandardLogger()

	// Shared services
	jwtService := jwt.NewJWTService(app.Config.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	reminderRepo := repository.NewReminderRepository()
	slotRepo := repository.NewSlotRepository()
	reportRepo := repository.NewReportRepository()
	printRepo := repository.NewPrintRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Infrastructure clients
	auditService := service.NewAuditService(app.DB, log, auditLogRepo)
	smsSender := sms.FromConfig(app.Config.SMS)
	sheetFetcher := sheet.NewCachedClient(sheet.NewClient(), app.RedisClient, app.Config.Sheets.CacheTTL, log)
	mlClient := ml.NewClient(app.Config.ML)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(app.DB, log, userRepo, roleRepo, jwtService, app.RedisClient, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(app.DB, log, appointmentRepo, reminderRepo, slotRepo, userRepo, auditService)
	reminderUsecase := usecase.NewReminderUsecase(app.DB, log, reminderRepo, userRepo, smsSender, auditService)
	slotUsecase := usecase.NewSlotUsecase(app.DB, log, slotRepo, userRepo, auditService)
	reportUsecase := usecase.NewReportUsecase(app.DB, log, reportRepo, printRepo, userRepo, auditService)
	analyticsUsecase := usecase.NewAnalyticsUsecase(log, sheetFetcher, app.Config.Sheets)
	predictionUsecase := usecase.NewPredictionUsecase(log, mlClient)
	auditLogUsecase := usecase.NewAuditLogUsecase(app.DB, log, auditLogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	reminderHandler := handler.NewReminderHandler(reminderUsecase, customValidator)
	slotHandler := handler.NewSlotHandler(slotUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase, customValidator)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUsecase)
	predictionHandler := handler.NewPredictionHandler(predictionUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, app.RedisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		reminderHandler,
		slotHandler,
		reportHandler,
		analyticsHandler,
		predictionHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)

	app.Server = &http.Server{
		Addr:    ":" + app.Config.App.Port,
		Handler: router.Setup(),
	}

	if app.Config.Reminder.DispatchEnabled {
		app.dispatcher = service.NewReminderDispatcher(app.DB, log, reminderRepo, userRepo, smsSender, app.Config.Reminder.DispatchInterval)
	}
}

func (app *App) Run() error {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %+v", err)
		}
	}()

	if app.dispatcher != nil {
		app.dispatcher.Start()
	}

	return app.waitForShutdown()
}

func (app *App) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	app.Close()

	logrus.Info("Server exited")
	return nil
}

func (app *App) Close() {
	if app.dispatcher != nil {
		app.dispatcher.Stop()
	}

	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
