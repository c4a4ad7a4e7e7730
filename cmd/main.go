package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/Preechanamchu/KT-Monitor/internal/auth"
	"github.com/Preechanamchu/KT-Monitor/internal/config"
	"github.com/Preechanamchu/KT-Monitor/internal/geocode"
	v1 "github.com/Preechanamchu/KT-Monitor/internal/handler/http/v1"
	"github.com/Preechanamchu/KT-Monitor/internal/ranking"
	"github.com/Preechanamchu/KT-Monitor/internal/repository"
	"github.com/Preechanamchu/KT-Monitor/internal/session"
	"github.com/Preechanamchu/KT-Monitor/internal/storage"
	"github.com/Preechanamchu/KT-Monitor/internal/webhook"
	"github.com/Preechanamchu/KT-Monitor/pkg/logger"
	"github.com/Preechanamchu/KT-Monitor/pkg/postgres"
	redisclient "github.com/Preechanamchu/KT-Monitor/pkg/redis"
	"github.com/Preechanamchu/KT-Monitor/pkg/sqlite"
	"github.com/sirupsen/logrus"

	_ "github.com/Preechanamchu/KT-Monitor/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title KT-Monitor API
// @version 1.0
// @description Dispatch-assist backend: incident point, nearest responder ranking and responder roster administration.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// ensureAdmin создает учетную запись администратора из ADMIN_INITIAL_PIN при первом запуске
func ensureAdmin(ctx context.Context, repo *repository.AdminRepository, cfg *config.Config, log *logrus.Logger) error {
	if cfg.AdminInitialPIN == "" {
		return nil
	}
	hash, err := auth.HashPIN(cfg.AdminInitialPIN)
	if err != nil {
		return err
	}
	created, err := repo.EnsureAdmin(ctx, cfg.AdminUsername, hash)
	if err != nil {
		return err
	}
	if created {
		log.WithField("username", cfg.AdminUsername).Info("Admin account created")
	}
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Локальное хранилище списка сотрудников на случай недоступности PostgreSQL
	localDB, err := sqlite.Open(ctx, cfg.LocalDBPath)
	if err != nil {
		log.Fatalf("Failed to open local roster database: %v", err)
	}
	defer localDB.Close()
	localStore, err := repository.NewLocalStore(ctx, localDB)
	if err != nil {
		log.Fatalf("Failed to prepare local roster store: %v", err)
	}

	// Инициализация репозиториев
	staffRepo := repository.NewStaffRepository(dbpool)
	adminRepo := repository.NewAdminRepository(dbpool)
	settingsRepo := repository.NewSettingsRepository(redisClient)

	if err := ensureAdmin(ctx, adminRepo, cfg, log); err != nil {
		log.Fatalf("Failed to ensure admin account: %v", err)
	}

	// Геокодер с кэшем в Redis и ограничением частоты запросов
	nominatim := geocode.NewNominatim(log,
		geocode.WithBaseURL(cfg.NominatimURL),
		geocode.WithCountrySuffix(cfg.GeocodeCountrySuffix),
		geocode.WithRateLimit(cfg.GeocodeRateLimit),
		geocode.WithCache(geocode.NewRedisCache(redisClient), cfg.GeocodeCacheTTL),
	)
	resolver := geocode.NewResolver(nominatim, cfg.GeocodeSuggestionLimit)

	engine := ranking.NewEngine(
		ranking.WithAverageSpeed(cfg.RankingAverageSpeedKmh),
		ranking.WithRoadFactor(cfg.RankingRoadFactor),
		ranking.WithMaxResults(cfg.RankingMaxResults),
	)

	deps := session.Deps{
		Remote:   staffRepo,
		Local:    localStore,
		Auth:     auth.NewPINAuthenticator(adminRepo, cfg.AdminUsername, cfg.AdminFallbackPIN, log),
		Resolver: resolver,
		Settings: settingsRepo,
		Engine:   engine,
		Logger:   log,
	}

	// Издатель и воркер вебхуков запускаются только при заданном WEBHOOK_URL
	var webhookWorker *webhook.WebhookWorker
	if cfg.WebhookURL != "" {
		deps.Publisher = webhook.NewRedisWebhookPublisher(redisClient)
		webhookWorker = webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	} else {
		log.Info("WEBHOOK_URL is not set, dispatch events are not delivered")
	}

	// Контроллер сессии оператора
	controller := session.NewController(deps)
	controller.Start(ctx)
	if _, err := controller.Bootstrap(ctx); err != nil {
		log.WithError(err).Warn("Roster is not loaded at startup")
	}

	// Хранилище фотографий сотрудников (MinIO), опционально
	var images v1.ImageStore
	if cfg.ImagesEnabled() {
		store, err := storage.NewMinioImageStore(ctx, storage.Options{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			UseSSL:    cfg.MinioUseSSL,
			Bucket:    cfg.MinioBucket,
		}, log)
		if err != nil {
			log.Fatalf("Failed to initialize image storage: %v", err)
		}
		images = store
		log.Info("Image storage enabled")
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(controller, images, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	cancel()
	<-controller.Done()
	if webhookWorker != nil {
		<-webhookWorker.Done()
	}

	log.Info("Server gracefully stopped")
}
