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

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/crisis_map_sync/internal/app"
	"github.com/shenikar/crisis_map_sync/internal/config"
	v1 "github.com/shenikar/crisis_map_sync/internal/handler/http/v1"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/realtime"
	"github.com/shenikar/crisis_map_sync/internal/repository"
	"github.com/shenikar/crisis_map_sync/internal/webhook"
	"github.com/shenikar/crisis_map_sync/pkg/logger"
	"github.com/shenikar/crisis_map_sync/pkg/postgres"
	redisclient "github.com/shenikar/crisis_map_sync/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crisis_map_sync/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Crisis Map Sync API
// @version 1.0
// @description Local control API of the crisis map sync client: map layers, markers, incidents, routes, notifications and position sharing.
// @host localhost:8090
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
	dbpool, err := postgres.NewPostgresDB(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Сессия пользователя
	if !cfg.HasSession() {
		log.Warn("No stored session, notifications and position sharing are disabled")
	}
	session := models.Session{
		UserID:      cfg.UserID,
		AuthToken:   cfg.AuthToken,
		HouseholdID: cfg.HouseholdID,
	}

	// Граф объектов сессии
	application, err := app.New(cfg, session, app.Infra{
		Transport: realtime.NewWebSocketTransport(cfg.WebSocketURL, cfg.Heartbeat, log),
		Journal:   repository.NewNotificationJournal(dbpool),
		State:     repository.NewStateStore(redisClient),
		Geocache:  repository.NewGeocodeCache(redisClient),
		Alerts:    webhook.NewRedisPublisher(redisClient),
	}, log)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Deps{
		View:       application.View,
		Viewport:   application.Scene,
		Inbox:      application.Center,
		Sharing:    application.Sharer,
		Household:  application.Household,
		Connection: application.Manager,
		Fixes:      application.Fixes,
		Locator:    application.Resolver,
		Markers:    application.Markers,
		Geocoding:  application.Geocoding,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
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
		log.Errorf("Server forced to shutdown: %v", err)
	}

	application.Dispose()
	cancel()
	webhookWorker.Wait()

	log.Info("Server gracefully stopped")
}
