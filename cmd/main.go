package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/nkalgutkar/sports-management/config"
	"github.com/nkalgutkar/sports-management/db"
	"github.com/nkalgutkar/sports-management/handlers"
	"github.com/nkalgutkar/sports-management/repositories"
	"github.com/nkalgutkar/sports-management/routes"
	"github.com/nkalgutkar/sports-management/services"
	"github.com/nkalgutkar/sports-management/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, cfg.DBMaxOpenConns, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	db.Bootstrap(context.Background(), dbConn, logger)

	var uploader storage.FileUploader
	switch cfg.StorageBackend {
	case "r2":
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
	default:
		uploader, err = storage.NewLocalUploader(cfg.UploadDir, cfg.PublicBaseURL)
	}
	if err != nil {
		logger.Error("failed to initialize file storage", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("file storage initialized", slog.String("backend", cfg.StorageBackend))

	managerRepo := repositories.NewPostgresManagerRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	sportRepo := repositories.NewPostgresSportRepository(dbConn)
	studentRepo := repositories.NewPostgresStudentRepository(dbConn)
	coachRepo := repositories.NewPostgresCoachRepository(dbConn)
	selectionRepo := repositories.NewPostgresSelectionRepository(dbConn)
	eventImageRepo := repositories.NewPostgresEventImageRepository(dbConn)
	noticeRepo := repositories.NewPostgresNoticeRepository(dbConn)
	linkRepo := repositories.NewPostgresLinkRepository(dbConn)
	logger.Info("repositories initialized")

	managerService := services.NewManagerService(managerRepo, teamRepo, cfg.JWTSecretKey)
	teamService := services.NewTeamService(teamRepo, uploader)
	sportService := services.NewSportService(sportRepo, managerRepo)
	studentService := services.NewStudentService(studentRepo, managerRepo)
	coachService := services.NewCoachService(coachRepo, managerRepo)
	selectionService := services.NewSelectionService(selectionRepo, studentRepo, managerRepo)
	eventImageService := services.NewEventImageService(eventImageRepo, uploader)
	noticeService := services.NewNoticeService(noticeRepo, uploader)
	linkService := services.NewLinkService(linkRepo, managerRepo, studentRepo)
	dashboardService := services.NewDashboardService(managerRepo, teamRepo, sportRepo, studentRepo, coachRepo, noticeRepo)
	logger.Info("services initialized")

	router := chi.NewRouter()
	routes.SetupRoutes(router, routes.Handlers{
		Manager:    handlers.NewManagerHandler(managerService),
		Team:       handlers.NewTeamHandler(teamService),
		Sport:      handlers.NewSportHandler(sportService),
		Student:    handlers.NewStudentHandler(studentService),
		Coach:      handlers.NewCoachHandler(coachService),
		Selection:  handlers.NewSelectionHandler(selectionService),
		EventImage: handlers.NewEventImageHandler(eventImageService),
		Notice:     handlers.NewNoticeHandler(noticeService),
		Link:       handlers.NewLinkHandler(linkService),
		Dashboard:  handlers.NewDashboardHandler(dashboardService),
	}, cfg.UploadDir, cfg.AllowedOrigins)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
