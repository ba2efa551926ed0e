package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/roamly/api/internal/blob"
	"github.com/roamly/api/internal/config"
	"github.com/roamly/api/internal/database"
	"github.com/roamly/api/internal/handler"
	"github.com/roamly/api/internal/jobs"
	"github.com/roamly/api/internal/middleware"
	"github.com/roamly/api/internal/repository"
	"github.com/roamly/api/internal/service"
	"github.com/roamly/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env if present; real environment takes precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", slog.String("error", err.Error()))
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize blob storage
	blobStore, err := blob.NewDiskStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		slog.Error("failed to initialize upload storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tripRepo := repository.NewTripRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		JWTService: jwtService,
	})
	tripService := service.NewTripService(tripRepo)
	uploadService := service.NewUploadService(blobStore)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	tripHandler := handler.NewTripHandler(tripService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	healthHandler := handler.NewHealthHandler(db)

	// Background jobs
	sweeper := jobs.NewUploadSweeper(jobs.UploadSweeperConfig{
		Trips: tripRepo,
		Store: blobStore,
	})
	sweeper.Start()
	defer sweeper.Stop()

	// Rate limiting
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{})
	defer rateLimiter.Stop()

	authMiddleware := middleware.Auth(authService)

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Public auth endpoints
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Trip endpoints
	mux.Handle("GET /v1/trips", authMiddleware(http.HandlerFunc(tripHandler.List)))
	mux.Handle("POST /v1/trips", authMiddleware(http.HandlerFunc(tripHandler.Create)))
	mux.Handle("GET /v1/trips/{tripId}", authMiddleware(http.HandlerFunc(tripHandler.Get)))
	mux.Handle("PATCH /v1/trips/{tripId}", authMiddleware(http.HandlerFunc(tripHandler.Update)))
	mux.Handle("DELETE /v1/trips/{tripId}", authMiddleware(http.HandlerFunc(tripHandler.Delete)))
	mux.Handle("GET /v1/trips/{tripId}/summary", authMiddleware(http.HandlerFunc(tripHandler.Summary)))

	// Checklist item endpoints
	mux.Handle("POST /v1/trips/{tripId}/checklist", authMiddleware(http.HandlerFunc(tripHandler.AddChecklistItem)))
	mux.Handle("PATCH /v1/trips/{tripId}/checklist/{itemId}", authMiddleware(http.HandlerFunc(tripHandler.UpdateChecklistItem)))
	mux.Handle("DELETE /v1/trips/{tripId}/checklist/{itemId}", authMiddleware(http.HandlerFunc(tripHandler.RemoveChecklistItem)))

	// Expense endpoints
	mux.Handle("POST /v1/trips/{tripId}/expenses", authMiddleware(http.HandlerFunc(tripHandler.AddExpense)))
	mux.Handle("PATCH /v1/trips/{tripId}/expenses/{expenseId}", authMiddleware(http.HandlerFunc(tripHandler.UpdateExpense)))
	mux.Handle("DELETE /v1/trips/{tripId}/expenses/{expenseId}", authMiddleware(http.HandlerFunc(tripHandler.RemoveExpense)))

	// Image uploads
	mux.Handle("POST /v1/uploads", authMiddleware(http.HandlerFunc(uploadHandler.Upload)))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(blobStore.Dir()))))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
