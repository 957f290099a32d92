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

	"shopsight/internal/config"
	"shopsight/internal/handler"
	"shopsight/internal/logger"
	"shopsight/internal/metrics"
	"shopsight/internal/repository"
	"shopsight/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Logging.Format, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	for _, warning := range cfg.Warnings {
		zapLogger.Warn("configuration", zap.String("warning", warning))
	}

	zapLogger.Info("starting shopsight",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewCatalogRepository(
		cfg.Database.Driver,
		cfg.GetDSN(),
		cfg.Database.ArticlesTable,
		cfg.Database.MaxConnections,
		cfg.Database.MaxIdleConnections,
	)
	if err != nil {
		return fmt.Errorf("connect catalog: %w", err)
	}
	defer repo.Close()

	zapLogger.Info("connected to catalog",
		zap.String("driver", cfg.Database.Driver),
		zap.String("table", cfg.Database.ArticlesTable),
	)

	// Initialize services
	retriever := service.NewCandidateRetriever(repo, service.RetrieverConfig{
		MaxCandidates:       cfg.Search.MaxCandidates,
		CandidateMultiplier: cfg.Search.CandidateMultiplier,
		AnalyticsCandidates: cfg.Search.AnalyticsCandidates,
	}, zapLogger.Named("retriever"))
	searchService := service.NewSearchService(
		retriever,
		service.NewRelevanceScorer(),
		service.NewRanker(),
		zapLogger.Named("search"),
	)

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(
		searchService,
		cfg.Search.DefaultPageSize,
		cfg.Search.MaxPageSize,
		zapLogger.Named("http"),
	)
	healthHandler := handler.NewHealthHandler(repo, handler.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestID())
	router.Use(handler.AccessLog(zapLogger.Named("access")))
	router.Use(metrics.Middleware())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	handler.RegisterRoutes(router, searchHandler, healthHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		zapLogger.Info("shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	zapLogger.Info("server stopped")
	return nil
}
