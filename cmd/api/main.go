package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vericred/vericred-api/config"
	"github.com/vericred/vericred-api/internal/cache"
	"github.com/vericred/vericred-api/internal/handlers"
	"github.com/vericred/vericred-api/internal/middleware"
	"github.com/vericred/vericred-api/internal/repository"
	"github.com/vericred/vericred-api/internal/services"
	"github.com/vericred/vericred-api/pkg/db"
	"github.com/vericred/vericred-api/pkg/httpclient"
	"github.com/vericred/vericred-api/pkg/logger"
	"github.com/vericred/vericred-api/pkg/metrics"
	"github.com/vericred/vericred-api/pkg/profiling"
	"github.com/vericred/vericred-api/pkg/storage"
	"github.com/vericred/vericred-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerAPIRoutes registers the v1 API routes
func registerAPIRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, issueRateLimiter, submitRateLimiter *middleware.RateLimiter,
	candidateHandler *handlers.CandidateHandler,
	jobHandler *handlers.JobHandler,
	requestHandler *handlers.RequestHandler,
	reviewHandler *handlers.ReviewHandler,
	profileHandler *handlers.ProfileHandler,
) {
	// Candidate and job management
	group.POST("/candidates", issueRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), candidateHandler.Register)
	group.GET("/candidates/:candidateId", generalRateLimiter.Middleware(), candidateHandler.GetCandidate)
	group.PUT("/candidates/:candidateId/photo", issueRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(15*1024*1024), candidateHandler.UploadPhoto)
	group.GET("/candidates/:candidateId/jobs", generalRateLimiter.Middleware(), jobHandler.ListJobs)
	group.POST("/jobs", issueRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), jobHandler.CreateJob)
	group.GET("/jobs/:jobId", generalRateLimiter.Middleware(), jobHandler.GetJob)

	// Review-request lifecycle (token issuance and the public review form)
	group.POST("/review-requests", issueRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), requestHandler.IssueRequest)
	group.GET("/review-requests/:token", generalRateLimiter.Middleware(), requestHandler.ResolveToken)
	group.POST("/review-requests/:token/review", submitRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), requestHandler.SubmitReview)

	// Candidate review moderation
	group.GET("/reviews/:reviewId", generalRateLimiter.Middleware(), reviewHandler.GetReview)
	group.PUT("/reviews/:reviewId/approval", generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(10*1024), reviewHandler.SetApproval)

	// Public profiles
	group.GET("/profiles/:slug", generalRateLimiter.Middleware(), profileHandler.GetProfile)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting VeriCred API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.AlloyEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling (no-op unless enabled)
	profilerStop, err := profiling.InitProfiler(
		profiling.Config{
			Enabled:               cfg.Profiling.Enabled,
			Endpoint:              cfg.Profiling.Endpoint,
			AppName:               cfg.Profiling.AppName,
			SampleTypes:           cfg.Profiling.SampleTypes,
			UploadIntervalSeconds: cfg.Profiling.UploadIntervalSeconds,
		},
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Error("Failed to initialize profiler", zap.Error(err))
	} else {
		defer profilerStop()
	}

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize PostgreSQL connection pool
	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	// NOTE: Database migrations are run separately via the migrate command

	// Initialize photo storage client (optional)
	var photoStorage storage.PhotoStorageInterface
	if cfg.PhotoStorage.AccessKeyID != "" && cfg.PhotoStorage.SecretAccessKey != "" {
		client, err := storage.NewPhotoStorage(
			cfg.PhotoStorage.AccessKeyID,
			cfg.PhotoStorage.SecretAccessKey,
			cfg.PhotoStorage.BucketName,
			cfg.PhotoStorage.Endpoint,
			cfg.PhotoStorage.Region,
		)
		if err != nil {
			logger.Fatal("Failed to initialize photo storage client", zap.Error(err))
		}
		photoStorage = client
	} else {
		logger.Warn("Photo storage not configured, photo uploads disabled")
	}

	// Initialize repositories
	candidateRepo := repository.NewCandidateRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	requestRepo := repository.NewRequestRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	// Profile cache
	profileCache := cache.NewProfileCache(cfg.Cache.ProfileTTLSeconds)

	// Initialize HTTP client for webhook triggers
	httpClient := httpclient.NewStandardClient()

	// Initialize services
	candidateService := services.NewCandidateService(candidateRepo, photoStorage, profileCache)
	jobService := services.NewJobService(candidateRepo, jobRepo)
	requestService := services.NewRequestService(candidateRepo, jobRepo, requestRepo, cfg, httpClient)
	reviewService := services.NewReviewService(reviewRepo, profileCache)
	profileService := services.NewProfileService(candidateRepo, jobRepo, reviewRepo, profileCache)

	// Initialize handlers
	candidateHandler := handlers.NewCandidateHandler(candidateService)
	jobHandler := handlers.NewJobHandler(jobService)
	requestHandler := handlers.NewRequestHandler(requestService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	profileHandler := handlers.NewProfileHandler(profileService)
	healthHandler := handlers.NewHealthHandler(pool)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - only allow specific origins
	allowedOrigins := cfg.Server.AllowedOrigins
	// Allow localhost in development
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters: reads are generous, writes that mint tokens or create
	// reviews are tight
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	issueRateLimiter := middleware.NewRateLimiter(5, 10)      // 5 req/sec, burst of 10
	submitRateLimiter := middleware.NewRateLimiter(2, 5)      // 2 req/sec, burst of 5

	// Utility endpoints (not versioned - operational endpoints)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// API v1 routes
	v1 := router.Group("/api/v1")
	registerAPIRoutes(v1, generalRateLimiter, issueRateLimiter, submitRateLimiter,
		candidateHandler, jobHandler, requestHandler, reviewHandler, profileHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
