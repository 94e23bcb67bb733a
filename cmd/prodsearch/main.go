package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/prodsearch/internal/config"
	"github.com/kailas-cloud/prodsearch/internal/domain"
	"github.com/kailas-cloud/prodsearch/internal/engine"
	logpkg "github.com/kailas-cloud/prodsearch/internal/logger"
	"github.com/kailas-cloud/prodsearch/internal/metrics"
	catalogrepo "github.com/kailas-cloud/prodsearch/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/prodsearch/internal/transport/chi"
	openaiEmb "github.com/kailas-cloud/prodsearch/internal/transport/openai"
	cataloguc "github.com/kailas-cloud/prodsearch/internal/usecase/catalog"
	embeddinguc "github.com/kailas-cloud/prodsearch/internal/usecase/embedding"
	healthuc "github.com/kailas-cloud/prodsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/prodsearch/internal/usecase/search"
	"github.com/kailas-cloud/prodsearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting prodsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("dimensions", cfg.Catalog.Dimensions),
		zap.String("vector_field", cfg.Search.VectorField),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// External engine is optional: no addrs, no engine.
	var eng *engine.Client
	if len(cfg.Engine.Addrs) > 0 {
		eng, err = engine.New(engine.Config{
			Addrs:    cfg.Engine.Addrs,
			Password: cfg.Engine.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create engine client", zap.Error(err))
		}
		defer eng.Close()

		// A slow or absent engine must not block startup: probe in the
		// background, the status endpoint reports whatever is reachable.
		readiness := time.Duration(cfg.Engine.ReadinessTimeout) * time.Second
		go func() {
			if err := eng.WaitForReady(context.Background(), readiness); err != nil {
				logger.Warn("External engine not reachable, continuing degraded", zap.Error(err))
				return
			}
			logger.Info("Connected to external engine", zap.Strings("addrs", cfg.Engine.Addrs))
		}()
	} else {
		logger.Info("External engine disabled")
	}

	// Embedding chain: optional OpenAI-compatible provider behind the
	// deterministic hash fallback.
	var provider domain.Embedder
	if cfg.Embedding.APIKey != "" {
		provider = openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.Embedding.APIKey,
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Catalog.Dimensions,
			Logger:     logger,
		})
		logger.Info("Embedding provider configured", zap.String("model", cfg.Embedding.Model))
	}
	embedder := embeddinguc.New(provider, cfg.Catalog.Dimensions, logger).
		WithTimeout(time.Duration(cfg.Embedding.TimeoutSec) * time.Second)

	// Catalog store, optionally seeded with the sample dataset.
	repo := catalogrepo.New()
	if cfg.Catalog.Seed {
		vectorize := func(text string) []float32 {
			return embeddinguc.HashVector(text, cfg.Catalog.Dimensions)
		}
		if err := repo.Seed(context.Background(), vectorize); err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
		n, _ := repo.Count(context.Background())
		logger.Info("Seeded sample catalog", zap.Int("products", n))
	}

	// Use case services
	catalogSvc := cataloguc.New(repo, embedder, cfg.Catalog.Dimensions)
	searchSvc := searchuc.New(repo, cfg.Catalog.Dimensions).
		WithVectorField(searchuc.VectorField(cfg.Search.VectorField))

	var prober healthuc.EngineProber
	if eng != nil {
		prober = eng
	}
	healthSvc := healthuc.New(prober, embedder)

	// HTTP server
	var engineClient chiTransport.EngineClient
	if eng != nil {
		engineClient = eng
	}
	server := chiTransport.NewServer(catalogSvc, searchSvc, engineClient, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
