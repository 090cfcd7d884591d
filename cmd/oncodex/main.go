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

	"github.com/kailas-cloud/oncodex/internal/config"
	"github.com/kailas-cloud/oncodex/internal/domain"
	logpkg "github.com/kailas-cloud/oncodex/internal/logger"
	"github.com/kailas-cloud/oncodex/internal/metrics"
	"github.com/kailas-cloud/oncodex/internal/registry"
	"github.com/kailas-cloud/oncodex/internal/repository/memstore"
	"github.com/kailas-cloud/oncodex/internal/repository/redisearch"
	chiTransport "github.com/kailas-cloud/oncodex/internal/transport/chi"
	openaiTransport "github.com/kailas-cloud/oncodex/internal/transport/openai"
	"github.com/kailas-cloud/oncodex/internal/usecase/agent"
	"github.com/kailas-cloud/oncodex/internal/usecase/evaluate"
	"github.com/kailas-cloud/oncodex/internal/usecase/expansion"
	healthuc "github.com/kailas-cloud/oncodex/internal/usecase/health"
	"github.com/kailas-cloud/oncodex/internal/usecase/planner"
	"github.com/kailas-cloud/oncodex/internal/usecase/retrieval"
	"github.com/kailas-cloud/oncodex/internal/usecase/synthesis"
	"github.com/kailas-cloud/oncodex/internal/version"
)

// store is the union of capabilities main needs from either driver.
type store interface {
	retrieval.Store
	Ping(ctx context.Context) error
	Close()
}

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

	logger.Info("Starting oncodex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	// Create vector store based on driver
	var st store
	switch cfg.Database.Driver {
	case "redis":
		redisStore, rerr := redisearch.New(redisearch.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if rerr != nil {
			logger.Fatal("Failed to create store", zap.Error(rerr))
		}
		ctx := context.Background()
		readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if rerr := redisStore.WaitForReady(ctx, readiness); rerr != nil {
			logger.Fatal("Store not ready", zap.Error(rerr))
		}
		st = redisStore
	case "memory":
		st = memstore.New()
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}
	defer st.Close()
	logger.Info("Connected to store")

	// Register domain metric collectors
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterRetrievalMetrics()

	// Build the embedder chain: OpenAI provider wrapped with the BGE
	// query instruction prefix.
	baseEmbedder := openaiTransport.NewEmbedder(&openaiTransport.EmbedderConfig{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		Logger:     logger,
	})
	var embedder retrieval.Embedder = baseEmbedder
	if cfg.Embedding.QueryInstruction != "" {
		embedder = domain.NewInstructionEmbedder(baseEmbedder, cfg.Embedding.QueryInstruction)
	}
	logger.Info("Embedder created",
		zap.String("provider", cfg.Embedding.Provider),
		zap.String("model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
	)

	// Collection registry with config weight overrides
	reg := registry.Default()
	for name, weight := range cfg.Retrieval.CollectionWeights {
		reg = reg.WithWeight(name, weight)
	}

	// Create use case services
	retrievalSvc := retrieval.New(st, embedder, expansion.New(), reg, retrieval.Options{
		TopK:          cfg.Retrieval.TopK,
		SearchTimeout: time.Duration(cfg.Retrieval.SearchTimeoutSec) * time.Second,
	}, logger)

	agentSvc := agent.New(
		planner.New(),
		retrievalSvc,
		evaluate.New(evaluate.Thresholds{
			MinSimilarity:  cfg.Retrieval.MinSimilarity,
			MinHits:        cfg.Retrieval.MinHits,
			MinCollections: cfg.Retrieval.MinCollections,
		}),
		agent.Options{MaxRetries: cfg.Retrieval.MaxRetries},
		logger,
	)

	var llm synthesis.ChatClient
	synthesisEnabled := cfg.Chat.Model != ""
	if synthesisEnabled {
		llm = openaiTransport.NewChatClient(&openaiTransport.ChatConfig{
			APIKey:      cfg.Chat.APIKey,
			BaseURL:     cfg.Chat.BaseURL,
			Model:       cfg.Chat.Model,
			Temperature: cfg.Chat.Temperature,
			MaxTokens:   cfg.Chat.MaxTokens,
			Logger:      logger,
		})
		logger.Info("Synthesis enabled", zap.String("model", cfg.Chat.Model))
	} else {
		logger.Info("Synthesis disabled, running retrieval-only")
	}
	synthSvc := synthesis.New(llm, logger)

	healthSvc := healthuc.New(st, baseEmbedder, synthesisEnabled)

	// Create chi server
	server := chiTransport.NewServer(agentSvc, retrievalSvc, synthSvc, healthSvc)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

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

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
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
