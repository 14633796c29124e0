// cmd/analysis-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"conversation-intelligence/internal/analytics"
	"conversation-intelligence/internal/api"
	"conversation-intelligence/internal/cache"
	"conversation-intelligence/internal/common/config"
	"conversation-intelligence/internal/common/database"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/engines/entity"
	"conversation-intelligence/internal/engines/intent"
	"conversation-intelligence/internal/engines/keywords"
	"conversation-intelligence/internal/engines/question"
	"conversation-intelligence/internal/engines/sentiment"
	"conversation-intelligence/internal/nlp"
	"conversation-intelligence/internal/objection"
	"conversation-intelligence/internal/recommend"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting analysis server...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Build the analysis engines ---
	maxCached := cfg.NLP.MaxCachedConversations
	cacheTTL := time.Duration(cfg.Database.Redis.CacheTTL) * time.Second

	sentimentEngine := sentiment.NewEngine(cfg.NLP, log)
	entityEngine := entity.NewEngine(cache.New[entity.Bag](maxCached, 0), log)
	questionEngine := question.NewEngine(cache.New[question.ConversationAnalysis](maxCached, 0), log)
	keywordEngine := keywords.NewEngine(keywords.NewStore(maxCached), log)

	intentStore := intent.NewPostgresStore(pg.DB, log)
	intentEngine := intent.NewEngine(ctx, cfg.NLP.DefaultIndustry, intentStore,
		sentimentEngine, cache.New[intent.Analysis](maxCached, 0), cfg.NLP, log)

	nlpService := nlp.NewService(sentimentEngine, entityEngine, questionEngine,
		keywordEngine, intentEngine, cache.New[nlp.ConversationAnalysis](maxCached, 0),
		redisClient, cacheTTL, log)

	recommendService := recommend.NewService(log)
	objectionService := objection.NewService(log)

	indexer := analytics.NewInsightsIndexer(esClient.Client,
		cfg.Database.Elasticsearch.InsightsIndex, log)
	analyticsService := analytics.NewService(
		analytics.NewPostgresStore(pg.DB, log), indexer, log)

	server := api.NewServer(nlpService, intentEngine, recommendService,
		objectionService, analyticsService, log)

	mux := server.Routes()
	mux.Handle("GET /metrics", promhttp.Handler())

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("HTTP server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Analysis server stopped gracefully")
}
