// cmd/server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"interview-backend/internal/catalog"
	"interview-backend/internal/common/config"
	"interview-backend/internal/common/database"
	"interview-backend/internal/common/logger"
	"interview-backend/internal/evaluation"
	"interview-backend/internal/salary"
	"interview-backend/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New("info", "console")
		fallbackLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting interview backend",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	// --- Question catalog ---
	// A broken catalog degrades the fallback scorer to its default result
	// but never stops the service.
	store, err := catalog.Load(cfg.Catalog.Path, log)
	if err != nil {
		log.Warn("catalog unavailable, fallback evaluations will use defaults", map[string]interface{}{
			"path":  cfg.Catalog.Path,
			"error": err.Error(),
		})
		store = catalog.Empty(log)
	}

	// --- Optional evaluation result cache ---
	var cache *evaluation.ResultCache
	if cfg.Cache.Enabled {
		redisClient, err := database.NewRedis(cfg.Cache.Redis)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = redisClient.Ping(pingCtx)
			cancel()
		}
		if err != nil {
			log.Warn("redis unavailable, evaluation cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redisClient.Close()
			cache = evaluation.NewResultCache(redisClient, time.Duration(cfg.Cache.TTL)*time.Second, log)
			log.Info("evaluation cache enabled", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
				"ttlSec":  cfg.Cache.TTL,
			})
		}
	}

	// --- Evaluation pipeline ---
	var client *evaluation.Client
	if cfg.HuggingFace.Enabled {
		client = evaluation.NewClient(evaluation.ConfigFrom(cfg.HuggingFace), log)
		log.Info("remote evaluation enabled", map[string]interface{}{
			"model": cfg.HuggingFace.ModelName,
		})
	} else {
		log.Info("remote evaluation disabled, local scorer only", nil)
	}
	fallback := evaluation.NewFallbackScorer(store, log)
	evaluator := evaluation.NewEvaluator(client, fallback, cache, log)

	calculator := salary.NewCalculator()

	srv := server.NewServer(cfg, log, evaluator, calculator, store)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		zapLog.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
	zapLog.Info("shutdown complete")
}
