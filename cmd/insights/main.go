package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Pratul75/report360/internal/infrastructure/config"
	"github.com/Pratul75/report360/internal/infrastructure/logger"
	"github.com/Pratul75/report360/internal/insights"
)

// The insights sidecar is a stateless analytics service. The API posts
// aggregated rows here and gets back scored insights; no database
// access happens in this process.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	var recommender insights.Recommender = insights.NewRuleRecommender()
	if cfg.Insights.OpenAIAPIKey != "" {
		recommender = insights.NewOpenAIRecommender(
			cfg.Insights.OpenAIAPIKey,
			cfg.Insights.OpenAIModel,
			cfg.Insights.Timeout,
			log,
		)
		log.Info("Using LLM recommender", zap.String("model", cfg.Insights.OpenAIModel))
	} else {
		log.Info("Using rule-based recommender")
	}

	engine := insights.NewEngine(recommender)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(logger.GinMiddleware(log))
	router.Use(gin.Recovery())

	insights.NewHandler(engine, log).RegisterRoutes(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Insights.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("Insights service listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Insights service stopped")
}
