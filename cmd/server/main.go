package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/edumaster/analytics-engine/config"
	"github.com/edumaster/analytics-engine/internal/application/query"
	"github.com/edumaster/analytics-engine/internal/infrastructure/persistence/postgres"
	redisadapter "github.com/edumaster/analytics-engine/internal/infrastructure/persistence/redis"
	httpiface "github.com/edumaster/analytics-engine/internal/interface/http"
	"github.com/edumaster/analytics-engine/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	log, err := logger.New(cfg.Observability.LogLevel, cfg.App.IsDevelopment())
	if err != nil {
		panic("logger: " + err.Error())
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", "error", err)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Info("connected to postgres")

	store := postgres.NewRecordStore(conn)
	pipeline := query.NewPipeline(store, log)
	now := time.Now

	var (
		tracker     query.SessionTracker
		limiter     httpiface.Limiter
		cacheHealth httpiface.Pinger
	)
	if !cfg.Redis.Disabled {
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		log.Info("connected to redis")

		tracker = redisadapter.NewSessionTracker(client, now)
		limiter = redisadapter.NewRateLimiter(client, cfg.HTTP.RateLimitPerMinute, time.Minute)
		cacheHealth = redisadapter.NewHealth(client)
	}

	handlers := httpiface.NewHandlers(
		query.NewGetBehavioralAnalyticsHandler(pipeline, now),
		query.NewGetAcademicPredictionHandler(pipeline, now),
		query.NewGetDashboardHandler(pipeline, store, tracker, log, now),
		query.NewGetReadingAnalyticsHandler(pipeline, store, now),
		query.NewGetQuizStatsHandler(pipeline, store, now),
		conn,
		cacheHealth,
		cfg.App.Version,
		log,
	)

	var metrics *httpiface.Metrics
	if cfg.Observability.MetricsEnabled {
		metrics = httpiface.NewMetrics()
	}

	server := httpiface.NewServer(cfg.HTTP, handlers, limiter, metrics, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
