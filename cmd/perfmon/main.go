package main

import (
	"context"
	"embed"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/preceptress/neurocompute/internal/config"
	"github.com/preceptress/neurocompute/internal/database"
	"github.com/preceptress/neurocompute/internal/logging"
	"github.com/preceptress/neurocompute/internal/metrics"
	"github.com/preceptress/neurocompute/internal/models"
	"github.com/preceptress/neurocompute/internal/probe"
	"github.com/preceptress/neurocompute/internal/sampler"
	"github.com/preceptress/neurocompute/internal/web"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	configPath := flag.String("config", "", "Path to yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(cfg.Logging)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Initialize probe history storage
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database schema")
	}

	// Redis connection for the probes
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
		DB:   cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr()).Msg("redis not reachable, probes will report failures")
	} else {
		log.Info().Str("addr", cfg.RedisAddr()).Msg("redis connected")
	}
	cancel()

	cacheProber := probe.NewCacheProber(rdb, cfg.Probe.BenchmarkRequests, cfg.Probe.BenchmarkClients, cfg.Probe.Timeout)
	stackProber := probe.NewStackProber(rdb)

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	// Initialize components
	smp := sampler.New(cfg, db, map[string]models.Prober{
		models.MetricCache: cacheProber,
		models.MetricStack: stackProber,
	})
	webServer := web.New(cfg, db, cacheProber, stackProber, registry, staticFiles)

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := smp.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start sampler")
	}

	go func() {
		if err := webServer.Start(); err != nil {
			log.Fatal().Err(err).Msg("web server stopped")
		}
	}()

	log.Info().
		Str("service", cfg.Service).
		Int("port", cfg.Port).
		Dur("sample_interval", cfg.Probe.SampleInterval).
		Msg("performance monitor started")

	<-sigChan
	log.Info().Msg("shutting down")
	smp.Stop()
	smp.Wait()
}
