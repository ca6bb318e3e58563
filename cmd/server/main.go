package main

import (
	"alcyxob/training-tracker/internal/api"
	"alcyxob/training-tracker/internal/config"
	"alcyxob/training-tracker/internal/logging"
	"alcyxob/training-tracker/internal/metrics"
	"alcyxob/training-tracker/internal/plan"
	"alcyxob/training-tracker/internal/repository/backend"
	"alcyxob/training-tracker/internal/service"
	"alcyxob/training-tracker/internal/storage"
	"alcyxob/training-tracker/internal/strava"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// @title Training Tracker API
// @version 1.0
// @description Half-marathon training plan tracker: workout logging, plan modifications, statistics and activity enrichment.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	logSink := logging.Setup(logging.SetupParams{
		LogFileName:   cfg.Logging.File,
		LogToStdout:   cfg.Logging.Stdout,
		LogLevel:      cfg.Logging.Level,
		LogFormatJSON: cfg.Logging.JSON,
		MaxSizeMB:     cfg.Logging.MaxSizeMB,
		MaxBackups:    cfg.Logging.MaxBackups,
		MaxAgeDays:    cfg.Logging.MaxAgeDays,
	})
	log.Infoln("starting training tracker server...")

	ctx := context.Background()

	// --- Record Store ---
	store, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("could not open record store: %s", err)
	}

	// --- Metrics ---
	var (
		metricsManager *metrics.Manager
		gatherer       prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metricsManager = metrics.NewManager("tracker", "server", reg)
		gatherer = reg
	}

	// --- Backups ---
	var objects storage.ObjectStorage
	if cfg.S3.Enabled() {
		objects, err = storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %s", err)
		}
	} else {
		log.Infoln("s3 bucket not configured, backups disabled")
	}

	// --- Services ---
	catalog := plan.NewCatalog()
	services := api.Services{
		Catalog:  catalog,
		Workouts: service.NewWorkoutService(store, catalog),
		Stats:    service.NewStatsService(store, catalog),
		Backups:  service.NewBackupService(store, objects, cfg.S3.PresignExpiry),
	}
	if cfg.Strava.Enabled() {
		signer := strava.NewStateSigner(cfg.State.Secret, cfg.State.TTL)
		services.Strava = strava.NewClient(cfg.Strava, store, signer, metricsManager)
	} else {
		log.Infoln("strava credentials not configured, activity enrichment disabled")
	}

	// --- HTTP ---
	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(metricsManager)
	api.SetupRoutes(router, services, metricsManager, gatherer)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infoln("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	err = multierr.Combine(
		server.Shutdown(ctxShutdown),
		store.Close(ctxShutdown),
	)
	if err != nil {
		log.Errorf("shutdown: %s", err)
	} else {
		log.Infoln("server exiting")
	}
	if logSink != nil {
		err = multierr.Append(err, logSink.Close())
	}
	if err != nil {
		cancelShutdown()
		os.Exit(1)
	}
}
