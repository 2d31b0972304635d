package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/config"
	"github.com/agrogestor/backend/internal/repository/record"
	"github.com/agrogestor/backend/internal/repository/sheets"
	"github.com/agrogestor/backend/internal/scheduler"
	"github.com/agrogestor/backend/internal/server/handlers"
	"github.com/agrogestor/backend/internal/server/router"
	recordsvc "github.com/agrogestor/backend/internal/service/records"
	reportingsvc "github.com/agrogestor/backend/internal/service/reporting"
	weathersvc "github.com/agrogestor/backend/internal/service/weather"
	"github.com/agrogestor/backend/pkg/clients/notify"
	weatherclient "github.com/agrogestor/backend/pkg/clients/weather"
	"github.com/agrogestor/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := record.NewMongoStore(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.record"))
	if err != nil {
		baseLogger.Fatal("failed to init record store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	recordSvc := recordsvc.NewService(store, baseLogger.Named("svc.records"))
	if err := recordSvc.EnsureSeeded(context.Background()); err != nil {
		baseLogger.Fatal("failed to seed record store", zap.Error(err))
	}

	forecastClient := weatherclient.NewClient(cfg.Weather.BaseURL)
	weatherSvc := weathersvc.NewService(forecastClient, cfg.Weather.FallbackLat, cfg.Weather.FallbackLon, cfg.Weather.CacheTTL, baseLogger.Named("svc.weather"))

	var notifier notify.Client
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewClient(cfg.Notify.WebhookURL)
		baseLogger.Info("webhook notifier enabled")
	} else {
		baseLogger.Warn("notify webhook missing, alert notifications disabled")
	}

	var sheetsRepo sheets.Repository
	if cfg.SheetsEnabled() {
		sheetsRepo, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		baseLogger.Info("sheets export enabled")
	} else {
		baseLogger.Warn("sheets credentials missing, weekly export disabled")
	}

	reportingSvc := reportingsvc.NewService(recordSvc, sheetsRepo, notifier, baseLogger.Named("svc.reporting"))

	engine := router.New(router.Handlers{
		Dashboard:  handlers.NewDashboardHandler(recordSvc, baseLogger.Named("handlers.dashboard")),
		Finance:    handlers.NewFinanceHandler(recordSvc, baseLogger.Named("handlers.finance")),
		Inventory:  handlers.NewInventoryHandler(recordSvc, baseLogger.Named("handlers.inventory")),
		Production: handlers.NewProductionHandler(recordSvc, baseLogger.Named("handlers.production")),
		Alerts:     handlers.NewAlertHandler(recordSvc, baseLogger.Named("handlers.alerts")),
		Weather:    handlers.NewWeatherHandler(weatherSvc, baseLogger.Named("handlers.weather")),
	}, baseLogger.Named("router"))

	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		baseLogger.Warn("invalid timezone, scheduler uses local time", zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
		loc = time.Local
	}

	sched := scheduler.NewScheduler(*cfg, recordSvc, reportingSvc, notifier, loc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
