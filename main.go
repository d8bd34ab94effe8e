package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"p9e.in/splicing/config"
	"p9e.in/splicing/handlers"
	"p9e.in/splicing/repos"
	"p9e.in/splicing/routes"
	"p9e.in/splicing/services"
	"p9e.in/splicing/storage"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {

	versionFlag := flag.Bool("version", false, "Print version info and exit")
	memoryFlag := flag.Bool("memory", false, "Keep reports in memory instead of PostgreSQL")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg := config.Load()
	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer logger.Sync()

	var store repos.ReportStore
	if *memoryFlag {
		logger.Warn("using in-memory report store; data is lost on restart")
		store = repos.NewMemoryReportStore()
	} else {
		db, err := config.Connect(cfg.DSN)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		if err := config.Migrations(db); err != nil {
			logger.Fatal("could not run migrations", zap.Error(err))
		}
		store = repos.NewGormReportStore(db, logger)
	}

	opts := []services.Option{}
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			logger.Fatal("invalid TIMEZONE", zap.String("timezone", cfg.Timezone), zap.Error(err))
		}
		opts = append(opts, services.WithLocation(loc))
	}
	service := services.NewReportService(store, logger, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SeedDemoData {
		// Seeding problems never block startup
		if _, err := config.SeedDemoReports(ctx, service, logger); err != nil {
			logger.Warn("seeding encountered issues", zap.Error(err))
		}
	}

	exports, err := storage.NewExportStore(ctx, cfg.UseGCS, cfg.GCSBucket, cfg.ExportDir, logger)
	if err != nil {
		logger.Fatal("could not create export store", zap.Error(err))
	}
	if closer, ok := exports.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	exportDir := cfg.ExportDir
	if cfg.UseGCS && cfg.GCSBucket != "" {
		exportDir = ""
	}
	handler := routes.RegisterRoutes(handlers.NewReportHandler(service, exports, logger), routes.Options{
		StaticDir:         cfg.StaticDir,
		ExportDir:         exportDir,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
	}, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
