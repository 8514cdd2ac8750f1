package main

import (
	"time"

	"go.uber.org/zap"

	"phishguard/internal/alert"
	"phishguard/internal/analyzer"
	"phishguard/internal/config"
	"phishguard/internal/probe"
	"phishguard/internal/repository"
	"phishguard/internal/server"
	"phishguard/internal/service"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Initialize repositories
	submissionRepo := repository.NewSubmissionRepository(db, logger)
	userRepo := repository.NewUserRepository(db, logger)

	// Heuristic engine with the real network prober
	prober := probe.NewHTTPProber(
		time.Duration(cfg.Probe.FetchTimeoutSeconds)*time.Second,
		time.Duration(cfg.Probe.TLSTimeoutSeconds)*time.Second,
	)
	engine := analyzer.New(analyzer.DefaultConfig(), prober, logger)

	// Optional Telegram alerting for malicious verdicts
	notifier, err := alert.NewNotifier(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize Telegram notifier, continuing without it", zap.Error(err))
		notifier = nil
	}

	triage := service.NewTriageService(engine, submissionRepo, userRepo, notifier, logger)

	// Initialize and run the server
	srv := server.NewServer(triage, logger)
	srv.Run(cfg.Server.Port)
}
