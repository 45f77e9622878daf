package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Oleksiy-Zhukov/studentsai/internal/api"
	"github.com/Oleksiy-Zhukov/studentsai/internal/config"
	"github.com/Oleksiy-Zhukov/studentsai/internal/db"
	"github.com/Oleksiy-Zhukov/studentsai/internal/grading"
	"github.com/Oleksiy-Zhukov/studentsai/internal/logger"
	"github.com/Oleksiy-Zhukov/studentsai/internal/repository/sqlite"
	"github.com/Oleksiy-Zhukov/studentsai/internal/services"
	"github.com/Oleksiy-Zhukov/studentsai/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("StudentsAI Review Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("grader_enabled=%t", cfg.GraderEnabled)
	log.Debug("grader_model=%s", cfg.GraderModel)
	log.Debug("grader_timeout_seconds=%d", cfg.GraderTimeoutSec)
	log.Debug("archive_scan_interval_minutes=%d", cfg.ArchiveScanIntervalMin)
	log.Debug("archive_min_repetitions=%d", cfg.ArchiveMinRepetitions)
	log.Debug("due_limit_default=%d", cfg.DueLimitDefault)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	cardRepo := sqlite.NewFlashcardRepository(database.DB)
	scheduleRepo := sqlite.NewScheduleRepository(database.DB)
	historyRepo := sqlite.NewReviewHistoryRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)

	var grader grading.Grader
	if cfg.GraderEnabled && cfg.OpenAIAPIKey != "" {
		grader = grading.NewOpenAIGrader(cfg.OpenAIAPIKey, cfg.GraderModel,
			time.Duration(cfg.GraderTimeoutSec)*time.Second)
		log.Info("LLM grader enabled: model=%s", cfg.GraderModel)
	} else {
		log.Info("LLM grader disabled, using heuristic scorer only")
	}

	flashcardService := services.NewFlashcardService(cardRepo)
	reviewService := services.NewReviewService(cardRepo, scheduleRepo, historyRepo, grader)
	statsService := services.NewStatsService(statsRepo)

	archivePool := worker.NewPool(cfg.ArchiveWorkerCount, cfg.ArchiveQueueSize)

	srv := &api.Server{
		FlashcardService: flashcardService,
		ReviewService:    reviewService,
		StatsService:     statsService,
		DueLimitDefault:  cfg.DueLimitDefault,
	}

	ctx, cancel := context.WithCancel(context.Background())
	archivePool.Start(ctx)

	archiveJob := &worker.ArchiveScanJob{
		Reviews:        reviewService,
		Schedules:      scheduleRepo,
		MinRepetitions: cfg.ArchiveMinRepetitions,
	}
	archiveJob.Schedule(ctx, archivePool, time.Duration(cfg.ArchiveScanIntervalMin)*time.Minute)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	archivePool.Stop()

	log.Info("===========================================")
	log.Info("StudentsAI Review Server Stopped")
	log.Info("===========================================")
}
