package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/acad-service/internal/cache"
	"github.com/stemsi/acad-service/internal/config"
	"github.com/stemsi/acad-service/internal/database"
	"github.com/stemsi/acad-service/internal/handler"
	"github.com/stemsi/acad-service/internal/logger"
	"github.com/stemsi/acad-service/internal/metrics"
	"github.com/stemsi/acad-service/internal/middleware"
	"github.com/stemsi/acad-service/internal/repository"
	"github.com/stemsi/acad-service/internal/router"
	"github.com/stemsi/acad-service/internal/service"
	"github.com/stemsi/acad-service/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Acad Service")

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	metrics.Init(pool)

	// ─── Connect to Redis (optional) ───────────────────────────────────
	// Only the grade-weight listing is cached; without Redis it reads the DB.
	var gradeCache service.BobotNilaiCache
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, grade-weight cache disabled")
		} else {
			defer rdb.Close()
			gradeCache = cache.NewBobotNilaiCache(rdb, cfg.GradeCacheTTL)
		}
	}

	// ─── Initialize Services ──────────────────────────────────────────
	uow := repository.NewUnitOfWork(pool)

	authService := service.NewAuthService(cfg)
	mahasiswaService := service.NewMahasiswaService(uow)
	mataKuliahService := service.NewMataKuliahService(uow)
	krsService := service.NewKRSService(uow, log)
	transcriptService := service.NewTranscriptService(uow, log)
	bobotNilaiService := service.NewBobotNilaiService(uow, gradeCache, log)

	// ─── Prewarm Grade-Weight Cache ────────────────────────────────────
	if gradeCache != nil {
		if _, err := bobotNilaiService.List(ctx); err != nil {
			log.Warn().Err(err).Msg("Grade-weight cache prewarm failed")
		}
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Mahasiswa:  handler.NewMahasiswaHandler(mahasiswaService),
		MataKuliah: handler.NewMataKuliahHandler(mataKuliahService),
		KRS:        handler.NewKRSHandler(krsService),
		Transcript: handler.NewTranscriptHandler(transcriptService),
		BobotNilai: handler.NewBobotNilaiHandler(bobotNilaiService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitPerMinute, time.Minute)
	r := router.SetupRouter(authService, handlers, limiter, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
