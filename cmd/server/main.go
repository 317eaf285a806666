package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yourusername/save-the-dragon/internal/api"
	"github.com/yourusername/save-the-dragon/internal/config"
	"github.com/yourusername/save-the-dragon/internal/db"
	"github.com/yourusername/save-the-dragon/internal/engine"
	"github.com/yourusername/save-the-dragon/internal/game"
	"github.com/yourusername/save-the-dragon/internal/generator"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	store, err := db.Open(cfg.DBType, cfg.DBPath, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.String("type", cfg.DBType), zap.Error(err))
	}
	defer store.Close()

	eng := engine.New(store, game.NewRand(cfg.RandomSeed), generator.NewBiomeGenerator(cfg.RandomSeed), engine.Options{
		AdminPassword: cfg.AdminPassword,
		IdleTimeout:   cfg.IdleTimeout,
		Logger:        logger.Named("engine"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go eng.RunSweeper(ctx, cfg.SweepInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewServer(eng, cfg.CORSOrigins, logger.Named("api")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting save-the-dragon server",
			zap.String("port", cfg.Port),
			zap.String("db", cfg.DBType),
			zap.Duration("idle_timeout", cfg.IdleTimeout))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
