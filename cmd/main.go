package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnthoniusHendriyanto/account-service/config"
	"github.com/AnthoniusHendriyanto/account-service/db"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/audit"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/handler"
	repo "github.com/AnthoniusHendriyanto/account-service/internal/auth/repository/postgres"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/repository/redisstore"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/service"
	"github.com/AnthoniusHendriyanto/account-service/internal/logging"
	"github.com/AnthoniusHendriyanto/account-service/internal/mailer"
	"github.com/AnthoniusHendriyanto/account-service/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal("postgres connection failed", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient, err := db.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()

	accountRepo := repo.NewPostgresRepository(dbPool)
	challengeStore := redisstore.NewChallengeStore(redisClient)

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)

	auditSink := audit.NewRepositorySink(accountRepo, logger)
	auditor := audit.NewDispatcher(cfg.AuditBufferSize, auditSink)
	defer auditor.Close()

	smtpMailer := mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	userService := service.NewUserService(accountRepo, tokenService, cfg, auditor, m, logger)
	unlockService := service.NewUnlockService(accountRepo, challengeStore, smtpMailer, cfg, auditor, m, logger)
	authHandler := handler.NewAuthHandler(userService, unlockService, tokenService)

	// Startup sweep of long-expired revoked sessions.
	if purged, err := accountRepo.PurgeExpiredSessions(ctx, time.Now().Add(-24*time.Hour)); err != nil {
		logger.Warn("session purge failed", zap.Error(err))
	} else if purged > 0 {
		logger.Info("purged expired refresh sessions", zap.Int64("count", purged))
	}

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)
	handler.RegisterMetrics(app, registry)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
