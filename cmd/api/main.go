// @title                       HealthClaim Portal API
// @version                     1.0
// @description                 Authentication and portal backend for patients, providers and payors.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/healthclaim/portal-api/internal/api"
	"github.com/healthclaim/portal-api/internal/core/ports"
	"github.com/healthclaim/portal-api/internal/core/service"
	mongodb "github.com/healthclaim/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/healthclaim/portal-api/internal/infrastructure/db/redis"
	"github.com/healthclaim/portal-api/internal/pkg/config"
	"github.com/healthclaim/portal-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "portal-api",
		Env:     cfg.Env,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.InsecureSecret() {
		log.Warn().Msg("using the default signing secret; set JWT_SECRET before deploying")
	}

	ctx := context.Background()

	// MongoDB dials lazily; an unreachable server is reported but does not
	// stop the process.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb configuration")
	}
	if err := mongodb.Ping(ctx, client, 5*time.Second); err != nil {
		log.Warn().Err(err).Msg("mongodb unreachable at startup; requests will fail until it is back")
	}

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("user indexes not created yet; retrying on first write")
	}

	// Redis only backs the login throttle; without it logins are not throttled.
	var (
		rdb      *goredis.Client
		throttle ports.LoginThrottle
	)
	rdb, err = redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable; login throttling disabled")
	} else {
		throttle = redisdb.NewLoginThrottle(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginLockoutWindow)
	}

	tokens := service.NewJWTService(cfg.SigningSecret(), cfg.Auth.TokenTTL)
	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)

	e := api.NewRouter(api.Dependencies{
		Logger:      logger.Component("http"),
		Environment: cfg.Env,
		FrontendURL: cfg.FrontendURL,
		Users:       users,
		Tokens:      tokens,
		Auth:        service.NewAuthService(users, hasher, tokens, throttle, logger.Component("auth")),
		Portal:      service.NewPortalService(logger.Component("portal")),
		Mongo:       db,
		Redis:       rdb,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("portal api starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("portal api failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect")
	}
	log.Info().Msg("portal api stopped gracefully")
}
