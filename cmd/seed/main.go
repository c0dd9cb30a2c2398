package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/healthclaim/portal-api/internal/core/service"
	mongodb "github.com/healthclaim/portal-api/internal/infrastructure/db/mongo"
	"github.com/healthclaim/portal-api/internal/pkg/config"
	"github.com/healthclaim/portal-api/internal/seed"
	"github.com/healthclaim/portal-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Service: "portal-seed",
		Env:     cfg.Env,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb configuration")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.Ping(ctx, client, 10*time.Second); err != nil {
		log.Fatal().Err(err).Msg("mongodb unreachable")
	}

	created, err := seed.Run(ctx, mongodb.NewUserRepository(db), service.NewBcryptHasher(cfg.Auth.BcryptCost), log)
	if err != nil {
		log.Error().Err(err).Int("created", created).Msg("seeding finished with failures")
		return
	}
	log.Info().Int("created", created).Msg("seeding complete")
}
