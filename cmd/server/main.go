// @title LensLink API
// @version 1.0.0
// @description Photographer discovery directory API
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/Adi-cmrec/lenslink/docs" // swagger spec registration
	"github.com/Adi-cmrec/lenslink/internal/api"
	"github.com/Adi-cmrec/lenslink/internal/infrastructure/config"
	lensmongo "github.com/Adi-cmrec/lenslink/internal/infrastructure/db/mongo"
	lensredis "github.com/Adi-cmrec/lenslink/internal/infrastructure/db/redis"
	"github.com/Adi-cmrec/lenslink/internal/infrastructure/storage"
	"github.com/Adi-cmrec/lenslink/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Best-effort .env bootstrap; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	client, db, err := lensmongo.Connect(ctx, lensmongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	userRepo := lensmongo.NewUserRepository(db)
	profileRepo := lensmongo.NewProfileRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := profileRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create profile indexes")
	}

	rdb, err := lensredis.Connect(ctx, lensredis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload directory unavailable")
	}

	e := api.NewRouter(db, rdb, store, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("lenslink api started")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}

	log.Info().Msg("lenslink api shut down")
}
