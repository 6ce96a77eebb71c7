package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/janidumadawa/GameStore/internal/config"
	"github.com/janidumadawa/GameStore/internal/db"
	"github.com/janidumadawa/GameStore/internal/logger"
	"github.com/janidumadawa/GameStore/internal/router"
	"github.com/janidumadawa/GameStore/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Msg("Starting game store API")

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()
	log.Info().Msg("Connected to MongoDB")

	database := client.Database(cfg.MongoDB)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelIndex()
	if err := store.NewUserStore(database).EnsureIndexes(indexCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	r := router.SetupRouter(database, cfg, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Msgf("Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
