package main

import (
	"context"
	"log"
	"os"
	"time"

	"frent-client/internal/config"
	"frent-client/internal/database"
	"frent-client/internal/logger"
	"frent-client/internal/repository"
)

func main() {
	cfg := config.Load()

	appLogger, err := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if !cfg.JournalEnabled() {
		appLogger.Error("MONGO_URI is not set, there is no journal to index")
		os.Exit(1)
	}

	appLogger.Info("starting migration")

	mongoDB, err := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, appLogger)
	if err != nil {
		appLogger.Error("failed to connect", "error", err)
		os.Exit(1)
	}
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	failed := 0
	collection := mongoDB.Collection(repository.SagaCollection)
	for _, index := range repository.SagaIndexes() {
		name, err := collection.Indexes().CreateOne(ctx, index)
		if err != nil {
			appLogger.Warn("failed to create index", "collection", repository.SagaCollection, "error", err)
			failed++
			continue
		}
		appLogger.Info("created index", "collection", repository.SagaCollection, "index", name)
	}

	if failed > 0 {
		mongoDB.Close()
		os.Exit(1)
	}
	appLogger.Info("migration completed")
}
