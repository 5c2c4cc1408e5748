package common

import (
	"context"
	"fmt"
	"log"
	"strings"

	"memory-ledger-go/internal/config"
	"memory-ledger-go/internal/database"
	"memory-ledger-go/internal/models"
	"memory-ledger-go/internal/redisstore"
	"memory-ledger-go/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// init loads environment variables from .env file if it exists
func init() {
	// Environment variables can also be set via shell export, docker, etc.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: No .env file found or unable to load it: %v\n", err)
	} else {
		log.Println("✓ Loaded environment variables from .env file")
	}
}

func InitializeLogger() (*zap.Logger, func()) {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	zap.ReplaceGlobals(logger)

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			if !isIgnorableSyncError(err) {
				log.Printf("Failed to sync logger: %v\n", err)
			}
		}
	}

	return logger, cleanup
}

// InitializeResultsStore opens the backend selected by RESULTS_BACKEND.
func InitializeResultsStore(ctx context.Context, cfg *models.Config) (store.ResultsBackend, error) {
	switch cfg.Results.Backend {
	case config.BackendRedis:
		svc, err := redisstore.NewService(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return svc, nil
	case config.BackendSQLite, "":
		svc, err := database.NewService(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return svc, nil
	default:
		return nil, fmt.Errorf("unknown results backend: %q", cfg.Results.Backend)
	}
}

func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "sync /dev/stderr: inappropriate ioctl for device") ||
		strings.Contains(msg, "sync /dev/stdout: inappropriate ioctl for device")
}
