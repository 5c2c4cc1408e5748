/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"memory-ledger-go/internal/models"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

func Load() (*models.Config, error) {
	backend := strings.ToLower(getEnvString("RESULTS_BACKEND", BackendSQLite))
	if backend != BackendSQLite && backend != BackendRedis {
		return nil, fmt.Errorf("invalid RESULTS_BACKEND: %q (want %s or %s)", backend, BackendSQLite, BackendRedis)
	}

	connMaxLifetime, err := getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	connMaxIdleTime, err := getEnvDuration("DB_CONN_MAX_IDLE_TIME", 30*time.Second)
	if err != nil {
		return nil, err
	}

	pingTimeout, err := getEnvDuration("DB_PING_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	holdPeriod, err := getEnvDuration("GAME_HOLD_PERIOD", time.Second)
	if err != nil {
		return nil, err
	}

	tickInterval, err := getEnvDuration("GAME_TICK_INTERVAL", time.Second)
	if err != nil {
		return nil, err
	}
	if tickInterval <= 0 {
		return nil, fmt.Errorf("GAME_TICK_INTERVAL must be positive, got %v", tickInterval)
	}

	loc, err := getEnvLocation("TABLE_TIMEZONE", time.Local)
	if err != nil {
		return nil, err
	}

	return &models.Config{
		Results: models.ResultsConfig{
			Backend: backend,
			Bucket:  getEnvString("RESULTS_BUCKET", models.DefaultResultsBucket),
		},
		Database: models.DatabaseConfig{
			Path:            getEnvString("DATABASE_PATH", "results.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: connMaxLifetime,
			ConnMaxIdleTime: connMaxIdleTime,
			PingTimeout:     pingTimeout,
		},
		Redis: models.RedisConfig{
			Addr:        getEnvString("REDIS_ADDR", "localhost:6379"),
			Password:    os.Getenv("REDIS_PASSWORD"),
			DB:          getEnvInt("REDIS_DB", 0),
			PingTimeout: pingTimeout,
		},
		Game: models.GameConfig{
			HoldPeriod:   holdPeriod,
			TickInterval: tickInterval,
		},
		Table: models.TableConfig{
			DatasetFile: getEnvString("DATASET_FILE", "transactions.yaml"),
			Location:    loc,
		},
	}, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvLocation(key string, defaultValue *time.Location) (*time.Location, error) {
	if value := os.Getenv(key); value != "" {
		loc, err := time.LoadLocation(value)
		if err != nil {
			return nil, fmt.Errorf("invalid time zone for %s: %q (%w)", key, value, err)
		}
		return loc, nil
	}
	return defaultValue, nil
}
