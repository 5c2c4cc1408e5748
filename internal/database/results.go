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

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"memory-ledger-go/internal/models"
	"memory-ledger-go/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Add appends a finished game to bucket.
func (s *Service) Add(ctx context.Context, bucket string, result models.Result) error {
	if err := store.CheckRecord(bucket, result); err != nil {
		return err
	}

	if result.Id == "" {
		result.Id = uuid.New().String()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, queryInsertResult,
		result.Id, bucket, result.Name, result.ElapsedMs, result.CreatedAt)
	if err != nil {
		zap.L().Error("Failed to insert game result",
			zap.String("bucket", bucket),
			zap.String("name", result.Name),
			zap.Error(err))
		return store.Unavailable("insert result", err)
	}

	zap.L().Debug("Stored game result",
		zap.String("id", result.Id),
		zap.String("bucket", bucket),
		zap.Int64("elapsed_ms", result.ElapsedMs))
	return nil
}

// ListResults returns the fastest results in bucket first.
func (s *Service) ListResults(ctx context.Context, bucket string, limit int) ([]models.Result, error) {
	if bucket == "" {
		return nil, store.ErrEmptyBucket
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx, queryListResults, bucket, limit)
	if err != nil {
		zap.L().Error("Failed to query game results", zap.String("bucket", bucket), zap.Error(err))
		return nil, store.Unavailable("query results", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	var results []models.Result
	for rows.Next() {
		var r models.Result
		if err := rows.Scan(&r.Id, &r.Name, &r.ElapsedMs, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("unable to scan result row: %w", err)
		}
		results = append(results, r)
	}

	// Check for errors during iteration
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating result rows: %w", err)
	}

	zap.L().Debug("Retrieved game results", zap.String("bucket", bucket), zap.Int("count", len(results)))
	return results, nil
}

// CountResults returns how many games are recorded in bucket.
func (s *Service) CountResults(ctx context.Context, bucket string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, queryCountResults, bucket).Scan(&n); err != nil {
		return 0, store.Unavailable("count results", err)
	}
	return n, nil
}
