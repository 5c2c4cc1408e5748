package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"memory-ledger-go/internal/models"
	"memory-ledger-go/internal/store"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Compile-time check: *Service must satisfy store.ResultsBackend.
var _ store.ResultsBackend = (*Service)(nil)

const keyPrefix = "results:"

// Service keeps each bucket as a redis list of JSON records.
type Service struct {
	client *redis.Client
}

func NewService(ctx context.Context, cfg models.RedisConfig) (*Service, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	zap.L().Info("Connecting to Redis", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			zap.L().Warn("Failed to close redis client", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("unable to ping redis: %w", err)
	}

	zap.L().Info("Redis results store initialized successfully")
	return NewServiceWithClient(client), nil
}

func NewServiceWithClient(client *redis.Client) *Service {
	return &Service{client: client}
}

func (s *Service) Close() {
	if err := s.client.Close(); err != nil {
		zap.L().Warn("Failed to close redis connection", zap.Error(err))
	}
}

func bucketKey(bucket string) string {
	return keyPrefix + bucket
}

// Add appends a finished game to the bucket's list.
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

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("unable to encode result: %w", err)
	}

	if err := s.client.RPush(ctx, bucketKey(bucket), payload).Err(); err != nil {
		zap.L().Error("Failed to push game result",
			zap.String("bucket", bucket),
			zap.String("name", result.Name),
			zap.Error(err))
		return store.Unavailable("push result", err)
	}

	zap.L().Debug("Stored game result",
		zap.String("id", result.Id),
		zap.String("bucket", bucket),
		zap.Int64("elapsed_ms", result.ElapsedMs))
	return nil
}

// ListResults reads the whole bucket and returns the fastest results first.
func (s *Service) ListResults(ctx context.Context, bucket string, limit int) ([]models.Result, error) {
	if bucket == "" {
		return nil, store.ErrEmptyBucket
	}

	values, err := s.client.LRange(ctx, bucketKey(bucket), 0, -1).Result()
	if err != nil {
		return nil, store.Unavailable("read results", err)
	}

	results := make([]models.Result, 0, len(values))
	for _, v := range values {
		var r models.Result
		if err := json.Unmarshal([]byte(v), &r); err != nil {
			zap.L().Warn("Skipping malformed result", zap.String("bucket", bucket), zap.Error(err))
			continue
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ElapsedMs < results[j].ElapsedMs
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// CountResults returns the length of the bucket's list, malformed entries
// included.
func (s *Service) CountResults(ctx context.Context, bucket string) (int, error) {
	if bucket == "" {
		return 0, store.ErrEmptyBucket
	}
	n, err := s.client.LLen(ctx, bucketKey(bucket)).Result()
	if err != nil {
		return 0, store.Unavailable("count results", err)
	}
	return int(n), nil
}
