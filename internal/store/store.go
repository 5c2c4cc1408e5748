package store

import (
	"context"
	"errors"
	"fmt"

	"memory-ledger-go/internal/models"
)

// Sentinel errors shared across all backend implementations.
var (
	ErrStorageUnavailable = errors.New("results storage unavailable")
	ErrInvalidResult      = errors.New("invalid result record")
	ErrEmptyBucket        = errors.New("bucket name cannot be empty")
)

// ResultsStore is the append-only log of finished games. Records are grouped
// under a logical bucket name such as models.DefaultResultsBucket.
type ResultsStore interface {
	Add(ctx context.Context, bucket string, result models.Result) error
	Close()
}

// ResultsReader is the optional read side used by reporting tools.
type ResultsReader interface {
	// ListResults returns up to limit records, fastest first. A limit <= 0
	// returns every record in the bucket.
	ListResults(ctx context.Context, bucket string, limit int) ([]models.Result, error)
	// CountResults returns how many records the bucket holds.
	CountResults(ctx context.Context, bucket string) (int, error)
}

// ResultsBackend is implemented by every backend shipped with this module.
type ResultsBackend interface {
	ResultsStore
	ResultsReader
}

// CheckRecord validates a record before any backend writes it.
func CheckRecord(bucket string, result models.Result) error {
	if bucket == "" {
		return ErrEmptyBucket
	}
	if err := result.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	return nil
}

// Unavailable wraps a backend failure so callers can match it with errors.Is.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}
