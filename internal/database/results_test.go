package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"memory-ledger-go/internal/models"
	"memory-ledger-go/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func setupTestDb(t *testing.T) (*Service, func()) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every pooled connection would get its own in-memory database.
	db.SetMaxOpenConns(1)

	service := NewServiceWithDB(db)

	// Use the actual schema initialization
	if err := service.InitSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	cleanup := func() {
		db.Close()
	}

	return service, cleanup
}

func TestAdd_AndList(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	bucket := models.DefaultResultsBucket
	base := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)

	for i, r := range []models.Result{
		{Name: "Ada", ElapsedMs: 95000, CreatedAt: base},
		{Name: "Grace", ElapsedMs: 61000, CreatedAt: base.Add(time.Minute)},
		{Name: "Linus", ElapsedMs: 120000, CreatedAt: base.Add(2 * time.Minute)},
	} {
		if err := service.Add(ctx, bucket, r); err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
	}
	if err := service.Add(ctx, "practice", models.Result{Name: "Ada", ElapsedMs: 1000}); err != nil {
		t.Fatalf("Add to second bucket failed: %v", err)
	}

	results, err := service.ListResults(ctx, bucket, 0)
	if err != nil {
		t.Fatalf("ListResults failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	wantOrder := []string{"Grace", "Ada", "Linus"}
	for i, name := range wantOrder {
		if results[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, results[i].Name)
		}
		if results[i].Id == "" {
			t.Errorf("Position %d: expected generated id", i)
		}
	}
	if !results[0].CreatedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("Expected created_at %v, got %v", base.Add(time.Minute), results[0].CreatedAt)
	}

	top, err := service.ListResults(ctx, bucket, 1)
	if err != nil {
		t.Fatalf("ListResults with limit failed: %v", err)
	}
	if len(top) != 1 || top[0].Name != "Grace" {
		t.Errorf("Expected only Grace, got %v", top)
	}

	count, err := service.CountResults(ctx, bucket)
	if err != nil {
		t.Fatalf("CountResults failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected count 3, got %d", count)
	}
}

func TestAdd_RejectsInvalidRecord(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()

	if err := service.Add(ctx, models.DefaultResultsBucket, models.Result{Name: "", ElapsedMs: 10}); !errors.Is(err, store.ErrInvalidResult) {
		t.Errorf("Expected ErrInvalidResult for empty name, got %v", err)
	}
	if err := service.Add(ctx, "", models.Result{Name: "Ada"}); !errors.Is(err, store.ErrEmptyBucket) {
		t.Errorf("Expected ErrEmptyBucket, got %v", err)
	}

	count, err := service.CountResults(ctx, models.DefaultResultsBucket)
	if err != nil {
		t.Fatalf("CountResults failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no rows written, got %d", count)
	}
}

func TestAdd_StorageUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open sqlmock database: %v", err)
	}
	defer db.Close()

	service := NewServiceWithDB(db)

	mock.ExpectExec("INSERT INTO game_results").
		WithArgs(sqlmock.AnyArg(), models.DefaultResultsBucket, "Ada", int64(4200), sqlmock.AnyArg()).
		WillReturnError(errors.New("database is locked"))

	err = service.Add(context.Background(), models.DefaultResultsBucket, models.Result{Name: "Ada", ElapsedMs: 4200})
	if !errors.Is(err, store.ErrStorageUnavailable) {
		t.Errorf("Expected ErrStorageUnavailable, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("There were unfulfilled expectations: %v", err)
	}
}

func TestListResults_StorageUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open sqlmock database: %v", err)
	}
	defer db.Close()

	service := NewServiceWithDB(db)

	mock.ExpectQuery("SELECT id, name, elapsed_ms, created_at").
		WithArgs(models.DefaultResultsBucket, 10).
		WillReturnError(errors.New("disk I/O error"))

	if _, err := service.ListResults(context.Background(), models.DefaultResultsBucket, 10); !errors.Is(err, store.ErrStorageUnavailable) {
		t.Errorf("Expected ErrStorageUnavailable, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("There were unfulfilled expectations: %v", err)
	}
}

func TestNewService_ValidatesConfig(t *testing.T) {
	ctx := context.Background()
	valid := models.DatabaseConfig{Path: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1, PingTimeout: time.Second}

	tests := []struct {
		name   string
		mutate func(c *models.DatabaseConfig)
	}{
		{"empty path", func(c *models.DatabaseConfig) { c.Path = "" }},
		{"zero open conns", func(c *models.DatabaseConfig) { c.MaxOpenConns = 0 }},
		{"negative idle conns", func(c *models.DatabaseConfig) { c.MaxIdleConns = -1 }},
		{"zero ping timeout", func(c *models.DatabaseConfig) { c.PingTimeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if _, err := NewService(ctx, cfg); err == nil {
				t.Error("Expected config error")
			}
		})
	}

	service, err := NewService(ctx, valid)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	service.Close()
}
