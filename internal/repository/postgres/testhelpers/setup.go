package testhelpers

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/config"
	"github.com/coverage-planner/internal/repository/postgres"
)

// SetupTestDB подключается к тестовой базе и применяет миграции.
// Тест пропускается, если TEST_DB_HOST не задан.
func SetupTestDB(t *testing.T) *postgres.DB {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST is not set, skipping PostgreSQL integration test")
	}

	port, err := strconv.Atoi(getEnv("TEST_DB_PORT", "5433"))
	if err != nil {
		t.Fatalf("invalid TEST_DB_PORT: %v", err)
	}

	cfg := config.DatabaseConfig{
		Host:     host,
		Port:     port,
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		DBName:   getEnv("TEST_DB_NAME", "coverage_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}

	// база в docker может подниматься дольше теста
	var sqlxDB *sqlx.DB
	maxRetries := 10
	retryDelay := 500 * time.Millisecond
	for i := 0; i < maxRetries; i++ {
		sqlxDB, err = sqlx.Connect("pgx", cfg.DSN())
		if err == nil {
			break
		}
		if i < maxRetries-1 {
			t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, maxRetries, retryDelay)
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}
	if err != nil {
		t.Fatalf("Failed to connect to test database after %d attempts: %v", maxRetries, err)
	}

	db := postgres.NewWithDB(sqlxDB, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}
	if err := Cleanup(ctx, db); err != nil {
		t.Fatalf("Failed to clean test database: %v", err)
	}

	t.Cleanup(func() {
		_ = Cleanup(context.Background(), db)
		_ = db.Close()
	})

	return db
}

// Cleanup очищает таблицы сервиса
func Cleanup(ctx context.Context, db *postgres.DB) error {
	for _, table := range []string{"scenarios"} {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
