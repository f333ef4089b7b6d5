// Package testutil holds Postgres and Redis fixtures for integration tests plus small domain builders.
package testutil

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	// Import pgx driver for database/sql compatibility in tests.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/target/rmsgas-api/internal/migrate"
)

// rmsgasTables lists every table the schema owns, children before parents.
var rmsgasTables = []string{"opt_results", "optimizations", "shipper_plannings", "scenarios", "portfolios"}

// TestDBConfig holds configuration for test database.
type TestDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// DefaultTestDBConfig returns default test database configuration.
// Defaults to port 55432 (local test DB from docker-compose test profile).
// CI/CD environments should set TEST_DB_PORT=5432 explicitly.
func DefaultTestDBConfig() TestDBConfig {
	return TestDBConfig{
		Host:     getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:     getEnvOrDefault("TEST_DB_PORT", "55432"),
		User:     getEnvOrDefault("TEST_DB_USER", "rmsgas"),
		Password: getEnvOrDefault("TEST_DB_PASSWORD", "rmsgas"),
		DBName:   getEnvOrDefault("TEST_DB_NAME", "rmsgas"),
	}
}

// DSN renders the config as a pgx connection URL, optionally pinned to a schema.
func (c TestDBConfig) DSN(schema string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   "/" + c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", getEnvOrDefault("TEST_DB_SSLMODE", "disable"))
	if schema != "" {
		q.Set("search_path", schema+",public")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// TestingTB is an interface that covers both *testing.T and *testing.B.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Skipf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
	Cleanup(func())
}

// SkipIfNoTestDB skips the test if test database is not available.
// TEST_REQUIRE_DB (or TEST_REQUIRE_INFRA) turns the skip into a failure.
func SkipIfNoTestDB(t TestingTB) {
	t.Helper()

	db, err := sql.Open("pgx", DefaultTestDBConfig().DSN(""))
	if err != nil {
		skipOrFail(t, requireDB(), "Test database not available:", err)
		return
	}
	defer closeAndLog(t, "probe DB", db)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if pingErr := db.PingContext(ctx); pingErr != nil {
		skipOrFail(t, requireDB(), "Test database not available:", pingErr)
	}
}

// WithAutoDB runs fn against a migrated database. With TEST_DB_EPHEMERAL set, every test gets its
// own schema that is dropped afterwards; otherwise the shared database is truncated around fn.
func WithAutoDB(t TestingTB, fn func(*sql.DB)) {
	t.Helper()
	SkipIfNoTestDB(t)

	if envBool("TEST_DB_EPHEMERAL") {
		fn(openEphemeralSchema(t))
		return
	}

	db := openMigrated(t, "")
	truncate(t, db)
	t.Cleanup(func() {
		truncate(t, db)
		closeAndLog(t, "test DB", db)
	})
	fn(db)
}

func openMigrated(t TestingTB, schema string) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", DefaultTestDBConfig().DSN(schema))
	if err != nil {
		t.Fatal("Failed to open database:", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		closeAndLog(t, "test DB", db)
		t.Fatal("Failed to connect to test database. Make sure PostgreSQL is running (docker-compose up -d):", err)
	}
	if err = migrate.Run(ctx, db, migrate.Options{}); err != nil {
		closeAndLog(t, "test DB", db)
		t.Fatal("Failed to run migrations:", err)
	}
	return db
}

func openEphemeralSchema(t TestingTB) *sql.DB {
	t.Helper()

	admin, err := sql.Open("pgx", DefaultTestDBConfig().DSN(""))
	if err != nil {
		t.Fatal("Failed to open admin DB:", err)
	}

	schema := schemaName()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err = admin.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+schema); err != nil {
		closeAndLog(t, "admin DB", admin)
		t.Fatalf("Failed to create schema %s: %v", schema, err)
	}
	t.Logf("Using ephemeral schema: %s", schema)

	// Registered before migrating so a failed migration still drops the schema.
	var db *sql.DB
	t.Cleanup(func() {
		if db != nil {
			closeAndLog(t, "schema DB", db)
		}
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		if _, dropErr := admin.ExecContext(dropCtx, "DROP SCHEMA IF EXISTS "+schema+" CASCADE"); dropErr != nil {
			t.Logf("Warning: failed to drop schema %s: %v", schema, dropErr)
		}
		closeAndLog(t, "admin DB", admin)
	})

	db = openMigrated(t, schema)
	return db
}

func truncate(t TestingTB, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	stmt := "TRUNCATE " + strings.Join(rmsgasTables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		t.Fatalf("Failed to truncate test tables: %v", err)
	}
}

// schemaName creates a lowercase alphanumeric schema name with prefix.
func schemaName() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("t_%d", time.Now().UnixNano())
	}
	return "t_" + hex.EncodeToString(b)
}

// SetupTestRedis returns a client on an isolated logical database, flushed before use.
// REDIS_ADDR overrides the local default of localhost:56379 and TEST_REDIS_DB the index (default 1).
// Tests are skipped when Redis is unreachable unless TEST_REQUIRE_REDIS is set.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr := getEnvOrDefault("REDIS_ADDR", "localhost:56379")
	client := redis.NewClient(&redis.Options{Addr: addr, DB: testRedisDB(t)})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		closeAndLog(t, "redis client", client)
		skipOrFail(t, requireRedis(), fmt.Sprintf("Redis not available for testing at %s:", addr), err)
		return nil
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Logf("warning: failed to flush redis test db: %v", err)
	}
	t.Cleanup(func() { closeAndLog(t, "redis client", client) })
	return client
}

func testRedisDB(t TestingTB) int {
	v := os.Getenv("TEST_REDIS_DB")
	if v == "" {
		return 1
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		t.Logf("Invalid TEST_REDIS_DB=%q, using 1", v)
		return 1
	}
	return i
}

func skipOrFail(t TestingTB, fail bool, args ...interface{}) {
	t.Helper()
	if fail {
		t.Fatal(args...)
	}
	t.Skip(args...)
}

func closeAndLog(t TestingTB, name string, closer interface{ Close() error }) {
	if err := closer.Close(); err != nil {
		t.Logf("warning: failed to close %s: %v", name, err)
	}
}

// getEnvOrDefault returns environment variable value or default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envBool parses common truthy values from env vars.
func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

func requireDB() bool    { return envBool("TEST_REQUIRE_DB") || envBool("TEST_REQUIRE_INFRA") }
func requireRedis() bool { return envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA") }

// StringPtr returns a pointer to the given string value.
func StringPtr(s string) *string {
	return &s
}
