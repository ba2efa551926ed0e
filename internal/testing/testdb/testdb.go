// Package testdb provides test database utilities for e2e testing.
//
// This package creates isolated SurrealDB test environments that run
// real queries against a real database instance. Each TestDB gets a
// unique namespace, so parallel tests never see each other's data.
//
// Tests that use testdb skip automatically unless TEST_DB_HOST is set,
// so the acceptance suite only runs where a SurrealDB instance is
// available.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    result, err := tdb.DB.Query(ctx, "SELECT * FROM trip", nil)
//	}
package testdb

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/roamly/api/internal/database"
)

// TestDB provides an isolated database environment for testing.
// Each TestDB instance gets a unique namespace to ensure test isolation.
type TestDB struct {
	DB        database.Database
	Namespace string
	Database  string
	t         *testing.T
}

var (
	// counterMu protects the namespace counter
	counterMu sync.Mutex
	counter   int64
)

// schema declares the tables and indexes the tests rely on. Documents
// are otherwise schemaless; only the email uniqueness constraint needs
// to exist for duplicate registration behavior to match production.
var schema = []string{
	`DEFINE TABLE IF NOT EXISTS user SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS user_email ON TABLE user COLUMNS email UNIQUE`,
	`DEFINE TABLE IF NOT EXISTS trip SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS trip_owner ON TABLE trip COLUMNS owner`,
}

// getTestConfig returns database config from environment
func getTestConfig() database.Config {
	port := os.Getenv("TEST_DB_PORT")
	if port == "" {
		port = "8000"
	}

	user := os.Getenv("TEST_DB_USER")
	if user == "" {
		user = "root"
	}

	password := os.Getenv("TEST_DB_PASSWORD")
	if password == "" {
		password = "root"
	}

	return database.Config{
		Host:     os.Getenv("TEST_DB_HOST"),
		Port:     port,
		User:     user,
		Password: password,
	}
}

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// New creates a new isolated test database with the schema applied.
// The database uses a unique namespace to ensure test isolation.
// Call Close() when done to clean up the namespace.
func New(t *testing.T) *TestDB {
	t.Helper()

	cfg := getTestConfig()
	if cfg.Host == "" {
		t.Skip("testdb: TEST_DB_HOST not set, skipping")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	namespace := uniqueNamespace()
	dbName := "test"

	cfg.Namespace = namespace
	cfg.Database = dbName

	// Create database connection
	db := database.NewSurrealDB(cfg)
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}

	tdb := &TestDB{
		DB:        db,
		Namespace: namespace,
		Database:  dbName,
		t:         t,
	}

	// Apply schema
	for i, stmt := range schema {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			_ = db.Close()
			t.Fatalf("testdb: schema statement %d failed: %v", i+1, err)
		}
	}

	return tdb
}

// Close cleans up the test database by removing the namespace.
func (tdb *TestDB) Close() {
	if tdb.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Remove the test namespace to clean up
	query := fmt.Sprintf("REMOVE NAMESPACE %s", tdb.Namespace)
	_ = tdb.DB.Execute(ctx, query, nil) // Ignore errors on cleanup

	_ = tdb.DB.Close()
}

// Reset clears all data from the known tables while preserving schema.
// This is faster than creating a new TestDB for tests that need fresh
// data.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, table := range []string{"user", "trip"} {
		if err := tdb.DB.Execute(ctx, fmt.Sprintf("DELETE %s", table), nil); err != nil {
			t.Fatalf("testdb: failed to reset table %s: %v", table, err)
		}
	}
}
