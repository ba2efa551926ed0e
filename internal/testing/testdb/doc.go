// Package testdb provides test database utilities for the Roamly API.
//
// The testdb package manages test database connections with automatic
// setup, schema application, and cleanup.
//
// # Test Database Setup
//
// Create a test database for each test:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    // Use tdb.DB for database operations
//	}
//
// # Isolation
//
// Each test gets an isolated database namespace, so parallel tests
// never observe each other's data.
//
// # Opt-in
//
// Tests using this package skip unless TEST_DB_HOST points at a
// running SurrealDB instance.
package testdb
