// Package fixtures provides test data factories for the Roamly API.
//
// The fixtures package contains factory functions for creating test
// data with sensible defaults and optional customization.
//
// # Factory Pattern
//
// Create a factory with a database connection:
//
//	f := fixtures.New(tdb.DB)
//
// # Creating Test Data
//
// Factory methods create domain entities:
//
//	user := f.CreateUser(t)
//	trip := f.CreateTrip(t, user)
//
// # Customization
//
// Use option functions for customization:
//
//	user := f.CreateUser(t, fixtures.WithEmail("custom@example.com"))
//	trip := f.CreateTrip(t, user, fixtures.WithBudget(2500))
//
// # Cleanup
//
// Test data is cleaned up when the test database is closed.
package fixtures
