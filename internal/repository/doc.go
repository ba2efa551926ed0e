// Package repository implements the data access layer for the Roamly API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles CRUD operations for a specific domain entity.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, GetByID, Replace, Delete, etc.)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Document Model
//
// A trip is persisted as one document with its checklist and expense
// arrays inlined. There are no cross-document relations: updates always
// rewrite the owning trip document, so a single-document write is the
// unit of atomicity and concurrent replaces resolve as last write wins.
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - CREATE ... CONTENT for inserts, UPDATE ... CONTENT ... RETURN AFTER for replaces
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//
// # Example Usage
//
//	repo := NewTripRepository(db)
//	trip, err := repo.GetByID(ctx, "trip:abc123")
//	if err != nil {
//	    return err
//	}
//	if trip == nil {
//	    // Handle not found
//	}
package repository
