// Package model defines domain entities and data structures for the Roamly API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Application user with authentication credentials
//   - Trip: The aggregate root for one planned journey, owned by one user
//   - ChecklistItem: Categorized, completable to-do entry on a trip
//   - Expense: Categorized monetary entry contributing to budget usage
//
// # Derived Views
//
// Budget usage, checklist completion and the per-category expense breakdown
// are never persisted. They are pure functions over the Trip entity (see
// summary.go) and are recomputed on every read:
//
//	summary := model.Summarize(trip)
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Expense struct {
//	    ID       string          `json:"id"`
//	    Category ExpenseCategory `json:"category"`
//	    Amount   float64         `json:"amount"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string `json:"type"`
//	    Title   string `json:"title"`
//	    Status  int    `json:"status"`
//	    Detail  string `json:"detail"`
//	}
package model
