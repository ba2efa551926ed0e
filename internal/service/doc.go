// Package service implements the business logic layer for the Roamly API.
//
// Services sit between HTTP handlers and repositories. They validate
// requests, enforce ownership, apply domain rules and translate storage
// results into sentinel errors the handlers can map to HTTP responses.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts repository interfaces
//   - Repository interfaces are declared here, next to their consumers
//   - Methods take context.Context and return (result, error)
//   - Failures use the sentinel errors in errors.go, checked with errors.Is()
//
// # Ownership
//
// Every trip operation authorizes the caller first: the trip is loaded,
// the owner compared against the authenticated user, and anything that
// is not an exact match fails with ErrNotTripOwner before any write.
//
// # Services
//
//   - TripService: trip CRUD, checklist and expense items, summaries
//   - AuthService: registration, login, token issuing and validation
//   - UploadService: data URL decoding into the blob store
package service
