// Package helpers provides test utility functions for the Roamly API.
//
// The helpers package contains common test utilities for assertions,
// pointer creation, request building and JWT token generation.
//
// # Pointer Helpers
//
// Create pointers to literal values:
//
//	name := helpers.StringPtr("test")
//	count := helpers.IntPtr(42)
//	flag := helpers.BoolPtr(true)
//
// # JWT Helpers
//
// Generate test JWT tokens with an in-memory Ed25519 key:
//
//	jwtHelper := helpers.NewJWTHelper(t)
//	token := jwtHelper.GenerateToken(t, user)
//
// # Assertion Helpers
//
// Common test assertions:
//
//	helpers.AssertStatus(t, resp, http.StatusOK)
//	helpers.AssertValidationError(t, resp, "title")
//	helpers.AssertRecordExists(t, db, "trip", trip.ID)
package helpers
