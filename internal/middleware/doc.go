// Package middleware provides HTTP middleware for the Roamly API.
//
// The package contains reusable middleware components for
// authentication, rate limiting and request processing, composed with
// Chain.
//
// # Authentication
//
// The auth middleware resolves bearer tokens into a caller identity:
//
//	protected := middleware.Auth(authService)
//
// After authentication, handlers can access the caller:
//
//	userID := middleware.GetUserID(r.Context())
//	identity := middleware.GetIdentity(r.Context())
//
// # Rate Limiting
//
// Token-bucket rate limiting keyed by user ID, falling back to the
// remote address for unauthenticated requests.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetIdentity(ctx): Returns the resolved caller identity
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
