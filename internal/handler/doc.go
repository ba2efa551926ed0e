// Package handler provides HTTP request handlers for the Roamly API.
//
// Each handler struct encapsulates the service it serves requests for:
// trips, authentication and image uploads. Handlers decode the request,
// resolve the caller from the request context, call the service and
// render the result.
//
// # Response Format
//
// Successful responses wrap their payload in a {"data": ...} envelope
// via WriteData. Errors are rendered as RFC 9457 Problem Details via
// WriteError; MapServiceError translates service sentinel errors into
// the matching status codes.
//
// # Authentication
//
// All trip and upload endpoints require a bearer token. The auth
// middleware resolves it and makes the caller available through
// middleware.GetUserID(ctx); handlers reject requests without one.
package handler
