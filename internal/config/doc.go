// Package config manages application configuration for the Roamly API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: JWT signing and validation settings
//   - UploadsConfig: image upload storage settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT         - HTTP server port (default: 8080)
//	SERVER_ENV          - development, production or test
//	DB_HOST, DB_PORT    - SurrealDB endpoint
//	DB_NAMESPACE, DB_DATABASE
//	DB_USER, DB_PASSWORD
//	JWT_PRIVATE_KEY_PATH, JWT_PUBLIC_KEY_PATH
//	JWT_EXPIRATION_MINS - token lifetime in minutes
//	UPLOADS_DIR         - directory for stored images
//	UPLOADS_BASE_URL    - public URL prefix for stored images
//
// Sensible defaults are provided for development; Validate reports
// every missing or invalid value at once.
package config
