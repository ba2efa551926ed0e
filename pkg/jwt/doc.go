// Package jwt provides JSON Web Token utilities for the Roamly API.
//
// The jwt package handles token generation, validation, and claims
// extraction for authentication. Tokens are signed with Ed25519 (EdDSA).
//
// # Token Generation
//
// Generate tokens for authenticated users:
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "keys/jwt_private.pem",
//	    Issuer:         "roamly-api",
//	    ExpirationMins: 60,
//	})
//
//	token, err := service.Sign(jwt.Claims{
//	    Subject: user.ID,
//	    UserID:  user.ID,
//	    Email:   user.Email,
//	    Name:    user.Name,
//	})
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.UserID
//
// # Key Management
//
// Keys are Ed25519 key pairs stored as PEM files (PKCS#8 private key,
// PKIX public key). Generate a pair with:
//
//	err := jwt.GenerateKeyPair("keys/jwt_private.pem", "keys/jwt_public.pem")
//
// A service constructed with only a public key can validate tokens but
// not sign them, which suits read-only verifiers.
package jwt
