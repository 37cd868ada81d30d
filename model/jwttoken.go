package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims carries only the account id. Role is deliberately absent:
// authorization re-reads the current role from storage on every request, so
// demoting an admin takes effect immediately instead of at token expiry.
type SessionClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
