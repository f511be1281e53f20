// Package common contains shared constants and sentinel errors used across
// itemkeeper components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme prefixes the token inside the Authorization header.
const BearerScheme = "Bearer"

// Roles a user can hold.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
