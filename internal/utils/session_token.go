package utils

import "github.com/google/uuid"

// GenerateSessionToken returns a new opaque session token.
func GenerateSessionToken() string {
	return uuid.NewString()
}
