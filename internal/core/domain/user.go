package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User models an account in the directory. PasswordHash is write-only
// from the API's perspective and never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ClampRole maps anything that is not exactly "admin" to "user", so a
// caller can never escalate privilege through this field.
func ClampRole(role string) string {
	if role == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// ValidStatus reports whether s is one of the two account states.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}

// NormalizeEmail canonicalizes an email for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims surrounding whitespace from a display name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
