package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrDomainNotFound     = errors.New("domain not found")
	ErrDomainTaken        = errors.New("domain already exists for this user")
)

// ErrValidation is the category all input validation failures belong
// to. Match with errors.Is.
var ErrValidation = errors.New("invalid input")

// ValidationError is a rejection of caller input. Its message is safe
// to return to the client verbatim.
type ValidationError struct {
	msg string
}

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// IsValidID reports whether s has the shape of a stored record id
// (24 hexadecimal characters). Malformed ids are a validation failure,
// not a lookup miss.
func IsValidID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
