// Package validation contains input validation rules for registration.
package validation

import (
	"errors"
	"regexp"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// ValidateUsername enforces the allowed username format.
func ValidateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return errors.New("Username must be 3-30 characters of letters, digits or underscores")
	}
	return nil
}

// ValidatePassword enforces the minimum password strength.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters")
	}
	return nil
}
