// Package validate enforces the input contract ahead of the service
// layer. Services may assume shapes validated here; everything beyond
// shape (existence, availability, ownership) stays with the services.
package validate

import (
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"naija-aroma/internal/errs"
)

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)
	// Nigerian phone numbers, with or without country prefix.
	phonePattern = regexp.MustCompile(`^(\+234|234|0)?[789][01]\d{8}$`)
)

// ID checks that a value is a well-formed entity ID.
func ID(id, fieldName string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errs.ValidationField(fieldName, fmt.Sprintf("Invalid %s format", fieldName))
	}
	return nil
}

// Email checks basic email shape.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return errs.ValidationField("email", "Please provide a valid email address")
	}
	return nil
}

// Username checks the allowed username shape.
func Username(username string) error {
	if !usernamePattern.MatchString(username) {
		return errs.ValidationField("username", "Username must be 3-30 alphanumeric characters")
	}
	return nil
}

// Phone checks for a valid Nigerian phone number.
func Phone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return errs.ValidationField("phone", "Please provide a valid Nigerian phone number")
	}
	return nil
}

// Password requires at least 8 characters with one uppercase letter,
// one lowercase letter and one digit.
func Password(password string) error {
	if len(password) < 8 {
		return errs.ValidationField("password", "Password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errs.ValidationField("password",
			"Password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
	return nil
}

// StringLength checks an inclusive rune-length range.
func StringLength(value, fieldName string, min, max int) error {
	n := len([]rune(value))
	if n < min {
		return errs.ValidationField(fieldName, fmt.Sprintf("%s must be at least %d characters", fieldName, min))
	}
	if n > max {
		return errs.ValidationField(fieldName, fmt.Sprintf("%s must be at most %d characters", fieldName, max))
	}
	return nil
}

// OptionalStringLength applies StringLength when the value is present.
func OptionalStringLength(value *string, fieldName string, min, max int) error {
	if value == nil {
		return nil
	}
	return StringLength(*value, fieldName, min, max)
}

// IntRange checks an inclusive integer range.
func IntRange(value int32, fieldName string, min, max int32) error {
	if value < min || value > max {
		return errs.ValidationField(fieldName, fmt.Sprintf("%s must be between %d and %d", fieldName, min, max))
	}
	return nil
}

// PositiveAmount checks that an optional money amount is positive.
func PositiveAmount(value *decimal.Decimal, fieldName string) error {
	if value != nil && !value.IsPositive() {
		return errs.ValidationField(fieldName, fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// FutureTime checks that a timestamp lies in the future.
func FutureTime(value time.Time, fieldName string) error {
	if !value.After(time.Now()) {
		return errs.ValidationField(fieldName, fmt.Sprintf("%s must be in the future", fieldName))
	}
	return nil
}

// OneOf checks membership in an allowed value set.
func OneOf(value, fieldName string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errs.ValidationField(fieldName, fmt.Sprintf("Invalid %s", fieldName))
}
