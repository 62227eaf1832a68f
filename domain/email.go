package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is an immutable value object representing a validated email
// address. Equality is by value; the address is normalized to lowercase
// on creation.
type Email struct {
	value string
}

// NewEmail validates and normalizes an email address.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, &InvalidUserDataError{
			Field:  "email",
			Value:  value,
			Reason: "email cannot be empty",
		}
	}
	if !emailPattern.MatchString(value) {
		return Email{}, &InvalidUserDataError{
			Field:  "email",
			Value:  value,
			Reason: fmt.Sprintf("invalid email format: %s", value),
		}
	}
	return Email{value: strings.ToLower(value)}, nil
}

// MustEmail is NewEmail that panics on invalid input. Intended for
// tests and literals known to be valid.
func MustEmail(value string) Email {
	e, err := NewEmail(value)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Email) String() string { return e.value }

// Domain returns the part after the "@".
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

// LocalPart returns the part before the "@".
func (e Email) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

// IsZero reports whether the email is the zero value (never produced
// by NewEmail).
func (e Email) IsZero() bool { return e.value == "" }
