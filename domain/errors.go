package domain

import "fmt"

// UserNotFoundError is returned when a user cannot be located by the
// given identifier.
type UserNotFoundError struct {
	Identifier     string
	IdentifierType string // "id" or "email"
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user not found with %s: %s", e.IdentifierType, e.Identifier)
}

// UserAlreadyExistsError is returned when creating a user whose email
// is already taken.
type UserAlreadyExistsError struct {
	Email string
}

func (e *UserAlreadyExistsError) Error() string {
	return fmt.Sprintf("user already exists with email: %s", e.Email)
}

// InvalidUserDataError is returned when a field fails domain validation.
type InvalidUserDataError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidUserDataError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// UserStateError is returned when the user is in the wrong state for
// an operation, e.g. activating an already active user.
type UserStateError struct {
	Operation string
	State     string
}

func (e *UserStateError) Error() string {
	return fmt.Sprintf("cannot %s: user is %s", e.Operation, e.State)
}
