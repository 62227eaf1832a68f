package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the user domain entity. It has a unique identity, mutable
// state, and carries its own business rules; persistence concerns live
// behind UserRepository.
type User struct {
	ID        string
	Email     Email
	FirstName string
	LastName  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a user with a generated ID. Names are validated;
// the user starts active.
func NewUser(email Email, firstName, lastName string) (*User, error) {
	u := &User{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.validateNames(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) validateNames() error {
	if strings.TrimSpace(u.FirstName) == "" {
		return &InvalidUserDataError{Field: "first_name", Value: u.FirstName, Reason: "first name cannot be empty"}
	}
	if strings.TrimSpace(u.LastName) == "" {
		return &InvalidUserDataError{Field: "last_name", Value: u.LastName, Reason: "last name cannot be empty"}
	}
	return nil
}

// FullName returns "First Last".
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// DisplayName returns "First Last (email)".
func (u *User) DisplayName() string {
	return fmt.Sprintf("%s (%s)", u.FullName(), u.Email)
}

// UpdateName changes both name parts, validating before committing.
// On validation failure the previous names are kept.
func (u *User) UpdateName(firstName, lastName string) error {
	oldFirst, oldLast := u.FirstName, u.LastName
	u.FirstName, u.LastName = firstName, lastName
	if err := u.validateNames(); err != nil {
		u.FirstName, u.LastName = oldFirst, oldLast
		return err
	}
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// Deactivate marks the user inactive. Returns UserStateError if the
// user is already inactive.
func (u *User) Deactivate() error {
	if !u.Active {
		return &UserStateError{Operation: "deactivate", State: "already inactive"}
	}
	u.Active = false
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// Activate marks the user active. Returns UserStateError if the user
// is already active.
func (u *User) Activate() error {
	if u.Active {
		return &UserStateError{Operation: "activate", State: "already active"}
	}
	u.Active = true
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// Equal reports identity-based equality: two users are the same entity
// when their IDs match, regardless of attribute values.
func (u *User) Equal(other *User) bool {
	if other == nil {
		return false
	}
	return u.ID == other.ID
}
