package domain

import "context"

// UserRepository is the port for user persistence. Implementations live
// in the storage layer; the domain stays ignorant of how users are
// actually stored.
type UserRepository interface {
	// Save stores a new user. Returns UserAlreadyExistsError when a
	// user with the same email already exists.
	Save(ctx context.Context, user *User) error

	// ByID returns the user with the given ID, or UserNotFoundError.
	ByID(ctx context.Context, id string) (*User, error)

	// ByEmail returns the user with the given email, or UserNotFoundError.
	ByEmail(ctx context.Context, email Email) (*User, error)

	// All returns every stored user.
	All(ctx context.Context) ([]*User, error)

	// Update replaces an existing user. Returns UserNotFoundError when
	// the user does not exist.
	Update(ctx context.Context, user *User) error

	// Delete removes a user by ID. Reports whether a user was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// ExistsWithEmail reports whether any user has the given email.
	ExistsWithEmail(ctx context.Context, email Email) (bool, error)
}
