// Package usecase holds the application layer: orchestration of domain
// operations behind stable input/output DTOs, so domain entities never
// leak to the presentation layer.
package usecase

import (
	"time"

	"github.com/km-arc/go-cleanarch/domain"
)

// CreateUserRequest carries the data needed to create a user.
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// UpdateUserRequest carries a partial name update. Nil fields are left
// unchanged.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// UserResponse is the external representation of a user.
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	FullName  string     `json:"full_name"`
	Active    bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// UserListResponse wraps a user list with its count.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	TotalCount int            `json:"total_count"`
}

func toResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
	if !user.UpdatedAt.IsZero() {
		updated := user.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
