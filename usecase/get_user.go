package usecase

import (
	"context"

	"github.com/km-arc/go-cleanarch/domain"
)

// GetUser retrieves users by ID, by email, or all at once.
type GetUser struct {
	Repo domain.UserRepository
}

func (uc *GetUser) ByID(ctx context.Context, id string) (UserResponse, error) {
	user, err := uc.Repo.ByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return toResponse(user), nil
}

// ByEmail validates the email format before hitting the repository.
func (uc *GetUser) ByEmail(ctx context.Context, emailStr string) (UserResponse, error) {
	email, err := domain.NewEmail(emailStr)
	if err != nil {
		return UserResponse{}, err
	}
	user, err := uc.Repo.ByEmail(ctx, email)
	if err != nil {
		return UserResponse{}, err
	}
	return toResponse(user), nil
}

func (uc *GetUser) List(ctx context.Context) (UserListResponse, error) {
	users, err := uc.Repo.All(ctx)
	if err != nil {
		return UserListResponse{}, err
	}
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toResponse(user))
	}
	return UserListResponse{Users: responses, TotalCount: len(responses)}, nil
}
