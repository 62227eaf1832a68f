package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/km-arc/go-cleanarch/domain"
)

// CreateUser creates new users. Dependencies are exported fields so the
// container can auto-wire them.
type CreateUser struct {
	Repo   domain.UserRepository
	Logger *zap.Logger
}

// Execute validates the request, enforces email uniqueness, and
// persists the new user.
func (uc *CreateUser) Execute(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	email, err := domain.NewEmail(req.Email)
	if err != nil {
		return UserResponse{}, err
	}

	taken, err := uc.Repo.ExistsWithEmail(ctx, email)
	if err != nil {
		return UserResponse{}, err
	}
	if taken {
		return UserResponse{}, &domain.UserAlreadyExistsError{Email: email.String()}
	}

	user, err := domain.NewUser(email, strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName))
	if err != nil {
		return UserResponse{}, err
	}

	if err := uc.Repo.Save(ctx, user); err != nil {
		return UserResponse{}, err
	}

	uc.Logger.Info("user created",
		zap.String("id", user.ID),
		zap.String("email", user.Email.String()))
	return toResponse(user), nil
}
