package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/km-arc/go-cleanarch/domain"
)

// UpdateUser applies partial name updates and state transitions.
type UpdateUser struct {
	Repo   domain.UserRepository
	Logger *zap.Logger
}

// Execute applies a partial update: nil fields keep their current
// value, name validation happens through the entity.
func (uc *UpdateUser) Execute(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	user, err := uc.Repo.ByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	if req.FirstName != nil || req.LastName != nil {
		first, last := user.FirstName, user.LastName
		if req.FirstName != nil {
			first = strings.TrimSpace(*req.FirstName)
		}
		if req.LastName != nil {
			last = strings.TrimSpace(*req.LastName)
		}
		if err := user.UpdateName(first, last); err != nil {
			return UserResponse{}, err
		}
	}

	if err := uc.Repo.Update(ctx, user); err != nil {
		return UserResponse{}, err
	}

	uc.Logger.Info("user updated", zap.String("id", user.ID))
	return toResponse(user), nil
}

// Activate marks a user active.
func (uc *UpdateUser) Activate(ctx context.Context, id string) (UserResponse, error) {
	return uc.transition(ctx, id, (*domain.User).Activate)
}

// Deactivate marks a user inactive.
func (uc *UpdateUser) Deactivate(ctx context.Context, id string) (UserResponse, error) {
	return uc.transition(ctx, id, (*domain.User).Deactivate)
}

func (uc *UpdateUser) transition(ctx context.Context, id string, apply func(*domain.User) error) (UserResponse, error) {
	user, err := uc.Repo.ByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	if err := apply(user); err != nil {
		return UserResponse{}, err
	}
	if err := uc.Repo.Update(ctx, user); err != nil {
		return UserResponse{}, err
	}
	uc.Logger.Info("user state changed",
		zap.String("id", user.ID),
		zap.Bool("active", user.Active))
	return toResponse(user), nil
}
