package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/km-arc/go-cleanarch/domain"
)

// DeleteUser removes users permanently.
type DeleteUser struct {
	Repo   domain.UserRepository
	Logger *zap.Logger
}

// Execute deletes the user with the given ID. Returns UserNotFoundError
// when no such user exists.
func (uc *DeleteUser) Execute(ctx context.Context, id string) error {
	deleted, err := uc.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.UserNotFoundError{Identifier: id, IdentifierType: "id"}
	}
	uc.Logger.Info("user deleted", zap.String("id", id))
	return nil
}
